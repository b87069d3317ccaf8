package indent

import "strings"

// pass supplies the opener/closer predicates one indentation dimension
// plugs into a tracker. Predicates see stripped line content only.
type pass struct {
	opens  func(content string) bool
	closes func(content string) bool
}

const (
	beginToken  = `\begin{`
	endToken    = `\end{`
	endDocument = `\end{document}`
)

// sectioning commands by rank, outermost first.
var rankedCommands = []string{
	`\chapter`,
	`\section`,
	`\subsection`,
	`\subsubsection`,
}

// environmentPass nests \begin{...}/\end{...} pairs. Matching is by
// position only: the innermost open environment is closed by the next
// \end{...} regardless of its name. A mismatched-but-balanced document
// therefore indents the same as a correct one (see DESIGN.md).
func environmentPass() pass {
	return pass{
		opens:  func(content string) bool { return strings.HasPrefix(content, beginToken) },
		closes: func(content string) bool { return strings.HasPrefix(content, endToken) },
	}
}

// rankedPass indents the body of one sectioning command. The scope opened
// by a heading ends at the next command of equal or higher rank, or at
// \end{document}; deeper-ranked headings never terminate it.
func rankedPass(rank int) pass {
	own := rankedCommands[rank]
	terminators := rankedCommands[:rank+1]
	return pass{
		opens: func(content string) bool {
			return hasCommand(content, own)
		},
		closes: func(content string) bool {
			if content == endDocument {
				return true
			}
			for _, cmd := range terminators {
				if hasCommand(content, cmd) {
					return true
				}
			}
			return false
		},
	}
}

// hasCommand reports whether content starts with cmd as a whole control
// word. \section must not match \subsection, so the byte after the command
// name must not extend it (command names are letters only; `{`, `[` and
// `*` all end the token).
func hasCommand(content, cmd string) bool {
	if !strings.HasPrefix(content, cmd) {
		return false
	}
	if len(content) == len(cmd) {
		return true
	}
	next := content[len(cmd)]
	return !isLetter(next)
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
