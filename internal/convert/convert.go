// Package convert turns Markdown or HTML into LaTeX sectioning commands
// and paragraphs, ready for the indentation engine.
package convert

import (
	"fmt"
	"io"
	"strings"
)

// Source identifies the input format of a conversion request.
type Source string

const (
	SourceMarkdown Source = "markdown"
	SourceHTML     Source = "html"
	SourceDOCX     Source = "docx"
)

// sectioning commands per heading level; deeper headings clamp to the last.
var headingCommands = []string{
	`\chapter`,
	`\section`,
	`\subsection`,
	`\subsubsection`,
}

// ToLaTeX converts r from the given source format into LaTeX source.
func ToLaTeX(src Source, r io.Reader) (string, error) {
	switch src {
	case SourceMarkdown:
		return MarkdownToLaTeX(r)
	case SourceHTML:
		return HTMLToLaTeX(r)
	case SourceDOCX:
		return DOCXToLaTeX(r)
	default:
		return "", fmt.Errorf("unsupported source format: %q", src)
	}
}

// WrapDocument surrounds body with a document environment.
func WrapDocument(body string) string {
	body = strings.TrimRight(body, "\n")
	if body == "" {
		return "\\begin{document}\n\\end{document}\n"
	}
	return "\\begin{document}\n" + body + "\n\\end{document}\n"
}

// headingCommand returns the sectioning command line for a heading level
// (1-based, as in Markdown and HTML).
func headingCommand(level int, title string) string {
	if level < 1 {
		level = 1
	}
	if level > len(headingCommands) {
		level = len(headingCommands)
	}
	return headingCommands[level-1] + "{" + escapeText(title) + "}"
}

// latexEscapes covers the characters LaTeX reserves in running text.
var latexEscapes = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`&`, `\&`,
	`%`, `\%`,
	`$`, `\$`,
	`#`, `\#`,
	`_`, `\_`,
	`{`, `\{`,
	`}`, `\}`,
	`~`, `\textasciitilde{}`,
	`^`, `\textasciicircum{}`,
)

func escapeText(s string) string {
	return latexEscapes.Replace(s)
}
