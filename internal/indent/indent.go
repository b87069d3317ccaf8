// Package indent rewrites the leading whitespace of LaTeX source so that
// nesting is visible: environment bodies, and the bodies of chapters,
// sections, subsections and subsubsections, each add one indent unit.
//
// The engine is a fixed sequence of passes. Every pass scans the document
// once with its own scope tracker and adds its dimension's indentation on
// top of the previous pass's output, so depths compound. It is a total
// function over arbitrary text: unbalanced markers degrade to uneven
// indentation, never to an error.
package indent

import "strings"

// DefaultUnit is one indent level when the caller does not specify one.
const DefaultUnit = "    "

// Format reindents text, prepending unit once per open scope on every
// line. The unit is repeated literally: the engine imposes no validation
// on it, so an empty unit strips all indentation. Callers that want a
// default pick one before calling (see Unit).
//
// Pre-existing leading whitespace is discarded first, which makes Format
// idempotent: formatting already-formatted text is a no-op. Format keeps
// no state between calls and is safe for concurrent use.
func Format(text, unit string) string {
	lines, trailing := splitLines(text)

	stripped := make([]string, len(lines))
	for i, line := range lines {
		_, stripped[i] = splitIndent(line)
	}

	lines = runPass(stripped, environmentPass(), unit)
	for rank := range rankedCommands {
		lines = runPass(lines, rankedPass(rank), unit)
	}

	return joinLines(lines, trailing)
}

// runPass scans lines once, splitting each into its accumulated indent and
// content, and emits the line with this pass's contribution prepended. The
// indent laid down by earlier passes is kept, so contributions sum.
func runPass(lines []string, p pass, unit string) []string {
	var tr tracker
	out := make([]string, len(lines))
	for i, line := range lines {
		prefix, content := splitIndent(line)
		level := tr.next(p, content)
		out[i] = applyIndent(prefix+content, level, unit)
	}
	return out
}

// Unit builds an indent unit string: width spaces, or a single tab when
// tabs is set.
func Unit(width int, tabs bool) string {
	if tabs {
		return "\t"
	}
	if width <= 0 {
		return DefaultUnit
	}
	return strings.Repeat(" ", width)
}
