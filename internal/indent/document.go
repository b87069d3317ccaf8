package indent

import "strings"

// splitLines breaks text into lines on "\n". The returned bool records
// whether the input ended with a newline, so joinLines can restore exactly
// one trailing newline without a spurious empty last line.
func splitLines(text string) ([]string, bool) {
	trailing := strings.HasSuffix(text, "\n")
	if trailing {
		text = text[:len(text)-1]
	}
	return strings.Split(text, "\n"), trailing
}

// joinLines is the inverse of splitLines.
func joinLines(lines []string, trailing bool) string {
	out := strings.Join(lines, "\n")
	if trailing {
		out += "\n"
	}
	return out
}

// splitIndent separates a line's leading spaces and tabs from its content.
// Everything after the leading run, including internal and trailing
// whitespace, is preserved in content.
func splitIndent(line string) (prefix, content string) {
	i := 0
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	return line[:i], line[i:]
}

// applyIndent prepends unit repeated level times. Level 0 returns the
// content unchanged.
func applyIndent(content string, level int, unit string) string {
	if level <= 0 {
		return content
	}
	return strings.Repeat(unit, level) + content
}
