package convert

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/fumiama/go-docx"
)

// DOCXToLaTeX converts a .docx document to LaTeX. Paragraphs styled
// Heading1-Heading4 map to chapter through subsubsection (deeper heading
// styles clamp); everything else becomes a plain paragraph.
func DOCXToLaTeX(r io.Reader) (string, error) {
	// go-docx wants an io.ReaderAt plus size; requests are size-capped
	// upstream, so buffering in memory is fine.
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}

	doc, err := docx.Parse(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("parse docx: %w", err)
	}

	var out []string
	for _, item := range doc.Document.Body.Items {
		para, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}

		text := paragraphText(para)
		if text == "" {
			continue
		}

		if level := docxStyleLevel(paragraphStyle(para)); level > 0 {
			out = append(out, headingCommand(level, text))
		} else {
			out = append(out, escapeText(text))
		}
	}

	if len(out) == 0 {
		return "", nil
	}
	return strings.Join(out, "\n") + "\n", nil
}

// docxStyleLevel maps Word heading style names ("Heading2", "heading 2")
// to their numeric level, 0 for body styles.
func docxStyleLevel(style string) int {
	style = strings.ToLower(strings.ReplaceAll(style, " ", ""))
	if rest, ok := strings.CutPrefix(style, "heading"); ok {
		if len(rest) == 1 && rest[0] >= '1' && rest[0] <= '9' {
			return int(rest[0] - '0')
		}
	}
	return 0
}

func paragraphStyle(para *docx.Paragraph) string {
	if para.Properties == nil || para.Properties.Style == nil {
		return ""
	}
	return para.Properties.Style.Val
}

// paragraphText collects the run text of a paragraph.
func paragraphText(para *docx.Paragraph) string {
	var sb strings.Builder
	for _, child := range para.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		for _, rc := range run.Children {
			if t, ok := rc.(*docx.Text); ok {
				sb.WriteString(t.Text)
			}
		}
	}
	return strings.TrimSpace(sb.String())
}
