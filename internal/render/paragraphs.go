package render

import (
	"regexp"
	"strings"
)

var blankLineRe = regexp.MustCompile(`\n[ \t]*\n`)

// SplitParagraphs breaks processed text into paragraphs on blank-line
// boundaries. When the text has no blank line at all, every line is its own
// paragraph. Empty chunks are dropped.
func SplitParagraphs(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	var parts []string
	if blankLineRe.MatchString(text) {
		parts = blankLineRe.Split(text, -1)
	} else {
		parts = strings.Split(text, "\n")
	}
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
