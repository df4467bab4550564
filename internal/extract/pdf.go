package extract

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// FromPDF extracts plain text from every page of a PDF file. Pages become
// blank-line-separated paragraphs. Pages that fail text extraction are
// skipped rather than failing the whole document.
func FromPDF(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf %s: %w", path, err)
	}
	defer f.Close()

	pages := make([]string, 0, r.NumPage())
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if s := strings.TrimSpace(text); s != "" {
			pages = append(pages, s)
		}
	}
	return FromPlainText([]byte(strings.Join(pages, "\n\n"))), nil
}
