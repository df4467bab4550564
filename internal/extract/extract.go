// Package extract turns uploaded documents into the plain text the citation
// pipeline consumes. Supported formats are plain text, HTML, PDF, and DOCX;
// everything format-specific ends here, downstream only ever sees a string
// with paragraph breaks.
package extract

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ErrUnsupportedFormat is returned for file extensions no extractor handles.
var ErrUnsupportedFormat = errors.New("unsupported document format")

// File reads path and extracts its plain text based on the file extension.
func File(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".text", ".md":
		b, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", path, err)
		}
		return FromPlainText(b), nil
	case ".html", ".htm":
		b, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", path, err)
		}
		return FromHTML(b), nil
	case ".pdf":
		return FromPDF(path)
	case ".docx":
		b, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", path, err)
		}
		return FromDOCX(b)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// FromPlainText normalizes raw text bytes: line endings become LF and the
// result is NFC-normalized so the citation patterns see composed characters.
func FromPlainText(b []byte) string {
	s := string(b)
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return norm.NFC.String(s)
}
