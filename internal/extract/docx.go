package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// FromDOCX extracts paragraph text from a DOCX document. The file is a ZIP
// archive whose word/document.xml holds the body; text lives in w:t elements
// and paragraphs end at w:p. A token walk rather than a struct decode picks
// up runs nested inside hyperlinks and other containers.
func FromDOCX(b []byte) (string, error) {
	reader, err := zip.NewReader(bytes.NewReader(b), int64(len(b)))
	if err != nil {
		return "", fmt.Errorf("open docx: %w", err)
	}

	var doc []byte
	for _, file := range reader.File {
		if file.Name != "word/document.xml" {
			continue
		}
		rc, err := file.Open()
		if err != nil {
			return "", fmt.Errorf("open document.xml: %w", err)
		}
		doc, err = io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return "", fmt.Errorf("read document.xml: %w", err)
		}
		break
	}
	if doc == nil {
		return "", fmt.Errorf("docx has no word/document.xml")
	}

	text, err := docxParagraphs(doc)
	if err != nil {
		return "", err
	}
	return FromPlainText([]byte(text)), nil
}

func docxParagraphs(doc []byte) (string, error) {
	decoder := xml.NewDecoder(bytes.NewReader(doc))
	var (
		paragraphs []string
		current    strings.Builder
		inText     bool
	)
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("parse document.xml: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inText = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				if s := strings.TrimSpace(current.String()); s != "" {
					paragraphs = append(paragraphs, s)
				}
				current.Reset()
			}
		case xml.CharData:
			if inText {
				current.Write(t)
			}
		}
	}
	return strings.Join(paragraphs, "\n\n"), nil
}
