// Package render turns processed document text into the final styled PDF.
// Source formatting is discarded on purpose: every document comes out in the
// same scheme regardless of what went in.
package render

import (
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// Fixed output scheme: Times New Roman equivalents, 12pt justified body,
// 14pt bold centered title, double line spacing, 1-inch margins.
const (
	pageMargin = 25.4 // mm
	bodySize   = 12
	titleSize  = 14
	// 12pt is ~4.2mm tall; double spacing.
	lineHeight = 8.5
)

// WritePDF renders the title line and body paragraphs to a PDF at outPath.
// The body is split on blank-line boundaries, or single newlines when the
// text has none.
func WritePDF(title, body, outPath string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.AddPage()

	// Core fonts are cp1252; translate so accented author names survive.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Times", "B", titleSize)
	pdf.MultiCell(0, lineHeight, tr(title), "", "C", false)
	pdf.Ln(lineHeight / 2)

	pdf.SetFont("Times", "", bodySize)
	for _, para := range SplitParagraphs(body) {
		pdf.MultiCell(0, lineHeight, tr(para), "", "J", false)
		pdf.Ln(lineHeight / 2)
	}

	if err := pdf.OutputFileAndClose(outPath); err != nil {
		return fmt.Errorf("write pdf %s: %w", outPath, err)
	}
	return nil
}
