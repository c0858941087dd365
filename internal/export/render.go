package export

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
)

// Options controls PDF rendering.
type Options struct {
	// FontPath names a TrueType font with Arabic coverage. When empty the
	// core Helvetica font is used and glyphs outside cp1252 are lost.
	FontPath string
}

const (
	fontFamily = "study"

	// 72pt side and top margins, 18pt bottom.
	marginMM       = 25.4
	bottomMarginMM = 6.35
	sectionGapMM   = 4.2
)

// RenderPDF writes doc as an A4 PDF to w.
func RenderPDF(w io.Writer, doc Document, opts Options) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(marginMM, marginMM, marginMM)
	pdf.SetAutoPageBreak(true, bottomMarginMM)
	pdf.SetTitle(FileName(doc.StudyID), true)

	family := "Helvetica"
	align := "L"
	translate := pdf.UnicodeTranslatorFromDescriptor("")
	if opts.FontPath != "" {
		pdf.AddUTF8Font(fontFamily, "", opts.FontPath)
		pdf.AddUTF8Font(fontFamily, "B", opts.FontPath)
		if err := pdf.Error(); err != nil {
			return fmt.Errorf("load font %s: %w", opts.FontPath, err)
		}
		family = fontFamily
		align = "R"
		translate = func(s string) string { return s }
	}

	pdf.AddPage()
	if len(doc.Parts) == 0 {
		pdf.SetFont(family, "", 11)
		pdf.MultiCell(0, 6, translate(doc.StudyID), "", align, false)
	}
	for _, part := range doc.Parts {
		pdf.SetFont(family, "B", 16)
		pdf.MultiCell(0, 8, translate(part.Heading), "", align, false)
		pdf.Ln(2)
		for _, block := range Flatten(part.Markup) {
			switch block.Kind {
			case BlockHeading:
				pdf.SetFont(family, "B", 12)
				pdf.MultiCell(0, 7, translate(block.Text), "", align, false)
			case BlockListItem:
				pdf.SetFont(family, "", 11)
				pdf.MultiCell(0, 6, translate("- "+block.Text), "", align, false)
			default:
				pdf.SetFont(family, "", 11)
				pdf.MultiCell(0, 6, translate(block.Text), "", align, false)
			}
		}
		pdf.Ln(sectionGapMM)
	}

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return pdf.Output(w)
}
