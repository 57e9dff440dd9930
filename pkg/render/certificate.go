package render

import (
	"bytes"
	"fmt"

	"cpd-events-be/pkg/layout"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/font/gofont"
)

// Certificate describes one document to render: the native page size in
// points, the saved field placements (top-left origin, points) and the
// substitution values per field key.
type Certificate struct {
	PageWidth  float64
	PageHeight float64
	Fields     []layout.FieldSpec
	Placements map[layout.FieldID]layout.Position
	Values     map[layout.FieldID]string
}

// CertificatePDF renders a single-page certificate PDF and returns the raw
// bytes. Placements use the editor's top-left origin; PDF user space has
// its origin at the bottom-left corner, so y is flipped here.
func CertificatePDF(c Certificate) ([]byte, error) {
	if c.PageWidth <= 0 || c.PageHeight <= 0 {
		return nil, fmt.Errorf("invalid page size %gx%g", c.PageWidth, c.PageHeight)
	}
	fields := c.Fields
	if len(fields) == 0 {
		fields = layout.DefaultFields()
	}

	var buf bytes.Buffer
	pageSize := &pdf.Rectangle{URx: c.PageWidth, URy: c.PageHeight}
	page, err := document.WriteSinglePage(&buf, pageSize, pdf.V2_0, nil)
	if err != nil {
		return nil, fmt.Errorf("create pdf page: %w", err)
	}

	face, err := gofont.Regular.NewSimple(nil)
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}

	for _, spec := range fields {
		pos, ok := c.Placements[spec.ID]
		if !ok {
			pos = spec.Default
		}
		value := c.Values[spec.ID]
		if value == "" {
			continue
		}

		size := pos.FontSize
		if size <= 0 {
			size = layout.DefaultFontSize
		}

		page.TextSetFont(face, size)
		page.TextBegin()
		page.TextFirstLine(pos.X, c.PageHeight-pos.Y)
		page.TextShow(value)
		page.TextEnd()
	}

	if err := page.Close(); err != nil {
		return nil, fmt.Errorf("close pdf page: %w", err)
	}
	return buf.Bytes(), nil
}

// SampleValues returns placeholder substitutions for preview rendering.
func SampleValues() map[layout.FieldID]string {
	return map[layout.FieldID]string{
		layout.FieldAttendeeName:  "Jane Doe",
		layout.FieldEventTitle:    "Advanced Cardiac Life Support Workshop",
		layout.FieldEventDate:     "12 March 2026",
		layout.FieldCpdCredits:    "6.0 CPD Credits",
		layout.FieldOrganizerName: "Medical Education Institute",
		layout.FieldIssuedDate:    "15 March 2026",
	}
}
