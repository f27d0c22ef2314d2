package render

import (
	"fmt"
	"strings"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/core/entity"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/johnfercher/maroto/v2/pkg/repository"
)

const pdfFontFamily = "docwiser"

// PDFRenderer renders documents as A4 PDFs.
type PDFRenderer struct {
	fonts []*entity.CustomFont
}

// NewPDFRenderer creates a PDF renderer. fontPath names a TrueType font with
// Hangul coverage; without one the built-in fonts are used.
func NewPDFRenderer(fontPath string) (*PDFRenderer, error) {
	if fontPath == "" {
		return &PDFRenderer{}, nil
	}
	fonts, err := repository.New().
		AddUTF8Font(pdfFontFamily, fontstyle.Normal, fontPath).
		AddUTF8Font(pdfFontFamily, fontstyle.Bold, fontPath).
		Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load font %s: %w", fontPath, err)
	}
	return &PDFRenderer{fonts: fonts}, nil
}

// Render lays out v and returns the generated PDF.
func (r *PDFRenderer) Render(v *View) (*Artifact, error) {
	builder := config.NewBuilder()
	if len(r.fonts) > 0 {
		builder = builder.
			WithCustomFonts(r.fonts).
			WithDefaultFont(&props.Font{Family: pdfFontFamily})
	}
	m := maroto.New(builder.Build())

	titleCol := text.NewCol(9, v.Title, props.Text{
		Size:  20,
		Style: fontstyle.Bold,
		Align: align.Center,
	})
	if ext, ok := pdfImageType(v.Stamp); ok {
		m.AddRow(24,
			titleCol,
			image.NewFromBytesCol(3, v.Stamp.Data, ext, props.Rect{Center: true, Percent: 80}),
		)
	} else {
		m.AddRow(24, titleCol, col.New(3))
	}

	m.AddRow(8,
		text.NewCol(6, v.Labels.Supplier, props.Text{Style: fontstyle.Bold, Size: 11}),
		text.NewCol(6, v.Labels.Recipient, props.Text{Style: fontstyle.Bold, Size: 11}),
	)
	for i := 0; i < max(len(v.Supplier), len(v.Recipient)); i++ {
		cols := append(fieldCols(v.Supplier, i), fieldCols(v.Recipient, i)...)
		m.AddRow(6, cols...)
	}

	m.AddRow(4, col.New(12))
	m.AddRow(6,
		text.NewCol(2, v.Labels.Issued, props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(10, v.Issued, props.Text{Size: 9}),
	)
	for _, h := range v.Header {
		m.AddRow(6,
			text.NewCol(2, h.Label, props.Text{Style: fontstyle.Bold, Size: 9}),
			text.NewCol(10, h.Value, props.Text{Size: 9}),
		)
	}

	m.AddRow(4, col.New(12))
	header := props.Text{Style: fontstyle.Bold, Size: 9}
	headerRight := props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}
	m.AddRow(8,
		text.NewCol(3, v.Labels.Item, header),
		text.NewCol(1, v.Labels.Quantity, headerRight),
		text.NewCol(2, v.Labels.UnitPrice, headerRight),
		text.NewCol(2, v.Labels.SupplyPrice, headerRight),
		text.NewCol(2, v.Labels.Tax, headerRight),
		text.NewCol(2, v.Labels.Note, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Center}),
	)

	cell := props.Text{Size: 9}
	cellRight := props.Text{Size: 9, Align: align.Right}
	for _, it := range v.Items {
		m.AddRow(7,
			text.NewCol(3, it.Name, cell),
			text.NewCol(1, it.Quantity, cellRight),
			text.NewCol(2, it.UnitPrice, cellRight),
			text.NewCol(2, it.SupplyPrice, cellRight),
			text.NewCol(2, it.Tax, cellRight),
			text.NewCol(2, it.Note, props.Text{Size: 9, Align: align.Center}),
		)
	}

	m.AddRow(4, col.New(12))
	totals := []Row{
		{Label: v.Labels.TotalSupply, Value: v.TotalSupply},
		{Label: v.Labels.TotalTax, Value: v.TotalTax},
		{Label: v.Labels.TotalAmount, Value: v.TotalAmount},
	}
	for _, t := range totals {
		m.AddRow(7,
			col.New(6),
			text.NewCol(3, t.Label, props.Text{Style: fontstyle.Bold, Size: 9}),
			text.NewCol(3, t.Value, props.Text{Size: 9, Align: align.Right}),
		)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate pdf: %w", err)
	}
	return &Artifact{
		Filename:    v.ExportName + ".pdf",
		ContentType: "application/pdf",
		Body:        doc.GetBytes(),
	}, nil
}

func fieldCols(rows []Row, i int) []core.Col {
	if i >= len(rows) {
		return []core.Col{col.New(2), col.New(4)}
	}
	return []core.Col{
		col.New(2).Add(text.New(rows[i].Label, props.Text{Style: fontstyle.Bold, Size: 8})),
		col.New(4).Add(text.New(rows[i].Value, props.Text{Size: 8})),
	}
}

// pdfImageType reports whether the stamp can be embedded; the PDF backend only
// reads PNG and JPEG.
func pdfImageType(s *Stamp) (extension.Type, bool) {
	if s == nil {
		return "", false
	}
	switch strings.ToLower(s.MIME) {
	case "image/png":
		return extension.Png, true
	case "image/jpeg", "image/jpg":
		return extension.Jpg, true
	}
	return "", false
}
