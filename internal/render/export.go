package render

import (
	"fmt"
	"strings"

	"github.com/mmynk/docwiser/internal/models"
)

// Supported export formats.
const (
	FormatPDF  = "pdf"
	FormatHTML = "html"
)

// Artifact is a rendered document ready to be saved or served.
type Artifact struct {
	Filename    string
	ContentType string
	Body        []byte
}

// Renderer turns a view into an artifact.
type Renderer interface {
	Render(v *View) (*Artifact, error)
}

// Exporter renders documents of one document type.
type Exporter struct {
	docType   *models.DocType
	formatter *Formatter
	labels    Labels
	renderers map[string]Renderer
}

// NewExporter creates an exporter with the HTML renderer and the given PDF renderer.
func NewExporter(docType *models.DocType, formatter *Formatter, labels Labels, pdf *PDFRenderer) *Exporter {
	return &Exporter{
		docType:   docType,
		formatter: formatter,
		labels:    labels,
		renderers: map[string]Renderer{
			FormatHTML: NewHTMLRenderer(),
			FormatPDF:  pdf,
		},
	}
}

// Export renders doc in format ("pdf" or "html").
func (e *Exporter) Export(doc *models.Document, format string) (*Artifact, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = FormatPDF
	}
	r, ok := e.renderers[format]
	if !ok {
		return nil, models.NewValidationError("format", fmt.Sprintf("unsupported format %q", format))
	}

	v, err := NewView(e.docType, doc, e.formatter, e.labels)
	if err != nil {
		return nil, fmt.Errorf("failed to build view of %s: %w", doc.ID, err)
	}
	return r.Render(v)
}
