package render

import (
	"encoding/base64"
	"errors"
	"strings"

	"github.com/mmynk/docwiser/internal/models"
)

// Labels are the fixed captions printed around the document fields.
type Labels struct {
	Supplier    string
	Recipient   string
	Item        string
	Quantity    string
	UnitPrice   string
	SupplyPrice string
	Tax         string
	Note        string
	TotalSupply string
	TotalTax    string
	TotalAmount string
	Issued      string
}

// KoreanLabels are the captions used by the built-in document types.
func KoreanLabels() Labels {
	return Labels{
		Supplier:    "공급자",
		Recipient:   "공급받는자",
		Item:        "품목",
		Quantity:    "수량",
		UnitPrice:   "단가",
		SupplyPrice: "공급가액",
		Tax:         "세액",
		Note:        "비고",
		TotalSupply: "공급가액 합계",
		TotalTax:    "세액 합계",
		TotalAmount: "합계금액",
		Issued:      "발행일",
	}
}

// Row is one labelled field.
type Row struct {
	Label string
	Value string
}

// ItemRow is one formatted line item.
type ItemRow struct {
	No          int
	Name        string
	Quantity    string
	UnitPrice   string
	SupplyPrice string
	Tax         string
	Note        string
}

// Stamp is a decoded stamp image.
type Stamp struct {
	MIME    string
	Data    []byte
	DataURL string
}

// View is the presentation model shared by every renderer.
type View struct {
	Title      string
	ExportName string
	DocumentID string
	Issued     string
	Labels     Labels

	Supplier  []Row
	Recipient []Row
	Header    []Row
	Items     []ItemRow

	TotalSupply string
	TotalTax    string
	TotalAmount string

	Stamp *Stamp
}

// NewView builds the presentation model of doc. Fields are listed in the order
// the document type declares them; values outside the schema are not shown.
func NewView(docType *models.DocType, doc *models.Document, f *Formatter, labels Labels) (*View, error) {
	v := &View{
		Title:       docType.Title,
		ExportName:  docType.ExportName,
		DocumentID:  doc.ID,
		Issued:      f.Date(doc.CreatedAt),
		Labels:      labels,
		Supplier:    fieldRows(docType.Supplier, doc.Supplier),
		Recipient:   fieldRows(docType.Recipient, doc.Recipient),
		Header:      fieldRows(docType.Header, doc.Header),
		Items:       make([]ItemRow, len(doc.Items)),
		TotalSupply: f.Number(doc.Totals.Supply),
		TotalTax:    f.Number(doc.Totals.Tax),
		TotalAmount: f.Number(doc.Totals.Amount),
	}
	if v.ExportName == "" {
		v.ExportName = docType.Key
	}

	for i, it := range doc.Items {
		row := ItemRow{
			No:          i + 1,
			Name:        it.Name,
			Quantity:    f.Number(it.Quantity),
			UnitPrice:   f.Number(it.UnitPrice),
			SupplyPrice: f.Number(it.SupplyPrice),
			Tax:         f.Number(it.Tax),
		}
		if it.TaxExempt {
			row.Note = docType.TaxExemptLabel
		}
		v.Items[i] = row
	}

	if docType.Stamp && doc.Stamp != "" {
		stamp, err := decodeStamp(doc.Stamp)
		if err != nil {
			return nil, err
		}
		v.Stamp = stamp
	}
	return v, nil
}

func fieldRows(fields []models.Field, values models.FieldMap) []Row {
	rows := make([]Row, len(fields))
	for i, f := range fields {
		rows[i] = Row{Label: f.Label, Value: values[f.Name]}
	}
	return rows
}

var errBadStamp = errors.New("stamp is not a base64 image data URL")

// decodeStamp parses "data:<mime>;base64,<payload>".
func decodeStamp(ref string) (*Stamp, error) {
	rest, ok := strings.CutPrefix(ref, "data:")
	if !ok {
		return nil, errBadStamp
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return nil, errBadStamp
	}
	mime, ok := strings.CutSuffix(meta, ";base64")
	if !ok || !strings.HasPrefix(mime, "image/") {
		return nil, errBadStamp
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, errors.Join(errBadStamp, err)
	}
	return &Stamp{MIME: mime, Data: data, DataURL: ref}, nil
}
