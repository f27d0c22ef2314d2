package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	// SchemaVersion is the version tag written with every user record.
	SchemaVersion = 1

	// SchemaVersionKey is the JSON field carrying SchemaVersion.
	SchemaVersionKey = "schema_version"

	// StampsKey is the JSON field holding the stamp images referenced by a
	// user's documents, keyed by content hash.
	StampsKey = "stamps"
)

// LineItem is one billable row of a document.
// SupplyPrice and Tax are derived by the calculator and stored alongside the inputs.
type LineItem struct {
	Name      string          `json:"name"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	TaxExempt bool            `json:"tax_exempt"`

	SupplyPrice decimal.Decimal `json:"supply_price"`
	Tax         decimal.Decimal `json:"tax"`
}

// Totals aggregates the line items of a document.
// Amount is always Supply + Tax.
type Totals struct {
	Supply decimal.Decimal `json:"supply"`
	Tax    decimal.Decimal `json:"tax"`
	Amount decimal.Decimal `json:"amount"`
}

// Document is an estimate or transaction statement captured at generation time.
// Once appended to a history it is never modified.
type Document struct {
	// ID is the unique identifier for the document (UUID format).
	ID string `json:"id"`

	// Type is the DocType key the document was generated with.
	Type string `json:"type"`

	CreatedAt time.Time `json:"created_at"`

	// Supplier, Recipient and Stamp are copies of the profile at generation time.
	Supplier  FieldMap `json:"supplier"`
	Recipient FieldMap `json:"recipient"`
	Stamp     string   `json:"stamp,omitempty"`

	// StampRef names the stored stamp image when Stamp is kept out of line.
	StampRef string `json:"stamp_ref,omitempty"`

	// Header holds the variant specific fields (dates, terms, notes).
	Header FieldMap `json:"header"`

	Items  []LineItem `json:"items"`
	Totals Totals     `json:"totals"`
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	out := *d
	out.Supplier = d.Supplier.Clone()
	out.Recipient = d.Recipient.Clone()
	out.Header = d.Header.Clone()
	out.Items = append([]LineItem(nil), d.Items...)
	return &out
}
