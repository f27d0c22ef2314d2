package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/docwiser/internal/account"
	"github.com/mmynk/docwiser/internal/calculator"
	"github.com/mmynk/docwiser/internal/metrics"
	"github.com/mmynk/docwiser/internal/models"
)

// GenerateInput is the form state at the moment the user generates a document.
// Supplier and Recipient are only used for anonymous generation.
type GenerateInput struct {
	Header    models.FieldMap
	Items     []calculator.Input
	Supplier  models.FieldMap
	Recipient models.FieldMap
}

// Generated is the outcome of Assembler.Generate. Index is the position in the
// user's history, or -1 when the document was not persisted.
type Generated struct {
	Document  *models.Document
	Persisted bool
	Index     int
}

// Assembler builds documents for one document type.
type Assembler struct {
	docType  *models.DocType
	profiles *account.Profiles
	history  *account.History
	metrics  *metrics.Metrics
	logger   *slog.Logger

	now   func() time.Time
	newID func() string
}

// AssemblerOption customizes an Assembler.
type AssemblerOption func(*Assembler)

// WithClock sets the source of document timestamps.
func WithClock(now func() time.Time) AssemblerOption {
	return func(a *Assembler) { a.now = now }
}

// WithIDs sets the source of document ids.
func WithIDs(newID func() string) AssemblerOption {
	return func(a *Assembler) { a.newID = newID }
}

// NewAssembler creates an assembler that snapshots profiles and appends to history.
func NewAssembler(docType *models.DocType, profiles *account.Profiles, history *account.History, m *metrics.Metrics, logger *slog.Logger, opts ...AssemblerOption) *Assembler {
	if logger == nil {
		logger = slog.Default()
	}
	a := &Assembler{
		docType:  docType,
		profiles: profiles,
		history:  history,
		metrics:  m,
		logger:   logger,
		now:      time.Now,
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Generate validates the items, snapshots the parties and computes the totals.
// With a userID the document is appended to that user's history; otherwise it
// is returned without being stored. A validation failure stores nothing.
func (a *Assembler) Generate(ctx context.Context, userID string, in GenerateInput) (*Generated, error) {
	items := make([]models.LineItem, len(in.Items))
	rows := make([]calculator.Row, len(in.Items))
	for i, it := range in.Items {
		qty, err := calculator.ParseAmount(it.Quantity)
		if err != nil {
			return nil, &models.ValidationError{Item: i, Field: "quantity", Reason: err.Error()}
		}
		price, err := calculator.ParseAmount(it.UnitPrice)
		if err != nil {
			return nil, &models.ValidationError{Item: i, Field: "unit_price", Reason: err.Error()}
		}
		rows[i] = calculator.ComputeRow(qty, price, it.TaxExempt)
		items[i] = models.LineItem{
			Name:        it.Name,
			Quantity:    qty,
			UnitPrice:   price,
			TaxExempt:   it.TaxExempt,
			SupplyPrice: rows[i].SupplyPrice,
			Tax:         rows[i].Tax,
		}
	}
	totals := calculator.ComputeTotals(rows)

	doc := &models.Document{
		ID:        a.newID(),
		Type:      a.docType.Key,
		CreatedAt: a.now(),
		Header:    a.docType.FilterHeader(in.Header),
		Items:     items,
		Totals:    models.Totals{Supply: totals.Supply, Tax: totals.Tax, Amount: totals.Amount},
	}

	if userID == "" {
		doc.Supplier = a.docType.FilterSupplier(in.Supplier)
		doc.Recipient = a.docType.FilterRecipient(in.Recipient)
		a.metrics.DocumentGenerated(a.docType.Key, false)
		a.logger.Debug("Generated anonymous document", "document_id", doc.ID, "items", len(items))
		return &Generated{Document: doc, Index: -1}, nil
	}

	profile, err := a.profiles.Load(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	doc.Supplier = a.docType.FilterSupplier(profile.Supplier)
	doc.Recipient = a.docType.FilterRecipient(profile.Recipient)
	if a.docType.Stamp {
		doc.Stamp = profile.Stamp
	}

	index, err := a.history.Append(ctx, userID, doc)
	if err != nil {
		return nil, fmt.Errorf("failed to append document: %w", err)
	}

	a.metrics.DocumentGenerated(a.docType.Key, true)
	a.logger.Info("Document generated",
		"user_id", userID,
		"document_id", doc.ID,
		"index", index,
		"items", len(items),
		"amount", doc.Totals.Amount.String(),
	)
	return &Generated{Document: doc, Persisted: true, Index: index}, nil
}
