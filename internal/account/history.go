package account

import (
	"context"
	"fmt"

	"github.com/mmynk/docwiser/internal/models"
)

// History is the append-only per-user document ledger.
type History struct {
	reg *Registry
}

// NewHistory creates a history store on top of reg.
func NewHistory(reg *Registry) *History {
	return &History{reg: reg}
}

// Append stores a copy of doc at the end of the user's history and returns its index.
func (h *History) Append(ctx context.Context, id string, doc *models.Document) (int, error) {
	index := -1
	err := h.reg.update(ctx, id, false, func(rec *userRecord) (bool, error) {
		rec.Documents = append(rec.Documents, doc.Clone())
		index = len(rec.Documents) - 1
		return true, nil
	})
	return index, err
}

// ListAll returns the user's documents in insertion order.
func (h *History) ListAll(ctx context.Context, id string) ([]*models.Document, error) {
	var out []*models.Document
	err := h.reg.view(ctx, id, func(rec *userRecord) error {
		out = make([]*models.Document, len(rec.Documents))
		for i, d := range rec.Documents {
			out[i] = d.Clone()
		}
		return nil
	})
	return out, err
}

// Get returns the document at index.
func (h *History) Get(ctx context.Context, id string, index int) (*models.Document, error) {
	var out *models.Document
	err := h.reg.view(ctx, id, func(rec *userRecord) error {
		if index < 0 || index >= len(rec.Documents) {
			return fmt.Errorf("document %d of %s: %w", index, id, models.ErrNotFound)
		}
		out = rec.Documents[index].Clone()
		return nil
	})
	return out, err
}
