package account

import (
	"context"
	"strings"

	"github.com/mmynk/docwiser/internal/models"
)

// Profiles is the per-user profile repository.
type Profiles struct {
	reg *Registry
}

// NewProfiles creates a profile repository on top of reg.
func NewProfiles(reg *Registry) *Profiles {
	return &Profiles{reg: reg}
}

// GetOrCreate returns the profile of id, creating and persisting an empty one on first access.
func (p *Profiles) GetOrCreate(ctx context.Context, id string) (models.Profile, error) {
	var out models.Profile
	err := p.reg.update(ctx, id, true, func(rec *userRecord) (bool, error) {
		out = rec.Profile.Clone()
		return false, nil
	})
	return out, err
}

// Load returns the stored profile of id, or models.ErrNotFound if the user was never created.
func (p *Profiles) Load(ctx context.Context, id string) (models.Profile, error) {
	var out models.Profile
	err := p.reg.view(ctx, id, func(rec *userRecord) error {
		out = rec.Profile.Clone()
		return nil
	})
	return out, err
}

// SetField stores value under a supplier or recipient field. Fields outside the
// document type's schema are ignored and reported as not applied.
func (p *Profiles) SetField(ctx context.Context, id, field, value string) (bool, error) {
	side := p.reg.docType.ProfileSide(field)
	if side == models.SideNone {
		return false, nil
	}
	err := p.reg.update(ctx, id, false, func(rec *userRecord) (bool, error) {
		switch side {
		case models.SideSupplier:
			rec.Profile.Supplier[field] = value
		case models.SideRecipient:
			rec.Profile.Recipient[field] = value
		}
		return true, nil
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// SetStamp replaces the stamp image. An empty ref clears it.
func (p *Profiles) SetStamp(ctx context.Context, id, ref string) error {
	if !p.reg.docType.Stamp {
		return models.NewValidationError("stamp", "not supported by "+p.reg.docType.Key)
	}
	if ref != "" && !strings.HasPrefix(ref, "data:image/") {
		return models.NewValidationError("stamp", "must be an image data URL")
	}
	return p.reg.update(ctx, id, false, func(rec *userRecord) (bool, error) {
		if rec.Profile.Stamp == ref {
			return false, nil
		}
		rec.Profile.Stamp = ref
		return true, nil
	})
}
