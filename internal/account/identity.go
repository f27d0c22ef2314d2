package account

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mmynk/docwiser/internal/models"
	"github.com/mmynk/docwiser/internal/storage"
)

// Session is the result of a successful login.
type Session struct {
	UserID  string
	Profile models.Profile
}

// Identity tracks which user, if any, has an active local session.
//
// Login is a presence gate: the secret must be non-empty but is never checked
// against a stored credential.
type Identity struct {
	reg      *Registry
	profiles *Profiles
}

// NewIdentity creates an identity store that shares reg with profiles.
func NewIdentity(reg *Registry, profiles *Profiles) *Identity {
	return &Identity{reg: reg, profiles: profiles}
}

// Login activates a session for id, creating the user on first login.
func (i *Identity) Login(ctx context.Context, id, secret string) (*Session, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, models.NewValidationError("id", "required")
	}
	if strings.TrimSpace(secret) == "" {
		return nil, models.NewValidationError("secret", "required")
	}

	profile, err := i.profiles.GetOrCreate(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := i.reg.store.Put(ctx, i.reg.docType.CurrentUserKey(), []byte(id)); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	i.reg.logger.Info("User logged in", "user_id", id)
	return &Session{UserID: id, Profile: profile}, nil
}

// Logout clears the active session.
func (i *Identity) Logout(ctx context.Context) error {
	if err := i.reg.store.Delete(ctx, i.reg.docType.CurrentUserKey()); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	i.reg.logger.Info("User logged out")
	return nil
}

// CurrentUser returns the id of the active session.
func (i *Identity) CurrentUser(ctx context.Context) (string, bool, error) {
	data, err := i.reg.store.Get(ctx, i.reg.docType.CurrentUserKey())
	if errors.Is(err, storage.ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read session: %w", err)
	}
	id := strings.TrimSpace(string(data))
	return id, id != "", nil
}
