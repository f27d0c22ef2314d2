package auth

import (
	"context"
	"fmt"
)

// SessionSource reports the user of the active local session.
type SessionSource interface {
	CurrentUser(ctx context.Context) (string, bool, error)
}

// Authenticator binds HTTP callers to the active local session. A token is
// accepted only while the user it was issued to is still the current user, so
// logging out (or another login) invalidates every token issued before.
type Authenticator struct {
	sessions SessionSource
	tokens   *JWTManager
}

// NewAuthenticator creates an authenticator over sessions.
func NewAuthenticator(sessions SessionSource, tokens *JWTManager) *Authenticator {
	return &Authenticator{sessions: sessions, tokens: tokens}
}

// Issue creates a token for userID.
func (a *Authenticator) Issue(userID string) (string, error) {
	return a.tokens.Generate(userID)
}

// Authenticate returns the user id a token is bound to.
func (a *Authenticator) Authenticate(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", ErrMissingToken
	}
	claims, err := a.tokens.Validate(token)
	if err != nil {
		return "", err
	}

	current, ok, err := a.sessions.CurrentUser(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to read session: %w", err)
	}
	if !ok || current != claims.UserID {
		return "", ErrSessionEnded
	}
	return claims.UserID, nil
}
