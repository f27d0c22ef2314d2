package middleware

import (
	"context"
	"errors"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/docwiser/internal/auth"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

// UserIDKey is the context key for storing the session user ID.
const UserIDKey contextKey = "user_id"

// GetUserID extracts the user ID from the context.
// Returns empty string if not found.
func GetUserID(ctx context.Context) string {
	userID, _ := ctx.Value(UserIDKey).(string)
	return userID
}

// WithUserID returns a copy of ctx carrying userID.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, UserIDKey, userID)
}

// Authenticator resolves a bearer token to the user of the active session.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (string, error)
}

func bearerToken(req connect.AnyRequest) (string, bool) {
	header := req.Header().Get("Authorization")
	if header == "" {
		return "", false
	}
	token, ok := strings.CutPrefix(header, "Bearer ")
	return strings.TrimSpace(token), ok
}

// RequireSession returns an interceptor that resolves the caller's session.
// Procedures listed in optional run without one; every other procedure fails
// with Unauthenticated unless the token belongs to the current user.
func RequireSession(authn Authenticator, optional ...string) connect.UnaryInterceptorFunc {
	open := make(map[string]bool, len(optional))
	for _, p := range optional {
		open[p] = true
	}

	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			procedure := req.Spec().Procedure

			token, ok := bearerToken(req)
			if !ok {
				if open[procedure] {
					return next(ctx, req)
				}
				return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
			}

			userID, err := authn.Authenticate(ctx, token)
			switch {
			case err == nil:
				return next(WithUserID(ctx, userID), req)
			case open[procedure] && (errors.Is(err, auth.ErrInvalidToken) || errors.Is(err, auth.ErrSessionEnded)):
				// A stale token on an optional procedure degrades to anonymous.
				return next(ctx, req)
			case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrSessionEnded), errors.Is(err, auth.ErrMissingToken):
				return nil, connect.NewError(connect.CodeUnauthenticated, err)
			default:
				return nil, connect.NewError(connect.CodeInternal, err)
			}
		}
	}
}
