package account

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/docwiser/internal/models"
)

func TestIdentity_LoginValidation(t *testing.T) {
	a := newTestAccount(t, models.DocTypeStatement)
	ctx := context.Background()

	tests := []struct {
		name      string
		id        string
		secret    string
		wantField string
	}{
		{"empty id", "", "pw", "id"},
		{"blank id", "   ", "pw", "id"},
		{"empty secret", "a@x.com", "", "secret"},
		{"blank secret", "a@x.com", " \t", "secret"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := a.identity.Login(ctx, tt.id, tt.secret)
			var verr *models.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantField, verr.Field)
		})
	}

	_, ok, err := a.identity.CurrentUser(ctx)
	require.NoError(t, err)
	assert.False(t, ok, "failed logins must not start a session")
}

func TestIdentity_LoginCreatesUser(t *testing.T) {
	a := newTestAccount(t, models.DocTypeStatement)
	ctx := context.Background()

	_, err := a.profiles.Load(ctx, "a@x.com")
	require.ErrorIs(t, err, models.ErrNotFound)

	session, err := a.identity.Login(ctx, "  a@x.com ", "anything")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", session.UserID)
	assert.Empty(t, session.Profile.Supplier)

	id, ok, err := a.identity.CurrentUser(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "a@x.com", id)

	_, err = a.profiles.Load(ctx, "a@x.com")
	assert.NoError(t, err)
}

func TestIdentity_SecretIsNotVerified(t *testing.T) {
	a := newTestAccount(t, models.DocTypeStatement)
	ctx := context.Background()

	_, err := a.identity.Login(ctx, "a@x.com", "first")
	require.NoError(t, err)
	require.NoError(t, a.identity.Logout(ctx))

	_, err = a.identity.Login(ctx, "a@x.com", "different")
	assert.NoError(t, err)
}

func TestIdentity_LogoutAndBackRestoresProfile(t *testing.T) {
	a := newTestAccount(t, models.DocTypeStatement)
	ctx := context.Background()

	_, err := a.identity.Login(ctx, "a@x.com", "pw")
	require.NoError(t, err)
	_, err = a.profiles.SetField(ctx, "a@x.com", "supplier_name", "Acme")
	require.NoError(t, err)
	_, err = a.profiles.SetField(ctx, "a@x.com", "recipient_tel", "010-1234-5678")
	require.NoError(t, err)
	require.NoError(t, a.profiles.SetStamp(ctx, "a@x.com", "data:image/png;base64,AAAA"))

	require.NoError(t, a.identity.Logout(ctx))
	_, ok, err := a.identity.CurrentUser(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	session, err := a.identity.Login(ctx, "a@x.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, models.FieldMap{"supplier_name": "Acme"}, session.Profile.Supplier)
	assert.Equal(t, models.FieldMap{"recipient_tel": "010-1234-5678"}, session.Profile.Recipient)
	assert.Equal(t, "data:image/png;base64,AAAA", session.Profile.Stamp)
}

func TestIdentity_ScopesAreIndependent(t *testing.T) {
	statement := newTestAccount(t, models.DocTypeStatement)
	ctx := context.Background()

	estimateType, err := models.BuiltinDocTypes().Get(models.DocTypeEstimate)
	require.NoError(t, err)
	estimateReg := NewRegistry(statement.store, estimateType, nil)
	estimateIdentity := NewIdentity(estimateReg, NewProfiles(estimateReg))

	_, err = statement.identity.Login(ctx, "a@x.com", "pw")
	require.NoError(t, err)

	_, ok, err := estimateIdentity.CurrentUser(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}
