package account

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mmynk/docwiser/internal/models"
	"github.com/mmynk/docwiser/internal/storage/memory"
)

type testAccount struct {
	store    *memory.Store
	docType  *models.DocType
	reg      *Registry
	profiles *Profiles
	history  *History
	identity *Identity
}

func newTestAccount(t *testing.T, docTypeKey string) *testAccount {
	t.Helper()
	docType, err := models.BuiltinDocTypes().Get(docTypeKey)
	require.NoError(t, err)

	store := memory.New()
	reg := NewRegistry(store, docType, nil)
	profiles := NewProfiles(reg)
	return &testAccount{
		store:    store,
		docType:  docType,
		reg:      reg,
		profiles: profiles,
		history:  NewHistory(reg),
		identity: NewIdentity(reg, profiles),
	}
}

func (a *testAccount) rawUsers(t *testing.T) string {
	t.Helper()
	data, err := a.store.Get(context.Background(), a.docType.UsersKey())
	require.NoError(t, err)
	return string(data)
}
