package models

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinDocTypes(t *testing.T) {
	types := BuiltinDocTypes()
	assert.Equal(t, []string{DocTypeEstimate, DocTypeStatement}, types.Keys())

	statement, err := types.Get(DocTypeStatement)
	require.NoError(t, err)
	assert.Equal(t, "soa.users", statement.UsersKey())
	assert.Equal(t, "soa.current_user", statement.CurrentUserKey())
	assert.Equal(t, "invoices", statement.DocumentsKey)
	assert.True(t, statement.Stamp)
	assert.Len(t, statement.Supplier, 8)
	assert.Len(t, statement.Recipient, 8)

	estimate, err := types.Get(DocTypeEstimate)
	require.NoError(t, err)
	assert.Equal(t, "soa_estimate.users", estimate.UsersKey())
	assert.Equal(t, "estimates", estimate.DocumentsKey)
	assert.False(t, estimate.Stamp)
	assert.Len(t, estimate.Supplier, 3)
	assert.Len(t, estimate.Recipient, 5)
	assert.Len(t, estimate.Header, 6)

	_, err = types.Get("receipt")
	assert.Error(t, err)
}

func TestDocType_ProfileSide(t *testing.T) {
	d, err := BuiltinDocTypes().Get(DocTypeEstimate)
	require.NoError(t, err)

	assert.Equal(t, SideSupplier, d.ProfileSide("supplier_company"))
	assert.Equal(t, SideRecipient, d.ProfileSide("recipient_email"))
	assert.Equal(t, SideNone, d.ProfileSide("supplier_reg_num"), "statement-only field")
	assert.Equal(t, SideNone, d.ProfileSide("estimate_date"), "header fields are not profile fields")
}

func TestDocType_FilterDropsUnknownKeys(t *testing.T) {
	d, err := BuiltinDocTypes().Get(DocTypeStatement)
	require.NoError(t, err)

	in := FieldMap{"transaction_date": "2024-01-02", "evil": "x"}
	out := d.FilterHeader(in)
	assert.Equal(t, FieldMap{"transaction_date": "2024-01-02"}, out)

	out["transaction_date"] = "changed"
	assert.Equal(t, "2024-01-02", in["transaction_date"], "filter must copy")
}

func TestParseDocTypes_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"not yaml", "{{{"},
		{"missing scope", "- {key: a, documents_key: docs}"},
		{"reserved documents key", "- {key: a, scope: s, documents_key: profile}"},
		{"stamps documents key", "- {key: a, scope: s, documents_key: stamps}"},
		{"duplicate field", `
- key: a
  scope: s
  documents_key: docs
  supplier: [{name: x}]
  recipient: [{name: x}]
`},
		{"duplicate key", `
- {key: a, scope: s, documents_key: docs}
- {key: a, scope: t, documents_key: docs}
`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDocTypes([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoadDocTypes_OverridesBuiltins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "types.yaml")
	content := `
- key: estimate
  title: Quote
  scope: quote
  documents_key: quotes
- key: receipt
  title: Receipt
  scope: rcpt
  documents_key: receipts
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	types, err := LoadDocTypes(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"estimate", "receipt", "statement"}, types.Keys())
	assert.Equal(t, "Quote", types["estimate"].Title)
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{Item: 0, Field: "quantity", Reason: "required"}
	assert.Equal(t, "item 1: quantity: required", err.Error())
	assert.True(t, IsValidation(err))

	assert.Equal(t, "id: required", NewValidationError("id", "required").Error())
}
