package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/docwiser/internal/calculator"
	"github.com/mmynk/docwiser/internal/models"
)

func TestAssembler_GenerateScenarioA(t *testing.T) {
	svc, _ := newTestService(t, models.DocTypeStatement)
	ctx := context.Background()

	_, err := svc.identity.Login(ctx, "a@x.com", "pw")
	require.NoError(t, err)

	got, err := svc.assembler.Generate(ctx, "a@x.com", GenerateInput{
		Items: []calculator.Input{{Name: "widget", Quantity: "2", UnitPrice: "1000"}},
	})
	require.NoError(t, err)
	assert.True(t, got.Persisted)
	assert.Equal(t, 0, got.Index)

	doc := got.Document
	assert.NotEmpty(t, doc.ID)
	assert.Equal(t, models.DocTypeStatement, doc.Type)
	assert.Equal(t, testNow, doc.CreatedAt)
	require.Len(t, doc.Items, 1)
	assert.True(t, doc.Items[0].SupplyPrice.Equal(decimal.NewFromInt(2000)))
	assert.True(t, doc.Items[0].Tax.Equal(decimal.NewFromInt(200)))
	assert.True(t, doc.Totals.Supply.Equal(decimal.NewFromInt(2000)))
	assert.True(t, doc.Totals.Tax.Equal(decimal.NewFromInt(200)))
	assert.True(t, doc.Totals.Amount.Equal(decimal.NewFromInt(2200)))
}

func TestAssembler_ValidationStoresNothing(t *testing.T) {
	svc, _ := newTestService(t, models.DocTypeStatement)
	ctx := context.Background()

	_, err := svc.identity.Login(ctx, "a@x.com", "pw")
	require.NoError(t, err)
	_, err = svc.assembler.Generate(ctx, "a@x.com", GenerateInput{
		Items: []calculator.Input{{Name: "first", Quantity: "1", UnitPrice: "100"}},
	})
	require.NoError(t, err)

	tests := []struct {
		name      string
		items     []calculator.Input
		wantItem  int
		wantField string
	}{
		{
			name:      "empty quantity",
			items:     []calculator.Input{{Name: "widget", Quantity: "", UnitPrice: "1000"}},
			wantItem:  0,
			wantField: "quantity",
		},
		{
			name: "non-numeric price on second row",
			items: []calculator.Input{
				{Name: "ok", Quantity: "1", UnitPrice: "10"},
				{Name: "bad", Quantity: "1", UnitPrice: "ten"},
			},
			wantItem:  1,
			wantField: "unit_price",
		},
		{
			name: "first failure wins",
			items: []calculator.Input{
				{Name: "a", Quantity: "1", UnitPrice: " "},
				{Name: "b", Quantity: "", UnitPrice: "1"},
			},
			wantItem:  0,
			wantField: "unit_price",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.assembler.Generate(ctx, "a@x.com", GenerateInput{Items: tt.items})

			var verr *models.ValidationError
			require.True(t, errors.As(err, &verr), "got %v", err)
			assert.Equal(t, tt.wantItem, verr.Item)
			assert.Equal(t, tt.wantField, verr.Field)

			docs, err := svc.history.ListAll(ctx, "a@x.com")
			require.NoError(t, err)
			assert.Len(t, docs, 1, "history length unchanged")
		})
	}
}

func TestAssembler_SnapshotIsIsolated(t *testing.T) {
	svc, _ := newTestService(t, models.DocTypeStatement)
	ctx := context.Background()

	_, err := svc.identity.Login(ctx, "a@x.com", "pw")
	require.NoError(t, err)
	_, err = svc.profiles.SetField(ctx, "a@x.com", "supplier_name", "Acme")
	require.NoError(t, err)
	require.NoError(t, svc.profiles.SetStamp(ctx, "a@x.com", "data:image/png;base64,AAAA"))

	_, err = svc.assembler.Generate(ctx, "a@x.com", GenerateInput{
		Header: models.FieldMap{"transaction_date": "2024-05-01", "injected": "x"},
		Items:  []calculator.Input{{Name: "widget", Quantity: "1", UnitPrice: "1"}},
		// Ignored for a logged-in user.
		Supplier: models.FieldMap{"supplier_name": "Someone else"},
	})
	require.NoError(t, err)

	_, err = svc.profiles.SetField(ctx, "a@x.com", "supplier_name", "Acme Renamed")
	require.NoError(t, err)
	require.NoError(t, svc.profiles.SetStamp(ctx, "a@x.com", ""))

	docs, err := svc.history.ListAll(ctx, "a@x.com")
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "Acme", docs[0].Supplier["supplier_name"])
	assert.Equal(t, "data:image/png;base64,AAAA", docs[0].Stamp)
	assert.Equal(t, models.FieldMap{"transaction_date": "2024-05-01"}, docs[0].Header)
}

func TestAssembler_Anonymous(t *testing.T) {
	svc, store := newTestService(t, models.DocTypeEstimate)
	ctx := context.Background()

	got, err := svc.assembler.Generate(ctx, "", GenerateInput{
		Supplier:  models.FieldMap{"supplier_company": "Acme", "supplier_name": "wrong schema"},
		Recipient: models.FieldMap{"recipient_company": "Globex"},
		Items: []calculator.Input{
			{Name: "exempt", Quantity: "1", UnitPrice: "500", TaxExempt: true},
			{Name: "normal", Quantity: "1", UnitPrice: "1,000"},
		},
	})
	require.NoError(t, err)
	assert.False(t, got.Persisted)
	assert.Equal(t, -1, got.Index)
	assert.Equal(t, models.FieldMap{"supplier_company": "Acme"}, got.Document.Supplier)
	assert.Equal(t, models.FieldMap{"recipient_company": "Globex"}, got.Document.Recipient)
	assert.True(t, got.Document.Totals.Amount.Equal(decimal.NewFromInt(1600)), "scenario B totals")

	_, err = store.Get(ctx, "soa_estimate.users")
	assert.Error(t, err, "anonymous generation writes nothing")
}

func TestAssembler_UnknownUser(t *testing.T) {
	svc, _ := newTestService(t, models.DocTypeStatement)

	_, err := svc.assembler.Generate(context.Background(), "ghost", GenerateInput{})
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestAssembler_AppendsInOrder(t *testing.T) {
	svc, _ := newTestService(t, models.DocTypeStatement)
	ctx := context.Background()
	_, err := svc.identity.Login(ctx, "a@x.com", "pw")
	require.NoError(t, err)

	ids := []string{"one", "two", "three"}
	next := 0
	svc.assembler.newID = func() string { next++; return ids[next-1] }

	for i := range ids {
		got, err := svc.assembler.Generate(ctx, "a@x.com", GenerateInput{})
		require.NoError(t, err)
		assert.Equal(t, i, got.Index)

		docs, err := svc.history.ListAll(ctx, "a@x.com")
		require.NoError(t, err)
		assert.Len(t, docs, i+1)
	}

	docs, err := svc.history.ListAll(ctx, "a@x.com")
	require.NoError(t, err)
	for i, d := range docs {
		assert.Equal(t, ids[i], d.ID)
		assert.True(t, d.Totals.Amount.IsZero())
	}
}
