package account

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/docwiser/internal/models"
)

func TestRegistry_CorruptBlobLoadsEmpty(t *testing.T) {
	a := newTestAccount(t, models.DocTypeStatement)
	ctx := context.Background()
	require.NoError(t, a.store.Put(ctx, a.docType.UsersKey(), []byte("{not json")))

	_, err := a.profiles.Load(ctx, "a@x.com")
	assert.ErrorIs(t, err, models.ErrNotFound)

	_, err = a.identity.Login(ctx, "a@x.com", "pw")
	require.NoError(t, err)
	assert.Contains(t, a.rawUsers(t), `"a@x.com"`)
}

func TestRegistry_DropsUnreadableRecord(t *testing.T) {
	a := newTestAccount(t, models.DocTypeStatement)
	ctx := context.Background()
	require.NoError(t, a.store.Put(ctx, a.docType.UsersKey(),
		[]byte(`{"broken":"nope","ok":{"schema_version":1,"profile":{"supplier":{"supplier_name":"Acme"}},"invoices":[]}}`)))

	ids, err := a.reg.Users(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"ok"}, ids)

	p, err := a.profiles.Load(ctx, "ok")
	require.NoError(t, err)
	assert.Equal(t, "Acme", p.Supplier["supplier_name"])
	assert.NotNil(t, p.Recipient)
}

func TestRegistry_PreservesNewerSchema(t *testing.T) {
	a := newTestAccount(t, models.DocTypeStatement)
	ctx := context.Background()
	future := `{"schema_version":99,"profile":{},"invoices":[],"extra":true}`
	require.NoError(t, a.store.Put(ctx, a.docType.UsersKey(), []byte(`{"future@x.com":`+future+`}`)))

	_, err := a.profiles.Load(ctx, "future@x.com")
	assert.ErrorIs(t, err, models.ErrSchemaVersion)
	_, err = a.identity.Login(ctx, "future@x.com", "pw")
	assert.ErrorIs(t, err, models.ErrSchemaVersion)

	_, err = a.identity.Login(ctx, "b@x.com", "pw")
	require.NoError(t, err)
	assert.Contains(t, a.rawUsers(t), `"extra":true`, "newer records are written back untouched")
}

const legacyStatement = `{
  "a@x.com": {
    "profile": {
      "supplier": {"supplier_name": "Acme", "bogus": "dropped on snapshot"},
      "recipient": {"recipient_name": "Globex"},
      "stamp": "data:image/png;base64,AAAA"
    },
    "invoices": [{
      "createdAt": "2024-03-04T05:06:07.890Z",
      "supplier": {"supplier_name": "Acme", "bogus": "x"},
      "recipient": {"recipient_name": "Globex"},
      "transactionDate": "2024-03-04",
      "terms": "30 days",
      "items": [
        {"name": "widget", "quantity": "2", "price": "1000", "supplyPrice": "2,000", "tax": "200", "taxExempt": false},
        {"name": "service", "quantity": "1", "price": "500", "supplyPrice": "500", "tax": "0", "taxExempt": true}
      ],
      "totals": {"supply": "2,500", "tax": "200", "amount": "2,700"}
    }]
  }
}`

func TestRegistry_MigratesLegacyRecords(t *testing.T) {
	a := newTestAccount(t, models.DocTypeStatement)
	ctx := context.Background()
	require.NoError(t, a.store.Put(ctx, a.docType.UsersKey(), []byte(legacyStatement)))

	p, err := a.profiles.Load(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "Acme", p.Supplier["supplier_name"])
	assert.Equal(t, "data:image/png;base64,AAAA", p.Stamp)

	docs, err := a.history.ListAll(ctx, "a@x.com")
	require.NoError(t, err)
	require.Len(t, docs, 1)
	doc := docs[0]

	assert.NotEmpty(t, doc.ID)
	assert.Equal(t, models.DocTypeStatement, doc.Type)
	assert.Equal(t, 2024, doc.CreatedAt.Year())
	assert.Equal(t, models.FieldMap{"supplier_name": "Acme"}, doc.Supplier)
	assert.Equal(t, models.FieldMap{"transaction_date": "2024-03-04", "transaction_terms": "30 days"}, doc.Header)

	require.Len(t, doc.Items, 2)
	assert.True(t, doc.Items[0].SupplyPrice.Equal(decimal.NewFromInt(2000)))
	assert.True(t, doc.Items[0].Quantity.Equal(decimal.NewFromInt(2)))
	assert.True(t, doc.Items[1].TaxExempt)
	assert.True(t, doc.Totals.Supply.Equal(decimal.NewFromInt(2500)))
	assert.True(t, doc.Totals.Amount.Equal(decimal.NewFromInt(2700)))

	again, err := a.history.ListAll(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, doc.ID, again[0].ID, "legacy ids are deterministic")

	// The first write upgrades the record in place.
	_, err = a.profiles.SetField(ctx, "a@x.com", "supplier_tel", "02-000-0000")
	require.NoError(t, err)
	assert.Contains(t, a.rawUsers(t), `"schema_version":1`)

	upgraded, err := a.history.ListAll(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, doc.ID, upgraded[0].ID)
	assert.True(t, upgraded[0].Totals.Amount.Equal(decimal.NewFromInt(2700)))
}
