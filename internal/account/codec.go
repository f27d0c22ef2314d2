package account

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/docwiser/internal/calculator"
	"github.com/mmynk/docwiser/internal/models"
)

// encodeRecord writes a user record as
// {"schema_version": 1, "profile": {...}, "<documents_key>": [...], "stamps": {...}}.
//
// Document stamps are stored once per distinct image under "stamps" and the
// documents carry only the reference.
func encodeRecord(rec *userRecord, docType *models.DocType) (json.RawMessage, error) {
	docs := make([]*models.Document, len(rec.Documents))
	stamps := map[string]string{}
	for i, d := range rec.Documents {
		if d.Stamp == "" {
			docs[i] = d
			continue
		}
		ref := stampRef(d.Stamp)
		stamps[ref] = d.Stamp
		out := *d
		out.Stamp = ""
		out.StampRef = ref
		docs[i] = &out
	}

	fields := map[string]any{
		models.SchemaVersionKey: models.SchemaVersion,
		"profile":               rec.Profile,
		docType.DocumentsKey:    docs,
	}
	if len(stamps) > 0 {
		fields[models.StampsKey] = stamps
	}
	return json.Marshal(fields)
}

func stampRef(image string) string {
	sum := sha256.Sum256([]byte(image))
	return "sha256:" + hex.EncodeToString(sum[:])
}

// resolveStamps puts referenced stamp images back into docs. A reference with
// no stored image leaves the document without a stamp.
func resolveStamps(docs []*models.Document, raw json.RawMessage) error {
	stamps := map[string]string{}
	if raw != nil {
		if err := json.Unmarshal(raw, &stamps); err != nil {
			return fmt.Errorf("%w: stamps: %v", models.ErrStorageCorrupt, err)
		}
	}
	for _, d := range docs {
		if d == nil || d.StampRef == "" {
			continue
		}
		d.Stamp = stamps[d.StampRef]
		d.StampRef = ""
	}
	return nil
}

func decodeRecord(id string, raw json.RawMessage, docType *models.DocType) (*userRecord, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrStorageCorrupt, err)
	}

	version := 0
	if v, ok := fields[models.SchemaVersionKey]; ok {
		if err := json.Unmarshal(v, &version); err != nil {
			return nil, fmt.Errorf("%w: schema version: %v", models.ErrStorageCorrupt, err)
		}
	}
	if version > models.SchemaVersion {
		return nil, fmt.Errorf("%w: %d", models.ErrSchemaVersion, version)
	}

	rec := newUserRecord()
	if p, ok := fields["profile"]; ok {
		if err := json.Unmarshal(p, &rec.Profile); err != nil {
			return nil, fmt.Errorf("%w: profile: %v", models.ErrStorageCorrupt, err)
		}
	}
	if rec.Profile.Supplier == nil {
		rec.Profile.Supplier = models.FieldMap{}
	}
	if rec.Profile.Recipient == nil {
		rec.Profile.Recipient = models.FieldMap{}
	}

	docs, ok := fields[docType.DocumentsKey]
	if !ok || string(docs) == "null" {
		return rec, nil
	}
	if version == 0 {
		legacy, err := decodeLegacyDocuments(id, docs, docType)
		if err != nil {
			return nil, err
		}
		rec.Documents = legacy
		return rec, nil
	}
	if err := json.Unmarshal(docs, &rec.Documents); err != nil {
		return nil, fmt.Errorf("%w: documents: %v", models.ErrStorageCorrupt, err)
	}
	if err := resolveStamps(rec.Documents, fields[models.StampsKey]); err != nil {
		return nil, err
	}
	return rec, nil
}

// legacyHeaderFields maps the camelCase header keys of unversioned records to field names.
var legacyHeaderFields = map[string]string{
	"transactionDate": "transaction_date",
	"terms":           "transaction_terms",
	"estimateDate":    "estimate_date",
	"estimateNumber":  "estimate_number",
	"validUntil":      "estimate_valid_until",
	"deliveryDate":    "delivery_date",
	"paymentTerms":    "payment_terms",
	"notes":           "estimate_notes",
}

// legacyNumber accepts the loosely typed numbers of unversioned records:
// JSON numbers or locale formatted strings such as "2,000".
type legacyNumber string

func (n *legacyNumber) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*n = legacyNumber(s)
		return nil
	}
	var f json.Number
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	*n = legacyNumber(f.String())
	return nil
}

type legacyItem struct {
	Name        string       `json:"name"`
	Quantity    legacyNumber `json:"quantity"`
	Price       legacyNumber `json:"price"`
	SupplyPrice legacyNumber `json:"supplyPrice"`
	Tax         legacyNumber `json:"tax"`
	TaxExempt   bool         `json:"taxExempt"`
}

type legacyDocument struct {
	CreatedAt string          `json:"createdAt"`
	Supplier  models.FieldMap `json:"supplier"`
	Recipient models.FieldMap `json:"recipient"`
	Items     []legacyItem    `json:"items"`
	Totals    struct {
		Supply legacyNumber `json:"supply"`
		Tax    legacyNumber `json:"tax"`
		Amount legacyNumber `json:"amount"`
	} `json:"totals"`
}

// decodeLegacyDocuments migrates documents written before schema versioning.
// Stored figures are kept when they parse; unparseable ones are recomputed.
func decodeLegacyDocuments(userID string, raw json.RawMessage, docType *models.DocType) ([]*models.Document, error) {
	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("%w: legacy documents: %v", models.ErrStorageCorrupt, err)
	}

	docs := make([]*models.Document, 0, len(entries))
	for i, entry := range entries {
		var legacy legacyDocument
		if err := json.Unmarshal(entry, &legacy); err != nil {
			return nil, fmt.Errorf("%w: legacy document %d: %v", models.ErrStorageCorrupt, i, err)
		}
		var extra map[string]json.RawMessage
		if err := json.Unmarshal(entry, &extra); err != nil {
			return nil, fmt.Errorf("%w: legacy document %d: %v", models.ErrStorageCorrupt, i, err)
		}

		header := models.FieldMap{}
		for key, field := range legacyHeaderFields {
			v, ok := extra[key]
			if !ok {
				continue
			}
			var s string
			if json.Unmarshal(v, &s) == nil {
				header[field] = s
			}
		}

		createdAt, _ := time.Parse(time.RFC3339Nano, legacy.CreatedAt)

		doc := &models.Document{
			// Deterministic so repeated reads of an unmigrated blob agree.
			ID:        uuid.NewSHA1(uuid.NameSpaceURL, []byte(docType.Scope+"/"+userID+"/"+strconv.Itoa(i)+"/"+legacy.CreatedAt)).String(),
			Type:      docType.Key,
			CreatedAt: createdAt,
			Supplier:  docType.FilterSupplier(legacy.Supplier),
			Recipient: docType.FilterRecipient(legacy.Recipient),
			Header:    docType.FilterHeader(header),
			Items:     make([]models.LineItem, len(legacy.Items)),
		}

		rows := make([]calculator.Row, len(legacy.Items))
		for j, it := range legacy.Items {
			qty := calculator.DisplayAmount(string(it.Quantity))
			price := calculator.DisplayAmount(string(it.Price))
			row := calculator.ComputeRow(qty, price, it.TaxExempt)
			if v, err := calculator.ParseAmount(string(it.SupplyPrice)); err == nil {
				row.SupplyPrice = v
			}
			if v, err := calculator.ParseAmount(string(it.Tax)); err == nil {
				row.Tax = v
			}
			rows[j] = row
			doc.Items[j] = models.LineItem{
				Name:        it.Name,
				Quantity:    qty,
				UnitPrice:   price,
				TaxExempt:   it.TaxExempt,
				SupplyPrice: row.SupplyPrice,
				Tax:         row.Tax,
			}
		}

		totals := calculator.ComputeTotals(rows)
		if v, err := calculator.ParseAmount(string(legacy.Totals.Supply)); err == nil {
			totals.Supply = v
		}
		if v, err := calculator.ParseAmount(string(legacy.Totals.Tax)); err == nil {
			totals.Tax = v
		}
		totals.Amount = totals.Supply.Add(totals.Tax)
		doc.Totals = models.Totals{Supply: totals.Supply, Tax: totals.Tax, Amount: totals.Amount}

		docs = append(docs, doc)
	}
	return docs, nil
}
