package service

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmynk/docwiser/internal/calculator"
	"github.com/mmynk/docwiser/internal/models"
	pb "github.com/mmynk/docwiser/pkg/proto"
)

func amount(d decimal.Decimal) string { return d.String() }

func toProtoFields(fields []models.Field) []*pb.Field {
	out := make([]*pb.Field, len(fields))
	for i, f := range fields {
		out[i] = &pb.Field{Name: f.Name, Label: f.Label}
	}
	return out
}

func toProtoDocumentType(d *models.DocType) *pb.DocumentType {
	return &pb.DocumentType{
		Key:            d.Key,
		Title:          d.Title,
		ExportName:     d.ExportName,
		Stamp:          d.Stamp,
		TaxExemptLabel: d.TaxExemptLabel,
		Supplier:       toProtoFields(d.Supplier),
		Recipient:      toProtoFields(d.Recipient),
		Header:         toProtoFields(d.Header),
	}
}

func toProtoProfile(p models.Profile) *pb.Profile {
	return &pb.Profile{
		Supplier:  p.Supplier.Clone(),
		Recipient: p.Recipient.Clone(),
		Stamp:     p.Stamp,
	}
}

func toProtoTotals(supply, tax, total decimal.Decimal) *pb.Totals {
	return &pb.Totals{Supply: amount(supply), Tax: amount(tax), Amount: amount(total)}
}

func toProtoDocument(d *models.Document) *pb.Document {
	items := make([]*pb.LineItem, len(d.Items))
	for i, it := range d.Items {
		items[i] = &pb.LineItem{
			Name:        it.Name,
			Quantity:    amount(it.Quantity),
			UnitPrice:   amount(it.UnitPrice),
			TaxExempt:   it.TaxExempt,
			SupplyPrice: amount(it.SupplyPrice),
			Tax:         amount(it.Tax),
		}
	}
	return &pb.Document{
		Id:        d.ID,
		Type:      d.Type,
		CreatedAt: d.CreatedAt.Format(time.RFC3339),
		Supplier:  d.Supplier.Clone(),
		Recipient: d.Recipient.Clone(),
		Stamp:     d.Stamp,
		Header:    d.Header.Clone(),
		Items:     items,
		Totals:    toProtoTotals(d.Totals.Supply, d.Totals.Tax, d.Totals.Amount),
	}
}

func fromProtoItems(items []*pb.ItemInput) []calculator.Input {
	out := make([]calculator.Input, len(items))
	for i, it := range items {
		out[i] = calculator.Input{
			Name:      it.GetName(),
			Quantity:  it.GetQuantity(),
			UnitPrice: it.GetUnitPrice(),
			TaxExempt: it.GetTaxExempt(),
		}
	}
	return out
}
