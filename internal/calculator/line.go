// Package calculator derives line-item and document totals.
//
// All functions are pure and operate on exact decimals; presentation formatting
// lives in the render package.
package calculator

import (
	"errors"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// taxRate is the fixed tax applied to every non-exempt line item.
var taxRate = decimal.New(1, -1) // 0.10

// MaxAmountDigits bounds the digits ParseAmount accepts, integer and fraction combined.
const MaxAmountDigits = 30

// amountPattern is plain decimal notation with optional 3-digit grouping.
// Exponents are rejected.
var amountPattern = regexp.MustCompile(`^[+-]?(?:\d{1,3}(?:,\d{3})+|\d+)?(?:\.\d+)?$`)

// TaxRate returns the tax rate applied to non-exempt line items.
func TaxRate() decimal.Decimal { return taxRate }

var (
	// ErrEmpty is returned by ParseAmount for blank input.
	ErrEmpty = errors.New("value is required")
	// ErrNotNumber is returned by ParseAmount for input that is not a number.
	ErrNotNumber = errors.New("value is not a number")
)

// Row is the derived part of a line item.
type Row struct {
	SupplyPrice decimal.Decimal
	Tax         decimal.Decimal
}

// Totals aggregates rows. Amount is Supply + Tax.
type Totals struct {
	Supply decimal.Decimal
	Tax    decimal.Decimal
	Amount decimal.Decimal
}

// Input is a raw line item as typed into the form.
type Input struct {
	Name      string
	Quantity  string
	UnitPrice string
	TaxExempt bool
}

// EmptyRow is the input of a freshly added row.
func EmptyRow() Input {
	return Input{Quantity: "1", UnitPrice: "0"}
}

// ComputeRow computes supplyPrice = quantity × unitPrice and
// tax = round(supplyPrice × TaxRate()), or zero tax for exempt rows.
func ComputeRow(quantity, unitPrice decimal.Decimal, taxExempt bool) Row {
	supply := quantity.Mul(unitPrice)
	tax := decimal.Zero
	if !taxExempt {
		tax = supply.Mul(taxRate).Round(0)
	}
	return Row{SupplyPrice: supply, Tax: tax}
}

// ComputeTotals sums rows. An empty slice yields all-zero totals.
func ComputeTotals(rows []Row) Totals {
	supply, tax := decimal.Zero, decimal.Zero
	for _, r := range rows {
		supply = supply.Add(r.SupplyPrice)
		tax = tax.Add(r.Tax)
	}
	return Totals{Supply: supply, Tax: tax, Amount: supply.Add(tax)}
}

// ParseAmount parses a quantity or price strictly. Digit grouping commas are
// accepted in groups of three ("1,000"); blank input, exponent notation and
// numbers longer than MaxAmountDigits are errors.
func ParseAmount(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, ErrEmpty
	}
	if !amountPattern.MatchString(s) {
		return decimal.Zero, ErrNotNumber
	}
	digits := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	if digits == 0 || digits > MaxAmountDigits {
		return decimal.Zero, ErrNotNumber
	}
	d, err := decimal.NewFromString(strings.ReplaceAll(s, ",", ""))
	if err != nil {
		return decimal.Zero, ErrNotNumber
	}
	return d, nil
}

// DisplayAmount parses leniently for live previews: anything unparseable is zero.
func DisplayAmount(raw string) decimal.Decimal {
	d, err := ParseAmount(raw)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Preview computes rows and totals for in-progress form input without rejecting
// anything. Generation must still validate with ParseAmount.
func Preview(items []Input) ([]Row, Totals) {
	rows := make([]Row, len(items))
	for i, it := range items {
		rows[i] = ComputeRow(DisplayAmount(it.Quantity), DisplayAmount(it.UnitPrice), it.TaxExempt)
	}
	return rows, ComputeTotals(rows)
}
