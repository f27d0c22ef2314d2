// Package render turns stored documents into printable artifacts.
//
// Numbers are kept as exact decimals everywhere else; this package is the only
// place they become locale formatted text.
package render

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultLocale is used when no locale is configured.
const DefaultLocale = "ko"

// Formatter formats numbers and dates for one locale.
type Formatter struct {
	printer  *message.Printer
	location *time.Location
}

// NewFormatter creates a formatter for a BCP 47 locale such as "ko" or "en-US".
func NewFormatter(locale string) (*Formatter, error) {
	if locale == "" {
		locale = DefaultLocale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	return &Formatter{printer: message.NewPrinter(tag), location: time.Local}, nil
}

// WithLocation returns a copy of f that prints dates in loc.
func (f *Formatter) WithLocation(loc *time.Location) *Formatter {
	out := *f
	out.location = loc
	return &out
}

// Number formats d with locale digit grouping. Fractional digits are kept as stored.
func (f *Formatter) Number(d decimal.Decimal) string {
	whole := d.Truncate(0)
	if !whole.BigInt().IsInt64() {
		return d.String()
	}

	s := f.printer.Sprintf("%d", whole.IntPart())
	if d.Sign() < 0 && whole.IsZero() {
		s = "-" + s
	}
	if frac := d.Sub(whole).Abs(); !frac.IsZero() {
		// frac.String() is "0.xxx"
		s += frac.String()[1:]
	}
	return s
}

// Date formats t as a calendar date.
func (f *Formatter) Date(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.In(f.location).Format("2006-01-02")
}
