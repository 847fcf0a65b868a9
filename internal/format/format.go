// Package format renders catalog numbers for display.
package format

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// RubleSign prefixes every currency amount.
const RubleSign = "₽"

// Formatter formats numbers with locale-aware digit grouping.
type Formatter struct {
	tag     language.Tag
	printer *message.Printer
}

// New returns a Formatter for the given BCP-47 locale, e.g. "en" or "ru".
func New(locale string) (*Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parsing locale %q: %w", locale, err)
	}
	return &Formatter{tag: tag, printer: message.NewPrinter(tag)}, nil
}

// MustNew is like New but panics on an invalid locale.
func MustNew(locale string) *Formatter {
	f, err := New(locale)
	if err != nil {
		panic(err)
	}
	return f
}

// Locale returns the formatter's language tag.
func (f *Formatter) Locale() language.Tag { return f.tag }

// Number groups digits, e.g. 12500 -> "12,500" for "en".
func (f *Formatter) Number(n int64) string {
	return f.printer.Sprintf("%d", n)
}

// Currency renders an amount in roubles, e.g. "₽12,500".
func (f *Formatter) Currency(amount int64) string {
	if amount < 0 {
		return "-" + RubleSign + f.Number(-amount)
	}
	return RubleSign + f.Number(amount)
}

// Savings renders a saving as a negative amount, e.g. "-₽3,750".
func (f *Formatter) Savings(amount int64) string {
	if amount < 0 {
		amount = -amount
	}
	return "-" + RubleSign + f.Number(amount)
}

// Percent renders v as "95%".
func (f *Formatter) Percent(v int) string {
	return fmt.Sprintf("%d%%", v)
}
