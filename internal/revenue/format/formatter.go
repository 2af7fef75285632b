// Package format renders monetary amounts for display. It is pure
// presentation over the metrics result and never feeds back into the
// revenue math.
package format

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Money formats an amount for the operator's locale with the currency
// symbol prefixed, e.g. "$1,234.50". An explicit symbol (from the stored
// currency table) wins over the CLDR one; unknown locales fall back to
// English and unknown currency codes are prefixed verbatim.
func Money(amount decimal.Decimal, code, symbol, locale string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	printer := message.NewPrinter(tag)

	value, _ := amount.Round(2).Float64()
	formatted := printer.Sprint(number.Decimal(value,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))

	symbol = strings.TrimSpace(symbol)
	if symbol == "" {
		code = strings.ToUpper(strings.TrimSpace(code))
		if unit, err := currency.ParseISO(code); err == nil {
			symbol = printer.Sprint(currency.NarrowSymbol(unit))
		} else {
			symbol = code
		}
	}

	return symbol + formatted
}
