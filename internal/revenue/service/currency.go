package service

import (
	"strings"

	"github.com/shopspring/decimal"
	settingsdomain "github.com/subtally/subtally/internal/settings/domain"
)

// Converter translates amounts between stored currencies and the
// operator's base and display currencies using the settings rate table.
// It is a value over an immutable settings snapshot and is safe to copy.
type Converter struct {
	settings settingsdomain.Settings
}

func NewConverter(settings settingsdomain.Settings) Converter {
	return Converter{settings: settings}
}

// ToBase converts an amount from the given currency into base currency.
// The base currency itself always converts at rate 1. A currency that is
// missing from the table or carries a zero rate converts to zero; the raw
// amount stays visible in the per-currency breakdown.
func (c Converter) ToBase(amount decimal.Decimal, from string) decimal.Decimal {
	rate, ok := c.settings.RateFor(from)
	if !ok || rate.IsZero() {
		return decimal.Zero
	}
	return amount.Mul(rate)
}

// BaseToDisplay converts a base-currency amount into the display currency.
// Identity when display equals base. A missing or zero display rate yields
// zero, degrading presentation only; base-currency math is unaffected.
func (c Converter) BaseToDisplay(amount decimal.Decimal) decimal.Decimal {
	display := c.settings.DisplayOrBase()
	if display == strings.ToUpper(c.settings.BaseCurrency) {
		return amount
	}
	rate, ok := c.settings.RateFor(display)
	if !ok || rate.IsZero() {
		return decimal.Zero
	}
	return amount.Div(rate)
}

// Unpriced reports whether the currency cannot be converted into base,
// so the presentation layer can flag its revenue as unpriced.
func (c Converter) Unpriced(code string) bool {
	rate, ok := c.settings.RateFor(code)
	return !ok || rate.IsZero()
}
