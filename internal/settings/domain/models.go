// Package domain contains the operator settings and currency rate table.
package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// OperatorSettings holds the single row of operator preferences that the
// metrics engine reads: base currency, display currency, and locale.
type OperatorSettings struct {
	ID              uint      `gorm:"primaryKey" json:"-"`
	BaseCurrency    string    `gorm:"type:text;not null" json:"base_currency"`
	DisplayCurrency string    `gorm:"type:text" json:"display_currency"`
	Locale          string    `gorm:"type:text" json:"locale"`
	WindowDays      int       `gorm:"not null;default:30" json:"window_days"`
	CreatedAt       time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"-"`
	UpdatedAt       time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"-"`
}

// TableName sets the database table name.
func (OperatorSettings) TableName() string { return "operator_settings" }

// Currency is one entry of the stored exchange-rate table. Rate is the
// multiplier from this currency into the base currency; 1 for the base
// currency itself, 0 (or a missing row) means unconvertible.
type Currency struct {
	Code      string          `gorm:"primaryKey;type:text" json:"code"`
	Symbol    string          `gorm:"type:text" json:"symbol,omitempty"`
	Rate      decimal.Decimal `gorm:"type:numeric" json:"rate"`
	CreatedAt time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"-"`
	UpdatedAt time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"-"`
}

// TableName sets the database table name.
func (Currency) TableName() string { return "currencies" }

// Settings is the immutable snapshot handed to the metrics engine: the
// operator row plus the full rate table, keyed by upper-cased code.
type Settings struct {
	BaseCurrency    string
	DisplayCurrency string
	Locale          string
	WindowDays      int
	Currencies      map[string]Currency
}

// DisplayOrBase returns the display currency, defaulting to base.
func (s Settings) DisplayOrBase() string {
	display := strings.ToUpper(strings.TrimSpace(s.DisplayCurrency))
	if display == "" {
		return strings.ToUpper(s.BaseCurrency)
	}
	return display
}

// RateFor looks up the stored rate for a currency code. The base currency
// is 1 by definition regardless of table presence. A missing entry
// reports ok=false.
func (s Settings) RateFor(code string) (decimal.Decimal, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == strings.ToUpper(s.BaseCurrency) {
		return decimal.NewFromInt(1), true
	}
	entry, ok := s.Currencies[code]
	if !ok {
		return decimal.Zero, false
	}
	return entry.Rate, true
}
