package service

import (
	"strings"

	"github.com/shopspring/decimal"
	subscriptiondomain "github.com/subtally/subtally/internal/subscription/domain"
)

// Monthly conversion factors per billing unit: a 30-day month and
// 52.14 weeks per year (52.14 / 12 = 4.345).
var (
	factorDay  = decimal.NewFromInt(30)
	factorWeek = decimal.RequireFromString("4.345")
	twelve     = decimal.NewFromInt(12)
)

// MonthlyEquivalent converts an amount billed once every everyCount units
// into its monthly-equivalent amount. everyCount is clamped to 1 and an
// unknown unit degrades to monthly, so malformed cadence data lands in
// revenue as "billed monthly" instead of vanishing. The function is total.
func MonthlyEquivalent(amount decimal.Decimal, everyCount int, unit string) decimal.Decimal {
	if everyCount < 1 {
		everyCount = 1
	}
	count := decimal.NewFromInt(int64(everyCount))

	switch subscriptiondomain.BillingUnit(strings.ToLower(strings.TrimSpace(unit))) {
	case subscriptiondomain.UnitDay:
		return amount.Mul(factorDay).Div(count)
	case subscriptiondomain.UnitWeek:
		return amount.Mul(factorWeek).Div(count)
	case subscriptiondomain.UnitYear:
		return amount.Div(twelve.Mul(count))
	default:
		return amount.Div(count)
	}
}
