package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMonthlyEquivalent_MonthlyIdentity(t *testing.T) {
	for _, amount := range []string{"0", "1", "49.99", "1200", "0.01"} {
		value := decimal.RequireFromString(amount)
		assert.True(t, MonthlyEquivalent(value, 1, "month").Equal(value), "amount %s", amount)
	}
}

func TestMonthlyEquivalent_MonthlyScaling(t *testing.T) {
	amount := decimal.NewFromInt(120)
	for _, n := range []int{1, 2, 3, 4, 6, 12} {
		expected := amount.Div(decimal.NewFromInt(int64(n)))
		assert.True(t, MonthlyEquivalent(amount, n, "month").Equal(expected), "every %d months", n)
	}
}

func TestMonthlyEquivalent_Units(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		count    int
		unit     string
		expected string
	}{
		{name: "daily", amount: "10", count: 1, unit: "day", expected: "300"},
		{name: "every other day", amount: "10", count: 2, unit: "day", expected: "150"},
		{name: "weekly", amount: "100", count: 1, unit: "week", expected: "434.5"},
		{name: "yearly", amount: "1200", count: 1, unit: "year", expected: "100"},
		{name: "every two years", amount: "1200", count: 2, unit: "year", expected: "50"},
		{name: "unit casing ignored", amount: "1200", count: 1, unit: "YEAR", expected: "100"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := MonthlyEquivalent(decimal.RequireFromString(tc.amount), tc.count, tc.unit)
			assert.True(t, got.Equal(decimal.RequireFromString(tc.expected)), "got %s", got)
		})
	}
}

func TestMonthlyEquivalent_UnknownUnitFallsBackToMonth(t *testing.T) {
	amount := decimal.NewFromInt(60)
	assert.True(t, MonthlyEquivalent(amount, 1, "fortnight").Equal(amount))
	assert.True(t, MonthlyEquivalent(amount, 3, "").Equal(amount.Div(decimal.NewFromInt(3))))
}

func TestMonthlyEquivalent_CountClampedToOne(t *testing.T) {
	amount := decimal.NewFromInt(50)
	assert.True(t, MonthlyEquivalent(amount, 0, "month").Equal(amount))
	assert.True(t, MonthlyEquivalent(amount, -4, "month").Equal(amount))
}
