// Package domain defines the revenue metrics contract: filters in,
// a fully computed metrics snapshot out.
package domain

import (
	"time"

	"github.com/shopspring/decimal"
	subscriptiondomain "github.com/subtally/subtally/internal/subscription/domain"
)

// StatusFilter narrows the subscription set before aggregation.
type StatusFilter string

const (
	StatusFilterAll       StatusFilter = "all"
	StatusFilterActive    StatusFilter = "active"
	StatusFilterPaused    StatusFilter = "paused"
	StatusFilterCancelled StatusFilter = "cancelled"
)

// CurrencyFilterAll matches every currency.
const CurrencyFilterAll = "all"

// RenewalDisplayCap bounds the due-soon and overdue lists.
const RenewalDisplayCap = 10

// Filters are the operator-selected inputs to one metrics computation.
type Filters struct {
	Query      string
	Status     StatusFilter
	Currency   string
	WindowDays int
}

// RenewalBucket classifies a subscription against the renewal window.
type RenewalBucket string

const (
	BucketOverdue     RenewalBucket = "overdue"
	BucketDueSoon     RenewalBucket = "due_soon"
	BucketNotDue      RenewalBucket = "not_due"
	BucketUnscheduled RenewalBucket = "unscheduled"
)

// Classification is the outcome of classifying one subscription.
// DayDistance is nil for unscheduled subscriptions.
type Classification struct {
	Bucket      RenewalBucket
	DayDistance *int
}

// CurrencyTotals is the per-currency monthly subtotal. RawMonthly stays in
// the subscription's own currency so unconvertible revenue remains visible;
// BaseMonthly is the converted figure that feeds MRR. Unpriced flags a
// currency whose stored rate was missing or zero.
type CurrencyTotals struct {
	RawMonthly  decimal.Decimal `json:"raw_monthly"`
	BaseMonthly decimal.Decimal `json:"base_monthly"`
	Unpriced    bool            `json:"unpriced"`
}

// RenewalEntry pairs a subscription with its signed day distance from now.
type RenewalEntry struct {
	Subscription subscriptiondomain.Subscription `json:"subscription"`
	DayDistance  int                             `json:"day_distance"`
}

// MetricsResult is the immutable outcome of one computation. It is rebuilt
// in full on every call and never mutated in place.
type MetricsResult struct {
	BaseCurrency    string `json:"base_currency"`
	DisplayCurrency string `json:"display_currency"`

	MRRBase decimal.Decimal `json:"mrr_base"`
	ARRBase decimal.Decimal `json:"arr_base"`

	MRRDisplay decimal.Decimal `json:"mrr_display"`
	ARRDisplay decimal.Decimal `json:"arr_display"`

	PerCurrencyMonthly map[string]CurrencyTotals `json:"per_currency_monthly"`

	DueSoon []RenewalEntry `json:"due_soon"`
	Overdue []RenewalEntry `json:"overdue"`

	ChurnedThisMonth int `json:"churned_this_month"`

	ActiveCount    int `json:"active_count"`
	PausedCount    int `json:"paused_count"`
	CancelledCount int `json:"cancelled_count"`

	ComputedAt time.Time `json:"computed_at"`
}
