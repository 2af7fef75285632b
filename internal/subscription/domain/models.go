// Package domain contains persistence models for tracked subscriptions.
package domain

import (
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Status represents lifecycle states for a tracked subscription.
type Status string

const (
	StatusActive    Status = "active"
	StatusPaused    Status = "paused"
	StatusHold      Status = "hold"
	StatusCancelled Status = "cancelled"
)

// NormalizeStatus maps a raw status string onto a known Status.
// Unrecognized values default to active so mis-tagged records still
// show up as revenue instead of disappearing.
func NormalizeStatus(raw string) Status {
	switch Status(strings.ToLower(strings.TrimSpace(raw))) {
	case StatusPaused:
		return StatusPaused
	case StatusHold:
		return StatusHold
	case StatusCancelled:
		return StatusCancelled
	default:
		return StatusActive
	}
}

// BillingUnit is the unit of a subscription's billing cadence.
type BillingUnit string

const (
	UnitDay   BillingUnit = "day"
	UnitWeek  BillingUnit = "week"
	UnitMonth BillingUnit = "month"
	UnitYear  BillingUnit = "year"
)

// Subscription captures one recurring billing agreement as recorded by
// the operator. The metrics engine reads these rows and never mutates them.
type Subscription struct {
	ID               snowflake.ID      `gorm:"primaryKey" json:"id"`
	Title            string            `gorm:"type:text" json:"title"`
	ClientName       string            `gorm:"type:text" json:"client_name"`
	Currency         string            `gorm:"type:text" json:"currency"`
	Amount           decimal.Decimal   `gorm:"type:numeric" json:"amount"`
	RepeatEveryCount int               `gorm:"not null;default:1" json:"repeat_every_count"`
	RepeatEveryUnit  string            `gorm:"type:text;not null;default:month" json:"repeat_every_unit"`
	NextBillingDate  *time.Time        `gorm:"" json:"next_billing_date,omitempty"`
	Status           string            `gorm:"type:text;not null;default:active" json:"status"`
	CancelledAt      *time.Time        `gorm:"" json:"cancelled_at,omitempty"`
	Metadata         datatypes.JSONMap `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt        time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt        time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Subscription) TableName() string { return "subscriptions" }

// DisplayID is the short identifier shown to the operator and matched by
// free-text search.
func (s Subscription) DisplayID() string {
	return s.ID.String()
}

// CurrencyOrDefault returns the subscription's currency, falling back to
// the supplied base currency when unset.
func (s Subscription) CurrencyOrDefault(base string) string {
	code := strings.ToUpper(strings.TrimSpace(s.Currency))
	if code == "" {
		return strings.ToUpper(base)
	}
	return code
}
