package domain

import (
	"context"

	"gorm.io/gorm"
)

// Repository reads the operator settings row and the currency table.
type Repository interface {
	// Get returns a full settings snapshot. A missing operator row is not
	// an error; implementations fall back to configured defaults.
	Get(ctx context.Context, db *gorm.DB) (Settings, error)
	ListCurrencies(ctx context.Context, db *gorm.DB) ([]Currency, error)
}
