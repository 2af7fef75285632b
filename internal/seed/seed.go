// Package seed bootstraps the operator settings and currency table on
// first startup so a fresh database produces meaningful metrics.
package seed

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"github.com/subtally/subtally/internal/config"
	settingsdomain "github.com/subtally/subtally/internal/settings/domain"
	"gorm.io/gorm"
)

// EnsureDefaults inserts the operator settings row and a minimal currency
// table when absent. Existing rows are never modified.
func EnsureDefaults(db *gorm.DB, cfg config.Config) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureSettingsTx(tx, cfg); err != nil {
			return err
		}
		return ensureBaseCurrencyTx(tx, cfg)
	})
}

func ensureSettingsTx(tx *gorm.DB, cfg config.Config) error {
	var count int64
	if err := tx.Model(&settingsdomain.OperatorSettings{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return tx.Create(&settingsdomain.OperatorSettings{
		BaseCurrency:    cfg.DefaultBaseCurrency,
		DisplayCurrency: cfg.DefaultBaseCurrency,
		Locale:          cfg.DefaultLocale,
		WindowDays:      cfg.DefaultWindowDays,
	}).Error
}

func ensureBaseCurrencyTx(tx *gorm.DB, cfg config.Config) error {
	var count int64
	if err := tx.Model(&settingsdomain.Currency{}).
		Where("code = ?", cfg.DefaultBaseCurrency).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return tx.Create(&settingsdomain.Currency{
		Code: cfg.DefaultBaseCurrency,
		Rate: decimal.NewFromInt(1),
	}).Error
}
