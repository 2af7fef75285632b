package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/subtally/subtally/internal/config"
	settingsdomain "github.com/subtally/subtally/internal/settings/domain"
	"gorm.io/gorm"
)

type repo struct {
	cfg config.Config
}

func Provide(cfg config.Config) settingsdomain.Repository {
	return &repo{cfg: cfg}
}

func (r *repo) Get(ctx context.Context, db *gorm.DB) (settingsdomain.Settings, error) {
	settings := settingsdomain.Settings{
		BaseCurrency: strings.ToUpper(r.cfg.DefaultBaseCurrency),
		Locale:       r.cfg.DefaultLocale,
		WindowDays:   r.cfg.DefaultWindowDays,
	}

	var row settingsdomain.OperatorSettings
	err := db.WithContext(ctx).Order("id ASC").First(&row).Error
	switch {
	case err == nil:
		if code := strings.ToUpper(strings.TrimSpace(row.BaseCurrency)); code != "" {
			settings.BaseCurrency = code
		}
		settings.DisplayCurrency = strings.ToUpper(strings.TrimSpace(row.DisplayCurrency))
		if row.Locale != "" {
			settings.Locale = row.Locale
		}
		if row.WindowDays > 0 {
			settings.WindowDays = row.WindowDays
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		// keep config defaults
	default:
		return settingsdomain.Settings{}, err
	}

	currencies, err := r.ListCurrencies(ctx, db)
	if err != nil {
		return settingsdomain.Settings{}, err
	}

	settings.Currencies = make(map[string]settingsdomain.Currency, len(currencies))
	for _, currency := range currencies {
		settings.Currencies[strings.ToUpper(currency.Code)] = currency
	}

	return settings, nil
}

func (r *repo) ListCurrencies(ctx context.Context, db *gorm.DB) ([]settingsdomain.Currency, error) {
	var rows []settingsdomain.Currency
	if err := db.WithContext(ctx).Order("code ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
