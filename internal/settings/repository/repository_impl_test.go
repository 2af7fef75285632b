package repository

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/subtally/subtally/internal/config"
	settingsdomain "github.com/subtally/subtally/internal/settings/domain"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(
		&settingsdomain.OperatorSettings{},
		&settingsdomain.Currency{},
	))
	return conn
}

func testConfig() config.Config {
	return config.Config{
		DefaultBaseCurrency: "USD",
		DefaultLocale:       "en-US",
		DefaultWindowDays:   30,
	}
}

func TestGet_FallsBackToConfigDefaults(t *testing.T) {
	conn := openTestDB(t)
	repo := Provide(testConfig())

	settings, err := repo.Get(context.Background(), conn)
	require.NoError(t, err)

	assert.Equal(t, "USD", settings.BaseCurrency)
	assert.Equal(t, "USD", settings.DisplayOrBase())
	assert.Equal(t, "en-US", settings.Locale)
	assert.Equal(t, 30, settings.WindowDays)
	assert.Empty(t, settings.Currencies)
}

func TestGet_ReadsOperatorRowAndCurrencyTable(t *testing.T) {
	conn := openTestDB(t)
	conn.Create(&settingsdomain.OperatorSettings{
		BaseCurrency:    "pkr",
		DisplayCurrency: "usd",
		Locale:          "en-PK",
		WindowDays:      14,
	})
	conn.Create(&settingsdomain.Currency{Code: "PKR", Symbol: "Rs", Rate: decimal.NewFromInt(1)})
	conn.Create(&settingsdomain.Currency{Code: "USD", Symbol: "$", Rate: decimal.NewFromInt(280)})

	repo := Provide(testConfig())
	settings, err := repo.Get(context.Background(), conn)
	require.NoError(t, err)

	assert.Equal(t, "PKR", settings.BaseCurrency)
	assert.Equal(t, "USD", settings.DisplayOrBase())
	assert.Equal(t, "en-PK", settings.Locale)
	assert.Equal(t, 14, settings.WindowDays)

	rate, ok := settings.RateFor("usd")
	require.True(t, ok)
	assert.True(t, rate.Equal(decimal.NewFromInt(280)))
}

func TestRateFor_BaseCurrencyWithoutTableEntry(t *testing.T) {
	settings := settingsdomain.Settings{BaseCurrency: "PKR"}

	rate, ok := settings.RateFor("PKR")
	require.True(t, ok)
	assert.True(t, rate.Equal(decimal.NewFromInt(1)))

	_, ok = settings.RateFor("USD")
	assert.False(t, ok)
}
