package seed

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/subtally/subtally/internal/config"
	settingsdomain "github.com/subtally/subtally/internal/settings/domain"
	"gorm.io/gorm"
)

func TestEnsureDefaults_Idempotent(t *testing.T) {
	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(
		&settingsdomain.OperatorSettings{},
		&settingsdomain.Currency{},
	))

	cfg := config.Config{
		DefaultBaseCurrency: "PKR",
		DefaultLocale:       "en-PK",
		DefaultWindowDays:   30,
	}

	require.NoError(t, EnsureDefaults(conn, cfg))
	require.NoError(t, EnsureDefaults(conn, cfg))

	var settingsCount, currencyCount int64
	conn.Model(&settingsdomain.OperatorSettings{}).Count(&settingsCount)
	conn.Model(&settingsdomain.Currency{}).Count(&currencyCount)
	assert.Equal(t, int64(1), settingsCount)
	assert.Equal(t, int64(1), currencyCount)

	var base settingsdomain.Currency
	require.NoError(t, conn.Where("code = ?", "PKR").First(&base).Error)
	assert.True(t, base.Rate.Equal(decimal.NewFromInt(1)))
}
