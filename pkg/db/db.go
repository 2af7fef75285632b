package db

import (
	"github.com/subtally/subtally/internal/config"
	settingsdomain "github.com/subtally/subtally/internal/settings/domain"
	subscriptiondomain "github.com/subtally/subtally/internal/subscription/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Module provides the gorm database handle.
var Module = fx.Module("db",
	fx.Provide(Open),
)

// Open connects to the configured database and runs schema migration.
func Open(cfg config.Config, log *zap.Logger) (*gorm.DB, error) {
	dialector, err := Dialect(cfg)
	if err != nil {
		return nil, err
	}

	conn, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, err
	}

	if err := conn.AutoMigrate(
		&subscriptiondomain.Subscription{},
		&settingsdomain.OperatorSettings{},
		&settingsdomain.Currency{},
	); err != nil {
		return nil, err
	}

	log.Info("database connected", zap.String("type", cfg.DBType), zap.String("name", cfg.DBName))
	return conn, nil
}
