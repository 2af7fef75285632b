package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/subtally/subtally/internal/clock"
	"github.com/subtally/subtally/internal/config"
	"github.com/subtally/subtally/internal/revenue"
	"github.com/subtally/subtally/internal/seed"
	"github.com/subtally/subtally/internal/server"
	"github.com/subtally/subtally/internal/settings"
	"github.com/subtally/subtally/internal/subscription"
	"github.com/subtally/subtally/pkg/db"
	"github.com/subtally/subtally/pkg/log"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

func main() {
	app := fx.New(
		config.Module,
		log.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		clock.Module,

		subscription.Module,
		settings.Module,
		revenue.Module,

		fx.Invoke(func(conn *gorm.DB, cfg config.Config) error {
			if !cfg.SeedOnStartup {
				return nil
			}
			return seed.EnsureDefaults(conn, cfg)
		}),

		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
