package settings

import (
	"github.com/subtally/subtally/internal/settings/repository"
	"go.uber.org/fx"
)

var Module = fx.Module("settings.repository",
	fx.Provide(repository.Provide),
)
