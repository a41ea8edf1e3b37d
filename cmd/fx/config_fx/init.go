package config_fx

import (
	"go.uber.org/fx"

	"pulse/internal/config"
)

var Module = fx.Provide(config.LoadConfig)
