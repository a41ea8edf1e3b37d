package db_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"pulse/internal/config"
	"pulse/internal/infra"
)

var Module = fx.Options(
	fx.Provide(provideDB),
	fx.Invoke(infra.Migrate),
)

func provideDB(cfg *config.Config) (*gorm.DB, error) {
	return infra.InitDatabase(cfg)
}
