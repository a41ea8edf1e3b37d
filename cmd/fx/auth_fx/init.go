package auth_fx

import (
	"go.uber.org/fx"

	"pulse/internal/api/controllers"
	"pulse/internal/config"
	"pulse/internal/repositories"
	"pulse/internal/services"
	"pulse/pkg/middleware"
	"pulse/pkg/utils"
)

var Module = fx.Provide(
	provideTokenIssuer,
	provideAuthService,
	provideAuthMiddleware,
	controllers.NewAuthController,
)

func provideTokenIssuer(cfg *config.Config) (*utils.TokenIssuer, error) {
	return utils.NewTokenIssuer(cfg.JWTSecret, cfg.JWTAlgorithm, cfg.TokenTTL())
}

func provideAuthService(userRepo repositories.UserRepository, tokens *utils.TokenIssuer) services.AuthServiceInterface {
	return services.NewAuthService(userRepo, tokens)
}

func provideAuthMiddleware(tokens *utils.TokenIssuer, userRepo repositories.UserRepository) *middleware.AuthMiddleware {
	return middleware.NewAuthMiddleware(tokens, userRepo)
}
