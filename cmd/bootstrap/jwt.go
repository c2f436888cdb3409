package bootstrap

import (
	"netcard-manager/internal/pkg/config"
	"netcard-manager/internal/pkg/jwt"
	"netcard-manager/internal/pkg/password"
	"netcard-manager/internal/usecase/commands"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
		NewAdminAccount,
	),
)

func NewJWTService(cfg config.Config) *jwt.Service {
	return jwt.NewService(cfg.JWT.Secret, cfg.JWT.Duration)
}

// NewAdminAccount hashes the configured admin password once at startup.
func NewAdminAccount(cfg config.Config) (commands.AdminAccount, error) {
	verifier, err := password.NewVerifier(cfg.Admin.Password)
	if err != nil {
		return commands.AdminAccount{}, err
	}
	return commands.AdminAccount{
		Username: cfg.Admin.Username,
		Password: verifier,
	}, nil
}
