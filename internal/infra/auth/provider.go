package auth

import (
	"context"
	"log/slog"

	"jalsetu/config"
	"jalsetu/internal/domain/service"
	"jalsetu/internal/errors"
	"jalsetu/internal/infra/firebaseapp"

	"go.uber.org/fx"
)

// ProviderParams holds dependencies for the IdentityProvider, injected by Fx
type ProviderParams struct {
	fx.In

	Ctx      context.Context
	Config   *config.Config
	Logger   *slog.Logger
	Firebase *firebaseapp.Provider
}

// NewIdentityProvider picks the token verifier named by auth.provider.
func NewIdentityProvider(params ProviderParams) (service.IdentityProvider, error) {
	cfg := params.Config.Auth
	logger := params.Logger

	switch cfg.Provider {
	case config.AuthLocal:
		logger.Warn("Using local identity provider, tokens are not verified by Firebase")

		return NewLocalIdentityProvider(cfg.LocalSecret, logger)

	case config.AuthFirebase:
		client, err := params.Firebase.Auth(params.Ctx)
		if err != nil {
			return nil, err
		}
		logger.Info("Using Firebase identity provider")

		return NewFirebaseIdentityProvider(client, logger), nil

	default:
		return nil, errors.Errorf("unknown auth provider: %s", cfg.Provider)
	}
}
