// Package remotestore selects the RemoteStore backend.
package remotestore

import (
	"context"
	"log/slog"

	"jalsetu/config"
	"jalsetu/internal/domain/repository"
	"jalsetu/internal/errors"
	"jalsetu/internal/infra/firebaseapp"
	"jalsetu/internal/infra/remotestore/firebase"
	"jalsetu/internal/infra/remotestore/memory"

	"go.uber.org/fx"
)

// Params holds dependencies for the RemoteStore, injected by Fx
type Params struct {
	fx.In

	Ctx      context.Context
	Config   *config.Config
	Logger   *slog.Logger
	Firebase *firebaseapp.Provider
}

// New creates the RemoteStore named by remoteStore.provider.
func New(params Params) (repository.RemoteStore, error) {
	provider := config.RemoteStoreFirebase
	if params.Config.RemoteStore != nil && params.Config.RemoteStore.Provider != "" {
		provider = params.Config.RemoteStore.Provider
	}
	logger := params.Logger

	switch provider {
	case config.RemoteStoreMemory:
		logger.Warn("Using in-memory remote store, data is lost on exit")

		return memory.NewStore(), nil

	case config.RemoteStoreFirebase:
		client, err := params.Firebase.Database(params.Ctx)
		if err != nil {
			return nil, err
		}
		logger.Info("Using Firebase Realtime Database remote store")

		return firebase.NewRemoteStore(client, logger), nil

	default:
		return nil, errors.Errorf("unknown remote store provider: %s", provider)
	}
}
