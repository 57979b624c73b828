package remotestore

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"jalsetu/config"
	"jalsetu/internal/errors"
	"jalsetu/internal/infra/firebaseapp"
	"jalsetu/internal/infra/remotestore/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newParams(cfg *config.Config) Params {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.Background()

	return Params{
		Ctx:      ctx,
		Config:   cfg,
		Logger:   logger,
		Firebase: firebaseapp.NewProvider(firebaseapp.Params{Ctx: ctx, Config: cfg, Logger: logger}),
	}
}

func TestNew_Memory(t *testing.T) {
	store, err := New(newParams(&config.Config{RemoteStore: &config.RemoteStoreConfig{Provider: config.RemoteStoreMemory}}))
	require.NoError(t, err)

	_, ok := store.(memory.Store)
	assert.True(t, ok)
}

func TestNew_FirebaseWithoutConfig(t *testing.T) {
	_, err := New(newParams(&config.Config{}))

	assert.True(t, errors.Is(err, firebaseapp.ErrNotConfigured))
}

func TestNew_UnknownProvider(t *testing.T) {
	_, err := New(newParams(&config.Config{RemoteStore: &config.RemoteStoreConfig{Provider: "redis"}}))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis")
}
