package firebaseapp

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"jalsetu/config"
	"jalsetu/internal/errors"

	"github.com/stretchr/testify/assert"
)

func newTestProvider(cfg *config.FirebaseConfig) *Provider {
	return NewProvider(Params{
		Ctx:    context.Background(),
		Config: &config.Config{Firebase: cfg},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func TestProvider_NotConfigured(t *testing.T) {
	p := newTestProvider(nil)

	_, err := p.Database(context.Background())
	assert.True(t, errors.Is(err, ErrNotConfigured))

	_, err = p.Auth(context.Background())
	assert.True(t, errors.Is(err, ErrNotConfigured), "failure is remembered")
}

func TestProvider_MissingDatabaseURL(t *testing.T) {
	p := newTestProvider(&config.FirebaseConfig{ProjectID: "demo"})

	_, err := p.App()
	assert.True(t, errors.Is(err, ErrNotConfigured))
}
