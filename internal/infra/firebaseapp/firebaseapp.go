// Package firebaseapp owns the Firebase Admin SDK app. The app is created on
// first use so deployments running on the memory store never need credentials.
package firebaseapp

import (
	"context"
	"log/slog"
	"sync"

	"jalsetu/config"
	"jalsetu/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"firebase.google.com/go/v4/db"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// ErrNotConfigured is returned when the firebase section is missing.
var ErrNotConfigured = errors.New("firebase is not configured")

// Params holds dependencies for Provider, injected by Fx
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// Provider lazily builds the Firebase app and its clients.
type Provider struct {
	ctx    context.Context
	cfg    *config.FirebaseConfig
	logger *slog.Logger

	once sync.Once
	app  *firebase.App
	err  error
}

// NewProvider creates a Provider from configuration.
func NewProvider(params Params) *Provider {
	return &Provider{
		ctx:    params.Ctx,
		cfg:    params.Config.Firebase,
		logger: params.Logger,
	}
}

// App returns the shared Firebase app.
func (p *Provider) App() (*firebase.App, error) {
	p.once.Do(func() {
		p.app, p.err = p.newApp()
	})

	return p.app, p.err
}

// Database returns a Realtime Database client for the configured database URL.
func (p *Provider) Database(ctx context.Context) (*db.Client, error) {
	app, err := p.App()
	if err != nil {
		return nil, err
	}

	client, err := app.Database(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get database client")
	}

	return client, nil
}

// Auth returns the Firebase Auth client.
func (p *Provider) Auth(ctx context.Context) (*auth.Client, error) {
	app, err := p.App()
	if err != nil {
		return nil, err
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get auth client")
	}

	return client, nil
}

func (p *Provider) newApp() (*firebase.App, error) {
	if p.cfg == nil {
		return nil, errors.WithStack(ErrNotConfigured)
	}
	if p.cfg.DatabaseURL == "" {
		return nil, errors.Wrap(ErrNotConfigured, "firebase.databaseUrl is required")
	}

	var opts []option.ClientOption
	if p.cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(p.cfg.CredentialsPath))
	}

	app, err := firebase.NewApp(p.ctx, &firebase.Config{
		ProjectID:   p.cfg.ProjectID,
		DatabaseURL: p.cfg.DatabaseURL,
	}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	p.logger.Info("Firebase app initialized",
		slog.String("project_id", p.cfg.ProjectID),
		slog.String("database_url", p.cfg.DatabaseURL),
	)

	return app, nil
}
