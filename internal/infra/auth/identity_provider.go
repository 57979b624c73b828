// Package auth provides the identity provider implementations: Firebase ID
// token verification for production and HS256 tokens for local development.
package auth

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"jalsetu/internal/domain/entity"
	domainerrors "jalsetu/internal/domain/errors"
	"jalsetu/internal/domain/service"
	"jalsetu/internal/errors"
)

// verifier turns a sign-in token into a verified identity.
type verifier interface {
	Verify(ctx context.Context, idToken string) (*entity.Identity, error)
}

// identityProvider remembers the identity verified by the last SignIn.
type identityProvider struct {
	verifier verifier
	logger   *slog.Logger

	mu      sync.RWMutex
	current *entity.Identity
}

func newIdentityProvider(v verifier, logger *slog.Logger) service.IdentityProvider {
	return &identityProvider{
		verifier: v,
		logger:   logger,
	}
}

func (p *identityProvider) CurrentIdentity(ctx context.Context) (*entity.Identity, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.current == nil {
		return nil, nil
	}
	identity := *p.current

	return &identity, nil
}

func (p *identityProvider) SignIn(ctx context.Context, idToken string) (*entity.Identity, error) {
	if strings.TrimSpace(idToken) == "" {
		return nil, errors.WithStack(domainerrors.ErrInvalidIDToken.WithDetails("empty token"))
	}

	identity, err := p.verifier.Verify(ctx, idToken)
	if err != nil {
		p.logger.Warn("ID token rejected", slog.Any("error", err))

		return nil, errors.WithStack(domainerrors.ErrInvalidIDToken.WithCause(err).WithDetails(err.Error()))
	}

	p.mu.Lock()
	p.current = identity
	p.mu.Unlock()

	p.logger.Info("Signed in", slog.String("uid", identity.UID))

	out := *identity

	return &out, nil
}

func (p *identityProvider) SignOut(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.current = nil

	return nil
}

// identityFromClaims reads the standard profile claims shared by both token formats.
func identityFromClaims(uid string, claims map[string]any) *entity.Identity {
	claim := func(key string) string {
		v, _ := claims[key].(string)

		return v
	}

	return &entity.Identity{
		UID:         uid,
		DisplayName: claim("name"),
		PhotoURL:    claim("picture"),
		Email:       claim("email"),
	}
}
