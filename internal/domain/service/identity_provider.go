package service

import (
	"context"

	"jalsetu/internal/domain/entity"
)

// IdentityProvider knows who is signed in on this device.
type IdentityProvider interface {
	// CurrentIdentity returns the signed-in identity, or nil when signed out.
	CurrentIdentity(ctx context.Context) (*entity.Identity, error)

	// SignIn verifies the token handed over by the platform sign-in flow and
	// makes it the current identity.
	SignIn(ctx context.Context, idToken string) (*entity.Identity, error)

	// SignOut forgets the current identity.
	SignOut(ctx context.Context) error
}
