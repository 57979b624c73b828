package auth

import (
	"context"
	"log/slog"

	"jalsetu/internal/domain/entity"
	"jalsetu/internal/domain/service"
	"jalsetu/internal/errors"

	firebaseauth "firebase.google.com/go/v4/auth"
)

// tokenVerifier is the part of *auth.Client used here.
type tokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*firebaseauth.Token, error)
}

type firebaseVerifier struct {
	client tokenVerifier
}

// NewFirebaseIdentityProvider verifies Firebase ID tokens with the Admin SDK.
func NewFirebaseIdentityProvider(client *firebaseauth.Client, logger *slog.Logger) service.IdentityProvider {
	return newIdentityProvider(&firebaseVerifier{client: client}, logger)
}

func (v *firebaseVerifier) Verify(ctx context.Context, idToken string) (*entity.Identity, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, errors.Wrap(err, "verify firebase id token")
	}
	if token.UID == "" {
		return nil, errors.New("firebase token has no uid")
	}

	return identityFromClaims(token.UID, token.Claims), nil
}
