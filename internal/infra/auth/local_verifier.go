package auth

import (
	"context"
	"log/slog"
	"time"

	"jalsetu/internal/domain/entity"
	"jalsetu/internal/domain/service"
	"jalsetu/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

const localIssuer = "jalsetu-local"

// localClaims mirrors the profile claims of a Firebase ID token.
type localClaims struct {
	Name    string `json:"name,omitempty"`
	Picture string `json:"picture,omitempty"`
	Email   string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

type localVerifier struct {
	secret []byte
}

// NewLocalIdentityProvider verifies HS256 tokens signed with secret.
func NewLocalIdentityProvider(secret string, logger *slog.Logger) (service.IdentityProvider, error) {
	if secret == "" {
		return nil, errors.New("local auth secret must be provided")
	}

	return newIdentityProvider(&localVerifier{secret: []byte(secret)}, logger), nil
}

// IssueLocalToken mints a token NewLocalIdentityProvider accepts.
func IssueLocalToken(secret string, identity *entity.Identity, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := localClaims{
		Name:    identity.DisplayName,
		Picture: identity.PhotoURL,
		Email:   identity.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.UID,
			Issuer:    localIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", errors.Wrap(err, "sign local token")
	}

	return signed, nil
}

func (v *localVerifier) Verify(ctx context.Context, idToken string) (*entity.Identity, error) {
	claims := &localClaims{}
	_, err := jwt.ParseWithClaims(idToken, claims, func(token *jwt.Token) (any, error) {
		return v.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(localIssuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, errors.Wrap(err, "parse local token")
	}
	if claims.Subject == "" {
		return nil, errors.New("local token has no subject")
	}

	return identityFromClaims(claims.Subject, map[string]any{
		"name":    claims.Name,
		"picture": claims.Picture,
		"email":   claims.Email,
	}), nil
}
