package handler

import (
	"net/http"
	"time"

	"jalsetu/config"
	"jalsetu/internal/domain/entity"
	domainerrors "jalsetu/internal/domain/errors"
	"jalsetu/internal/errors"
	"jalsetu/internal/infra/auth"

	"github.com/labstack/echo/v4"
)

const defaultTokenTTL = time.Hour

// TokenRequest is the POST /dev/token body.
type TokenRequest struct {
	UID     string `json:"uid" validate:"required"`
	Name    string `json:"name"`
	Email   string `json:"email" validate:"omitempty,email"`
	Picture string `json:"picture" validate:"omitempty,url"`

	// TTLSeconds defaults to one hour.
	TTLSeconds int `json:"ttl_seconds" validate:"gte=0"`
}

// TokenResponse carries a token the local identity provider accepts.
type TokenResponse struct {
	IDToken   string `json:"id_token"`
	ExpiresIn int    `json:"expires_in"`
}

// TokenHandler mints development sign-in tokens.
type TokenHandler struct {
	secret string
}

// NewTokenHandler returns nil unless local auth is configured.
func NewTokenHandler(cfg *config.Config) *TokenHandler {
	if cfg.Auth == nil || cfg.Auth.Provider != config.AuthLocal || cfg.Auth.LocalSecret == "" {
		return nil
	}

	return &TokenHandler{secret: cfg.Auth.LocalSecret}
}

// IssueToken handles POST /dev/token
func (h *TokenHandler) IssueToken(c echo.Context) error {
	var req TokenRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return domainerrors.NewInvalidInputError(err.Error())
	}

	ttl := defaultTokenTTL
	if req.TTLSeconds > 0 {
		ttl = time.Duration(req.TTLSeconds) * time.Second
	}

	token, err := auth.IssueLocalToken(h.secret, &entity.Identity{
		UID:         req.UID,
		DisplayName: req.Name,
		PhotoURL:    req.Picture,
		Email:       req.Email,
	}, ttl)
	if err != nil {
		return errors.Wrap(err, "failed to issue token")
	}

	return c.JSON(http.StatusOK, TokenResponse{
		IDToken:   token,
		ExpiresIn: int(ttl.Seconds()),
	})
}

// HealthCheck handles GET /health
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
