// Package stub is a development server that stands in for the assessment
// backend and the advisory endpoints.
package stub

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"jalsetu/config"
	"jalsetu/internal/delivery"
	"jalsetu/internal/delivery/middleware"
	"jalsetu/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

const (
	shutdownTimeout = 10 * time.Second
	maxBodySize     = "64K"
)

// ServerParams holds dependencies for the stub server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	RouterParams RouterParams
}

type stubServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// NewServer builds the stub server and registers its shutdown hook.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := &stubServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: NewEcho(params.Cfg, params.Logger, params.RouterParams),
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// NewEcho assembles the middleware chain and routes.
func NewEcho(cfg *config.Config, logger *slog.Logger, routes RouterParams) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Recover first, then request id so the access log carries it.
	e.Use(echomiddleware.Recover())
	e.Use(middleware.NewRequestIDMiddleware(logger).Process)
	e.Use(middleware.NewLoggerMiddleware(logger, cfg).Handle)
	e.Use(echomiddleware.BodyLimit(maxBodySize))

	e.HTTPErrorHandler = newErrorHandler(logger).HandleHTTPError
	e.Validator = newRequestValidator()

	registerRoutes(e, routes)

	return e
}

func (s *stubServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.Stub.Port))
	s.logger.Info("Starting assessment stub server", slog.String("hostPort", hostPort))
	if err := s.server.Start(hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "failed to serve stub")
	}

	return nil
}

func (s *stubServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	s.logger.Info("Shutting down assessment stub server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
