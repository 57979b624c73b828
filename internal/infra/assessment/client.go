// Package assessment is the HTTP client of the remote feasibility-scoring service.
package assessment

import (
	"context"
	"log/slog"
	"net/http"

	"jalsetu/config"
	"jalsetu/internal/domain/entity"
	"jalsetu/internal/domain/service"
	"jalsetu/internal/errors"
	"jalsetu/internal/infra/restclient"

	"go.uber.org/fx"
)

const assessPath = "assess"

// Params holds dependencies for the AssessmentAPI, injected by Fx
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

type assessmentAPI struct {
	client *restclient.Client
	logger *slog.Logger
}

// New creates the AssessmentAPI from the assessment config section.
func New(params Params) (service.AssessmentAPI, error) {
	cfg := params.Config.Assessment
	if cfg == nil || cfg.BaseURL == "" {
		return nil, errors.New("assessment.baseUrl is required")
	}

	return NewClient(cfg, params.Logger)
}

// NewClient creates an AssessmentAPI for the given endpoint.
func NewClient(cfg *config.EndpointConfig, logger *slog.Logger, opts ...restclient.Option) (service.AssessmentAPI, error) {
	client, err := restclient.New(cfg.BaseURL, cfg.Timeout, logger, opts...)
	if err != nil {
		return nil, err
	}

	return &assessmentAPI{
		client: client,
		logger: logger,
	}, nil
}

func (a *assessmentAPI) Assess(ctx context.Context, req *entity.AssessmentRequest) (*entity.AssessmentResponse, error) {
	var resp AssessResponse
	if err := a.client.Do(ctx, http.MethodPost, assessPath, nil, RequestFromEntity(req), &resp); err != nil {
		return nil, err
	}

	return resp.ToEntity(), nil
}
