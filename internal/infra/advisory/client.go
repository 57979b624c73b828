// Package advisory is the HTTP client of the farming advisory endpoints.
package advisory

import (
	"context"
	"log/slog"
	"net/http"

	"jalsetu/config"
	domainerrors "jalsetu/internal/domain/errors"
	"jalsetu/internal/domain/service"
	"jalsetu/internal/errors"
	"jalsetu/internal/infra/restclient"

	"github.com/go-playground/validator/v10"
	"github.com/google/go-querystring/query"
	"go.uber.org/fx"
)

const (
	cropSuggestionPath  = "crop-suggestion"
	marketPricesPath    = "market-prices"
	vendorsPath         = "vendors"
	waterManagementPath = "water-management"
)

// Params holds dependencies for the AdvisoryAPI, injected by Fx
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

type advisoryAPI struct {
	client   *restclient.Client
	validate *validator.Validate
}

// New creates the AdvisoryAPI from the advisory config section.
func New(params Params) (service.AdvisoryAPI, error) {
	cfg := params.Config.Advisory
	if cfg == nil || cfg.BaseURL == "" {
		return nil, errors.New("advisory.baseUrl is required")
	}

	return NewClient(cfg, params.Logger)
}

// NewClient creates an AdvisoryAPI for the given endpoint.
func NewClient(cfg *config.EndpointConfig, logger *slog.Logger, opts ...restclient.Option) (service.AdvisoryAPI, error) {
	client, err := restclient.New(cfg.BaseURL, cfg.Timeout, logger, opts...)
	if err != nil {
		return nil, err
	}

	return &advisoryAPI{
		client:   client,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}, nil
}

func (a *advisoryAPI) CropSuggestions(ctx context.Context, q *service.CropQuery) ([]service.CropSuggestion, error) {
	var out []service.CropSuggestion
	if err := a.get(ctx, cropSuggestionPath, q, &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (a *advisoryAPI) MarketPrices(ctx context.Context, q *service.MarketQuery) ([]service.MarketPrice, error) {
	var out []service.MarketPrice
	if err := a.get(ctx, marketPricesPath, q, &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (a *advisoryAPI) Vendors(ctx context.Context, q *service.VendorQuery) ([]service.Vendor, error) {
	var out []service.Vendor
	if err := a.get(ctx, vendorsPath, q, &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (a *advisoryAPI) WaterManagement(ctx context.Context, q *service.WaterQuery) (*service.WaterPlan, error) {
	out := &service.WaterPlan{}
	if err := a.get(ctx, waterManagementPath, q, out); err != nil {
		return nil, err
	}

	return out, nil
}

// get validates q, encodes it as the query string and decodes the response into out.
func (a *advisoryAPI) get(ctx context.Context, path string, q, out any) error {
	if err := a.validate.Struct(q); err != nil {
		return errors.WithStack(domainerrors.NewInvalidInputError(err.Error()))
	}

	values, err := query.Values(q)
	if err != nil {
		return errors.WithStack(domainerrors.ErrInternal.WithCause(err).WithDetails("encode " + path + " query"))
	}

	return a.client.Do(ctx, http.MethodGet, path, values, nil, out)
}
