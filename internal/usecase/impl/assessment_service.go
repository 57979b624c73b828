package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "jalsetu/internal/delivery/context"
	"jalsetu/internal/domain/entity"
	domainerrors "jalsetu/internal/domain/errors"
	"jalsetu/internal/domain/service"
	"jalsetu/internal/errors"
	"jalsetu/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type assessmentService struct {
	location   usecase.LocationUsecase
	api        service.AssessmentAPI
	reports    usecase.ReportUsecase
	properties usecase.PropertyUsecase
	validate   *validator.Validate
	logger     *slog.Logger

	now   func() time.Time
	newID func() (string, error)
}

// NewAssessmentService creates a new assessment service instance
func NewAssessmentService(
	location usecase.LocationUsecase,
	api service.AssessmentAPI,
	reports usecase.ReportUsecase,
	properties usecase.PropertyUsecase,
	logger *slog.Logger,
) usecase.AssessmentUsecase {
	return &assessmentService{
		location:   location,
		api:        api,
		reports:    reports,
		properties: properties,
		validate:   validator.New(validator.WithRequiredStructEnabled()),
		logger:     logger,
		now:        time.Now,
		newID:      newV7ID,
	}
}

// newV7ID returns a time-ordered id so that lexical order is creation order.
func newV7ID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}

	return id.String(), nil
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *assessmentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *assessmentService) RunAssessment(ctx context.Context, input *usecase.FormInput) (*entity.Report, error) {
	fields, err := parseForm(srv.validate, input)
	if err != nil {
		return nil, err
	}

	loc, err := srv.resolveLocation(ctx, input)
	if err != nil {
		return nil, err
	}

	req := &entity.AssessmentRequest{
		Name:         fields.Name,
		Latitude:     loc.Latitude,
		Longitude:    loc.Longitude,
		NumDwellers:  fields.NumDwellers,
		RoofAreaSqm:  fields.RoofAreaSqm,
		OpenSpaceSqm: fields.OpenSpace,
		RoofType:     fields.RoofType,
	}

	resp, err := srv.api.Assess(ctx, req)
	if err != nil {
		srv.log(ctx).Warn("Assessment request failed",
			slog.String("kind", string(domainerrors.KindOf(err))),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to run assessment")
	}

	id, err := srv.id()
	if err != nil {
		return nil, err
	}

	report := entity.NewReport(id, req, loc.Address, resp, srv.now())

	srv.log(ctx).Info("Assessment completed",
		slog.String("reportID", report.ID),
		slog.Float64("feasibilityScore", report.FeasibilityScore),
		slog.String("locationSource", string(loc.Source)),
	)

	return report, nil
}

// resolveLocation returns the supplied location or acquires one, then checks it.
func (srv *assessmentService) resolveLocation(ctx context.Context, input *usecase.FormInput) (*entity.Location, error) {
	if input.Location != nil {
		if err := validateLocation(input.Location); err != nil {
			return nil, err
		}

		return input.Location, nil
	}

	loc, err := srv.location.Acquire(ctx)
	if err != nil {
		if !input.AllowMissingLocation {
			return nil, errors.Wrap(err, "failed to acquire location")
		}

		srv.log(ctx).Warn("Location unavailable, assessing without coordinates", slog.Any("error", err))

		return &entity.Location{}, nil
	}

	if err := validateLocation(loc); err != nil {
		return nil, err
	}

	return loc, nil
}

func (srv *assessmentService) Promote(report *entity.Report, opts usecase.PromoteOptions) (*entity.Property, error) {
	if report == nil {
		return nil, errors.WithStack(domainerrors.NewInvalidInputError("report is required"))
	}
	if err := requireKeys("report id", report.ID); err != nil {
		return nil, err
	}
	if report.Timestamp.IsZero() {
		return nil, errors.WithStack(domainerrors.NewInvalidInputError("report timestamp is required"))
	}

	id, err := srv.id()
	if err != nil {
		return nil, err
	}

	return entity.PropertyFromReport(id, report, strings.TrimSpace(opts.PropertyType)), nil
}

func (srv *assessmentService) Reassess(ctx context.Context, property *entity.Property) (*entity.Property, error) {
	if property == nil {
		return nil, errors.WithStack(domainerrors.NewInvalidInputError("property is required"))
	}
	if err := requireKeys("property id", property.ID); err != nil {
		return nil, err
	}
	if property.Latitude == 0 || property.Longitude == 0 {
		return nil, errors.WithStack(domainerrors.NewInvalidInputError("property coordinates are missing"))
	}
	if property.Dwellers <= 0 {
		return nil, errors.WithStack(domainerrors.NewInvalidInputError("property has no dwellers"))
	}

	// Properties do not keep the roof type they were first assessed with.
	resp, err := srv.api.Assess(ctx, property.AssessmentRequest(""))
	if err != nil {
		return nil, errors.Wrap(err, "failed to reassess property")
	}

	property.ApplyAssessment(resp, srv.now())

	srv.log(ctx).Info("Property reassessed",
		slog.String("propertyID", property.ID),
		slog.Float64("feasibilityScore", property.FeasibilityScore),
	)

	return property, nil
}

func (srv *assessmentService) AssessProperty(ctx context.Context, input *usecase.PropertyInput) (*entity.Property, error) {
	if input == nil {
		return nil, errors.WithStack(domainerrors.NewInvalidInputError("form is required"))
	}

	report, err := srv.RunAssessment(ctx, &input.FormInput)
	if err != nil {
		return nil, err
	}

	return srv.Promote(report, usecase.PromoteOptions{PropertyType: input.PropertyType})
}

func (srv *assessmentService) SaveAssessment(
	ctx context.Context,
	uid string,
	report *entity.Report,
	promote *usecase.PromoteOptions,
) (*entity.Property, error) {
	if err := srv.reports.Add(ctx, uid, report); err != nil {
		return nil, err
	}
	if promote == nil {
		return nil, nil //nolint:nilnil // No property was requested.
	}

	property, err := srv.Promote(report, *promote)
	if err != nil {
		return nil, err
	}
	if err := srv.properties.Add(ctx, uid, property); err != nil {
		return nil, err
	}

	return property, nil
}

func (srv *assessmentService) id() (string, error) {
	id, err := srv.newID()
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrInternal.WithCause(err).WithDetails(err.Error()), "failed to generate id")
	}

	return id, nil
}
