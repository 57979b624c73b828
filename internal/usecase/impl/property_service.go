package impl

import (
	"context"
	"log/slog"

	deliverycontext "jalsetu/internal/delivery/context"
	"jalsetu/internal/domain/entity"
	domainerrors "jalsetu/internal/domain/errors"
	"jalsetu/internal/domain/repository"
	"jalsetu/internal/errors"
	"jalsetu/internal/usecase"
)

type propertyService struct {
	propertyRepo repository.PropertyRepository
	logger       *slog.Logger
}

// NewPropertyService creates a new property service instance
func NewPropertyService(propertyRepo repository.PropertyRepository, logger *slog.Logger) usecase.PropertyUsecase {
	return &propertyService{
		propertyRepo: propertyRepo,
		logger:       logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *propertyService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *propertyService) Add(ctx context.Context, uid string, property *entity.Property) error {
	if err := srv.upsert(ctx, uid, property); err != nil {
		return err
	}

	srv.log(ctx).Info("Property saved",
		slog.String("uid", uid),
		slog.String("propertyID", property.ID),
		slog.String("propertyType", property.PropertyType),
	)

	return nil
}

func (srv *propertyService) Update(ctx context.Context, uid string, property *entity.Property) error {
	return srv.upsert(ctx, uid, property)
}

func (srv *propertyService) upsert(ctx context.Context, uid string, property *entity.Property) error {
	if property == nil {
		return errors.WithStack(domainerrors.NewInvalidInputError("property is required"))
	}
	if err := requireKeys("uid", uid, "property id", property.ID); err != nil {
		return err
	}
	if property.LastAssessmentDate.IsZero() {
		return errors.WithStack(domainerrors.NewInvalidInputError("property has never been assessed"))
	}

	if err := srv.propertyRepo.Upsert(ctx, uid, property); err != nil {
		srv.log(ctx).Error("Failed to save property",
			slog.String("uid", uid),
			slog.String("propertyID", property.ID),
			slog.Any("error", err),
		)

		return translateStoreError(err, "failed to save property")
	}

	return nil
}

func (srv *propertyService) Delete(ctx context.Context, uid, propertyID string) error {
	if err := requireKeys("uid", uid, "property id", propertyID); err != nil {
		return err
	}

	if err := srv.propertyRepo.Delete(ctx, uid, propertyID); err != nil {
		srv.log(ctx).Error("Failed to delete property",
			slog.String("uid", uid),
			slog.String("propertyID", propertyID),
			slog.Any("error", err),
		)

		return translateStoreError(err, "failed to delete property")
	}

	return nil
}

func (srv *propertyService) GetAll(ctx context.Context, uid string) ([]*entity.Property, error) {
	if err := requireKeys("uid", uid); err != nil {
		return nil, err
	}

	properties, err := srv.propertyRepo.FindAll(ctx, uid)
	if err != nil {
		return nil, translateStoreError(err, "failed to list properties")
	}

	return properties, nil
}

func (srv *propertyService) GetOne(ctx context.Context, uid, propertyID string) (*entity.Property, error) {
	if err := requireKeys("uid", uid, "property id", propertyID); err != nil {
		return nil, err
	}

	property, err := srv.propertyRepo.FindByID(ctx, uid, propertyID)
	if err != nil {
		return nil, translateStoreError(err, "failed to get property")
	}

	return property, nil
}
