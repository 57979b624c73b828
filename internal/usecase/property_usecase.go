package usecase

import (
	"context"

	"jalsetu/internal/domain/entity"
)

// PropertyUsecase is the per-user property store.
type PropertyUsecase interface {
	Add(ctx context.Context, uid string, property *entity.Property) error
	Update(ctx context.Context, uid string, property *entity.Property) error
	Delete(ctx context.Context, uid, propertyID string) error

	// GetAll returns properties in creation order.
	GetAll(ctx context.Context, uid string) ([]*entity.Property, error)

	GetOne(ctx context.Context, uid, propertyID string) (*entity.Property, error)
}
