package repository

import (
	"context"

	"jalsetu/internal/domain/entity"
	"jalsetu/internal/errors"
)

// ErrPropertyNotFound is returned when a property id has no document.
var ErrPropertyNotFound = errors.New("property not found")

// PropertyRepository persists a user's properties.
type PropertyRepository interface {
	Upsert(ctx context.Context, uid string, property *entity.Property) error
	Delete(ctx context.Context, uid, propertyID string) error

	// FindAll returns properties in creation order.
	FindAll(ctx context.Context, uid string) ([]*entity.Property, error)

	FindByID(ctx context.Context, uid, propertyID string) (*entity.Property, error)
}
