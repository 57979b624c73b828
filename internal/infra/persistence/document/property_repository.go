package document

import (
	"context"
	"log/slog"
	"sort"

	"jalsetu/internal/domain/entity"
	"jalsetu/internal/domain/repository"
	"jalsetu/internal/errors"
	"jalsetu/internal/infra/persistence/model"
	"jalsetu/internal/infra/remotestore/paths"
)

// propertyRepository implements the repository.PropertyRepository interface.
type propertyRepository struct {
	store  repository.RemoteStore
	logger *slog.Logger
}

// NewPropertyRepository is the constructor for propertyRepository.
func NewPropertyRepository(store repository.RemoteStore, logger *slog.Logger) repository.PropertyRepository {
	return &propertyRepository{
		store:  store,
		logger: logger,
	}
}

func (repo *propertyRepository) Upsert(ctx context.Context, uid string, property *entity.Property) error {
	path, err := paths.Property(uid, property.ID)
	if err != nil {
		return err
	}

	return errors.Wrap(repo.store.Set(ctx, path, fromPropertyDomain(property)), "failed to write property")
}

func (repo *propertyRepository) Delete(ctx context.Context, uid, propertyID string) error {
	path, err := paths.Property(uid, propertyID)
	if err != nil {
		return err
	}

	return errors.Wrap(repo.store.Delete(ctx, path), "failed to delete property")
}

// FindAll returns properties in creation order. Ids are UUIDv7, so that is id order.
func (repo *propertyRepository) FindAll(ctx context.Context, uid string) ([]*entity.Property, error) {
	path, err := paths.Properties(uid)
	if err != nil {
		return nil, err
	}

	children, err := repo.store.List(ctx, path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list properties")
	}

	properties := make([]*entity.Property, 0, len(children))
	for key, raw := range children {
		doc, ok := decodeChild[model.PropertyDoc](repo.logger, path, key, raw)
		if !ok {
			continue
		}
		if doc.ID == "" {
			doc.ID = key
		}
		properties = append(properties, toPropertyDomain(doc))
	}

	sort.Slice(properties, func(i, j int) bool {
		return properties[i].ID < properties[j].ID
	})

	return properties, nil
}

func (repo *propertyRepository) FindByID(ctx context.Context, uid, propertyID string) (*entity.Property, error) {
	path, err := paths.Property(uid, propertyID)
	if err != nil {
		return nil, err
	}

	var doc model.PropertyDoc
	if err := repo.store.Get(ctx, path, &doc); err != nil {
		if errors.Is(err, repository.ErrPathNotFound) {
			return nil, repository.ErrPropertyNotFound
		}

		return nil, errors.Wrap(err, "failed to find property by ID")
	}
	if doc.ID == "" {
		doc.ID = propertyID
	}

	return toPropertyDomain(&doc), nil
}
