package usecase

import (
	"context"

	"jalsetu/internal/domain/entity"
)

// ReportUsecase is the per-user report store.
type ReportUsecase interface {
	Add(ctx context.Context, uid string, report *entity.Report) error
	Update(ctx context.Context, uid string, report *entity.Report) error
	Delete(ctx context.Context, uid, reportID string) error

	// GetAll returns reports newest first; equal timestamps order by id descending.
	GetAll(ctx context.Context, uid string) ([]*entity.Report, error)

	// GetOne fails with a NotFound error when the report does not exist.
	GetOne(ctx context.Context, uid, reportID string) (*entity.Report, error)
}
