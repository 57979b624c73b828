package repository

import (
	"context"

	"jalsetu/internal/domain/entity"
	"jalsetu/internal/errors"
)

// ErrReportNotFound is returned when a report id has no document.
var ErrReportNotFound = errors.New("report not found")

// ReportRepository persists a user's reports.
type ReportRepository interface {
	// Upsert writes the report at its id. Writing the same id twice overwrites.
	Upsert(ctx context.Context, uid string, report *entity.Report) error

	// Delete removes a report. Deleting a missing report is not an error.
	Delete(ctx context.Context, uid, reportID string) error

	// FindAll returns every report, newest first.
	FindAll(ctx context.Context, uid string) ([]*entity.Report, error)

	// FindByID returns ErrReportNotFound when the report does not exist.
	FindByID(ctx context.Context, uid, reportID string) (*entity.Report, error)
}
