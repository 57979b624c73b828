// Package document implements the repositories on top of the RemoteStore.
package document

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"

	"jalsetu/internal/domain/entity"
	"jalsetu/internal/domain/repository"
	"jalsetu/internal/errors"
	"jalsetu/internal/infra/persistence/model"
	"jalsetu/internal/infra/remotestore/paths"
)

// reportRepository implements the repository.ReportRepository interface.
type reportRepository struct {
	store  repository.RemoteStore
	logger *slog.Logger
}

// NewReportRepository is the constructor for reportRepository.
func NewReportRepository(store repository.RemoteStore, logger *slog.Logger) repository.ReportRepository {
	return &reportRepository{
		store:  store,
		logger: logger,
	}
}

func (repo *reportRepository) Upsert(ctx context.Context, uid string, report *entity.Report) error {
	path, err := paths.Report(uid, report.ID)
	if err != nil {
		return err
	}

	return errors.Wrap(repo.store.Set(ctx, path, fromReportDomain(report)), "failed to write report")
}

func (repo *reportRepository) Delete(ctx context.Context, uid, reportID string) error {
	path, err := paths.Report(uid, reportID)
	if err != nil {
		return err
	}

	return errors.Wrap(repo.store.Delete(ctx, path), "failed to delete report")
}

// FindAll returns reports by timestamp descending; equal timestamps order by id descending.
func (repo *reportRepository) FindAll(ctx context.Context, uid string) ([]*entity.Report, error) {
	path, err := paths.Reports(uid)
	if err != nil {
		return nil, err
	}

	children, err := repo.store.List(ctx, path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reports")
	}

	reports := make([]*entity.Report, 0, len(children))
	for key, raw := range children {
		doc, ok := decodeChild[model.ReportDoc](repo.logger, path, key, raw)
		if !ok {
			continue
		}
		if doc.ID == "" {
			doc.ID = key
		}
		reports = append(reports, toReportDomain(doc))
	}

	sort.Slice(reports, func(i, j int) bool {
		ti, tj := reports[i].Timestamp, reports[j].Timestamp
		if !ti.Equal(tj) {
			return ti.After(tj)
		}

		return reports[i].ID > reports[j].ID
	})

	return reports, nil
}

func (repo *reportRepository) FindByID(ctx context.Context, uid, reportID string) (*entity.Report, error) {
	path, err := paths.Report(uid, reportID)
	if err != nil {
		return nil, err
	}

	var doc model.ReportDoc
	if err := repo.store.Get(ctx, path, &doc); err != nil {
		if errors.Is(err, repository.ErrPathNotFound) {
			return nil, repository.ErrReportNotFound
		}

		return nil, errors.Wrap(err, "failed to find report by ID")
	}
	if doc.ID == "" {
		doc.ID = reportID
	}

	return toReportDomain(&doc), nil
}

// decodeChild decodes one collection entry. Undecodable entries are logged and skipped
// so one bad document does not hide the rest of the collection.
func decodeChild[T any](logger *slog.Logger, path, key string, raw json.RawMessage) (*T, bool) {
	doc := new(T)
	if err := json.Unmarshal(raw, doc); err != nil {
		logger.Warn("Skipping undecodable document",
			slog.String("path", path+"/"+key),
			slog.Any("error", err),
		)

		return nil, false
	}

	return doc, true
}
