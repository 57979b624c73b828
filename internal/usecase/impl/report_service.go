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

type reportService struct {
	reportRepo repository.ReportRepository
	logger     *slog.Logger
}

// NewReportService creates a new report service instance
func NewReportService(reportRepo repository.ReportRepository, logger *slog.Logger) usecase.ReportUsecase {
	return &reportService{
		reportRepo: reportRepo,
		logger:     logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *reportService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *reportService) Add(ctx context.Context, uid string, report *entity.Report) error {
	if err := srv.upsert(ctx, uid, report); err != nil {
		return err
	}

	srv.log(ctx).Info("Report saved",
		slog.String("uid", uid),
		slog.String("reportID", report.ID),
		slog.Float64("feasibilityScore", report.FeasibilityScore),
	)

	return nil
}

// Update overwrites the report stored under the same id.
func (srv *reportService) Update(ctx context.Context, uid string, report *entity.Report) error {
	return srv.upsert(ctx, uid, report)
}

func (srv *reportService) upsert(ctx context.Context, uid string, report *entity.Report) error {
	if report == nil {
		return errors.WithStack(domainerrors.NewInvalidInputError("report is required"))
	}
	if err := requireKeys("uid", uid, "report id", report.ID); err != nil {
		return err
	}
	if report.Timestamp.IsZero() {
		return errors.WithStack(domainerrors.NewInvalidInputError("report timestamp is required"))
	}

	if err := srv.reportRepo.Upsert(ctx, uid, report); err != nil {
		srv.log(ctx).Error("Failed to save report",
			slog.String("uid", uid),
			slog.String("reportID", report.ID),
			slog.Any("error", err),
		)

		return translateStoreError(err, "failed to save report")
	}

	return nil
}

func (srv *reportService) Delete(ctx context.Context, uid, reportID string) error {
	if err := requireKeys("uid", uid, "report id", reportID); err != nil {
		return err
	}

	if err := srv.reportRepo.Delete(ctx, uid, reportID); err != nil {
		srv.log(ctx).Error("Failed to delete report",
			slog.String("uid", uid),
			slog.String("reportID", reportID),
			slog.Any("error", err),
		)

		return translateStoreError(err, "failed to delete report")
	}

	return nil
}

func (srv *reportService) GetAll(ctx context.Context, uid string) ([]*entity.Report, error) {
	if err := requireKeys("uid", uid); err != nil {
		return nil, err
	}

	reports, err := srv.reportRepo.FindAll(ctx, uid)
	if err != nil {
		return nil, translateStoreError(err, "failed to list reports")
	}

	return reports, nil
}

func (srv *reportService) GetOne(ctx context.Context, uid, reportID string) (*entity.Report, error) {
	if err := requireKeys("uid", uid, "report id", reportID); err != nil {
		return nil, err
	}

	report, err := srv.reportRepo.FindByID(ctx, uid, reportID)
	if err != nil {
		return nil, translateStoreError(err, "failed to get report")
	}

	return report, nil
}
