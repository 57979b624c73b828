package service

import (
	"context"

	"jalsetu/internal/domain/entity"
)

// AssessmentAPI is the remote feasibility-scoring service.
type AssessmentAPI interface {
	// Assess scores one site. Transport failures are domain network errors;
	// non-success responses are domain remote errors.
	Assess(ctx context.Context, req *entity.AssessmentRequest) (*entity.AssessmentResponse, error)
}
