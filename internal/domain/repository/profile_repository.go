package repository

import (
	"context"

	"jalsetu/internal/domain/entity"
	"jalsetu/internal/errors"
)

// ErrProfileNotFound is returned when a user has no profile document yet.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository persists both profile variants.
type ProfileRepository interface {
	FindUserProfile(ctx context.Context, uid string) (*entity.UserProfile, error)

	// SaveUserProfile writes every profile field of the user node. The user's
	// reports and properties below the same node are preserved.
	SaveUserProfile(ctx context.Context, profile *entity.UserProfile) error

	FindGraminProfile(ctx context.Context, uid string) (*entity.GraminProfile, error)

	// SaveGraminProfile overwrites the whole farm profile document.
	SaveGraminProfile(ctx context.Context, profile *entity.GraminProfile) error
}
