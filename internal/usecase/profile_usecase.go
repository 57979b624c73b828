package usecase

import (
	"context"

	"jalsetu/internal/domain/entity"
)

// ProfileUsecase reads and writes both profile variants. It is the source of
// truth for onboarding gating.
type ProfileUsecase interface {
	GetUserProfile(ctx context.Context, uid string) (*entity.UserProfile, error)

	// SetUserProfile patches the profile fields; reports and properties are untouched.
	SetUserProfile(ctx context.Context, profile *entity.UserProfile) error

	GetGraminProfile(ctx context.Context, uid string) (*entity.GraminProfile, error)

	// SetGraminProfile overwrites the farm profile.
	SetGraminProfile(ctx context.Context, profile *entity.GraminProfile) error

	// IsOnboardingComplete reports the surface's onboarding flag. A missing profile is false.
	IsOnboardingComplete(ctx context.Context, uid string, surface entity.Surface) (bool, error)

	// CompleteOnboarding sets the surface's onboarding flag. Nothing resets it.
	CompleteOnboarding(ctx context.Context, uid string, surface entity.Surface) error

	// EnsureUserProfile creates the profile on first sign-in and returns the stored one otherwise.
	EnsureUserProfile(ctx context.Context, identity *entity.Identity) (*entity.UserProfile, error)
}
