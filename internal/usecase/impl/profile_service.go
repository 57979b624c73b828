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

type profileService struct {
	profileRepo repository.ProfileRepository
	logger      *slog.Logger
}

// NewProfileService creates a new profile service instance
func NewProfileService(profileRepo repository.ProfileRepository, logger *slog.Logger) usecase.ProfileUsecase {
	return &profileService{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *profileService) GetUserProfile(ctx context.Context, uid string) (*entity.UserProfile, error) {
	if err := requireKeys("uid", uid); err != nil {
		return nil, err
	}

	profile, err := srv.profileRepo.FindUserProfile(ctx, uid)
	if err != nil {
		return nil, translateStoreError(err, "failed to get user profile")
	}

	return profile, nil
}

func (srv *profileService) SetUserProfile(ctx context.Context, profile *entity.UserProfile) error {
	if profile == nil {
		return errors.WithStack(domainerrors.NewInvalidInputError("profile is required"))
	}
	if err := requireKeys("uid", profile.UID); err != nil {
		return err
	}

	if err := srv.profileRepo.SaveUserProfile(ctx, profile); err != nil {
		srv.log(ctx).Error("Failed to save user profile", slog.String("uid", profile.UID), slog.Any("error", err))

		return translateStoreError(err, "failed to save user profile")
	}

	return nil
}

func (srv *profileService) GetGraminProfile(ctx context.Context, uid string) (*entity.GraminProfile, error) {
	if err := requireKeys("uid", uid); err != nil {
		return nil, err
	}

	profile, err := srv.profileRepo.FindGraminProfile(ctx, uid)
	if err != nil {
		return nil, translateStoreError(err, "failed to get gramin profile")
	}

	return profile, nil
}

func (srv *profileService) SetGraminProfile(ctx context.Context, profile *entity.GraminProfile) error {
	if profile == nil {
		return errors.WithStack(domainerrors.NewInvalidInputError("profile is required"))
	}
	if err := requireKeys("uid", profile.UID); err != nil {
		return err
	}

	if err := srv.profileRepo.SaveGraminProfile(ctx, profile); err != nil {
		srv.log(ctx).Error("Failed to save gramin profile", slog.String("uid", profile.UID), slog.Any("error", err))

		return translateStoreError(err, "failed to save gramin profile")
	}

	return nil
}

func (srv *profileService) IsOnboardingComplete(ctx context.Context, uid string, surface entity.Surface) (bool, error) {
	switch surface {
	case entity.SurfaceGramin:
		profile, err := srv.GetGraminProfile(ctx, uid)
		if errors.Is(err, domainerrors.ErrProfileNotFound) {
			return false, nil
		}
		if err != nil {
			return false, err
		}

		return profile.OnboardingCompleted, nil

	default:
		profile, err := srv.GetUserProfile(ctx, uid)
		if errors.Is(err, domainerrors.ErrProfileNotFound) {
			return false, nil
		}
		if err != nil {
			return false, err
		}

		return profile.OnboardingCompleted, nil
	}
}

// CompleteOnboarding reads the surface's profile, sets its flag and writes it back.
// The profile must already exist.
func (srv *profileService) CompleteOnboarding(ctx context.Context, uid string, surface entity.Surface) error {
	srv.log(ctx).Info("Completing onboarding", slog.String("uid", uid), slog.String("surface", surface.String()))

	switch surface {
	case entity.SurfaceGramin:
		profile, err := srv.GetGraminProfile(ctx, uid)
		if err != nil {
			return err
		}
		if profile.OnboardingCompleted {
			return nil
		}
		profile.OnboardingCompleted = true

		return srv.SetGraminProfile(ctx, profile)

	default:
		profile, err := srv.GetUserProfile(ctx, uid)
		if err != nil {
			return err
		}
		if profile.OnboardingCompleted {
			return nil
		}
		profile.OnboardingCompleted = true

		return srv.SetUserProfile(ctx, profile)
	}
}

func (srv *profileService) EnsureUserProfile(ctx context.Context, identity *entity.Identity) (*entity.UserProfile, error) {
	if identity == nil {
		return nil, errors.WithStack(domainerrors.NewInvalidInputError("identity is required"))
	}

	profile, err := srv.GetUserProfile(ctx, identity.UID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, domainerrors.ErrProfileNotFound) {
		return nil, err
	}

	profile = entity.NewUserProfile(identity)
	if err := srv.SetUserProfile(ctx, profile); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Created user profile on first sign-in", slog.String("uid", identity.UID))

	return profile, nil
}
