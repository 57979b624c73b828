package impl

import (
	"context"
	"log/slog"
	"sync"

	"jalsetu/config"
	deliverycontext "jalsetu/internal/delivery/context"
	"jalsetu/internal/domain/entity"
	"jalsetu/internal/domain/service"
	"jalsetu/internal/errors"
	"jalsetu/internal/usecase"

	"golang.org/x/sync/singleflight"
)

const sessionCheckKey = "check"

type sessionService struct {
	identity service.IdentityProvider
	profiles usecase.ProfileUsecase
	surface  entity.Surface
	logger   *slog.Logger

	checks singleflight.Group

	mu    sync.Mutex
	state entity.SessionState
	// generation is bumped by sign-in and sign-out so that a check started
	// before either cannot overwrite its result.
	generation uint64
}

// NewSessionService creates a new session gate in the Unchecked state.
func NewSessionService(
	identity service.IdentityProvider,
	profiles usecase.ProfileUsecase,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.SessionUsecase {
	surface := entity.SurfaceMain
	if cfg.Session != nil {
		surface = entity.SurfaceOrDefault(cfg.Session.Surface)
	}

	return &sessionService{
		identity: identity,
		profiles: profiles,
		surface:  surface,
		logger:   logger,
		state:    entity.SessionState{Phase: entity.SessionUnchecked},
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *sessionService) State() entity.SessionState {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.state
}

func (srv *sessionService) CheckSession(ctx context.Context) entity.SessionStatus {
	srv.mu.Lock()
	if srv.state.Phase == entity.SessionSignedOut {
		status := srv.state.Status()
		srv.mu.Unlock()

		return status
	}
	srv.mu.Unlock()

	result, _, _ := srv.checks.Do(sessionCheckKey, func() (any, error) {
		return srv.check(ctx), nil
	})

	status, _ := result.(entity.SessionStatus)

	return status
}

func (srv *sessionService) check(ctx context.Context) entity.SessionStatus {
	srv.mu.Lock()
	generation := srv.generation
	if srv.state.Phase == entity.SessionUnchecked {
		srv.state = entity.SessionState{Phase: entity.SessionChecking}
	}
	srv.mu.Unlock()

	next := srv.resolve(ctx)

	return srv.commit(generation, next)
}

// commit stores next unless a sign-in or sign-out happened since generation was read.
func (srv *sessionService) commit(generation uint64, next entity.SessionState) entity.SessionStatus {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if srv.generation == generation {
		srv.state = next
	}

	return srv.state.Status()
}

func (srv *sessionService) resolve(ctx context.Context) entity.SessionState {
	identity, err := srv.identity.CurrentIdentity(ctx)
	if err != nil {
		srv.log(ctx).Warn("Failed to read current identity, treating as signed out", slog.Any("error", err))

		return entity.SessionState{Phase: entity.SessionSignedOut}
	}
	if identity == nil {
		return entity.SessionState{Phase: entity.SessionSignedOut}
	}

	return srv.signedIn(ctx, identity.UID)
}

func (srv *sessionService) signedIn(ctx context.Context, uid string) entity.SessionState {
	complete, err := srv.profiles.IsOnboardingComplete(ctx, uid, srv.surface)
	if err != nil {
		srv.log(ctx).Warn("Failed to read onboarding status, requiring onboarding",
			slog.String("uid", uid),
			slog.String("surface", srv.surface.String()),
			slog.Any("error", err),
		)
		complete = false
	}

	return entity.SessionState{
		Phase:              entity.SessionSignedIn,
		UID:                uid,
		OnboardingRequired: !complete,
	}
}

func (srv *sessionService) CompleteSignIn(ctx context.Context, idToken string) (entity.SessionStatus, error) {
	identity, err := srv.identity.SignIn(ctx, idToken)
	if err != nil {
		srv.log(ctx).Warn("Sign-in failed", slog.Any("error", err))

		return srv.State().Status(), errors.Wrap(err, "failed to complete sign-in")
	}

	srv.mu.Lock()
	srv.generation++
	generation := srv.generation
	srv.state = entity.SessionState{Phase: entity.SessionChecking}
	srv.mu.Unlock()
	srv.checks.Forget(sessionCheckKey)

	if _, err := srv.profiles.EnsureUserProfile(ctx, identity); err != nil {
		srv.log(ctx).Error("Failed to ensure user profile after sign-in",
			slog.String("uid", identity.UID),
			slog.Any("error", err),
		)
	}

	status := srv.commit(generation, srv.signedIn(ctx, identity.UID))

	srv.log(ctx).Info("User signed in",
		slog.String("uid", identity.UID),
		slog.Bool("onboardingRequired", status.OnboardingRequired),
	)

	return status, nil
}

func (srv *sessionService) SignOut(ctx context.Context) error {
	err := srv.identity.SignOut(ctx)

	srv.mu.Lock()
	srv.generation++
	srv.state = entity.SessionState{Phase: entity.SessionSignedOut}
	srv.mu.Unlock()
	srv.checks.Forget(sessionCheckKey)

	if err != nil {
		srv.log(ctx).Error("Identity provider sign-out failed", slog.Any("error", err))

		return errors.Wrap(err, "failed to sign out")
	}

	return nil
}
