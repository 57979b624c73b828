package usecase

import (
	"context"

	"jalsetu/internal/domain/entity"
)

// SessionUsecase is the auth and onboarding gate consumed by the top-level router.
type SessionUsecase interface {
	// CheckSession resolves the current identity and its onboarding status.
	// Concurrent callers share one in-flight check. Identity or profile read
	// failures never surface: they read as signed out or onboarding required.
	CheckSession(ctx context.Context) entity.SessionStatus

	// CompleteSignIn verifies the token from the platform sign-in flow,
	// creates the profile on first sign-in and re-checks the session.
	CompleteSignIn(ctx context.Context, idToken string) (entity.SessionStatus, error)

	// SignOut forgets the identity and returns the gate to signed out.
	SignOut(ctx context.Context) error

	// State returns the current gate state.
	State() entity.SessionState
}
