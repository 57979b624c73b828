package impl

import (
	"context"
	"testing"

	"jalsetu/internal/domain/entity"
	domainerrors "jalsetu/internal/domain/errors"
	"jalsetu/internal/domain/repository"
	"jalsetu/internal/errors"
	mockRepo "jalsetu/internal/mocks/repository"
	"jalsetu/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service     usecase.ProfileUsecase
	profileRepo *mockRepo.MockProfileRepository
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	profileRepo := mockRepo.NewMockProfileRepository(t)

	return profileServiceFixtures{
		service:     NewProfileService(profileRepo, discardLogger()),
		profileRepo: profileRepo,
	}
}

func TestProfileService_GetUserProfile_NotFound(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	fx.profileRepo.EXPECT().FindUserProfile(ctx, "u1").Return(nil, repository.ErrProfileNotFound)

	_, err := fx.service.GetUserProfile(ctx, "u1")

	assert.True(t, errors.Is(err, domainerrors.ErrProfileNotFound))
	assert.Equal(t, domainerrors.KindNotFound, domainerrors.KindOf(err))
}

func TestProfileService_GetUserProfile_BlankUID(t *testing.T) {
	fx := createTestProfileService(t)

	_, err := fx.service.GetUserProfile(context.Background(), " ")

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
}

func TestProfileService_IsOnboardingComplete(t *testing.T) {
	tests := []struct {
		name    string
		surface entity.Surface
		setup   func(repo *mockRepo.MockProfileRepository)
		want    bool
		wantErr bool
	}{
		{
			name:    "main absent",
			surface: entity.SurfaceMain,
			setup: func(repo *mockRepo.MockProfileRepository) {
				repo.EXPECT().FindUserProfile(mock.Anything, "u1").Return(nil, repository.ErrProfileNotFound)
			},
			want: false,
		},
		{
			name:    "main complete",
			surface: entity.SurfaceMain,
			setup: func(repo *mockRepo.MockProfileRepository) {
				repo.EXPECT().FindUserProfile(mock.Anything, "u1").
					Return(&entity.UserProfile{UID: "u1", OnboardingCompleted: true}, nil)
			},
			want: true,
		},
		{
			name:    "gramin incomplete",
			surface: entity.SurfaceGramin,
			setup: func(repo *mockRepo.MockProfileRepository) {
				repo.EXPECT().FindGraminProfile(mock.Anything, "u1").
					Return(&entity.GraminProfile{UID: "u1"}, nil)
			},
			want: false,
		},
		{
			name:    "read failure",
			surface: entity.SurfaceMain,
			setup: func(repo *mockRepo.MockProfileRepository) {
				repo.EXPECT().FindUserProfile(mock.Anything, "u1").
					Return(nil, domainerrors.NewNetworkError(errors.New("offline"), "get users/u1"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestProfileService(t)
			tt.setup(fx.profileRepo)

			got, err := fx.service.IsOnboardingComplete(context.Background(), "u1", tt.surface)
			if tt.wantErr {
				assert.True(t, errors.Is(err, domainerrors.ErrNetwork))

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProfileService_CompleteOnboarding_Main(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	fx.profileRepo.EXPECT().FindUserProfile(ctx, "u1").
		Return(&entity.UserProfile{UID: "u1", DisplayName: "Asha", NumDwellers: 4}, nil)
	fx.profileRepo.EXPECT().
		SaveUserProfile(ctx, mock.MatchedBy(func(p *entity.UserProfile) bool {
			return p.OnboardingCompleted && p.DisplayName == "Asha" && p.NumDwellers == 4
		})).
		Return(nil)

	require.NoError(t, fx.service.CompleteOnboarding(ctx, "u1", entity.SurfaceMain))
}

func TestProfileService_CompleteOnboarding_GraminAlreadyDone(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	fx.profileRepo.EXPECT().FindGraminProfile(ctx, "u1").
		Return(&entity.GraminProfile{UID: "u1", OnboardingCompleted: true}, nil)

	require.NoError(t, fx.service.CompleteOnboarding(ctx, "u1", entity.SurfaceGramin))
	fx.profileRepo.AssertNotCalled(t, "SaveGraminProfile", mock.Anything, mock.Anything)
}

func TestProfileService_EnsureUserProfile_FirstSignIn(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	identity := &entity.Identity{UID: "u1", DisplayName: "Asha", PhotoURL: "https://example.com/a.png"}

	fx.profileRepo.EXPECT().FindUserProfile(ctx, "u1").Return(nil, repository.ErrProfileNotFound)
	fx.profileRepo.EXPECT().
		SaveUserProfile(ctx, &entity.UserProfile{UID: "u1", DisplayName: "Asha", PhotoURL: "https://example.com/a.png"}).
		Return(nil)

	profile, err := fx.service.EnsureUserProfile(ctx, identity)
	require.NoError(t, err)
	assert.False(t, profile.OnboardingCompleted)
}

func TestProfileService_EnsureUserProfile_Existing(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	existing := &entity.UserProfile{UID: "u1", DisplayName: "Renamed", OnboardingCompleted: true}

	fx.profileRepo.EXPECT().FindUserProfile(ctx, "u1").Return(existing, nil)

	profile, err := fx.service.EnsureUserProfile(ctx, &entity.Identity{UID: "u1", DisplayName: "Asha"})
	require.NoError(t, err)
	assert.Same(t, existing, profile)
}

func TestProfileService_SetGraminProfile_InvalidKey(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	profile := &entity.GraminProfile{UID: "a.b"}

	fx.profileRepo.EXPECT().SaveGraminProfile(ctx, profile).
		Return(errors.Wrap(repository.ErrInvalidKey, "key contains ."))

	err := fx.service.SetGraminProfile(ctx, profile)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
}
