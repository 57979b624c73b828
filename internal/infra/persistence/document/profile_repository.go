package document

import (
	"context"
	"log/slog"

	"jalsetu/internal/domain/entity"
	"jalsetu/internal/domain/repository"
	"jalsetu/internal/errors"
	"jalsetu/internal/infra/persistence/model"
	"jalsetu/internal/infra/remotestore/paths"
)

// profileRepository implements the repository.ProfileRepository interface.
type profileRepository struct {
	store  repository.RemoteStore
	logger *slog.Logger
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(store repository.RemoteStore, logger *slog.Logger) repository.ProfileRepository {
	return &profileRepository{
		store:  store,
		logger: logger,
	}
}

// FindUserProfile reads the profile fields of users/{uid}. A node that only
// holds reports or properties has no profile.
func (repo *profileRepository) FindUserProfile(ctx context.Context, uid string) (*entity.UserProfile, error) {
	path, err := paths.User(uid)
	if err != nil {
		return nil, err
	}

	var doc model.UserProfileDoc
	if err := repo.store.Get(ctx, path, &doc); err != nil {
		if errors.Is(err, repository.ErrPathNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find user profile")
	}
	if doc.UID == "" {
		return nil, repository.ErrProfileNotFound
	}

	return toUserProfileDomain(&doc), nil
}

// SaveUserProfile patches the profile fields so the node's children survive.
func (repo *profileRepository) SaveUserProfile(ctx context.Context, profile *entity.UserProfile) error {
	path, err := paths.User(profile.UID)
	if err != nil {
		return err
	}

	return errors.Wrap(repo.store.Update(ctx, path, fromUserProfileDomain(profile).Fields()), "failed to save user profile")
}

func (repo *profileRepository) FindGraminProfile(ctx context.Context, uid string) (*entity.GraminProfile, error) {
	path, err := paths.GraminProfile(uid)
	if err != nil {
		return nil, err
	}

	var doc model.GraminProfileDoc
	if err := repo.store.Get(ctx, path, &doc); err != nil {
		if errors.Is(err, repository.ErrPathNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find gramin profile")
	}
	if doc.UID == "" {
		doc.UID = uid
	}

	return toGraminProfileDomain(&doc), nil
}

// SaveGraminProfile overwrites the farm profile; the last writer wins.
func (repo *profileRepository) SaveGraminProfile(ctx context.Context, profile *entity.GraminProfile) error {
	path, err := paths.GraminProfile(profile.UID)
	if err != nil {
		return err
	}

	return errors.Wrap(repo.store.Set(ctx, path, fromGraminProfileDomain(profile)), "failed to save gramin profile")
}
