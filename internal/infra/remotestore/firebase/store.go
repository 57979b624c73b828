// Package firebase backs the RemoteStore with the Firebase Realtime Database.
package firebase

import (
	"context"
	"encoding/json"
	"log/slog"

	domainerrors "jalsetu/internal/domain/errors"
	"jalsetu/internal/domain/repository"
	"jalsetu/internal/errors"

	"firebase.google.com/go/v4/db"
)

// ref is the subset of *db.Ref the store needs.
type ref interface {
	Get(ctx context.Context, v interface{}) error
	Set(ctx context.Context, v interface{}) error
	Update(ctx context.Context, v map[string]interface{}) error
	Delete(ctx context.Context) error
}

type remoteStore struct {
	newRef func(path string) ref
	logger *slog.Logger
}

// NewRemoteStore wraps a Realtime Database client.
func NewRemoteStore(client *db.Client, logger *slog.Logger) repository.RemoteStore {
	return newRemoteStore(func(path string) ref {
		return client.NewRef(path)
	}, logger)
}

func newRemoteStore(newRef func(path string) ref, logger *slog.Logger) *remoteStore {
	return &remoteStore{
		newRef: newRef,
		logger: logger,
	}
}

func (s *remoteStore) Get(ctx context.Context, path string, dest any) error {
	raw, err := s.read(ctx, path)
	if err != nil {
		return err
	}
	if isNull(raw) {
		return errors.Wrapf(repository.ErrPathNotFound, "get %s", path)
	}

	return errors.Wrapf(json.Unmarshal(raw, dest), "decode %s", path)
}

func (s *remoteStore) List(ctx context.Context, path string) (map[string]json.RawMessage, error) {
	raw, err := s.read(ctx, path)
	if err != nil {
		return nil, err
	}

	children := map[string]json.RawMessage{}
	if isNull(raw) {
		return children, nil
	}
	if err := json.Unmarshal(raw, &children); err != nil {
		return nil, errors.Wrapf(err, "%s is not a collection", path)
	}

	return children, nil
}

func (s *remoteStore) Set(ctx context.Context, path string, value any) error {
	if err := s.newRef(path).Set(ctx, value); err != nil {
		return s.transportError(ctx, err, "set", path)
	}

	return nil
}

func (s *remoteStore) Update(ctx context.Context, path string, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	if err := s.newRef(path).Update(ctx, fields); err != nil {
		return s.transportError(ctx, err, "update", path)
	}

	return nil
}

func (s *remoteStore) Delete(ctx context.Context, path string) error {
	if err := s.newRef(path).Delete(ctx); err != nil {
		return s.transportError(ctx, err, "delete", path)
	}

	return nil
}

func (s *remoteStore) read(ctx context.Context, path string) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := s.newRef(path).Get(ctx, &raw); err != nil {
		return nil, s.transportError(ctx, err, "get", path)
	}

	return raw, nil
}

// transportError keeps cancellation visible and reports everything else as a network failure.
func (s *remoteStore) transportError(ctx context.Context, err error, op, path string) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return errors.Wrapf(ctxErr, "%s %s", op, path)
	}

	s.logger.Warn("Remote store request failed",
		slog.String("op", op),
		slog.String("path", path),
		slog.Any("error", err),
	)

	return domainerrors.NewNetworkError(err, "remote store "+op+" "+path)
}

func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}
