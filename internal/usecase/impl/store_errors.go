// Package impl contains the application-specific business rules implementations.
package impl

import (
	"strings"

	domainerrors "jalsetu/internal/domain/errors"
	"jalsetu/internal/domain/repository"
	"jalsetu/internal/errors"
)

// translateStoreError maps repository errors onto the domain taxonomy.
// Errors that already carry a kind (network failures) keep it.
func translateStoreError(err error, message string) error {
	switch {
	case errors.Is(err, repository.ErrReportNotFound):
		return errors.Wrap(domainerrors.ErrReportNotFound, message)
	case errors.Is(err, repository.ErrPropertyNotFound):
		return errors.Wrap(domainerrors.ErrPropertyNotFound, message)
	case errors.Is(err, repository.ErrProfileNotFound):
		return errors.Wrap(domainerrors.ErrProfileNotFound, message)
	case errors.Is(err, repository.ErrInvalidKey):
		return errors.Wrap(domainerrors.NewInvalidInputError(err.Error()), message)
	case domainerrors.KindOf(err) != domainerrors.KindInternal:
		return errors.Wrap(err, message)
	default:
		return errors.Wrap(domainerrors.ErrInternal.WithCause(err).WithDetails(err.Error()), message)
	}
}

// requireKeys fails with InvalidInput when any named key is blank.
func requireKeys(keys ...string) error {
	for i := 0; i+1 < len(keys); i += 2 {
		if strings.TrimSpace(keys[i+1]) == "" {
			return errors.WithStack(domainerrors.NewInvalidInputError(keys[i] + " is required"))
		}
	}

	return nil
}
