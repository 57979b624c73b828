// Package state holds the screen-facing result unions. They are plain data
// and carry no rendering concerns.
package state

import (
	domainerrors "jalsetu/internal/domain/errors"
)

// Status tags a State.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusSuccess
	StatusError
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// State is Idle | Loading | Success(data) | Error(message).
type State[T any] struct {
	Status  Status
	Data    T
	Message string
	Kind    domainerrors.Kind // Set only for StatusError.
}

// Idle returns the initial state.
func Idle[T any]() State[T] {
	return State[T]{Status: StatusIdle}
}

// Loading returns the in-flight state.
func Loading[T any]() State[T] {
	return State[T]{Status: StatusLoading}
}

// Success wraps loaded data.
func Success[T any](data T) State[T] {
	return State[T]{Status: StatusSuccess, Data: data}
}

// Failure wraps err as a displayable error state.
func Failure[T any](err error) State[T] {
	return State[T]{
		Status:  StatusError,
		Message: domainerrors.DisplayMessage(err),
		Kind:    domainerrors.KindOf(err),
	}
}

// From folds a (data, err) pair into a terminal state.
func From[T any](data T, err error) State[T] {
	if err != nil {
		return Failure[T](err)
	}

	return Success(data)
}

// IsTerminal reports whether the state is Success or Error.
func (s State[T]) IsTerminal() bool {
	return s.Status == StatusSuccess || s.Status == StatusError
}
