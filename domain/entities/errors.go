package entities

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidBet is returned for a bet that is zero or negative
	ErrInvalidBet = errors.New("bet must be a positive amount")

	// ErrInsufficientBalance is returned when a bet exceeds the current balance
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrAlreadyClaimed is returned when the daily reward was already claimed today
	ErrAlreadyClaimed = errors.New("daily reward already claimed today")

	// ErrSessionExpired is returned for actions on a finished or timed out game session
	ErrSessionExpired = errors.New("game session has expired")

	// ErrStorageFailure matches every StorageError through errors.Is
	ErrStorageFailure = errors.New("storage failure")
)

// StorageError wraps a persistence failure with the operation that hit it.
// Nothing from the failed operation was applied.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrStorageFailure) true for any StorageError
func (e *StorageError) Is(target error) bool {
	return target == ErrStorageFailure
}

// NewStorageError wraps err unless it is nil, a domain error, or already a StorageError
func NewStorageError(op string, err error) error {
	if err == nil || IsDomainError(err) {
		return err
	}
	var storageErr *StorageError
	if errors.As(err, &storageErr) {
		return err
	}
	return &StorageError{Op: op, Err: err}
}

// IsDomainError reports whether err is one of the expected user-facing outcomes
func IsDomainError(err error) bool {
	return errors.Is(err, ErrInvalidBet) ||
		errors.Is(err, ErrInsufficientBalance) ||
		errors.Is(err, ErrAlreadyClaimed) ||
		errors.Is(err, ErrSessionExpired)
}
