package usecase

import (
	"errors"
	"fmt"

	"github.com/riskibarqy/club-manager/internal/domain/validation"
	"github.com/riskibarqy/club-manager/internal/platform/dbpool"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)

// classifyStoreError maps repository errors onto the use case sentinels. The validation failure
// stays in the chain so transports can surface its reason.
func classifyStoreError(err error, op string) error {
	if err == nil {
		return nil
	}
	if f, ok := validation.As(err); ok {
		return fmt.Errorf("%w: %w", ErrInvalidInput, f)
	}
	if errors.Is(err, dbpool.ErrPoolExhausted) {
		return fmt.Errorf("%w: %s: %w", ErrDependencyUnavailable, op, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func invalidInput(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidInput, err)
}

func requireID(name string, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: %s must be a positive integer", ErrInvalidInput, name)
	}
	return nil
}
