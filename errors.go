package supertrie

import (
	"errors"
	"fmt"

	"github.com/exacttw/supertrie/internal/trie"
)

var (
	// ErrInvalidUniverse is returned by New when n is not positive.
	ErrInvalidUniverse = errors.New("universe size must be positive")

	// ErrInvalidWidth is returned by New when the width bound is negative.
	ErrInvalidWidth = errors.New("width bound must not be negative")

	// ErrNilSet is returned when a nil set is passed in.
	ErrNilSet = errors.New("vertex set must not be nil")

	// ErrInvariantViolation is returned by Audit when the trie is inconsistent.
	ErrInvariantViolation = errors.New("invariant violation")
)

// ErrUniverseMismatch indicates a vertex set whose length differs from the
// universe of the index.
type ErrUniverseMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrUniverseMismatch) Error() string {
	return fmt.Sprintf("universe mismatch: expected %d, got %d", e.Expected, e.Actual)
}

func translateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, trie.ErrInvariant) {
		return fmt.Errorf("%w: %w", ErrInvariantViolation, err)
	}

	return err
}
