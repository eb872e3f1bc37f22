package numtheory

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned when an input is outside an operation's domain.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInternal is returned when an invariant that always holds for valid input fails.
	ErrInternal = errors.New("internal error")
)

// MaxSafeInteger is the largest integer accepted by the engine (2^53-1).
const MaxSafeInteger int64 = 1<<53 - 1

func invalidf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

func internalf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInternal, fmt.Sprintf(format, args...))
}

// checkRange rejects n outside [min, MaxSafeInteger].
func checkRange(name string, n, min int64) error {
	if n < min {
		return invalidf("%s must be >= %d, got %d", name, min, n)
	}
	if n > MaxSafeInteger {
		return invalidf("%s must be <= %d, got %d", name, MaxSafeInteger, n)
	}
	return nil
}
