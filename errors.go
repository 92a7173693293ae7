package conciseset

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Set and SubSet operations. Callers should use
// errors.Is to test for these rather than comparing error values from
// wrapped errors directly.
var (
	// ErrOutOfRange is returned when an element is negative or exceeds
	// MaxAllowed.
	ErrOutOfRange = errors.New("conciseset: element out of range")

	// ErrEmpty is returned by First/Last on an empty set.
	ErrEmpty = errors.New("conciseset: set is empty")

	// ErrOutOfBounds is returned when a SubSet mutation targets an element
	// outside the view's [from, to) range.
	ErrOutOfBounds = errors.New("conciseset: element out of sub-view bounds")

	// ErrConcurrentModification is returned by an iterator when the parent
	// set or sub-view was mutated since the iterator was created.
	ErrConcurrentModification = errors.New("conciseset: concurrent modification")

	// ErrNoSuchElement is returned by Iterator.Next/ReverseIterator.Next
	// once HasNext has reported false.
	ErrNoSuchElement = errors.New("conciseset: no more elements")
)

// RangeError wraps ErrOutOfRange/ErrOutOfBounds with the offending value so
// callers can report it without re-parsing the error string.
type RangeError struct {
	Err   error
	Value int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%v: %d", e.Err, e.Value)
}

func (e *RangeError) Unwrap() error {
	return e.Err
}

func outOfRange(i int) error {
	return &RangeError{Err: ErrOutOfRange, Value: i}
}

func outOfBounds(i int) error {
	return &RangeError{Err: ErrOutOfBounds, Value: i}
}
