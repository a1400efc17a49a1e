package page

import (
	"errors"
	"fmt"
)

var (
	// ErrInvariantViolation is returned when an operation would leave the
	// document in a state it must never reach. The document is unchanged.
	ErrInvariantViolation = errors.New("invariant violation")

	// ErrIndexOutOfRange is returned when a section or button index does not
	// name an existing element.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrStorageCorrupt is returned when a stored snapshot cannot be parsed.
	ErrStorageCorrupt = errors.New("snapshot is corrupt")

	ErrUnknownField   = errors.New("unknown page field")
	ErrUnknownCommand = errors.New("unknown command")
)

// LastSectionNotice is shown when the user tries to remove the only section.
const LastSectionNotice = "You need at least one section"

// InvariantError carries the message to show the user for a rejected
// mutation.
type InvariantError struct {
	Notice string
}

func (e *InvariantError) Error() string {
	return "invariant violation: " + e.Notice
}

func (e *InvariantError) Unwrap() error { return ErrInvariantViolation }

// IndexError reports which index was rejected and how long the list was.
type IndexError struct {
	Kind  string // "section" or "button"
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s index %d out of range [0,%d)", e.Kind, e.Index, e.Len)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }
