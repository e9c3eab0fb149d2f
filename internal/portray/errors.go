package portray

import (
	"errors"
	"fmt"
)

// Domain errors for portrayal resolution.
var (
	// ErrAttributeMissing indicates the entity does not expose the
	// attribute the policy inspects. This is a caller-configuration
	// error and is never substituted with a default record.
	ErrAttributeMissing = errors.New("portray: entity missing inspected attribute")

	// ErrInvalidRecord indicates a display record with an empty color
	// or a non-positive size.
	ErrInvalidRecord = errors.New("portray: invalid display record")

	// ErrNilPredicate indicates a rule without a predicate.
	ErrNilPredicate = errors.New("portray: rule has nil predicate")
)

// AttrError wraps ErrAttributeMissing with the attribute name.
type AttrError struct {
	Name string
}

func (e *AttrError) Error() string {
	return fmt.Sprintf("portray: entity missing attribute %q", e.Name)
}

func (e *AttrError) Unwrap() error {
	return ErrAttributeMissing
}

// RecordError wraps ErrInvalidRecord with the offending field.
type RecordError struct {
	Field  string
	Reason string
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("portray: invalid record: %s %s", e.Field, e.Reason)
}

func (e *RecordError) Unwrap() error {
	return ErrInvalidRecord
}
