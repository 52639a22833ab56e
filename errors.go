package jsonemit

import (
	"fmt"

	"github.com/arnodel/jsonemit/value"
)

// A ProtocolViolation is returned when a writer is driven out of its legal
// transition set, e.g. writing a value directly into an object without a key
// first.  It always indicates a defect in the calling code; the writer never
// attempts to recover from it.
type ProtocolViolation struct {
	Op    string
	State StreamState
}

func (e *ProtocolViolation) Error() string {
	return fmt.Sprintf("protocol violation: %s called in state %s", e.Op, e.State)
}

// An UnsupportedValueError is returned when a writer is asked to serialize
// an extension value (complex number or numeric array) and no codec was
// supplied to map it to a plain object shape.
type UnsupportedValueError struct {
	Kind value.Kind
}

func (e *UnsupportedValueError) Error() string {
	return fmt.Sprintf("cannot write value of kind %s without a codec", e.Kind)
}

// A NonFiniteNumberError is returned when a writer is asked to serialize a
// number with no JSON representation (NaN or an infinity).
type NonFiniteNumberError struct {
	Value float64
}

func (e *NonFiniteNumberError) Error() string {
	return fmt.Sprintf("cannot write non-finite number %v", e.Value)
}
