package jsonemit

import "github.com/arnodel/jsonemit/value"

// An Encoder maps extension values (complex numbers, numeric arrays) to a
// plain JSON-representable shape.  EncodeValue must return a value
// containing no extension kinds; values that are already representable pass
// through unchanged.  See the encoding/numeric package for the standard
// implementation.
type Encoder interface {
	EncodeValue(v value.Value) (value.Value, error)
}

// A WriteStream accepts a stream of JSON events as method calls and builds a
// document from them.  Calls are only legal in states that permit them;
// illegal calls return a *ProtocolViolation and leave the stream unchanged.
//
// A stream is single-use: once the root value is finished it cannot be
// driven further, except for Unwind.  Instances are not safe for concurrent
// use.
type WriteStream interface {
	// Flush forces any buffered output to be delivered.  In back-ends with
	// no buffering it should be taken as encouragement to eagerly process
	// pending data.
	Flush() error

	// EnterArray starts an array.  Consider WrapArray for exception-safe
	// scoping.
	EnterArray() error

	// ExitArray ends an array.  Calling it right after an element is legal
	// and finalizes that element first.
	ExitArray() error

	// EnterObject starts an object.  Consider WrapObject for exception-safe
	// scoping.
	EnterObject() error

	// ExitObject ends an object.  Calling it right after a pair's value is
	// legal and finalizes that pair first.
	ExitObject() error

	// WriteKey writes the key of a key-value pair.
	WriteKey(key string) error

	// WriteValue writes a value as an element of an array, as the value of
	// a key-value pair, or as the document root.  The whole value is written
	// as one unit, including nested containers.  The optional enc (may be
	// nil) is used to encode extension values.
	WriteValue(v value.Value, enc Encoder) error

	// Unwind drives the stream back to a terminal state, finishing all open
	// arrays, objects and pairs.  It is idempotent once the document level
	// is reached.
	Unwind() error
}

// WritePair writes a key-value pair into the current object.  If writing the
// value fails, null is written under the key so that the document stays
// well-formed, and the original error is returned.
func WritePair(s WriteStream, key string, v value.Value, enc Encoder) error {
	if err := s.WriteKey(key); err != nil {
		return err
	}
	if err := s.WriteValue(v, enc); err != nil {
		s.WriteValue(value.Null{}, nil)
		return err
	}
	return nil
}

// WrapArray wraps the body in an array scope, guaranteeing that the array is
// exited on every return path.  The body's error takes precedence over an
// exit error.
func WrapArray(s WriteStream, body func() error) (err error) {
	if err = s.EnterArray(); err != nil {
		return err
	}
	defer func() {
		exitErr := s.ExitArray()
		if err == nil {
			err = exitErr
		}
	}()
	return body()
}

// WrapObject wraps the body in an object scope, guaranteeing that the object
// is exited on every return path.  The body's error takes precedence over an
// exit error.
func WrapObject(s WriteStream, body func() error) (err error) {
	if err = s.EnterObject(); err != nil {
		return err
	}
	defer func() {
		exitErr := s.ExitObject()
		if err == nil {
			err = exitErr
		}
	}()
	return body()
}

// EmitValue drives a whole value tree through the stream, entering and
// exiting container scopes and writing leaves, so that the stream's state
// machine sees every structural boundary.
func EmitValue(s WriteStream, v value.Value, enc Encoder) error {
	switch x := v.(type) {
	case value.Array:
		return WrapArray(s, func() error {
			for _, item := range x {
				if err := EmitValue(s, item, enc); err != nil {
					return err
				}
			}
			return nil
		})
	case value.Object:
		return WrapObject(s, func() error {
			for _, m := range x {
				if err := s.WriteKey(m.Key); err != nil {
					return err
				}
				if err := EmitValue(s, m.Value, enc); err != nil {
					return err
				}
			}
			return nil
		})
	default:
		return s.WriteValue(v, enc)
	}
}

// unwindStream implements Unwind in terms of the other stream operations.
func unwindStream(s WriteStream, top func() StreamState) error {
	for {
		switch top() {
		case InArray, PostElem:
			if err := s.ExitArray(); err != nil {
				return err
			}
		case InObject, PostPair:
			if err := s.ExitObject(); err != nil {
				return err
			}
		case InPair:
			if err := s.WriteValue(value.Null{}, nil); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}
