package jsonemit

import (
	"errors"

	"github.com/arnodel/jsonemit/value"
)

// A MemoryWriteStream is a WriteStream which builds an in-memory value tree
// from the event stream instead of producing text.  Structural writes and
// leaf writes go through the same insertion path, so the automaton behaves
// identically to the text back-end.
type MemoryWriteStream struct {
	stack  stateStack
	scopes []*memScope
	key    string
	root   value.Value
}

// memScope is an array or object under construction.  parentKey remembers
// the pending key of the enclosing object, if any, so that the finished
// container can be attached under it on exit.
type memScope struct {
	isObject  bool
	arr       value.Array
	obj       value.Object
	parentKey string
}

var _ WriteStream = &MemoryWriteStream{}

// NewMemoryWriteStream returns an empty MemoryWriteStream.
func NewMemoryWriteStream() *MemoryWriteStream {
	return &MemoryWriteStream{stack: newStateStack()}
}

// State returns the automaton's current state (the top of the state stack).
func (s *MemoryWriteStream) State() StreamState {
	return s.stack.top()
}

// Value returns the root of the finished document.  It returns an error if
// the document is not complete (use Unwind to force completion).
func (s *MemoryWriteStream) Value() (value.Value, error) {
	if s.stack.top() != PostDoc {
		return nil, errors.New("document is not complete")
	}
	return s.root, nil
}

func (s *MemoryWriteStream) Flush() error {
	return nil
}

// insert places a finished value at the current position: as the document
// root, an array element, or the value of the pending pair.
func (s *MemoryWriteStream) insert(v value.Value, op string) error {
	switch s.stack.top() {
	case PreDoc:
		s.root = v
	case InArray, PostElem:
		scope := s.scopes[len(s.scopes)-1]
		scope.arr = append(scope.arr, v)
	case InPair:
		scope := s.scopes[len(s.scopes)-1]
		scope.obj = append(scope.obj, value.Member{Key: s.key, Value: v})
	default:
		return &ProtocolViolation{Op: op, State: s.stack.top()}
	}
	s.stack.postValue()
	return nil
}

func (s *MemoryWriteStream) EnterArray() error {
	if !canStartValue(s.stack.top()) {
		return &ProtocolViolation{Op: "EnterArray", State: s.stack.top()}
	}
	s.scopes = append(s.scopes, &memScope{parentKey: s.key})
	s.stack.push(InArray)
	return nil
}

func (s *MemoryWriteStream) ExitArray() error {
	switch s.stack.top() {
	case InArray, PostElem:
	default:
		return &ProtocolViolation{Op: "ExitArray", State: s.stack.top()}
	}
	scope := s.scopes[len(s.scopes)-1]
	s.scopes = s.scopes[:len(s.scopes)-1]
	s.stack.pop()
	s.key = scope.parentKey
	if scope.arr == nil {
		scope.arr = value.Array{}
	}
	return s.insert(scope.arr, "ExitArray")
}

func (s *MemoryWriteStream) EnterObject() error {
	if !canStartValue(s.stack.top()) {
		return &ProtocolViolation{Op: "EnterObject", State: s.stack.top()}
	}
	s.scopes = append(s.scopes, &memScope{isObject: true, parentKey: s.key})
	s.stack.push(InObject)
	return nil
}

func (s *MemoryWriteStream) ExitObject() error {
	switch s.stack.top() {
	case InObject, PostPair:
	default:
		return &ProtocolViolation{Op: "ExitObject", State: s.stack.top()}
	}
	scope := s.scopes[len(s.scopes)-1]
	s.scopes = s.scopes[:len(s.scopes)-1]
	s.stack.pop()
	s.key = scope.parentKey
	if scope.obj == nil {
		scope.obj = value.Object{}
	}
	return s.insert(scope.obj, "ExitObject")
}

func (s *MemoryWriteStream) WriteKey(key string) error {
	switch s.stack.top() {
	case InObject, PostPair:
	default:
		return &ProtocolViolation{Op: "WriteKey", State: s.stack.top()}
	}
	s.key = key
	s.stack.setTop(InPair)
	return nil
}

func (s *MemoryWriteStream) WriteValue(v value.Value, enc Encoder) error {
	if !canStartValue(s.stack.top()) {
		return &ProtocolViolation{Op: "WriteValue", State: s.stack.top()}
	}
	if enc != nil {
		switch v.Kind() {
		case value.ComplexKind, value.NDArrayKind:
			encoded, err := enc.EncodeValue(v)
			if err != nil {
				return err
			}
			v = encoded
		}
	}
	return s.insert(v, "WriteValue")
}

func (s *MemoryWriteStream) Unwind() error {
	return unwindStream(s, func() StreamState { return s.stack.top() })
}
