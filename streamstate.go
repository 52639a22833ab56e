package jsonemit

// StreamState is the state of the writer automaton at one nesting level.
type StreamState uint8

const (
	// PreDoc is the initial state, before anything has been written.
	PreDoc StreamState = iota
	// PostDoc is reached once the root value is finished.  A writer in this
	// state must not be driven further, except for Unwind.
	PostDoc
	// InArray is the state just after entering an array, before the first
	// element.
	InArray
	// InObject is the state just after entering an object, before the first
	// key.
	InObject
	// InPair is the state after a key has been written and its value is
	// still pending.
	InPair
	// PostPair is the state after a pair's value has been written, awaiting
	// another key or the end of the object.
	PostPair
	// PostElem is the state after an array element has been written,
	// awaiting another element or the end of the array.
	PostElem
)

func (s StreamState) String() string {
	switch s {
	case PreDoc:
		return "PreDoc"
	case PostDoc:
		return "PostDoc"
	case InArray:
		return "InArray"
	case InObject:
		return "InObject"
	case InPair:
		return "InPair"
	case PostPair:
		return "PostPair"
	case PostElem:
		return "PostElem"
	default:
		return "Invalid"
	}
}

// A stateStack tracks nesting in a writer.  The top of the stack is the
// automaton's current state; pushing enters a new array or object scope,
// popping leaves it.  The stack is never empty: the bottom entry carries the
// document-level state (PreDoc or PostDoc).
type stateStack []StreamState

func newStateStack() stateStack {
	return stateStack{PreDoc}
}

func (s stateStack) top() StreamState {
	return s[len(s)-1]
}

func (s stateStack) setTop(state StreamState) {
	s[len(s)-1] = state
}

func (s *stateStack) push(state StreamState) {
	*s = append(*s, state)
}

func (s *stateStack) pop() {
	*s = (*s)[:len(*s)-1]
}

// postValue applies the transition for a finished value to the top state.
func (s stateStack) postValue() {
	switch s.top() {
	case InPair:
		s.setTop(PostPair)
	case PreDoc:
		s.setTop(PostDoc)
	case InArray:
		s.setTop(PostElem)
	}
}

// canStartValue reports whether a value (or a new array/object scope) may
// start in the given state.
func canStartValue(state StreamState) bool {
	switch state {
	case PreDoc, InArray, PostElem, InPair:
		return true
	default:
		return false
	}
}
