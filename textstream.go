package jsonemit

import (
	"bytes"
	"encoding/json"
	"io"
	"math"
	"strconv"

	"github.com/arnodel/jsonemit/value"
)

// A TextWriteStream is a WriteStream which serializes the event stream to
// JSON text on an output writer.
//
// With a positive indent width, arrays put every element on its own line,
// objects open their brace on the current line and newline before the first
// pair, and closing brackets return to the parent indentation level.  With a
// zero or negative indent width the output is compact, on a single line.
type TextWriteStream struct {
	// Colorizer, if not nil, colors keys and scalar values with ANSI codes.
	Colorizer *Colorizer

	printer *DefaultPrinter
	stack   stateStack
	sep     []byte
}

var _ WriteStream = &TextWriteStream{}

// NewTextWriteStream returns a TextWriteStream writing to out.  indent is
// the number of spaces per nesting level; zero or negative means compact
// output.
func NewTextWriteStream(out io.Writer, indent int) *TextWriteStream {
	sep := itemSeparatorBytes
	if indent <= 0 {
		sep = compactItemSeparatorBytes
	}
	return &TextWriteStream{
		printer: &DefaultPrinter{Writer: out, IndentSize: indent},
		stack:   newStateStack(),
		sep:     sep,
	}
}

// State returns the automaton's current state (the top of the state stack).
func (s *TextWriteStream) State() StreamState {
	return s.stack.top()
}

// Flush flushes the underlying writer if it supports flushing.
func (s *TextWriteStream) Flush() error {
	if f, ok := s.printer.Writer.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}

// beginValue emits whatever separates a new value (or scope) from what
// precedes it, or reports a violation if no value may start here.
func (s *TextWriteStream) beginValue(op string) error {
	switch s.stack.top() {
	case PreDoc, InPair:
		// the value starts at the current position
	case InArray:
		s.printer.Indent()
	case PostElem:
		s.printer.PrintBytes(s.sep)
		s.printer.NewLine()
	default:
		return &ProtocolViolation{Op: op, State: s.stack.top()}
	}
	return nil
}

func (s *TextWriteStream) EnterArray() (err error) {
	defer CatchPrinterError(&err)
	if err := s.beginValue("EnterArray"); err != nil {
		return err
	}
	s.printer.PrintBytes(openArrayBytes)
	s.stack.push(InArray)
	return nil
}

func (s *TextWriteStream) ExitArray() (err error) {
	defer CatchPrinterError(&err)
	switch s.stack.top() {
	case PostElem:
		s.printer.Dedent()
	case InArray:
		// empty array, keep the brackets together
	default:
		return &ProtocolViolation{Op: "ExitArray", State: s.stack.top()}
	}
	s.stack.pop()
	s.printer.PrintBytes(closeArrayBytes)
	s.stack.postValue()
	return nil
}

func (s *TextWriteStream) EnterObject() (err error) {
	defer CatchPrinterError(&err)
	if err := s.beginValue("EnterObject"); err != nil {
		return err
	}
	s.printer.PrintBytes(openObjectBytes)
	s.stack.push(InObject)
	return nil
}

func (s *TextWriteStream) ExitObject() (err error) {
	defer CatchPrinterError(&err)
	switch s.stack.top() {
	case PostPair:
		s.printer.Dedent()
	case InObject:
		// empty object
	default:
		return &ProtocolViolation{Op: "ExitObject", State: s.stack.top()}
	}
	s.stack.pop()
	s.printer.PrintBytes(closeObjectBytes)
	s.stack.postValue()
	return nil
}

func (s *TextWriteStream) WriteKey(key string) (err error) {
	defer CatchPrinterError(&err)
	switch s.stack.top() {
	case InObject:
		s.printer.Indent()
	case PostPair:
		s.printer.PrintBytes(s.sep)
		s.printer.NewLine()
	default:
		return &ProtocolViolation{Op: "WriteKey", State: s.stack.top()}
	}
	s.Colorizer.PrintKey(s.printer, appendQuoted(nil, key))
	s.printer.PrintBytes(keyValueSeparatorBytes)
	s.stack.setTop(InPair)
	return nil
}

func (s *TextWriteStream) WriteValue(v value.Value, enc Encoder) (err error) {
	defer CatchPrinterError(&err)
	top := s.stack.top()
	if !canStartValue(top) {
		return &ProtocolViolation{Op: "WriteValue", State: s.stack.top()}
	}
	// Render the value to a side buffer first: an encoding failure must
	// leave both the output and the automaton untouched.
	level := s.printer.indentLevel
	if top == InArray {
		level++
	}
	rendered, err := s.renderValue(v, enc, level)
	if err != nil {
		return err
	}
	switch top {
	case InArray:
		s.printer.Indent()
	case PostElem:
		s.printer.PrintBytes(s.sep)
		s.printer.NewLine()
	}
	s.printer.PrintBytes(rendered)
	s.stack.postValue()
	return nil
}

func (s *TextWriteStream) Unwind() error {
	return unwindStream(s, func() StreamState { return s.stack.top() })
}

// renderValue serializes a whole value as one formatted unit, starting at
// the given indentation level.
func (s *TextWriteStream) renderValue(v value.Value, enc Encoder, level int) ([]byte, error) {
	var buf bytes.Buffer
	p := &DefaultPrinter{
		Writer:      &buf,
		IndentSize:  s.printer.IndentSize,
		indentLevel: level,
	}
	if err := s.printValue(p, v, enc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *TextWriteStream) printValue(p Printer, v value.Value, enc Encoder) error {
	switch x := v.(type) {
	case value.Null, value.Bool:
		s.Colorizer.PrintScalar(p, x.Kind(), []byte(x.String()))
	case value.Number:
		f := float64(x)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			// NaN and the infinities have no JSON representation
			return &NonFiniteNumberError{Value: f}
		}
		s.Colorizer.PrintScalar(p, value.NumberKind, appendNumber(nil, f))
	case value.String:
		s.Colorizer.PrintScalar(p, value.StringKind, appendQuoted(nil, string(x)))
	case value.Array:
		p.PrintBytes(openArrayBytes)
		for i, item := range x {
			if i == 0 {
				p.Indent()
			} else {
				p.PrintBytes(s.sep)
				p.NewLine()
			}
			if err := s.printValue(p, item, enc); err != nil {
				return err
			}
		}
		if len(x) > 0 {
			p.Dedent()
		}
		p.PrintBytes(closeArrayBytes)
	case value.Object:
		p.PrintBytes(openObjectBytes)
		for i, m := range x {
			if i == 0 {
				p.Indent()
			} else {
				p.PrintBytes(s.sep)
				p.NewLine()
			}
			s.Colorizer.PrintKey(p, appendQuoted(nil, m.Key))
			p.PrintBytes(keyValueSeparatorBytes)
			if err := s.printValue(p, m.Value, enc); err != nil {
				return err
			}
		}
		if len(x) > 0 {
			p.Dedent()
		}
		p.PrintBytes(closeObjectBytes)
	default:
		// Extension value: route through the codec.
		if enc == nil {
			return &UnsupportedValueError{Kind: v.Kind()}
		}
		encoded, err := enc.EncodeValue(v)
		if err != nil {
			return err
		}
		if encoded.Kind() == v.Kind() {
			return &UnsupportedValueError{Kind: v.Kind()}
		}
		return s.printValue(p, encoded, enc)
	}
	return nil
}

// Marshal serializes a value to JSON text with the given indent width (zero
// or negative means compact).  The optional enc is used to encode extension
// values.
func Marshal(v value.Value, enc Encoder, indent int) ([]byte, error) {
	var buf bytes.Buffer
	s := NewTextWriteStream(&buf, indent)
	if err := s.WriteValue(v, enc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func appendQuoted(b []byte, s string) []byte {
	quoted, err := json.Marshal(s)
	if err != nil {
		// strings always marshal
		panic(err)
	}
	return append(b, quoted...)
}

func appendNumber(b []byte, f float64) []byte {
	return strconv.AppendFloat(b, f, 'g', -1, 64)
}

var (
	openObjectBytes           = []byte("{")
	closeObjectBytes          = []byte("}")
	openArrayBytes            = []byte("[")
	closeArrayBytes           = []byte("]")
	itemSeparatorBytes        = []byte(",")
	compactItemSeparatorBytes = []byte(", ")
	keyValueSeparatorBytes    = []byte(": ")
)
