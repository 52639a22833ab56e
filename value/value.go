package value

import (
	"errors"
	"fmt"
	"strconv"
)

// A Value is an item in the recursive data model for JSON-like documents.
// For example, the JSON document
//
//	{"id": 123, "tags": ["important", "new"]}
//
// is represented by the tree (in pseudocode for clarity):
//
//	Object{
//	    {"id", Number(123)},
//	    {"tags", Array{String("important"), String("new")}},
//	}
//
// The set of implementations is closed: Null, Bool, Number, String, Array,
// Object, Complex and NDArray.  The last two are extension values which have
// no native JSON representation; they can only be serialized through a codec
// mapping them to a plain object shape (see the encoding/numeric package).
//
// A Value exclusively owns its children.  Trees only: no sharing, no cycles.
type Value interface {
	fmt.Stringer

	// Kind returns the kind of the value.
	Kind() Kind

	// Equal reports whether the value is deeply equal to v, including
	// object key order.
	Equal(v Value) bool
}

// Kind identifies one of the eight value kinds.
type Kind uint8

const (
	NullKind Kind = iota
	BoolKind
	NumberKind
	StringKind
	ArrayKind
	ObjectKind
	ComplexKind
	NDArrayKind
)

func (k Kind) String() string {
	switch k {
	case NullKind:
		return "null"
	case BoolKind:
		return "bool"
	case NumberKind:
		return "number"
	case StringKind:
		return "string"
	case ArrayKind:
		return "array"
	case ObjectKind:
		return "object"
	case ComplexKind:
		return "complex"
	case NDArrayKind:
		return "ndarray"
	default:
		panic("invalid kind")
	}
}

// Null represents the JSON null value.
type Null struct{}

var _ Value = Null{}

func (Null) Kind() Kind { return NullKind }

func (Null) String() string { return "null" }

func (Null) Equal(v Value) bool {
	_, ok := v.(Null)
	return ok
}

// Bool represents a JSON boolean.
type Bool bool

var _ Value = Bool(false)

func (Bool) Kind() Kind { return BoolKind }

func (b Bool) String() string {
	if b {
		return "true"
	}
	return "false"
}

func (b Bool) Equal(v Value) bool {
	c, ok := v.(Bool)
	return ok && b == c
}

// Number represents a JSON number.
type Number float64

var _ Value = Number(0)

func (Number) Kind() Kind { return NumberKind }

func (n Number) String() string {
	return strconv.FormatFloat(float64(n), 'g', -1, 64)
}

func (n Number) Equal(v Value) bool {
	m, ok := v.(Number)
	return ok && n == m
}

// String represents a JSON string.
type String string

var _ Value = String("")

func (String) Kind() Kind { return StringKind }

func (s String) String() string {
	return strconv.Quote(string(s))
}

func (s String) Equal(v Value) bool {
	t, ok := v.(String)
	return ok && s == t
}

// Array represents a JSON array as an ordered sequence of values.
type Array []Value

var _ Value = Array{}

func (Array) Kind() Kind { return ArrayKind }

func (a Array) String() string {
	b := []byte{'['}
	for i, item := range a {
		if i > 0 {
			b = append(b, ", "...)
		}
		b = append(b, item.String()...)
	}
	return string(append(b, ']'))
}

func (a Array) Equal(v Value) bool {
	c, ok := v.(Array)
	if !ok || len(a) != len(c) {
		return false
	}
	for i, item := range a {
		if !item.Equal(c[i]) {
			return false
		}
	}
	return true
}

// A Member is a key-value pair in an Object.
type Member struct {
	Key   string
	Value Value
}

// Object represents a JSON object as an ordered sequence of members.
// Insertion order is preserved and significant for round-tripping.  Keys are
// not required to be unique; it is up to the consumer to enforce uniqueness
// if it needs it.
type Object []Member

var _ Value = Object{}

func (Object) Kind() Kind { return ObjectKind }

func (o Object) String() string {
	b := []byte{'{'}
	for i, m := range o {
		if i > 0 {
			b = append(b, ", "...)
		}
		b = append(b, strconv.Quote(m.Key)...)
		b = append(b, ": "...)
		b = append(b, m.Value.String()...)
	}
	return string(append(b, '}'))
}

func (o Object) Equal(v Value) bool {
	p, ok := v.(Object)
	if !ok || len(o) != len(p) {
		return false
	}
	for i, m := range o {
		if m.Key != p[i].Key || !m.Value.Equal(p[i].Value) {
			return false
		}
	}
	return true
}

// Get returns the value of the first member with the given key.
func (o Object) Get(key string) (Value, bool) {
	for _, m := range o {
		if m.Key == key {
			return m.Value, true
		}
	}
	return nil, false
}

// Complex is an extension value holding a complex number.
type Complex complex128

var _ Value = Complex(0)

func (Complex) Kind() Kind { return ComplexKind }

func (c Complex) String() string {
	return strconv.FormatComplex(complex128(c), 'g', -1, 128)
}

func (c Complex) Equal(v Value) bool {
	d, ok := v.(Complex)
	return ok && c == d
}

// Walk traverses the value tree depth-first, children before parents,
// calling visit for every value encountered.  It stops and returns the first
// error visit returns.
func Walk(v Value, visit func(Value) error) error {
	switch x := v.(type) {
	case Array:
		for _, item := range x {
			if err := Walk(item, visit); err != nil {
				return err
			}
		}
	case Object:
		for _, m := range x {
			if err := Walk(m.Value, visit); err != nil {
				return err
			}
		}
	}
	return visit(v)
}

// Of converts a Go value of a basic type to a Value.  It accepts nil, bool,
// string, the standard integer and floating point types, and complex128, and
// returns an error for anything else.
func Of(x any) (Value, error) {
	switch v := x.(type) {
	case nil:
		return Null{}, nil
	case bool:
		return Bool(v), nil
	case string:
		return String(v), nil
	case float64:
		return Number(v), nil
	case float32:
		return Number(v), nil
	case int:
		return Number(v), nil
	case int8:
		return Number(v), nil
	case int16:
		return Number(v), nil
	case int32:
		return Number(v), nil
	case int64:
		return Number(v), nil
	case uint:
		return Number(v), nil
	case uint8:
		return Number(v), nil
	case uint16:
		return Number(v), nil
	case uint32:
		return Number(v), nil
	case uint64:
		return Number(v), nil
	case complex128:
		return Complex(v), nil
	case Value:
		return v, nil
	default:
		return nil, errors.New("not a basic value")
	}
}
