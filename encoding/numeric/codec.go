// Package numeric implements the codec mapping the extension value kinds
// (complex numbers and multi-dimensional numeric arrays) to plain JSON
// object shapes:
//
//	3+4i                  <->  {"real": 3, "imag": 4}
//	2x2 float64 array     <->  {"dtype": "float64", "array": [[1, 2], [3, 4]]}
//	complex128 array      <->  {"dtype": "complex128", "array": <float view>}
//
// Complex arrays are stored as their float64 view: the real and imaginary
// components interleaved, doubling the last dimension.  The "complex128"
// dtype tag signals the doubling to the decoder, which reconstitutes true
// complex elements exactly (only the representation changes, not the
// precision).
//
// On the wire these shapes are ordinary JSON objects, indistinguishable from
// hand-written objects with the same field names.  In particular any object
// with exactly the two number fields "real" and "imag" decodes to a complex
// number whether that was intended or not.  This ambiguity is deliberate and
// documented rather than worked around; callers for whom it matters must not
// use the decoder on such documents.
package numeric

import (
	"fmt"

	"github.com/arnodel/jsonemit/value"
)

// An Encoder maps extension values to their object shape.  It is stateless
// and side-effect free; values of other kinds pass through unchanged.  It
// implements the jsonemit.Encoder interface.
type Encoder struct{}

func (Encoder) EncodeValue(v value.Value) (value.Value, error) {
	switch x := v.(type) {
	case value.Complex:
		return value.Object{
			{Key: "real", Value: value.Number(real(complex128(x)))},
			{Key: "imag", Value: value.Number(imag(complex128(x)))},
		}, nil
	case *value.NDArray:
		shape := x.Shape
		if x.DType == value.Complex128 {
			// float64 view: the last dimension doubles
			shape = append(append([]int{}, shape[:len(shape)-1]...), 2*shape[len(shape)-1])
		}
		return value.Object{
			{Key: "dtype", Value: value.String(x.DType.String())},
			{Key: "array", Value: nest(shape, x.Data)},
		}, nil
	default:
		return v, nil
	}
}

// nest shapes flat row-major data into nested arrays.
func nest(shape []int, data []float64) value.Value {
	n := shape[0]
	out := make(value.Array, n)
	if n == 0 {
		return out
	}
	if len(shape) == 1 {
		for i, x := range data {
			out[i] = value.Number(x)
		}
		return out
	}
	stride := len(data) / n
	for i := range out {
		out[i] = nest(shape[1:], data[i*stride:(i+1)*stride])
	}
	return out
}

// A Decoder reinterprets the object shapes produced by Encoder.  An object
// with exactly the fields real/imag (both numbers) becomes a Complex; an
// object with exactly the fields dtype/array becomes an NDArray.  Any other
// value passes through unchanged.  It is stateless and side-effect free.
type Decoder struct{}

func (Decoder) DecodeValue(v value.Value) (value.Value, error) {
	obj, ok := v.(value.Object)
	if !ok || len(obj) != 2 {
		return v, nil
	}
	if re, im, ok := complexFields(obj); ok {
		return value.Complex(complex(re, im)), nil
	}
	tag, nested, ok := arrayFields(obj)
	if !ok {
		return v, nil
	}
	return decodeArray(tag, nested)
}

func complexFields(obj value.Object) (re, im float64, ok bool) {
	for _, m := range obj {
		n, isNumber := m.Value.(value.Number)
		if !isNumber {
			return 0, 0, false
		}
		switch m.Key {
		case "real":
			re = float64(n)
		case "imag":
			im = float64(n)
		default:
			return 0, 0, false
		}
	}
	return re, im, obj[0].Key != obj[1].Key
}

func arrayFields(obj value.Object) (tag string, nested value.Value, ok bool) {
	for _, m := range obj {
		switch m.Key {
		case "dtype":
			s, isString := m.Value.(value.String)
			if !isString {
				return "", nil, false
			}
			tag = string(s)
		case "array":
			nested = m.Value
		default:
			return "", nil, false
		}
	}
	return tag, nested, nested != nil && obj[0].Key != obj[1].Key
}

func decodeArray(tag string, nested value.Value) (value.Value, error) {
	dtype, ok := value.ParseDType(tag)
	if !ok {
		return nil, &UnsupportedDTypeError{DType: tag}
	}
	shape, data, err := flatten(nested)
	if err != nil {
		return nil, err
	}
	if len(shape) == 0 {
		return nil, fmt.Errorf("numeric: array field is not an array")
	}
	if dtype == value.Complex128 {
		// undo the float64 view: the last dimension halves
		last := shape[len(shape)-1]
		if last%2 != 0 {
			return nil, fmt.Errorf("numeric: complex array has odd last dimension %d", last)
		}
		shape[len(shape)-1] = last / 2
	}
	return value.NewNDArray(dtype, shape, data)
}

// flatten infers the shape of nested arrays and collects their elements in
// row-major order.  Ragged or non-numeric nestings are errors.
func flatten(v value.Value) ([]int, []float64, error) {
	switch x := v.(type) {
	case value.Number:
		return nil, []float64{float64(x)}, nil
	case value.Array:
		shape := []int{len(x)}
		var subShape []int
		var data []float64
		for i, item := range x {
			s, d, err := flatten(item)
			if err != nil {
				return nil, nil, err
			}
			if i == 0 {
				subShape = s
			} else if !equalShape(s, subShape) {
				return nil, nil, fmt.Errorf("numeric: ragged array nesting")
			}
			data = append(data, d...)
		}
		return append(shape, subShape...), data, nil
	default:
		return nil, nil, fmt.Errorf("numeric: array element of kind %s", v.Kind())
	}
}

func equalShape(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i, n := range a {
		if n != b[i] {
			return false
		}
	}
	return true
}

// An UnsupportedDTypeError is returned when decoding an array tagged with an
// unrecognized element type.
type UnsupportedDTypeError struct {
	DType string
}

func (e *UnsupportedDTypeError) Error() string {
	return fmt.Sprintf("unsupported dtype %q", e.DType)
}
