package numeric

import (
	"errors"
	"testing"

	"github.com/arnodel/jsonemit/value"
)

func mustNDArray(t *testing.T, dtype value.DType, shape []int, data []float64) *value.NDArray {
	t.Helper()
	arr, err := value.NewNDArray(dtype, shape, data)
	if err != nil {
		t.Fatal(err)
	}
	return arr
}

func TestEncodeComplex(t *testing.T) {
	v, err := Encoder{}.EncodeValue(value.Complex(3 + 4i))
	if err != nil {
		t.Fatal(err)
	}
	expected := value.Object{
		{Key: "real", Value: value.Number(3)},
		{Key: "imag", Value: value.Number(4)},
	}
	if !v.Equal(expected) {
		t.Errorf("got %s, want %s", v, expected)
	}
}

func TestEncodeRealArray(t *testing.T) {
	arr := mustNDArray(t, value.Float64, []int{2, 2}, []float64{1, 2, 3, 4})
	v, err := Encoder{}.EncodeValue(arr)
	if err != nil {
		t.Fatal(err)
	}
	expected := value.Object{
		{Key: "dtype", Value: value.String("float64")},
		{Key: "array", Value: value.Array{
			value.Array{value.Number(1), value.Number(2)},
			value.Array{value.Number(3), value.Number(4)},
		}},
	}
	if !v.Equal(expected) {
		t.Errorf("got %s, want %s", v, expected)
	}
}

func TestEncodeComplexArrayView(t *testing.T) {
	// The float64 view of a complex array doubles the last dimension.
	arr := mustNDArray(t, value.Complex128, []int{2}, []float64{1, 2, 3, 4})
	v, err := Encoder{}.EncodeValue(arr)
	if err != nil {
		t.Fatal(err)
	}
	expected := value.Object{
		{Key: "dtype", Value: value.String("complex128")},
		{Key: "array", Value: value.Array{
			value.Number(1), value.Number(2), value.Number(3), value.Number(4),
		}},
	}
	if !v.Equal(expected) {
		t.Errorf("got %s, want %s", v, expected)
	}
}

func TestEncodePassThrough(t *testing.T) {
	for _, v := range []value.Value{
		value.Null{},
		value.Number(1),
		value.Array{value.String("x")},
		value.Object{{Key: "real", Value: value.Number(1)}},
	} {
		encoded, err := Encoder{}.EncodeValue(v)
		if err != nil {
			t.Fatal(err)
		}
		if !encoded.Equal(v) {
			t.Errorf("%s was not passed through, got %s", v, encoded)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		v    value.Value
	}{
		{"complex", value.Complex(3 + 4i)},
		{"negative imaginary", value.Complex(-1 - 2.5i)},
		{"vector", mustNDArray(t, value.Float64, []int{3}, []float64{1, 2, 3})},
		{"matrix", mustNDArray(t, value.Float64, []int{2, 3}, []float64{1, 2, 3, 4, 5, 6})},
		{"complex vector", mustNDArray(t, value.Complex128, []int{2}, []float64{1, 2, 3, 4})},
		{
			"complex matrix",
			mustNDArray(t, value.Complex128, []int{2, 2}, []float64{1, 2, 3, 4, 5, 6, 7, 8}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded, err := Encoder{}.EncodeValue(tt.v)
			if err != nil {
				t.Fatal(err)
			}
			if encoded.Kind() == tt.v.Kind() {
				t.Fatalf("value was not encoded: %s", encoded)
			}
			decoded, err := Decoder{}.DecodeValue(encoded)
			if err != nil {
				t.Fatal(err)
			}
			if !decoded.Equal(tt.v) {
				t.Errorf("round trip mismatch:\ngot:  %s\nwant: %s", decoded, tt.v)
			}
		})
	}
}

func TestDecodeComplexShape(t *testing.T) {
	// Any object with exactly the two number fields real/imag decodes to a
	// complex number, whatever the field order.
	obj := value.Object{
		{Key: "imag", Value: value.Number(4)},
		{Key: "real", Value: value.Number(3)},
	}
	v, err := Decoder{}.DecodeValue(obj)
	if err != nil {
		t.Fatal(err)
	}
	if !v.Equal(value.Complex(3 + 4i)) {
		t.Errorf("got %s, want 3+4i", v)
	}
}

func TestDecodePassThrough(t *testing.T) {
	// Near misses of the codec shapes stay plain objects.
	tests := []struct {
		name string
		v    value.Value
	}{
		{"not an object", value.Array{value.Number(1)}},
		{"single field", value.Object{{Key: "real", Value: value.Number(1)}}},
		{
			"three fields",
			value.Object{
				{Key: "real", Value: value.Number(1)},
				{Key: "imag", Value: value.Number(2)},
				{Key: "unit", Value: value.String("m")},
			},
		},
		{
			"non-number component",
			value.Object{
				{Key: "real", Value: value.Number(1)},
				{Key: "imag", Value: value.String("2")},
			},
		},
		{
			"repeated field",
			value.Object{
				{Key: "real", Value: value.Number(1)},
				{Key: "real", Value: value.Number(2)},
			},
		},
		{
			"dtype is not a string",
			value.Object{
				{Key: "dtype", Value: value.Number(1)},
				{Key: "array", Value: value.Array{}},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Decoder{}.DecodeValue(tt.v)
			if err != nil {
				t.Fatal(err)
			}
			if !v.Equal(tt.v) {
				t.Errorf("%s was not passed through, got %s", tt.v, v)
			}
		})
	}
}

func TestDecodeArrayErrors(t *testing.T) {
	shape := func(dtype string, nested value.Value) value.Object {
		return value.Object{
			{Key: "dtype", Value: value.String(dtype)},
			{Key: "array", Value: nested},
		}
	}
	tests := []struct {
		name string
		v    value.Object
	}{
		{"unknown dtype", shape("int32", value.Array{value.Number(1)})},
		{"scalar array field", shape("float64", value.Number(1))},
		{
			"ragged nesting",
			shape("float64", value.Array{
				value.Array{value.Number(1), value.Number(2)},
				value.Array{value.Number(3)},
			}),
		},
		{
			"non-numeric element",
			shape("float64", value.Array{value.String("x")}),
		},
		{
			"odd last dimension for complex",
			shape("complex128", value.Array{value.Number(1), value.Number(2), value.Number(3)}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if v, err := (Decoder{}).DecodeValue(tt.v); err == nil {
				t.Errorf("expected an error, got %s", v)
			}
		})
	}
}

func TestDecodeUnknownDTypeError(t *testing.T) {
	obj := value.Object{
		{Key: "dtype", Value: value.String("int32")},
		{Key: "array", Value: value.Array{value.Number(1)}},
	}
	_, err := Decoder{}.DecodeValue(obj)
	var unsupported *UnsupportedDTypeError
	if !errors.As(err, &unsupported) {
		t.Fatalf("expected an UnsupportedDTypeError, got %v", err)
	}
	if unsupported.DType != "int32" {
		t.Errorf("DType = %q, want %q", unsupported.DType, "int32")
	}
}
