package value

import (
	"fmt"
	"strconv"
)

// DType identifies the element type of an NDArray.
type DType uint8

const (
	Float64 DType = iota
	Complex128
)

func (d DType) String() string {
	switch d {
	case Float64:
		return "float64"
	case Complex128:
		return "complex128"
	default:
		panic("invalid dtype")
	}
}

// ParseDType returns the DType named by the given tag.
func ParseDType(tag string) (DType, bool) {
	switch tag {
	case "float64":
		return Float64, true
	case "complex128":
		return Complex128, true
	default:
		return 0, false
	}
}

// Width returns the number of float64 components per element: 1 for real
// arrays, 2 for complex arrays (real and imaginary parts are stored
// interleaved).
func (d DType) Width() int {
	if d == Complex128 {
		return 2
	}
	return 1
}

// NDArray is an extension value holding a multi-dimensional numeric array.
// Data is flat, row-major.  For Complex128 arrays each element occupies two
// consecutive float64 values (real part then imaginary part), so
// len(Data) == 2 * product(Shape).
type NDArray struct {
	DType DType
	Shape []int
	Data  []float64
}

var _ Value = &NDArray{}

// NewNDArray builds an NDArray after validating that the shape is non-empty
// with positive dimensions and that the data length matches the shape and
// dtype.
func NewNDArray(dtype DType, shape []int, data []float64) (*NDArray, error) {
	if len(shape) == 0 {
		return nil, fmt.Errorf("ndarray: empty shape")
	}
	n := 1
	for _, dim := range shape {
		if dim < 0 {
			return nil, fmt.Errorf("ndarray: negative dimension %d", dim)
		}
		n *= dim
	}
	if n*dtype.Width() != len(data) {
		return nil, fmt.Errorf("ndarray: shape %v requires %d values, got %d",
			shape, n*dtype.Width(), len(data))
	}
	return &NDArray{DType: dtype, Shape: shape, Data: data}, nil
}

func (a *NDArray) Kind() Kind { return NDArrayKind }

func (a *NDArray) String() string {
	b := []byte("ndarray(")
	b = append(b, a.DType.String()...)
	b = append(b, ", shape="...)
	b = append(b, fmt.Sprint(a.Shape)...)
	b = append(b, ", ["...)
	for i, x := range a.Data {
		if i > 0 {
			b = append(b, ' ')
		}
		b = strconv.AppendFloat(b, x, 'g', -1, 64)
	}
	return string(append(b, "])"...))
}

func (a *NDArray) Equal(v Value) bool {
	b, ok := v.(*NDArray)
	if !ok || a.DType != b.DType || len(a.Shape) != len(b.Shape) || len(a.Data) != len(b.Data) {
		return false
	}
	for i, dim := range a.Shape {
		if dim != b.Shape[i] {
			return false
		}
	}
	for i, x := range a.Data {
		if x != b.Data[i] {
			return false
		}
	}
	return true
}

// At returns the complex value of the element at the given flat index.  For
// real arrays the imaginary part is zero.
func (a *NDArray) At(i int) complex128 {
	if a.DType == Complex128 {
		return complex(a.Data[2*i], a.Data[2*i+1])
	}
	return complex(a.Data[i], 0)
}

// Len returns the number of elements in the array.
func (a *NDArray) Len() int {
	return len(a.Data) / a.DType.Width()
}
