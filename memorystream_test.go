package jsonemit

import (
	"testing"

	"github.com/arnodel/jsonemit/encoding/numeric"
	"github.com/arnodel/jsonemit/value"
)

func TestMemoryWriteStream(t *testing.T) {
	tests := []struct {
		name     string
		events   func(s WriteStream) error
		expected value.Value
	}{
		{
			name: "root scalar",
			events: func(s WriteStream) error {
				return s.WriteValue(value.String("hi"), nil)
			},
			expected: value.String("hi"),
		},
		{
			name: "empty array",
			events: func(s WriteStream) error {
				return WrapArray(s, func() error { return nil })
			},
			expected: value.Array{},
		},
		{
			name: "empty object",
			events: func(s WriteStream) error {
				return WrapObject(s, func() error { return nil })
			},
			expected: value.Object{},
		},
		{
			name: "nested containers",
			events: func(s WriteStream) error {
				return WrapObject(s, func() error {
					if err := s.WriteKey("xs"); err != nil {
						return err
					}
					err := WrapArray(s, func() error {
						if err := s.WriteValue(value.Number(1), nil); err != nil {
							return err
						}
						return s.WriteValue(value.Null{}, nil)
					})
					if err != nil {
						return err
					}
					return WritePair(s, "ok", value.Bool(true), nil)
				})
			},
			expected: value.Object{
				{Key: "xs", Value: value.Array{value.Number(1), value.Null{}}},
				{Key: "ok", Value: value.Bool(true)},
			},
		},
		{
			name: "duplicate keys are kept in order",
			events: func(s WriteStream) error {
				return WrapObject(s, func() error {
					if err := WritePair(s, "a", value.Number(1), nil); err != nil {
						return err
					}
					return WritePair(s, "a", value.Number(2), nil)
				})
			},
			expected: value.Object{
				{Key: "a", Value: value.Number(1)},
				{Key: "a", Value: value.Number(2)},
			},
		},
		{
			name: "object under a pair restores the outer key",
			events: func(s WriteStream) error {
				return WrapObject(s, func() error {
					if err := s.WriteKey("inner"); err != nil {
						return err
					}
					err := WrapObject(s, func() error {
						return WritePair(s, "x", value.Number(1), nil)
					})
					if err != nil {
						return err
					}
					return WritePair(s, "after", value.Number(2), nil)
				})
			},
			expected: value.Object{
				{Key: "inner", Value: value.Object{{Key: "x", Value: value.Number(1)}}},
				{Key: "after", Value: value.Number(2)},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewMemoryWriteStream()
			if err := tt.events(s); err != nil {
				t.Fatal(err)
			}
			v, err := s.Value()
			if err != nil {
				t.Fatal(err)
			}
			if !v.Equal(tt.expected) {
				t.Errorf("built %s, want %s", v, tt.expected)
			}
		})
	}
}

func TestMemoryWriteStreamIncomplete(t *testing.T) {
	s := NewMemoryWriteStream()
	if err := s.EnterArray(); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Value(); err == nil {
		t.Error("expected an error while the document is open")
	}
	if err := s.Unwind(); err != nil {
		t.Fatal(err)
	}
	v, err := s.Value()
	if err != nil {
		t.Fatal(err)
	}
	if !v.Equal(value.Array{}) {
		t.Errorf("built %s, want []", v)
	}
}

func TestMemoryWriteStreamUnwindFillsPair(t *testing.T) {
	s := NewMemoryWriteStream()
	if err := s.EnterObject(); err != nil {
		t.Fatal(err)
	}
	if err := s.WriteKey("pending"); err != nil {
		t.Fatal(err)
	}
	if err := s.Unwind(); err != nil {
		t.Fatal(err)
	}
	v, err := s.Value()
	if err != nil {
		t.Fatal(err)
	}
	expected := value.Object{{Key: "pending", Value: value.Null{}}}
	if !v.Equal(expected) {
		t.Errorf("built %s, want %s", v, expected)
	}
}

func TestMemoryWriteStreamEncoder(t *testing.T) {
	s := NewMemoryWriteStream()
	err := WrapArray(s, func() error {
		return s.WriteValue(value.Complex(3+4i), numeric.Encoder{})
	})
	if err != nil {
		t.Fatal(err)
	}
	v, err := s.Value()
	if err != nil {
		t.Fatal(err)
	}
	expected := value.Array{value.Object{
		{Key: "real", Value: value.Number(3)},
		{Key: "imag", Value: value.Number(4)},
	}}
	if !v.Equal(expected) {
		t.Errorf("built %s, want %s", v, expected)
	}
}
