package selector

import "strconv"

// A Segment is one step in a Path: either an object key or a 0-based array
// index.
type Segment struct {
	key   string
	index int
	isKey bool
}

// KeySegment returns a Segment for the given object key.
func KeySegment(key string) Segment {
	return Segment{key: key, isKey: true}
}

// IndexSegment returns a Segment for the given array index.
func IndexSegment(index int) Segment {
	return Segment{index: index}
}

// IsKey reports whether the segment is an object key.
func (s Segment) IsKey() bool {
	return s.isKey
}

// Key returns the object key of the segment (empty for index segments).
func (s Segment) Key() string {
	return s.key
}

// Index returns the array index of the segment (zero for key segments).
func (s Segment) Index() int {
	return s.index
}

func (s Segment) String() string {
	if s.isKey {
		return s.key
	}
	return strconv.Itoa(s.index)
}

// A Path is the sequence of segments leading from the document root to a
// subtree.  Its length equals the nesting depth of the subtree.
type Path []Segment

func (p Path) String() string {
	var b []byte
	for i, s := range p {
		if i > 0 {
			b = append(b, '.')
		}
		b = append(b, s.String()...)
	}
	return string(b)
}

// Copy returns a copy of the path which remains valid after the transformer
// moves on.
func (p Path) Copy() Path {
	q := make(Path, len(p))
	copy(q, p)
	return q
}

// Equal reports whether two paths are segment-wise identical.
func (p Path) Equal(q Path) bool {
	if len(p) != len(q) {
		return false
	}
	for i, s := range p {
		if s != q[i] {
			return false
		}
	}
	return true
}
