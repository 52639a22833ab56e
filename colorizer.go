package jsonemit

import "github.com/arnodel/jsonemit/value"

// A Colorizer holds the ANSI codes used to color keys and scalar values in
// text output.  A nil *Colorizer is valid and colors nothing.
type Colorizer struct {
	KeyColorCode     []byte
	ScalarColorCodes [4][]byte // indexed by null, bool, number, string
	ResetCode        []byte
}

func (c *Colorizer) scalarColorCode(kind value.Kind) []byte {
	switch kind {
	case value.NullKind:
		return c.ScalarColorCodes[0]
	case value.BoolKind:
		return c.ScalarColorCodes[1]
	case value.NumberKind:
		return c.ScalarColorCodes[2]
	case value.StringKind:
		return c.ScalarColorCodes[3]
	default:
		return nil
	}
}

// PrintScalar outputs the literal bytes of a scalar of the given kind,
// wrapped in the kind's color code.
func (c *Colorizer) PrintScalar(p Printer, kind value.Kind, literal []byte) {
	if c != nil {
		p.PrintBytes(c.scalarColorCode(kind))
	}
	p.PrintBytes(literal)
	if c != nil {
		p.PrintBytes(c.ResetCode)
	}
}

// PrintKey outputs the quoted bytes of an object key, wrapped in the key
// color code.
func (c *Colorizer) PrintKey(p Printer, quoted []byte) {
	if c != nil {
		p.PrintBytes(c.KeyColorCode)
	}
	p.PrintBytes(quoted)
	if c != nil {
		p.PrintBytes(c.ResetCode)
	}
}
