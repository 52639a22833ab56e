// Package selector parses JSON text with a grammar engine and reduces the
// resulting parse tree bottom-up into value.Value trees.  During reduction
// it tracks the structural path (object keys and array indices) to every
// subtree and hands (path, value) to a Transformer, whose return value is
// substituted into the surrounding structure.  This makes it cheap to
// rewrite selected subtrees of a document without writing any traversal
// code.
//
// The grammar below follows the JSON value grammar:
//
//	value  := object | array | string | number | true | false | null
//	array  := '[' (value (',' value)*)? ']'
//	object := '{' (key ':' value (',' key ':' value)*)? '}'
//
// A document may contain several concatenated values, possibly separated by
// whitespace; DecodeAll and TransformAll process them all.
package selector

import "github.com/arnodel/grammar"

type Token = grammar.SimpleToken

// Document is a stream of concatenated JSON values.
type Document struct {
	grammar.Seq
	Values []ValueNode
}

// ValueNode is the parse node for a JSON value.
type ValueNode struct {
	grammar.OneOf
	Object *ObjectNode
	Array  *ArrayNode
	String *Token `tok:"string"`
	Number *Token `tok:"number"`
	Bool   *Token `tok:"bool"`
	Null   *Token `tok:"null"`
}

// ArrayNode is the parse node for '[' (value (',' value)*)? ']'.
type ArrayNode struct {
	grammar.Seq
	Open  Token `tok:"op,["`
	Items *ArrayItems
	Close Token `tok:"op,]"`
}

type ArrayItems struct {
	grammar.Seq
	First ValueNode
	Rest  []ArrayTail
}

type ArrayTail struct {
	grammar.Seq
	Comma Token `tok:"comma"`
	Value ValueNode
}

// ObjectNode is the parse node for '{' (pair (',' pair)*)? '}'.
type ObjectNode struct {
	grammar.Seq
	Open  Token `tok:"op,{"`
	Pairs *ObjectPairs
	Close Token `tok:"op,}"`
}

type ObjectPairs struct {
	grammar.Seq
	First PairNode
	Rest  []PairTail
}

type PairTail struct {
	grammar.Seq
	Comma Token `tok:"comma"`
	Pair  PairNode
}

// PairNode is the parse node for key ':' value.
type PairNode struct {
	grammar.Seq
	Key   Token `tok:"string"`
	Colon Token `tok:"op,:"`
	Value ValueNode
}
