package selector

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/arnodel/grammar"
	"github.com/arnodel/jsonemit/value"
)

// A Transformer is called once per value node during a transformation pass,
// children before parents.  path locates the node within the document (the
// root sees the empty path); v is the reduced subtree, with the
// transformer's earlier substitutions already applied to its children.  The
// return value replaces the node in the tree being built upward.
//
// Returning an error aborts the pass; the error propagates unchanged to the
// caller and no partial tree is returned.
type Transformer interface {
	TransformValue(path Path, v value.Value) (value.Value, error)
}

// TransformerFunc binds a plain function as a Transformer.
type TransformerFunc func(path Path, v value.Value) (value.Value, error)

func (f TransformerFunc) TransformValue(path Path, v value.Value) (value.Value, error) {
	return f(path, v)
}

// ValueHook lifts a path-free value transformation into a Transformer, e.g.
// the numeric codec's DecodeValue method.
func ValueHook(hook func(value.Value) (value.Value, error)) Transformer {
	return TransformerFunc(func(_ Path, v value.Value) (value.Value, error) {
		return hook(v)
	})
}

// Decode parses a single JSON document.
func Decode(src string) (value.Value, error) {
	return Transform(src, nil)
}

// DecodeAll parses a stream of concatenated JSON documents, possibly
// separated by whitespace.
func DecodeAll(src string) ([]value.Value, error) {
	return TransformAll(src, nil)
}

// Transform parses a single JSON document and reduces it through the
// transformer (nil means no transformation).
func Transform(src string, t Transformer) (value.Value, error) {
	docs, err := TransformAll(src, t)
	if err != nil {
		return nil, err
	}
	if len(docs) != 1 {
		return nil, fmt.Errorf("expected a single document, got %d", len(docs))
	}
	return docs[0], nil
}

// TransformAll parses a stream of concatenated JSON documents and reduces
// each through the transformer (nil means no transformation).  The path
// stack is rebuilt from scratch for each document.
func TransformAll(src string, t Transformer) ([]value.Value, error) {
	stream, err := TokeniseJSON(src)
	if err != nil {
		return nil, err
	}
	var doc Document
	if parseErr := grammar.Parse(&doc, stream); parseErr != nil {
		return nil, parseErr
	}
	if next := stream.Next(); next != grammar.EOF {
		return nil, errors.New("syntax error: trailing input")
	}
	if len(doc.Values) == 0 {
		return nil, errors.New("no JSON value in input")
	}
	docs := make([]value.Value, len(doc.Values))
	for i := range doc.Values {
		r := &reduction{transformer: t}
		v, err := r.value(&doc.Values[i])
		if err != nil {
			return nil, err
		}
		docs[i] = v
	}
	return docs, nil
}

// A reduction is one bottom-up transformation pass over one parse tree.  The
// path stack mirrors the nesting depth at all times: an index counter is
// pushed on array start and bumped after each element, a key is pushed
// before its pair's value is reduced and popped after.
type reduction struct {
	transformer Transformer
	path        Path
}

func (r *reduction) value(n *ValueNode) (value.Value, error) {
	var v value.Value
	var err error
	switch {
	case n.Object != nil:
		v, err = r.object(n.Object)
	case n.Array != nil:
		v, err = r.array(n.Array)
	case n.String != nil:
		var s string
		s, err = unquote(n.String.TokValue)
		v = value.String(s)
	case n.Number != nil:
		var f float64
		f, err = strconv.ParseFloat(n.Number.TokValue, 64)
		v = value.Number(f)
	case n.Bool != nil:
		v = value.Bool(n.Bool.TokValue == "true")
	case n.Null != nil:
		v = value.Null{}
	default:
		panic("invalid value node")
	}
	if err != nil {
		return nil, err
	}
	if r.transformer == nil {
		return v, nil
	}
	return r.transformer.TransformValue(r.path.Copy(), v)
}

func (r *reduction) array(n *ArrayNode) (value.Value, error) {
	r.path = append(r.path, IndexSegment(0))
	arr := value.Array{}
	if n.Items != nil {
		v, err := r.value(&n.Items.First)
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)
		for i := range n.Items.Rest {
			r.path[len(r.path)-1] = IndexSegment(i + 1)
			v, err := r.value(&n.Items.Rest[i].Value)
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
	}
	r.path = r.path[:len(r.path)-1]
	return arr, nil
}

func (r *reduction) object(n *ObjectNode) (value.Value, error) {
	obj := value.Object{}
	if n.Pairs != nil {
		m, err := r.pair(&n.Pairs.First)
		if err != nil {
			return nil, err
		}
		obj = append(obj, m)
		for i := range n.Pairs.Rest {
			m, err := r.pair(&n.Pairs.Rest[i].Pair)
			if err != nil {
				return nil, err
			}
			obj = append(obj, m)
		}
	}
	return obj, nil
}

func (r *reduction) pair(n *PairNode) (value.Member, error) {
	key, err := unquote(n.Key.TokValue)
	if err != nil {
		return value.Member{}, err
	}
	r.path = append(r.path, KeySegment(key))
	v, err := r.value(&n.Value)
	r.path = r.path[:len(r.path)-1]
	if err != nil {
		return value.Member{}, err
	}
	return value.Member{Key: key, Value: v}, nil
}

func unquote(quoted string) (string, error) {
	var s string
	if err := json.Unmarshal([]byte(quoted), &s); err != nil {
		return "", err
	}
	return s, nil
}
