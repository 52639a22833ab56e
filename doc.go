package jsonemit

// Package jsonemit implements routines for building and transforming
// JSON-like documents incrementally.
//
// The package is organized into several sub-packages:
//
// - value: the recursive value model (null, booleans, numbers, strings,
//   arrays, ordered-key objects, plus complex numbers and multi-dimensional
//   numeric arrays)
// - encoding/numeric: codec mapping the numeric extension values to plain
//   JSON object shapes
// - selector: grammar-driven JSON parsing and the path-tracking selector
//   transformer
//
// The root package contains the streaming writer: a state machine which
// accepts a stream of JSON events as method calls (enter/exit array, enter/
// exit object, write key, write value) and checks that the call sequence can
// only produce well-formed documents.  Three back-ends consume the event
// stream:
//
// - TextWriteStream serializes to an io.Writer, optionally indented
// - MemoryWriteStream builds a value.Value tree
// - NullWriteStream discards everything
//
// A writer never materializes the whole document, so arbitrarily large
// output can be produced with memory usage independent of document size.
//
// The CLI utility is in the directory cmd/jv. You can install it with:
//
//  go install github.com/arnodel/jsonemit/cmd/jv
//
// None of the types in this package are safe for concurrent use: each writer
// or transformer instance must be confined to a single call sequence.
