package jsonemit

import "github.com/arnodel/jsonemit/value"

// A NullWriteStream is a trivial WriteStream which happily ignores all
// events it receives.  It performs no state tracking and no validation, and
// is useful where output is intentionally discarded, e.g. during speculative
// computation.
type NullWriteStream struct{}

var _ WriteStream = NullWriteStream{}

func (NullWriteStream) Flush() error                          { return nil }
func (NullWriteStream) EnterArray() error                     { return nil }
func (NullWriteStream) ExitArray() error                      { return nil }
func (NullWriteStream) EnterObject() error                    { return nil }
func (NullWriteStream) ExitObject() error                     { return nil }
func (NullWriteStream) WriteKey(key string) error             { return nil }
func (NullWriteStream) WriteValue(value.Value, Encoder) error { return nil }
func (NullWriteStream) Unwind() error                         { return nil }
