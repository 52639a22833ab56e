package main

import (
	"bufio"
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/arnodel/jsonemit"
	"github.com/arnodel/jsonemit/encoding/numeric"
	"github.com/arnodel/jsonemit/selector"
	"github.com/arnodel/jsonemit/value"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

func main() {
	// Do not handle SIGPIPE, we'll do it ourselves (see error handling at the bottom of main).
	signal.Ignore(syscall.SIGPIPE)

	// Display a stack trace on panic
	defer func() {
		if e := recover(); e != nil {
			fmt.Fprintf(os.Stderr, "%s: %s", e, debug.Stack())
		}
	}()

	// Parse the command line arguments
	var indent int
	var paths bool
	var useNumeric bool
	var colorizer *jsonemit.Colorizer

	if isatty.IsTerminal(os.Stdout.Fd()) {
		colorizer = &defaultColorizer
	}

	flag.BoolFunc("colors", "force using colors", func(s string) error {
		colorizer = &defaultColorizer
		return nil
	})
	flag.BoolFunc("nocolors", "disable colors", func(s string) error {
		colorizer = nil
		return nil
	})

	flag.IntVar(&indent, "indent", 2, "indent step for json output (zero or negative means one line)")
	flag.BoolVar(&paths, "paths", false, "print one 'path = value' line per value instead of JSON")
	flag.BoolVar(&useNumeric, "numeric", false, "apply the numeric codec (complex numbers, ndarrays)")
	flag.Parse()

	// Set up stdout for handling colors
	var stdout io.Writer = os.Stdout
	if colorizer != nil {
		stdout = colorable.NewColorableStdout()
	}

	src, err := io.ReadAll(os.Stdin)
	if err != nil {
		fatalError("unable to read input: %s", err)
	}

	out := bufio.NewWriter(stdout)
	defer out.Flush()

	if paths {
		err = printPaths(out, string(src), colorizer, useNumeric)
	} else {
		err = emit(out, string(src), colorizer, indent, useNumeric)
	}
	if err != nil {
		if errors.Is(err, syscall.EPIPE) {
			// stdout is a pipe and something closed it (e.g. 'head' or 'less').
			// In this case we don't want to complain.
			return
		}
		fatalError("error: %s", err)
	}
}

// emit re-serializes every input document through the writer automaton.
func emit(out io.Writer, src string, colorizer *jsonemit.Colorizer, indent int, useNumeric bool) error {
	docs, err := decodeAll(src, useNumeric)
	if err != nil {
		return err
	}
	var enc jsonemit.Encoder
	if useNumeric {
		enc = numeric.Encoder{}
	}
	for _, doc := range docs {
		stream := jsonemit.NewTextWriteStream(out, indent)
		stream.Colorizer = colorizer
		if err := jsonemit.EmitValue(stream, doc, enc); err != nil {
			return err
		}
		if _, err := io.WriteString(out, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// printPaths prints one '.path = value' line per value node, children before
// parents, using the selector transformer to enumerate paths.
func printPaths(out io.Writer, src string, colorizer *jsonemit.Colorizer, useNumeric bool) error {
	var enc jsonemit.Encoder
	if useNumeric {
		enc = numeric.Encoder{}
	}
	printer := selector.TransformerFunc(func(p selector.Path, v value.Value) (value.Value, error) {
		if useNumeric {
			decoded, err := (numeric.Decoder{}).DecodeValue(v)
			if err != nil {
				return nil, err
			}
			v = decoded
		}
		var buf bytes.Buffer
		stream := jsonemit.NewTextWriteStream(&buf, 0)
		stream.Colorizer = colorizer
		if err := stream.WriteValue(v, enc); err != nil {
			return nil, err
		}
		if _, err := fmt.Fprintf(out, ".%s = %s\n", p, buf.Bytes()); err != nil {
			return nil, err
		}
		return v, nil
	})
	_, err := selector.TransformAll(src, printer)
	return err
}

func decodeAll(src string, useNumeric bool) ([]value.Value, error) {
	if useNumeric {
		return selector.TransformAll(src, selector.ValueHook(numeric.Decoder{}.DecodeValue))
	}
	return selector.DecodeAll(src)
}

func fatalError(msg string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, msg, args...)
	os.Exit(1)
}

// Some color ANSI codes
var (
	Reset = []byte("\033[0m")

	Yellow = []byte("\033[33m")
	Green  = []byte("\033[32m")
	White  = []byte("\033[37m")

	DimWhite = []byte("\033[37;2m")

	BrightBlue = []byte("\033[34;1m")
)

var defaultColorizer = jsonemit.Colorizer{
	// indexed by null, bool, number, string
	ScalarColorCodes: [4][]byte{DimWhite, Yellow, White, Green},
	KeyColorCode:     BrightBlue,
	ResetCode:        Reset,
}
