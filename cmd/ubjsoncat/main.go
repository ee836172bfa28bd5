// Command ubjsoncat decodes UBJSON values from stdin or files and prints
// the result, the way tracecat prints decoded trace events.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/go-ubjson/ubjson"
)

const (
	flagHelpUsage     = "display usage information and exit"
	flagStatsUsage    = "print per-event-kind counts instead of the decoded value"
	flagMaxDepthUsage = "maximum container nesting depth (0 selects the package default)"
	flagMaxLenUsage   = "maximum accepted string/blob/container length (0 means unbounded)"
)

var (
	flagHelp     bool
	flagStats    bool
	flagMaxDepth int
	flagMaxLen   int64
)

func init() {
	flag.BoolVar(&flagHelp, "h", false, flagHelpUsage)
	flag.BoolVar(&flagHelp, "help", false, ``)
	flag.BoolVar(&flagStats, "stats", false, flagStatsUsage)
	flag.IntVar(&flagMaxDepth, "maxdepth", 0, flagMaxDepthUsage)
	flag.Int64Var(&flagMaxLen, "maxlen", 0, flagMaxLenUsage)
}

func exit(code int) {
	fmt.Println(help)
	flag.PrintDefaults()
	os.Exit(code)
}

func readerFromStdin() io.Reader {
	return os.Stdin
}

func readerFromArg(arg string) io.Reader {
	if arg == `-` {
		return readerFromStdin()
	}
	f, err := os.Open(arg)
	if err != nil {
		fmt.Println(`err:`, err)
		exit(1)
	}
	return f
}

func config() *ubjson.DecoderConfig {
	return &ubjson.DecoderConfig{MaxDepth: flagMaxDepth, MaxLength: flagMaxLen}
}

func decodeOne(r io.Reader) {
	dec := ubjson.NewDecoderWithConfig(r, config())

	if flagStats {
		var c ubjson.Counter
		if err := dec.Decode(&c); err != nil {
			fmt.Fprintln(os.Stderr, `ubjsoncat decode err:`, err)
			exit(1)
		}
		fmt.Fprintf(os.Stdout, "ubjsoncat stats: nulls=%d bools=%d ints=%d uints=%d doubles=%d strings=%d keys=%d arrays=%d objects=%d maxdepth=%d\n",
			c.Nulls, c.Bools, c.Ints, c.Uints, c.Doubles, c.Strings, c.Keys, c.Arrays, c.Objects, c.MaxDepth)
		return
	}

	var m ubjson.Materializer
	if err := dec.Decode(&m); err != nil {
		fmt.Fprintln(os.Stderr, `ubjsoncat decode err:`, err)
		exit(1)
	}
	fmt.Fprintln(os.Stdout, `ubjsoncat value:`, m.Value())
}

func cat() {
	args := flag.Args()
	if len(args) < 1 {
		decodeOne(readerFromArg(`-`))
		return
	}
	for _, arg := range args {
		fmt.Fprintf(os.Stdout, `ubjsoncat info: decoding %q...`+"\n", arg)
		decodeOne(readerFromArg(arg))
	}
}

func main() {
	flag.Parse()

	switch {
	case flagHelp:
		exit(0)
	default:
		cat()
	}
}

var help = `Small utility for example purposes.

Example:

  # If no files given, read one UBJSON value from stdin
  cat test.ubj | ubjsoncat

  # If files are given, decode one UBJSON value from each
  ubjsoncat test.ubj test.ubj

  # Print per-event-kind counts instead of the decoded value
  ubjsoncat -stats test.ubj

Usage:

  ubjsoncat [flags...] [files...]

Flags:
`
