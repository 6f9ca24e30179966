// Command printfcn prints the prototype of a compiled-in example function.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"reflect"

	"github.com/k0kubun/pp/v3"

	prototype "github.com/srinathava/sa-template-specialization"
)

var (
	format = flag.String("format", "text", "Output format (text, yaml or table)")
	debug  = flag.Bool("debug", false, "Dump the decomposition tree to stderr")
)

type BinOp func(int, int) int

type FcnPtrType func(int, BinOp) int

func dummy(*int, float64) FcnPtrType { return nil }

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: printfcn [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	os.Exit(run(os.Stdout, os.Stderr, *format, *debug))
}

func run(stdout, stderr io.Writer, format string, debug bool) int {
	r := prototype.NewRenderer(stdout)

	if debug {
		node, err := r.Decompose(reflect.TypeOf(dummy))
		if err != nil {
			fmt.Fprintln(stderr, "error:", err)
			return 1
		}
		printer := pp.New()
		printer.SetOutput(stderr)
		printer.SetColoringEnabled(false)
		printer.Println(node)
	}

	var err error
	switch format {
	case "text":
		err = r.Print(dummy)
	case "yaml":
		err = r.WriteYAML(reflect.TypeOf(dummy))
	case "table":
		err = r.Table([]prototype.Entry{
			{Name: "dummy", Type: reflect.TypeOf(dummy)},
			{Name: "BinOp", Type: reflect.TypeFor[BinOp]()},
			{Name: "FcnPtrType", Type: reflect.TypeFor[FcnPtrType]()},
		})
	default:
		fmt.Fprintf(stderr, "error: unknown format %q\n", format)
		return 2
	}

	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}
	return 0
}
