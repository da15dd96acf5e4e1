// Command variantdemo builds a Shape container, lowers it into a wazero
// linear memory and prints what a guest would see.
//
//	variantdemo -shape triangle -args 3,4,5
//	variantdemo -i
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/variant"
	"github.com/wippyai/variant/guest"
)

func main() {
	var (
		shape       = flag.String("shape", "circle", "Alternative to construct (circle, square, triangle, empty)")
		args        = flag.String("args", "1", "Comma-separated field values")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Log lowering and lifting")
	)
	flag.Parse()

	if *verbose {
		log, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer func() { _ = log.Sync() }()
		variant.SetLogger(log.Named("variant"))
		guest.SetLogger(log.Named("guest"))
	}

	ctx := context.Background()
	a, err := newArena(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer a.Close(ctx)

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode needs a terminal")
			os.Exit(1)
		}
		if err := runInteractive(ctx, a); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(os.Stdout, a, *shape, *args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(w io.Writer, a *arena, name, args string) error {
	var s Shape
	if name != "empty" {
		tag, ok := kindIndex(name)
		if !ok {
			return fmt.Errorf("unknown shape %q", name)
		}
		x, err := build(tag, strings.Split(args, ","))
		if err != nil {
			return err
		}
		if err := s.Assign(tag, x); err != nil {
			return err
		}
	}

	r, err := inspect(a, &s)
	if err != nil {
		return err
	}
	r.render(w)
	return nil
}
