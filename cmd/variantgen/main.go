// Command variantgen writes the generated container types of the variant
// package.
//
//	variantgen -min 2 -max 6 -out variant_gen.go
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
)

func main() {
	var (
		pkg     = flag.String("pkg", "variant", "Package name of the generated file")
		from    = flag.Int("min", 2, "Smallest arity to generate")
		to      = flag.Int("max", 6, "Largest arity to generate")
		out     = flag.String("out", "variant_gen.go", "Output file")
		verbose = flag.Bool("v", false, "Verbose logging")
	)
	flag.Parse()

	log, err := newLogger(*verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := run(log, *pkg, *from, *to, *out); err != nil {
		log.Error("generation failed", zap.Error(err))
		os.Exit(1)
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.DisableStacktrace = true
	return cfg.Build()
}

func run(log *zap.Logger, pkg string, from, to int, out string) error {
	log.Debug("rendering containers",
		zap.String("package", pkg),
		zap.Int("min", from),
		zap.Int("max", to))

	src, err := Render(pkg, from, to)
	if err != nil {
		return err
	}

	if err := os.WriteFile(out, src, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}

	log.Info("wrote containers",
		zap.String("file", out),
		zap.Int("arities", to-from+1),
		zap.Int("bytes", len(src)))
	return nil
}
