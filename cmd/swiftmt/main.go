// Command swiftmt is the operator-facing CLI around the swiftmt codec:
// parse a FIN message to a structured dump, run network validation
// rules, print a deterministic fixture, or round-trip and diff a
// message. Structured around the teacher's cmd/gateway/main.go
// (logger init, config load, then dispatch), rescoped from a
// gRPC+HTTP server's startup sequence to a one-shot subcommand runner.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/deltran/swiftmt/internal/config"
	"github.com/deltran/swiftmt/internal/telemetry"
)

func main() {
	logger, err := telemetry.NewLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid config", zap.Error(err))
	}

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	metrics := telemetry.NewMetrics("swiftmt")

	var runErr error
	switch os.Args[1] {
	case "parse":
		runErr = runParse(os.Args[2:], cfg, logger, metrics)
	case "validate":
		runErr = runValidate(os.Args[2:], cfg, logger, metrics)
	case "generate":
		runErr = runGenerate(os.Args[2:], cfg, logger, metrics)
	case "roundtrip":
		runErr = runRoundtrip(os.Args[2:], cfg, logger)
	case "-h", "--help", "help":
		usage()
		return
	default:
		fmt.Fprintf(os.Stderr, "unknown subcommand %q\n", os.Args[1])
		usage()
		os.Exit(2)
	}

	if runErr != nil {
		logger.Error("command failed", zap.String("subcommand", os.Args[1]), zap.Error(runErr))
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: swiftmt <parse|validate|generate|roundtrip> [flags]")
	fmt.Fprintln(os.Stderr, "  parse     -file <path>              parse a FIN message and print its fields")
	fmt.Fprintln(os.Stderr, "  validate  -file <path>               parse and run network validation rules")
	fmt.Fprintln(os.Stderr, "  generate  -type <MT103|MT107|...>    print a deterministic sample message")
	fmt.Fprintln(os.Stderr, "  roundtrip -file <path>                parse, re-emit and diff a FIN message")
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	return fs
}

func readFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}
