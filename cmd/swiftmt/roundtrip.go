package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/deltran/swiftmt/internal/config"
	"github.com/deltran/swiftmt/internal/swiftmt/roundtrip"
)

func runRoundtrip(args []string, cfg *config.Config, logger *zap.Logger) error {
	fs := newFlagSet("roundtrip")
	file := fs.String("file", "", "path to a raw FIN message, including blocks 1/2/4")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *file == "" {
		return fmt.Errorf("roundtrip: -file is required")
	}

	raw, err := readFile(*file)
	if err != nil {
		return err
	}

	result, err := roundtrip.Compare(raw)
	if err != nil {
		return fmt.Errorf("roundtrip: %w", err)
	}

	if result.Equal {
		logger.Info("round-trip matched", zap.String("message_type", result.MessageType))
		fmt.Printf("MT%s: round-trip matched\n", result.MessageType)
		return nil
	}

	logger.Warn("round-trip mismatch", zap.String("message_type", result.MessageType))
	fmt.Printf("MT%s: round-trip MISMATCH\n%s\n", result.MessageType, result.Diff)

	if cfg.Output.Format == "json" {
		return printJSON(result)
	}
	return nil
}
