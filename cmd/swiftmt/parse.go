package main

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/deltran/swiftmt/internal/config"
	"github.com/deltran/swiftmt/internal/swiftmt"
	"github.com/deltran/swiftmt/internal/telemetry"
)

func runParse(args []string, cfg *config.Config, logger *zap.Logger, metrics *telemetry.Metrics) error {
	fs := newFlagSet("parse")
	file := fs.String("file", "", "path to a raw FIN message")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *file == "" {
		return fmt.Errorf("parse: -file is required")
	}

	raw, err := readFile(*file)
	if err != nil {
		return err
	}

	start := time.Now()
	msg, mt, err := swiftmt.ParseMessageAuto(raw)
	metrics.ParseDurationSeconds.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.ParseErrorsTotal.WithLabelValues(errorKind(err)).Inc()
		return fmt.Errorf("parse: %w", err)
	}
	metrics.MessagesParsedTotal.WithLabelValues(mt).Inc()

	logger.Info("parsed message", zap.String("message_type", mt), zap.String("file", *file))
	if cfg.Output.Format == "json" {
		return printJSON(msg)
	}
	fmt.Printf("MT%s\n%#v\n", mt, msg)
	return nil
}
