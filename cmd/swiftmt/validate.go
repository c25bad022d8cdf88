package main

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/deltran/swiftmt/internal/config"
	"github.com/deltran/swiftmt/internal/swiftmt"
	"github.com/deltran/swiftmt/internal/telemetry"
)

func runValidate(args []string, cfg *config.Config, logger *zap.Logger, metrics *telemetry.Metrics) error {
	fs := newFlagSet("validate")
	file := fs.String("file", "", "path to a raw FIN message")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *file == "" {
		return fmt.Errorf("validate: -file is required")
	}

	raw, err := readFile(*file)
	if err != nil {
		return err
	}

	msg, mt, err := swiftmt.ParseMessageAuto(raw)
	if err != nil {
		metrics.ParseErrorsTotal.WithLabelValues(errorKind(err)).Inc()
		return fmt.Errorf("validate: parse failed: %w", err)
	}
	metrics.MessagesParsedTotal.WithLabelValues(mt).Inc()

	start := time.Now()
	errs, err := swiftmt.ValidateNetworkRules(msg, cfg.Parse.StopOnFirstValidationError)
	metrics.ValidateDurationSeconds.Observe(time.Since(start).Seconds())
	if err != nil {
		return fmt.Errorf("validate: %w", err)
	}
	metrics.ValidationRunsTotal.WithLabelValues(mt).Inc()

	if len(errs) == 0 {
		logger.Info("message passed network validation", zap.String("message_type", mt))
		fmt.Printf("MT%s: OK\n", mt)
		return nil
	}

	for _, e := range errs {
		metrics.ValidationErrorsTotal.WithLabelValues(e.Code).Inc()
	}
	logger.Warn("message failed network validation",
		zap.String("message_type", mt),
		zap.Int("violation_count", len(errs)))

	if cfg.Output.Format == "json" {
		return printJSON(errs)
	}
	fmt.Printf("MT%s: %d violation(s)\n", mt, len(errs))
	for _, e := range errs {
		fmt.Printf("  [%s] field %s: %s\n", e.Code, e.Tag, e.Message)
	}
	return nil
}
