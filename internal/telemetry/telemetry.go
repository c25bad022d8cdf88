// Package telemetry provides structured logging and in-process metrics
// for the CLI layer. The core codec packages never log or record
// metrics themselves; this
// package is what cmd/swiftmt wires in around calls into the core.
package telemetry

import (
	"go.uber.org/zap"
)

// NewLogger builds the production zap logger used across the CLI,
// matching cmd/gateway/main.go's zap.NewProduction() + defer Sync()
// idiom exactly.
func NewLogger() (*zap.Logger, error) {
	return zap.NewProduction()
}
