package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/deltran/swiftmt/internal/swiftmt/primitives"
)

// errorKind extracts the SwiftError.Kind label from err for metrics,
// falling back to "unknown" for errors the codec didn't itself raise
// (e.g. a file I/O failure).
func errorKind(err error) string {
	var swiftErr *primitives.SwiftError
	if errors.As(err, &swiftErr) {
		return swiftErr.Kind.String()
	}
	return "unknown"
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
