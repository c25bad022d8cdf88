package telemetry

import (
	"bytes"
	"strings"
	"testing"
)

func TestMetricsWriteText(t *testing.T) {
	m := NewMetrics("swiftmt_test")
	m.MessagesParsedTotal.WithLabelValues("103").Inc()

	var buf bytes.Buffer
	if err := m.WriteText(&buf); err != nil {
		t.Fatalf("WriteText: %v", err)
	}
	if !strings.Contains(buf.String(), "swiftmt_test_messages_parsed_total") {
		t.Fatalf("expected dumped text to contain the counter name, got:\n%s", buf.String())
	}
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger()
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	defer logger.Sync()
}
