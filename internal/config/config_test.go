package config

import "testing"

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
}

func TestLoadFallsBackToDefaultsWithoutConfigFile(t *testing.T) {
	t.Setenv("SWIFTMT_CONFIG", "/nonexistent/config.yaml")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Output.Format != "text" {
		t.Fatalf("expected default output format \"text\", got %q", cfg.Output.Format)
	}
}

func TestLoadAppliesEnvOverrides(t *testing.T) {
	t.Setenv("SWIFTMT_CONFIG", "/nonexistent/config.yaml")
	t.Setenv("SWIFTMT_OUTPUT_FORMAT", "json")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Output.Format != "json" {
		t.Fatalf("expected env override \"json\", got %q", cfg.Output.Format)
	}
}

func TestValidateRejectsUnknownFormat(t *testing.T) {
	cfg := Default()
	cfg.Output.Format = "xml"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for unknown output format")
	}
}
