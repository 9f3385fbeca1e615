package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"PERCENT_CONFIG", "PERCENT_ADDR", "PERCENT_LOCALE", "PERCENT_LOG_LEVEL", "PERCENT_TELEMETRY", "OTEL_SERVICE_NAME"} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("loading config: %v", err)
	}

	if cfg != Default() {
		t.Fatalf("expected defaults %+v, got %+v", Default(), cfg)
	}
}

func TestLoadFileThenEnv(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "percent.toml")
	content := "addr = \":9090\"\nlocale = \"de\"\ntelemetry = true\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	t.Setenv("PERCENT_LOCALE", "fr")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("loading config: %v", err)
	}

	if cfg.Addr != ":9090" {
		t.Fatalf("expected addr from file, got %q", cfg.Addr)
	}
	if cfg.Locale != "fr" {
		t.Fatalf("expected env to override locale, got %q", cfg.Locale)
	}
	if !cfg.Telemetry {
		t.Fatal("expected telemetry enabled from file")
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("expected default log level, got %q", cfg.LogLevel)
	}
}

func TestLoadConfigPathFromEnv(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "percent.toml")
	if err := os.WriteFile(path, []byte("service_name = \"pct\"\n"), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	t.Setenv("PERCENT_CONFIG", path)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("loading config: %v", err)
	}
	if cfg.ServiceName != "pct" {
		t.Fatalf("expected service name from PERCENT_CONFIG file, got %q", cfg.ServiceName)
	}
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		clearEnv(t)
		if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
			t.Fatal("expected error for missing config file")
		}
	})

	t.Run("bad telemetry flag", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("PERCENT_TELEMETRY", "sometimes")
		if _, err := Load(""); err == nil {
			t.Fatal("expected error for unparsable PERCENT_TELEMETRY")
		}
	})
}
