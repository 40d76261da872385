package config

import (
	"testing"
	"time"
)

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv("HOST", "")
	t.Setenv("PORT", "")
	t.Setenv("API_ROOT_PATH", "")
	t.Setenv("SHUTDOWN_TIMEOUT", "")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if got, want := cfg.Addr(), "0.0.0.0:8080"; got != want {
		t.Fatalf("Addr()=%q, want %q", got, want)
	}
	if cfg.RootPath != "" {
		t.Fatalf("RootPath=%q, want empty", cfg.RootPath)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Fatalf("ShutdownTimeout=%v, want 10s", cfg.ShutdownTimeout)
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("PORT", "9000")
	t.Setenv("API_ROOT_PATH", "dev/")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if got, want := cfg.Addr(), "127.0.0.1:9000"; got != want {
		t.Fatalf("Addr()=%q, want %q", got, want)
	}
	if cfg.RootPath != "/dev" {
		t.Fatalf("RootPath=%q, want /dev", cfg.RootPath)
	}
	if cfg.ShutdownTimeout != 3*time.Second {
		t.Fatalf("ShutdownTimeout=%v, want 3s", cfg.ShutdownTimeout)
	}
}

func TestFromEnv_InvalidShutdownTimeout(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "soon")

	if _, err := FromEnv(); err == nil {
		t.Fatalf("FromEnv() error = nil, want error for invalid SHUTDOWN_TIMEOUT")
	}
}

func TestNormalizeRootPath(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"":            "",
		"/":           "",
		"dev":         "/dev",
		"/dev":        "/dev",
		"/dev/":       "/dev",
		" /stage/v1 ": "/stage/v1",
	}
	for in, want := range tests {
		if got := NormalizeRootPath(in); got != want {
			t.Errorf("NormalizeRootPath(%q)=%q, want %q", in, got, want)
		}
	}
}
