package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Version is the API version reported by GET /version.
const Version = "1.0.1"

// Config holds the runtime settings of the API.
type Config struct {
	Host            string
	Port            string
	RootPath        string
	ShutdownTimeout time.Duration
}

// Addr returns the listen address.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// Load reads settings from the environment. Values from a .env file in the
// working directory are applied first; variables already set in the
// environment win.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from environment variables only.
func FromEnv() (Config, error) {
	cfg := Config{
		Host:            getenv("HOST", "0.0.0.0"),
		Port:            getenv("PORT", "8080"),
		RootPath:        NormalizeRootPath(os.Getenv("API_ROOT_PATH")),
		ShutdownTimeout: 10 * time.Second,
	}
	if v := os.Getenv("SHUTDOWN_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid SHUTDOWN_TIMEOUT %q: %w", v, err)
		}
		cfg.ShutdownTimeout = d
	}
	return cfg, nil
}

// NormalizeRootPath turns a prefix such as "dev/" into "/dev".
// An empty or "/" prefix yields "".
func NormalizeRootPath(p string) string {
	p = strings.Trim(strings.TrimSpace(p), "/")
	if p == "" {
		return ""
	}
	return "/" + p
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
