package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pelletier/go-toml/v2"

	"github.com/vcrobe/nojs-social/internal/logging"
)

// EnvPrefix prefixes every host environment variable, e.g. NOJS_HOST_ADDR
// or NOJS_HOST_LOG_LEVEL.
const EnvPrefix = "NOJS_HOST_"

// Host configures the static server that backs path-based history.
type Host struct {
	Addr            string         `toml:"addr" env:"ADDR"`
	Root            string         `toml:"root" env:"ROOT"`
	Index           string         `toml:"index" env:"INDEX"`
	Base            string         `toml:"base" env:"BASE"`
	ReadTimeout     string         `toml:"read_timeout" env:"READ_TIMEOUT"`
	WriteTimeout    string         `toml:"write_timeout" env:"WRITE_TIMEOUT"`
	ShutdownTimeout string         `toml:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT"`
	Logging         logging.Config `toml:"logging" envPrefix:"LOG_"`
}

// LoadHost reads path (skipped when empty), applies environment overrides
// and finalizes the result.
func LoadHost(path string) (*Host, error) {
	var cfg Host
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Finalize(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Finalize applies defaults and validates the configuration.
func (c *Host) Finalize() error {
	c.loadDefaults()
	if err := c.validate(); err != nil {
		return err
	}
	if err := c.Logging.Finalize(); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	return nil
}

// Merge applies non-zero values from overlay, used for command-line flags.
func (c *Host) Merge(overlay *Host) {
	if overlay.Addr != "" {
		c.Addr = overlay.Addr
	}
	if overlay.Root != "" {
		c.Root = overlay.Root
	}
	if overlay.Index != "" {
		c.Index = overlay.Index
	}
	if overlay.Base != "" {
		c.Base = overlay.Base
	}
	if overlay.ReadTimeout != "" {
		c.ReadTimeout = overlay.ReadTimeout
	}
	if overlay.WriteTimeout != "" {
		c.WriteTimeout = overlay.WriteTimeout
	}
	if overlay.ShutdownTimeout != "" {
		c.ShutdownTimeout = overlay.ShutdownTimeout
	}
	c.Logging.Merge(&overlay.Logging)
}

// ReadTimeoutDuration parses ReadTimeout. Call after Finalize.
func (c *Host) ReadTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.ReadTimeout)
	return d
}

// WriteTimeoutDuration parses WriteTimeout. Call after Finalize.
func (c *Host) WriteTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.WriteTimeout)
	return d
}

// ShutdownTimeoutDuration parses ShutdownTimeout. Call after Finalize.
func (c *Host) ShutdownTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.ShutdownTimeout)
	return d
}

func (c *Host) loadDefaults() {
	if c.Addr == "" {
		c.Addr = ":8080"
	}
	if c.Root == "" {
		c.Root = "dist"
	}
	if c.Index == "" {
		c.Index = "index.html"
	}
	if c.Base == "" {
		c.Base = "/"
	}
	if c.ReadTimeout == "" {
		c.ReadTimeout = "15s"
	}
	if c.WriteTimeout == "" {
		c.WriteTimeout = "15s"
	}
	if c.ShutdownTimeout == "" {
		c.ShutdownTimeout = "10s"
	}
}

func (c *Host) validate() error {
	if !strings.HasPrefix(c.Base, "/") {
		return fmt.Errorf("invalid base: %q (must start with /)", c.Base)
	}
	if strings.Contains(c.Index, "/") {
		return fmt.Errorf("invalid index: %q (must be a file name in root)", c.Index)
	}
	durations := map[string]string{
		"read_timeout":     c.ReadTimeout,
		"write_timeout":    c.WriteTimeout,
		"shutdown_timeout": c.ShutdownTimeout,
	}
	for name, v := range durations {
		if _, err := time.ParseDuration(v); err != nil {
			return fmt.Errorf("invalid %s: %w", name, err)
		}
	}
	return nil
}
