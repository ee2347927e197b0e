// Package config loads the browser application settings and the history-mode
// host settings from TOML, with environment overrides for the host.
package config

import (
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/vcrobe/nojs-social/router"
)

// App configures the WASM application. It is embedded at build time.
type App struct {
	Title   string `toml:"title"`
	Mount   string `toml:"mount"`
	History string `toml:"history"`
	Base    string `toml:"base"`
}

// ParseApp decodes, defaults and validates an app configuration.
func ParseApp(data []byte) (*App, error) {
	var cfg App
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse app config: %w", err)
	}
	if err := cfg.Finalize(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Finalize applies defaults and validates the configuration.
func (c *App) Finalize() error {
	c.loadDefaults()
	return c.validate()
}

// HistoryMode returns the parsed history mode.
func (c *App) HistoryMode() router.Mode {
	mode, err := router.ParseMode(c.History)
	if err != nil {
		return router.PathMode
	}
	return mode
}

func (c *App) loadDefaults() {
	if c.Title == "" {
		c.Title = "nojs"
	}
	if c.Mount == "" {
		c.Mount = "#app"
	}
	if c.History == "" {
		c.History = string(router.PathMode)
	}
	if c.Base == "" {
		c.Base = "/"
	}
}

func (c *App) validate() error {
	if _, err := router.ParseMode(c.History); err != nil {
		return fmt.Errorf("history: %w", err)
	}
	if !strings.HasPrefix(c.Base, "/") {
		return fmt.Errorf("invalid base: %q (must start with /)", c.Base)
	}
	return nil
}
