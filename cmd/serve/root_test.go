package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRootCmd_FlagsOverrideConfig(t *testing.T) {
	// Arrange
	path := filepath.Join(t.TempDir(), "host.toml")
	data := "addr = \":9000\"\nroot = \"public\"\n\n[logging]\nlevel = \"warn\"\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	cmd := newRootCmd()
	if err := cmd.ParseFlags([]string{"--config", path, "--addr", ":7000", "--base", "/social", "--log-level", "debug"}); err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}
	configPath, _ := cmd.Flags().GetString("config")
	addr, _ := cmd.Flags().GetString("addr")
	base, _ := cmd.Flags().GetString("base")
	level, _ := cmd.Flags().GetString("log-level")
	opts := &serveOptions{configPath: configPath, addr: addr, base: base, logLevel: level}

	// Act
	cfg, err := opts.load()

	// Assert
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Addr != ":7000" {
		t.Errorf("Expected addr ':7000', got '%s'", cfg.Addr)
	}
	if cfg.Root != "public" {
		t.Errorf("Expected root 'public' from file, got '%s'", cfg.Root)
	}
	if cfg.Base != "/social" {
		t.Errorf("Expected base '/social', got '%s'", cfg.Base)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Expected log level 'debug', got '%s'", cfg.Logging.Level)
	}
}

func TestRootCmd_InvalidBase(t *testing.T) {
	opts := &serveOptions{base: "social"}

	if _, err := opts.load(); err == nil {
		t.Error("Expected an error for a base without a leading slash")
	}
}

func TestRootCmd_RejectsArguments(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"extra"})

	if err := cmd.Execute(); err == nil {
		t.Error("Expected an error for positional arguments")
	}
}

func TestServe_MissingRoot(t *testing.T) {
	opts := &serveOptions{root: filepath.Join(t.TempDir(), "missing")}
	cfg, err := opts.load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if err := serve(t.Context(), cfg, os.Stderr); err == nil {
		t.Error("Expected an error when index.html is missing")
	}
}
