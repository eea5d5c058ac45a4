package config

import (
	"bytes"
	"flag"
	"log"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
)

func lookupFrom(vars map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func noEnvFile(t *testing.T) string {
	t.Helper()
	return "-env=" + filepath.Join(t.TempDir(), "missing.env")
}

func TestDefaults(t *testing.T) {
	cfg, err := Load([]string{noEnvFile(t)}, lookupFrom(nil))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.CellSize != 30 || cfg.CellCount != 25 || cfg.Offset != 75 {
		t.Errorf("board = %d/%d/%d, want 30/25/75", cfg.CellSize, cfg.CellCount, cfg.Offset)
	}
	if cfg.Tick != 150*time.Millisecond {
		t.Errorf("tick = %s, want 150ms", cfg.Tick)
	}
	if cfg.WindowSize() != 900 {
		t.Errorf("window = %d, want 900", cfg.WindowSize())
	}
	if cfg.Autopilot || cfg.Debug {
		t.Error("autopilot and debug should default to off")
	}
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	env := lookupFrom(map[string]string{
		"SNAKE_CELLS": "30",
		"SNAKE_TICK":  "80ms",
		"SNAKE_SEED":  "99",
	})
	cfg, err := Load([]string{noEnvFile(t), "-cells=40", "-autopilot"}, env)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.CellCount != 40 {
		t.Errorf("cells = %d, want the flag value 40", cfg.CellCount)
	}
	if cfg.Tick != 80*time.Millisecond {
		t.Errorf("tick = %s, want the env value 80ms", cfg.Tick)
	}
	if cfg.Seed != 99 || cfg.RandomSeed() != 99 {
		t.Errorf("seed = %d, want 99", cfg.Seed)
	}
	if !cfg.Autopilot {
		t.Error("autopilot flag ignored")
	}
}

func TestEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.env")
	content := "SNAKE_CELL_SIZE=20\nSNAKE_OFFSET=10\nSNAKE_TITLE=\"Night Snake\"\nSNAKE_DEBUG=true\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	env := lookupFrom(map[string]string{"SNAKE_OFFSET": "5"})
	cfg, err := Load([]string{"-env=" + path}, env)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.CellSize != 20 {
		t.Errorf("cell size = %d, want 20 from the file", cfg.CellSize)
	}
	if cfg.Offset != 5 {
		t.Errorf("offset = %d, want 5: the environment wins over the file", cfg.Offset)
	}
	if cfg.Title != "Night Snake" {
		t.Errorf("title = %q", cfg.Title)
	}
	if !cfg.Debug {
		t.Error("debug from the file ignored")
	}
}

func TestEnvFileFromEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "other.env")
	if err := os.WriteFile(path, []byte("SNAKE_FPS=30\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(nil, lookupFrom(map[string]string{"SNAKE_ENV_FILE": path}))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.FPS != 30 {
		t.Errorf("fps = %d, want 30", cfg.FPS)
	}
}

func TestBadEnvironmentValue(t *testing.T) {
	_, err := Load([]string{noEnvFile(t)}, lookupFrom(map[string]string{"SNAKE_CELLS": "many"}))
	if err == nil {
		t.Fatal("expected an error for a non numeric SNAKE_CELLS")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		edit func(*Config)
	}{
		{"tiny board", func(c *Config) { c.CellCount = 9 }},
		{"zero cell size", func(c *Config) { c.CellSize = 0 }},
		{"negative offset", func(c *Config) { c.Offset = -1 }},
		{"zero tick", func(c *Config) { c.Tick = 0 }},
		{"zero fps", func(c *Config) { c.FPS = 0 }},
		{"huge board", func(c *Config) { c.CellCount = MaxCellCount + 1 }},
		{"huge cells", func(c *Config) { c.CellSize = MaxCellSize + 1 }},
		{"huge offset", func(c *Config) { c.Offset = MaxOffset + 1 }},
		{"window too large", func(c *Config) { c.CellCount, c.CellSize = 500, 20 }},
		{"overflowing window", func(c *Config) { c.CellCount, c.CellSize = 1 << 20, 1 << 20 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.edit(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, want ErrInvalid", err)
			}
		})
	}

	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should be valid: %v", err)
	}

	cfg.CellCount, cfg.CellSize, cfg.Offset = 400, 20, 96
	if cfg.WindowSize() != MaxWindowSize {
		t.Fatalf("window = %d, want %d", cfg.WindowSize(), MaxWindowSize)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("largest window should be valid: %v", err)
	}
}

func TestInvalidFlagValueIsRejected(t *testing.T) {
	_, err := Load([]string{noEnvFile(t), "-cells=3"}, lookupFrom(nil))
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("err = %v, want ErrInvalid", err)
	}
}

func TestHelpFlag(t *testing.T) {
	_, err := Load([]string{"-h"}, lookupFrom(nil))
	if !errors.Is(err, flag.ErrHelp) {
		t.Errorf("err = %v, want flag.ErrHelp", err)
	}
}

func TestMissingEnvFileIsSilent(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	if _, err := Load([]string{noEnvFile(t)}, lookupFrom(nil)); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("missing env file logged %q", buf.String())
	}
}
