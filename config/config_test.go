package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v, want nil", err)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		data   string
	}{
		{"toml", TOML, "backend = \"trace\"\nwidth = 320\nheight = 200\nstack_depth = 4\nlog_level = \"debug\"\n"},
		{"yaml", YAML, "backend: trace\nwidth: 320\nheight: 200\nstack_depth: 4\nlog_level: debug\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.data), tt.format)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			want := Default()
			want.Backend = "trace"
			want.Width, want.Height = 320, 200
			want.StackDepth = 4
			want.LogLevel = "debug"
			if cfg != want {
				t.Errorf("Parse() = %+v, want %+v", cfg, want)
			}
			if l, _ := cfg.Level(); l != slog.LevelDebug {
				t.Errorf("Level() = %v, want %v", l, slog.LevelDebug)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		data   string
		want   error
	}{
		{"format", Format("ini"), "", ErrFormat},
		{"size", TOML, "width = 0", ErrInvalid},
		{"depth", YAML, "stack_depth: 1", ErrInvalid},
		{"chunk", TOML, "chunk_growth = -1", ErrInvalid},
		{"records", TOML, "max_records = -5", ErrInvalid},
		{"level", YAML, "log_level: loud", ErrInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.data), tt.format); !errors.Is(err, tt.want) {
				t.Errorf("Parse() error = %v, want %v", err, tt.want)
			}
		})
	}

	if _, err := Parse([]byte("width = ["), TOML); err == nil {
		t.Error("Parse(malformed) error = nil")
	}
}

func TestHeadlessSkipsSize(t *testing.T) {
	cfg := Config{}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Config{}.Validate() = %v, want nil", err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "irisgl.yml")
	if err := os.WriteFile(path, []byte("width: 100\nheight: 50\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Width != 100 || cfg.Height != 50 || cfg.Backend != "raster" {
		t.Errorf("Load() = %+v", cfg)
	}

	if _, err := Load(filepath.Join(dir, "missing.toml")); err == nil {
		t.Error("Load(missing) error = nil")
	}
	if _, err := Load(filepath.Join(dir, "x.json")); !errors.Is(err, ErrFormat) {
		t.Errorf("Load(.json) error = %v, want %v", err, ErrFormat)
	}
}

func TestFormatOf(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"a.toml", TOML},
		{"a.TOML", TOML},
		{"dir/a.yaml", YAML},
		{"a.yml", YAML},
	}
	for _, tt := range tests {
		if got, err := FormatOf(tt.path); err != nil || got != tt.want {
			t.Errorf("FormatOf(%q) = %q, %v, want %q", tt.path, got, err, tt.want)
		}
	}
}
