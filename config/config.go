// Package config loads irisgl context settings from TOML or YAML files.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/irisgl/object"
	"github.com/gogpu/irisgl/vertex"
)

// Errors returned by Parse, Load and Validate.
var (
	ErrFormat  = errors.New("config: unsupported format")
	ErrInvalid = errors.New("config: invalid configuration")
)

// Format is a configuration file syntax.
type Format string

// Supported formats.
const (
	TOML Format = "toml"
	YAML Format = "yaml"
)

// FormatOf returns the format implied by a file name extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrFormat, filepath.Ext(path))
}

// Config holds the settings used to create a context.
type Config struct {
	// Backend is the registered backend name. Empty means headless.
	Backend string `toml:"backend" yaml:"backend"`

	// Width and Height are the surface size in pixels.
	Width  int `toml:"width" yaml:"width"`
	Height int `toml:"height" yaml:"height"`

	// StackDepth is the vertex stack depth.
	StackDepth int `toml:"stack_depth" yaml:"stack_depth"`

	// ChunkGrowth is the number of records objects grow by.
	ChunkGrowth int `toml:"chunk_growth" yaml:"chunk_growth"`

	// MaxRecords limits the records of one object. Zero means unlimited.
	MaxRecords int `toml:"max_records" yaml:"max_records"`

	// LogLevel is a slog level name: debug, info, warn or error.
	LogLevel string `toml:"log_level" yaml:"log_level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Backend:     "raster",
		Width:       640,
		Height:      480,
		StackDepth:  vertex.DefaultDepth,
		ChunkGrowth: object.DefaultChunk,
		LogLevel:    "warn",
	}
}

// Parse decodes data over the defaults, so omitted keys keep their
// default values.
func Parse(data []byte, format Format) (Config, error) {
	cfg := Default()
	var err error
	switch format {
	case TOML:
		err = toml.Unmarshal(data, &cfg)
	case YAML:
		err = yaml.Unmarshal(data, &cfg)
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrFormat, format)
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: decode %s: %w", format, err)
	}
	return cfg, cfg.Validate()
}

// Load reads and parses a configuration file. The format is chosen by the
// file extension.
func Load(path string) (Config, error) {
	format, err := FormatOf(path)
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return Parse(data, format)
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch {
	case c.Backend != "" && (c.Width <= 0 || c.Height <= 0):
		return fmt.Errorf("%w: size %dx%d", ErrInvalid, c.Width, c.Height)
	case c.StackDepth != 0 && c.StackDepth < vertex.MinDepth:
		return fmt.Errorf("%w: stack_depth %d below %d", ErrInvalid, c.StackDepth, vertex.MinDepth)
	case c.ChunkGrowth < 0:
		return fmt.Errorf("%w: chunk_growth %d", ErrInvalid, c.ChunkGrowth)
	case c.MaxRecords < 0:
		return fmt.Errorf("%w: max_records %d", ErrInvalid, c.MaxRecords)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level returns LogLevel as a slog level. An empty LogLevel is Info.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: log_level %q", ErrInvalid, c.LogLevel)
	}
	return l, nil
}
