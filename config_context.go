package irisgl

import (
	"fmt"

	"github.com/gogpu/irisgl/backend"
	"github.com/gogpu/irisgl/config"
)

// NewContextFromConfig creates a Context from file configuration.
// The named backend must be registered, usually by a blank import of its
// package. An empty backend name creates a headless Context.
func NewContextFromConfig(cfg config.Config, opts ...Option) (*Context, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	base := []Option{
		WithStackDepth(cfg.StackDepth),
		WithChunkGrowth(cfg.ChunkGrowth),
		WithMaxRecords(cfg.MaxRecords),
	}
	if cfg.Backend != "" {
		be, err := backend.NewBackend(cfg.Backend, cfg.Width, cfg.Height)
		if err != nil {
			return nil, fmt.Errorf("irisgl: %w", err)
		}
		base = append(base, WithBackend(be))
	}
	return NewContext(append(base, opts...)...), nil
}
