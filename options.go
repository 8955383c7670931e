package irisgl

import (
	"log/slog"

	"github.com/gogpu/irisgl/backend"
)

// Option configures a Context during creation.
//
// Example:
//
//	// Headless context: objects can be recorded, nothing is drawn.
//	c := irisgl.NewContext()
//
//	// Context drawing into a software raster.
//	be, _ := backend.NewBackend("raster", 640, 480)
//	c := irisgl.NewContext(irisgl.WithBackend(be))
type Option func(*contextOptions)

// contextOptions holds optional configuration for Context creation.
type contextOptions struct {
	backend    backend.Backend
	depth      int
	chunk      int
	maxRecords int
	colormap   Colormap
	logger     *slog.Logger
}

// defaultOptions returns the default context options.
func defaultOptions() contextOptions {
	return contextOptions{}
}

// WithBackend attaches be when the Context is created.
// It has the same effect as calling Attach afterwards.
func WithBackend(be backend.Backend) Option {
	return func(o *contextOptions) {
		o.backend = be
	}
}

// WithStackDepth sets how many vertices are held before a primitive's
// lighting and texturing are decided. Values below 2 are raised to 2.
func WithStackDepth(n int) Option {
	return func(o *contextOptions) {
		o.depth = n
	}
}

// WithChunkGrowth sets the number of records an object grows by.
// Values <= 0 keep the default.
func WithChunkGrowth(n int) Option {
	return func(o *contextOptions) {
		o.chunk = n
	}
}

// WithMaxRecords limits how many records one object may hold. Appends past
// the limit are dropped. Zero means unlimited.
func WithMaxRecords(n int) Option {
	return func(o *contextOptions) {
		o.maxRecords = n
	}
}

// WithColormap replaces the colormap consulted by Color and Mapcolor.
func WithColormap(cm Colormap) Option {
	return func(o *contextOptions) {
		o.colormap = cm
	}
}

// WithLogger sets the logger for this Context instead of the package
// default returned by Logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *contextOptions) {
		o.logger = l
	}
}
