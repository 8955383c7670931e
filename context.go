package irisgl

import (
	"log/slog"

	"github.com/gogpu/irisgl/backend"
	"github.com/gogpu/irisgl/curve"
	"github.com/gogpu/irisgl/gltypes"
	"github.com/gogpu/irisgl/object"
	"github.com/gogpu/irisgl/vertex"
)

// dispatchTable is the active operation table. Its methods are promoted to
// Context, so every recordable call on a Context goes through it.
type dispatchTable = object.Dispatcher

// Context is one legacy rendering context: the state a legacy program
// reaches through its current window.
//
// Recordable operations (Clear, Bgnpolygon, V3f, Callobj and the rest of
// object.Dispatcher) are methods of Context. Each is either executed against
// the attached backend or appended to the open object, depending on whether
// an object is open. Object and tag management, definitions (Lmdef, Texdef2d,
// Tevdef, Defbasis, Mapcolor) and queries are never recorded.
//
// A Context is not safe for concurrent use.
type Context struct {
	dispatchTable

	exec *executor
	rec  *recorder

	be      backend.Backend
	engine  *vertex.Engine
	objects *object.Table

	bases  *curve.Store
	curves curve.State

	colormap Colormap
	lmdefs   map[lmKey][]float32
	texdefs  map[int16]*backend.Texture
	tevdefs  map[int16][]float32

	log *slog.Logger
}

// lmKey identifies a lighting definition.
type lmKey struct {
	kind  int16
	index int16
}

// NewContext creates a Context. Without WithBackend no backend is attached:
// executed calls do nothing while objects can still be recorded.
func NewContext(opts ...Option) *Context {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	log := o.logger
	if log == nil {
		log = Logger()
	}

	var tableOpts []object.Option
	if o.chunk > 0 {
		tableOpts = append(tableOpts, object.WithChunk(o.chunk))
	}
	if o.maxRecords > 0 {
		tableOpts = append(tableOpts, object.WithMaxRecords(o.maxRecords))
	}

	engineOpts := []vertex.Option{vertex.WithLogger(log)}
	if o.depth > 0 {
		engineOpts = append(engineOpts, vertex.WithDepth(o.depth))
	}

	c := &Context{
		engine:   vertex.New(nil, engineOpts...),
		objects:  object.NewTable(tableOpts...),
		bases:    curve.NewStore(),
		curves:   curve.DefaultState(),
		colormap: o.colormap,
		lmdefs:   make(map[lmKey][]float32),
		texdefs:  make(map[int16]*backend.Texture),
		tevdefs:  make(map[int16][]float32),
		log:      log,
	}
	if c.colormap == nil {
		c.colormap = newDefaultColormap()
	}
	c.exec = &executor{c: c}
	c.rec = &recorder{c: c}
	c.dispatchTable = c.exec

	if o.backend != nil {
		c.Attach(o.backend)
	}
	return c
}

// Attach makes be the rendering target. A nil be detaches.
// An open primitive on the previous backend is abandoned.
func (c *Context) Attach(be backend.Backend) {
	c.be = be
	c.engine.SetBackend(be)
	c.exec.reset()
	if be != nil {
		c.log.Info("irisgl: backend attached", "backend", backendName(be))
	} else {
		c.log.Info("irisgl: backend detached")
	}
}

// Detach removes the rendering target. Executed calls become no-ops.
func (c *Context) Detach() { c.Attach(nil) }

// Backend returns the attached backend, or nil.
func (c *Context) Backend() backend.Backend { return c.be }

// Recording reports whether recordable calls are currently being appended
// to an object.
func (c *Context) Recording() bool { return c.dispatchTable == c.rec }

// Stats returns the counters of the object table.
func (c *Context) Stats() object.Stats { return c.objects.Stats() }

// Object returns the object with the given id for inspection.
func (c *Context) Object(id gltypes.ObjectID) (*object.Object, bool) {
	return c.objects.Get(id)
}

// syncDispatch selects the table that matches the object table state.
func (c *Context) syncDispatch() {
	if c.objects.Recording() {
		c.dispatchTable = c.rec
	} else {
		c.dispatchTable = c.exec
	}
}

// backendName returns the dynamic type of be for log output.
func backendName(be backend.Backend) string {
	type namer interface{ Name() string }
	if n, ok := be.(namer); ok {
		return n.Name()
	}
	return "unnamed"
}
