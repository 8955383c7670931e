// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package vertex

import (
	"log/slog"

	"github.com/gogpu/irisgl/backend"
	"github.com/gogpu/irisgl/gltypes"
)

// Stack depths.
const (
	// DefaultDepth is the number of vertices held before a primitive is
	// resolved.
	DefaultDepth = 3

	// MinDepth is the smallest supported depth; the mesh swap needs two
	// vertices.
	MinDepth = 2
)

// Attrs is the attribute set of one vertex.
type Attrs struct {
	Position gltypes.Vec4
	Color    gltypes.RGBA8
	Normal   gltypes.Vec3
	TexCoord gltypes.Vec4
}

// sessionFlags track which attributes a primitive has seen.
type sessionFlags uint8

const (
	// flagColored survives End: a color once set stays current.
	flagColored sessionFlags = 1 << iota
	flagVertexNormal
	flagTextured
	flagTriangleMesh
	flagSurfaceNormal
)

// sessionMask holds the flags cleared by End.
const sessionMask = flagVertexNormal | flagTextured | flagTriangleMesh | flagSurfaceNormal

// Engine is the per-context vertex pipeline. It is not safe for concurrent
// use.
type Engine struct {
	be  backend.Backend
	log *slog.Logger

	depth int
	stack []Attrs
	delay int
	mode  backend.Mode
	open  bool
	flags sessionFlags

	// lighting mirrors the global lighting switch (a bound material).
	lighting bool
	// lit and textured hold the decisions made when the stack flushed.
	lit, textured bool
	// normalSinceEnd is set by any normal after the previous End.
	normalSinceEnd bool

	color    gltypes.RGBA8
	normal   gltypes.Vec3
	texcoord gltypes.Vec4

	mesh meshPair
}

// Option configures an Engine.
type Option func(*Engine)

// WithDepth sets the stack depth. Values below MinDepth are raised to it.
func WithDepth(n int) Option {
	return func(e *Engine) {
		e.depth = max(n, MinDepth)
	}
}

// WithLogger sets the logger used for rejected calls.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// New creates an Engine emitting to be. A nil backend makes every
// submission a no-op until SetBackend attaches one.
func New(be backend.Backend, opts ...Option) *Engine {
	e := &Engine{
		be:     be,
		log:    slog.New(slog.DiscardHandler),
		depth:  DefaultDepth,
		normal: gltypes.Vec3{0, 0, 1},
		color:  gltypes.RGBA8{255, 255, 255, 255},
	}
	for _, opt := range opts {
		opt(e)
	}
	e.stack = make([]Attrs, 0, e.depth)
	return e
}

// SetBackend attaches be, or detaches the current backend when be is nil.
// An open primitive is abandoned without being closed on the old backend.
func (e *Engine) SetBackend(be backend.Backend) {
	e.be = be
	e.reset()
}

// Backend returns the attached backend, or nil.
func (e *Engine) Backend() backend.Backend { return e.be }

// SetLogger replaces the logger.
func (e *Engine) SetLogger(l *slog.Logger) {
	if l != nil {
		e.log = l
	}
}

// Depth returns the stack depth.
func (e *Engine) Depth() int { return e.depth }

// SetLighting sets the global lighting switch consulted when a primitive
// is resolved.
func (e *Engine) SetLighting(on bool) { e.lighting = on }

// Lighting reports the global lighting switch.
func (e *Engine) Lighting() bool { return e.lighting }

// InPrimitive reports whether a Begin is waiting for its End.
func (e *Engine) InPrimitive() bool { return e.open }

// Buffered returns the number of vertices held on the stack.
func (e *Engine) Buffered() int { return len(e.stack) }

// Pending reports whether the open primitive has not yet been resolved.
func (e *Engine) Pending() bool { return e.open && e.delay > 0 }

// Color returns the current color.
func (e *Engine) Color() gltypes.RGBA8 { return e.color }

// Normal returns the current normal.
func (e *Engine) Normal() gltypes.Vec3 { return e.normal }

// TexCoord returns the current texture coordinate.
func (e *Engine) TexCoord() gltypes.Vec4 { return e.texcoord }

// Begin opens a primitive. TriangleStrip opens a triangle mesh, which
// enables Swap. Begin inside an open primitive is ignored.
func (e *Engine) Begin(mode backend.Mode) {
	if e.be == nil {
		return
	}
	if e.open {
		e.log.Debug("vertex: nested begin ignored", "mode", mode, "open", e.mode)
		return
	}
	e.open = true
	e.mode = mode
	e.delay = e.depth
	e.stack = e.stack[:0]
	e.flags &^= sessionMask
	if e.normalSinceEnd {
		e.flags |= flagSurfaceNormal
	}
	if mode == backend.TriangleStrip {
		e.flags |= flagTriangleMesh
	}
	e.mesh.reset()
}

// Vertex submits a vertex with the current attributes. Vertices outside a
// primitive are ignored.
func (e *Engine) Vertex(pos gltypes.Vec4) {
	if e.be == nil {
		return
	}
	if !e.open {
		e.log.Debug("vertex: vertex outside begin/end ignored")
		return
	}
	a := Attrs{Position: pos, Color: e.color, Normal: e.normal, TexCoord: e.texcoord}
	if e.flags&flagTriangleMesh != 0 {
		e.mesh.push(a)
	}

	switch {
	case e.delay > 1:
		e.stack = append(e.stack, a)
		e.delay--
	case e.delay == 1:
		e.flush()
		e.emit(a)
	default:
		e.emit(a)
	}
}

// End closes the open primitive, resolving it first if fewer vertices
// than the stack depth were submitted. Two identical vertices of a line
// are drawn as a single point.
func (e *Engine) End() {
	if e.be == nil || !e.open {
		return
	}
	if e.delay > 0 {
		if len(e.stack) == 0 {
			e.reset()
			return
		}
		if len(e.stack) == 2 && e.mode.IsLine() && e.stack[0].Position == e.stack[1].Position {
			e.mode = backend.Points
			e.stack = e.stack[:1]
		}
		e.flush()
	}
	e.be.End()
	e.reset()
}

// SetColor sets the current color. Outside a pending primitive it also
// reaches the backend immediately. A detached engine ignores it.
func (e *Engine) SetColor(c gltypes.RGBA8) {
	if e.be == nil {
		return
	}
	e.color = c
	e.flags |= flagColored
	if !e.open || e.delay == 0 {
		e.be.Color4ub(c[0], c[1], c[2], c[3])
	}
}

// SetNormal sets the current normal.
//
// Outside a primitive the normal becomes the surface normal of the next
// one. Inside a pending primitive, the first normal also applies to the
// vertices already held, which the legacy API lit with it.
func (e *Engine) SetNormal(n gltypes.Vec3) {
	if e.be == nil {
		return
	}
	e.normal = n
	e.normalSinceEnd = true
	if !e.open {
		return
	}
	switch {
	case e.delay > 0 && e.flags&flagVertexNormal == 0:
		for i := range e.stack {
			e.stack[i].Normal = n
		}
		e.mesh.setNormal(n)
	case e.delay == 0:
		e.be.Normal3f(n[0], n[1], n[2])
	}
	e.flags |= flagVertexNormal
	e.flags &^= flagSurfaceNormal
}

// SetTexCoord sets the current texture coordinate. Inside a primitive it
// marks the primitive as textured; after the primitive was resolved
// untextured, the coordinate has no visible effect.
func (e *Engine) SetTexCoord(t gltypes.Vec4) {
	if e.be == nil {
		return
	}
	e.texcoord = t
	if !e.open {
		return
	}
	e.flags |= flagTextured
	if e.delay == 0 && e.textured {
		e.be.TexCoord4f(t[0], t[1], t[2], t[3])
	}
}

// Swap exchanges the roles of the two most recent vertices of an open
// triangle mesh. It is a no-op outside a mesh or before two vertices.
func (e *Engine) Swap() {
	if e.be == nil || !e.open || e.flags&flagTriangleMesh == 0 {
		return
	}
	if e.mesh.count < 2 {
		e.log.Debug("vertex: swap before two mesh vertices ignored")
		return
	}
	if e.delay > 0 {
		e.flush()
	}
	e.emit(e.mesh.older())
	e.mesh.flip()
}

// flush resolves the lighting and texturing decisions, opens the native
// primitive and replays the held vertices.
func (e *Engine) flush() {
	e.lit = e.lighting && e.flags&(flagVertexNormal|flagSurfaceNormal) != 0
	e.textured = e.flags&flagTextured != 0

	if e.lit {
		e.be.Enable(backend.Lighting)
	} else {
		e.be.Disable(backend.Lighting)
	}
	if e.textured {
		e.be.Enable(backend.Texture2D)
	} else {
		e.be.Disable(backend.Texture2D)
	}

	e.be.Begin(e.mode)
	if e.lit && e.flags&flagVertexNormal == 0 {
		n := e.normal
		e.be.Normal3f(n[0], n[1], n[2])
	}
	for _, a := range e.stack {
		e.emit(a)
	}
	e.stack = e.stack[:0]
	e.delay = 0
}

// emit sends one vertex with the attributes the primitive was resolved with.
func (e *Engine) emit(a Attrs) {
	if e.flags&flagColored != 0 {
		e.be.Color4ub(a.Color[0], a.Color[1], a.Color[2], a.Color[3])
	}
	if e.lit && e.flags&flagVertexNormal != 0 {
		e.be.Normal3f(a.Normal[0], a.Normal[1], a.Normal[2])
	}
	if e.textured {
		e.be.TexCoord4f(a.TexCoord[0], a.TexCoord[1], a.TexCoord[2], a.TexCoord[3])
	}
	p := a.Position
	e.be.Vertex4f(p[0], p[1], p[2], p[3])
}

func (e *Engine) reset() {
	e.open = false
	e.delay = 0
	e.stack = e.stack[:0]
	e.flags &^= sessionMask
	e.lit, e.textured = false, false
	e.normalSinceEnd = false
	e.mesh.reset()
}
