// Package irisgl implements the IRIS GL immediate-mode graphics API on top
// of a modern rendering backend.
//
// # Overview
//
// A Context stands for the legacy current window. Its methods are the
// legacy calls: primitive brackets (Bgnpolygon/Endpolygon, Bgntmesh and
// the rest), vertex and attribute submission (V3f, N3f, T2f, Cpack), the
// matrix calls, shapes, curves, text and picking.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/irisgl"
//	    "github.com/gogpu/irisgl/backend"
//	    _ "github.com/gogpu/irisgl/backend/raster"
//	)
//
//	be, _ := backend.NewBackend("raster", 640, 480)
//	c := irisgl.NewContext(irisgl.WithBackend(be))
//
//	c.Ortho2(0, 640, 0, 480)
//	c.Cpack(0xff0000ff)
//	c.Bgnpolygon()
//	c.V2f([2]float32{100, 100})
//	c.V2f([2]float32{300, 100})
//	c.V2f([2]float32{200, 300})
//	c.Endpolygon()
//
// # Vertex pipeline
//
// The legacy API decides lighting and texturing per primitive from what
// the program supplied, possibly after the first vertices were given. The
// Context holds the first vertices of every primitive (three by default,
// see WithStackDepth) until the decision can be made, then replays them to
// the backend. Triangle meshes support Swaptmesh by re-emitting a vertex,
// which adds a zero-area triangle to the strip.
//
// # Objects
//
// Makeobj opens an object (display list). Until Closeobj, recordable calls
// are appended to the object instead of being executed; Callobj replays
// it. Objects are edited with tags: Maketag marks a position, Objinsert
// moves the edit cursor after a tag, Objdelete and Objreplace remove
// recorded calls between tags.
//
// Definitions (Lmdef, Texdef2d, Tevdef, Defbasis, Mapcolor) and the object
// calls themselves are never recorded.
//
// # Errors
//
// Like the original API, legacy calls ignore invalid arguments silently.
// The Go-style methods (CreateObject, InsertAt, DeleteRange and so on)
// return the reason as an error from package object. Rejected legacy calls
// are logged at debug level; see SetLogger.
//
// # Backends
//
// Backends register by name the way database/sql drivers do. Import
// backend/raster for a software renderer, backend/batch for vertex buffers
// laid out for a WebGPU pipeline, or backend/trace to record the calls.
package irisgl
