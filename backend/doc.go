// Package backend defines the native rendering interface that irisgl drives.
//
// A Backend has the shape of an immediate-mode primitive API: primitives are
// bracketed by Begin and End, each vertex is submitted with optional color,
// normal and texture coordinate state, and a handful of capabilities
// (lighting, texturing, depth test, face culling) are toggled explicitly.
// The vertex engine resolves the legacy deferred lighting and texturing
// decisions before any of these calls are issued, so a Backend never sees a
// half-decided primitive.
//
// # Backend Registration
//
// Backends are registered from init functions, following the database/sql
// driver pattern, and created by name:
//
//	import _ "github.com/gogpu/irisgl/backend/raster"
//
//	b, err := backend.NewBackend("raster", 640, 480)
//
// # Available Backends
//
//   - "trace": records every call; used by tests and for debugging
//   - "raster": pure Go software rasterizer into an *image.RGBA
//   - "batch": converts brackets into vertex-array draw batches with
//     WebGPU topologies and vertex layouts
package backend
