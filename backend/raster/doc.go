// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package raster provides a pure Go software Backend that renders into an
// *image.RGBA.
//
// Triangles are filled with barycentric edge functions and support depth
// testing, back-face culling, flat or smooth shading, a single directional
// light and modulated texturing. Lines, points and text are anti-aliased:
// lines and points are filled through golang.org/x/image/vector and text is
// drawn with the basicfont 7x13 face. Lines, points and text ignore the
// depth buffer.
//
// Importing the package registers the backend as "raster":
//
//	import _ "github.com/gogpu/irisgl/backend/raster"
//
//	b, err := backend.NewBackend("raster", 320, 240)
package raster
