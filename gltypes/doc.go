// Package gltypes defines the legacy value types shared by every irisgl
// package: coordinate and angle types, color indices, object and tag
// identifiers, and the 4x4 Matrix with the legacy row-vector convention.
//
// A Matrix transforms a row vector from the left: v' = v * M. The sixteen
// floats of a Matrix therefore have the same memory layout as an OpenGL
// column-major matrix, so backends can hand them to a native API unchanged.
package gltypes
