// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package vertex implements the deferred vertex pipeline that emulates
// legacy immediate-mode primitive semantics on a Backend.
//
// The legacy API decides lighting and texturing for a primitive from
// information that may arrive after the first vertices: a normal supplied
// at the third vertex still lights the first two, and a texture coordinate
// anywhere in the first vertices turns texturing on for the whole primitive.
// The Engine therefore holds the first vertices of every primitive on a
// small stack, resolves both decisions when the stack fills (or when the
// primitive ends early), and only then opens the native primitive and
// replays the held vertices. Later vertices pass straight through.
//
// The Engine also emulates the legacy triangle-mesh swap, which exchanges
// the roles of the two most recent mesh vertices. A native triangle strip
// cannot express this, so the older of the two vertices is re-emitted,
// producing one zero-area connecting triangle.
package vertex
