// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package vertex

import "github.com/gogpu/irisgl/gltypes"

// meshPair holds the two most recent vertices of a triangle mesh. The
// next vertex replaces the older one.
type meshPair struct {
	slots [2]Attrs
	next  int
	count int
}

func (p *meshPair) push(a Attrs) {
	p.slots[p.next] = a
	p.next ^= 1
	if p.count < 2 {
		p.count++
	}
}

// older returns the vertex the next push replaces.
func (p *meshPair) older() Attrs { return p.slots[p.next] }

// newer returns the most recently pushed vertex.
func (p *meshPair) newer() Attrs { return p.slots[p.next^1] }

// setNormal rewrites the normal of the vertices held in the pair.
func (p *meshPair) setNormal(n gltypes.Vec3) {
	for i := range p.count {
		p.slots[(p.next+2-p.count+i)%2].Normal = n
	}
}

// flip exchanges which vertex the next push replaces.
func (p *meshPair) flip() { p.next ^= 1 }

func (p *meshPair) reset() { *p = meshPair{} }
