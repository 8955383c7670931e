// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"image"
	"image/color"

	"github.com/chewxy/math32"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/gogpu/irisgl/backend"
	"github.com/gogpu/irisgl/gltypes"
)

// line fills the segment p q as a quad of the current line width. Under
// smooth shading the segment takes the color of p, otherwise of q.
func (b *Backend) line(p, q *vertex) {
	if p.clipped || q.clipped {
		return
	}
	dx, dy := q.x-p.x, q.y-p.y
	l := math32.Sqrt(dx*dx + dy*dy)
	if l == 0 {
		b.point(p)
		return
	}
	hw := b.lineWidth / 2
	nx, ny := -dy/l*hw, dx/l*hw

	c := p.c
	if b.shade == backend.Flat {
		c = q.c
	}
	z := b.path()
	z.MoveTo(p.x+nx, p.y+ny)
	z.LineTo(q.x+nx, q.y+ny)
	z.LineTo(q.x-nx, q.y-ny)
	z.LineTo(p.x-nx, p.y-ny)
	z.ClosePath()
	z.Draw(b.img, b.img.Bounds(), image.NewUniform(toNRGBA(c)), image.Point{})
}

// point fills a square of the current line width centered on v.
func (b *Backend) point(v *vertex) {
	if v.clipped {
		return
	}
	h := b.lineWidth / 2
	z := b.path()
	z.MoveTo(v.x-h, v.y-h)
	z.LineTo(v.x+h, v.y-h)
	z.LineTo(v.x+h, v.y+h)
	z.LineTo(v.x-h, v.y+h)
	z.ClosePath()
	z.Draw(b.img, b.img.Bounds(), image.NewUniform(toNRGBA(v.c)), image.Point{})
}

func (b *Backend) path() *vector.Rasterizer {
	b.paths.Reset(b.width, b.height)
	return b.paths
}

// RasterPos implements backend.Backend. A position behind the eye disables
// text until the next RasterPos.
func (b *Backend) RasterPos(x, y, z float32) {
	eye := b.top(backend.ModelView).Transform(gltypes.Vec4{x, y, z, 1})
	v := b.window(b.top(backend.Projection).Transform(eye))
	b.rasterOK = !v.clipped
	b.rasterPos = fixed.Point26_6{
		X: fixed.Int26_6(v.x * 64),
		Y: fixed.Int26_6(v.y * 64),
	}
}

// DrawString implements backend.Backend. Every font index maps to the
// 7x13 bitmap face; the raster position is the baseline origin.
func (b *Backend) DrawString(s string, _ int) {
	if !b.rasterOK {
		return
	}
	c := b.color
	d := &font.Drawer{
		Dst:  b.img,
		Src:  image.NewUniform(color.NRGBA{R: c[0], G: c[1], B: c[2], A: c[3]}),
		Face: basicfont.Face7x13,
		Dot:  b.rasterPos,
	}
	d.DrawString(s)
	b.rasterPos = d.Dot
}

// RasterPosition returns the current raster position in pixels and whether
// it is valid.
func (b *Backend) RasterPosition() (x, y int, ok bool) {
	return b.rasterPos.X.Round(), b.rasterPos.Y.Round(), b.rasterOK
}
