// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"image/color"

	"github.com/chewxy/math32"

	"github.com/gogpu/irisgl/backend"
	"github.com/gogpu/irisgl/gltypes"
)

// triangle fills v0 v1 v2. pv supplies the color under flat shading.
//
// Pixels are sampled at their centers; a pixel is covered when all three
// edge functions are non-negative for the counter-clockwise ordering.
func (b *Backend) triangle(v0, v1, v2, pv *vertex) {
	if v0.clipped || v1.clipped || v2.clipped {
		return
	}
	area := edgeFunction(v0.x, v0.y, v1.x, v1.y, v2.x, v2.y)
	if area == 0 {
		return
	}
	// Window y points down, so counter-clockwise in NDC has positive area.
	if area < 0 {
		if b.cullFace {
			return
		}
		v0, v2 = v2, v0
		area = -area
	}

	minX := max(int(math32.Floor(min3f(v0.x, v1.x, v2.x))), 0)
	maxX := min(int(math32.Ceil(max3f(v0.x, v1.x, v2.x))), b.width-1)
	minY := max(int(math32.Floor(min3f(v0.y, v1.y, v2.y))), 0)
	maxY := min(int(math32.Ceil(max3f(v0.y, v1.y, v2.y))), b.height-1)
	if minX > maxX || minY > maxY {
		return
	}

	invArea := 1 / area
	textured := b.texturing && b.texture != nil
	for y := minY; y <= maxY; y++ {
		py := float32(y) + 0.5
		for x := minX; x <= maxX; x++ {
			px := float32(x) + 0.5
			w0 := edgeFunction(v1.x, v1.y, v2.x, v2.y, px, py)
			w1 := edgeFunction(v2.x, v2.y, v0.x, v0.y, px, py)
			w2 := edgeFunction(v0.x, v0.y, v1.x, v1.y, px, py)
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}
			w0 *= invArea
			w1 *= invArea
			w2 *= invArea

			if b.depthTest {
				z := w0*v0.z + w1*v1.z + w2*v2.z
				i := y*b.width + x
				if z > b.depth[i] {
					continue
				}
				b.depth[i] = z
			}

			var c [4]float32
			if b.shade == backend.Flat {
				c = pv.c
			} else {
				for k := range c {
					c[k] = w0*v0.c[k] + w1*v1.c[k] + w2*v2.c[k]
				}
			}
			if textured {
				s := w0*v0.s + w1*v1.s + w2*v2.s
				t := w0*v0.t + w1*v1.t + w2*v2.t
				texel := b.texture.At(
					int(s*float32(b.texture.Width)),
					int(t*float32(b.texture.Height)),
				)
				for k := range c {
					c[k] *= float32(texel[k]) / 255
				}
			}
			b.img.SetRGBA(x, y, color.RGBA{
				R: gltypes.ClampByte(c[0]),
				G: gltypes.ClampByte(c[1]),
				B: gltypes.ClampByte(c[2]),
				A: gltypes.ClampByte(c[3]),
			})
		}
	}
}

// edgeFunction returns twice the signed area of triangle a b c.
func edgeFunction(ax, ay, bx, by, cx, cy float32) float32 {
	return (cx-ax)*(by-ay) - (cy-ay)*(bx-ax)
}

func min3f(a, b, c float32) float32 { return min(a, b, c) }

func max3f(a, b, c float32) float32 { return max(a, b, c) }
