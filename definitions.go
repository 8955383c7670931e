package irisgl

import (
	"slices"

	"github.com/gogpu/irisgl/backend"
	"github.com/gogpu/irisgl/gltypes"
)

// Definitions are applied immediately even while an object is open; the
// legacy API never records them.

// Defbasis defines a curve or patch basis matrix under id.
func (c *Context) Defbasis(id int16, m gltypes.Matrix) {
	c.bases.Define(id, m)
}

// Lmdef stores a lighting definition of kind DefMaterial, DefLight or
// DefLmodel under index. props is the legacy property list and is copied.
// Index 0 is reserved and ignored.
func (c *Context) Lmdef(kind, index int16, props []float32) {
	if kind < DefMaterial || kind > DefLmodel || index <= 0 {
		c.log.Debug("irisgl: lmdef ignored", "kind", kind, "index", index)
		return
	}
	c.lmdefs[lmKey{kind, index}] = slices.Clone(props)
}

// Texdef2d defines a texture under index from width*height packed
// 0xAABBGGRR texels, bottom row first.
func (c *Context) Texdef2d(index int16, width, height int, image []uint32) {
	if index <= 0 || width <= 0 || height <= 0 || len(image) < width*height {
		c.log.Debug("irisgl: texdef2d ignored", "index", index, "width", width, "height", height)
		return
	}
	tex := &backend.Texture{
		ID:     int(index),
		Width:  width,
		Height: height,
		Pix:    make([]uint8, 0, width*height*4),
	}
	for _, p := range image[:width*height] {
		rgba := gltypes.PackRGBA(p)
		tex.Pix = append(tex.Pix, rgba[:]...)
	}
	c.texdefs[index] = tex
}

// Tevdef stores a texture environment property list under index.
func (c *Context) Tevdef(index int16, props []float32) {
	if index <= 0 {
		c.log.Debug("irisgl: tevdef ignored", "index", index)
		return
	}
	c.tevdefs[index] = slices.Clone(props)
}

// Mapcolor writes a colormap entry.
func (c *Context) Mapcolor(i gltypes.Colorindex, r, g, b int16) {
	c.colormap.Set(i, gltypes.RGBA8{
		gltypes.ClampInt(int32(r)), gltypes.ClampInt(int32(g)), gltypes.ClampInt(int32(b)), 255,
	})
}

// Getmcolor reads a colormap entry.
func (c *Context) Getmcolor(i gltypes.Colorindex) (r, g, b int16) {
	rgba := c.colormap.Lookup(i)
	return int16(rgba[0]), int16(rgba[1]), int16(rgba[2])
}
