package irisgl

import "github.com/gogpu/irisgl/gltypes"

// Colormap resolves color indices. Palette management lives outside the
// Context; WithColormap plugs an external one in.
type Colormap interface {
	// Lookup returns the color stored at index i.
	Lookup(i gltypes.Colorindex) gltypes.RGBA8
	// Set stores a color at index i.
	Set(i gltypes.Colorindex, c gltypes.RGBA8)
}

// colormapSize is the number of entries of the default colormap.
const colormapSize = 4096

// defaultColormap is a fixed size table preloaded with the eight legacy
// named colors. Indices past the table read as black and ignore writes.
type defaultColormap struct {
	entries [colormapSize]gltypes.RGBA8
}

func newDefaultColormap() *defaultColormap {
	cm := &defaultColormap{}
	for i := range cm.entries {
		cm.entries[i] = gltypes.RGBA8{0, 0, 0, 255}
	}
	// The low three index bits select the primary channels.
	for i := range 8 {
		cm.entries[i] = gltypes.RGBA8{
			uint8(i&1) * 255,
			uint8(i>>1&1) * 255,
			uint8(i>>2&1) * 255,
			255,
		}
	}
	return cm
}

func (cm *defaultColormap) Lookup(i gltypes.Colorindex) gltypes.RGBA8 {
	if int(i) >= colormapSize {
		return gltypes.RGBA8{0, 0, 0, 255}
	}
	return cm.entries[i]
}

func (cm *defaultColormap) Set(i gltypes.Colorindex, c gltypes.RGBA8) {
	if int(i) < colormapSize {
		cm.entries[i] = c
	}
}
