// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"image"
	"image/color"
	"slices"

	"github.com/chewxy/math32"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/gogpu/irisgl/backend"
	"github.com/gogpu/irisgl/gltypes"
)

// Name is the registry name of the backend.
const Name = "raster"

func init() {
	backend.Register(Name, func(w, h int) backend.Backend { return New(w, h) })
}

const (
	ambient   = 0.2
	diffuse   = 0.8
	maxLights = 8
)

// vertex is a vertex in window coordinates with its resolved attributes.
type vertex struct {
	x, y, z float32
	c       [4]float32
	s, t    float32
	clipped bool
}

// Backend renders into an in-memory RGBA image with a float depth buffer.
// It is not safe for concurrent use.
type Backend struct {
	img           *image.RGBA
	depth         []float32
	width, height int

	matrixMode backend.MatrixMode
	stacks     [2][]gltypes.Matrix

	lighting  bool
	texturing bool
	depthTest bool
	cullFace  bool

	clearColor gltypes.RGBA8
	clearDepth float32
	shade      backend.ShadeModel
	lineWidth  float32

	color  gltypes.RGBA8
	normal gltypes.Vec3
	tex    gltypes.Vec4

	prim   backend.Mode
	inPrim bool
	verts  []vertex

	lights        [maxLights]bool
	colorMaterial backend.ColorMaterial
	texture       *backend.Texture
	texEnv        []float32

	rasterPos fixed.Point26_6
	rasterOK  bool
	names     []int32

	paths *vector.Rasterizer
}

// New creates a raster backend with a width x height surface. Non-positive
// sizes are raised to 1.
func New(width, height int) *Backend {
	width, height = max(width, 1), max(height, 1)
	b := &Backend{
		img:        image.NewRGBA(image.Rect(0, 0, width, height)),
		depth:      make([]float32, width*height),
		width:      width,
		height:     height,
		clearDepth: 1,
		shade:      backend.Smooth,
		lineWidth:  1,
		color:      gltypes.RGBA8{255, 255, 255, 255},
		normal:     gltypes.Vec3{0, 0, 1},
		tex:        gltypes.Vec4{0, 0, 0, 1},
		paths:      vector.NewRasterizer(width, height),
	}
	b.stacks[backend.ModelView] = []gltypes.Matrix{gltypes.Identity()}
	b.stacks[backend.Projection] = []gltypes.Matrix{gltypes.Identity()}
	for i := range b.depth {
		b.depth[i] = 1
	}
	return b
}

// Name returns the backend identifier.
func (b *Backend) Name() string { return Name }

// Image returns the color buffer. It is drawn into by later calls.
func (b *Backend) Image() *image.RGBA { return b.img }

// Size returns the surface dimensions.
func (b *Backend) Size() (width, height int) { return b.width, b.height }

// DepthAt returns the depth buffer value at pixel (x, y), or 1 outside the
// surface.
func (b *Backend) DepthAt(x, y int) float32 {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return 1
	}
	return b.depth[y*b.width+x]
}

// Names returns a copy of the name stack, bottom first.
func (b *Backend) Names() []int32 { return slices.Clone(b.names) }

// Begin implements backend.Backend.
func (b *Backend) Begin(mode backend.Mode) {
	b.prim = mode
	b.inPrim = true
	b.verts = b.verts[:0]
}

// End implements backend.Backend.
func (b *Backend) End() {
	if !b.inPrim {
		return
	}
	b.inPrim = false
	v := b.verts
	switch b.prim {
	case backend.Points:
		for i := range v {
			b.point(&v[i])
		}
	case backend.Lines:
		for i := 0; i+1 < len(v); i += 2 {
			b.line(&v[i], &v[i+1])
		}
	case backend.LineStrip, backend.LineLoop:
		for i := 0; i+1 < len(v); i++ {
			b.line(&v[i], &v[i+1])
		}
		if b.prim == backend.LineLoop && len(v) > 2 {
			b.line(&v[len(v)-1], &v[0])
		}
	case backend.Triangles:
		for i := 0; i+2 < len(v); i += 3 {
			b.triangle(&v[i], &v[i+1], &v[i+2], &v[i+2])
		}
	case backend.TriangleStrip:
		for i := 0; i+2 < len(v); i++ {
			if i%2 == 0 {
				b.triangle(&v[i], &v[i+1], &v[i+2], &v[i+2])
			} else {
				b.triangle(&v[i+1], &v[i], &v[i+2], &v[i+2])
			}
		}
	case backend.TriangleFan:
		for i := 1; i+1 < len(v); i++ {
			b.triangle(&v[0], &v[i], &v[i+1], &v[i+1])
		}
	case backend.Polygon:
		for i := 1; i+1 < len(v); i++ {
			b.triangle(&v[0], &v[i], &v[i+1], &v[0])
		}
	case backend.Quads:
		for i := 0; i+3 < len(v); i += 4 {
			b.triangle(&v[i], &v[i+1], &v[i+2], &v[i+3])
			b.triangle(&v[i], &v[i+2], &v[i+3], &v[i+3])
		}
	case backend.QuadStrip:
		for i := 0; i+3 < len(v); i += 2 {
			b.triangle(&v[i], &v[i+1], &v[i+3], &v[i+3])
			b.triangle(&v[i], &v[i+3], &v[i+2], &v[i+3])
		}
	}
	b.verts = b.verts[:0]
}

// Vertex4f implements backend.Backend. Vertices outside a Begin/End bracket
// are dropped.
func (b *Backend) Vertex4f(x, y, z, w float32) {
	if !b.inPrim {
		return
	}
	eye := b.top(backend.ModelView).Transform(gltypes.Vec4{x, y, z, w})
	v := b.window(b.top(backend.Projection).Transform(eye))
	v.c = b.shadeColor()
	v.s, v.t = b.tex[0], b.tex[1]
	b.verts = append(b.verts, v)
}

// window maps a clip-space position to window coordinates with y down.
func (b *Backend) window(clip gltypes.Vec4) vertex {
	if clip[3] <= 0 {
		return vertex{clipped: true}
	}
	inv := 1 / clip[3]
	return vertex{
		x: (clip[0]*inv + 1) * 0.5 * float32(b.width),
		y: (1 - clip[1]*inv) * 0.5 * float32(b.height),
		z: (clip[2]*inv + 1) * 0.5,
	}
}

// shadeColor resolves the current color through the lighting state.
func (b *Backend) shadeColor() [4]float32 {
	c := [4]float32{
		float32(b.color[0]) / 255,
		float32(b.color[1]) / 255,
		float32(b.color[2]) / 255,
		float32(b.color[3]) / 255,
	}
	if !b.lighting {
		return c
	}
	if b.colorMaterial == backend.ColorMaterialNull {
		c = [4]float32{0.8, 0.8, 0.8, 1}
	}
	n := b.top(backend.ModelView).Transform(gltypes.Vec4{b.normal[0], b.normal[1], b.normal[2], 0})
	l := math32.Sqrt(n[0]*n[0] + n[1]*n[1] + n[2]*n[2])
	intensity := float32(ambient)
	if l > 0 && slices.Contains(b.lights[:], true) {
		intensity += diffuse * max(n[2]/l, 0)
	}
	intensity = min(intensity, 1)
	for i := range 3 {
		c[i] *= intensity
	}
	return c
}

// Color4ub implements backend.Backend.
func (b *Backend) Color4ub(r, g, bl, a uint8) { b.color = gltypes.RGBA8{r, g, bl, a} }

// Normal3f implements backend.Backend.
func (b *Backend) Normal3f(x, y, z float32) { b.normal = gltypes.Vec3{x, y, z} }

// TexCoord4f implements backend.Backend.
func (b *Backend) TexCoord4f(s, t, r, q float32) { b.tex = gltypes.Vec4{s, t, r, q} }

// Enable implements backend.Backend.
func (b *Backend) Enable(c backend.Capability) { b.setCap(c, true) }

// Disable implements backend.Backend.
func (b *Backend) Disable(c backend.Capability) { b.setCap(c, false) }

func (b *Backend) setCap(c backend.Capability, on bool) {
	switch c {
	case backend.Lighting:
		b.lighting = on
	case backend.Texture2D:
		b.texturing = on
	case backend.DepthTest:
		b.depthTest = on
	case backend.CullFace:
		b.cullFace = on
	}
}

// ClearColor implements backend.Backend.
func (b *Backend) ClearColor(c gltypes.RGBA8) { b.clearColor = c }

// ClearDepth implements backend.Backend.
func (b *Backend) ClearDepth(d float32) { b.clearDepth = min(max(d, 0), 1) }

// Clear implements backend.Backend.
func (b *Backend) Clear(mask backend.ClearMask) {
	if mask&backend.ColorBuffer != 0 {
		c := b.clearColor
		for i := 0; i < len(b.img.Pix); i += 4 {
			copy(b.img.Pix[i:i+4], c[:])
		}
	}
	if mask&backend.DepthBuffer != 0 {
		for i := range b.depth {
			b.depth[i] = b.clearDepth
		}
	}
}

// ShadeModel implements backend.Backend.
func (b *Backend) ShadeModel(m backend.ShadeModel) { b.shade = m }

// LineWidth implements backend.Backend.
func (b *Backend) LineWidth(w float32) { b.lineWidth = max(w, 1) }

// MatrixMode implements backend.Backend.
func (b *Backend) MatrixMode(m backend.MatrixMode) {
	if m == backend.Projection {
		b.matrixMode = m
		return
	}
	b.matrixMode = backend.ModelView
}

func (b *Backend) top(m backend.MatrixMode) *gltypes.Matrix {
	s := b.stacks[m]
	return &s[len(s)-1]
}

// LoadMatrix implements backend.Backend.
func (b *Backend) LoadMatrix(m gltypes.Matrix) { *b.top(b.matrixMode) = m }

// MultMatrix implements backend.Backend.
func (b *Backend) MultMatrix(m gltypes.Matrix) {
	t := b.top(b.matrixMode)
	*t = m.Mul(*t)
}

// PushMatrix implements backend.Backend.
func (b *Backend) PushMatrix() {
	b.stacks[b.matrixMode] = append(b.stacks[b.matrixMode], *b.top(b.matrixMode))
}

// PopMatrix implements backend.Backend. The last matrix of a stack is
// never popped.
func (b *Backend) PopMatrix() {
	if s := b.stacks[b.matrixMode]; len(s) > 1 {
		b.stacks[b.matrixMode] = s[:len(s)-1]
	}
}

// Light implements backend.Backend. Any non-nil property list turns a light
// on; every light shines along the eye-space +Z axis.
func (b *Backend) Light(target backend.LightTarget, index int, props []float32) {
	if target == backend.Light && index >= 0 && index < maxLights {
		b.lights[index] = props != nil
	}
}

// ColorMaterial implements backend.Backend.
func (b *Backend) ColorMaterial(mode backend.ColorMaterial) { b.colorMaterial = mode }

// BindTexture implements backend.Backend.
func (b *Backend) BindTexture(tex *backend.Texture) { b.texture = tex }

// TexEnv implements backend.Backend. Texels always modulate the fragment
// color; the property list is kept but not interpreted.
func (b *Backend) TexEnv(props []float32) { b.texEnv = slices.Clone(props) }

// InitNames implements backend.Backend.
func (b *Backend) InitNames() { b.names = b.names[:0] }

// LoadName implements backend.Backend.
func (b *Backend) LoadName(name int32) {
	if len(b.names) > 0 {
		b.names[len(b.names)-1] = name
	}
}

// PushName implements backend.Backend.
func (b *Backend) PushName(name int32) { b.names = append(b.names, name) }

// PopName implements backend.Backend.
func (b *Backend) PopName() {
	if len(b.names) > 0 {
		b.names = b.names[:len(b.names)-1]
	}
}

func toNRGBA(c [4]float32) color.NRGBA {
	return color.NRGBA{
		R: gltypes.ClampByte(c[0]),
		G: gltypes.ClampByte(c[1]),
		B: gltypes.ClampByte(c[2]),
		A: gltypes.ClampByte(c[3]),
	}
}

var _ backend.Backend = (*Backend)(nil)
