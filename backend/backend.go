package backend

import (
	"errors"

	"github.com/gogpu/irisgl/gltypes"
)

// Common backend errors.
var (
	// ErrUnknownBackend is returned when no backend is registered under a name.
	ErrUnknownBackend = errors.New("backend: unknown backend")

	// ErrBadSize is returned when a backend is created with a non-positive size.
	ErrBadSize = errors.New("backend: invalid surface size")
)

// Backend is the native rendering API.
//
// Calls arrive from a single goroutine. Begin/End brackets never nest, and
// the attribute calls made between them always precede the Vertex4f call
// they belong to.
type Backend interface {
	// Primitive submission

	// Begin opens a primitive of the given topology.
	Begin(mode Mode)

	// End closes the primitive opened by Begin.
	End()

	// Vertex4f submits a vertex position, consuming the current attributes.
	Vertex4f(x, y, z, w float32)

	// Color4ub sets the current color.
	Color4ub(r, g, b, a uint8)

	// Normal3f sets the current normal.
	Normal3f(x, y, z float32)

	// TexCoord4f sets the current texture coordinate.
	TexCoord4f(s, t, r, q float32)

	// State

	// Enable turns a capability on.
	Enable(c Capability)

	// Disable turns a capability off.
	Disable(c Capability)

	// ClearColor sets the color used by Clear for the color buffer.
	ClearColor(c gltypes.RGBA8)

	// ClearDepth sets the value used by Clear for the depth buffer, in [0, 1].
	ClearDepth(d float32)

	// Clear clears the selected buffers.
	Clear(mask ClearMask)

	// ShadeModel selects flat or smooth shading.
	ShadeModel(m ShadeModel)

	// LineWidth sets the width of lines in pixels.
	LineWidth(w float32)

	// Transform

	// MatrixMode selects the matrix stack that matrix calls operate on.
	MatrixMode(m MatrixMode)

	// LoadMatrix replaces the top of the current stack.
	LoadMatrix(m gltypes.Matrix)

	// MultMatrix premultiplies the top of the current stack by m.
	MultMatrix(m gltypes.Matrix)

	// PushMatrix duplicates the top of the current stack.
	PushMatrix()

	// PopMatrix discards the top of the current stack.
	PopMatrix()

	// Lighting and texturing

	// Light applies a lighting definition. The properties are the legacy
	// property list (token followed by its values) and may be nil to reset.
	Light(target LightTarget, index int, props []float32)

	// ColorMaterial selects which material property tracks the current color.
	ColorMaterial(mode ColorMaterial)

	// BindTexture binds a texture image; nil unbinds.
	BindTexture(tex *Texture)

	// TexEnv applies a texture environment property list; nil resets it.
	TexEnv(props []float32)

	// Text

	// RasterPos sets the character position in object coordinates.
	RasterPos(x, y, z float32)

	// DrawString draws s at the raster position using the given font and
	// advances the raster position.
	DrawString(s string, font int)

	// Picking

	// InitNames clears the name stack.
	InitNames()

	// LoadName replaces the top of the name stack.
	LoadName(name int32)

	// PushName pushes a name.
	PushName(name int32)

	// PopName pops a name.
	PopName()
}

// Texture is an RGBA texture image.
type Texture struct {
	// ID is the legacy texture definition index.
	ID int

	// Width and Height are the image dimensions in texels.
	Width, Height int

	// Pix holds Width*Height RGBA texels, row by row from the bottom.
	Pix []uint8
}

// At returns the texel at (x, y), clamped to the image.
func (t *Texture) At(x, y int) gltypes.RGBA8 {
	if t == nil || t.Width <= 0 || t.Height <= 0 || len(t.Pix) < t.Width*t.Height*4 {
		return gltypes.RGBA8{255, 255, 255, 255}
	}
	x = min(max(x, 0), t.Width-1)
	y = min(max(y, 0), t.Height-1)
	i := (y*t.Width + x) * 4
	return gltypes.RGBA8{t.Pix[i], t.Pix[i+1], t.Pix[i+2], t.Pix[i+3]}
}
