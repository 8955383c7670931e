package batch

import (
	"slices"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/irisgl/backend"
	"github.com/gogpu/irisgl/gltypes"
)

// Name is the registry name of the backend.
const Name = "batch"

func init() {
	backend.Register(Name, func(w, h int) backend.Backend { return New(w, h) })
}

const maxLights = 8

// Vertex is one interleaved vertex of a batch.
type Vertex struct {
	// Position is in clip space.
	Position gltypes.Vec4
	// Color is in [0, 1].
	Color [4]float32
	// Normal is in eye space.
	Normal   gltypes.Vec3
	TexCoord [2]float32
}

// State is the render state shared by every vertex of a batch.
type State struct {
	Lit       bool
	Textured  bool
	DepthTest bool
	CullFace  bool
	Texture   *backend.Texture
	LineWidth float32
	// Name is the top of the name stack, or -1 when it is empty.
	Name int32
}

// Batch is a run of primitives drawn with one draw call.
type Batch struct {
	Topology gputypes.PrimitiveTopology
	State    State
	Vertices []Vertex
}

// Label is a string to be drawn at a clip-space position.
type Label struct {
	Position gltypes.Vec4
	Color    gltypes.RGBA8
	Text     string
	Font     int
}

// Lighting holds the lighting definitions most recently applied.
type Lighting struct {
	Material      []float32
	Lights        [maxLights][]float32
	Model         []float32
	ColorMaterial backend.ColorMaterial
	TexEnv        []float32
}

// Backend collects draw batches. It is not safe for concurrent use.
type Backend struct {
	width, height int

	matrixMode backend.MatrixMode
	stacks     [2][]gltypes.Matrix

	state      State
	texturing  bool
	shade      backend.ShadeModel
	clearColor gltypes.RGBA8
	clearDepth float32
	cleared    backend.ClearMask

	color  gltypes.RGBA8
	normal gltypes.Vec3
	tex    gltypes.Vec4

	prim   backend.Mode
	inPrim bool
	verts  []Vertex

	batches  []Batch
	labels   []Label
	lighting Lighting
	raster   gltypes.Vec4
	names    []int32
}

// New creates a batch backend for a width x height surface.
func New(width, height int) *Backend {
	b := &Backend{
		width:      max(width, 1),
		height:     max(height, 1),
		shade:      backend.Smooth,
		clearDepth: 1,
		color:      gltypes.RGBA8{255, 255, 255, 255},
		normal:     gltypes.Vec3{0, 0, 1},
		tex:        gltypes.Vec4{0, 0, 0, 1},
	}
	b.state.LineWidth = 1
	b.state.Name = -1
	b.stacks[backend.ModelView] = []gltypes.Matrix{gltypes.Identity()}
	b.stacks[backend.Projection] = []gltypes.Matrix{gltypes.Identity()}
	return b
}

// Name returns the backend identifier.
func (b *Backend) Name() string { return Name }

// Size returns the surface dimensions.
func (b *Backend) Size() (width, height int) { return b.width, b.height }

// Batches returns the pending batches. The slice is valid until the next
// Clear or Flush.
func (b *Backend) Batches() []Batch { return b.batches }

// Labels returns the pending strings.
func (b *Backend) Labels() []Label { return b.labels }

// Lighting returns the current lighting definitions.
func (b *Backend) Lighting() Lighting { return b.lighting }

// Cleared returns the buffers cleared since the last Flush and the values
// they were cleared to.
func (b *Backend) Cleared() (mask backend.ClearMask, color gltypes.RGBA8, depth float32) {
	return b.cleared, b.clearColor, b.clearDepth
}

// Flush returns the pending batches and starts a new frame.
func (b *Backend) Flush() []Batch {
	out := b.batches
	b.batches = nil
	b.labels = nil
	b.cleared = 0
	return out
}

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
		b.emit(gputypes.PrimitiveTopologyPointList, v...)
	case backend.Lines:
		for i := 0; i+1 < len(v); i += 2 {
			b.line(v[i], v[i+1])
		}
	case backend.LineStrip, backend.LineLoop:
		for i := 0; i+1 < len(v); i++ {
			b.line(v[i], v[i+1])
		}
		if b.prim == backend.LineLoop && len(v) > 2 {
			b.line(v[len(v)-1], v[0])
		}
	case backend.Triangles:
		for i := 0; i+2 < len(v); i += 3 {
			b.triangle(v[i], v[i+1], v[i+2], v[i+2])
		}
	case backend.TriangleStrip:
		for i := 0; i+2 < len(v); i++ {
			if i%2 == 0 {
				b.triangle(v[i], v[i+1], v[i+2], v[i+2])
			} else {
				b.triangle(v[i+1], v[i], v[i+2], v[i+2])
			}
		}
	case backend.TriangleFan:
		for i := 1; i+1 < len(v); i++ {
			b.triangle(v[0], v[i], v[i+1], v[i+1])
		}
	case backend.Polygon:
		for i := 1; i+1 < len(v); i++ {
			b.triangle(v[0], v[i], v[i+1], v[0])
		}
	case backend.Quads:
		for i := 0; i+3 < len(v); i += 4 {
			b.triangle(v[i], v[i+1], v[i+2], v[i+3])
			b.triangle(v[i], v[i+2], v[i+3], v[i+3])
		}
	case backend.QuadStrip:
		for i := 0; i+3 < len(v); i += 2 {
			b.triangle(v[i], v[i+1], v[i+3], v[i+3])
			b.triangle(v[i], v[i+3], v[i+2], v[i+3])
		}
	}
	b.verts = b.verts[:0]
}

func (b *Backend) line(p, q Vertex) {
	if b.shade == backend.Flat {
		p.Color = q.Color
	}
	b.emit(gputypes.PrimitiveTopologyLineList, p, q)
}

func (b *Backend) triangle(v0, v1, v2, pv Vertex) {
	if b.shade == backend.Flat {
		v0.Color, v1.Color, v2.Color = pv.Color, pv.Color, pv.Color
	}
	b.emit(gputypes.PrimitiveTopologyTriangleList, v0, v1, v2)
}

// emit appends vertices to the last batch when topology and state match,
// or starts a new batch.
func (b *Backend) emit(topo gputypes.PrimitiveTopology, vs ...Vertex) {
	if len(vs) == 0 {
		return
	}
	st := b.state
	st.Textured = b.texturing && st.Texture != nil
	if n := len(b.batches); n > 0 {
		last := &b.batches[n-1]
		if last.Topology == topo && last.State == st {
			last.Vertices = append(last.Vertices, vs...)
			return
		}
	}
	b.batches = append(b.batches, Batch{
		Topology: topo,
		State:    st,
		Vertices: slices.Clone(vs),
	})
}

// Vertex4f implements backend.Backend. Vertices outside a Begin/End bracket
// are dropped.
func (b *Backend) Vertex4f(x, y, z, w float32) {
	if !b.inPrim {
		return
	}
	mv := b.top(backend.ModelView)
	eye := mv.Transform(gltypes.Vec4{x, y, z, w})
	n := mv.Transform(gltypes.Vec4{b.normal[0], b.normal[1], b.normal[2], 0})
	c := b.color
	b.verts = append(b.verts, Vertex{
		Position: b.top(backend.Projection).Transform(eye),
		Color: [4]float32{
			float32(c[0]) / 255,
			float32(c[1]) / 255,
			float32(c[2]) / 255,
			float32(c[3]) / 255,
		},
		Normal:   gltypes.Vec3{n[0], n[1], n[2]},
		TexCoord: [2]float32{b.tex[0], b.tex[1]},
	})
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
		b.state.Lit = on
	case backend.Texture2D:
		b.texturing = on
	case backend.DepthTest:
		b.state.DepthTest = on
	case backend.CullFace:
		b.state.CullFace = on
	}
}

// ClearColor implements backend.Backend.
func (b *Backend) ClearColor(c gltypes.RGBA8) { b.clearColor = c }

// ClearDepth implements backend.Backend.
func (b *Backend) ClearDepth(d float32) { b.clearDepth = min(max(d, 0), 1) }

// Clear implements backend.Backend. Clearing the color buffer discards the
// batches it would overwrite.
func (b *Backend) Clear(mask backend.ClearMask) {
	if mask&backend.ColorBuffer != 0 {
		b.batches = b.batches[:0]
		b.labels = b.labels[:0]
	}
	b.cleared |= mask
}

// ShadeModel implements backend.Backend.
func (b *Backend) ShadeModel(m backend.ShadeModel) { b.shade = m }

// LineWidth implements backend.Backend.
func (b *Backend) LineWidth(w float32) { b.state.LineWidth = max(w, 1) }

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

// PopMatrix implements backend.Backend.
func (b *Backend) PopMatrix() {
	if s := b.stacks[b.matrixMode]; len(s) > 1 {
		b.stacks[b.matrixMode] = s[:len(s)-1]
	}
}

// Light implements backend.Backend.
func (b *Backend) Light(target backend.LightTarget, index int, props []float32) {
	props = slices.Clone(props)
	switch target {
	case backend.Material:
		b.lighting.Material = props
	case backend.Light:
		if index >= 0 && index < maxLights {
			b.lighting.Lights[index] = props
		}
	case backend.LightModel:
		b.lighting.Model = props
	}
}

// ColorMaterial implements backend.Backend.
func (b *Backend) ColorMaterial(mode backend.ColorMaterial) { b.lighting.ColorMaterial = mode }

// BindTexture implements backend.Backend.
func (b *Backend) BindTexture(tex *backend.Texture) { b.state.Texture = tex }

// TexEnv implements backend.Backend.
func (b *Backend) TexEnv(props []float32) { b.lighting.TexEnv = slices.Clone(props) }

// RasterPos implements backend.Backend.
func (b *Backend) RasterPos(x, y, z float32) {
	eye := b.top(backend.ModelView).Transform(gltypes.Vec4{x, y, z, 1})
	b.raster = b.top(backend.Projection).Transform(eye)
}

// DrawString implements backend.Backend. The raster position advances by
// one 8 pixel cell per byte.
func (b *Backend) DrawString(s string, font int) {
	b.labels = append(b.labels, Label{Position: b.raster, Color: b.color, Text: s, Font: font})
	if b.raster[3] != 0 {
		b.raster[0] += float32(8*len(s)) * 2 / float32(b.width) * b.raster[3]
	}
}

// InitNames implements backend.Backend.
func (b *Backend) InitNames() {
	b.names = b.names[:0]
	b.state.Name = -1
}

// LoadName implements backend.Backend.
func (b *Backend) LoadName(name int32) {
	if len(b.names) > 0 {
		b.names[len(b.names)-1] = name
		b.state.Name = name
	}
}

// PushName implements backend.Backend.
func (b *Backend) PushName(name int32) {
	b.names = append(b.names, name)
	b.state.Name = name
}

// PopName implements backend.Backend.
func (b *Backend) PopName() {
	if len(b.names) == 0 {
		return
	}
	b.names = b.names[:len(b.names)-1]
	b.state.Name = -1
	if n := len(b.names); n > 0 {
		b.state.Name = b.names[n-1]
	}
}

var _ backend.Backend = (*Backend)(nil)
