// Package trace provides a Backend that records every call it receives.
//
// The recorded calls are the observable output of the vertex engine and the
// object system: tests assert on them, and the String form of a call is a
// compact, stable rendering meant for comparisons and debugging.
//
// Importing the package registers the backend as "trace".
package trace

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gogpu/irisgl/backend"
	"github.com/gogpu/irisgl/gltypes"
)

func init() {
	backend.Register("trace", func(int, int) backend.Backend { return New() })
}

// Kind identifies a recorded backend call.
type Kind uint8

// Call kinds, one per Backend method.
const (
	KindBegin Kind = iota
	KindEnd
	KindVertex
	KindColor
	KindNormal
	KindTexCoord
	KindEnable
	KindDisable
	KindClearColor
	KindClearDepth
	KindClear
	KindShadeModel
	KindLineWidth
	KindMatrixMode
	KindLoadMatrix
	KindMultMatrix
	KindPushMatrix
	KindPopMatrix
	KindLight
	KindColorMaterial
	KindBindTexture
	KindTexEnv
	KindRasterPos
	KindDrawString
	KindInitNames
	KindLoadName
	KindPushName
	KindPopName
)

var kindNames = [...]string{
	KindBegin:         "Begin",
	KindEnd:           "End",
	KindVertex:        "Vertex",
	KindColor:         "Color",
	KindNormal:        "Normal",
	KindTexCoord:      "TexCoord",
	KindEnable:        "Enable",
	KindDisable:       "Disable",
	KindClearColor:    "ClearColor",
	KindClearDepth:    "ClearDepth",
	KindClear:         "Clear",
	KindShadeModel:    "ShadeModel",
	KindLineWidth:     "LineWidth",
	KindMatrixMode:    "MatrixMode",
	KindLoadMatrix:    "LoadMatrix",
	KindMultMatrix:    "MultMatrix",
	KindPushMatrix:    "PushMatrix",
	KindPopMatrix:     "PopMatrix",
	KindLight:         "Light",
	KindColorMaterial: "ColorMaterial",
	KindBindTexture:   "BindTexture",
	KindTexEnv:        "TexEnv",
	KindRasterPos:     "RasterPos",
	KindDrawString:    "DrawString",
	KindInitNames:     "InitNames",
	KindLoadName:      "LoadName",
	KindPushName:      "PushName",
	KindPopName:       "PopName",
}

// String returns the kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// Call is one recorded backend call. Only the fields relevant to Kind are set.
type Call struct {
	Kind   Kind
	Mode   backend.Mode
	Cap    backend.Capability
	Mask   backend.ClearMask
	F      gltypes.Vec4
	B      gltypes.RGBA8
	Matrix gltypes.Matrix
	Props  []float32
	Text   string
	N      int
}

// String renders the call compactly, e.g. "Vertex(1,2,0,1)".
func (c Call) String() string {
	switch c.Kind {
	case KindBegin:
		return "Begin(" + c.Mode.String() + ")"
	case KindEnable, KindDisable:
		return c.Kind.String() + "(" + c.Cap.String() + ")"
	case KindVertex, KindTexCoord:
		return fmt.Sprintf("%s(%g,%g,%g,%g)", c.Kind, c.F[0], c.F[1], c.F[2], c.F[3])
	case KindNormal, KindRasterPos:
		return fmt.Sprintf("%s(%g,%g,%g)", c.Kind, c.F[0], c.F[1], c.F[2])
	case KindColor, KindClearColor:
		return fmt.Sprintf("%s(%d,%d,%d,%d)", c.Kind, c.B[0], c.B[1], c.B[2], c.B[3])
	case KindClearDepth, KindLineWidth:
		return fmt.Sprintf("%s(%g)", c.Kind, c.F[0])
	case KindClear:
		return "Clear(" + c.Mask.String() + ")"
	case KindShadeModel:
		return "ShadeModel(" + backend.ShadeModel(c.N).String() + ")"
	case KindMatrixMode:
		return "MatrixMode(" + backend.MatrixMode(c.N).String() + ")"
	case KindLight:
		return fmt.Sprintf("Light(%s,%d,%v)", backend.LightTarget(c.N>>16), c.N&0xFFFF, c.Props)
	case KindTexEnv:
		return fmt.Sprintf("TexEnv(%v)", c.Props)
	case KindDrawString:
		return fmt.Sprintf("DrawString(%q,%d)", c.Text, c.N)
	case KindColorMaterial, KindBindTexture, KindLoadName, KindPushName:
		return fmt.Sprintf("%s(%d)", c.Kind, c.N)
	}
	return c.Kind.String()
}

// Backend records calls in order. The zero value is ready to use.
type Backend struct {
	calls []Call
}

var _ backend.Backend = (*Backend)(nil)

// New returns an empty recording backend.
func New() *Backend {
	return &Backend{calls: make([]Call, 0, 64)}
}

// Name returns the registry name.
func (b *Backend) Name() string { return "trace" }

// Calls returns the recorded calls.
func (b *Backend) Calls() []Call {
	return b.calls
}

// Reset discards the recorded calls.
func (b *Backend) Reset() {
	b.calls = b.calls[:0]
}

// Strings returns the String form of every recorded call.
func (b *Backend) Strings() []string {
	out := make([]string, len(b.calls))
	for i, c := range b.calls {
		out[i] = c.String()
	}
	return out
}

// Log returns the recorded calls joined by single spaces.
func (b *Backend) Log() string {
	return strings.Join(b.Strings(), " ")
}

// Filter returns the calls whose kind is one of kinds.
func (b *Backend) Filter(kinds ...Kind) []Call {
	var out []Call
	for _, c := range b.calls {
		if slices.Contains(kinds, c.Kind) {
			out = append(out, c)
		}
	}
	return out
}

// Vertices returns the positions of all recorded Vertex4f calls.
func (b *Backend) Vertices() []gltypes.Vec4 {
	var out []gltypes.Vec4
	for _, c := range b.calls {
		if c.Kind == KindVertex {
			out = append(out, c.F)
		}
	}
	return out
}

// Count returns how many calls of kind were recorded.
func (b *Backend) Count(kind Kind) int {
	n := 0
	for _, c := range b.calls {
		if c.Kind == kind {
			n++
		}
	}
	return n
}

func (b *Backend) add(c Call) { b.calls = append(b.calls, c) }

func (b *Backend) Begin(mode backend.Mode) { b.add(Call{Kind: KindBegin, Mode: mode}) }
func (b *Backend) End()                    { b.add(Call{Kind: KindEnd}) }

func (b *Backend) Vertex4f(x, y, z, w float32) {
	b.add(Call{Kind: KindVertex, F: gltypes.Vec4{x, y, z, w}})
}

func (b *Backend) Color4ub(r, g, bl, a uint8) {
	b.add(Call{Kind: KindColor, B: gltypes.RGBA8{r, g, bl, a}})
}

func (b *Backend) Normal3f(x, y, z float32) {
	b.add(Call{Kind: KindNormal, F: gltypes.Vec4{x, y, z, 0}})
}

func (b *Backend) TexCoord4f(s, t, r, q float32) {
	b.add(Call{Kind: KindTexCoord, F: gltypes.Vec4{s, t, r, q}})
}

func (b *Backend) Enable(c backend.Capability)  { b.add(Call{Kind: KindEnable, Cap: c}) }
func (b *Backend) Disable(c backend.Capability) { b.add(Call{Kind: KindDisable, Cap: c}) }

func (b *Backend) ClearColor(c gltypes.RGBA8) { b.add(Call{Kind: KindClearColor, B: c}) }

func (b *Backend) ClearDepth(d float32) {
	b.add(Call{Kind: KindClearDepth, F: gltypes.Vec4{d}})
}

func (b *Backend) Clear(mask backend.ClearMask) { b.add(Call{Kind: KindClear, Mask: mask}) }

func (b *Backend) ShadeModel(m backend.ShadeModel) {
	b.add(Call{Kind: KindShadeModel, N: int(m)})
}

func (b *Backend) LineWidth(w float32) {
	b.add(Call{Kind: KindLineWidth, F: gltypes.Vec4{w}})
}

func (b *Backend) MatrixMode(m backend.MatrixMode) {
	b.add(Call{Kind: KindMatrixMode, N: int(m)})
}

func (b *Backend) LoadMatrix(m gltypes.Matrix) { b.add(Call{Kind: KindLoadMatrix, Matrix: m}) }
func (b *Backend) MultMatrix(m gltypes.Matrix) { b.add(Call{Kind: KindMultMatrix, Matrix: m}) }
func (b *Backend) PushMatrix()                 { b.add(Call{Kind: KindPushMatrix}) }
func (b *Backend) PopMatrix()                  { b.add(Call{Kind: KindPopMatrix}) }

func (b *Backend) Light(target backend.LightTarget, index int, props []float32) {
	b.add(Call{Kind: KindLight, N: int(target)<<16 | index&0xFFFF, Props: slices.Clone(props)})
}

func (b *Backend) ColorMaterial(mode backend.ColorMaterial) {
	b.add(Call{Kind: KindColorMaterial, N: int(mode)})
}

func (b *Backend) BindTexture(tex *backend.Texture) {
	id := 0
	if tex != nil {
		id = tex.ID
	}
	b.add(Call{Kind: KindBindTexture, N: id})
}

func (b *Backend) TexEnv(props []float32) {
	b.add(Call{Kind: KindTexEnv, Props: slices.Clone(props)})
}

func (b *Backend) RasterPos(x, y, z float32) {
	b.add(Call{Kind: KindRasterPos, F: gltypes.Vec4{x, y, z, 1}})
}

func (b *Backend) DrawString(s string, font int) {
	b.add(Call{Kind: KindDrawString, Text: s, N: font})
}

func (b *Backend) InitNames()          { b.add(Call{Kind: KindInitNames}) }
func (b *Backend) LoadName(name int32) { b.add(Call{Kind: KindLoadName, N: int(name)}) }
func (b *Backend) PushName(name int32) { b.add(Call{Kind: KindPushName, N: int(name)}) }
func (b *Backend) PopName()            { b.add(Call{Kind: KindPopName}) }
