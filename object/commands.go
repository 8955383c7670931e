package object

import "github.com/gogpu/irisgl/gltypes"

// Command is a single recorded operation with its arguments.
type Command interface {
	// Op returns the Opcode for this command.
	Op() Opcode

	// Replay issues the command to d.
	Replay(d Dispatcher)
}

// Owner is implemented by commands that hold heap data of their own
// (point lists and strings). OwnedBytes reports its size.
type Owner interface {
	OwnedBytes() int
}

// --------------------------------------------------------------------------
// Buffers and modes
// --------------------------------------------------------------------------

// ClearCommand clears the color buffer to the current color.
type ClearCommand struct{}

// Op implements Command.
func (ClearCommand) Op() Opcode { return OpClear }

// Replay implements Command.
func (ClearCommand) Replay(d Dispatcher) { d.Clear() }

// ZclearCommand clears the depth buffer.
type ZclearCommand struct{}

// Op implements Command.
func (ZclearCommand) Op() Opcode { return OpZclear }

// Replay implements Command.
func (ZclearCommand) Replay(d Dispatcher) { d.Zclear() }

// CzclearCommand clears the color buffer to a packed color and the depth buffer to a value.
type CzclearCommand struct {
	Cval uint32
	Zval int32
}

// Op implements Command.
func (CzclearCommand) Op() Opcode { return OpCzclear }

// Replay implements Command.
func (c CzclearCommand) Replay(d Dispatcher) { d.Czclear(c.Cval, c.Zval) }

// ZbufferCommand switches depth testing.
type ZbufferCommand struct {
	On bool
}

// Op implements Command.
func (ZbufferCommand) Op() Opcode { return OpZbuffer }

// Replay implements Command.
func (c ZbufferCommand) Replay(d Dispatcher) { d.Zbuffer(c.On) }

// BackfaceCommand switches back face removal.
type BackfaceCommand struct {
	On bool
}

// Op implements Command.
func (BackfaceCommand) Op() Opcode { return OpBackface }

// Replay implements Command.
func (c BackfaceCommand) Replay(d Dispatcher) { d.Backface(c.On) }

// ShademodelCommand selects flat or Gouraud shading.
type ShademodelCommand struct {
	Mode int32
}

// Op implements Command.
func (ShademodelCommand) Op() Opcode { return OpShademodel }

// Replay implements Command.
func (c ShademodelCommand) Replay(d Dispatcher) { d.Shademodel(c.Mode) }

// LinewidthCommand sets the line width in pixels.
type LinewidthCommand struct {
	Width int16
}

// Op implements Command.
func (LinewidthCommand) Op() Opcode { return OpLinewidth }

// Replay implements Command.
func (c LinewidthCommand) Replay(d Dispatcher) { d.Linewidth(c.Width) }

// --------------------------------------------------------------------------
// Color
// --------------------------------------------------------------------------

// ColorCommand sets the current color from the colormap.
type ColorCommand struct {
	Index gltypes.Colorindex
}

// Op implements Command.
func (ColorCommand) Op() Opcode { return OpColor }

// Replay implements Command.
func (c ColorCommand) Replay(d Dispatcher) { d.Color(c.Index) }

// RGBcolorCommand sets the current color from 0-255 components.
type RGBcolorCommand struct {
	R int16
	G int16
	B int16
}

// Op implements Command.
func (RGBcolorCommand) Op() Opcode { return OpRGBcolor }

// Replay implements Command.
func (c RGBcolorCommand) Replay(d Dispatcher) { d.RGBcolor(c.R, c.G, c.B) }

// CpackCommand sets the current color from a packed 0xAABBGGRR value.
type CpackCommand struct {
	Packed uint32
}

// Op implements Command.
func (CpackCommand) Op() Opcode { return OpCpack }

// Replay implements Command.
func (c CpackCommand) Replay(d Dispatcher) { d.Cpack(c.Packed) }

// C3fCommand sets the current color from float components.
type C3fCommand struct {
	C [3]float32
}

// Op implements Command.
func (C3fCommand) Op() Opcode { return OpC3f }

// Replay implements Command.
func (c C3fCommand) Replay(d Dispatcher) { d.C3f(c.C) }

// C4fCommand sets the current color and alpha from float components.
type C4fCommand struct {
	C [4]float32
}

// Op implements Command.
func (C4fCommand) Op() Opcode { return OpC4f }

// Replay implements Command.
func (c C4fCommand) Replay(d Dispatcher) { d.C4f(c.C) }

// C3iCommand sets the current color from integer components.
type C3iCommand struct {
	C [3]int32
}

// Op implements Command.
func (C3iCommand) Op() Opcode { return OpC3i }

// Replay implements Command.
func (c C3iCommand) Replay(d Dispatcher) { d.C3i(c.C) }

// C4iCommand sets the current color and alpha from integer components.
type C4iCommand struct {
	C [4]int32
}

// Op implements Command.
func (C4iCommand) Op() Opcode { return OpC4i }

// Replay implements Command.
func (c C4iCommand) Replay(d Dispatcher) { d.C4i(c.C) }

// C3sCommand sets the current color from short components.
type C3sCommand struct {
	C [3]int16
}

// Op implements Command.
func (C3sCommand) Op() Opcode { return OpC3s }

// Replay implements Command.
func (c C3sCommand) Replay(d Dispatcher) { d.C3s(c.C) }

// C4sCommand sets the current color and alpha from short components.
type C4sCommand struct {
	C [4]int16
}

// Op implements Command.
func (C4sCommand) Op() Opcode { return OpC4s }

// Replay implements Command.
func (c C4sCommand) Replay(d Dispatcher) { d.C4s(c.C) }

// --------------------------------------------------------------------------
// Transformations
// --------------------------------------------------------------------------

// PushmatrixCommand duplicates the top of the matrix stack.
type PushmatrixCommand struct{}

// Op implements Command.
func (PushmatrixCommand) Op() Opcode { return OpPushmatrix }

// Replay implements Command.
func (PushmatrixCommand) Replay(d Dispatcher) { d.Pushmatrix() }

// PopmatrixCommand discards the top of the matrix stack.
type PopmatrixCommand struct{}

// Op implements Command.
func (PopmatrixCommand) Op() Opcode { return OpPopmatrix }

// Replay implements Command.
func (PopmatrixCommand) Replay(d Dispatcher) { d.Popmatrix() }

// LoadmatrixCommand replaces the top of the matrix stack.
type LoadmatrixCommand struct {
	M gltypes.Matrix
}

// Op implements Command.
func (LoadmatrixCommand) Op() Opcode { return OpLoadmatrix }

// Replay implements Command.
func (c LoadmatrixCommand) Replay(d Dispatcher) { d.Loadmatrix(c.M) }

// MultmatrixCommand premultiplies the top of the matrix stack.
type MultmatrixCommand struct {
	M gltypes.Matrix
}

// Op implements Command.
func (MultmatrixCommand) Op() Opcode { return OpMultmatrix }

// Replay implements Command.
func (c MultmatrixCommand) Replay(d Dispatcher) { d.Multmatrix(c.M) }

// TranslateCommand translates the current matrix.
type TranslateCommand struct {
	X float32
	Y float32
	Z float32
}

// Op implements Command.
func (TranslateCommand) Op() Opcode { return OpTranslate }

// Replay implements Command.
func (c TranslateCommand) Replay(d Dispatcher) { d.Translate(c.X, c.Y, c.Z) }

// RotCommand rotates by degrees about an axis.
type RotCommand struct {
	Angle float32
	Axis  gltypes.Axis
}

// Op implements Command.
func (RotCommand) Op() Opcode { return OpRot }

// Replay implements Command.
func (c RotCommand) Replay(d Dispatcher) { d.Rot(c.Angle, c.Axis) }

// RotateCommand rotates by tenths of degrees about an axis.
type RotateCommand struct {
	Angle gltypes.Angle
	Axis  gltypes.Axis
}

// Op implements Command.
func (RotateCommand) Op() Opcode { return OpRotate }

// Replay implements Command.
func (c RotateCommand) Replay(d Dispatcher) { d.Rotate(c.Angle, c.Axis) }

// ScaleCommand scales the current matrix.
type ScaleCommand struct {
	X float32
	Y float32
	Z float32
}

// Op implements Command.
func (ScaleCommand) Op() Opcode { return OpScale }

// Replay implements Command.
func (c ScaleCommand) Replay(d Dispatcher) { d.Scale(c.X, c.Y, c.Z) }

// OrthoCommand sets a parallel projection.
type OrthoCommand struct {
	Left   float32
	Right  float32
	Bottom float32
	Top    float32
	Near   float32
	Far    float32
}

// Op implements Command.
func (OrthoCommand) Op() Opcode { return OpOrtho }

// Replay implements Command.
func (c OrthoCommand) Replay(d Dispatcher) { d.Ortho(c.Left, c.Right, c.Bottom, c.Top, c.Near, c.Far) }

// Ortho2Command sets a two dimensional parallel projection.
type Ortho2Command struct {
	Left   float32
	Right  float32
	Bottom float32
	Top    float32
}

// Op implements Command.
func (Ortho2Command) Op() Opcode { return OpOrtho2 }

// Replay implements Command.
func (c Ortho2Command) Replay(d Dispatcher) { d.Ortho2(c.Left, c.Right, c.Bottom, c.Top) }

// PerspectiveCommand sets a perspective projection.
type PerspectiveCommand struct {
	Fovy   gltypes.Angle
	Aspect float32
	Near   float32
	Far    float32
}

// Op implements Command.
func (PerspectiveCommand) Op() Opcode { return OpPerspective }

// Replay implements Command.
func (c PerspectiveCommand) Replay(d Dispatcher) { d.Perspective(c.Fovy, c.Aspect, c.Near, c.Far) }

// WindowCommand sets a perspective projection from a frustum.
type WindowCommand struct {
	Left   float32
	Right  float32
	Bottom float32
	Top    float32
	Near   float32
	Far    float32
}

// Op implements Command.
func (WindowCommand) Op() Opcode { return OpWindow }

// Replay implements Command.
func (c WindowCommand) Replay(d Dispatcher) { d.Window(c.Left, c.Right, c.Bottom, c.Top, c.Near, c.Far) }

// LookatCommand places the viewer at a point looking at another.
type LookatCommand struct {
	Vx    float32
	Vy    float32
	Vz    float32
	Px    float32
	Py    float32
	Pz    float32
	Twist gltypes.Angle
}

// Op implements Command.
func (LookatCommand) Op() Opcode { return OpLookat }

// Replay implements Command.
func (c LookatCommand) Replay(d Dispatcher) { d.Lookat(c.Vx, c.Vy, c.Vz, c.Px, c.Py, c.Pz, c.Twist) }

// PolarviewCommand places the viewer in polar coordinates.
type PolarviewCommand struct {
	Dist  float32
	Azim  gltypes.Angle
	Inc   gltypes.Angle
	Twist gltypes.Angle
}

// Op implements Command.
func (PolarviewCommand) Op() Opcode { return OpPolarview }

// Replay implements Command.
func (c PolarviewCommand) Replay(d Dispatcher) { d.Polarview(c.Dist, c.Azim, c.Inc, c.Twist) }

// --------------------------------------------------------------------------
// Primitive brackets
// --------------------------------------------------------------------------

// BgnpointCommand starts a sequence of points.
type BgnpointCommand struct{}

// Op implements Command.
func (BgnpointCommand) Op() Opcode { return OpBgnpoint }

// Replay implements Command.
func (BgnpointCommand) Replay(d Dispatcher) { d.Bgnpoint() }

// EndpointCommand ends a sequence of points.
type EndpointCommand struct{}

// Op implements Command.
func (EndpointCommand) Op() Opcode { return OpEndpoint }

// Replay implements Command.
func (EndpointCommand) Replay(d Dispatcher) { d.Endpoint() }

// BgnlineCommand starts a polyline.
type BgnlineCommand struct{}

// Op implements Command.
func (BgnlineCommand) Op() Opcode { return OpBgnline }

// Replay implements Command.
func (BgnlineCommand) Replay(d Dispatcher) { d.Bgnline() }

// EndlineCommand ends a polyline.
type EndlineCommand struct{}

// Op implements Command.
func (EndlineCommand) Op() Opcode { return OpEndline }

// Replay implements Command.
func (EndlineCommand) Replay(d Dispatcher) { d.Endline() }

// BgnclosedlineCommand starts a closed polyline.
type BgnclosedlineCommand struct{}

// Op implements Command.
func (BgnclosedlineCommand) Op() Opcode { return OpBgnclosedline }

// Replay implements Command.
func (BgnclosedlineCommand) Replay(d Dispatcher) { d.Bgnclosedline() }

// EndclosedlineCommand ends a closed polyline.
type EndclosedlineCommand struct{}

// Op implements Command.
func (EndclosedlineCommand) Op() Opcode { return OpEndclosedline }

// Replay implements Command.
func (EndclosedlineCommand) Replay(d Dispatcher) { d.Endclosedline() }

// BgnpolygonCommand starts a filled polygon.
type BgnpolygonCommand struct{}

// Op implements Command.
func (BgnpolygonCommand) Op() Opcode { return OpBgnpolygon }

// Replay implements Command.
func (BgnpolygonCommand) Replay(d Dispatcher) { d.Bgnpolygon() }

// EndpolygonCommand ends a filled polygon.
type EndpolygonCommand struct{}

// Op implements Command.
func (EndpolygonCommand) Op() Opcode { return OpEndpolygon }

// Replay implements Command.
func (EndpolygonCommand) Replay(d Dispatcher) { d.Endpolygon() }

// BgntmeshCommand starts a triangle mesh.
type BgntmeshCommand struct{}

// Op implements Command.
func (BgntmeshCommand) Op() Opcode { return OpBgntmesh }

// Replay implements Command.
func (BgntmeshCommand) Replay(d Dispatcher) { d.Bgntmesh() }

// EndtmeshCommand ends a triangle mesh.
type EndtmeshCommand struct{}

// Op implements Command.
func (EndtmeshCommand) Op() Opcode { return OpEndtmesh }

// Replay implements Command.
func (EndtmeshCommand) Replay(d Dispatcher) { d.Endtmesh() }

// SwaptmeshCommand exchanges the two most recent triangle mesh vertices.
type SwaptmeshCommand struct{}

// Op implements Command.
func (SwaptmeshCommand) Op() Opcode { return OpSwaptmesh }

// Replay implements Command.
func (SwaptmeshCommand) Replay(d Dispatcher) { d.Swaptmesh() }

// BgnqstripCommand starts a quadrilateral strip.
type BgnqstripCommand struct{}

// Op implements Command.
func (BgnqstripCommand) Op() Opcode { return OpBgnqstrip }

// Replay implements Command.
func (BgnqstripCommand) Replay(d Dispatcher) { d.Bgnqstrip() }

// EndqstripCommand ends a quadrilateral strip.
type EndqstripCommand struct{}

// Op implements Command.
func (EndqstripCommand) Op() Opcode { return OpEndqstrip }

// Replay implements Command.
func (EndqstripCommand) Replay(d Dispatcher) { d.Endqstrip() }

// --------------------------------------------------------------------------
// Vertices
// --------------------------------------------------------------------------

// V2fCommand submits a two dimensional vertex.
type V2fCommand struct {
	V [2]float32
}

// Op implements Command.
func (V2fCommand) Op() Opcode { return OpV2f }

// Replay implements Command.
func (c V2fCommand) Replay(d Dispatcher) { d.V2f(c.V) }

// V3fCommand submits a three dimensional vertex.
type V3fCommand struct {
	V [3]float32
}

// Op implements Command.
func (V3fCommand) Op() Opcode { return OpV3f }

// Replay implements Command.
func (c V3fCommand) Replay(d Dispatcher) { d.V3f(c.V) }

// V4fCommand submits a homogeneous vertex.
type V4fCommand struct {
	V [4]float32
}

// Op implements Command.
func (V4fCommand) Op() Opcode { return OpV4f }

// Replay implements Command.
func (c V4fCommand) Replay(d Dispatcher) { d.V4f(c.V) }

// V2iCommand submits a two dimensional integer vertex.
type V2iCommand struct {
	V [2]int32
}

// Op implements Command.
func (V2iCommand) Op() Opcode { return OpV2i }

// Replay implements Command.
func (c V2iCommand) Replay(d Dispatcher) { d.V2i(c.V) }

// V3iCommand submits a three dimensional integer vertex.
type V3iCommand struct {
	V [3]int32
}

// Op implements Command.
func (V3iCommand) Op() Opcode { return OpV3i }

// Replay implements Command.
func (c V3iCommand) Replay(d Dispatcher) { d.V3i(c.V) }

// V2sCommand submits a two dimensional short vertex.
type V2sCommand struct {
	V [2]int16
}

// Op implements Command.
func (V2sCommand) Op() Opcode { return OpV2s }

// Replay implements Command.
func (c V2sCommand) Replay(d Dispatcher) { d.V2s(c.V) }

// V3sCommand submits a three dimensional short vertex.
type V3sCommand struct {
	V [3]int16
}

// Op implements Command.
func (V3sCommand) Op() Opcode { return OpV3s }

// Replay implements Command.
func (c V3sCommand) Replay(d Dispatcher) { d.V3s(c.V) }

// V2dCommand submits a two dimensional double vertex.
type V2dCommand struct {
	V [2]float64
}

// Op implements Command.
func (V2dCommand) Op() Opcode { return OpV2d }

// Replay implements Command.
func (c V2dCommand) Replay(d Dispatcher) { d.V2d(c.V) }

// V3dCommand submits a three dimensional double vertex.
type V3dCommand struct {
	V [3]float64
}

// Op implements Command.
func (V3dCommand) Op() Opcode { return OpV3d }

// Replay implements Command.
func (c V3dCommand) Replay(d Dispatcher) { d.V3d(c.V) }

// N3fCommand sets the current normal.
type N3fCommand struct {
	N [3]float32
}

// Op implements Command.
func (N3fCommand) Op() Opcode { return OpN3f }

// Replay implements Command.
func (c N3fCommand) Replay(d Dispatcher) { d.N3f(c.N) }

// T2fCommand sets a two component texture coordinate.
type T2fCommand struct {
	T [2]float32
}

// Op implements Command.
func (T2fCommand) Op() Opcode { return OpT2f }

// Replay implements Command.
func (c T2fCommand) Replay(d Dispatcher) { d.T2f(c.T) }

// T3fCommand sets a three component texture coordinate.
type T3fCommand struct {
	T [3]float32
}

// Op implements Command.
func (T3fCommand) Op() Opcode { return OpT3f }

// Replay implements Command.
func (c T3fCommand) Replay(d Dispatcher) { d.T3f(c.T) }

// T4fCommand sets a homogeneous texture coordinate.
type T4fCommand struct {
	T [4]float32
}

// Op implements Command.
func (T4fCommand) Op() Opcode { return OpT4f }

// Replay implements Command.
func (c T4fCommand) Replay(d Dispatcher) { d.T4f(c.T) }

// --------------------------------------------------------------------------
// Shapes
// --------------------------------------------------------------------------

// MoveCommand moves the current graphics position.
type MoveCommand struct {
	X float32
	Y float32
	Z float32
}

// Op implements Command.
func (MoveCommand) Op() Opcode { return OpMove }

// Replay implements Command.
func (c MoveCommand) Replay(d Dispatcher) { d.Move(c.X, c.Y, c.Z) }

// DrawCommand draws a line from the current graphics position.
type DrawCommand struct {
	X float32
	Y float32
	Z float32
}

// Op implements Command.
func (DrawCommand) Op() Opcode { return OpDraw }

// Replay implements Command.
func (c DrawCommand) Replay(d Dispatcher) { d.Draw(c.X, c.Y, c.Z) }

// PntCommand draws a single point.
type PntCommand struct {
	X float32
	Y float32
	Z float32
}

// Op implements Command.
func (PntCommand) Op() Opcode { return OpPnt }

// Replay implements Command.
func (c PntCommand) Replay(d Dispatcher) { d.Pnt(c.X, c.Y, c.Z) }

// RectCommand outlines a rectangle.
type RectCommand struct {
	X1 float32
	Y1 float32
	X2 float32
	Y2 float32
}

// Op implements Command.
func (RectCommand) Op() Opcode { return OpRect }

// Replay implements Command.
func (c RectCommand) Replay(d Dispatcher) { d.Rect(c.X1, c.Y1, c.X2, c.Y2) }

// RectfCommand fills a rectangle.
type RectfCommand struct {
	X1 float32
	Y1 float32
	X2 float32
	Y2 float32
}

// Op implements Command.
func (RectfCommand) Op() Opcode { return OpRectf }

// Replay implements Command.
func (c RectfCommand) Replay(d Dispatcher) { d.Rectf(c.X1, c.Y1, c.X2, c.Y2) }

// CircCommand outlines a circle.
type CircCommand struct {
	X      float32
	Y      float32
	Radius float32
}

// Op implements Command.
func (CircCommand) Op() Opcode { return OpCirc }

// Replay implements Command.
func (c CircCommand) Replay(d Dispatcher) { d.Circ(c.X, c.Y, c.Radius) }

// CircfCommand fills a circle.
type CircfCommand struct {
	X      float32
	Y      float32
	Radius float32
}

// Op implements Command.
func (CircfCommand) Op() Opcode { return OpCircf }

// Replay implements Command.
func (c CircfCommand) Replay(d Dispatcher) { d.Circf(c.X, c.Y, c.Radius) }

// ArcCommand outlines a circular arc.
type ArcCommand struct {
	X      float32
	Y      float32
	Radius float32
	Start  gltypes.Angle
	End    gltypes.Angle
}

// Op implements Command.
func (ArcCommand) Op() Opcode { return OpArc }

// Replay implements Command.
func (c ArcCommand) Replay(d Dispatcher) { d.Arc(c.X, c.Y, c.Radius, c.Start, c.End) }

// ArcfCommand fills a circular sector.
type ArcfCommand struct {
	X      float32
	Y      float32
	Radius float32
	Start  gltypes.Angle
	End    gltypes.Angle
}

// Op implements Command.
func (ArcfCommand) Op() Opcode { return OpArcf }

// Replay implements Command.
func (c ArcfCommand) Replay(d Dispatcher) { d.Arcf(c.X, c.Y, c.Radius, c.Start, c.End) }

// PolyCommand outlines a polygon.
type PolyCommand struct {
	Points [][3]float32
}

// Op implements Command.
func (PolyCommand) Op() Opcode { return OpPoly }

// Replay implements Command.
func (c PolyCommand) Replay(d Dispatcher) { d.Poly(c.Points) }

// OwnedBytes implements Owner.
func (c PolyCommand) OwnedBytes() int { return len(c.Points) * pointSize }

// PolfCommand fills a polygon.
type PolfCommand struct {
	Points [][3]float32
}

// Op implements Command.
func (PolfCommand) Op() Opcode { return OpPolf }

// Replay implements Command.
func (c PolfCommand) Replay(d Dispatcher) { d.Polf(c.Points) }

// OwnedBytes implements Owner.
func (c PolfCommand) OwnedBytes() int { return len(c.Points) * pointSize }

// PmvCommand starts a filled polygon at a point.
type PmvCommand struct {
	X float32
	Y float32
	Z float32
}

// Op implements Command.
func (PmvCommand) Op() Opcode { return OpPmv }

// Replay implements Command.
func (c PmvCommand) Replay(d Dispatcher) { d.Pmv(c.X, c.Y, c.Z) }

// PdrCommand adds a point to the polygon started by Pmv.
type PdrCommand struct {
	X float32
	Y float32
	Z float32
}

// Op implements Command.
func (PdrCommand) Op() Opcode { return OpPdr }

// Replay implements Command.
func (c PdrCommand) Replay(d Dispatcher) { d.Pdr(c.X, c.Y, c.Z) }

// PclosCommand closes and fills the polygon started by Pmv.
type PclosCommand struct{}

// Op implements Command.
func (PclosCommand) Op() Opcode { return OpPclos }

// Replay implements Command.
func (PclosCommand) Replay(d Dispatcher) { d.Pclos() }

// --------------------------------------------------------------------------
// Curves and patches
// --------------------------------------------------------------------------

// CurvebasisCommand selects the curve basis.
type CurvebasisCommand struct {
	Basis int16
}

// Op implements Command.
func (CurvebasisCommand) Op() Opcode { return OpCurvebasis }

// Replay implements Command.
func (c CurvebasisCommand) Replay(d Dispatcher) { d.Curvebasis(c.Basis) }

// CurveprecisionCommand sets the line segments drawn per curve segment.
type CurveprecisionCommand struct {
	Segments int16
}

// Op implements Command.
func (CurveprecisionCommand) Op() Opcode { return OpCurveprecision }

// Replay implements Command.
func (c CurveprecisionCommand) Replay(d Dispatcher) { d.Curveprecision(c.Segments) }

// CrvCommand draws one curve segment.
type CrvCommand struct {
	Geom [4][3]float32
}

// Op implements Command.
func (CrvCommand) Op() Opcode { return OpCrv }

// Replay implements Command.
func (c CrvCommand) Replay(d Dispatcher) { d.Crv(c.Geom) }

// CrvnCommand draws a series of curve segments.
type CrvnCommand struct {
	Geom [][3]float32
}

// Op implements Command.
func (CrvnCommand) Op() Opcode { return OpCrvn }

// Replay implements Command.
func (c CrvnCommand) Replay(d Dispatcher) { d.Crvn(c.Geom) }

// OwnedBytes implements Owner.
func (c CrvnCommand) OwnedBytes() int { return len(c.Geom) * pointSize }

// RcrvCommand draws one rational curve segment.
type RcrvCommand struct {
	Geom [4][4]float32
}

// Op implements Command.
func (RcrvCommand) Op() Opcode { return OpRcrv }

// Replay implements Command.
func (c RcrvCommand) Replay(d Dispatcher) { d.Rcrv(c.Geom) }

// PatchbasisCommand selects the patch bases.
type PatchbasisCommand struct {
	U int16
	V int16
}

// Op implements Command.
func (PatchbasisCommand) Op() Opcode { return OpPatchbasis }

// Replay implements Command.
func (c PatchbasisCommand) Replay(d Dispatcher) { d.Patchbasis(c.U, c.V) }

// PatchprecisionCommand sets the line segments per patch curve.
type PatchprecisionCommand struct {
	U int16
	V int16
}

// Op implements Command.
func (PatchprecisionCommand) Op() Opcode { return OpPatchprecision }

// Replay implements Command.
func (c PatchprecisionCommand) Replay(d Dispatcher) { d.Patchprecision(c.U, c.V) }

// PatchcurvesCommand sets the number of curves drawn in each direction.
type PatchcurvesCommand struct {
	U int16
	V int16
}

// Op implements Command.
func (PatchcurvesCommand) Op() Opcode { return OpPatchcurves }

// Replay implements Command.
func (c PatchcurvesCommand) Replay(d Dispatcher) { d.Patchcurves(c.U, c.V) }

// PatchCommand draws a surface patch.
type PatchCommand struct {
	X gltypes.Matrix
	Y gltypes.Matrix
	Z gltypes.Matrix
}

// Op implements Command.
func (PatchCommand) Op() Opcode { return OpPatch }

// Replay implements Command.
func (c PatchCommand) Replay(d Dispatcher) { d.Patch(c.X, c.Y, c.Z) }

// --------------------------------------------------------------------------
// Lighting and texturing
// --------------------------------------------------------------------------

// LmbindCommand binds a lighting definition.
type LmbindCommand struct {
	Target int16
	Index  int16
}

// Op implements Command.
func (LmbindCommand) Op() Opcode { return OpLmbind }

// Replay implements Command.
func (c LmbindCommand) Replay(d Dispatcher) { d.Lmbind(c.Target, c.Index) }

// LmcolorCommand selects the material property tracking the color.
type LmcolorCommand struct {
	Mode int32
}

// Op implements Command.
func (LmcolorCommand) Op() Opcode { return OpLmcolor }

// Replay implements Command.
func (c LmcolorCommand) Replay(d Dispatcher) { d.Lmcolor(c.Mode) }

// TexbindCommand binds a texture definition.
type TexbindCommand struct {
	Target int16
	Index  int16
}

// Op implements Command.
func (TexbindCommand) Op() Opcode { return OpTexbind }

// Replay implements Command.
func (c TexbindCommand) Replay(d Dispatcher) { d.Texbind(c.Target, c.Index) }

// TevbindCommand binds a texture environment definition.
type TevbindCommand struct {
	Target int16
	Index  int16
}

// Op implements Command.
func (TevbindCommand) Op() Opcode { return OpTevbind }

// Replay implements Command.
func (c TevbindCommand) Replay(d Dispatcher) { d.Tevbind(c.Target, c.Index) }

// --------------------------------------------------------------------------
// Text
// --------------------------------------------------------------------------

// CmovCommand moves the character position.
type CmovCommand struct {
	X float32
	Y float32
	Z float32
}

// Op implements Command.
func (CmovCommand) Op() Opcode { return OpCmov }

// Replay implements Command.
func (c CmovCommand) Replay(d Dispatcher) { d.Cmov(c.X, c.Y, c.Z) }

// CharstrCommand draws a character string.
type CharstrCommand struct {
	Text string
}

// Op implements Command.
func (CharstrCommand) Op() Opcode { return OpCharstr }

// Replay implements Command.
func (c CharstrCommand) Replay(d Dispatcher) { d.Charstr(c.Text) }

// OwnedBytes implements Owner.
func (c CharstrCommand) OwnedBytes() int { return len(c.Text) }

// FontCommand selects a font.
type FontCommand struct {
	ID int16
}

// Op implements Command.
func (FontCommand) Op() Opcode { return OpFont }

// Replay implements Command.
func (c FontCommand) Replay(d Dispatcher) { d.Font(c.ID) }

// --------------------------------------------------------------------------
// Picking
// --------------------------------------------------------------------------

// InitnamesCommand clears the name stack.
type InitnamesCommand struct{}

// Op implements Command.
func (InitnamesCommand) Op() Opcode { return OpInitnames }

// Replay implements Command.
func (InitnamesCommand) Replay(d Dispatcher) { d.Initnames() }

// LoadnameCommand replaces the top of the name stack.
type LoadnameCommand struct {
	Name int16
}

// Op implements Command.
func (LoadnameCommand) Op() Opcode { return OpLoadname }

// Replay implements Command.
func (c LoadnameCommand) Replay(d Dispatcher) { d.Loadname(c.Name) }

// PushnameCommand pushes a name.
type PushnameCommand struct {
	Name int16
}

// Op implements Command.
func (PushnameCommand) Op() Opcode { return OpPushname }

// Replay implements Command.
func (c PushnameCommand) Replay(d Dispatcher) { d.Pushname(c.Name) }

// PopnameCommand pops a name.
type PopnameCommand struct{}

// Op implements Command.
func (PopnameCommand) Op() Opcode { return OpPopname }

// Replay implements Command.
func (PopnameCommand) Replay(d Dispatcher) { d.Popname() }

// --------------------------------------------------------------------------
// Objects
// --------------------------------------------------------------------------

// CallobjCommand invokes another object.
type CallobjCommand struct {
	ID gltypes.ObjectID
}

// Op implements Command.
func (CallobjCommand) Op() Opcode { return OpCallobj }

// Replay implements Command.
func (c CallobjCommand) Replay(d Dispatcher) { d.Callobj(c.ID) }

// pointSize is the byte size of one [3]float32 point.
const pointSize = 3 * 4

// compile-time interface checks
var (
	_ Command = ClearCommand{}
	_ Command = ZclearCommand{}
	_ Command = CzclearCommand{}
	_ Command = ZbufferCommand{}
	_ Command = BackfaceCommand{}
	_ Command = ShademodelCommand{}
	_ Command = LinewidthCommand{}
	_ Command = ColorCommand{}
	_ Command = RGBcolorCommand{}
	_ Command = CpackCommand{}
	_ Command = C3fCommand{}
	_ Command = C4fCommand{}
	_ Command = C3iCommand{}
	_ Command = C4iCommand{}
	_ Command = C3sCommand{}
	_ Command = C4sCommand{}
	_ Command = PushmatrixCommand{}
	_ Command = PopmatrixCommand{}
	_ Command = LoadmatrixCommand{}
	_ Command = MultmatrixCommand{}
	_ Command = TranslateCommand{}
	_ Command = RotCommand{}
	_ Command = RotateCommand{}
	_ Command = ScaleCommand{}
	_ Command = OrthoCommand{}
	_ Command = Ortho2Command{}
	_ Command = PerspectiveCommand{}
	_ Command = WindowCommand{}
	_ Command = LookatCommand{}
	_ Command = PolarviewCommand{}
	_ Command = BgnpointCommand{}
	_ Command = EndpointCommand{}
	_ Command = BgnlineCommand{}
	_ Command = EndlineCommand{}
	_ Command = BgnclosedlineCommand{}
	_ Command = EndclosedlineCommand{}
	_ Command = BgnpolygonCommand{}
	_ Command = EndpolygonCommand{}
	_ Command = BgntmeshCommand{}
	_ Command = EndtmeshCommand{}
	_ Command = SwaptmeshCommand{}
	_ Command = BgnqstripCommand{}
	_ Command = EndqstripCommand{}
	_ Command = V2fCommand{}
	_ Command = V3fCommand{}
	_ Command = V4fCommand{}
	_ Command = V2iCommand{}
	_ Command = V3iCommand{}
	_ Command = V2sCommand{}
	_ Command = V3sCommand{}
	_ Command = V2dCommand{}
	_ Command = V3dCommand{}
	_ Command = N3fCommand{}
	_ Command = T2fCommand{}
	_ Command = T3fCommand{}
	_ Command = T4fCommand{}
	_ Command = MoveCommand{}
	_ Command = DrawCommand{}
	_ Command = PntCommand{}
	_ Command = RectCommand{}
	_ Command = RectfCommand{}
	_ Command = CircCommand{}
	_ Command = CircfCommand{}
	_ Command = ArcCommand{}
	_ Command = ArcfCommand{}
	_ Command = PolyCommand{}
	_ Command = PolfCommand{}
	_ Command = PmvCommand{}
	_ Command = PdrCommand{}
	_ Command = PclosCommand{}
	_ Command = CurvebasisCommand{}
	_ Command = CurveprecisionCommand{}
	_ Command = CrvCommand{}
	_ Command = CrvnCommand{}
	_ Command = RcrvCommand{}
	_ Command = PatchbasisCommand{}
	_ Command = PatchprecisionCommand{}
	_ Command = PatchcurvesCommand{}
	_ Command = PatchCommand{}
	_ Command = LmbindCommand{}
	_ Command = LmcolorCommand{}
	_ Command = TexbindCommand{}
	_ Command = TevbindCommand{}
	_ Command = CmovCommand{}
	_ Command = CharstrCommand{}
	_ Command = FontCommand{}
	_ Command = InitnamesCommand{}
	_ Command = LoadnameCommand{}
	_ Command = PushnameCommand{}
	_ Command = PopnameCommand{}
	_ Command = CallobjCommand{}
	_ Owner   = PolyCommand{}
	_ Owner   = PolfCommand{}
	_ Owner   = CrvnCommand{}
	_ Owner   = CharstrCommand{}
)
