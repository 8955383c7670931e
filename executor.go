package irisgl

import (
	"math"

	"github.com/chewxy/math32"
	"golang.org/x/text/encoding/charmap"

	"github.com/gogpu/irisgl/backend"
	"github.com/gogpu/irisgl/curve"
	"github.com/gogpu/irisgl/gltypes"
	"github.com/gogpu/irisgl/object"
)

// maxDepth is the legacy depth buffer maximum used by Czclear.
const maxDepth = 0x7fffff

// circleSegments is the tessellation of a full circle.
const circleSegments = 40

// executor is the dispatch table that renders immediately. Every call is a
// no-op while no backend is attached.
type executor struct {
	c *Context

	// pos is the current graphics position set by Move and Draw.
	pos gltypes.Vec3
	// font is the font selected by Font.
	font int
}

var _ object.Dispatcher = (*executor)(nil)

// reset clears the state tied to the attached backend.
func (x *executor) reset() {
	x.pos = gltypes.Vec3{}
	x.font = 0
}

// backend returns the attached backend, or nil.
func (x *executor) backend() backend.Backend { return x.c.be }

// --------------------------------------------------------------------------
// Buffers and modes
// --------------------------------------------------------------------------

func (x *executor) Clear() {
	be := x.backend()
	if be == nil {
		return
	}
	be.ClearColor(x.c.engine.Color())
	be.Clear(backend.ColorBuffer)
}

func (x *executor) Zclear() {
	be := x.backend()
	if be == nil {
		return
	}
	be.ClearDepth(1)
	be.Clear(backend.DepthBuffer)
}

func (x *executor) Czclear(cval uint32, zval int32) {
	be := x.backend()
	if be == nil {
		return
	}
	be.ClearColor(gltypes.PackRGBA(cval))
	be.ClearDepth(min(max(float32(zval)/maxDepth, 0), 1))
	be.Clear(backend.ColorBuffer | backend.DepthBuffer)
}

func (x *executor) Zbuffer(on bool) { x.toggle(backend.DepthTest, on) }

func (x *executor) Backface(on bool) { x.toggle(backend.CullFace, on) }

func (x *executor) toggle(c backend.Capability, on bool) {
	be := x.backend()
	if be == nil {
		return
	}
	if on {
		be.Enable(c)
	} else {
		be.Disable(c)
	}
}

func (x *executor) Shademodel(mode int32) {
	be := x.backend()
	if be == nil {
		return
	}
	if mode == Flat {
		be.ShadeModel(backend.Flat)
	} else {
		be.ShadeModel(backend.Smooth)
	}
}

func (x *executor) Linewidth(width int16) {
	if be := x.backend(); be != nil {
		be.LineWidth(float32(max(width, 1)))
	}
}

// --------------------------------------------------------------------------
// Color
// --------------------------------------------------------------------------

func (x *executor) Color(index gltypes.Colorindex) {
	x.c.engine.SetColor(x.c.colormap.Lookup(index))
}

func (x *executor) RGBcolor(r, g, b int16) {
	x.c.engine.SetColor(gltypes.RGBA8{
		gltypes.ClampInt(int32(r)), gltypes.ClampInt(int32(g)), gltypes.ClampInt(int32(b)), 255,
	})
}

func (x *executor) Cpack(packed uint32) {
	x.c.engine.SetColor(gltypes.PackRGBA(packed))
}

func (x *executor) C3f(c [3]float32) { x.C4f([4]float32{c[0], c[1], c[2], 1}) }

func (x *executor) C4f(c [4]float32) {
	x.c.engine.SetColor(gltypes.RGBA8{
		gltypes.ClampByte(c[0]), gltypes.ClampByte(c[1]), gltypes.ClampByte(c[2]), gltypes.ClampByte(c[3]),
	})
}

func (x *executor) C3i(c [3]int32) { x.C4i([4]int32{c[0], c[1], c[2], 255}) }

func (x *executor) C4i(c [4]int32) {
	x.c.engine.SetColor(gltypes.RGBA8{
		gltypes.ClampInt(c[0]), gltypes.ClampInt(c[1]), gltypes.ClampInt(c[2]), gltypes.ClampInt(c[3]),
	})
}

func (x *executor) C3s(c [3]int16) { x.C4i([4]int32{int32(c[0]), int32(c[1]), int32(c[2]), 255}) }

func (x *executor) C4s(c [4]int16) {
	x.C4i([4]int32{int32(c[0]), int32(c[1]), int32(c[2]), int32(c[3])})
}

// --------------------------------------------------------------------------
// Transformations
// --------------------------------------------------------------------------

func (x *executor) Pushmatrix() {
	if be := x.backend(); be != nil {
		be.PushMatrix()
	}
}

func (x *executor) Popmatrix() {
	if be := x.backend(); be != nil {
		be.PopMatrix()
	}
}

func (x *executor) Loadmatrix(m gltypes.Matrix) {
	if be := x.backend(); be != nil {
		be.LoadMatrix(m)
	}
}

func (x *executor) Multmatrix(m gltypes.Matrix) {
	if be := x.backend(); be != nil {
		be.MultMatrix(m)
	}
}

func (x *executor) Translate(tx, ty, tz float32) { x.Multmatrix(gltypes.Translate(tx, ty, tz)) }

func (x *executor) Rot(angle float32, axis gltypes.Axis) {
	x.Multmatrix(gltypes.Rotate(angle*math.Pi/180, axis))
}

func (x *executor) Rotate(angle gltypes.Angle, axis gltypes.Axis) {
	x.Multmatrix(gltypes.Rotate(angle.Radians(), axis))
}

func (x *executor) Scale(sx, sy, sz float32) { x.Multmatrix(gltypes.Scale(sx, sy, sz)) }

// project replaces the projection matrix and returns to the model view
// stack.
func (x *executor) project(m gltypes.Matrix) {
	be := x.backend()
	if be == nil {
		return
	}
	be.MatrixMode(backend.Projection)
	be.LoadMatrix(m)
	be.MatrixMode(backend.ModelView)
}

func (x *executor) Ortho(left, right, bottom, top, near, far float32) {
	x.project(gltypes.Ortho(left, right, bottom, top, near, far))
}

func (x *executor) Ortho2(left, right, bottom, top float32) {
	x.project(gltypes.Ortho2(left, right, bottom, top))
}

func (x *executor) Perspective(fovy gltypes.Angle, aspect, near, far float32) {
	x.project(gltypes.Perspective(fovy, aspect, near, far))
}

func (x *executor) Window(left, right, bottom, top, near, far float32) {
	x.project(gltypes.Window(left, right, bottom, top, near, far))
}

func (x *executor) Lookat(vx, vy, vz, px, py, pz float32, twist gltypes.Angle) {
	x.Multmatrix(gltypes.Lookat(vx, vy, vz, px, py, pz, twist))
}

func (x *executor) Polarview(dist float32, azim, inc, twist gltypes.Angle) {
	x.Multmatrix(gltypes.Polarview(dist, azim, inc, twist))
}

// --------------------------------------------------------------------------
// Primitive brackets
// --------------------------------------------------------------------------

func (x *executor) Bgnpoint()      { x.c.engine.Begin(backend.Points) }
func (x *executor) Endpoint()      { x.c.engine.End() }
func (x *executor) Bgnline()       { x.c.engine.Begin(backend.LineStrip) }
func (x *executor) Endline()       { x.c.engine.End() }
func (x *executor) Bgnclosedline() { x.c.engine.Begin(backend.LineLoop) }
func (x *executor) Endclosedline() { x.c.engine.End() }
func (x *executor) Bgnpolygon()    { x.c.engine.Begin(backend.Polygon) }
func (x *executor) Endpolygon()    { x.c.engine.End() }
func (x *executor) Bgntmesh()      { x.c.engine.Begin(backend.TriangleStrip) }
func (x *executor) Endtmesh()      { x.c.engine.End() }
func (x *executor) Swaptmesh()     { x.c.engine.Swap() }
func (x *executor) Bgnqstrip()     { x.c.engine.Begin(backend.QuadStrip) }
func (x *executor) Endqstrip()     { x.c.engine.End() }

// --------------------------------------------------------------------------
// Vertices
// --------------------------------------------------------------------------

func (x *executor) vertex(px, py, pz float32) {
	x.c.engine.Vertex(gltypes.Vec4{px, py, pz, 1})
}

func (x *executor) V2f(v [2]float32) { x.vertex(v[0], v[1], 0) }
func (x *executor) V3f(v [3]float32) { x.vertex(v[0], v[1], v[2]) }
func (x *executor) V4f(v [4]float32) { x.c.engine.Vertex(v) }
func (x *executor) V2i(v [2]int32)   { x.vertex(float32(v[0]), float32(v[1]), 0) }
func (x *executor) V3i(v [3]int32)   { x.vertex(float32(v[0]), float32(v[1]), float32(v[2])) }
func (x *executor) V2s(v [2]int16)   { x.vertex(float32(v[0]), float32(v[1]), 0) }
func (x *executor) V3s(v [3]int16)   { x.vertex(float32(v[0]), float32(v[1]), float32(v[2])) }
func (x *executor) V2d(v [2]float64) { x.vertex(float32(v[0]), float32(v[1]), 0) }
func (x *executor) V3d(v [3]float64) { x.vertex(float32(v[0]), float32(v[1]), float32(v[2])) }

func (x *executor) N3f(n [3]float32) { x.c.engine.SetNormal(n) }

func (x *executor) T2f(t [2]float32) { x.c.engine.SetTexCoord(gltypes.Vec4{t[0], t[1], 0, 1}) }
func (x *executor) T3f(t [3]float32) { x.c.engine.SetTexCoord(gltypes.Vec4{t[0], t[1], t[2], 1}) }
func (x *executor) T4f(t [4]float32) { x.c.engine.SetTexCoord(t) }

// --------------------------------------------------------------------------
// Shapes
// --------------------------------------------------------------------------

// shape submits pts as one primitive through the vertex engine.
func (x *executor) shape(mode backend.Mode, pts ...gltypes.Vec3) {
	e := x.c.engine
	if e.Backend() == nil || e.InPrimitive() {
		return
	}
	e.Begin(mode)
	for _, p := range pts {
		e.Vertex(gltypes.Vec4{p[0], p[1], p[2], 1})
	}
	e.End()
}

func (x *executor) Move(px, py, pz float32) { x.pos = gltypes.Vec3{px, py, pz} }

func (x *executor) Draw(px, py, pz float32) {
	to := gltypes.Vec3{px, py, pz}
	x.shape(backend.LineStrip, x.pos, to)
	x.pos = to
}

func (x *executor) Pnt(px, py, pz float32) {
	x.shape(backend.Points, gltypes.Vec3{px, py, pz})
	x.pos = gltypes.Vec3{px, py, pz}
}

func rectPoints(x1, y1, x2, y2 float32) []gltypes.Vec3 {
	return []gltypes.Vec3{{x1, y1, 0}, {x2, y1, 0}, {x2, y2, 0}, {x1, y2, 0}}
}

func (x *executor) Rect(x1, y1, x2, y2 float32) {
	x.shape(backend.LineLoop, rectPoints(x1, y1, x2, y2)...)
}

func (x *executor) Rectf(x1, y1, x2, y2 float32) {
	x.shape(backend.Polygon, rectPoints(x1, y1, x2, y2)...)
}

// arcPoints returns points on a circle from start to end, inclusive.
func arcPoints(cx, cy, radius float32, start, end gltypes.Angle) []gltypes.Vec3 {
	span := int(end) - int(start)
	for span <= 0 {
		span += 3600
	}
	n := max(2, (circleSegments*span+3599)/3600)
	pts := make([]gltypes.Vec3, n+1)
	for i := range pts {
		a := (float32(start) + float32(span)*float32(i)/float32(n)) / 10 * math.Pi / 180
		pts[i] = gltypes.Vec3{cx + radius*math32.Cos(a), cy + radius*math32.Sin(a), 0}
	}
	return pts
}

// circlePoints returns the corners of the circle polygon without repeating
// the first point.
func circlePoints(cx, cy, radius float32) []gltypes.Vec3 {
	pts := arcPoints(cx, cy, radius, 0, 3600)
	return pts[:len(pts)-1]
}

func (x *executor) Circ(cx, cy, radius float32) {
	x.shape(backend.LineLoop, circlePoints(cx, cy, radius)...)
}

func (x *executor) Circf(cx, cy, radius float32) {
	x.shape(backend.Polygon, circlePoints(cx, cy, radius)...)
}

func (x *executor) Arc(cx, cy, radius float32, start, end gltypes.Angle) {
	x.shape(backend.LineStrip, arcPoints(cx, cy, radius, start, end)...)
}

func (x *executor) Arcf(cx, cy, radius float32, start, end gltypes.Angle) {
	pts := append([]gltypes.Vec3{{cx, cy, 0}}, arcPoints(cx, cy, radius, start, end)...)
	x.shape(backend.TriangleFan, pts...)
}

func (x *executor) Poly(points [][3]float32) { x.shape(backend.LineLoop, points...) }

func (x *executor) Polf(points [][3]float32) { x.shape(backend.Polygon, points...) }

func (x *executor) Pmv(px, py, pz float32) {
	x.c.engine.Begin(backend.Polygon)
	x.vertex(px, py, pz)
}

func (x *executor) Pdr(px, py, pz float32) { x.vertex(px, py, pz) }

func (x *executor) Pclos() { x.c.engine.End() }

// --------------------------------------------------------------------------
// Curves and patches
// --------------------------------------------------------------------------

func (x *executor) Curvebasis(basis int16) { x.c.curves.Basis = basis }

func (x *executor) Curveprecision(segments int16) {
	if segments > 0 {
		x.c.curves.Segments = int(segments)
	}
}

// basis returns the curve basis for id and logs undefined ones.
func (x *executor) basis(id int16) (gltypes.Matrix, bool) {
	m, ok := x.c.bases.Lookup(id)
	if !ok {
		x.c.log.Debug("irisgl: undefined basis", "basis", id)
	}
	return m, ok
}

// strips draws each polyline as a line strip.
func (x *executor) strips(lines ...[]gltypes.Vec4) {
	e := x.c.engine
	if e.Backend() == nil || e.InPrimitive() {
		return
	}
	for _, l := range lines {
		e.Begin(backend.LineStrip)
		for _, p := range l {
			e.Vertex(p)
		}
		e.End()
	}
}

func (x *executor) Crv(geom [4][3]float32) {
	if m, ok := x.basis(x.c.curves.Basis); ok {
		x.strips(curve.Curve(m, x.c.curves.Segments, geom))
	}
}

func (x *executor) Crvn(geom [][3]float32) {
	if m, ok := x.basis(x.c.curves.Basis); ok {
		x.strips(curve.Curves(m, x.c.curves.Segments, geom)...)
	}
}

func (x *executor) Rcrv(geom [4][4]float32) {
	if m, ok := x.basis(x.c.curves.Basis); ok {
		x.strips(curve.Rational(m, x.c.curves.Segments, geom))
	}
}

func (x *executor) Patchbasis(u, v int16) {
	x.c.curves.UBasis, x.c.curves.VBasis = u, v
}

func (x *executor) Patchprecision(u, v int16) {
	if u > 0 && v > 0 {
		x.c.curves.USegments, x.c.curves.VSegments = int(u), int(v)
	}
}

func (x *executor) Patchcurves(u, v int16) {
	if u > 0 && v > 0 {
		x.c.curves.UCurves, x.c.curves.VCurves = int(u), int(v)
	}
}

func (x *executor) Patch(gx, gy, gz gltypes.Matrix) {
	s := x.c.curves
	ub, ok := x.basis(s.UBasis)
	if !ok {
		return
	}
	vb, ok := x.basis(s.VBasis)
	if !ok {
		return
	}
	p := curve.Patch{
		U: ub, V: vb,
		USegments: s.USegments, VSegments: s.VSegments,
		UCurves: s.UCurves, VCurves: s.VCurves,
	}
	x.strips(p.Lines(gx, gy, gz)...)
}

// --------------------------------------------------------------------------
// Lighting and texturing
// --------------------------------------------------------------------------

func (x *executor) Lmbind(target, index int16) {
	be := x.backend()
	if be == nil {
		return
	}
	switch {
	case target == Material:
		x.c.engine.SetLighting(index != 0)
		be.Light(backend.Material, int(index), x.c.lmdefs[lmKey{DefMaterial, index}])
	case target >= Light0 && target < Light0+maxLights:
		var props []float32
		if index != 0 {
			props = x.c.lmdefs[lmKey{DefLight, index}]
		}
		be.Light(backend.Light, int(target-Light0), props)
	case target == Lmodel:
		be.Light(backend.LightModel, int(index), x.c.lmdefs[lmKey{DefLmodel, index}])
	default:
		x.c.log.Debug("irisgl: lmbind target ignored", "target", target)
	}
}

func (x *executor) Lmcolor(mode int32) {
	be := x.backend()
	if be == nil {
		return
	}
	if mode < LmcColor || mode > LmcNull {
		x.c.log.Debug("irisgl: lmcolor mode ignored", "mode", mode)
		return
	}
	be.ColorMaterial(backend.ColorMaterial(mode))
}

func (x *executor) Texbind(target, index int16) {
	be := x.backend()
	if be == nil || target != TxTexture0 {
		return
	}
	if index == 0 {
		be.BindTexture(nil)
		return
	}
	tex, ok := x.c.texdefs[index]
	if !ok {
		x.c.log.Debug("irisgl: undefined texture", "index", index)
		return
	}
	be.BindTexture(tex)
}

func (x *executor) Tevbind(target, index int16) {
	be := x.backend()
	if be == nil || target != TvEnv0 {
		return
	}
	if index == 0 {
		be.TexEnv(nil)
		return
	}
	props, ok := x.c.tevdefs[index]
	if !ok {
		x.c.log.Debug("irisgl: undefined texture environment", "index", index)
		return
	}
	be.TexEnv(props)
}

// --------------------------------------------------------------------------
// Text
// --------------------------------------------------------------------------

func (x *executor) Cmov(px, py, pz float32) {
	if be := x.backend(); be != nil {
		be.RasterPos(px, py, pz)
	}
}

// Charstr draws a Latin-1 byte string.
func (x *executor) Charstr(text string) {
	be := x.backend()
	if be == nil {
		return
	}
	s, err := charmap.ISO8859_1.NewDecoder().String(text)
	if err != nil {
		x.c.log.Debug("irisgl: charstr decode failed", "err", err)
		return
	}
	be.DrawString(s, x.font)
}

func (x *executor) Font(id int16) { x.font = int(id) }

// --------------------------------------------------------------------------
// Picking
// --------------------------------------------------------------------------

func (x *executor) Initnames() {
	if be := x.backend(); be != nil {
		be.InitNames()
	}
}

func (x *executor) Loadname(name int16) {
	if be := x.backend(); be != nil {
		be.LoadName(int32(name))
	}
}

func (x *executor) Pushname(name int16) {
	if be := x.backend(); be != nil {
		be.PushName(int32(name))
	}
}

func (x *executor) Popname() {
	if be := x.backend(); be != nil {
		be.PopName()
	}
}

// --------------------------------------------------------------------------
// Objects
// --------------------------------------------------------------------------

// Callobj replays an object. Objects may call other objects; a cycle
// recurses until the stack is exhausted.
func (x *executor) Callobj(id gltypes.ObjectID) {
	if x.backend() == nil {
		return
	}
	obj, ok := x.c.objects.Get(id)
	if !ok {
		x.c.log.Debug("irisgl: callobj of missing object", "id", id)
		return
	}
	for cmd := range obj.Commands() {
		cmd.Replay(x)
	}
}
