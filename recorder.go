package irisgl

import (
	"slices"

	"github.com/gogpu/irisgl/gltypes"
	"github.com/gogpu/irisgl/object"
)

// recorder is the dispatch table used while an object is open. Each call
// becomes a command appended at the object's edit cursor. Point lists are
// copied so the object owns them.
type recorder struct {
	c *Context
}

func (rc *recorder) record(cmd object.Command) {
	rc.c.rejected(cmd.Op().String(), rc.c.objects.Append(cmd))
}

func (rc *recorder) Clear() { rc.record(object.ClearCommand{}) }
func (rc *recorder) Zclear() { rc.record(object.ZclearCommand{}) }
func (rc *recorder) Czclear(cval uint32, zval int32) { rc.record(object.CzclearCommand{Cval: cval, Zval: zval}) }
func (rc *recorder) Zbuffer(on bool) { rc.record(object.ZbufferCommand{On: on}) }
func (rc *recorder) Backface(on bool) { rc.record(object.BackfaceCommand{On: on}) }
func (rc *recorder) Shademodel(mode int32) { rc.record(object.ShademodelCommand{Mode: mode}) }
func (rc *recorder) Linewidth(width int16) { rc.record(object.LinewidthCommand{Width: width}) }
func (rc *recorder) Color(index gltypes.Colorindex) { rc.record(object.ColorCommand{Index: index}) }
func (rc *recorder) RGBcolor(r, g, b int16) { rc.record(object.RGBcolorCommand{R: r, G: g, B: b}) }
func (rc *recorder) Cpack(packed uint32) { rc.record(object.CpackCommand{Packed: packed}) }
func (rc *recorder) C3f(c [3]float32) { rc.record(object.C3fCommand{C: c}) }
func (rc *recorder) C4f(c [4]float32) { rc.record(object.C4fCommand{C: c}) }
func (rc *recorder) C3i(c [3]int32) { rc.record(object.C3iCommand{C: c}) }
func (rc *recorder) C4i(c [4]int32) { rc.record(object.C4iCommand{C: c}) }
func (rc *recorder) C3s(c [3]int16) { rc.record(object.C3sCommand{C: c}) }
func (rc *recorder) C4s(c [4]int16) { rc.record(object.C4sCommand{C: c}) }
func (rc *recorder) Pushmatrix() { rc.record(object.PushmatrixCommand{}) }
func (rc *recorder) Popmatrix() { rc.record(object.PopmatrixCommand{}) }
func (rc *recorder) Loadmatrix(m gltypes.Matrix) { rc.record(object.LoadmatrixCommand{M: m}) }
func (rc *recorder) Multmatrix(m gltypes.Matrix) { rc.record(object.MultmatrixCommand{M: m}) }
func (rc *recorder) Translate(x, y, z float32) { rc.record(object.TranslateCommand{X: x, Y: y, Z: z}) }
func (rc *recorder) Rot(angle float32, axis gltypes.Axis) { rc.record(object.RotCommand{Angle: angle, Axis: axis}) }
func (rc *recorder) Rotate(angle gltypes.Angle, axis gltypes.Axis) { rc.record(object.RotateCommand{Angle: angle, Axis: axis}) }
func (rc *recorder) Scale(x, y, z float32) { rc.record(object.ScaleCommand{X: x, Y: y, Z: z}) }
func (rc *recorder) Ortho(left, right, bottom, top, near, far float32) { rc.record(object.OrthoCommand{Left: left, Right: right, Bottom: bottom, Top: top, Near: near, Far: far}) }
func (rc *recorder) Ortho2(left, right, bottom, top float32) { rc.record(object.Ortho2Command{Left: left, Right: right, Bottom: bottom, Top: top}) }
func (rc *recorder) Perspective(fovy gltypes.Angle, aspect, near, far float32) { rc.record(object.PerspectiveCommand{Fovy: fovy, Aspect: aspect, Near: near, Far: far}) }
func (rc *recorder) Window(left, right, bottom, top, near, far float32) { rc.record(object.WindowCommand{Left: left, Right: right, Bottom: bottom, Top: top, Near: near, Far: far}) }
func (rc *recorder) Lookat(vx, vy, vz, px, py, pz float32, twist gltypes.Angle) { rc.record(object.LookatCommand{Vx: vx, Vy: vy, Vz: vz, Px: px, Py: py, Pz: pz, Twist: twist}) }
func (rc *recorder) Polarview(dist float32, azim, inc, twist gltypes.Angle) { rc.record(object.PolarviewCommand{Dist: dist, Azim: azim, Inc: inc, Twist: twist}) }
func (rc *recorder) Bgnpoint() { rc.record(object.BgnpointCommand{}) }
func (rc *recorder) Endpoint() { rc.record(object.EndpointCommand{}) }
func (rc *recorder) Bgnline() { rc.record(object.BgnlineCommand{}) }
func (rc *recorder) Endline() { rc.record(object.EndlineCommand{}) }
func (rc *recorder) Bgnclosedline() { rc.record(object.BgnclosedlineCommand{}) }
func (rc *recorder) Endclosedline() { rc.record(object.EndclosedlineCommand{}) }
func (rc *recorder) Bgnpolygon() { rc.record(object.BgnpolygonCommand{}) }
func (rc *recorder) Endpolygon() { rc.record(object.EndpolygonCommand{}) }
func (rc *recorder) Bgntmesh() { rc.record(object.BgntmeshCommand{}) }
func (rc *recorder) Endtmesh() { rc.record(object.EndtmeshCommand{}) }
func (rc *recorder) Swaptmesh() { rc.record(object.SwaptmeshCommand{}) }
func (rc *recorder) Bgnqstrip() { rc.record(object.BgnqstripCommand{}) }
func (rc *recorder) Endqstrip() { rc.record(object.EndqstripCommand{}) }
func (rc *recorder) V2f(v [2]float32) { rc.record(object.V2fCommand{V: v}) }
func (rc *recorder) V3f(v [3]float32) { rc.record(object.V3fCommand{V: v}) }
func (rc *recorder) V4f(v [4]float32) { rc.record(object.V4fCommand{V: v}) }
func (rc *recorder) V2i(v [2]int32) { rc.record(object.V2iCommand{V: v}) }
func (rc *recorder) V3i(v [3]int32) { rc.record(object.V3iCommand{V: v}) }
func (rc *recorder) V2s(v [2]int16) { rc.record(object.V2sCommand{V: v}) }
func (rc *recorder) V3s(v [3]int16) { rc.record(object.V3sCommand{V: v}) }
func (rc *recorder) V2d(v [2]float64) { rc.record(object.V2dCommand{V: v}) }
func (rc *recorder) V3d(v [3]float64) { rc.record(object.V3dCommand{V: v}) }
func (rc *recorder) N3f(n [3]float32) { rc.record(object.N3fCommand{N: n}) }
func (rc *recorder) T2f(t [2]float32) { rc.record(object.T2fCommand{T: t}) }
func (rc *recorder) T3f(t [3]float32) { rc.record(object.T3fCommand{T: t}) }
func (rc *recorder) T4f(t [4]float32) { rc.record(object.T4fCommand{T: t}) }
func (rc *recorder) Move(x, y, z float32) { rc.record(object.MoveCommand{X: x, Y: y, Z: z}) }
func (rc *recorder) Draw(x, y, z float32) { rc.record(object.DrawCommand{X: x, Y: y, Z: z}) }
func (rc *recorder) Pnt(x, y, z float32) { rc.record(object.PntCommand{X: x, Y: y, Z: z}) }
func (rc *recorder) Rect(x1, y1, x2, y2 float32) { rc.record(object.RectCommand{X1: x1, Y1: y1, X2: x2, Y2: y2}) }
func (rc *recorder) Rectf(x1, y1, x2, y2 float32) { rc.record(object.RectfCommand{X1: x1, Y1: y1, X2: x2, Y2: y2}) }
func (rc *recorder) Circ(x, y, radius float32) { rc.record(object.CircCommand{X: x, Y: y, Radius: radius}) }
func (rc *recorder) Circf(x, y, radius float32) { rc.record(object.CircfCommand{X: x, Y: y, Radius: radius}) }
func (rc *recorder) Arc(x, y, radius float32, start, end gltypes.Angle) { rc.record(object.ArcCommand{X: x, Y: y, Radius: radius, Start: start, End: end}) }
func (rc *recorder) Arcf(x, y, radius float32, start, end gltypes.Angle) { rc.record(object.ArcfCommand{X: x, Y: y, Radius: radius, Start: start, End: end}) }
func (rc *recorder) Poly(points [][3]float32) { rc.record(object.PolyCommand{Points: slices.Clone(points)}) }
func (rc *recorder) Polf(points [][3]float32) { rc.record(object.PolfCommand{Points: slices.Clone(points)}) }
func (rc *recorder) Pmv(x, y, z float32) { rc.record(object.PmvCommand{X: x, Y: y, Z: z}) }
func (rc *recorder) Pdr(x, y, z float32) { rc.record(object.PdrCommand{X: x, Y: y, Z: z}) }
func (rc *recorder) Pclos() { rc.record(object.PclosCommand{}) }
func (rc *recorder) Curvebasis(basis int16) { rc.record(object.CurvebasisCommand{Basis: basis}) }
func (rc *recorder) Curveprecision(segments int16) { rc.record(object.CurveprecisionCommand{Segments: segments}) }
func (rc *recorder) Crv(geom [4][3]float32) { rc.record(object.CrvCommand{Geom: geom}) }
func (rc *recorder) Crvn(geom [][3]float32) { rc.record(object.CrvnCommand{Geom: slices.Clone(geom)}) }
func (rc *recorder) Rcrv(geom [4][4]float32) { rc.record(object.RcrvCommand{Geom: geom}) }
func (rc *recorder) Patchbasis(u, v int16) { rc.record(object.PatchbasisCommand{U: u, V: v}) }
func (rc *recorder) Patchprecision(u, v int16) { rc.record(object.PatchprecisionCommand{U: u, V: v}) }
func (rc *recorder) Patchcurves(u, v int16) { rc.record(object.PatchcurvesCommand{U: u, V: v}) }
func (rc *recorder) Patch(x, y, z gltypes.Matrix) { rc.record(object.PatchCommand{X: x, Y: y, Z: z}) }
func (rc *recorder) Lmbind(target, index int16) { rc.record(object.LmbindCommand{Target: target, Index: index}) }
func (rc *recorder) Lmcolor(mode int32) { rc.record(object.LmcolorCommand{Mode: mode}) }
func (rc *recorder) Texbind(target, index int16) { rc.record(object.TexbindCommand{Target: target, Index: index}) }
func (rc *recorder) Tevbind(target, index int16) { rc.record(object.TevbindCommand{Target: target, Index: index}) }
func (rc *recorder) Cmov(x, y, z float32) { rc.record(object.CmovCommand{X: x, Y: y, Z: z}) }
func (rc *recorder) Charstr(text string) { rc.record(object.CharstrCommand{Text: text}) }
func (rc *recorder) Font(id int16) { rc.record(object.FontCommand{ID: id}) }
func (rc *recorder) Initnames() { rc.record(object.InitnamesCommand{}) }
func (rc *recorder) Loadname(name int16) { rc.record(object.LoadnameCommand{Name: name}) }
func (rc *recorder) Pushname(name int16) { rc.record(object.PushnameCommand{Name: name}) }
func (rc *recorder) Popname() { rc.record(object.PopnameCommand{}) }
func (rc *recorder) Callobj(id gltypes.ObjectID) { rc.record(object.CallobjCommand{ID: id}) }

var _ object.Dispatcher = (*recorder)(nil)
