package object

import "github.com/gogpu/irisgl/gltypes"

// Dispatcher receives every recordable operation.
//
// There are two implementations in practice: one that executes each call
// against a rendering backend, and one that appends it to the open object.
// The active one is swapped when an object is opened or closed, so callers
// never need to know whether they are drawing or recording.
//
// Command.Replay calls back into a Dispatcher, which keeps the set of
// commands and the set of Dispatcher methods in lockstep at compile time.
type Dispatcher interface {
	// Buffers and modes

	// Clear clears the color buffer to the current color.
	Clear()
	// Zclear clears the depth buffer.
	Zclear()
	// Czclear clears the color buffer to a packed color and the depth buffer to a value.
	Czclear(cval uint32, zval int32)
	// Zbuffer switches depth testing.
	Zbuffer(on bool)
	// Backface switches back face removal.
	Backface(on bool)
	// Shademodel selects flat or Gouraud shading.
	Shademodel(mode int32)
	// Linewidth sets the line width in pixels.
	Linewidth(width int16)

	// Color

	// Color sets the current color from the colormap.
	Color(index gltypes.Colorindex)
	// RGBcolor sets the current color from 0-255 components.
	RGBcolor(r, g, b int16)
	// Cpack sets the current color from a packed 0xAABBGGRR value.
	Cpack(packed uint32)
	// C3f sets the current color from float components.
	C3f(c [3]float32)
	// C4f sets the current color and alpha from float components.
	C4f(c [4]float32)
	// C3i sets the current color from integer components.
	C3i(c [3]int32)
	// C4i sets the current color and alpha from integer components.
	C4i(c [4]int32)
	// C3s sets the current color from short components.
	C3s(c [3]int16)
	// C4s sets the current color and alpha from short components.
	C4s(c [4]int16)

	// Transformations

	// Pushmatrix duplicates the top of the matrix stack.
	Pushmatrix()
	// Popmatrix discards the top of the matrix stack.
	Popmatrix()
	// Loadmatrix replaces the top of the matrix stack.
	Loadmatrix(m gltypes.Matrix)
	// Multmatrix premultiplies the top of the matrix stack.
	Multmatrix(m gltypes.Matrix)
	// Translate translates the current matrix.
	Translate(x, y, z float32)
	// Rot rotates by degrees about an axis.
	Rot(angle float32, axis gltypes.Axis)
	// Rotate rotates by tenths of degrees about an axis.
	Rotate(angle gltypes.Angle, axis gltypes.Axis)
	// Scale scales the current matrix.
	Scale(x, y, z float32)
	// Ortho sets a parallel projection.
	Ortho(left, right, bottom, top, near, far float32)
	// Ortho2 sets a two dimensional parallel projection.
	Ortho2(left, right, bottom, top float32)
	// Perspective sets a perspective projection.
	Perspective(fovy gltypes.Angle, aspect, near, far float32)
	// Window sets a perspective projection from a frustum.
	Window(left, right, bottom, top, near, far float32)
	// Lookat places the viewer at a point looking at another.
	Lookat(vx, vy, vz, px, py, pz float32, twist gltypes.Angle)
	// Polarview places the viewer in polar coordinates.
	Polarview(dist float32, azim, inc, twist gltypes.Angle)

	// Primitive brackets

	// Bgnpoint starts a sequence of points.
	Bgnpoint()
	// Endpoint ends a sequence of points.
	Endpoint()
	// Bgnline starts a polyline.
	Bgnline()
	// Endline ends a polyline.
	Endline()
	// Bgnclosedline starts a closed polyline.
	Bgnclosedline()
	// Endclosedline ends a closed polyline.
	Endclosedline()
	// Bgnpolygon starts a filled polygon.
	Bgnpolygon()
	// Endpolygon ends a filled polygon.
	Endpolygon()
	// Bgntmesh starts a triangle mesh.
	Bgntmesh()
	// Endtmesh ends a triangle mesh.
	Endtmesh()
	// Swaptmesh exchanges the two most recent triangle mesh vertices.
	Swaptmesh()
	// Bgnqstrip starts a quadrilateral strip.
	Bgnqstrip()
	// Endqstrip ends a quadrilateral strip.
	Endqstrip()

	// Vertices

	// V2f submits a two dimensional vertex.
	V2f(v [2]float32)
	// V3f submits a three dimensional vertex.
	V3f(v [3]float32)
	// V4f submits a homogeneous vertex.
	V4f(v [4]float32)
	// V2i submits a two dimensional integer vertex.
	V2i(v [2]int32)
	// V3i submits a three dimensional integer vertex.
	V3i(v [3]int32)
	// V2s submits a two dimensional short vertex.
	V2s(v [2]int16)
	// V3s submits a three dimensional short vertex.
	V3s(v [3]int16)
	// V2d submits a two dimensional double vertex.
	V2d(v [2]float64)
	// V3d submits a three dimensional double vertex.
	V3d(v [3]float64)
	// N3f sets the current normal.
	N3f(n [3]float32)
	// T2f sets a two component texture coordinate.
	T2f(t [2]float32)
	// T3f sets a three component texture coordinate.
	T3f(t [3]float32)
	// T4f sets a homogeneous texture coordinate.
	T4f(t [4]float32)

	// Shapes

	// Move moves the current graphics position.
	Move(x, y, z float32)
	// Draw draws a line from the current graphics position.
	Draw(x, y, z float32)
	// Pnt draws a single point.
	Pnt(x, y, z float32)
	// Rect outlines a rectangle.
	Rect(x1, y1, x2, y2 float32)
	// Rectf fills a rectangle.
	Rectf(x1, y1, x2, y2 float32)
	// Circ outlines a circle.
	Circ(x, y, radius float32)
	// Circf fills a circle.
	Circf(x, y, radius float32)
	// Arc outlines a circular arc.
	Arc(x, y, radius float32, start, end gltypes.Angle)
	// Arcf fills a circular sector.
	Arcf(x, y, radius float32, start, end gltypes.Angle)
	// Poly outlines a polygon.
	Poly(points [][3]float32)
	// Polf fills a polygon.
	Polf(points [][3]float32)
	// Pmv starts a filled polygon at a point.
	Pmv(x, y, z float32)
	// Pdr adds a point to the polygon started by Pmv.
	Pdr(x, y, z float32)
	// Pclos closes and fills the polygon started by Pmv.
	Pclos()

	// Curves and patches

	// Curvebasis selects the curve basis.
	Curvebasis(basis int16)
	// Curveprecision sets the line segments drawn per curve segment.
	Curveprecision(segments int16)
	// Crv draws one curve segment.
	Crv(geom [4][3]float32)
	// Crvn draws a series of curve segments.
	Crvn(geom [][3]float32)
	// Rcrv draws one rational curve segment.
	Rcrv(geom [4][4]float32)
	// Patchbasis selects the patch bases.
	Patchbasis(u, v int16)
	// Patchprecision sets the line segments per patch curve.
	Patchprecision(u, v int16)
	// Patchcurves sets the number of curves drawn in each direction.
	Patchcurves(u, v int16)
	// Patch draws a surface patch.
	Patch(x, y, z gltypes.Matrix)

	// Lighting and texturing

	// Lmbind binds a lighting definition.
	Lmbind(target, index int16)
	// Lmcolor selects the material property tracking the color.
	Lmcolor(mode int32)
	// Texbind binds a texture definition.
	Texbind(target, index int16)
	// Tevbind binds a texture environment definition.
	Tevbind(target, index int16)

	// Text

	// Cmov moves the character position.
	Cmov(x, y, z float32)
	// Charstr draws a character string.
	Charstr(text string)
	// Font selects a font.
	Font(id int16)

	// Picking

	// Initnames clears the name stack.
	Initnames()
	// Loadname replaces the top of the name stack.
	Loadname(name int16)
	// Pushname pushes a name.
	Pushname(name int16)
	// Popname pops a name.
	Popname()

	// Objects

	// Callobj invokes another object.
	Callobj(id gltypes.ObjectID)
}
