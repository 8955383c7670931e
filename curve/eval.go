package curve

import "github.com/gogpu/irisgl/gltypes"

// State is the per-context curve and patch drawing state.
type State struct {
	// Basis is the id of the curve basis.
	Basis int16
	// Segments is the number of line segments per curve segment.
	Segments int

	UBasis, VBasis       int16
	USegments, VSegments int
	UCurves, VCurves     int
}

// DefaultState returns the state of a new context.
func DefaultState() State {
	return State{
		Segments:  10,
		USegments: 10,
		VSegments: 10,
		UCurves:   4,
		VCurves:   4,
	}
}

// bernstein returns the cubic Bernstein weights at t.
func bernstein(t float32) [4]float32 {
	s := 1 - t
	return [4]float32{s * s * s, 3 * t * s * s, 3 * t * t * s, t * t * t}
}

func evalBezier(q gltypes.Matrix, t float32) gltypes.Vec4 {
	b := bernstein(t)
	var p gltypes.Vec4
	for i := range 4 {
		for c := range 4 {
			p[c] += b[i] * q[i][c]
		}
	}
	return p
}

func segment(basis gltypes.Matrix, segments int, geom gltypes.Matrix, rational bool) []gltypes.Vec4 {
	segments = max(segments, 1)
	q := ToBezier(basis, geom)
	pts := make([]gltypes.Vec4, segments+1)
	for i := range pts {
		p := evalBezier(q, float32(i)/float32(segments))
		if !rational {
			p[3] = 1
		}
		pts[i] = p
	}
	return pts
}

func lift(p [3]float32) [4]float32 { return [4]float32{p[0], p[1], p[2], 1} }

// Curve evaluates one cubic segment into segments+1 points.
func Curve(basis gltypes.Matrix, segments int, geom [4][3]float32) []gltypes.Vec4 {
	var g gltypes.Matrix
	for i, p := range geom {
		g[i] = lift(p)
	}
	return segment(basis, segments, g, false)
}

// Rational evaluates one rational cubic segment. Control points are
// homogeneous and the result keeps its w component.
func Rational(basis gltypes.Matrix, segments int, geom [4][4]float32) []gltypes.Vec4 {
	return segment(basis, segments, gltypes.Matrix(geom), true)
}

// Curves evaluates a run of control points. Every window of four
// consecutive points is one segment, so n points give n-3 polylines.
func Curves(basis gltypes.Matrix, segments int, points [][3]float32) [][]gltypes.Vec4 {
	if len(points) < 4 {
		return nil
	}
	out := make([][]gltypes.Vec4, 0, len(points)-3)
	for i := 0; i+4 <= len(points); i++ {
		out = append(out, Curve(basis, segments, [4][3]float32(points[i:i+4])))
	}
	return out
}

// Patch describes how a bicubic patch is drawn as a wire mesh.
type Patch struct {
	U, V gltypes.Matrix
	// USegments and VSegments are line segments per curve in each direction.
	USegments, VSegments int
	// UCurves and VCurves are the number of curves of constant u and v.
	UCurves, VCurves int
}

// Lines evaluates the patch with the given coordinate geometry matrices.
// Curves of constant u come first, each with VSegments+1 points, followed by
// curves of constant v with USegments+1 points.
func (p Patch) Lines(gx, gy, gz gltypes.Matrix) [][]gltypes.Vec4 {
	toBez := func(g gltypes.Matrix) gltypes.Matrix {
		return bezierInverse.Mul(p.U).Mul(g).Mul(p.V.Transpose()).Mul(bezierInverse.Transpose())
	}
	q := [3]gltypes.Matrix{toBez(gx), toBez(gy), toBez(gz)}

	at := func(u, v float32) gltypes.Vec4 {
		bu, bv := bernstein(u), bernstein(v)
		pt := gltypes.Vec4{0, 0, 0, 1}
		for c := range 3 {
			var s float32
			for i := range 4 {
				for j := range 4 {
					s += bu[i] * q[c][i][j] * bv[j]
				}
			}
			pt[c] = s
		}
		return pt
	}

	useg, vseg := max(p.USegments, 1), max(p.VSegments, 1)
	var out [][]gltypes.Vec4
	for i := range max(p.UCurves, 0) {
		u := fraction(i, p.UCurves)
		line := make([]gltypes.Vec4, vseg+1)
		for k := range line {
			line[k] = at(u, float32(k)/float32(vseg))
		}
		out = append(out, line)
	}
	for j := range max(p.VCurves, 0) {
		v := fraction(j, p.VCurves)
		line := make([]gltypes.Vec4, useg+1)
		for k := range line {
			line[k] = at(float32(k)/float32(useg), v)
		}
		out = append(out, line)
	}
	return out
}

// fraction spreads n curves evenly over [0, 1].
func fraction(i, n int) float32 {
	if n <= 1 {
		return 0
	}
	return float32(i) / float32(n-1)
}
