package curve

import "github.com/gogpu/irisgl/gltypes"

// Well known cubic bases in the legacy [t³ t² t 1] row convention.
var (
	Bezier = gltypes.Matrix{
		{-1, 3, -3, 1},
		{3, -6, 3, 0},
		{-3, 3, 0, 0},
		{1, 0, 0, 0},
	}

	Cardinal = gltypes.Matrix{
		{-0.5, 1.5, -1.5, 0.5},
		{1, -2.5, 2, -0.5},
		{-0.5, 0, 0.5, 0},
		{0, 1, 0, 0},
	}

	BSpline = gltypes.Matrix{
		{-1.0 / 6, 3.0 / 6, -3.0 / 6, 1.0 / 6},
		{3.0 / 6, -6.0 / 6, 3.0 / 6, 0},
		{-3.0 / 6, 0, 3.0 / 6, 0},
		{1.0 / 6, 4.0 / 6, 1.0 / 6, 0},
	}
)

// bezierInverse is the inverse of Bezier.
var bezierInverse = gltypes.Matrix{
	{0, 0, 0, 1},
	{0, 0, 1.0 / 3, 1},
	{0, 1.0 / 3, 2.0 / 3, 1},
	{1, 1, 1, 1},
}

// Store holds basis matrices defined by small integer ids.
// The zero value is not usable; call NewStore.
type Store struct {
	bases map[int16]gltypes.Matrix
}

// NewStore returns an empty basis store.
func NewStore() *Store {
	return &Store{bases: make(map[int16]gltypes.Matrix)}
}

// Define stores m under id, replacing any previous definition.
func (s *Store) Define(id int16, m gltypes.Matrix) {
	s.bases[id] = m
}

// Lookup returns the basis defined under id.
func (s *Store) Lookup(id int16) (gltypes.Matrix, bool) {
	m, ok := s.bases[id]
	return m, ok
}

// Len returns the number of defined bases.
func (s *Store) Len() int { return len(s.bases) }

// ToBezier converts control points given in basis into Bezier control
// points. Row i of geom is control point i.
func ToBezier(basis, geom gltypes.Matrix) gltypes.Matrix {
	return bezierInverse.Mul(basis).Mul(geom)
}
