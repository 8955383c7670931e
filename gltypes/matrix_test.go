package gltypes

import (
	"math"
	"testing"
)

const eps = 1e-5

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < eps
}

func nearVec(a, b Vec4) bool {
	for i := range a {
		if !near(a[i], b[i]) {
			return false
		}
	}
	return true
}

func TestMatrixTransform(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		in   Vec4
		want Vec4
	}{
		{"identity", Identity(), Vec4{1, 2, 3, 1}, Vec4{1, 2, 3, 1}},
		{"translate", Translate(10, -5, 2), Vec4{1, 2, 3, 1}, Vec4{11, -3, 5, 1}},
		{"translate ignores directions", Translate(10, -5, 2), Vec4{1, 2, 3, 0}, Vec4{1, 2, 3, 0}},
		{"scale", Scale(2, 3, 4), Vec4{1, 1, 1, 1}, Vec4{2, 3, 4, 1}},
		{"rotate z 90", Rotate(math.Pi/2, AxisZ), Vec4{1, 0, 0, 1}, Vec4{0, 1, 0, 1}},
		{"rotate x 90", Rotate(math.Pi/2, AxisX), Vec4{0, 1, 0, 1}, Vec4{0, 0, 1, 1}},
		{"rotate y 90", Rotate(math.Pi/2, AxisY), Vec4{0, 0, 1, 1}, Vec4{1, 0, 0, 1}},
		{"upper case axis", Rotate(math.Pi/2, 'Z'), Vec4{1, 0, 0, 1}, Vec4{0, 1, 0, 1}},
		{"unknown axis", Rotate(1, 'q'), Vec4{1, 2, 3, 1}, Vec4{1, 2, 3, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.Transform(tt.in)
			if !nearVec(got, tt.want) {
				t.Errorf("Transform(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestMatrixMulOrder(t *testing.T) {
	// Scale first, then translate.
	m := Scale(2, 2, 2).Mul(Translate(1, 0, 0))
	got := m.Transform(Vec4{1, 0, 0, 1})
	want := Vec4{3, 0, 0, 1}
	if !nearVec(got, want) {
		t.Errorf("Scale*Translate = %v, want %v", got, want)
	}
}

func TestOrtho2(t *testing.T) {
	m := Ortho2(0, 100, 0, 50)
	tests := []struct {
		in, want Vec4
	}{
		{Vec4{0, 0, 0, 1}, Vec4{-1, -1, 0, 1}},
		{Vec4{100, 50, 0, 1}, Vec4{1, 1, 0, 1}},
		{Vec4{50, 25, 0, 1}, Vec4{0, 0, 0, 1}},
	}
	for _, tt := range tests {
		if got := m.Transform(tt.in); !nearVec(got, tt.want) {
			t.Errorf("Ortho2.Transform(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestPerspectiveDepthRange(t *testing.T) {
	m := Perspective(900, 1, 1, 10)
	nearPt := m.Transform(Vec4{0, 0, -1, 1})
	farPt := m.Transform(Vec4{0, 0, -10, 1})
	if z := nearPt[2] / nearPt[3]; !near(z, -1) {
		t.Errorf("near plane depth = %v, want -1", z)
	}
	if z := farPt[2] / farPt[3]; !near(z, 1) {
		t.Errorf("far plane depth = %v, want 1", z)
	}
}

func TestWindowMatchesPerspective(t *testing.T) {
	// A symmetric frustum with a 90 degree field of view.
	w := Window(-1, 1, -1, 1, 1, 10)
	p := Perspective(900, 1, 1, 10)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if !near(w[i][j], p[i][j]) {
				t.Fatalf("Window[%d][%d] = %v, Perspective = %v", i, j, w[i][j], p[i][j])
			}
		}
	}
}

func TestLookat(t *testing.T) {
	m := Lookat(0, 0, 5, 0, 0, 0, 0)
	got := m.Transform(Vec4{0, 0, 0, 1})
	want := Vec4{0, 0, -5, 1}
	if !nearVec(got, want) {
		t.Errorf("origin in eye space = %v, want %v", got, want)
	}
}

func TestPolarviewDistance(t *testing.T) {
	m := Polarview(7, 0, 0, 0)
	got := m.Transform(Vec4{0, 0, 0, 1})
	want := Vec4{0, 0, -7, 1}
	if !nearVec(got, want) {
		t.Errorf("Polarview origin = %v, want %v", got, want)
	}
}

func TestTransposeFloats(t *testing.T) {
	m := Translate(1, 2, 3)
	f := m.Floats()
	if f[12] != 1 || f[13] != 2 || f[14] != 3 {
		t.Errorf("Floats() translation = %v, want [1 2 3] at 12..14", f[12:15])
	}
	if tr := m.Transpose(); tr[0][3] != 1 || tr[1][3] != 2 {
		t.Errorf("Transpose() = %v", tr)
	}
	if !Identity().IsIdentity() {
		t.Error("Identity().IsIdentity() = false")
	}
}

func TestPackRGBA(t *testing.T) {
	got := PackRGBA(0x80FF0010)
	want := RGBA8{0x10, 0x00, 0xFF, 0x80}
	if got != want {
		t.Errorf("PackRGBA() = %v, want %v", got, want)
	}
}

func TestClampByte(t *testing.T) {
	tests := []struct {
		in   float32
		want uint8
	}{
		{-1, 0}, {0, 0}, {0.5, 128}, {1, 255}, {2, 255},
	}
	for _, tt := range tests {
		if got := ClampByte(tt.in); got != tt.want {
			t.Errorf("ClampByte(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
	if ClampInt(300) != 255 || ClampInt(-3) != 0 || ClampInt(42) != 42 {
		t.Error("ClampInt out of range handling")
	}
}

func TestTagSentinels(t *testing.T) {
	if !StartTag.IsSentinel() || !EndTag.IsSentinel() {
		t.Error("sentinel tags not reported")
	}
	if Tag(7).IsSentinel() {
		t.Error("Tag(7).IsSentinel() = true")
	}
	if ObjectID(0).Valid() || !ObjectID(1).Valid() {
		t.Error("ObjectID.Valid boundary wrong")
	}
	if got := Angle(900).Radians(); !near(got, math.Pi/2) {
		t.Errorf("Angle(900).Radians() = %v", got)
	}
}
