package irisgl

import (
	"testing"

	"github.com/gogpu/irisgl/backend/trace"
	"github.com/gogpu/irisgl/gltypes"
	"github.com/gogpu/irisgl/vertex"
)

func TestNewContextDefaults(t *testing.T) {
	c := NewContext()
	if c.Backend() != nil {
		t.Errorf("Backend() = %v, want nil", c.Backend())
	}
	if c.Recording() {
		t.Error("Recording() = true, want false")
	}
	if got := c.engine.Depth(); got != vertex.DefaultDepth {
		t.Errorf("stack depth = %d, want %d", got, vertex.DefaultDepth)
	}
	if got := c.objects.Chunk(); got != 64 {
		t.Errorf("chunk = %d, want 64", got)
	}
	if _, ok := c.colormap.(*defaultColormap); !ok {
		t.Errorf("colormap = %T, want *defaultColormap", c.colormap)
	}
}

func TestOptions(t *testing.T) {
	tr := trace.New()
	cm := newDefaultColormap()
	c := NewContext(
		WithBackend(tr),
		WithStackDepth(1),
		WithChunkGrowth(5),
		WithColormap(cm),
	)
	if c.Backend() != tr {
		t.Error("WithBackend did not attach the backend")
	}
	if got := c.engine.Depth(); got != vertex.MinDepth {
		t.Errorf("WithStackDepth(1) depth = %d, want %d", got, vertex.MinDepth)
	}
	if got := c.objects.Chunk(); got != 5 {
		t.Errorf("WithChunkGrowth(5) chunk = %d, want 5", got)
	}
	if c.colormap != Colormap(cm) {
		t.Error("WithColormap did not install the colormap")
	}
}

type fixedColormap struct{ c gltypes.RGBA8 }

func (f fixedColormap) Lookup(gltypes.Colorindex) gltypes.RGBA8 { return f.c }
func (f fixedColormap) Set(gltypes.Colorindex, gltypes.RGBA8)   {}

func TestExternalColormap(t *testing.T) {
	tr := trace.New()
	c := NewContext(WithBackend(tr), WithColormap(fixedColormap{gltypes.RGBA8{1, 2, 3, 4}}))
	c.Color(Blue)
	if got, want := tr.Log(), "Color(1,2,3,4)"; got != want {
		t.Errorf("Log() = %q, want %q", got, want)
	}
}

func TestDefaultColormap(t *testing.T) {
	cm := newDefaultColormap()
	tests := []struct {
		index gltypes.Colorindex
		want  gltypes.RGBA8
	}{
		{Black, gltypes.RGBA8{0, 0, 0, 255}},
		{Red, gltypes.RGBA8{255, 0, 0, 255}},
		{Green, gltypes.RGBA8{0, 255, 0, 255}},
		{Yellow, gltypes.RGBA8{255, 255, 0, 255}},
		{Blue, gltypes.RGBA8{0, 0, 255, 255}},
		{Magenta, gltypes.RGBA8{255, 0, 255, 255}},
		{Cyan, gltypes.RGBA8{0, 255, 255, 255}},
		{White, gltypes.RGBA8{255, 255, 255, 255}},
		{8, gltypes.RGBA8{0, 0, 0, 255}},
		{colormapSize, gltypes.RGBA8{0, 0, 0, 255}},
	}
	for _, tt := range tests {
		if got := cm.Lookup(tt.index); got != tt.want {
			t.Errorf("Lookup(%d) = %v, want %v", tt.index, got, tt.want)
		}
	}
}
