package backend_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/gogpu/irisgl/backend"
	"github.com/gogpu/irisgl/backend/trace"
)

func TestTraceRegistered(t *testing.T) {
	if !backend.IsRegistered("trace") {
		t.Fatal(`IsRegistered("trace") = false`)
	}
	if !slices.Contains(backend.Backends(), "trace") {
		t.Errorf("Backends() = %v, missing trace", backend.Backends())
	}

	b, err := backend.NewBackend("trace", 10, 10)
	if err != nil {
		t.Fatalf("NewBackend(trace) error = %v", err)
	}
	if _, ok := b.(*trace.Backend); !ok {
		t.Errorf("NewBackend(trace) = %T, want *trace.Backend", b)
	}
}

func TestNewBackendErrors(t *testing.T) {
	if _, err := backend.NewBackend("missing", 10, 10); !errors.Is(err, backend.ErrUnknownBackend) {
		t.Errorf("NewBackend(missing) error = %v, want ErrUnknownBackend", err)
	}
	if _, err := backend.NewBackend("trace", 0, 10); !errors.Is(err, backend.ErrBadSize) {
		t.Errorf("NewBackend(trace, 0x10) error = %v, want ErrBadSize", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Register of a duplicate name did not panic")
		}
	}()
	backend.Register("trace", func(int, int) backend.Backend { return trace.New() })
}

func TestRegisterUnregister(t *testing.T) {
	backend.Register("test-temp", func(int, int) backend.Backend { return trace.New() })
	if !backend.IsRegistered("test-temp") {
		t.Fatal("test-temp not registered")
	}
	backend.Unregister("test-temp")
	if backend.IsRegistered("test-temp") {
		t.Error("test-temp still registered after Unregister")
	}
	backend.Unregister("never-registered")
}

func TestEnumStrings(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{backend.TriangleStrip.String(), "TriangleStrip"},
		{backend.Mode(99).String(), "Unknown"},
		{backend.Texture2D.String(), "Texture2D"},
		{backend.ClearMask(0).String(), "None"},
		{backend.Smooth.String(), "Smooth"},
		{backend.LightModel.String(), "LightModel"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("String() = %q, want %q", tt.got, tt.want)
		}
	}
	if !backend.LineLoop.IsLine() || backend.Polygon.IsLine() {
		t.Error("Mode.IsLine misclassifies")
	}
}

func TestTextureAtClamps(t *testing.T) {
	tex := &backend.Texture{Width: 2, Height: 1, Pix: []uint8{1, 2, 3, 4, 5, 6, 7, 8}}
	if got := tex.At(5, 9); got != [4]uint8{5, 6, 7, 8} {
		t.Errorf("At(5,9) = %v", got)
	}
	var empty *backend.Texture
	if got := empty.At(0, 0); got != [4]uint8{255, 255, 255, 255} {
		t.Errorf("nil At = %v", got)
	}
}
