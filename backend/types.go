package backend

import "strings"

// Mode is a native primitive topology.
type Mode uint8

// Primitive topologies.
const (
	Points Mode = iota
	Lines
	LineStrip
	LineLoop
	Triangles
	TriangleStrip
	TriangleFan
	Quads
	QuadStrip
	Polygon
)

var modeNames = [...]string{
	Points:        "Points",
	Lines:         "Lines",
	LineStrip:     "LineStrip",
	LineLoop:      "LineLoop",
	Triangles:     "Triangles",
	TriangleStrip: "TriangleStrip",
	TriangleFan:   "TriangleFan",
	Quads:         "Quads",
	QuadStrip:     "QuadStrip",
	Polygon:       "Polygon",
}

// String returns the topology name.
func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "Unknown"
}

// IsLine reports whether m draws lines.
func (m Mode) IsLine() bool {
	return m == Lines || m == LineStrip || m == LineLoop
}

// Capability is a state that can be enabled or disabled.
type Capability uint8

// Capabilities.
const (
	Lighting Capability = iota
	Texture2D
	DepthTest
	CullFace
)

var capabilityNames = [...]string{
	Lighting:  "Lighting",
	Texture2D: "Texture2D",
	DepthTest: "DepthTest",
	CullFace:  "CullFace",
}

// String returns the capability name.
func (c Capability) String() string {
	if int(c) < len(capabilityNames) {
		return capabilityNames[c]
	}
	return "Unknown"
}

// ClearMask selects buffers for Clear.
type ClearMask uint8

// Buffers.
const (
	ColorBuffer ClearMask = 1 << iota
	DepthBuffer
)

// String returns the buffer names joined by "|".
func (m ClearMask) String() string {
	var parts []string
	if m&ColorBuffer != 0 {
		parts = append(parts, "Color")
	}
	if m&DepthBuffer != 0 {
		parts = append(parts, "Depth")
	}
	if len(parts) == 0 {
		return "None"
	}
	return strings.Join(parts, "|")
}

// MatrixMode selects a matrix stack.
type MatrixMode uint8

// Matrix stacks.
const (
	ModelView MatrixMode = iota
	Projection
)

// String returns the stack name.
func (m MatrixMode) String() string {
	if m == Projection {
		return "Projection"
	}
	return "ModelView"
}

// ShadeModel selects flat or smooth shading.
type ShadeModel uint8

// Shade models.
const (
	Flat ShadeModel = iota
	Smooth
)

// String returns the shade model name.
func (s ShadeModel) String() string {
	if s == Flat {
		return "Flat"
	}
	return "Smooth"
}

// LightTarget selects what a lighting definition applies to.
type LightTarget uint8

// Lighting targets.
const (
	Material LightTarget = iota
	Light
	LightModel
)

// String returns the target name.
func (t LightTarget) String() string {
	switch t {
	case Material:
		return "Material"
	case Light:
		return "Light"
	case LightModel:
		return "LightModel"
	}
	return "Unknown"
}

// ColorMaterial selects the material property that tracks the current color.
type ColorMaterial int32

// Color material modes, numbered as the legacy lmcolor tokens.
const (
	ColorMaterialColor ColorMaterial = iota
	ColorMaterialEmission
	ColorMaterialAmbient
	ColorMaterialDiffuse
	ColorMaterialSpecular
	ColorMaterialAmbientDiffuse
	ColorMaterialNull
)
