package gltypes

import "math"

// Coord is a floating point world coordinate.
type Coord = float32

// Icoord is an integer world coordinate.
type Icoord = int32

// Scoord is a short integer world coordinate.
type Scoord = int16

// Angle is an angle in tenths of degrees.
type Angle int16

// Radians converts the angle to radians.
func (a Angle) Radians() float32 {
	return float32(float64(a) / 10 * math.Pi / 180)
}

// Colorindex is an index into the colormap.
type Colorindex uint16

// ObjectID names an object. Valid identifiers are positive.
type ObjectID int32

// Valid reports whether id can name an object.
func (id ObjectID) Valid() bool { return id > 0 }

// Tag names a marker inside an object.
type Tag int32

// Sentinel tags present in every object.
const (
	StartTag Tag = -2
	EndTag   Tag = -3
)

// IsSentinel reports whether t is StartTag or EndTag.
func (t Tag) IsSentinel() bool { return t == StartTag || t == EndTag }

// Axis selects a rotation axis for Rot and Rotate.
type Axis byte

// Rotation axes, accepted in either case by the legacy API.
const (
	AxisX Axis = 'x'
	AxisY Axis = 'y'
	AxisZ Axis = 'z'
)

// Normalize folds upper-case axis letters to lower case.
func (a Axis) Normalize() Axis {
	if a >= 'X' && a <= 'Z' {
		return a + ('x' - 'X')
	}
	return a
}

// Vec3 is a three component float vector.
type Vec3 = [3]float32

// Vec4 is a four component float vector.
type Vec4 = [4]float32

// RGBA8 is a color with byte components.
type RGBA8 = [4]uint8

// PackRGBA unpacks a legacy cpack value (0xAABBGGRR) into components.
func PackRGBA(c uint32) RGBA8 {
	return RGBA8{uint8(c), uint8(c >> 8), uint8(c >> 16), uint8(c >> 24)}
}

// ClampByte converts a float in [0, 1] to a byte with clamping.
func ClampByte(f float32) uint8 {
	switch {
	case f <= 0:
		return 0
	case f >= 1:
		return 255
	}
	return uint8(f*255 + 0.5)
}

// ClampInt converts an integer color component to a byte with clamping.
func ClampInt(i int32) uint8 {
	switch {
	case i < 0:
		return 0
	case i > 255:
		return 255
	}
	return uint8(i)
}
