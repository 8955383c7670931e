package irisgl

// Shading models for Shademodel.
const (
	Flat    = 0
	Gouraud = 1
)

// Lighting definition types for Lmdef.
const (
	DefMaterial = 1
	DefLight    = 2
	DefLmodel   = 3
)

// Lmbind targets.
const (
	Material = 0
	Light0   = 100
	Light1   = 101
	Light2   = 102
	Light3   = 103
	Light4   = 104
	Light5   = 105
	Light6   = 106
	Light7   = 107
	Lmodel   = 200
)

// Lmcolor modes.
const (
	LmcColor = iota
	LmcEmission
	LmcAmbient
	LmcDiffuse
	LmcSpecular
	LmcAD
	LmcNull
)

// Texture and environment bind targets.
const (
	TxTexture0 = 0
	TvEnv0     = 0
)

// Default colormap indices.
const (
	Black   = 0
	Red     = 1
	Green   = 2
	Yellow  = 3
	Blue    = 4
	Magenta = 5
	Cyan    = 6
	White   = 7
)

// maxLights is the number of Lmbind light targets.
const maxLights = 8
