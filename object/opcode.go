package object

// Opcode identifies the operation a display list record replays.
// Every immediate operation that can be captured has exactly one Opcode.
type Opcode uint8

const (
	// OpInvalid is the zero Opcode and never appears in a record.
	OpInvalid Opcode = iota

	// Buffers and modes
	OpClear
	OpZclear
	OpCzclear
	OpZbuffer
	OpBackface
	OpShademodel
	OpLinewidth

	// Color
	OpColor
	OpRGBcolor
	OpCpack
	OpC3f
	OpC4f
	OpC3i
	OpC4i
	OpC3s
	OpC4s

	// Transformations
	OpPushmatrix
	OpPopmatrix
	OpLoadmatrix
	OpMultmatrix
	OpTranslate
	OpRot
	OpRotate
	OpScale
	OpOrtho
	OpOrtho2
	OpPerspective
	OpWindow
	OpLookat
	OpPolarview

	// Primitive brackets
	OpBgnpoint
	OpEndpoint
	OpBgnline
	OpEndline
	OpBgnclosedline
	OpEndclosedline
	OpBgnpolygon
	OpEndpolygon
	OpBgntmesh
	OpEndtmesh
	OpSwaptmesh
	OpBgnqstrip
	OpEndqstrip

	// Vertices
	OpV2f
	OpV3f
	OpV4f
	OpV2i
	OpV3i
	OpV2s
	OpV3s
	OpV2d
	OpV3d
	OpN3f
	OpT2f
	OpT3f
	OpT4f

	// Shapes
	OpMove
	OpDraw
	OpPnt
	OpRect
	OpRectf
	OpCirc
	OpCircf
	OpArc
	OpArcf
	OpPoly
	OpPolf
	OpPmv
	OpPdr
	OpPclos

	// Curves and patches
	OpCurvebasis
	OpCurveprecision
	OpCrv
	OpCrvn
	OpRcrv
	OpPatchbasis
	OpPatchprecision
	OpPatchcurves
	OpPatch

	// Lighting and texturing
	OpLmbind
	OpLmcolor
	OpTexbind
	OpTevbind

	// Text
	OpCmov
	OpCharstr
	OpFont

	// Picking
	OpInitnames
	OpLoadname
	OpPushname
	OpPopname

	// Objects
	OpCallobj

	// opCount is one past the last valid Opcode.
	opCount
)

// opcodeNames maps Opcode values to the legacy call name.
var opcodeNames = [...]string{
	OpInvalid:        "Invalid",
	OpClear:          "clear",
	OpZclear:         "zclear",
	OpCzclear:        "czclear",
	OpZbuffer:        "zbuffer",
	OpBackface:       "backface",
	OpShademodel:     "shademodel",
	OpLinewidth:      "linewidth",
	OpColor:          "color",
	OpRGBcolor:       "RGBcolor",
	OpCpack:          "cpack",
	OpC3f:            "c3f",
	OpC4f:            "c4f",
	OpC3i:            "c3i",
	OpC4i:            "c4i",
	OpC3s:            "c3s",
	OpC4s:            "c4s",
	OpPushmatrix:     "pushmatrix",
	OpPopmatrix:      "popmatrix",
	OpLoadmatrix:     "loadmatrix",
	OpMultmatrix:     "multmatrix",
	OpTranslate:      "translate",
	OpRot:            "rot",
	OpRotate:         "rotate",
	OpScale:          "scale",
	OpOrtho:          "ortho",
	OpOrtho2:         "ortho2",
	OpPerspective:    "perspective",
	OpWindow:         "window",
	OpLookat:         "lookat",
	OpPolarview:      "polarview",
	OpBgnpoint:       "bgnpoint",
	OpEndpoint:       "endpoint",
	OpBgnline:        "bgnline",
	OpEndline:        "endline",
	OpBgnclosedline:  "bgnclosedline",
	OpEndclosedline:  "endclosedline",
	OpBgnpolygon:     "bgnpolygon",
	OpEndpolygon:     "endpolygon",
	OpBgntmesh:       "bgntmesh",
	OpEndtmesh:       "endtmesh",
	OpSwaptmesh:      "swaptmesh",
	OpBgnqstrip:      "bgnqstrip",
	OpEndqstrip:      "endqstrip",
	OpV2f:            "v2f",
	OpV3f:            "v3f",
	OpV4f:            "v4f",
	OpV2i:            "v2i",
	OpV3i:            "v3i",
	OpV2s:            "v2s",
	OpV3s:            "v3s",
	OpV2d:            "v2d",
	OpV3d:            "v3d",
	OpN3f:            "n3f",
	OpT2f:            "t2f",
	OpT3f:            "t3f",
	OpT4f:            "t4f",
	OpMove:           "move",
	OpDraw:           "draw",
	OpPnt:            "pnt",
	OpRect:           "rect",
	OpRectf:          "rectf",
	OpCirc:           "circ",
	OpCircf:          "circf",
	OpArc:            "arc",
	OpArcf:           "arcf",
	OpPoly:           "poly",
	OpPolf:           "polf",
	OpPmv:            "pmv",
	OpPdr:            "pdr",
	OpPclos:          "pclos",
	OpCurvebasis:     "curvebasis",
	OpCurveprecision: "curveprecision",
	OpCrv:            "crv",
	OpCrvn:           "crvn",
	OpRcrv:           "rcrv",
	OpPatchbasis:     "patchbasis",
	OpPatchprecision: "patchprecision",
	OpPatchcurves:    "patchcurves",
	OpPatch:          "patch",
	OpLmbind:         "lmbind",
	OpLmcolor:        "lmcolor",
	OpTexbind:        "texbind",
	OpTevbind:        "tevbind",
	OpCmov:           "cmov",
	OpCharstr:        "charstr",
	OpFont:           "font",
	OpInitnames:      "initnames",
	OpLoadname:       "loadname",
	OpPushname:       "pushname",
	OpPopname:        "popname",
	OpCallobj:        "callobj",
}

// String returns the legacy name of the operation, such as "bgnpolygon".
func (o Opcode) String() string {
	if o < opCount {
		return opcodeNames[o]
	}
	return "Unknown"
}

// Valid reports whether o names a recordable operation.
func (o Opcode) Valid() bool {
	return o > OpInvalid && o < opCount
}

// NumOpcodes is the number of recordable operations.
const NumOpcodes = int(opCount) - 1
