package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allCommands returns one zero value of every command type.
func allCommands() []Command {
	return []Command{
		ClearCommand{},
		ZclearCommand{},
		CzclearCommand{},
		ZbufferCommand{},
		BackfaceCommand{},
		ShademodelCommand{},
		LinewidthCommand{},
		ColorCommand{},
		RGBcolorCommand{},
		CpackCommand{},
		C3fCommand{},
		C4fCommand{},
		C3iCommand{},
		C4iCommand{},
		C3sCommand{},
		C4sCommand{},
		PushmatrixCommand{},
		PopmatrixCommand{},
		LoadmatrixCommand{},
		MultmatrixCommand{},
		TranslateCommand{},
		RotCommand{},
		RotateCommand{},
		ScaleCommand{},
		OrthoCommand{},
		Ortho2Command{},
		PerspectiveCommand{},
		WindowCommand{},
		LookatCommand{},
		PolarviewCommand{},
		BgnpointCommand{},
		EndpointCommand{},
		BgnlineCommand{},
		EndlineCommand{},
		BgnclosedlineCommand{},
		EndclosedlineCommand{},
		BgnpolygonCommand{},
		EndpolygonCommand{},
		BgntmeshCommand{},
		EndtmeshCommand{},
		SwaptmeshCommand{},
		BgnqstripCommand{},
		EndqstripCommand{},
		V2fCommand{},
		V3fCommand{},
		V4fCommand{},
		V2iCommand{},
		V3iCommand{},
		V2sCommand{},
		V3sCommand{},
		V2dCommand{},
		V3dCommand{},
		N3fCommand{},
		T2fCommand{},
		T3fCommand{},
		T4fCommand{},
		MoveCommand{},
		DrawCommand{},
		PntCommand{},
		RectCommand{},
		RectfCommand{},
		CircCommand{},
		CircfCommand{},
		ArcCommand{},
		ArcfCommand{},
		PolyCommand{},
		PolfCommand{},
		PmvCommand{},
		PdrCommand{},
		PclosCommand{},
		CurvebasisCommand{},
		CurveprecisionCommand{},
		CrvCommand{},
		CrvnCommand{},
		RcrvCommand{},
		PatchbasisCommand{},
		PatchprecisionCommand{},
		PatchcurvesCommand{},
		PatchCommand{},
		LmbindCommand{},
		LmcolorCommand{},
		TexbindCommand{},
		TevbindCommand{},
		CmovCommand{},
		CharstrCommand{},
		FontCommand{},
		InitnamesCommand{},
		LoadnameCommand{},
		PushnameCommand{},
		PopnameCommand{},
		CallobjCommand{},
	}
}

func TestCommandOpcodes(t *testing.T) {
	cmds := allCommands()
	require.Len(t, cmds, NumOpcodes)

	seen := make(map[Opcode]bool)
	for _, c := range cmds {
		op := c.Op()
		assert.True(t, op.Valid(), "%T has invalid opcode %d", c, op)
		assert.False(t, seen[op], "%T reuses opcode %v", c, op)
		seen[op] = true
		assert.NotEqual(t, "Unknown", op.String())
		assert.NotEqual(t, "Invalid", op.String())
	}
}

func TestOpcodeString(t *testing.T) {
	tests := []struct {
		op   Opcode
		want string
	}{
		{OpBgnpolygon, "bgnpolygon"},
		{OpRGBcolor, "RGBcolor"},
		{OpSwaptmesh, "swaptmesh"},
		{OpCallobj, "callobj"},
		{OpInvalid, "Invalid"},
		{opCount, "Unknown"},
		{Opcode(255), "Unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.op.String())
	}
	assert.False(t, OpInvalid.Valid())
	assert.False(t, opCount.Valid())
}

func TestOwnedBytes(t *testing.T) {
	pts := [][3]float32{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}}
	tests := []struct {
		cmd  Owner
		want int
	}{
		{PolyCommand{Points: pts}, 36},
		{PolfCommand{Points: pts[:2]}, 24},
		{CrvnCommand{Geom: pts}, 36},
		{CharstrCommand{Text: "hello"}, 5},
		{PolyCommand{}, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.cmd.OwnedBytes(), "%T", tt.cmd)
	}

	owners := 0
	for _, c := range allCommands() {
		if _, ok := c.(Owner); ok {
			owners++
		}
	}
	assert.Equal(t, 4, owners)
}
