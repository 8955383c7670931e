package irisgl

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/irisgl/backend/trace"
	"github.com/gogpu/irisgl/config"
	"github.com/gogpu/irisgl/curve"
	"github.com/gogpu/irisgl/gltypes"
	"github.com/gogpu/irisgl/object"
)

func newTraced(opts ...Option) (*Context, *trace.Backend) {
	tr := trace.New()
	return NewContext(append([]Option{WithBackend(tr)}, opts...)...), tr
}

// scene issues a fixed mix of state, shape and vertex calls.
func scene(c *Context) {
	c.Cpack(0xff0000ff)
	c.Translate(1, 2, 3)
	c.Poly([][3]float32{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}})
	c.N3f([3]float32{0, 0, 1})
	c.Bgnpolygon()
	c.V2f([2]float32{0, 0})
	c.V2f([2]float32{4, 0})
	c.V2f([2]float32{4, 4})
	c.V2f([2]float32{0, 4})
	c.Endpolygon()
	c.Charstr("ok")
}

func TestObjectRoundTrip(t *testing.T) {
	direct, want := newTraced()
	scene(direct)

	c, tr := newTraced()
	require.NoError(t, c.CreateObject(5))
	assert.True(t, c.Recording())
	scene(c)
	require.NoError(t, c.CloseObject())
	assert.Empty(t, tr.Calls(), "recording must not reach the backend")

	c.Callobj(5)
	assert.Equal(t, want.Strings(), tr.Strings())
	assert.Equal(t, 1, tr.Count(trace.KindDrawString))
}

func TestCallobjNested(t *testing.T) {
	c, tr := newTraced()
	c.Makeobj(1)
	c.Pnt(1, 1, 0)
	c.Closeobj()
	c.Makeobj(2)
	c.Callobj(1)
	c.Pnt(2, 2, 0)
	c.Callobj(1)
	c.Closeobj()

	c.Callobj(2)
	assert.Equal(t,
		[]gltypes.Vec4{{1, 1, 0, 1}, {2, 2, 0, 1}, {1, 1, 0, 1}},
		tr.Vertices())

	tr.Reset()
	c.Callobj(3)
	c.Callobj(0)
	assert.Empty(t, tr.Calls())
}

func TestTagInsertion(t *testing.T) {
	c, tr := newTraced()
	c.Makeobj(1)
	c.Pnt(1, 0, 0)
	c.Maketag(7)
	c.Pnt(2, 0, 0)
	c.Closeobj()

	c.Editobj(1)
	c.Objinsert(7)
	c.Pnt(9, 0, 0)
	c.Closeobj()

	c.Callobj(1)
	assert.Equal(t,
		[]gltypes.Vec4{{1, 0, 0, 1}, {9, 0, 0, 1}, {2, 0, 0, 1}},
		tr.Vertices())
}

func TestDeleteRangeAdjacentRejected(t *testing.T) {
	c := NewContext()
	require.NoError(t, c.CreateObject(1))
	err := c.DeleteRange(gltypes.StartTag, gltypes.EndTag)
	assert.ErrorIs(t, err, object.ErrEmptyRange)

	c.Objdelete(gltypes.StartTag, gltypes.EndTag)
	obj, _ := c.Object(1)
	assert.Equal(t, 2, obj.Len())
}

func TestObjreplace(t *testing.T) {
	c, tr := newTraced()
	c.Makeobj(1)
	c.Maketag(1)
	c.Pnt(1, 0, 0)
	c.Pnt(2, 0, 0)
	c.Maketag(2)
	c.Pnt(3, 0, 0)
	c.Closeobj()

	c.Editobj(1)
	c.Objreplace(1)
	c.Pnt(8, 0, 0)
	c.Closeobj()

	c.Callobj(1)
	assert.Equal(t, []gltypes.Vec4{{8, 0, 0, 1}, {3, 0, 0, 1}}, tr.Vertices())
}

func TestIDReuse(t *testing.T) {
	c := NewContext()
	c.Makeobj(3)
	c.Polf([][3]float32{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}})
	c.Charstr("label")
	c.Maketag(4)
	c.Closeobj()
	assert.Equal(t, object.Stats{Objects: 1, Records: 2, Tags: 1, OwnedBytes: 36 + 5}, c.Stats())

	c.Delobj(3)
	assert.False(t, c.Isobj(3))
	assert.Equal(t, object.Stats{}, c.Stats())

	c.Makeobj(3)
	c.Closeobj()
	obj, ok := c.Object(3)
	require.True(t, ok)
	assert.Equal(t, 0, obj.NumCommands())
	assert.Empty(t, obj.Tags())
	assert.Equal(t, object.Stats{Objects: 1}, c.Stats())
}

func TestDispatchRestored(t *testing.T) {
	c, tr := newTraced()

	c.Makeobj(1)
	c.Clear()
	c.Closeobj()
	assert.Empty(t, tr.Calls())

	c.Clear()
	assert.Equal(t, 1, tr.Count(trace.KindClear))

	c.Editobj(1)
	c.Clear()
	assert.Equal(t, 1, tr.Count(trace.KindClear))
	c.Closeobj()
	c.Clear()
	assert.Equal(t, 2, tr.Count(trace.KindClear))

	obj, _ := c.Object(1)
	assert.Equal(t, 2, obj.NumCommands())
}

func TestDeleteOpenObjectRestoresDispatch(t *testing.T) {
	c, tr := newTraced()
	c.Makeobj(1)
	c.Delobj(1)
	assert.False(t, c.Recording())
	c.Zclear()
	assert.Equal(t, "ClearDepth(1) Clear(Depth)", tr.Log())
}

func TestSecondMakeobjIgnored(t *testing.T) {
	c := NewContext()
	c.Makeobj(1)
	c.Makeobj(2)
	assert.Equal(t, gltypes.ObjectID(1), c.Getopenobj())
	assert.False(t, c.Isobj(2))
	c.Closeobj()
	assert.Equal(t, gltypes.ObjectID(-1), c.Getopenobj())

	c.Makeobj(0)
	c.Makeobj(-1)
	assert.False(t, c.Recording())
	assert.Equal(t, gltypes.ObjectID(2), c.Genobj())
}

func TestDefinitionsNotRecorded(t *testing.T) {
	c, tr := newTraced()
	c.Makeobj(1)
	c.Lmdef(DefMaterial, 1, []float32{1, 0.5})
	c.Lmbind(Material, 1)
	c.N3f([3]float32{0, 0, 1})
	c.Rectf(0, 0, 1, 1)
	c.Closeobj()

	obj, _ := c.Object(1)
	assert.Equal(t, 3, obj.NumCommands())
	assert.Empty(t, tr.Calls())

	c.Callobj(1)
	assert.Equal(t,
		"Light(Material,1,[1 0.5]) Enable(Lighting) Disable(Texture2D) Begin(Polygon) Normal(0,0,1) "+
			"Vertex(0,0,0,1) Vertex(1,0,0,1) Vertex(1,1,0,1) Vertex(0,1,0,1) End",
		tr.Log())
}

func TestLmbindLights(t *testing.T) {
	c, tr := newTraced()
	c.Lmdef(DefLight, 2, []float32{3})
	c.Lmdef(DefLmodel, 1, []float32{4})
	c.Lmbind(Light0+3, 2)
	c.Lmbind(Light1, 0)
	c.Lmbind(Lmodel, 1)
	c.Lmbind(Material, 0)
	c.Lmbind(999, 1)
	assert.Equal(t,
		"Light(Light,3,[3]) Light(Light,1,[]) Light(LightModel,1,[4]) Light(Material,0,[])",
		tr.Log())

	c.Lmdef(9, 1, nil)
	c.Lmdef(DefMaterial, 0, nil)
	assert.Len(t, c.lmdefs, 2)
}

func TestTextureBinding(t *testing.T) {
	c, tr := newTraced()
	c.Texdef2d(3, 2, 1, []uint32{0xff0000ff, 0xff00ff00})
	c.Tevdef(1, []float32{0})
	c.Texbind(TxTexture0, 3)
	c.Texbind(TxTexture0, 4)
	c.Tevbind(TvEnv0, 1)
	c.Texbind(TxTexture0, 0)
	c.Tevbind(TvEnv0, 0)
	assert.Equal(t, "BindTexture(3) TexEnv([0]) BindTexture(0) TexEnv([])", tr.Log())

	tex := c.texdefs[3]
	require.NotNil(t, tex)
	assert.Equal(t, []uint8{255, 0, 0, 255, 0, 255, 0, 255}, tex.Pix)

	c.Texdef2d(4, 2, 2, []uint32{1})
	_, ok := c.texdefs[4]
	assert.False(t, ok)
}

func TestTexturedPrimitive(t *testing.T) {
	c, tr := newTraced()
	c.Bgnpolygon()
	c.T2f([2]float32{0, 0})
	c.V2f([2]float32{0, 0})
	c.T2f([2]float32{1, 0})
	c.V2f([2]float32{1, 0})
	c.T2f([2]float32{1, 1})
	c.V2f([2]float32{1, 1})
	c.Endpolygon()
	assert.Equal(t,
		"Disable(Lighting) Enable(Texture2D) Begin(Polygon) "+
			"TexCoord(0,0,0,1) Vertex(0,0,0,1) TexCoord(1,0,0,1) Vertex(1,0,0,1) "+
			"TexCoord(1,1,0,1) Vertex(1,1,0,1) End",
		tr.Log())
}

func TestTmeshSwap(t *testing.T) {
	c, tr := newTraced()
	c.Bgntmesh()
	for _, x := range []float32{1, 2, 3} {
		c.V2f([2]float32{x, 0})
	}
	c.Swaptmesh()
	c.V2f([2]float32{4, 0})
	c.Endtmesh()

	var xs []float32
	for _, v := range tr.Vertices() {
		xs = append(xs, v[0])
	}
	assert.Equal(t, []float32{1, 2, 3, 2, 4}, xs)
}

func TestZeroLengthLine(t *testing.T) {
	c, tr := newTraced()
	c.Move(1, 1, 0)
	c.Draw(1, 1, 0)
	assert.Equal(t,
		"Disable(Lighting) Disable(Texture2D) Begin(Points) Vertex(1,1,0,1) End",
		tr.Log())
}

func TestProjection(t *testing.T) {
	c, tr := newTraced()
	c.Ortho2(0, 10, 0, 10)
	calls := tr.Calls()
	require.Len(t, calls, 3)
	assert.Equal(t, "MatrixMode(Projection)", calls[0].String())
	assert.Equal(t, gltypes.Ortho2(0, 10, 0, 10), calls[1].Matrix)
	assert.Equal(t, "MatrixMode(ModelView)", calls[2].String())

	tr.Reset()
	c.Pushmatrix()
	c.Rotate(900, 'z')
	c.Popmatrix()
	require.Len(t, tr.Calls(), 3)
	assert.Equal(t, gltypes.Rotate(gltypes.Angle(900).Radians(), gltypes.AxisZ), tr.Calls()[1].Matrix)
}

func TestClearing(t *testing.T) {
	c, tr := newTraced()
	c.Color(Red)
	c.Clear()
	c.Czclear(0x00ff0000, 0x7fffff)
	assert.Equal(t,
		"Color(255,0,0,255) ClearColor(255,0,0,255) Clear(Color) "+
			"ClearColor(0,0,255,0) ClearDepth(1) Clear(Color|Depth)",
		tr.Log())
}

func TestColormap(t *testing.T) {
	c, tr := newTraced()
	c.Mapcolor(100, 10, 300, -4)
	r, g, b := c.Getmcolor(100)
	assert.Equal(t, [3]int16{10, 255, 0}, [3]int16{r, g, b})

	c.Color(100)
	c.Color(Yellow)
	c.Color(5000)
	assert.Equal(t, "Color(10,255,0,255) Color(255,255,0,255) Color(0,0,0,255)", tr.Log())
}

func TestCharstrLatin1(t *testing.T) {
	c, tr := newTraced()
	c.Font(2)
	c.Cmov(1, 2, 0)
	c.Charstr("caf\xe9")
	assert.Equal(t, `RasterPos(1,2,0) DrawString("café",2)`, tr.Log())
}

func TestCurves(t *testing.T) {
	c, tr := newTraced()
	geom := [4][3]float32{{0, 0, 0}, {1, 1, 0}, {2, 1, 0}, {3, 0, 0}}

	c.Crv(geom)
	assert.Empty(t, tr.Calls(), "undefined basis draws nothing")

	c.Defbasis(1, curve.Bezier)
	c.Curvebasis(1)
	c.Curveprecision(4)
	c.Crv(geom)
	assert.Equal(t, 1, tr.Count(trace.KindBegin))
	assert.Len(t, tr.Vertices(), 5)

	tr.Reset()
	c.Patchbasis(1, 1)
	c.Patchprecision(2, 3)
	c.Patchcurves(2, 2)
	var m gltypes.Matrix
	c.Patch(m, m, m)
	assert.Equal(t, 4, tr.Count(trace.KindBegin))
	assert.Len(t, tr.Vertices(), 2*4+2*3)
}

func TestHeadless(t *testing.T) {
	c := NewContext()
	c.Makeobj(1)
	c.Pnt(1, 1, 1)
	c.Closeobj()
	c.Callobj(1)
	c.Clear()
	c.Cpack(0xff0000ff)
	c.N3f([3]float32{1, 0, 0})
	c.T2f([2]float32{1, 1})

	tr := trace.New()
	c.Attach(tr)
	c.Callobj(1)
	assert.Len(t, tr.Vertices(), 1)
	assert.Same(t, tr, c.Backend())

	c.Bgnline()
	c.V2f([2]float32{0, 0})
	c.V2f([2]float32{1, 0})
	c.Endline()
	assert.Zero(t, tr.Count(trace.KindColor), "color set while detached reached the backend")
	assert.Zero(t, tr.Count(trace.KindTexCoord))

	c.Detach()
	c.Callobj(1)
	assert.Len(t, tr.Vertices(), 1)
	assert.Nil(t, c.Backend())
}

func TestMaxRecordsDropsAndWarns(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))
	c := NewContext(WithMaxRecords(1), WithLogger(log))
	c.Makeobj(1)
	c.Clear()
	c.Zclear()
	c.Closeobj()

	obj, _ := c.Object(1)
	assert.Equal(t, 1, obj.NumCommands())
	assert.Contains(t, buf.String(), "zclear dropped")
}

func TestRejectedCallsLogAtDebug(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	c := NewContext(WithLogger(log))
	c.Makeobj(0)
	c.Closeobj()
	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "makeobj ignored")
	assert.Contains(t, buf.String(), object.ErrInvalidID.Error())
}

func TestChunkGrowthAndCompact(t *testing.T) {
	c := NewContext(WithChunkGrowth(8))
	c.Makeobj(1)
	c.Clear()
	c.Closeobj()
	obj, _ := c.Object(1)
	assert.Equal(t, 8, obj.Cap())

	c.Compactify(1)
	assert.Equal(t, 3, obj.Cap())

	c.Chunksize(0)
	c.Chunksize(2)
	c.Editobj(1)
	c.Clear()
	c.Closeobj()
	assert.Equal(t, 5, obj.Cap())
}

func TestTagQueries(t *testing.T) {
	c := NewContext()
	c.Makeobj(1)
	assert.True(t, c.Istag(gltypes.StartTag))
	tag := c.Gentag()
	assert.Equal(t, gltypes.Tag(1), tag)
	c.Maketag(tag)
	assert.True(t, c.Istag(tag))
	c.Clear()
	c.Newtag(5, tag, 1)
	assert.True(t, c.Istag(5))
	c.Deltag(tag)
	assert.False(t, c.Istag(tag))
	c.Closeobj()
	assert.Equal(t, gltypes.Tag(0), c.Gentag())
}

func TestNewContextFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Backend = "trace"
	cfg.StackDepth = 2
	c, err := NewContextFromConfig(cfg)
	require.NoError(t, err)
	tr, ok := c.Backend().(*trace.Backend)
	require.True(t, ok)

	c.Bgnline()
	c.V2f([2]float32{0, 0})
	c.V2f([2]float32{1, 0})
	assert.Equal(t, 1, tr.Count(trace.KindBegin), "depth 2 resolves on the second vertex")

	cfg.Backend = "nope"
	_, err = NewContextFromConfig(cfg)
	assert.Error(t, err)

	cfg = config.Config{}
	c, err = NewContextFromConfig(cfg)
	require.NoError(t, err)
	assert.Nil(t, c.Backend())
}
