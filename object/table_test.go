package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/irisgl/gltypes"
)

// stream renders an object as record names for comparison.
func stream(o *Object) []string {
	var out []string
	for _, r := range o.Records() {
		out = append(out, r.String())
	}
	return out
}

func v(x float32) Command { return V3fCommand{V: [3]float32{x, 0, 0}} }

// build creates object id holding the given records and leaves it closed.
func build(t *testing.T, tb *Table, id gltypes.ObjectID, recs ...any) *Object {
	t.Helper()
	require.NoError(t, tb.Create(id))
	for _, r := range recs {
		switch r := r.(type) {
		case gltypes.Tag:
			require.NoError(t, tb.CreateTag(r))
		case Command:
			require.NoError(t, tb.Append(r))
		default:
			t.Fatalf("unexpected record %T", r)
		}
	}
	require.NoError(t, tb.Close())
	o, ok := tb.Get(id)
	require.True(t, ok)
	return o
}

func TestCreate(t *testing.T) {
	tb := NewTable()

	assert.ErrorIs(t, tb.Create(0), ErrInvalidID)
	assert.ErrorIs(t, tb.Create(-4), ErrInvalidID)
	assert.False(t, tb.Recording())

	require.NoError(t, tb.Create(5))
	assert.True(t, tb.Recording())
	assert.Equal(t, gltypes.ObjectID(5), tb.OpenID())

	o := tb.Open()
	require.NotNil(t, o)
	assert.Equal(t, []string{"STARTTAG", "ENDTAG"}, stream(o))
	assert.Equal(t, 1, o.Cursor())

	assert.ErrorIs(t, tb.Create(6), ErrRecording)
	assert.False(t, tb.Exists(6))
}

func TestCloseResetsCursor(t *testing.T) {
	tb := NewTable()
	require.NoError(t, tb.Create(1))
	require.NoError(t, tb.Append(ClearCommand{}))
	require.NoError(t, tb.Append(ZclearCommand{}))
	assert.Equal(t, 3, tb.Open().Cursor())

	require.NoError(t, tb.Close())
	o, _ := tb.Get(1)
	assert.Equal(t, 1, o.Cursor())
	assert.Equal(t, gltypes.ObjectID(-1), tb.OpenID())
	assert.ErrorIs(t, tb.Close(), ErrNotRecording)
}

func TestAppendOrder(t *testing.T) {
	tb := NewTable()
	o := build(t, tb, 2, BgnpolygonCommand{}, v(1), v(2), EndpolygonCommand{})

	assert.Equal(t, []string{"STARTTAG", "bgnpolygon", "v3f", "v3f", "endpolygon", "ENDTAG"}, stream(o))

	var got []Command
	for c := range o.Commands() {
		got = append(got, c)
	}
	assert.Equal(t, []Command{BgnpolygonCommand{}, v(1), v(2), EndpolygonCommand{}}, got)
	assert.Equal(t, 4, o.NumCommands())
	assert.ErrorIs(t, tb.Append(ClearCommand{}), ErrNotRecording)
}

func TestCommandsStopEarly(t *testing.T) {
	tb := NewTable()
	o := build(t, tb, 1, v(1), v(2), v(3))
	n := 0
	for range o.Commands() {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}

func TestRecreateDestroysOld(t *testing.T) {
	tb := NewTable()
	build(t, tb, 3, PolyCommand{Points: [][3]float32{{1, 2, 3}}}, gltypes.Tag(4))
	assert.Equal(t, Stats{Objects: 1, Records: 1, Tags: 1, OwnedBytes: 12}, tb.Stats())

	require.NoError(t, tb.Create(3))
	o := tb.Open()
	assert.Equal(t, []string{"STARTTAG", "ENDTAG"}, stream(o))
	assert.Equal(t, Stats{Objects: 1}, tb.Stats())
}

func TestDeleteAndReuse(t *testing.T) {
	tb := NewTable()
	build(t, tb, 3, CharstrCommand{Text: "abc"}, ClearCommand{})
	require.NoError(t, tb.Delete(3))
	assert.False(t, tb.Exists(3))
	assert.Equal(t, Stats{}, tb.Stats())

	require.NoError(t, tb.Create(3))
	require.NoError(t, tb.Close())
	o, ok := tb.Get(3)
	require.True(t, ok)
	assert.Equal(t, 0, o.NumCommands())
	assert.Equal(t, Stats{Objects: 1}, tb.Stats())

	assert.ErrorIs(t, tb.Delete(9), ErrNoObject)
	assert.ErrorIs(t, tb.Delete(0), ErrInvalidID)
}

func TestDeleteOpenObject(t *testing.T) {
	tb := NewTable()
	require.NoError(t, tb.Create(7))
	require.NoError(t, tb.Delete(7))
	assert.False(t, tb.Recording())
	assert.NoError(t, tb.Create(8))
}

func TestEdit(t *testing.T) {
	tb := NewTable()
	build(t, tb, 1, v(1), v(2))

	assert.ErrorIs(t, tb.Edit(2), ErrNoObject)
	assert.ErrorIs(t, tb.Edit(0), ErrInvalidID)

	require.NoError(t, tb.Edit(1))
	o := tb.Open()
	assert.Equal(t, o.Len()-1, o.Cursor())
	assert.ErrorIs(t, tb.Edit(1), ErrRecording)

	require.NoError(t, tb.Append(v(3)))
	require.NoError(t, tb.Close())
	assert.Equal(t, []string{"STARTTAG", "v3f", "v3f", "v3f", "ENDTAG"}, stream(o))
}

func TestTags(t *testing.T) {
	tb := NewTable()
	require.NoError(t, tb.Create(1))

	assert.True(t, tb.TagExists(gltypes.StartTag))
	assert.True(t, tb.TagExists(gltypes.EndTag))
	assert.False(t, tb.TagExists(7))

	require.NoError(t, tb.Append(v(1)))
	require.NoError(t, tb.CreateTag(7))
	require.NoError(t, tb.Append(v(2)))
	assert.True(t, tb.TagExists(7))

	assert.ErrorIs(t, tb.CreateTag(7), ErrTagExists)
	assert.ErrorIs(t, tb.CreateTag(gltypes.StartTag), ErrSentinelTag)
	assert.ErrorIs(t, tb.CreateTag(gltypes.EndTag), ErrSentinelTag)

	o := tb.Open()
	assert.Equal(t, []gltypes.Tag{7}, o.Tags())
	assert.Equal(t, []string{"STARTTAG", "v3f", "tag(7)", "v3f", "ENDTAG"}, stream(o))

	require.NoError(t, tb.DeleteTag(7))
	assert.False(t, tb.TagExists(7))
	assert.ErrorIs(t, tb.DeleteTag(7), ErrNoTag)
	assert.ErrorIs(t, tb.DeleteTag(gltypes.StartTag), ErrSentinelTag)
	assert.Equal(t, []string{"STARTTAG", "v3f", "v3f", "ENDTAG"}, stream(o))
	assert.Equal(t, 3, o.Cursor())
}

func TestTagsNeedOpenObject(t *testing.T) {
	tb := NewTable()
	build(t, tb, 1, gltypes.Tag(2))

	assert.ErrorIs(t, tb.CreateTag(3), ErrNotRecording)
	assert.ErrorIs(t, tb.DeleteTag(2), ErrNotRecording)
	assert.ErrorIs(t, tb.InsertAt(2), ErrNotRecording)
	assert.ErrorIs(t, tb.DeleteRange(gltypes.StartTag, 2), ErrNotRecording)
	assert.ErrorIs(t, tb.ReplaceAfter(2), ErrNotRecording)
	assert.ErrorIs(t, tb.RelocateTag(3, 2, 0), ErrNotRecording)
	assert.False(t, tb.TagExists(2))
	assert.True(t, tb.TagExists(gltypes.EndTag))
}

func TestInsertAt(t *testing.T) {
	tb := NewTable()
	o := build(t, tb, 1, v(1), gltypes.Tag(7), v(2))

	require.NoError(t, tb.Edit(1))
	require.NoError(t, tb.InsertAt(7))
	require.NoError(t, tb.Append(v(9)))
	require.NoError(t, tb.Append(v(10)))
	require.NoError(t, tb.Close())

	var xs []float32
	for c := range o.Commands() {
		xs = append(xs, c.(V3fCommand).V[0])
	}
	assert.Equal(t, []float32{1, 9, 10, 2}, xs)

	require.NoError(t, tb.Edit(1))
	assert.ErrorIs(t, tb.InsertAt(gltypes.EndTag), ErrSentinelTag)
	assert.ErrorIs(t, tb.InsertAt(8), ErrNoTag)
	require.NoError(t, tb.InsertAt(gltypes.StartTag))
	assert.Equal(t, 1, o.Cursor())
}

func TestDeleteRange(t *testing.T) {
	tb := NewTable()
	o := build(t, tb, 1,
		v(1), gltypes.Tag(10), v(2), PolfCommand{Points: [][3]float32{{0, 0, 0}, {1, 1, 1}}}, gltypes.Tag(20), v(3))
	require.NoError(t, tb.Edit(1))
	before := stream(o)

	assert.ErrorIs(t, tb.DeleteRange(10, 99), ErrNoTag)
	assert.ErrorIs(t, tb.DeleteRange(20, 10), ErrTagOrder)
	assert.ErrorIs(t, tb.DeleteRange(10, 10), ErrTagOrder)
	assert.Equal(t, before, stream(o))

	assert.Equal(t, 24, tb.Stats().OwnedBytes)
	require.NoError(t, tb.DeleteRange(10, 20))
	assert.Equal(t, []string{"STARTTAG", "v3f", "tag(10)", "tag(20)", "v3f", "ENDTAG"}, stream(o))
	assert.Equal(t, o.Len()-1, o.Cursor())
	assert.Equal(t, 0, tb.Stats().OwnedBytes)

	assert.ErrorIs(t, tb.DeleteRange(10, 20), ErrEmptyRange)
}

func TestDeleteRangeAdjacentSentinels(t *testing.T) {
	tb := NewTable()
	o := build(t, tb, 1)
	require.NoError(t, tb.Edit(1))
	assert.ErrorIs(t, tb.DeleteRange(gltypes.StartTag, gltypes.EndTag), ErrEmptyRange)
	assert.Equal(t, []string{"STARTTAG", "ENDTAG"}, stream(o))
}

func TestDeleteRangeWholeObject(t *testing.T) {
	tb := NewTable()
	o := build(t, tb, 1, v(1), gltypes.Tag(4), v(2))
	require.NoError(t, tb.Edit(1))
	require.NoError(t, tb.DeleteRange(gltypes.StartTag, gltypes.EndTag))
	assert.Equal(t, []string{"STARTTAG", "ENDTAG"}, stream(o))
	assert.Equal(t, 1, o.Cursor())
}

func TestReplaceAfter(t *testing.T) {
	tb := NewTable()
	o := build(t, tb, 1, gltypes.Tag(1), v(1), v(2), gltypes.Tag(2), v(3))

	require.NoError(t, tb.Edit(1))
	require.NoError(t, tb.ReplaceAfter(1))
	assert.Equal(t, 2, o.Cursor())
	require.NoError(t, tb.Append(v(7)))
	require.NoError(t, tb.Close())
	assert.Equal(t, []string{"STARTTAG", "tag(1)", "v3f", "tag(2)", "v3f", "ENDTAG"}, stream(o))

	var xs []float32
	for c := range o.Commands() {
		xs = append(xs, c.(V3fCommand).V[0])
	}
	assert.Equal(t, []float32{7, 3}, xs)

	require.NoError(t, tb.Edit(1))
	assert.ErrorIs(t, tb.ReplaceAfter(gltypes.EndTag), ErrSentinelTag)
	assert.ErrorIs(t, tb.ReplaceAfter(5), ErrNoTag)

	// Replacing after the last user tag runs up to EndTag.
	require.NoError(t, tb.ReplaceAfter(2))
	assert.Equal(t, []string{"STARTTAG", "tag(1)", "v3f", "tag(2)", "ENDTAG"}, stream(o))

	// An empty gap is not an error: nothing is removed and the cursor
	// moves into it.
	require.NoError(t, tb.ReplaceAfter(2))
	assert.Equal(t, 4, o.Cursor())
	assert.Equal(t, 5, o.Len())
	require.NoError(t, tb.Append(v(9)))
	assert.Equal(t, []string{"STARTTAG", "tag(1)", "v3f", "tag(2)", "v3f", "ENDTAG"}, stream(o))
}

func TestRelocateTag(t *testing.T) {
	tb := NewTable()
	o := build(t, tb, 1, gltypes.Tag(1), v(1), gltypes.Tag(2), v(2), v(3))
	require.NoError(t, tb.Edit(1))

	require.NoError(t, tb.RelocateTag(5, 1, 2))
	assert.Equal(t,
		[]string{"STARTTAG", "tag(1)", "v3f", "tag(2)", "v3f", "tag(5)", "v3f", "ENDTAG"},
		stream(o))

	require.NoError(t, tb.RelocateTag(6, gltypes.StartTag, 0))
	assert.Equal(t, "tag(6)", stream(o)[1])

	assert.ErrorIs(t, tb.RelocateTag(5, 1, 0), ErrTagExists)
	assert.ErrorIs(t, tb.RelocateTag(8, 9, 0), ErrNoTag)
	assert.ErrorIs(t, tb.RelocateTag(8, gltypes.EndTag, 0), ErrSentinelTag)
	assert.ErrorIs(t, tb.RelocateTag(gltypes.StartTag, 1, 0), ErrSentinelTag)
	assert.ErrorIs(t, tb.RelocateTag(8, 2, 3), ErrOffset)
	assert.ErrorIs(t, tb.RelocateTag(8, 1, -1), ErrOffset)
	assert.False(t, tb.TagExists(8))

	// Exactly the remaining number of calls lands just before EndTag.
	require.NoError(t, tb.RelocateTag(8, 2, 2))
	s := stream(o)
	assert.Equal(t, "tag(8)", s[len(s)-2])
}

func TestGrowthByChunk(t *testing.T) {
	tb := NewTable(WithChunk(4))
	require.NoError(t, tb.Create(1))
	o := tb.Open()
	assert.Equal(t, 4, o.Cap())

	require.NoError(t, tb.Append(v(1)))
	require.NoError(t, tb.Append(v(2)))
	assert.Equal(t, 4, o.Cap())
	require.NoError(t, tb.Append(v(3)))
	assert.Equal(t, 8, o.Cap())

	tb.SetChunk(0)
	tb.SetChunk(-3)
	assert.Equal(t, 4, tb.Chunk())
	tb.SetChunk(10)
	for i := range 4 {
		require.NoError(t, tb.Append(v(float32(i))))
	}
	assert.Equal(t, 9, o.Len())
	assert.Equal(t, 18, o.Cap())
}

func TestCompact(t *testing.T) {
	tb := NewTable(WithChunk(16))
	o := build(t, tb, 1, v(1), v(2))
	assert.Equal(t, 16, o.Cap())

	released, err := tb.Compact(1)
	require.NoError(t, err)
	assert.True(t, released)
	assert.Equal(t, 4, o.Cap())
	assert.Equal(t, []string{"STARTTAG", "v3f", "v3f", "ENDTAG"}, stream(o))

	released, err = tb.Compact(1)
	require.NoError(t, err)
	assert.False(t, released)

	_, err = tb.Compact(2)
	assert.ErrorIs(t, err, ErrNoObject)
	_, err = tb.Compact(0)
	assert.ErrorIs(t, err, ErrInvalidID)
}

func TestMaxRecords(t *testing.T) {
	tb := NewTable(WithMaxRecords(2))
	require.NoError(t, tb.Create(1))
	require.NoError(t, tb.Append(v(1)))
	require.NoError(t, tb.CreateTag(3))
	assert.ErrorIs(t, tb.Append(v(2)), ErrObjectFull)
	assert.ErrorIs(t, tb.CreateTag(4), ErrObjectFull)
	assert.Equal(t, []string{"STARTTAG", "v3f", "tag(3)", "ENDTAG"}, stream(tb.Open()))
	assert.Equal(t, 3, tb.Open().Cursor())
}

func TestGenobjGentag(t *testing.T) {
	tb := NewTable()
	assert.Equal(t, gltypes.ObjectID(1), tb.Genobj())
	build(t, tb, 1)
	build(t, tb, 2)
	build(t, tb, 4)
	assert.Equal(t, gltypes.ObjectID(3), tb.Genobj())
	assert.Equal(t, []gltypes.ObjectID{1, 2, 4}, tb.IDs())

	_, err := tb.Gentag()
	assert.ErrorIs(t, err, ErrNotRecording)

	require.NoError(t, tb.Edit(4))
	tag, err := tb.Gentag()
	require.NoError(t, err)
	assert.Equal(t, gltypes.Tag(1), tag)
	require.NoError(t, tb.CreateTag(1))
	require.NoError(t, tb.CreateTag(2))
	tag, err = tb.Gentag()
	require.NoError(t, err)
	assert.Equal(t, gltypes.Tag(3), tag)
}
