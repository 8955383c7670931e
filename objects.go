package irisgl

import (
	"errors"

	"github.com/gogpu/irisgl/gltypes"
	"github.com/gogpu/irisgl/object"
)

// CreateObject starts recording a new object under id. An existing object
// with that id is destroyed first. While the object is open every
// recordable call is appended to it instead of being executed.
func (c *Context) CreateObject(id gltypes.ObjectID) error {
	err := c.objects.Create(id)
	c.syncDispatch()
	return err
}

// CloseObject ends recording and restores immediate execution.
func (c *Context) CloseObject() error {
	err := c.objects.Close()
	c.syncDispatch()
	return err
}

// EditObject reopens an existing object. Recorded calls are inserted at
// the edit cursor, which starts just before the end of the object.
func (c *Context) EditObject(id gltypes.ObjectID) error {
	err := c.objects.Edit(id)
	c.syncDispatch()
	return err
}

// DeleteObject destroys an object and frees its id. Deleting the open
// object ends recording.
func (c *Context) DeleteObject(id gltypes.ObjectID) error {
	err := c.objects.Delete(id)
	c.syncDispatch()
	return err
}

// CreateTag inserts a tag at the edit cursor of the open object.
func (c *Context) CreateTag(tag gltypes.Tag) error { return c.objects.CreateTag(tag) }

// DeleteTag removes a tag from the open object.
func (c *Context) DeleteTag(tag gltypes.Tag) error { return c.objects.DeleteTag(tag) }

// TagExists reports whether the open object has tag.
func (c *Context) TagExists(tag gltypes.Tag) bool { return c.objects.TagExists(tag) }

// RelocateTag inserts tag after skipping offset recorded calls that follow
// the tag after.
func (c *Context) RelocateTag(tag, after gltypes.Tag, offset int) error {
	return c.objects.RelocateTag(tag, after, offset)
}

// InsertAt moves the edit cursor just after tag.
func (c *Context) InsertAt(tag gltypes.Tag) error { return c.objects.InsertAt(tag) }

// DeleteRange removes everything between two tags.
func (c *Context) DeleteRange(from, to gltypes.Tag) error { return c.objects.DeleteRange(from, to) }

// ReplaceAfter removes everything between tag and the next tag and moves
// the edit cursor into the gap.
func (c *Context) ReplaceAfter(tag gltypes.Tag) error { return c.objects.ReplaceAfter(tag) }

// SetChunkGrowth sets how many records objects grow by. Values <= 0 are
// ignored.
func (c *Context) SetChunkGrowth(n int) { c.objects.SetChunk(n) }

// Compact releases the unused capacity of an object.
func (c *Context) Compact(id gltypes.ObjectID) error {
	_, err := c.objects.Compact(id)
	return err
}

// rejected logs an error the legacy API swallows.
func (c *Context) rejected(op string, err error) {
	if err == nil {
		return
	}
	if errors.Is(err, object.ErrObjectFull) {
		c.log.Warn("irisgl: "+op+" dropped", "err", err)
		return
	}
	c.log.Debug("irisgl: "+op+" ignored", "err", err)
}

// Legacy entry points. They behave like the methods above but never report
// errors: invalid calls are silently ignored.

// Makeobj is the legacy name of CreateObject.
func (c *Context) Makeobj(id gltypes.ObjectID) { c.rejected("makeobj", c.CreateObject(id)) }

// Closeobj is the legacy name of CloseObject.
func (c *Context) Closeobj() { c.rejected("closeobj", c.CloseObject()) }

// Editobj is the legacy name of EditObject.
func (c *Context) Editobj(id gltypes.ObjectID) { c.rejected("editobj", c.EditObject(id)) }

// Delobj is the legacy name of DeleteObject.
func (c *Context) Delobj(id gltypes.ObjectID) { c.rejected("delobj", c.DeleteObject(id)) }

// Isobj reports whether an object exists.
func (c *Context) Isobj(id gltypes.ObjectID) bool { return c.objects.Exists(id) }

// Genobj returns an id that names no object.
func (c *Context) Genobj() gltypes.ObjectID { return c.objects.Genobj() }

// Getopenobj returns the id of the open object, or -1.
func (c *Context) Getopenobj() gltypes.ObjectID { return c.objects.OpenID() }

// Maketag is the legacy name of CreateTag.
func (c *Context) Maketag(tag gltypes.Tag) { c.rejected("maketag", c.CreateTag(tag)) }

// Deltag is the legacy name of DeleteTag.
func (c *Context) Deltag(tag gltypes.Tag) { c.rejected("deltag", c.DeleteTag(tag)) }

// Istag is the legacy name of TagExists.
func (c *Context) Istag(tag gltypes.Tag) bool { return c.TagExists(tag) }

// Newtag is the legacy name of RelocateTag.
func (c *Context) Newtag(tag, after gltypes.Tag, offset int32) {
	c.rejected("newtag", c.RelocateTag(tag, after, int(offset)))
}

// Gentag returns a tag unused in the open object, or 0 when none is open.
func (c *Context) Gentag() gltypes.Tag {
	tag, err := c.objects.Gentag()
	c.rejected("gentag", err)
	return tag
}

// Objinsert is the legacy name of InsertAt.
func (c *Context) Objinsert(tag gltypes.Tag) { c.rejected("objinsert", c.InsertAt(tag)) }

// Objdelete is the legacy name of DeleteRange.
func (c *Context) Objdelete(from, to gltypes.Tag) { c.rejected("objdelete", c.DeleteRange(from, to)) }

// Objreplace is the legacy name of ReplaceAfter.
func (c *Context) Objreplace(tag gltypes.Tag) { c.rejected("objreplace", c.ReplaceAfter(tag)) }

// Chunksize is the legacy name of SetChunkGrowth.
func (c *Context) Chunksize(n int32) { c.SetChunkGrowth(int(n)) }

// Compactify is the legacy name of Compact.
func (c *Context) Compactify(id gltypes.ObjectID) { c.rejected("compactify", c.Compact(id)) }
