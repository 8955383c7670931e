package object

import (
	"iter"
	"slices"
	"strconv"

	"github.com/gogpu/irisgl/gltypes"
)

// Record is one entry of an object: a tag marker when Cmd is nil,
// a recorded call otherwise.
type Record struct {
	Tag gltypes.Tag
	Cmd Command
}

// IsTag reports whether r is a tag marker.
func (r Record) IsTag() bool { return r.Cmd == nil }

// String returns the tag number or the operation name.
func (r Record) String() string {
	if r.IsTag() {
		switch r.Tag {
		case gltypes.StartTag:
			return "STARTTAG"
		case gltypes.EndTag:
			return "ENDTAG"
		}
		return "tag(" + strconv.Itoa(int(r.Tag)) + ")"
	}
	return r.Cmd.Op().String()
}

// Object is a recorded display list.
//
// records[0] is always the StartTag marker and the last record is always the
// EndTag marker. cursor is the index at which the next record is inserted;
// it lies in [1, len(records)-1].
type Object struct {
	id      gltypes.ObjectID
	records []Record
	cursor  int
}

func newObject(id gltypes.ObjectID, chunk int) *Object {
	o := &Object{
		id:      id,
		records: make([]Record, 0, max(chunk, 2)),
	}
	o.records = append(o.records,
		Record{Tag: gltypes.StartTag},
		Record{Tag: gltypes.EndTag},
	)
	o.cursor = 1
	return o
}

// ID returns the object identifier.
func (o *Object) ID() gltypes.ObjectID { return o.id }

// Len returns the number of records, sentinel tags included.
func (o *Object) Len() int { return len(o.records) }

// Cap returns the number of records the object can hold before it grows.
func (o *Object) Cap() int { return cap(o.records) }

// Cursor returns the index at which the next record will be inserted.
func (o *Object) Cursor() int { return o.cursor }

// Records returns a copy of every record, sentinels included.
func (o *Object) Records() []Record { return slices.Clone(o.records) }

// Commands yields the recorded calls between StartTag and EndTag in order.
func (o *Object) Commands() iter.Seq[Command] {
	return func(yield func(Command) bool) {
		for _, r := range o.records[1 : len(o.records)-1] {
			if r.IsTag() {
				continue
			}
			if !yield(r.Cmd) {
				return
			}
		}
	}
}

// NumCommands returns the number of recorded calls.
func (o *Object) NumCommands() int {
	n := 0
	for _, r := range o.records {
		if !r.IsTag() {
			n++
		}
	}
	return n
}

// Tags returns the user tags in stream order.
func (o *Object) Tags() []gltypes.Tag {
	var tags []gltypes.Tag
	for _, r := range o.records[1 : len(o.records)-1] {
		if r.IsTag() {
			tags = append(tags, r.Tag)
		}
	}
	return tags
}

// HasTag reports whether tag is present. Sentinels are always present.
func (o *Object) HasTag(tag gltypes.Tag) bool {
	return tag.IsSentinel() || o.index(tag) >= 0
}

// index returns the record index of a tag marker, or -1.
func (o *Object) index(tag gltypes.Tag) int {
	for i, r := range o.records {
		if r.IsTag() && r.Tag == tag {
			return i
		}
	}
	return -1
}

// insert places r at position i, growing capacity by chunk records when full.
func (o *Object) insert(i int, r Record, chunk int) {
	if len(o.records) == cap(o.records) {
		grown := make([]Record, len(o.records), cap(o.records)+chunk)
		copy(grown, o.records)
		o.records = grown
	}
	o.records = slices.Insert(o.records, i, r)
	if o.cursor >= i {
		o.cursor++
	}
}

// remove deletes records [i, j) and keeps the cursor on the same record
// where possible.
func (o *Object) remove(i, j int) {
	o.records = slices.Delete(o.records, i, j)
	switch {
	case o.cursor >= j:
		o.cursor -= j - i
	case o.cursor > i:
		o.cursor = i
	}
}

// compact drops unused capacity. It reports whether anything was released.
func (o *Object) compact() bool {
	if len(o.records) == cap(o.records) {
		return false
	}
	exact := make([]Record, len(o.records))
	copy(exact, o.records)
	o.records = exact
	return true
}

// stats accumulates the records and owned bytes of o.
func (o *Object) stats(s *Stats) {
	for _, r := range o.records {
		if r.IsTag() {
			if !r.Tag.IsSentinel() {
				s.Tags++
			}
			continue
		}
		s.Records++
		if ow, ok := r.Cmd.(Owner); ok {
			s.OwnedBytes += ow.OwnedBytes()
		}
	}
}
