package object

import (
	"maps"
	"slices"

	"github.com/gogpu/irisgl/gltypes"
)

// DefaultChunk is the number of records an object grows by when full.
const DefaultChunk = 64

// Stats describes the live contents of a Table.
type Stats struct {
	// Objects is the number of existing objects.
	Objects int
	// Records is the number of recorded calls across all objects.
	Records int
	// Tags is the number of user tags across all objects.
	Tags int
	// OwnedBytes is the size of point lists and strings held by records.
	OwnedBytes int
}

// Option configures a Table.
type Option func(*Table)

// WithChunk sets the growth increment in records. Values <= 0 are ignored.
func WithChunk(n int) Option {
	return func(t *Table) {
		if n > 0 {
			t.chunk = n
		}
	}
}

// WithMaxRecords limits the number of records, tags included, an object may
// hold besides its sentinels. Zero means unlimited.
func WithMaxRecords(n int) Option {
	return func(t *Table) {
		if n >= 0 {
			t.maxRecords = n
		}
	}
}

// Table owns every object of a context and tracks the open one.
// It is not safe for concurrent use.
type Table struct {
	objects    map[gltypes.ObjectID]*Object
	open       *Object
	chunk      int
	maxRecords int
}

// NewTable creates an empty object table.
func NewTable(opts ...Option) *Table {
	t := &Table{
		objects: make(map[gltypes.ObjectID]*Object),
		chunk:   DefaultChunk,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Create makes a new empty object and opens it for recording.
// An existing object with the same id is destroyed first.
func (t *Table) Create(id gltypes.ObjectID) error {
	if !id.Valid() {
		return ErrInvalidID
	}
	if t.open != nil {
		return ErrRecording
	}
	delete(t.objects, id)
	o := newObject(id, t.chunk)
	t.objects[id] = o
	t.open = o
	return nil
}

// Close ends recording. The edit cursor of the closed object returns to just
// after StartTag.
func (t *Table) Close() error {
	if t.open == nil {
		return ErrNotRecording
	}
	t.open.cursor = 1
	t.open = nil
	return nil
}

// Edit opens an existing object for editing with the cursor just before
// EndTag.
func (t *Table) Edit(id gltypes.ObjectID) error {
	if t.open != nil {
		return ErrRecording
	}
	if !id.Valid() {
		return ErrInvalidID
	}
	o, ok := t.objects[id]
	if !ok {
		return ErrNoObject
	}
	o.cursor = len(o.records) - 1
	t.open = o
	return nil
}

// Delete destroys an object and frees its id. Deleting the open object
// also ends recording.
func (t *Table) Delete(id gltypes.ObjectID) error {
	if !id.Valid() {
		return ErrInvalidID
	}
	o, ok := t.objects[id]
	if !ok {
		return ErrNoObject
	}
	if t.open == o {
		t.open = nil
	}
	clear(o.records)
	o.records = nil
	delete(t.objects, id)
	return nil
}

// Get returns the object with the given id.
func (t *Table) Get(id gltypes.ObjectID) (*Object, bool) {
	o, ok := t.objects[id]
	return o, ok
}

// Exists reports whether an object with the given id exists.
func (t *Table) Exists(id gltypes.ObjectID) bool {
	_, ok := t.objects[id]
	return ok
}

// IDs returns the ids of all objects in ascending order.
func (t *Table) IDs() []gltypes.ObjectID {
	return slices.Sorted(maps.Keys(t.objects))
}

// Open returns the object open for recording, or nil.
func (t *Table) Open() *Object { return t.open }

// OpenID returns the id of the open object, or -1.
func (t *Table) OpenID() gltypes.ObjectID {
	if t.open == nil {
		return -1
	}
	return t.open.id
}

// Recording reports whether an object is open.
func (t *Table) Recording() bool { return t.open != nil }

// Append inserts cmd at the cursor of the open object.
// Nothing is written when the object is full.
func (t *Table) Append(cmd Command) error {
	if t.open == nil {
		return ErrNotRecording
	}
	return t.insert(t.open, t.open.cursor, Record{Cmd: cmd})
}

func (t *Table) insert(o *Object, i int, r Record) error {
	if t.maxRecords > 0 && len(o.records)-2 >= t.maxRecords {
		return ErrObjectFull
	}
	o.insert(i, r, t.chunk)
	return nil
}

// CreateTag inserts a tag marker at the cursor of the open object.
func (t *Table) CreateTag(tag gltypes.Tag) error {
	if t.open == nil {
		return ErrNotRecording
	}
	if tag.IsSentinel() {
		return ErrSentinelTag
	}
	if t.open.index(tag) >= 0 {
		return ErrTagExists
	}
	return t.insert(t.open, t.open.cursor, Record{Tag: tag})
}

// DeleteTag removes a user tag from the open object.
func (t *Table) DeleteTag(tag gltypes.Tag) error {
	if t.open == nil {
		return ErrNotRecording
	}
	if tag.IsSentinel() {
		return ErrSentinelTag
	}
	i := t.open.index(tag)
	if i < 0 {
		return ErrNoTag
	}
	t.open.remove(i, i+1)
	return nil
}

// TagExists reports whether tag is in the open object.
// Sentinel tags always exist.
func (t *Table) TagExists(tag gltypes.Tag) bool {
	if tag.IsSentinel() {
		return true
	}
	return t.open != nil && t.open.index(tag) >= 0
}

// RelocateTag inserts newTag after skipping offset recorded calls that
// follow the marker of after.
func (t *Table) RelocateTag(newTag, after gltypes.Tag, offset int) error {
	o := t.open
	if o == nil {
		return ErrNotRecording
	}
	if newTag.IsSentinel() {
		return ErrSentinelTag
	}
	if o.index(newTag) >= 0 {
		return ErrTagExists
	}
	if after == gltypes.EndTag {
		return ErrSentinelTag
	}
	a := o.index(after)
	if a < 0 {
		return ErrNoTag
	}
	if offset < 0 {
		return ErrOffset
	}
	end := len(o.records) - 1
	i := a + 1
	for n := 0; n < offset; i++ {
		if i >= end {
			return ErrOffset
		}
		if !o.records[i].IsTag() {
			n++
		}
	}
	return t.insert(o, i, Record{Tag: newTag})
}

// InsertAt moves the cursor of the open object to just after tag.
func (t *Table) InsertAt(tag gltypes.Tag) error {
	if t.open == nil {
		return ErrNotRecording
	}
	if tag == gltypes.EndTag {
		return ErrSentinelTag
	}
	i := t.open.index(tag)
	if i < 0 {
		return ErrNoTag
	}
	t.open.cursor = i + 1
	return nil
}

// DeleteRange removes every record strictly between two tags of the open
// object and leaves the cursor just before EndTag.
func (t *Table) DeleteRange(from, to gltypes.Tag) error {
	o := t.open
	if o == nil {
		return ErrNotRecording
	}
	i, j := o.index(from), o.index(to)
	if i < 0 || j < 0 {
		return ErrNoTag
	}
	if j <= i {
		return ErrTagOrder
	}
	if j == i+1 {
		return ErrEmptyRange
	}
	o.remove(i+1, j)
	o.cursor = len(o.records) - 1
	return nil
}

// ReplaceAfter removes the records between tag and the next tag marker of
// the open object and moves the cursor into the gap. An empty gap only
// moves the cursor.
func (t *Table) ReplaceAfter(tag gltypes.Tag) error {
	o := t.open
	if o == nil {
		return ErrNotRecording
	}
	if tag == gltypes.EndTag {
		return ErrSentinelTag
	}
	i := o.index(tag)
	if i < 0 {
		return ErrNoTag
	}
	j := i + 1
	for !o.records[j].IsTag() {
		j++
	}
	if j > i+1 {
		o.remove(i+1, j)
	}
	o.cursor = i + 1
	return nil
}

// SetChunk sets the growth increment for future growth. Values <= 0 are
// ignored.
func (t *Table) SetChunk(n int) {
	if n > 0 {
		t.chunk = n
	}
}

// Chunk returns the growth increment in records.
func (t *Table) Chunk() int { return t.chunk }

// Compact releases unused capacity of an object. It reports whether any
// capacity was released.
func (t *Table) Compact(id gltypes.ObjectID) (bool, error) {
	if !id.Valid() {
		return false, ErrInvalidID
	}
	o, ok := t.objects[id]
	if !ok {
		return false, ErrNoObject
	}
	return o.compact(), nil
}

// Genobj returns the smallest positive id not naming an object.
func (t *Table) Genobj() gltypes.ObjectID {
	id := gltypes.ObjectID(1)
	for t.Exists(id) {
		id++
	}
	return id
}

// Gentag returns the smallest positive tag not used in the open object.
func (t *Table) Gentag() (gltypes.Tag, error) {
	if t.open == nil {
		return 0, ErrNotRecording
	}
	tag := gltypes.Tag(1)
	for t.open.index(tag) >= 0 {
		tag++
	}
	return tag, nil
}

// Stats returns counters over every live object.
func (t *Table) Stats() Stats {
	s := Stats{Objects: len(t.objects)}
	for _, o := range t.objects {
		o.stats(&s)
	}
	return s
}
