package object

import "errors"

// Errors returned by Table operations. The legacy entry points treat all of
// them as silent no-ops.
var (
	ErrInvalidID    = errors.New("object: invalid object id")
	ErrRecording    = errors.New("object: an object is already open")
	ErrNotRecording = errors.New("object: no object is open")
	ErrNoObject     = errors.New("object: no such object")
	ErrTagExists    = errors.New("object: tag already exists")
	ErrNoTag        = errors.New("object: no such tag")
	ErrSentinelTag  = errors.New("object: operation not allowed on a sentinel tag")
	ErrTagOrder     = errors.New("object: second tag does not follow the first")
	ErrEmptyRange   = errors.New("object: no records between tags")
	ErrOffset       = errors.New("object: not enough records after tag")
	ErrObjectFull   = errors.New("object: record limit reached")
)
