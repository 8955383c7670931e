// Package object implements legacy display list objects.
//
// An Object is an ordered sequence of records. Each record is either a tag
// marker or a recorded Command. Every object starts with the StartTag marker
// and ends with the EndTag marker; user tags sit anywhere between them and
// name insertion and deletion points for editing.
//
// Objects live in a Table, which allows at most one object to be open at a
// time. Commands appended while an object is open are inserted at its edit
// cursor. A closed object is replayed by iterating Commands and calling
// Replay on each with the executing Dispatcher.
//
// # Example
//
//	t := object.NewTable()
//	_ = t.Create(5)
//	_ = t.Append(object.BgnpolygonCommand{})
//	_ = t.Append(object.V3fCommand{V: [3]float32{0, 0, 0}})
//	_ = t.Append(object.EndpolygonCommand{})
//	_ = t.Close()
//
//	obj, _ := t.Get(5)
//	for cmd := range obj.Commands() {
//		cmd.Replay(d)
//	}
package object
