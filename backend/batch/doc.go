// Package batch provides a Backend that turns immediate-mode brackets into
// vertex-array draw batches for a WebGPU style renderer.
//
// Every bracket is expanded into a list topology (point, line or triangle
// list) so that consecutive brackets drawn with the same state merge into a
// single Batch. Vertices are transformed to clip space on submission, which
// lets matrix changes between brackets keep merging. Flat shading is baked
// into the vertex colors.
//
// Batches carry their vertices in a fixed interleaved layout described by
// VertexLayout, encoded with Batch.Bytes, and drawn with the WGSL program
// returned by ShaderSource:
//
//	b := batch.New(640, 480)
//	// ... drive b through irisgl ...
//	for _, bt := range b.Flush() {
//		upload(bt.Bytes(), bt.Primitive())
//	}
//
// Importing the package registers the backend as "batch".
package batch
