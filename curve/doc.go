// Package curve evaluates legacy basis-matrix curves and patches.
//
// A legacy cubic curve segment is defined by a 4x4 basis matrix B and four
// control points G: P(t) = [t³ t² t 1]·B·G. The evaluator works in the
// Bezier basis only, so every segment is first converted into Bezier control
// points Q = Mb⁻¹·B·G, where Mb is the Bezier basis matrix, and then
// evaluated with the Bernstein polynomials. Patches convert the same way in
// both parametric directions.
//
// Evaluation produces polylines of homogeneous points ready to be submitted
// as line strips.
package curve
