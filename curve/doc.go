// Package curve builds value curves on top of sample sets.
//
// The sample package resolves a parameter to a bin and a fraction but never
// blends values. This package does the blending for the common cases:
//
//   - Linear: a piecewise-linear float64 function of a float64 parameter
//   - Keyframes: an animation track over any ordered parameter, blending
//     arbitrary values with a caller-supplied LerpFunc
//   - ArcLength: an arc-length table for a 2D polyline, mapping travelled
//     distance back to the polyline parameter and position
//
// Every type keeps a sample.Cursor internally, so evaluating with slowly
// increasing parameters (playing an animation, walking a path) resolves each
// query from the previous bin instead of a full search.
//
// Like sample.Set, none of these types are safe for concurrent use; each
// evaluation updates the internal cursor.
package curve
