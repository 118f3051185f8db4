// SPDX-License-Identifier: MIT

// Package delaunay builds Delaunay triangulations of integer points.
//
// What:
//
//   - Random draws distinct lattice points inside a width×height rectangle.
//   - FromPoints triangulates an explicit point list.
//   - FromSeq consumes an iterator and drops points outside a rectangle.
//
// How:
//
// Points are inserted one at a time into a seed triangle that encloses the
// bounding rectangle. Each insertion descends the history of superseded
// triangles to the live triangle (or edge) holding the point, splits it, and
// flips edges until every quad around the new point satisfies the empty
// circumcircle condition. Triangles and shared edges live in an arena and refer
// to each other by index. Location and the flip test are exact: int64 when the
// coordinate deltas are small, math/big otherwise. Cocircular and colinear
// inputs are handled without epsilons. Coordinates are limited to ±MaxCoord.
//
// Duplicates are rejected, not reported as errors.
//
// Complexity:
//
//   - Expected O(n log n) for random input; O(n²) worst case.
//   - Memory: O(n) arena records, retained until the build returns.
//
// Errors:
//
//   - ErrBadBounds: negative dimensions, an inverted rectangle, or a coordinate
//     beyond MaxCoord.
//   - ErrTooManyPoints: more points requested than the rectangle holds.
package delaunay
