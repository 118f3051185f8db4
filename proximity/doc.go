// SPDX-License-Identifier: MIT

// Package proximity answers nearest-entity queries over fixed 2D positions.
//
// Two indexes share the Index contract:
//
//   - Grid buckets entities into square cells over a bounded area and searches
//     outward from the query cell ring by ring. The search stops as soon as no
//     unseen ring can hold anything closer, so results are exact.
//   - Tree stores entities in an R-tree (github.com/dhconnelly/rtreego) and
//     needs no bounds.
//
// Entities never move once inserted. Both indexes hand back the stored items
// themselves and are not safe for concurrent mutation.
package proximity
