// Package spatial provides the quadtree index used for viewport
// culling. Nodes live in a flat arena addressed by integer handles,
// with a side map from object id to owning node for O(1) removal.
//
// An object whose bounds straddle more than one child quadrant is
// retained in the parent node rather than duplicated across children,
// so a query never reports the same id twice. Nodes are not merged
// back into their parents when they become sparse; under frequent
// move/resize traffic re-merging costs more than the slack it
// reclaims.
package spatial
