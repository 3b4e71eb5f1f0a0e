// Package object defines the core canvas data model: object ids,
// axis-aligned bounding boxes, and the Table that is the canonical
// store of placed objects.
//
// Ids are positive integers allocated in increasing order and never
// reused; 0 is the reserved "no object" sentinel. The Table preserves
// insertion order so hosts can iterate objects by index without
// holding references into engine internals.
package object
