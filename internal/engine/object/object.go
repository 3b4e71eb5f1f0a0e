package object

// ID uniquely identifies a canvas object. IDs are engine-assigned,
// strictly increasing, and never reused after deletion.
type ID uint64

// None is the reserved "no object" sentinel.
const None ID = 0

// AABB is an axis-aligned bounding box in world space.
type AABB struct {
	X float64
	Y float64
	W float64
	H float64
}

// Intersects reports whether the two rectangles overlap.
// Edge-touching rectangles count as intersecting.
func (a AABB) Intersects(b AABB) bool {
	return a.X <= b.X+b.W && a.X+a.W >= b.X &&
		a.Y <= b.Y+b.H && a.Y+a.H >= b.Y
}

// Contains reports whether b lies entirely inside a.
func (a AABB) Contains(b AABB) bool {
	return b.X >= a.X && b.Y >= a.Y &&
		b.X+b.W <= a.X+a.W && b.Y+b.H <= a.Y+a.H
}

// Object is one placed canvas object. AssetID and Type are opaque
// host-owned values; the engine stores and returns them unchanged.
type Object struct {
	ID      ID
	Bounds  AABB
	AssetID int64
	Type    int32
}
