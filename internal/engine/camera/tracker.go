package camera

import (
	"github.com/mveld/canvasforge/internal/engine/object"
)

// Index is the viewport query half of the spatial index.
type Index interface {
	Query(view object.AABB) []object.ID
}

// Table resolves ids to object records.
type Table interface {
	Get(id object.ID) (object.Object, bool)
}

// Transform is a cached screen-space placement for one visible object.
// Rotation is carried for the host's benefit; the data model stores
// none, so it is always 0.
type Transform struct {
	X        float64
	Y        float64
	W        float64
	H        float64
	Rotation float64
}

// Tracker owns the camera plus the visible-object cache computed by
// the last Update call. Indexed accessors read only the cache; they
// never re-query.
type Tracker struct {
	cam     *Camera
	canvasW float64
	canvasH float64

	visible    []object.Object
	transforms []Transform
}

// NewTracker creates a tracker over cam with the given canvas size.
func NewTracker(cam *Camera, canvasW, canvasH float64) *Tracker {
	return &Tracker{cam: cam, canvasW: canvasW, canvasH: canvasH}
}

// Camera returns the tracked camera.
func (t *Tracker) Camera() *Camera { return t.cam }

// SetCanvasSize updates the host canvas dimensions used to derive the
// visible world rectangle.
func (t *Tracker) SetCanvasSize(w, h float64) {
	t.canvasW = w
	t.canvasH = h
}

// CanvasWidth returns the host canvas width.
func (t *Tracker) CanvasWidth() float64 { return t.canvasW }

// CanvasHeight returns the host canvas height.
func (t *Tracker) CanvasHeight() float64 { return t.canvasH }

// VisibleRect returns the world rectangle currently covered by the
// canvas at the camera's position and zoom.
func (t *Tracker) VisibleRect() object.AABB {
	return object.AABB{
		X: t.cam.X,
		Y: t.cam.Y,
		W: t.canvasW / t.cam.Zoom,
		H: t.canvasH / t.cam.Zoom,
	}
}

// Update recomputes the visible set: it queries idx with the current
// visible rectangle, resolves each id through tab, caches screen-space
// transforms, and returns the visible count.
func (t *Tracker) Update(idx Index, tab Table) int {
	t.visible = t.visible[:0]
	t.transforms = t.transforms[:0]

	zoom := t.cam.Zoom
	for _, id := range idx.Query(t.VisibleRect()) {
		obj, ok := tab.Get(id)
		if !ok {
			continue
		}
		t.visible = append(t.visible, obj)
		t.transforms = append(t.transforms, Transform{
			X: (obj.Bounds.X - t.cam.X) * zoom,
			Y: (obj.Bounds.Y - t.cam.Y) * zoom,
			W: obj.Bounds.W * zoom,
			H: obj.Bounds.H * zoom,
		})
	}
	return len(t.visible)
}

// VisibleCount returns the size of the cached visible set.
func (t *Tracker) VisibleCount() int { return len(t.visible) }

// VisibleID returns the id at position i in the cached visible set,
// or object.None out of range.
func (t *Tracker) VisibleID(i int) object.ID {
	if i < 0 || i >= len(t.visible) {
		return object.None
	}
	return t.visible[i].ID
}

// VisibleAssetID returns the asset reference at position i.
func (t *Tracker) VisibleAssetID(i int) int64 {
	if i < 0 || i >= len(t.visible) {
		return 0
	}
	return t.visible[i].AssetID
}

// VisibleType returns the type tag at position i.
func (t *Tracker) VisibleType(i int) int32 {
	if i < 0 || i >= len(t.visible) {
		return 0
	}
	return t.visible[i].Type
}

// TransformAt returns the cached screen transform at position i.
func (t *Tracker) TransformAt(i int) Transform {
	if i < 0 || i >= len(t.transforms) {
		return Transform{}
	}
	return t.transforms[i]
}

// Invalidate drops the cached visible set.
func (t *Tracker) Invalidate() {
	t.visible = t.visible[:0]
	t.transforms = t.transforms[:0]
}
