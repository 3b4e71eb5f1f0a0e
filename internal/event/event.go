package event

import (
	"time"

	"github.com/mveld/canvasforge/internal/engine/object"
)

// Type identifies what changed on the canvas.
type Type uint8

const (
	// TypeCanvasCreated fires when a canvas is (re)created.
	TypeCanvasCreated Type = iota + 1
	// TypeCanvasCleared fires when all objects are removed at once.
	TypeCanvasCleared
	// TypeObjectAdded fires for each newly created object.
	TypeObjectAdded
	// TypeObjectMoved fires for moves, including each batch-move entry.
	TypeObjectMoved
	// TypeObjectResized fires for resizes, including batch entries.
	TypeObjectResized
	// TypeObjectDeleted fires for each removed object.
	TypeObjectDeleted
	// TypeHistoryApplied fires after a successful undo or redo.
	TypeHistoryApplied
	// TypeViewportChanged fires after the visible set is recomputed.
	TypeViewportChanged
)

// String returns the event type name.
func (t Type) String() string {
	switch t {
	case TypeCanvasCreated:
		return "canvas.created"
	case TypeCanvasCleared:
		return "canvas.cleared"
	case TypeObjectAdded:
		return "object.added"
	case TypeObjectMoved:
		return "object.moved"
	case TypeObjectResized:
		return "object.resized"
	case TypeObjectDeleted:
		return "object.deleted"
	case TypeHistoryApplied:
		return "history.applied"
	case TypeViewportChanged:
		return "viewport.changed"
	default:
		return "unknown"
	}
}

// Event is one canvas change notification. Events are immutable once
// published.
type Event struct {
	// Type is what happened.
	Type Type

	// IDs are the affected object ids, if any.
	IDs []object.ID

	// Version is the engine state version after the change.
	Version uint64

	// Timestamp is when the event was published.
	Timestamp time.Time
}
