package history

import (
	"fmt"

	"github.com/mveld/canvasforge/internal/engine/object"
)

// Kind tags the closed set of reversible mutations.
type Kind uint8

const (
	KindCreate Kind = iota + 1
	KindDelete
	KindMove
	KindResize
	KindBatchMove
	KindBatchResize
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindCreate:
		return "create"
	case KindDelete:
		return "delete"
	case KindMove:
		return "move"
	case KindResize:
		return "resize"
	case KindBatchMove:
		return "batch move"
	case KindBatchResize:
		return "batch resize"
	default:
		return "unknown"
	}
}

// GeomChange records one object's geometry before and after a
// mutation; exactly what is needed to replay it in either direction.
type GeomChange struct {
	ID     object.ID
	Before object.AABB
	After  object.AABB
}

// Command is one reversible mutation. Only the fields relevant to its
// Kind are populated: Object for create/delete, Change for move and
// resize, Batch for the batch variants.
type Command struct {
	Kind   Kind
	Object object.Object
	Change GeomChange
	Batch  []GeomChange
}

// Description returns a short label for the command, suitable for
// host-facing undo menus.
func (c Command) Description() string {
	switch c.Kind {
	case KindBatchMove, KindBatchResize:
		return fmt.Sprintf("%s (%d objects)", c.Kind, len(c.Batch))
	default:
		return c.Kind.String()
	}
}

// Store is the mutation surface commands replay against. Implemented
// by the engine over the object table and spatial index; replays never
// generate new history entries.
type Store interface {
	// Restore re-inserts an object under its original id.
	Restore(obj object.Object)
	// Remove deletes an object from table and index.
	Remove(id object.ID)
	// SetBounds overwrites an object's geometry in table and index.
	SetBounds(id object.ID, bounds object.AABB)
}

// invert applies the command's inverse to st.
func (c Command) invert(st Store) {
	switch c.Kind {
	case KindCreate:
		st.Remove(c.Object.ID)
	case KindDelete:
		st.Restore(c.Object)
	case KindMove, KindResize:
		st.SetBounds(c.Change.ID, c.Change.Before)
	case KindBatchMove, KindBatchResize:
		for i := len(c.Batch) - 1; i >= 0; i-- {
			st.SetBounds(c.Batch[i].ID, c.Batch[i].Before)
		}
	}
}

// replay re-applies the command's forward mutation to st.
func (c Command) replay(st Store) {
	switch c.Kind {
	case KindCreate:
		st.Restore(c.Object)
	case KindDelete:
		st.Remove(c.Object.ID)
	case KindMove, KindResize:
		st.SetBounds(c.Change.ID, c.Change.After)
	case KindBatchMove, KindBatchResize:
		for _, ch := range c.Batch {
			st.SetBounds(ch.ID, ch.After)
		}
	}
}
