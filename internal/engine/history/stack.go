package history

import "time"

// DefaultMaxEntries bounds undo depth when no limit is configured.
const DefaultMaxEntries = 1000

// entry wraps a command with push-time metadata.
type entry struct {
	command   Command
	timestamp time.Time
}

// OperationInfo describes one history entry for host-facing display.
type OperationInfo struct {
	Description string
	Timestamp   time.Time
}

// History is the two-stack undo/redo log. It is not safe for
// concurrent use; it is owned by a single engine instance.
type History struct {
	undoStack []entry
	redoStack []entry

	maxEntries int
}

// New creates a history log. Non-positive limits select
// DefaultMaxEntries.
func New(maxEntries int) *History {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &History{maxEntries: maxEntries}
}

// Push records a committed mutation. Any redoable future is discarded:
// once a new mutation lands after an undo, the old timeline is gone.
func (h *History) Push(cmd Command) {
	h.undoStack = append(h.undoStack, entry{command: cmd, timestamp: time.Now()})
	h.redoStack = nil

	if len(h.undoStack) > h.maxEntries {
		excess := len(h.undoStack) - h.maxEntries
		h.undoStack = h.undoStack[excess:]
	}
}

// Undo pops the most recent command, applies its inverse to st, and
// moves it to the redo stack. Returns false if nothing can be undone.
func (h *History) Undo(st Store) bool {
	if len(h.undoStack) == 0 {
		return false
	}
	e := h.undoStack[len(h.undoStack)-1]
	h.undoStack = h.undoStack[:len(h.undoStack)-1]

	e.command.invert(st)
	h.redoStack = append(h.redoStack, e)
	return true
}

// Redo pops the most recently undone command, re-applies it to st, and
// moves it back to the undo stack. Returns false if nothing can be
// redone.
func (h *History) Redo(st Store) bool {
	if len(h.redoStack) == 0 {
		return false
	}
	e := h.redoStack[len(h.redoStack)-1]
	h.redoStack = h.redoStack[:len(h.redoStack)-1]

	e.command.replay(st)
	h.undoStack = append(h.undoStack, e)
	return true
}

// CanUndo reports whether an undo is available.
func (h *History) CanUndo() bool {
	return len(h.undoStack) > 0
}

// CanRedo reports whether a redo is available.
func (h *History) CanRedo() bool {
	return len(h.redoStack) > 0
}

// UndoCount returns the undo stack depth.
func (h *History) UndoCount() int {
	return len(h.undoStack)
}

// RedoCount returns the redo stack depth.
func (h *History) RedoCount() int {
	return len(h.redoStack)
}

// PeekUndo describes the next undo without performing it.
func (h *History) PeekUndo() (OperationInfo, bool) {
	if len(h.undoStack) == 0 {
		return OperationInfo{}, false
	}
	e := h.undoStack[len(h.undoStack)-1]
	return OperationInfo{Description: e.command.Description(), Timestamp: e.timestamp}, true
}

// PeekRedo describes the next redo without performing it.
func (h *History) PeekRedo() (OperationInfo, bool) {
	if len(h.redoStack) == 0 {
		return OperationInfo{}, false
	}
	e := h.redoStack[len(h.redoStack)-1]
	return OperationInfo{Description: e.command.Description(), Timestamp: e.timestamp}, true
}

// Clear drops both stacks.
func (h *History) Clear() {
	h.undoStack = nil
	h.redoStack = nil
}

// SetMaxEntries changes the undo depth limit, trimming the oldest
// entries if the stack already exceeds it.
func (h *History) SetMaxEntries(max int) {
	if max <= 0 {
		max = DefaultMaxEntries
	}
	h.maxEntries = max
	if len(h.undoStack) > max {
		excess := len(h.undoStack) - max
		h.undoStack = h.undoStack[excess:]
	}
}

// MaxEntries returns the undo depth limit.
func (h *History) MaxEntries() int {
	return h.maxEntries
}
