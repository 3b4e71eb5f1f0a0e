// Package history implements the command-based undo/redo log.
//
// A Command is a tagged record over a closed set of mutation kinds,
// carrying exactly the prior and new values needed to run in either
// direction; inversion dispatches by switching on the tag. The History
// keeps two stacks: pushing a new command always clears the redo
// stack, undo moves entries from one stack to the other, and batch
// commands revert every member as one atomic step.
//
// Replays are applied through the Store interface and never create new
// history entries themselves.
package history
