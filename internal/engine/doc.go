// Package engine provides the canvas state engine for canvasforge.
//
// The engine is the authoritative store for placed-object geometry on
// an infinite 2D canvas. It combines an object table, a quadtree
// spatial index for viewport culling, camera/viewport bookkeeping,
// grid quantization, and a command-based undo/redo history behind one
// flat, numeric operation surface.
//
// # Architecture
//
// The engine facade is built on several sub-packages:
//
//   - object: object ids, AABBs, and the canonical object table
//   - spatial: arena-based quadtree index (O(log n) updates, O(log n + k) queries)
//   - history: command sum type and two-stack undo/redo log
//   - camera: camera state and the visible-object transform cache
//   - grid: grid snapping
//
// # Ownership
//
// The engine is synchronous and single-owner: it performs no internal
// locking and must be driven by one logical caller. Hosts that need
// cross-goroutine access serialize calls themselves.
//
// # Basic Usage
//
// Create an engine and place objects:
//
//	e := engine.New()
//	e.CreateCanvas(800, 600, 25)
//
//	id, _ := e.AddObject(0, 0, 100, 100, 1, 1)
//	e.MoveObject(id, 50, 50)
//
//	e.Undo() // back to (0, 0)
//	e.Redo() // forward to (50, 50)
//
// # Viewport Queries
//
// Hosts render from the cached visible set:
//
//	n := e.UpdateViewport()
//	for i := 0; i < n; i++ {
//	    id := e.VisibleObjectID(i)
//	    x, y := e.TransformX(i), e.TransformY(i)
//	    w, h := e.TransformWidth(i), e.TransformHeight(i)
//	    // draw object id at (x, y) size (w, h)
//	}
//
// The cache is only refreshed by UpdateViewport; StateVersion gives a
// cheap dirty check to skip recomputation when nothing changed.
//
// # Batched Drags
//
// Group per-frame drag updates into one undo step:
//
//	e.BeginBatchMove()
//	for _, id := range selection {
//	    e.AddToBatchMove(id, newX(id), newY(id)) // applies immediately
//	}
//	e.EndBatchMove() // one history entry, one version bump
//
// # Configuration
//
// Configure at creation time, directly or from a loaded config file:
//
//	cfg, _ := config.Load("canvasforge.toml")
//	e := engine.New(
//	    engine.WithConfig(cfg),
//	    engine.WithGridSnap(true),
//	    engine.WithLogger(logger),
//	)
//
// # Error Handling
//
// The package defines three sentinel errors:
//
//   - ErrObjectNotFound: unknown, deleted, or sentinel-zero id
//   - ErrInvalidGeometry: non-positive width or height
//   - ErrInvalidBatchState: mismatched begin/end batch calls
//
// A rejected call never changes engine state. Undo/redo against empty
// stacks report false rather than an error, since hosts poll
// CanUndo/CanRedo routinely.
package engine
