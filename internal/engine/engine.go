package engine

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/mveld/canvasforge/internal/engine/camera"
	"github.com/mveld/canvasforge/internal/engine/grid"
	"github.com/mveld/canvasforge/internal/engine/history"
	"github.com/mveld/canvasforge/internal/engine/object"
	"github.com/mveld/canvasforge/internal/engine/spatial"
	"github.com/mveld/canvasforge/internal/event"
	"github.com/mveld/canvasforge/internal/log"
)

// Re-export commonly used types for convenience.
type (
	// ID is a canvas object identifier.
	ID = object.ID

	// AABB is an axis-aligned bounding box in world space.
	AABB = object.AABB

	// Object is one placed canvas object.
	Object = object.Object

	// Transform is a cached screen-space placement.
	Transform = camera.Transform
)

// None is the reserved "no object" id sentinel.
const None = object.None

// batchKind tracks which batch transaction, if any, is open.
type batchKind uint8

const (
	batchNone batchKind = iota
	batchMove
	batchResize
)

// Engine is the canvas state engine: the authoritative object store,
// spatial index, camera tracker, grid snapper, and undo/redo history
// behind one flat operation surface.
//
// The engine is single-owner and performs no internal locking; every
// operation runs to completion on the caller's goroutine.
type Engine struct {
	table   *object.Table
	index   *spatial.Index
	tracker *camera.Tracker
	snapper *grid.Snapper
	history *history.History

	bus    *event.Bus
	logger *log.Logger

	version uint64
	docID   uuid.UUID

	batch        batchKind
	batchChanges []history.GeomChange

	// Configuration
	canvasW        float64
	canvasH        float64
	gridSize       float64
	gridSnap       bool
	minZoom        float64
	maxZoom        float64
	nodeCapacity   int
	maxTreeDepth   int
	maxUndoEntries int
}

// New creates an engine with an empty canvas.
func New(opts ...Option) *Engine {
	e := &Engine{
		canvasW:        DefaultCanvasWidth,
		canvasH:        DefaultCanvasHeight,
		gridSize:       DefaultGridSize,
		minZoom:        camera.DefaultMinZoom,
		maxZoom:        camera.DefaultMaxZoom,
		nodeCapacity:   spatial.DefaultNodeCapacity,
		maxTreeDepth:   spatial.DefaultMaxDepth,
		maxUndoEntries: history.DefaultMaxEntries,
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.bus == nil {
		e.bus = event.NewBus()
	}
	if e.logger == nil {
		e.logger = log.Nop()
	}

	e.table = object.NewTable()
	e.index = spatial.NewIndex(e.nodeCapacity, e.maxTreeDepth)
	e.snapper = grid.NewSnapper(e.gridSize)
	e.snapper.SetEnabled(e.gridSnap)
	e.history = history.New(e.maxUndoEntries)

	cam := camera.NewCamera(e.minZoom, e.maxZoom)
	e.tracker = camera.NewTracker(cam, e.canvasW, e.canvasH)

	e.docID = uuid.New()
	e.logger.Debug("engine created: canvas %gx%g, grid %g", e.canvasW, e.canvasH, e.gridSize)
	return e
}

// ============================================================================
// Canvas Lifecycle
// ============================================================================

// CreateCanvas resets the engine to an empty canvas of the given size
// and grid pitch: objects, index, and history are discarded, the
// camera returns to the origin at zoom 1, and a fresh document id is
// assigned.
func (e *Engine) CreateCanvas(w, h, gridSize float64) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("%w: canvas %gx%g", ErrInvalidGeometry, w, h)
	}
	if gridSize <= 0 {
		return fmt.Errorf("%w: grid size %g", ErrInvalidGeometry, gridSize)
	}

	e.table.Reset(false)
	e.index.Reset()
	e.history.Clear()
	e.snapper.SetSize(gridSize)
	e.gridSize = gridSize
	e.canvasW, e.canvasH = w, h
	e.tracker.SetCanvasSize(w, h)
	e.tracker.Camera().Reset()
	e.tracker.Invalidate()
	e.batch = batchNone
	e.batchChanges = nil
	e.docID = uuid.New()

	e.version++
	e.publish(event.TypeCanvasCreated, nil)
	e.logger.Info("canvas created: %gx%g, grid %g", w, h, gridSize)
	return nil
}

// ClearCanvas removes every object and all history while preserving
// camera position, zoom, canvas size, and grid configuration. Retired
// ids stay retired.
func (e *Engine) ClearCanvas() {
	e.table.Reset(true)
	e.index.Reset()
	e.history.Clear()
	e.tracker.Invalidate()
	e.batch = batchNone
	e.batchChanges = nil

	e.version++
	e.publish(event.TypeCanvasCleared, nil)
	e.logger.Info("canvas cleared")
}

// DocumentID identifies the logical document created by the last
// CreateCanvas call.
func (e *Engine) DocumentID() uuid.UUID {
	return e.docID
}

// ============================================================================
// Object Mutations
// ============================================================================

// AddObject places a new object and returns its id. The object's
// asset reference and type tag are stored opaquely.
func (e *Engine) AddObject(x, y, w, h float64, assetID int64, typ int32) (ID, error) {
	if w <= 0 || h <= 0 {
		e.logger.Debug("add rejected: %gx%g", w, h)
		return None, fmt.Errorf("%w: %gx%g", ErrInvalidGeometry, w, h)
	}

	bounds := AABB{X: x, Y: y, W: w, H: h}
	id := e.table.Add(bounds, assetID, typ)
	e.index.Insert(id, bounds)

	obj, _ := e.table.Get(id)
	e.history.Push(history.Command{Kind: history.KindCreate, Object: obj})

	e.version++
	e.publish(event.TypeObjectAdded, []ID{id})
	return id, nil
}

// MoveObject repositions an object, snapping the new position to the
// grid when snapping is enabled.
func (e *Engine) MoveObject(id ID, x, y float64) error {
	obj, ok := e.table.Get(id)
	if !ok {
		return fmt.Errorf("%w: id %d", ErrObjectNotFound, id)
	}

	change := e.applyMove(obj, x, y)
	e.history.Push(history.Command{Kind: history.KindMove, Change: change})

	e.version++
	e.publish(event.TypeObjectMoved, []ID{id})
	return nil
}

// ResizeObject changes an object's position and size. The position is
// snapped to the grid when snapping is enabled; dimensions are stored
// as given.
func (e *Engine) ResizeObject(id ID, x, y, w, h float64) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("%w: %gx%g", ErrInvalidGeometry, w, h)
	}
	obj, ok := e.table.Get(id)
	if !ok {
		return fmt.Errorf("%w: id %d", ErrObjectNotFound, id)
	}

	change := e.applyResize(obj, x, y, w, h)
	e.history.Push(history.Command{Kind: history.KindResize, Change: change})

	e.version++
	e.publish(event.TypeObjectResized, []ID{id})
	return nil
}

// DeleteObject removes an object permanently; its id is never
// reissued. Undo recreates it under the original id.
func (e *Engine) DeleteObject(id ID) error {
	obj, ok := e.table.Get(id)
	if !ok {
		return fmt.Errorf("%w: id %d", ErrObjectNotFound, id)
	}

	e.table.Delete(id)
	e.index.Remove(id)
	e.history.Push(history.Command{Kind: history.KindDelete, Object: obj})

	e.version++
	e.publish(event.TypeObjectDeleted, []ID{id})
	return nil
}

// DeleteObjects removes each listed object, skipping unknown ids
// without aborting the rest. Returns the number actually deleted.
// The whole call counts as one state-version increment.
func (e *Engine) DeleteObjects(ids []ID) int {
	var deleted []ID
	for _, id := range ids {
		obj, ok := e.table.Get(id)
		if !ok {
			e.logger.Debug("delete skipped unknown id %d", id)
			continue
		}
		e.table.Delete(id)
		e.index.Remove(id)
		e.history.Push(history.Command{Kind: history.KindDelete, Object: obj})
		deleted = append(deleted, id)
	}
	if len(deleted) == 0 {
		return 0
	}

	e.version++
	e.publish(event.TypeObjectDeleted, deleted)
	return len(deleted)
}

// applyMove snaps and writes a new position to table and index,
// returning the change record.
func (e *Engine) applyMove(obj Object, x, y float64) history.GeomChange {
	x, y = e.snapper.Snap(x, y)
	after := AABB{X: x, Y: y, W: obj.Bounds.W, H: obj.Bounds.H}
	e.table.SetBounds(obj.ID, after)
	e.index.Update(obj.ID, after)
	return history.GeomChange{ID: obj.ID, Before: obj.Bounds, After: after}
}

// applyResize snaps the position and writes the new bounds to table
// and index, returning the change record.
func (e *Engine) applyResize(obj Object, x, y, w, h float64) history.GeomChange {
	x, y = e.snapper.Snap(x, y)
	after := AABB{X: x, Y: y, W: w, H: h}
	e.table.SetBounds(obj.ID, after)
	e.index.Update(obj.ID, after)
	return history.GeomChange{ID: obj.ID, Before: obj.Bounds, After: after}
}

// ============================================================================
// Batch Mutations
// ============================================================================

// BeginBatchMove opens a move transaction: subsequent AddToBatchMove
// calls apply immediately but share one history entry committed by
// EndBatchMove.
func (e *Engine) BeginBatchMove() error {
	return e.beginBatch(batchMove)
}

// AddToBatchMove moves one object inside the open move batch.
func (e *Engine) AddToBatchMove(id ID, x, y float64) error {
	if e.batch != batchMove {
		return fmt.Errorf("%w: no open move batch", ErrInvalidBatchState)
	}
	obj, ok := e.table.Get(id)
	if !ok {
		return fmt.Errorf("%w: id %d", ErrObjectNotFound, id)
	}
	e.batchChanges = append(e.batchChanges, e.applyMove(obj, x, y))
	return nil
}

// EndBatchMove commits the open move batch as a single history entry
// and a single state-version increment. An empty batch records
// nothing.
func (e *Engine) EndBatchMove() error {
	return e.endBatch(batchMove, history.KindBatchMove, event.TypeObjectMoved)
}

// BeginBatchResize opens a resize transaction.
func (e *Engine) BeginBatchResize() error {
	return e.beginBatch(batchResize)
}

// AddToBatchResize resizes one object inside the open resize batch.
func (e *Engine) AddToBatchResize(id ID, x, y, w, h float64) error {
	if e.batch != batchResize {
		return fmt.Errorf("%w: no open resize batch", ErrInvalidBatchState)
	}
	if w <= 0 || h <= 0 {
		return fmt.Errorf("%w: %gx%g", ErrInvalidGeometry, w, h)
	}
	obj, ok := e.table.Get(id)
	if !ok {
		return fmt.Errorf("%w: id %d", ErrObjectNotFound, id)
	}
	e.batchChanges = append(e.batchChanges, e.applyResize(obj, x, y, w, h))
	return nil
}

// EndBatchResize commits the open resize batch.
func (e *Engine) EndBatchResize() error {
	return e.endBatch(batchResize, history.KindBatchResize, event.TypeObjectResized)
}

func (e *Engine) beginBatch(kind batchKind) error {
	if e.batch != batchNone {
		return fmt.Errorf("%w: batch already open", ErrInvalidBatchState)
	}
	e.batch = kind
	e.batchChanges = nil
	return nil
}

func (e *Engine) endBatch(kind batchKind, cmdKind history.Kind, evType event.Type) error {
	if e.batch != kind {
		return fmt.Errorf("%w: no open batch", ErrInvalidBatchState)
	}
	changes := e.batchChanges
	e.batch = batchNone
	e.batchChanges = nil

	if len(changes) == 0 {
		return nil
	}

	e.history.Push(history.Command{Kind: cmdKind, Batch: changes})

	ids := make([]ID, len(changes))
	for i, ch := range changes {
		ids[i] = ch.ID
	}
	e.version++
	e.publish(evType, ids)
	return nil
}

// ============================================================================
// Object Reads
// ============================================================================

// ObjectCount returns the number of live objects.
func (e *Engine) ObjectCount() int {
	return e.table.Len()
}

// ObjectIDAt returns the id at position i in insertion order, or None
// out of range.
func (e *Engine) ObjectIDAt(i int) ID {
	return e.table.IDAt(i)
}

// GetObject returns the full record for id.
func (e *Engine) GetObject(id ID) (Object, bool) {
	return e.table.Get(id)
}

// ObjectExists reports whether id names a live object.
func (e *Engine) ObjectExists(id ID) bool {
	return e.table.Exists(id)
}

// ObjectX returns the object's world x, or 0 for an unknown id.
func (e *Engine) ObjectX(id ID) float64 {
	obj, _ := e.table.Get(id)
	return obj.Bounds.X
}

// ObjectY returns the object's world y, or 0 for an unknown id.
func (e *Engine) ObjectY(id ID) float64 {
	obj, _ := e.table.Get(id)
	return obj.Bounds.Y
}

// ObjectWidth returns the object's width, or 0 for an unknown id.
func (e *Engine) ObjectWidth(id ID) float64 {
	obj, _ := e.table.Get(id)
	return obj.Bounds.W
}

// ObjectHeight returns the object's height, or 0 for an unknown id.
func (e *Engine) ObjectHeight(id ID) float64 {
	obj, _ := e.table.Get(id)
	return obj.Bounds.H
}

// ObjectAssetID returns the object's opaque asset reference.
func (e *Engine) ObjectAssetID(id ID) int64 {
	obj, _ := e.table.Get(id)
	return obj.AssetID
}

// ObjectType returns the object's opaque type tag.
func (e *Engine) ObjectType(id ID) int32 {
	obj, _ := e.table.Get(id)
	return obj.Type
}

// ============================================================================
// Camera and Viewport
// ============================================================================

// Pan shifts the camera by a screen-space delta. Camera movement is
// never undoable and does not bump the state version.
func (e *Engine) Pan(dx, dy float64) {
	e.tracker.Camera().Pan(dx, dy)
}

// ZoomAt applies a zoom delta anchored at the screen point (cx, cy).
func (e *Engine) ZoomAt(cx, cy, delta float64) {
	e.tracker.Camera().ZoomAt(cx, cy, delta)
}

// UpdateViewport recomputes the visible set from the current camera
// and caches per-object screen transforms. Returns the visible count.
func (e *Engine) UpdateViewport() int {
	n := e.tracker.Update(e.index, e.table)
	e.publish(event.TypeViewportChanged, nil)
	return n
}

// VisibleCount returns the size of the last computed visible set.
func (e *Engine) VisibleCount() int {
	return e.tracker.VisibleCount()
}

// VisibleObjectID reads the cached visible id at index i.
func (e *Engine) VisibleObjectID(i int) ID {
	return e.tracker.VisibleID(i)
}

// VisibleAssetID reads the cached asset reference at index i.
func (e *Engine) VisibleAssetID(i int) int64 {
	return e.tracker.VisibleAssetID(i)
}

// VisibleType reads the cached type tag at index i.
func (e *Engine) VisibleType(i int) int32 {
	return e.tracker.VisibleType(i)
}

// TransformX reads the cached screen x at index i.
func (e *Engine) TransformX(i int) float64 {
	return e.tracker.TransformAt(i).X
}

// TransformY reads the cached screen y at index i.
func (e *Engine) TransformY(i int) float64 {
	return e.tracker.TransformAt(i).Y
}

// TransformWidth reads the cached screen width at index i.
func (e *Engine) TransformWidth(i int) float64 {
	return e.tracker.TransformAt(i).W
}

// TransformHeight reads the cached screen height at index i.
func (e *Engine) TransformHeight(i int) float64 {
	return e.tracker.TransformAt(i).H
}

// TransformRotation reads the cached rotation at index i. The data
// model carries no rotation, so this is always 0.
func (e *Engine) TransformRotation(i int) float64 {
	return e.tracker.TransformAt(i).Rotation
}

// CameraX returns the camera world x offset.
func (e *Engine) CameraX() float64 {
	return e.tracker.Camera().X
}

// CameraY returns the camera world y offset.
func (e *Engine) CameraY() float64 {
	return e.tracker.Camera().Y
}

// CameraZoom returns the camera zoom.
func (e *Engine) CameraZoom() float64 {
	return e.tracker.Camera().Zoom
}

// CanvasWidth returns the host canvas width.
func (e *Engine) CanvasWidth() float64 {
	return e.tracker.CanvasWidth()
}

// CanvasHeight returns the host canvas height.
func (e *Engine) CanvasHeight() float64 {
	return e.tracker.CanvasHeight()
}

// UpdateCanvasSize tracks a host resize. The visible rectangle changes
// but canvas content does not, so the state version is untouched.
func (e *Engine) UpdateCanvasSize(w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	e.canvasW, e.canvasH = w, h
	e.tracker.SetCanvasSize(w, h)
}

// ============================================================================
// Undo/Redo
// ============================================================================

// replayStore applies history replays directly to table and index
// without generating new commands.
type replayStore struct {
	e *Engine
}

func (s replayStore) Restore(obj object.Object) {
	s.e.table.Restore(obj)
	s.e.index.Insert(obj.ID, obj.Bounds)
}

func (s replayStore) Remove(id object.ID) {
	s.e.table.Delete(id)
	s.e.index.Remove(id)
}

func (s replayStore) SetBounds(id object.ID, bounds object.AABB) {
	s.e.table.SetBounds(id, bounds)
	s.e.index.Update(id, bounds)
}

// Undo reverts the most recent mutation. Returns false with no state
// change if the undo stack is empty.
func (e *Engine) Undo() bool {
	if !e.history.Undo(replayStore{e}) {
		return false
	}
	e.version++
	e.publish(event.TypeHistoryApplied, nil)
	return true
}

// Redo re-applies the most recently undone mutation. Returns false
// with no state change if the redo stack is empty.
func (e *Engine) Redo() bool {
	if !e.history.Redo(replayStore{e}) {
		return false
	}
	e.version++
	e.publish(event.TypeHistoryApplied, nil)
	return true
}

// CanUndo reports whether an undo is available.
func (e *Engine) CanUndo() bool {
	return e.history.CanUndo()
}

// CanRedo reports whether a redo is available.
func (e *Engine) CanRedo() bool {
	return e.history.CanRedo()
}

// UndoCount returns the undo stack depth.
func (e *Engine) UndoCount() int {
	return e.history.UndoCount()
}

// RedoCount returns the redo stack depth.
func (e *Engine) RedoCount() int {
	return e.history.RedoCount()
}

// PeekUndo describes the next undo operation without performing it.
func (e *Engine) PeekUndo() (history.OperationInfo, bool) {
	return e.history.PeekUndo()
}

// PeekRedo describes the next redo operation without performing it.
func (e *Engine) PeekRedo() (history.OperationInfo, bool) {
	return e.history.PeekRedo()
}

// ============================================================================
// Grid and Version
// ============================================================================

// SetGridSnap toggles grid snapping for subsequent moves and resizes.
func (e *Engine) SetGridSnap(enabled bool) {
	e.snapper.SetEnabled(enabled)
}

// GridSnap reports whether grid snapping is active.
func (e *Engine) GridSnap() bool {
	return e.snapper.Enabled()
}

// SetGridSize sets the grid pitch. Non-positive values are ignored.
func (e *Engine) SetGridSize(size float64) {
	if size <= 0 {
		e.logger.Debug("grid size %g ignored", size)
		return
	}
	e.gridSize = size
	e.snapper.SetSize(size)
}

// GridSize returns the grid pitch.
func (e *Engine) GridSize() float64 {
	return e.snapper.Size()
}

// StateVersion returns the monotonically increasing content version.
// It increments by exactly one per committed mutating call (a full
// batch counts as one) and never moves for camera-only changes.
func (e *Engine) StateVersion() uint64 {
	return e.version
}

// Events returns the engine's event bus for host subscriptions.
func (e *Engine) Events() *event.Bus {
	return e.bus
}

func (e *Engine) publish(typ event.Type, ids []ID) {
	e.bus.Publish(event.Event{Type: typ, IDs: ids, Version: e.version})
}
