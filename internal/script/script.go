package script

import (
	"errors"

	lua "github.com/yuin/gopher-lua"

	"github.com/mveld/canvasforge/internal/engine"
	"github.com/mveld/canvasforge/internal/engine/object"
)

// ErrRunnerClosed is returned when executing on a closed runner.
var ErrRunnerClosed = errors.New("script runner is closed")

// Runner executes Lua scene scripts against one engine instance. The
// runner shares the engine's single-owner model: scripts run on the
// caller's goroutine and must not be executed concurrently with other
// engine calls.
type Runner struct {
	L      *lua.LState
	eng    *engine.Engine
	closed bool
}

// NewRunner creates a runner bound to eng. Only safe Lua standard
// libraries are opened: base, table, string, and math. File system and
// OS access are intentionally unavailable to scene scripts.
func NewRunner(eng *engine.Engine) *Runner {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})

	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	r := &Runner{L: L, eng: eng}
	r.register()
	return r
}

// DoString executes a Lua chunk.
func (r *Runner) DoString(src string) error {
	if r.closed {
		return ErrRunnerClosed
	}
	return r.L.DoString(src)
}

// DoFile executes a Lua script file.
func (r *Runner) DoFile(path string) error {
	if r.closed {
		return ErrRunnerClosed
	}
	return r.L.DoFile(path)
}

// Close releases the Lua state. Safe to call more than once.
func (r *Runner) Close() {
	if r.closed {
		return
	}
	r.closed = true
	r.L.Close()
}

// register installs the canvas module. Every function maps 1:1 onto
// the engine's flat numeric surface; engine rejections surface as Lua
// errors so scripts can pcall around them.
func (r *Runner) register() {
	funcs := map[string]lua.LGFunction{
		"create":       r.create,
		"clear":        r.clear,
		"add":          r.add,
		"move":         r.move,
		"resize":       r.resize,
		"delete":       r.delete,
		"delete_many":  r.deleteMany,
		"begin_move":   r.beginMove,
		"add_move":     r.addMove,
		"end_move":     r.endMove,
		"begin_resize": r.beginResize,
		"add_resize":   r.addResize,
		"end_resize":   r.endResize,
		"count":        r.count,
		"ids":          r.ids,
		"x":            r.objectX,
		"y":            r.objectY,
		"width":        r.objectWidth,
		"height":       r.objectHeight,
		"asset":        r.objectAsset,
		"kind":         r.objectKind,
		"exists":       r.exists,
		"pan":          r.pan,
		"zoom":         r.zoom,
		"visible":      r.visible,
		"undo":         r.undo,
		"redo":         r.redo,
		"can_undo":     r.canUndo,
		"can_redo":     r.canRedo,
		"set_snap":     r.setSnap,
		"set_grid":     r.setGrid,
		"grid":         r.grid,
		"version":      r.version,
	}

	mod := r.L.SetFuncs(r.L.NewTable(), funcs)
	r.L.SetGlobal("canvas", mod)
}

func (r *Runner) create(L *lua.LState) int {
	err := r.eng.CreateCanvas(
		float64(L.CheckNumber(1)),
		float64(L.CheckNumber(2)),
		float64(L.CheckNumber(3)))
	if err != nil {
		L.RaiseError("create: %v", err)
	}
	return 0
}

func (r *Runner) clear(L *lua.LState) int {
	r.eng.ClearCanvas()
	return 0
}

func (r *Runner) add(L *lua.LState) int {
	id, err := r.eng.AddObject(
		float64(L.CheckNumber(1)),
		float64(L.CheckNumber(2)),
		float64(L.CheckNumber(3)),
		float64(L.CheckNumber(4)),
		int64(L.OptNumber(5, 0)),
		int32(L.OptNumber(6, 0)))
	if err != nil {
		L.RaiseError("add: %v", err)
	}
	L.Push(lua.LNumber(id))
	return 1
}

func (r *Runner) move(L *lua.LState) int {
	err := r.eng.MoveObject(checkID(L, 1),
		float64(L.CheckNumber(2)), float64(L.CheckNumber(3)))
	if err != nil {
		L.RaiseError("move: %v", err)
	}
	return 0
}

func (r *Runner) resize(L *lua.LState) int {
	err := r.eng.ResizeObject(checkID(L, 1),
		float64(L.CheckNumber(2)), float64(L.CheckNumber(3)),
		float64(L.CheckNumber(4)), float64(L.CheckNumber(5)))
	if err != nil {
		L.RaiseError("resize: %v", err)
	}
	return 0
}

func (r *Runner) delete(L *lua.LState) int {
	if err := r.eng.DeleteObject(checkID(L, 1)); err != nil {
		L.RaiseError("delete: %v", err)
	}
	return 0
}

func (r *Runner) deleteMany(L *lua.LState) int {
	tbl := L.CheckTable(1)
	var ids []engine.ID
	tbl.ForEach(func(_, v lua.LValue) {
		if n, ok := v.(lua.LNumber); ok {
			ids = append(ids, engine.ID(n))
		}
	})
	L.Push(lua.LNumber(r.eng.DeleteObjects(ids)))
	return 1
}

func (r *Runner) beginMove(L *lua.LState) int {
	if err := r.eng.BeginBatchMove(); err != nil {
		L.RaiseError("begin_move: %v", err)
	}
	return 0
}

func (r *Runner) addMove(L *lua.LState) int {
	err := r.eng.AddToBatchMove(checkID(L, 1),
		float64(L.CheckNumber(2)), float64(L.CheckNumber(3)))
	if err != nil {
		L.RaiseError("add_move: %v", err)
	}
	return 0
}

func (r *Runner) endMove(L *lua.LState) int {
	if err := r.eng.EndBatchMove(); err != nil {
		L.RaiseError("end_move: %v", err)
	}
	return 0
}

func (r *Runner) beginResize(L *lua.LState) int {
	if err := r.eng.BeginBatchResize(); err != nil {
		L.RaiseError("begin_resize: %v", err)
	}
	return 0
}

func (r *Runner) addResize(L *lua.LState) int {
	err := r.eng.AddToBatchResize(checkID(L, 1),
		float64(L.CheckNumber(2)), float64(L.CheckNumber(3)),
		float64(L.CheckNumber(4)), float64(L.CheckNumber(5)))
	if err != nil {
		L.RaiseError("add_resize: %v", err)
	}
	return 0
}

func (r *Runner) endResize(L *lua.LState) int {
	if err := r.eng.EndBatchResize(); err != nil {
		L.RaiseError("end_resize: %v", err)
	}
	return 0
}

func (r *Runner) count(L *lua.LState) int {
	L.Push(lua.LNumber(r.eng.ObjectCount()))
	return 1
}

// ids returns every live object id as a Lua array in insertion order.
func (r *Runner) ids(L *lua.LState) int {
	tbl := L.NewTable()
	for i := 0; i < r.eng.ObjectCount(); i++ {
		tbl.RawSetInt(i+1, lua.LNumber(r.eng.ObjectIDAt(i)))
	}
	L.Push(tbl)
	return 1
}

func (r *Runner) objectX(L *lua.LState) int {
	L.Push(lua.LNumber(r.eng.ObjectX(checkID(L, 1))))
	return 1
}

func (r *Runner) objectY(L *lua.LState) int {
	L.Push(lua.LNumber(r.eng.ObjectY(checkID(L, 1))))
	return 1
}

func (r *Runner) objectWidth(L *lua.LState) int {
	L.Push(lua.LNumber(r.eng.ObjectWidth(checkID(L, 1))))
	return 1
}

func (r *Runner) objectHeight(L *lua.LState) int {
	L.Push(lua.LNumber(r.eng.ObjectHeight(checkID(L, 1))))
	return 1
}

func (r *Runner) objectAsset(L *lua.LState) int {
	L.Push(lua.LNumber(r.eng.ObjectAssetID(checkID(L, 1))))
	return 1
}

func (r *Runner) objectKind(L *lua.LState) int {
	L.Push(lua.LNumber(r.eng.ObjectType(checkID(L, 1))))
	return 1
}

func (r *Runner) exists(L *lua.LState) int {
	L.Push(lua.LBool(r.eng.ObjectExists(checkID(L, 1))))
	return 1
}

func (r *Runner) pan(L *lua.LState) int {
	r.eng.Pan(float64(L.CheckNumber(1)), float64(L.CheckNumber(2)))
	return 0
}

func (r *Runner) zoom(L *lua.LState) int {
	r.eng.ZoomAt(
		float64(L.CheckNumber(1)),
		float64(L.CheckNumber(2)),
		float64(L.CheckNumber(3)))
	return 0
}

// visible refreshes the viewport and returns the visible ids as a Lua
// array.
func (r *Runner) visible(L *lua.LState) int {
	n := r.eng.UpdateViewport()
	tbl := L.NewTable()
	for i := 0; i < n; i++ {
		tbl.RawSetInt(i+1, lua.LNumber(r.eng.VisibleObjectID(i)))
	}
	L.Push(tbl)
	return 1
}

func (r *Runner) undo(L *lua.LState) int {
	L.Push(lua.LBool(r.eng.Undo()))
	return 1
}

func (r *Runner) redo(L *lua.LState) int {
	L.Push(lua.LBool(r.eng.Redo()))
	return 1
}

func (r *Runner) canUndo(L *lua.LState) int {
	L.Push(lua.LBool(r.eng.CanUndo()))
	return 1
}

func (r *Runner) canRedo(L *lua.LState) int {
	L.Push(lua.LBool(r.eng.CanRedo()))
	return 1
}

func (r *Runner) setSnap(L *lua.LState) int {
	r.eng.SetGridSnap(L.CheckBool(1))
	return 0
}

func (r *Runner) setGrid(L *lua.LState) int {
	r.eng.SetGridSize(float64(L.CheckNumber(1)))
	return 0
}

func (r *Runner) grid(L *lua.LState) int {
	L.Push(lua.LNumber(r.eng.GridSize()))
	return 1
}

func (r *Runner) version(L *lua.LState) int {
	L.Push(lua.LNumber(r.eng.StateVersion()))
	return 1
}

func checkID(L *lua.LState, n int) object.ID {
	return object.ID(L.CheckNumber(n))
}
