package script

import (
	"strings"
	"testing"

	"github.com/mveld/canvasforge/internal/engine"
)

func newTestRunner(t *testing.T) (*Runner, *engine.Engine) {
	t.Helper()
	eng := engine.New()
	if err := eng.CreateCanvas(800, 600, 25); err != nil {
		t.Fatalf("CreateCanvas: %v", err)
	}
	r := NewRunner(eng)
	t.Cleanup(r.Close)
	return r, eng
}

func TestScriptBuildsScene(t *testing.T) {
	r, eng := newTestRunner(t)

	err := r.DoString(`
		local a = canvas.add(10, 20, 50, 50, 7, 1)
		local b = canvas.add(200, 200, 30, 30, 0, 0)
		canvas.move(a, 100, 100)
		canvas.delete(b)
	`)
	if err != nil {
		t.Fatalf("DoString: %v", err)
	}

	if got := eng.ObjectCount(); got != 1 {
		t.Fatalf("ObjectCount = %d, want 1", got)
	}
	id := eng.ObjectIDAt(0)
	if eng.ObjectX(id) != 100 || eng.ObjectY(id) != 100 {
		t.Errorf("position = (%v, %v), want (100, 100)",
			eng.ObjectX(id), eng.ObjectY(id))
	}
	if eng.ObjectAssetID(id) != 7 || eng.ObjectType(id) != 1 {
		t.Errorf("asset/type = (%d, %d), want (7, 1)",
			eng.ObjectAssetID(id), eng.ObjectType(id))
	}
}

func TestScriptMatchesDirectCalls(t *testing.T) {
	r, scripted := newTestRunner(t)

	direct := engine.New()
	if err := direct.CreateCanvas(800, 600, 25); err != nil {
		t.Fatalf("CreateCanvas: %v", err)
	}

	err := r.DoString(`
		for i = 1, 10 do
			canvas.add(i * 30, i * 20, 40, 40, 0, 0)
		end
		canvas.move(3, 500, 500)
		canvas.delete(7)
		canvas.undo()
	`)
	if err != nil {
		t.Fatalf("DoString: %v", err)
	}

	for i := 1; i <= 10; i++ {
		x := float64(i * 30)
		y := float64(i * 20)
		if _, err := direct.AddObject(x, y, 40, 40, 0, 0); err != nil {
			t.Fatalf("AddObject: %v", err)
		}
	}
	if err := direct.MoveObject(3, 500, 500); err != nil {
		t.Fatalf("MoveObject: %v", err)
	}
	if err := direct.DeleteObject(7); err != nil {
		t.Fatalf("DeleteObject: %v", err)
	}
	direct.Undo()

	if scripted.ObjectCount() != direct.ObjectCount() {
		t.Fatalf("count: scripted %d, direct %d",
			scripted.ObjectCount(), direct.ObjectCount())
	}
	for i := 0; i < direct.ObjectCount(); i++ {
		id := direct.ObjectIDAt(i)
		if scripted.ObjectIDAt(i) != id {
			t.Fatalf("id at %d: scripted %d, direct %d",
				i, scripted.ObjectIDAt(i), id)
		}
		if scripted.ObjectX(id) != direct.ObjectX(id) ||
			scripted.ObjectY(id) != direct.ObjectY(id) {
			t.Errorf("object %d position diverges", id)
		}
	}
	if scripted.StateVersion() != direct.StateVersion() {
		t.Errorf("version: scripted %d, direct %d",
			scripted.StateVersion(), direct.StateVersion())
	}
}

func TestScriptUndoRedo(t *testing.T) {
	r, eng := newTestRunner(t)

	err := r.DoString(`
		local id = canvas.add(10, 10, 20, 20, 0, 0)
		canvas.move(id, 300, 300)
		assert(canvas.undo())
		assert(canvas.x(id) == 10)
		assert(canvas.redo())
		assert(canvas.x(id) == 300)
		assert(not canvas.can_redo())
	`)
	if err != nil {
		t.Fatalf("DoString: %v", err)
	}
	if eng.ObjectX(1) != 300 {
		t.Errorf("ObjectX = %v, want 300", eng.ObjectX(1))
	}
}

func TestScriptBatch(t *testing.T) {
	r, eng := newTestRunner(t)

	err := r.DoString(`
		local a = canvas.add(0, 0, 10, 10, 0, 0)
		local b = canvas.add(50, 50, 10, 10, 0, 0)
		canvas.begin_move()
		canvas.add_move(a, 100, 0)
		canvas.add_move(b, 150, 50)
		canvas.end_move()
	`)
	if err != nil {
		t.Fatalf("DoString: %v", err)
	}
	if got := eng.UndoCount(); got != 3 {
		t.Fatalf("UndoCount = %d, want 3 (two adds, one batch)", got)
	}
	if !eng.Undo() {
		t.Fatal("Undo failed")
	}
	if eng.ObjectX(1) != 0 || eng.ObjectX(2) != 50 {
		t.Errorf("batch undo left (%v, %v), want (0, 50)",
			eng.ObjectX(1), eng.ObjectX(2))
	}
}

func TestScriptGridSnap(t *testing.T) {
	r, eng := newTestRunner(t)

	err := r.DoString(`
		canvas.set_snap(true)
		canvas.set_grid(50)
		local id = canvas.add(0, 0, 10, 10, 0, 0)
		canvas.move(id, 52, 48)
	`)
	if err != nil {
		t.Fatalf("DoString: %v", err)
	}
	if eng.ObjectX(1) != 50 || eng.ObjectY(1) != 50 {
		t.Errorf("snapped position = (%v, %v), want (50, 50)",
			eng.ObjectX(1), eng.ObjectY(1))
	}
}

func TestScriptVisible(t *testing.T) {
	r, _ := newTestRunner(t)

	err := r.DoString(`
		canvas.add(10, 10, 50, 50, 0, 0)
		canvas.add(100000, 100000, 50, 50, 0, 0)
		local vis = canvas.visible()
		assert(#vis == 1, "expected one visible object, got " .. #vis)
		assert(vis[1] == 1)
	`)
	if err != nil {
		t.Fatalf("DoString: %v", err)
	}
}

func TestScriptErrorsAreCatchable(t *testing.T) {
	r, _ := newTestRunner(t)

	err := r.DoString(`
		local ok, msg = pcall(function() canvas.move(99, 0, 0) end)
		assert(not ok)
		assert(string.find(msg, "object not found"))
	`)
	if err != nil {
		t.Fatalf("DoString: %v", err)
	}
}

func TestScriptRaisesOnUnknownObject(t *testing.T) {
	r, _ := newTestRunner(t)

	err := r.DoString(`canvas.delete(42)`)
	if err == nil {
		t.Fatal("expected error for unknown object")
	}
	if !strings.Contains(err.Error(), "object not found") {
		t.Errorf("error = %q, want object not found", err)
	}
}

func TestRunnerClosed(t *testing.T) {
	r, _ := newTestRunner(t)
	r.Close()
	r.Close()

	if err := r.DoString(`canvas.count()`); err != ErrRunnerClosed {
		t.Errorf("DoString after close = %v, want ErrRunnerClosed", err)
	}
}

func TestScriptSandbox(t *testing.T) {
	r, _ := newTestRunner(t)

	// os and io are never opened for scene scripts.
	err := r.DoString(`
		assert(os == nil)
		assert(io == nil)
	`)
	if err != nil {
		t.Fatalf("DoString: %v", err)
	}
}
