package object

import "testing"

func TestAddAssignsSequentialIDs(t *testing.T) {
	tab := NewTable()

	id1 := tab.Add(AABB{0, 0, 10, 10}, 7, 1)
	id2 := tab.Add(AABB{20, 20, 5, 5}, 8, 2)

	if id1 != 1 {
		t.Errorf("first id = %d, want 1", id1)
	}
	if id2 != 2 {
		t.Errorf("second id = %d, want 2", id2)
	}
	if tab.Len() != 2 {
		t.Errorf("Len() = %d, want 2", tab.Len())
	}
}

func TestGetReturnsStoredFields(t *testing.T) {
	tab := NewTable()
	id := tab.Add(AABB{1, 2, 3, 4}, 42, 9)

	obj, ok := tab.Get(id)
	if !ok {
		t.Fatal("Get() did not find object")
	}
	if obj.Bounds != (AABB{1, 2, 3, 4}) {
		t.Errorf("Bounds = %+v, want {1 2 3 4}", obj.Bounds)
	}
	if obj.AssetID != 42 {
		t.Errorf("AssetID = %d, want 42", obj.AssetID)
	}
	if obj.Type != 9 {
		t.Errorf("Type = %d, want 9", obj.Type)
	}
}

func TestDeleteRetiresID(t *testing.T) {
	tab := NewTable()
	id := tab.Add(AABB{0, 0, 1, 1}, 0, 0)

	if !tab.Delete(id) {
		t.Fatal("Delete() returned false for live id")
	}
	if tab.Exists(id) {
		t.Error("object still exists after delete")
	}
	if tab.Delete(id) {
		t.Error("second Delete() returned true")
	}

	next := tab.Add(AABB{0, 0, 1, 1}, 0, 0)
	if next == id {
		t.Errorf("deleted id %d was reissued", id)
	}
}

func TestRestorePreservesOriginalID(t *testing.T) {
	tab := NewTable()
	id := tab.Add(AABB{5, 5, 10, 10}, 3, 2)
	obj, _ := tab.Get(id)

	tab.Delete(id)
	tab.Restore(obj)

	got, ok := tab.Get(id)
	if !ok {
		t.Fatal("restored object not found")
	}
	if got != obj {
		t.Errorf("restored object = %+v, want %+v", got, obj)
	}

	// A fresh allocation must still not collide with the restored id.
	next := tab.Add(AABB{0, 0, 1, 1}, 0, 0)
	if next <= id {
		t.Errorf("allocation after restore returned %d, want > %d", next, id)
	}
}

func TestIDAtFollowsInsertionOrder(t *testing.T) {
	tab := NewTable()
	a := tab.Add(AABB{0, 0, 1, 1}, 0, 0)
	b := tab.Add(AABB{0, 0, 1, 1}, 0, 0)
	c := tab.Add(AABB{0, 0, 1, 1}, 0, 0)

	tab.Delete(b)

	if got := tab.IDAt(0); got != a {
		t.Errorf("IDAt(0) = %d, want %d", got, a)
	}
	if got := tab.IDAt(1); got != c {
		t.Errorf("IDAt(1) = %d, want %d", got, c)
	}
	if got := tab.IDAt(2); got != None {
		t.Errorf("IDAt(2) = %d, want None", got)
	}
}

func TestResetRetireIDs(t *testing.T) {
	tab := NewTable()
	tab.Add(AABB{0, 0, 1, 1}, 0, 0)
	tab.Add(AABB{0, 0, 1, 1}, 0, 0)

	tab.Reset(true)
	if tab.Len() != 0 {
		t.Errorf("Len() after reset = %d, want 0", tab.Len())
	}
	if id := tab.Add(AABB{0, 0, 1, 1}, 0, 0); id != 3 {
		t.Errorf("id after retiring reset = %d, want 3", id)
	}

	tab.Reset(false)
	if id := tab.Add(AABB{0, 0, 1, 1}, 0, 0); id != 1 {
		t.Errorf("id after fresh reset = %d, want 1", id)
	}
}

func TestAABBIntersects(t *testing.T) {
	tests := []struct {
		name string
		a, b AABB
		want bool
	}{
		{"overlap", AABB{0, 0, 10, 10}, AABB{5, 5, 10, 10}, true},
		{"disjoint x", AABB{0, 0, 10, 10}, AABB{20, 0, 5, 5}, false},
		{"disjoint y", AABB{0, 0, 10, 10}, AABB{0, 20, 5, 5}, false},
		{"edge touch", AABB{0, 0, 10, 10}, AABB{10, 0, 5, 5}, true},
		{"contained", AABB{0, 0, 100, 100}, AABB{10, 10, 5, 5}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersects(tt.b); got != tt.want {
				t.Errorf("Intersects = %v, want %v", got, tt.want)
			}
			if got := tt.b.Intersects(tt.a); got != tt.want {
				t.Errorf("Intersects (reversed) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAABBContains(t *testing.T) {
	outer := AABB{0, 0, 100, 100}

	if !outer.Contains(AABB{10, 10, 20, 20}) {
		t.Error("Contains() = false for inner rect")
	}
	if outer.Contains(AABB{90, 90, 20, 20}) {
		t.Error("Contains() = true for straddling rect")
	}
	if !outer.Contains(outer) {
		t.Error("Contains() = false for identical rect")
	}
}
