package object

// Table is the canonical store of canvas objects. It assigns ids,
// keeps records addressable by id, and preserves insertion order for
// indexed host reads.
//
// The table is not safe for concurrent use; it is owned by a single
// engine instance.
type Table struct {
	records map[ID]Object
	order   []ID
	nextID  ID
}

// NewTable creates an empty table. The first allocated id is 1.
func NewTable() *Table {
	return &Table{
		records: make(map[ID]Object),
		nextID:  1,
	}
}

// Add inserts a new object with the given geometry and host tags and
// returns the allocated id. Geometry validation is the caller's
// responsibility.
func (t *Table) Add(bounds AABB, assetID int64, typ int32) ID {
	id := t.nextID
	t.nextID++

	t.records[id] = Object{ID: id, Bounds: bounds, AssetID: assetID, Type: typ}
	t.order = append(t.order, id)
	return id
}

// Restore re-inserts an object under its original id. Used when a
// deletion is undone; the id counter is advanced past the restored id
// so it can never be handed out again.
func (t *Table) Restore(obj Object) {
	t.records[obj.ID] = obj
	t.order = append(t.order, obj.ID)
	if obj.ID >= t.nextID {
		t.nextID = obj.ID + 1
	}
}

// Get returns the object for id.
func (t *Table) Get(id ID) (Object, bool) {
	obj, ok := t.records[id]
	return obj, ok
}

// Exists reports whether id names a live object.
func (t *Table) Exists(id ID) bool {
	_, ok := t.records[id]
	return ok
}

// SetBounds overwrites the stored geometry for id.
func (t *Table) SetBounds(id ID, bounds AABB) bool {
	obj, ok := t.records[id]
	if !ok {
		return false
	}
	obj.Bounds = bounds
	t.records[id] = obj
	return true
}

// Delete removes id from the table. The id is retired permanently.
func (t *Table) Delete(id ID) bool {
	if _, ok := t.records[id]; !ok {
		return false
	}
	delete(t.records, id)
	for i, oid := range t.order {
		if oid == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return true
}

// Len returns the number of live objects.
func (t *Table) Len() int {
	return len(t.records)
}

// IDAt returns the id at position i in insertion order, or None if i
// is out of range.
func (t *Table) IDAt(i int) ID {
	if i < 0 || i >= len(t.order) {
		return None
	}
	return t.order[i]
}

// All returns the live objects in insertion order.
func (t *Table) All() []Object {
	out := make([]Object, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.records[id])
	}
	return out
}

// Reset empties the table. When retireIDs is true the id counter is
// preserved so previously issued ids stay retired; otherwise the
// counter restarts at 1 (fresh canvas).
func (t *Table) Reset(retireIDs bool) {
	t.records = make(map[ID]Object)
	t.order = nil
	if !retireIDs {
		t.nextID = 1
	}
}
