package spatial

import (
	"github.com/mveld/canvasforge/internal/engine/object"
)

// Default tuning values. Capacity bounds how many objects a leaf holds
// before splitting; depth bounds how fine the tree subdivides.
const (
	DefaultNodeCapacity = 8
	DefaultMaxDepth     = 8
)

// worldHalf is the half-extent of the root node. Objects outside the
// root simply stay in the root's list, so the canvas itself remains
// unbounded.
const worldHalf = 1 << 21

const noChild = int32(-1)

// node is one quadtree cell. Children are arena handles; a node either
// has no children or exactly four, in fixed NW, NE, SW, SE order.
type node struct {
	bounds   object.AABB
	objects  []object.ID
	children [4]int32
	depth    int
	split    bool
}

// Index is an arena-backed quadtree over object bounding boxes.
// It is not safe for concurrent use.
type Index struct {
	nodes    []node
	locate   map[object.ID]int32
	bounds   map[object.ID]object.AABB
	capacity int
	maxDepth int
}

// NewIndex creates an empty index. Non-positive capacity or depth
// select the package defaults.
func NewIndex(capacity, maxDepth int) *Index {
	if capacity <= 0 {
		capacity = DefaultNodeCapacity
	}
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	idx := &Index{
		capacity: capacity,
		maxDepth: maxDepth,
	}
	idx.Reset()
	return idx
}

// Reset discards all nodes and objects, leaving a fresh root.
func (idx *Index) Reset() {
	idx.nodes = idx.nodes[:0]
	idx.nodes = append(idx.nodes, node{
		bounds:   object.AABB{X: -worldHalf, Y: -worldHalf, W: 2 * worldHalf, H: 2 * worldHalf},
		children: [4]int32{noChild, noChild, noChild, noChild},
	})
	idx.locate = make(map[object.ID]int32)
	idx.bounds = make(map[object.ID]object.AABB)
}

// Len returns the number of indexed objects.
func (idx *Index) Len() int {
	return len(idx.locate)
}

// Insert adds id with the given bounds. Inserting an id that is
// already present replaces its previous entry.
func (idx *Index) Insert(id object.ID, bounds object.AABB) {
	if _, ok := idx.locate[id]; ok {
		idx.Remove(id)
	}
	idx.bounds[id] = bounds

	h := int32(0)
	for {
		n := &idx.nodes[h]
		if n.split {
			if child := idx.childContaining(n, bounds); child != noChild {
				h = child
				continue
			}
			// Straddles a quadrant boundary: keep in this node.
			idx.place(h, id)
			return
		}
		if len(n.objects) < idx.capacity || n.depth >= idx.maxDepth {
			idx.place(h, id)
			return
		}
		idx.splitNode(h)
	}
}

// Remove drops id from the index. Returns false if id is not present.
func (idx *Index) Remove(id object.ID) bool {
	h, ok := idx.locate[id]
	if !ok {
		return false
	}
	objs := idx.nodes[h].objects
	for i, oid := range objs {
		if oid == id {
			idx.nodes[h].objects = append(objs[:i], objs[i+1:]...)
			break
		}
	}
	delete(idx.locate, id)
	delete(idx.bounds, id)
	return true
}

// Update moves id to new bounds. Callers never observe the object
// missing from the index.
func (idx *Index) Update(id object.ID, bounds object.AABB) bool {
	if _, ok := idx.locate[id]; !ok {
		return false
	}
	idx.Remove(id)
	idx.Insert(id, bounds)
	return true
}

// Query returns the ids of all objects whose bounds intersect view.
// Results follow a fixed traversal order: a node's own objects in
// insertion order, then its NW, NE, SW, SE children.
func (idx *Index) Query(view object.AABB) []object.ID {
	var out []object.ID
	return idx.collect(0, view, out)
}

func (idx *Index) collect(h int32, view object.AABB, out []object.ID) []object.ID {
	n := &idx.nodes[h]
	for _, id := range n.objects {
		if idx.bounds[id].Intersects(view) {
			out = append(out, id)
		}
	}
	if !n.split {
		return out
	}
	for _, child := range n.children {
		if idx.nodes[child].bounds.Intersects(view) {
			out = idx.collect(child, view, out)
		}
	}
	return out
}

// Bounds returns the indexed bounds for id.
func (idx *Index) Bounds(id object.ID) (object.AABB, bool) {
	b, ok := idx.bounds[id]
	return b, ok
}

// place stores id in node h and records its location.
func (idx *Index) place(h int32, id object.ID) {
	idx.nodes[h].objects = append(idx.nodes[h].objects, id)
	idx.locate[id] = h
}

// childContaining returns the handle of the child quadrant that fully
// contains bounds, or noChild if bounds straddle a boundary.
func (idx *Index) childContaining(n *node, bounds object.AABB) int32 {
	for _, child := range n.children {
		if idx.nodes[child].bounds.Contains(bounds) {
			return child
		}
	}
	return noChild
}

// splitNode turns leaf h into an interior node with four equal
// quadrants and pushes down every contained object that fits entirely
// inside one quadrant.
func (idx *Index) splitNode(h int32) {
	b := idx.nodes[h].bounds
	depth := idx.nodes[h].depth
	hw, hh := b.W/2, b.H/2

	quads := [4]object.AABB{
		{X: b.X, Y: b.Y, W: hw, H: hh},
		{X: b.X + hw, Y: b.Y, W: hw, H: hh},
		{X: b.X, Y: b.Y + hh, W: hw, H: hh},
		{X: b.X + hw, Y: b.Y + hh, W: hw, H: hh},
	}
	for i, q := range quads {
		idx.nodes = append(idx.nodes, node{
			bounds:   q,
			children: [4]int32{noChild, noChild, noChild, noChild},
			depth:    depth + 1,
		})
		idx.nodes[h].children[i] = int32(len(idx.nodes) - 1)
	}
	idx.nodes[h].split = true

	kept := idx.nodes[h].objects[:0]
	for _, id := range idx.nodes[h].objects {
		child := idx.childContaining(&idx.nodes[h], idx.bounds[id])
		if child == noChild {
			kept = append(kept, id)
			continue
		}
		idx.place(child, id)
	}
	idx.nodes[h].objects = kept
}
