// Package octree is a point octree: each node stores up to a fixed number of points directly,
// and splits into eight equal children once that capacity is exceeded.
package octree

import (
	"iter"
	"slices"

	"github.com/pkg/errors"
)

var (
	ErrInvalidCapacity = errors.New("octree capacity must be at least 1")
	ErrInvalidBoundary = errors.New("octree boundary must have finite center and non-negative half-extents")
)

// Octree is a node of the tree, and the root node is the tree.
//
// Points already stored in a node stay there when the node divides. Only points inserted
// after the node is full are pushed down into its children.
//
// An Octree is not safe for concurrent use while Insert is running. Concurrent queries are fine.
type Octree[TFloat Float] struct {
	boundary Box[TFloat]
	capacity int
	points   []Point[TFloat]
	divided  bool
	children [numOctants]*Octree[TFloat]
}

// New creates an empty tree covering boundary, holding up to capacity points per node.
func New[TFloat Float](boundary Box[TFloat], capacity int) (*Octree[TFloat], error) {
	if capacity < 1 {
		return nil, errors.Wrapf(ErrInvalidCapacity, "got %d", capacity)
	}
	if !boundary.Valid() {
		return nil, errors.Wrapf(ErrInvalidBoundary, "got center %v, half-extents %v", boundary.Center, boundary.HalfExtents)
	}
	return newNode(boundary, capacity), nil
}

func newNode[TFloat Float](boundary Box[TFloat], capacity int) *Octree[TFloat] {
	return &Octree[TFloat]{
		boundary: boundary,
		capacity: capacity,
		points:   make([]Point[TFloat], 0, capacity),
	}
}

func (t *Octree[TFloat]) Boundary() Box[TFloat] { return t.boundary }
func (t *Octree[TFloat]) Capacity() int        { return t.capacity }
func (t *Octree[TFloat]) IsDivided() bool      { return t.divided }

// Points returns a copy of the points stored directly in this node, in insertion order.
func (t *Octree[TFloat]) Points() []Point[TFloat] {
	return slices.Clone(t.points)
}

// Child returns the child in octant o. It returns false if the node is not divided.
func (t *Octree[TFloat]) Child(o Octant) (*Octree[TFloat], bool) {
	if !t.divided || !o.Valid() {
		return nil, false
	}
	return t.children[o], true
}

// Children yields the eight children in traversal order, or nothing if the node is not divided.
func (t *Octree[TFloat]) Children() iter.Seq2[Octant, *Octree[TFloat]] {
	return func(yield func(Octant, *Octree[TFloat]) bool) {
		if !t.divided {
			return
		}
		for _, o := range Octants {
			if !yield(o, t.children[o]) {
				return
			}
		}
	}
}

// Insert adds p to the tree. It returns false if p lies outside the node's boundary.
func (t *Octree[TFloat]) Insert(p Point[TFloat]) bool {
	if !t.boundary.Contains(p) {
		return false
	}
	if len(t.points) < t.capacity {
		t.points = append(t.points, p)
		return true
	}
	if !t.divided {
		t.subdivide()
	}
	// first child to accept wins, which settles points lying on a dividing plane
	for _, child := range t.children {
		if child.Insert(p) {
			return true
		}
	}
	return false
}

func (t *Octree[TFloat]) subdivide() {
	for _, o := range Octants {
		t.children[o] = newNode(t.boundary.Octant(o), t.capacity)
	}
	t.divided = true
}

// Query yields every point in the tree that volume contains.
// Points come depth first: a node's own points, then each child in octant order.
// Every call traverses the tree afresh.
func (t *Octree[TFloat]) Query(volume Volume[TFloat]) iter.Seq[Point[TFloat]] {
	return func(yield func(Point[TFloat]) bool) {
		if isNilVolume(volume) {
			return
		}
		t.query(volume, yield)
	}
}

// query returns false once yield asks to stop.
func (t *Octree[TFloat]) query(volume Volume[TFloat], yield func(Point[TFloat]) bool) bool {
	if !volume.Intersects(t.boundary) {
		return true
	}
	for _, p := range t.points {
		if volume.Contains(p) && !yield(p) {
			return false
		}
	}
	if !t.divided {
		return true
	}
	for _, child := range t.children {
		if !child.query(volume, yield) {
			return false
		}
	}
	return true
}

// QueryAll returns the points that Query would yield.
func (t *Octree[TFloat]) QueryAll(volume Volume[TFloat]) []Point[TFloat] {
	return t.QueryFast(volume, nil)
}

// QueryFast accepts a 'results' as input. If you are performing millions of queries,
// then reusing a 'results' slice will reduce the number of allocations.
func (t *Octree[TFloat]) QueryFast(volume Volume[TFloat], results []Point[TFloat]) []Point[TFloat] {
	results = results[:0]
	for p := range t.Query(volume) {
		results = append(results, p)
	}
	return results
}

// Len returns the number of points stored in this node and all of its descendants.
func (t *Octree[TFloat]) Len() int {
	n := len(t.points)
	if t.divided {
		for _, child := range t.children {
			n += child.Len()
		}
	}
	return n
}
