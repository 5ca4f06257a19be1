package octree

// DebugInfo summarises the shape of a tree.
type DebugInfo struct {
	Capacity       int
	NodeCount      int
	LeafCount      int
	DividedCount   int
	PointCount     int
	MaxDepth       int   // the root is depth 0
	PointsPerDepth []int // PointsPerDepth[d] is the number of points stored directly at depth d
}

// Walk visits this node and its descendants depth first, children in octant order.
// Returning false from fn skips the children of that node.
func (t *Octree[TFloat]) Walk(fn func(node *Octree[TFloat], depth int) bool) {
	t.walk(fn, 0)
}

func (t *Octree[TFloat]) walk(fn func(node *Octree[TFloat], depth int) bool, depth int) {
	if !fn(t, depth) || !t.divided {
		return
	}
	for _, child := range t.children {
		child.walk(fn, depth+1)
	}
}

func (t *Octree[TFloat]) DebugInfo() DebugInfo {
	info := DebugInfo{Capacity: t.capacity}
	t.Walk(func(node *Octree[TFloat], depth int) bool {
		info.NodeCount++
		if node.divided {
			info.DividedCount++
		} else {
			info.LeafCount++
		}
		info.PointCount += len(node.points)
		info.MaxDepth = max(info.MaxDepth, depth)
		for len(info.PointsPerDepth) <= depth {
			info.PointsPerDepth = append(info.PointsPerDepth, 0)
		}
		info.PointsPerDepth[depth] += len(node.points)
		return true
	})
	return info
}
