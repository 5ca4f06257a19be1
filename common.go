package octree

import (
	"math"
	"strconv"
)

// Float is the coordinate type of every value in the tree.
// All arithmetic is done at this width.
type Float interface {
	float32 | float64
}

func clamp[TFloat Float](v, lo, hi TFloat) TFloat {
	return max(lo, min(v, hi))
}

// distance between (ax, ay, az) and (bx, by, bz). The square root is taken in float64
// and narrowed back, so that comparisons stay at TFloat width.
func distance[TFloat Float](ax, ay, az, bx, by, bz TFloat) TFloat {
	dx := ax - bx
	dy := ay - by
	dz := az - bz
	return TFloat(math.Sqrt(float64(dx*dx + dy*dy + dz*dz)))
}

func isFinite[TFloat Float](v TFloat) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func bitSize[TFloat Float]() int {
	var v TFloat
	if _, ok := any(v).(float32); ok {
		return 32
	}
	return 64
}

func formatFloat[TFloat Float](v TFloat) string {
	return strconv.FormatFloat(float64(v), 'f', -1, bitSize[TFloat]())
}
