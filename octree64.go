package octree

type (
	Point64  = Point[float64]
	Box64    = Box[float64]
	Sphere64 = Sphere[float64]
	Octree64 = Octree[float64]
)

// Create a new float64 Octree
func NewOctree64(boundary Box64, capacity int) (*Octree64, error) {
	return New(boundary, capacity)
}
