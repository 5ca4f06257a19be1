package octree

// Single precision variants.

type (
	Point32  = Point[float32]
	Box32    = Box[float32]
	Sphere32 = Sphere[float32]
	Octree32 = Octree[float32]
)

// Create a new float32 Octree
func NewOctree32(boundary Box32, capacity int) (*Octree32, error) {
	return New(boundary, capacity)
}
