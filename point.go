package octree

// Point is a location in 3D space. It is a plain value; the tree stores copies.
type Point[TFloat Float] struct {
	X TFloat
	Y TFloat
	Z TFloat
}

func NewPoint[TFloat Float](x, y, z TFloat) Point[TFloat] {
	return Point[TFloat]{X: x, Y: y, Z: z}
}

// String formats the point as "x,y,z".
func (p Point[TFloat]) String() string {
	return formatFloat(p.X) + "," + formatFloat(p.Y) + "," + formatFloat(p.Z)
}
