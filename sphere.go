package octree

// Sphere is a query volume given by a center and a radius.
// Unlike Box, its surface is not part of it.
type Sphere[TFloat Float] struct {
	Center Point[TFloat]
	Radius TFloat
}

func NewSphere[TFloat Float](x, y, z, radius TFloat) Sphere[TFloat] {
	return Sphere[TFloat]{Center: Point[TFloat]{x, y, z}, Radius: radius}
}

func (s Sphere[TFloat]) volume() {}

// Valid reports whether the center and radius are finite and the radius is not negative.
func (s Sphere[TFloat]) Valid() bool {
	return isFinite(s.Center.X) && isFinite(s.Center.Y) && isFinite(s.Center.Z) &&
		isFinite(s.Radius) && s.Radius >= 0
}

// Contains reports whether p lies strictly closer to the center than the radius.
func (s Sphere[TFloat]) Contains(p Point[TFloat]) bool {
	return s.containsXYZ(p.X, p.Y, p.Z)
}

func (s Sphere[TFloat]) containsXYZ(x, y, z TFloat) bool {
	return distance(x, y, z, s.Center.X, s.Center.Y, s.Center.Z) < s.Radius
}

func (s Sphere[TFloat]) Intersects(other Volume[TFloat]) bool {
	if b, ok := asBox(other); ok {
		return s.IntersectsBox(b)
	}
	if o, ok := asSphere(other); ok {
		return s.IntersectsSphere(o)
	}
	return false
}

// IntersectsBox clamps the center into the box and tests the clamped point for containment.
// A sphere that only touches a face does not intersect it.
func (s Sphere[TFloat]) IntersectsBox(b Box[TFloat]) bool {
	lo, hi := b.Min(), b.Max()
	x := clamp(s.Center.X, lo.X, hi.X)
	y := clamp(s.Center.Y, lo.Y, hi.Y)
	z := clamp(s.Center.Z, lo.Z, hi.Z)
	return s.containsXYZ(x, y, z)
}

func (s Sphere[TFloat]) IntersectsSphere(o Sphere[TFloat]) bool {
	d := distance(s.Center.X, s.Center.Y, s.Center.Z, o.Center.X, o.Center.Y, o.Center.Z)
	return d < s.Radius+o.Radius
}
