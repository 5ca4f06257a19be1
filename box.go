package octree

// Box is an axis-aligned cuboid given by its center and its half-extents along each axis.
// The box spans [Center-HalfExtents, Center+HalfExtents] inclusive on every axis.
type Box[TFloat Float] struct {
	Center      Point[TFloat]
	HalfExtents Point[TFloat]
}

// NewBox creates a box centered on (x, y, z) with half-extents (hw, hh, hd).
func NewBox[TFloat Float](x, y, z, hw, hh, hd TFloat) Box[TFloat] {
	return Box[TFloat]{
		Center:      Point[TFloat]{x, y, z},
		HalfExtents: Point[TFloat]{hw, hh, hd},
	}
}

func (b Box[TFloat]) volume() {}

// Min returns the corner with the smallest coordinates.
func (b Box[TFloat]) Min() Point[TFloat] {
	return Point[TFloat]{
		X: b.Center.X - b.HalfExtents.X,
		Y: b.Center.Y - b.HalfExtents.Y,
		Z: b.Center.Z - b.HalfExtents.Z,
	}
}

// Max returns the corner with the largest coordinates.
func (b Box[TFloat]) Max() Point[TFloat] {
	return Point[TFloat]{
		X: b.Center.X + b.HalfExtents.X,
		Y: b.Center.Y + b.HalfExtents.Y,
		Z: b.Center.Z + b.HalfExtents.Z,
	}
}

// Valid reports whether every coordinate is finite and no half-extent is negative.
func (b Box[TFloat]) Valid() bool {
	c, h := b.Center, b.HalfExtents
	for _, v := range [...]TFloat{c.X, c.Y, c.Z, h.X, h.Y, h.Z} {
		if !isFinite(v) {
			return false
		}
	}
	return h.X >= 0 && h.Y >= 0 && h.Z >= 0
}

func (b Box[TFloat]) Contains(p Point[TFloat]) bool {
	return b.containsXYZ(p.X, p.Y, p.Z)
}

func (b Box[TFloat]) containsXYZ(x, y, z TFloat) bool {
	lo, hi := b.Min(), b.Max()
	return x >= lo.X && x <= hi.X &&
		y >= lo.Y && y <= hi.Y &&
		z >= lo.Z && z <= hi.Z
}

// Intersects only knows how to test against another box.
func (b Box[TFloat]) Intersects(other Volume[TFloat]) bool {
	if o, ok := asBox(other); ok {
		return b.IntersectsBox(o)
	}
	return false
}

// IntersectsBox is the standard AABB overlap test. Touching faces count as overlapping.
func (b Box[TFloat]) IntersectsBox(o Box[TFloat]) bool {
	lo, hi := b.Min(), b.Max()
	olo, ohi := o.Min(), o.Max()
	return lo.X <= ohi.X && hi.X >= olo.X &&
		lo.Y <= ohi.Y && hi.Y >= olo.Y &&
		lo.Z <= ohi.Z && hi.Z >= olo.Z
}

// Octant returns the child box occupying octant o: half the size on every axis, centered
// a quarter of the parent's full extent away from the parent's center.
func (b Box[TFloat]) Octant(o Octant) Box[TFloat] {
	hw := b.HalfExtents.X / 2
	hh := b.HalfExtents.Y / 2
	hd := b.HalfExtents.Z / 2
	x, y, z := b.Center.X-hw, b.Center.Y-hh, b.Center.Z-hd
	if o.East() {
		x = b.Center.X + hw
	}
	if o.North() {
		y = b.Center.Y + hh
	}
	if o.Back() {
		z = b.Center.Z + hd
	}
	return NewBox(x, y, z, hw, hh, hd)
}
