package octree

// Volume is a region of space that the tree can be queried with.
//
// The set of volumes is closed: only Box and Sphere implement it. Intersects dispatches on
// the concrete type of the other volume. The supported pairings are box/box, sphere/box and
// sphere/sphere. Any other pairing reports no intersection.
type Volume[TFloat Float] interface {
	Contains(p Point[TFloat]) bool
	Intersects(other Volume[TFloat]) bool

	volume()
}

// asBox unwraps a Box given by value or by non-nil pointer.
func asBox[TFloat Float](v Volume[TFloat]) (Box[TFloat], bool) {
	switch b := v.(type) {
	case Box[TFloat]:
		return b, true
	case *Box[TFloat]:
		if b != nil {
			return *b, true
		}
	}
	return Box[TFloat]{}, false
}

// asSphere unwraps a Sphere given by value or by non-nil pointer.
func asSphere[TFloat Float](v Volume[TFloat]) (Sphere[TFloat], bool) {
	switch s := v.(type) {
	case Sphere[TFloat]:
		return s, true
	case *Sphere[TFloat]:
		if s != nil {
			return *s, true
		}
	}
	return Sphere[TFloat]{}, false
}

func isNilVolume[TFloat Float](v Volume[TFloat]) bool {
	switch x := v.(type) {
	case nil:
		return true
	case *Box[TFloat]:
		return x == nil
	case *Sphere[TFloat]:
		return x == nil
	}
	return false
}
