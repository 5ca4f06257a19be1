package octree

import "strconv"

// Octant identifies one of the eight children of a divided node.
// North is +Y, East is +X and Back is +Z.
type Octant int

// The declaration order is the order in which children are tried on insert and visited on query.
const (
	NorthEastBack Octant = iota
	NorthWestBack
	SouthEastBack
	SouthWestBack
	NorthEastFront
	NorthWestFront
	SouthEastFront
	SouthWestFront

	numOctants = 8
)

// Octants lists every octant in traversal order.
var Octants = [numOctants]Octant{
	NorthEastBack,
	NorthWestBack,
	SouthEastBack,
	SouthWestBack,
	NorthEastFront,
	NorthWestFront,
	SouthEastFront,
	SouthWestFront,
}

var octantNames = [numOctants]string{
	"NorthEastBack",
	"NorthWestBack",
	"SouthEastBack",
	"SouthWestBack",
	"NorthEastFront",
	"NorthWestFront",
	"SouthEastFront",
	"SouthWestFront",
}

func (o Octant) Valid() bool {
	return o >= 0 && o < numOctants
}

func (o Octant) North() bool { return o&2 == 0 }
func (o Octant) East() bool  { return o&1 == 0 }
func (o Octant) Back() bool  { return o&4 == 0 }

func (o Octant) String() string {
	if !o.Valid() {
		return "Octant(" + strconv.Itoa(int(o)) + ")"
	}
	return octantNames[o]
}
