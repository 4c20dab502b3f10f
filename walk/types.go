// Package walk defines core types, options, and sentinel errors
// for the walk subpackage of github.com/SangersJeroen/Polymer-Growth.
package walk

import (
	"errors"
	"fmt"
)

// Sentinel errors for walk operations.
var (
	// ErrUnknownDirection indicates a direction value outside the four lattice moves.
	ErrUnknownDirection = errors.New("walk: unknown lattice direction")
	// ErrInvalidAnchor indicates a growth anchor that is neither Start nor End.
	ErrInvalidAnchor = errors.New("walk: growth anchor must be Start or End")
	// ErrSelfIntersection indicates an explicit append that conflicts with the chain.
	ErrSelfIntersection = errors.New("walk: proposed link conflicts with occupied site or anchors")
	// ErrEmptyChain indicates an operation that requires at least one link.
	ErrEmptyChain = errors.New("walk: chain has no links")
)

// Direction is one of the four lattice moves on the 2D square lattice.
// The numeric values index the global delta table and are stable: they double
// as the angle encoding consumed by external correlation analysis
// (0=+x, 1=+y, 2=-x, 3=-y, a quarter turn per increment).
type Direction int

const (
	// East moves one site in +x.
	East Direction = iota
	// North moves one site in +y.
	North
	// West moves one site in -x.
	West
	// South moves one site in -y.
	South

	// NumDirections is the number of lattice moves (4 on the square lattice).
	NumDirections = 4
)

// NoDirection is the padding value used where a direction sequence must be
// extended to a uniform length (e.g. stacked direction matrices).
const NoDirection Direction = -1

// deltas maps each Direction to its unit displacement. Immutable by convention.
var deltas = [NumDirections]Coord{
	{X: 1, Y: 0},  // East
	{X: 0, Y: 1},  // North
	{X: -1, Y: 0}, // West
	{X: 0, Y: -1}, // South
}

// Valid reports whether d is one of the four lattice moves.
// Complexity: O(1).
func (d Direction) Valid() bool {
	return d >= East && d < NumDirections
}

// Delta returns the unit displacement of d. Delta on an invalid direction
// returns the zero Coord; construct links through NewLink to surface
// ErrUnknownDirection instead.
// Complexity: O(1).
func (d Direction) Delta() Coord {
	if !d.Valid() {
		return Coord{}
	}
	return deltas[d]
}

// String implements fmt.Stringer for debugging output.
func (d Direction) String() string {
	switch d {
	case East:
		return "East"
	case North:
		return "North"
	case West:
		return "West"
	case South:
		return "South"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Anchor selects which live endpoint of a chain a growth step attaches to.
type Anchor int

const (
	// Start grows from the chain's start-side anchor.
	Start Anchor = iota
	// End grows from the chain's end-side anchor.
	End
)

// Coord is a lattice site. Value type, usable as a map key.
type Coord struct {
	X, Y int
}

// Add returns the site displaced from c by d.
// Complexity: O(1).
func (c Coord) Add(d Coord) Coord {
	return Coord{X: c.X + d.X, Y: c.Y + d.Y}
}

// Link is a single lattice bond: a direction anchored at a start site.
// Its end site is derived from Start and Dir and is never stored, so a
// well-formed Link cannot carry an inconsistent endpoint.
type Link struct {
	// Dir is the lattice move this bond takes.
	Dir Direction
	// Start is the site the bond leaves from.
	Start Coord
}

// NewLink builds a bond of direction d anchored at start.
// Returns ErrUnknownDirection if d is not a lattice move.
// Complexity: O(1).
func NewLink(d Direction, start Coord) (Link, error) {
	if !d.Valid() {
		return Link{}, ErrUnknownDirection
	}
	return Link{Dir: d, Start: start}, nil
}

// End returns the bond's derived endpoint: Start + Delta(Dir).
// Complexity: O(1).
func (l Link) End() Coord {
	return l.Start.Add(l.Dir.Delta())
}

// String implements fmt.Stringer for debugging output.
func (l Link) String() string {
	return fmt.Sprintf("link from (%d,%d) to (%d,%d)", l.Start.X, l.Start.Y, l.End().X, l.End().Y)
}
