package walk_test

import (
	"testing"

	"github.com/SangersJeroen/Polymer-Growth/walk"
)

// buildPath constructs a deterministic chain: the first direction seeds the
// chain, the rest are appended one by one at the end anchor.
func buildPath(t *testing.T, origin walk.Coord, dirs ...walk.Direction) *walk.Chain {
	t.Helper()
	if len(dirs) == 0 {
		t.Fatal("buildPath requires at least the seed direction")
	}
	c := walk.NewChain(origin, walk.WithSeedDirection(dirs[0]))
	for _, d := range dirs[1:] {
		l, err := walk.NewLink(d, c.EndAnchor())
		if err != nil {
			t.Fatalf("NewLink(%v) error: %v", d, err)
		}
		if err := c.Append(l); err != nil {
			t.Fatalf("Append(%v) error: %v", l, err)
		}
	}
	return c
}

// trapDirections walks a hook around the origin so that the end anchor's four
// neighbours are all occupied:
//
//	(-1,2)──(0,2)──(1,2)
//	   │              │
//	(-1,1)  (0,1)  (1,1)
//	   │     end      │
//	(-1,0)…(0,0)───(1,0)
//	        origin
//
// After the final East move the end anchor sits at (0,1), walled in by
// (1,1), (0,2), (-1,1), and the origin itself.
var trapDirections = []walk.Direction{
	walk.East, walk.North, walk.North, walk.West, walk.West, walk.South, walk.East,
}
