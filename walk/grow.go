// Package walk - the stochastic growth engine.
//
// GrowStep proposes the four candidate links at an anchor, filters conflicts,
// draws one valid move uniformly, and commits it with its branching factor.
// GrowTo repeats GrowStep until a target length or a dead end.
package walk

// GrowStep attempts one conflict-checked growth step from the given anchor.
//
// The four candidate links are enumerated, conflicting ones discarded, and
// the branching factor m (0–4) is the count of survivors. With m > 0 one
// valid direction is drawn uniformly and committed atomically; m is returned.
// With m == 0 the chain is at a dead end: no link is appended, the terminal
// zero is recorded, and the chain is marked pruned.
//
// A pruned chain does not grow: GrowStep returns 0 without touching state.
// Returns ErrInvalidAnchor if anchor is neither Start nor End.
// Complexity: O(1) amortized.
func (c *Chain) GrowStep(anchor Anchor) (int, error) {
	var site Coord
	switch anchor {
	case Start:
		site = c.start
	case End:
		site = c.end
	default:
		return 0, ErrInvalidAnchor
	}
	if c.pruned {
		return 0, nil
	}

	var valid [NumDirections]Direction
	var m int
	for d := East; d < NumDirections; d++ {
		if !c.Conflicts(Link{Dir: d, Start: site}) {
			valid[m] = d
			m++
		}
	}

	if m == 0 {
		// Dead end: the terminal zero is the only point where branching and
		// link counts diverge, and it pins the chain's weight at its final value.
		c.branching = append(c.branching, 0)
		c.pruned = true
		return 0, nil
	}

	chosen := valid[c.rng.Intn(m)]
	c.commitLink(Link{Dir: chosen, Start: site}, m, anchor)

	return m, nil
}

// GrowTo repeats GrowStep at the end anchor until the chain has target links
// or growth dead-ends. It returns the achieved length, which may fall short
// of target.
// Complexity: O(target).
func (c *Chain) GrowTo(target int) int {
	for c.Length() < target && !c.pruned {
		// End-anchor growth cannot return an error.
		if m, _ := c.GrowStep(End); m == 0 {
			break
		}
	}
	return c.Length()
}
