// Package walk - Chain construction, occupancy bookkeeping, and the
// self-avoidance predicate.
//
// This file declares Chain, its functional options, the Conflicts predicate,
// the atomic Append operation, and deep cloning for enrichment.
package walk

import (
	"fmt"
	"math/rand"
)

// seedBranching is the branching factor recorded for the seed step. The seed
// link is drawn uniformly from all four moves of an empty lattice, so the
// chain's weight sequence starts at 4 regardless of the drawn direction.
const seedBranching = 4

// Chain is a self-avoiding walk under construction: an ordered sequence of
// links plus the derived state growth decisions need.
//
// Invariants:
//   - len(branching) == len(links) while the chain is live; a pruned chain
//     carries exactly one trailing zero entry marking the dead end.
//   - occupied holds the origin and every link endpoint, without duplicates.
//   - every link starts at the previous link's end or at the origin.
//   - weights[i] is the running product of branching[0..i], with any
//     population-control corrections folded into the running value.
//
// A Chain is mutated only through GrowStep/GrowTo/Append and the weight
// corrections applied by population control. Once pruned it never grows again.
type Chain struct {
	links     []Link
	origin    Coord
	start     Coord // start-side anchor; moves when growth attaches at Start
	end       Coord // end-side anchor; moves when growth attaches at End
	occupied  map[Coord]struct{}
	branching []int
	weights   []float64
	weight    float64 // running corrected product; seeds the next append
	pruned    bool
	free      bool // free walk: conflict checks disabled, branching always 4
	rng       *rand.Rand
	streams   uint64 // clone counter, feeds DeriveRand stream ids

	// seed configuration, consumed once by NewChain
	seedDir   Direction
	seedFixed bool
}

// Option configures a Chain before its seed link is drawn.
type Option func(*Chain)

// WithRand sets the chain's random source. Nil is ignored.
func WithRand(r *rand.Rand) Option {
	return func(c *Chain) {
		if r != nil {
			c.rng = r
		}
	}
}

// WithSeed sets the chain's random source from a seed (seed==0 ⇒ fixed default).
func WithSeed(seed int64) Option {
	return func(c *Chain) { c.rng = NewRand(seed) }
}

// WithSeedDirection forces the seed link's direction instead of drawing it at
// random. Used to replay recorded direction sequences. Invalid directions are
// ignored and the seed stays random.
func WithSeedDirection(d Direction) Option {
	return func(c *Chain) {
		if d.Valid() {
			c.seedDir = d
			c.seedFixed = true
		}
	}
}

// WithFreeGrowth disables self-avoidance: every growth step sees all four
// moves as valid. Models the ideal (non-interacting) chain baseline.
func WithFreeGrowth() Option {
	return func(c *Chain) { c.free = true }
}

// NewChain creates a chain of one seed link at origin. The seed direction is
// drawn uniformly from the four lattice moves (or fixed via WithSeedDirection)
// and the seed branching factor is recorded as 4.
// Complexity: O(1).
func NewChain(origin Coord, opts ...Option) *Chain {
	c := &Chain{
		origin:   origin,
		start:    origin,
		occupied: make(map[Coord]struct{}, 8),
		weight:   1,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.rng == nil {
		c.rng = NewRand(0)
	}

	dir := c.seedDir
	if !c.seedFixed {
		dir = Direction(c.rng.Intn(NumDirections))
	}
	seed := Link{Dir: dir, Start: origin}

	c.links = append(c.links, seed)
	c.end = seed.End()
	c.occupied[origin] = struct{}{}
	c.occupied[c.end] = struct{}{}
	c.commitStep(seedBranching)

	return c
}

// commitStep records a growth step's branching factor and extends the running
// weight product. Weight corrections applied later (ScaleWeight) flow into
// every subsequent step through c.weight.
func (c *Chain) commitStep(m int) {
	c.branching = append(c.branching, m)
	c.weight *= float64(m)
	c.weights = append(c.weights, c.weight)
}

// Length returns the number of links in the chain.
// Complexity: O(1).
func (c *Chain) Length() int { return len(c.links) }

// Origin returns the site the seed link was anchored at.
func (c *Chain) Origin() Coord { return c.origin }

// StartAnchor returns the start-side growth endpoint.
func (c *Chain) StartAnchor() Coord { return c.start }

// EndAnchor returns the end-side growth endpoint.
func (c *Chain) EndAnchor() Coord { return c.end }

// Pruned reports whether the chain has been terminally pruned.
func (c *Chain) Pruned() bool { return c.pruned }

// Prune terminally marks the chain. A pruned chain never grows again but
// remains valid for observable extraction.
func (c *Chain) Prune() { c.pruned = true }

// Occupied reports whether site s is already part of the walk.
// Complexity: O(1) amortized.
func (c *Chain) Occupied(s Coord) bool {
	_, ok := c.occupied[s]
	return ok
}

// Links returns a copy of the chain's link sequence in append order.
// Complexity: O(L).
func (c *Chain) Links() []Link {
	out := make([]Link, len(c.links))
	copy(out, c.links)
	return out
}

// Directions returns the chain's direction sequence in append order.
// External correlation analysis consumes this as the chain's angle encoding.
// Complexity: O(L).
func (c *Chain) Directions() []Direction {
	out := make([]Direction, len(c.links))
	for i, l := range c.links {
		out[i] = l.Dir
	}
	return out
}

// Nodes returns the walk's visited sites in append order: the seed link's
// start followed by every link's endpoint. L links yield L+1 nodes.
// Complexity: O(L).
func (c *Chain) Nodes() []Coord {
	if len(c.links) == 0 {
		return nil
	}
	out := make([]Coord, 0, len(c.links)+1)
	out = append(out, c.links[0].Start)
	for _, l := range c.links {
		out = append(out, l.End())
	}
	return out
}

// Branching returns a copy of the recorded per-step branching factors.
// A pruned chain carries one trailing zero marking the dead end.
// Complexity: O(L).
func (c *Chain) Branching() []int {
	out := make([]int, len(c.branching))
	copy(out, c.branching)
	return out
}

// Weights returns a copy of the cumulative Rosenbluth weights, one entry per
// link, with any population-control corrections already folded in.
// Complexity: O(L).
func (c *Chain) Weights() []float64 {
	out := make([]float64, len(c.links))
	copy(out, c.weights)
	return out
}

// LastWeight returns the chain's current cumulative weight.
// Complexity: O(1).
func (c *Chain) LastWeight() float64 { return c.weight }

// ScaleWeight multiplies the chain's recorded last weight (and the running
// product future steps build on) by factor. This is the variance-reduction
// correction applied by population control; it deliberately bypasses the
// branching-factor product, which stays untouched.
// Returns ErrEmptyChain if the chain has no links.
// Complexity: O(1).
func (c *Chain) ScaleWeight(factor float64) error {
	if len(c.weights) == 0 {
		return ErrEmptyChain
	}
	c.weight *= factor
	c.weights[len(c.weights)-1] = c.weight
	return nil
}

// Conflicts reports whether appending candidate would violate self-avoidance.
// A conflict holds iff any of:
//
//	(a) candidate.End() is already an occupied site (self-crossing),
//	(b) candidate.Start is neither live anchor (growth must extend an endpoint),
//	(c) candidate.End() equals the start anchor (loop closure onto the seed).
//
// Pure: no chain state is touched, so external analysis may replay candidate
// moves freely. Free-growth chains never conflict.
// Complexity: O(1) amortized.
func (c *Chain) Conflicts(candidate Link) bool {
	if c.free {
		return false
	}
	end := candidate.End()
	if c.Occupied(end) {
		return true
	}
	if candidate.Start != c.start && candidate.Start != c.end {
		return true
	}
	return end == c.start
}

// Append commits candidate to the chain, recording the branching factor the
// step had (the count of non-conflicting moves at the chosen anchor). The
// append is atomic: on any error the chain is left unmodified.
//
// Returns ErrUnknownDirection for a malformed candidate, ErrInvalidAnchor if
// candidate.Start is neither anchor, and ErrSelfIntersection if the candidate
// conflicts with the walk.
// Complexity: O(1) amortized.
func (c *Chain) Append(candidate Link) error {
	if !candidate.Dir.Valid() {
		return ErrUnknownDirection
	}
	if candidate.Start != c.start && candidate.Start != c.end {
		return ErrInvalidAnchor
	}
	if c.Conflicts(candidate) {
		return ErrSelfIntersection
	}
	at := End
	if candidate.Start == c.start {
		at = Start
	}
	c.commitLink(candidate, c.countValid(candidate.Start), at)
	return nil
}

// countValid returns the branching factor at anchor site: the number of
// directions whose candidate link does not conflict. Free-growth chains
// always report 4.
func (c *Chain) countValid(anchor Coord) int {
	if c.free {
		return NumDirections
	}
	var m int
	for d := East; d < NumDirections; d++ {
		if !c.Conflicts(Link{Dir: d, Start: anchor}) {
			m++
		}
	}
	return m
}

// commitLink performs the append itself: link, occupancy, anchor, branching
// factor, and weight are updated together so no partial state is observable.
func (c *Chain) commitLink(l Link, m int, at Anchor) {
	end := l.End()
	c.links = append(c.links, l)
	c.occupied[end] = struct{}{}
	if at == Start {
		c.start = end
	} else {
		c.end = end
	}
	c.commitStep(m)
}

// Clone returns a deep value copy of the chain with an independent RNG
// substream. Growing either copy never perturbs the other: links, occupancy,
// branching factors, and weights are all freshly allocated.
// Complexity: O(L).
func (c *Chain) Clone() *Chain {
	cp := &Chain{
		links:     make([]Link, len(c.links)),
		origin:    c.origin,
		start:     c.start,
		end:       c.end,
		occupied:  make(map[Coord]struct{}, len(c.occupied)),
		branching: make([]int, len(c.branching)),
		weights:   make([]float64, len(c.weights)),
		weight:    c.weight,
		pruned:    c.pruned,
		free:      c.free,
	}
	copy(cp.links, c.links)
	copy(cp.branching, c.branching)
	copy(cp.weights, c.weights)
	for s := range c.occupied {
		cp.occupied[s] = struct{}{}
	}
	c.streams++
	cp.rng = DeriveRand(c.rng, c.streams)
	return cp
}

// String implements fmt.Stringer for debugging output.
func (c *Chain) String() string {
	return fmt.Sprintf("chain of %d links from (%d,%d)", len(c.links), c.origin.X, c.origin.Y)
}
