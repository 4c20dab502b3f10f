// Package ensemble defines the Ensemble type, its options, the stacked
// observable matrices, and sentinel errors.
package ensemble

import (
	"errors"
	"math/rand"

	"github.com/SangersJeroen/Polymer-Growth/walk"
)

// Sentinel errors for ensemble operations.
var (
	// ErrBadCount indicates a requested chain count below one.
	ErrBadCount = errors.New("ensemble: chain count must be >= 1")
	// ErrBadLength indicates a requested chain length below one.
	ErrBadLength = errors.New("ensemble: chain length must be >= 1")
)

// Ensemble owns the chain collection of one simulation run.
//
// The dimension context mirrors the lattice the walks notionally live on; it
// is retained as configuration and not consulted by growth, which is free to
// wander (the lattice is effectively unbounded).
type Ensemble struct {
	dims   walk.Coord
	origin walk.Coord
	rng    *rand.Rand

	active    []*walk.Chain
	discarded []*walk.Chain
	streams   uint64 // per-chain substream counter
}

// Option configures an Ensemble at construction.
type Option func(*Ensemble)

// WithRand sets the ensemble's random source. Nil is ignored.
func WithRand(r *rand.Rand) Option {
	return func(e *Ensemble) {
		if r != nil {
			e.rng = r
		}
	}
}

// WithSeed seeds the ensemble's random source (seed==0 ⇒ fixed default).
func WithSeed(seed int64) Option {
	return func(e *Ensemble) { e.rng = walk.NewRand(seed) }
}

// New creates an empty ensemble over a lattice of the given dimensions with
// all chains anchored at origin. Per-instance state is freshly allocated:
// ensembles never share chain lists.
// Complexity: O(1).
func New(dims, origin walk.Coord, opts ...Option) *Ensemble {
	e := &Ensemble{
		dims:   dims,
		origin: origin,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = walk.NewRand(0)
	}
	return e
}

// Dims returns the configured lattice dimensions.
func (e *Ensemble) Dims() walk.Coord { return e.dims }

// Origin returns the common growth origin.
func (e *Ensemble) Origin() walk.Coord { return e.origin }

// Active returns the live chain list. Shared slice; treat as read-only.
func (e *Ensemble) Active() []*walk.Chain { return e.active }

// Discarded returns the chains PERM pruned away. Shared slice; treat as
// read-only.
func (e *Ensemble) Discarded() []*walk.Chain { return e.discarded }

// Chains returns every chain in the ensemble: active then discarded.
// Complexity: O(N).
func (e *Ensemble) Chains() []*walk.Chain {
	out := make([]*walk.Chain, 0, len(e.active)+len(e.discarded))
	out = append(out, e.active...)
	out = append(out, e.discarded...)
	return out
}

// Matrices stacks per-chain observable sequences into uniform rows. Row i
// belongs to chain i of the generating call; entries past a chain's achieved
// length are zero.
type Matrices struct {
	// EndToEnd holds the squared end-to-end distances, one row per chain.
	EndToEnd [][]float64
	// Gyration holds the squared radii of gyration, one row per chain.
	Gyration [][]float64
	// Weights holds the cumulative Rosenbluth weights (population-control
	// corrections included), one row per chain.
	Weights [][]float64
}

// Rows returns the number of chains the matrices cover.
func (m *Matrices) Rows() int { return len(m.EndToEnd) }

// Cols returns the uniform row width (the requested target length).
func (m *Matrices) Cols() int {
	if len(m.EndToEnd) == 0 {
		return 0
	}
	return len(m.EndToEnd[0])
}

// chainRand derives the next independent chain substream from the ensemble
// source.
func (e *Ensemble) chainRand() *rand.Rand {
	e.streams++
	return walk.DeriveRand(e.rng, e.streams)
}
