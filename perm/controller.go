// Package perm - the round state machine.
package perm

import (
	"errors"
	"math/rand"

	"gonum.org/v1/gonum/floats"

	"github.com/SangersJeroen/Polymer-Growth/walk"
)

// Controller owns the chain population while PERM runs: the active list that
// still takes part in rounds and the discarded list of pruned-away chains.
// Both lists remain available after a run so downstream analysis can inspect
// every chain that ever existed.
type Controller struct {
	cPlus  float64
	cMinus float64
	rng    *rand.Rand

	active    []*walk.Chain
	discarded []*walk.Chain
	rounds    int
}

// NewController builds a Controller over the given seed chains.
// The seeds slice is adopted as the initial active population (the caller
// must not grow those chains independently while the controller runs).
// Returns ErrNoSeeds for an empty population and ErrBadBiasFactor for a
// non-positive bias factor.
// Complexity: O(1).
func NewController(seeds []*walk.Chain, opts Options) (*Controller, error) {
	if len(seeds) == 0 {
		return nil, ErrNoSeeds
	}
	if opts.BiasFactor <= 0 {
		return nil, ErrBadBiasFactor
	}
	rng := opts.Rand
	if rng == nil {
		rng = walk.NewRand(0)
	}
	active := make([]*walk.Chain, len(seeds))
	copy(active, seeds)

	return &Controller{
		cPlus:  opts.BiasFactor,
		cMinus: opts.BiasFactor / biasRatio,
		rng:    rng,
		active: active,
	}, nil
}

// Active returns the live population (pruned chains included until a prune
// decision moves them to the discarded list). The returned slice is shared;
// treat it as read-only.
func (ct *Controller) Active() []*walk.Chain { return ct.active }

// Discarded returns the chains removed by prune decisions.
func (ct *Controller) Discarded() []*walk.Chain { return ct.discarded }

// Chains returns every chain the controller has seen: active then discarded.
// Complexity: O(N).
func (ct *Controller) Chains() []*walk.Chain {
	out := make([]*walk.Chain, 0, len(ct.active)+len(ct.discarded))
	out = append(out, ct.active...)
	out = append(out, ct.discarded...)
	return out
}

// Rounds returns the number of rounds executed so far.
func (ct *Controller) Rounds() int { return ct.rounds }

// Round executes one synchronized growth-and-control round:
//
//  1. Every non-pruned chain attempts one end-anchor growth step. Dead ends
//     are pruned in place and excluded from this round's statistics.
//  2. The population mean weight W̃ is taken over the chains that grew. If no
//     chain grew, the round reports ErrPopulationExhausted.
//  3. Chains below W- = cMinus·W̃ survive a fair coin flip with their weight
//     doubled, or move to the discarded list. Chains above W+ = cPlus·W̃ have
//     their weight halved and a deep clone appended to the population.
//
// Weight corrections mutate the cached last weight directly (ScaleWeight),
// never the branching-factor record.
// Complexity: O(N) plus O(L) per enrichment clone.
func (ct *Controller) Round() error {
	grown := ct.growAll()
	if len(grown) == 0 {
		return ErrPopulationExhausted
	}
	ct.rounds++

	weights := make([]float64, len(grown))
	for i, c := range grown {
		weights[i] = c.LastWeight()
	}
	mean := floats.Sum(weights) / float64(len(grown))
	wMinus := ct.cMinus * mean
	wPlus := ct.cPlus * mean

	var clones []*walk.Chain
	var evicted map[*walk.Chain]struct{}
	for _, c := range grown {
		w := c.LastWeight()
		switch {
		case w < wMinus:
			if ct.rng.Intn(2) == 0 {
				c.Prune()
				ct.discarded = append(ct.discarded, c)
				if evicted == nil {
					evicted = make(map[*walk.Chain]struct{})
				}
				evicted[c] = struct{}{}
			} else {
				// Survivors carry double weight to compensate the culled half.
				_ = c.ScaleWeight(2)
			}
		case w > wPlus:
			// The halved weight is shared by original and clone.
			_ = c.ScaleWeight(0.5)
			clones = append(clones, c.Clone())
		}
	}

	if len(evicted) > 0 {
		ct.active = compactActive(ct.active, evicted)
	}
	ct.active = append(ct.active, clones...)

	return nil
}

// growAll advances every live chain one step and returns those that grew.
func (ct *Controller) growAll() []*walk.Chain {
	grown := make([]*walk.Chain, 0, len(ct.active))
	for _, c := range ct.active {
		if c.Pruned() {
			continue
		}
		// End-anchor growth cannot return an error.
		if m, _ := c.GrowStep(walk.End); m > 0 {
			grown = append(grown, c)
		}
	}
	return grown
}

// compactActive drops the chains this round's prune decisions evicted.
// Dead-ended chains stay active: only explicit prune decisions evict.
func compactActive(active []*walk.Chain, evicted map[*walk.Chain]struct{}) []*walk.Chain {
	out := active[:0]
	for _, c := range active {
		if _, gone := evicted[c]; !gone {
			out = append(out, c)
		}
	}
	return out
}

// Run drives target-1 rounds (one per length increment above the single-link
// seeds) or stops early when the population exhausts. Exhaustion is a normal
// outcome reported through Result.Exhausted, never as an error.
// Returns ErrBadLength if target leaves no rounds to run.
// Complexity: O(target·N).
func (ct *Controller) Run(target int) (Result, error) {
	if target < 2 {
		return Result{}, ErrBadLength
	}
	for i := 0; i < target-1; i++ {
		if err := ct.Round(); err != nil {
			if errors.Is(err, ErrPopulationExhausted) {
				return Result{Length: ct.maxLength(), Rounds: ct.rounds, Exhausted: true}, nil
			}
			return Result{}, err
		}
	}
	return Result{Length: target, Rounds: ct.rounds}, nil
}

// maxLength returns the longest length any chain achieved.
func (ct *Controller) maxLength() int {
	var max int
	for _, c := range ct.Chains() {
		if l := c.Length(); l > max {
			max = l
		}
	}
	return max
}
