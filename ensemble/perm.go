// Package ensemble - the PERM driver.
package ensemble

import (
	"github.com/SangersJeroen/Polymer-Growth/perm"
	"github.com/SangersJeroen/Polymer-Growth/walk"
)

// RunPERM seeds initialCount single-link chains, drives the pruned-enriched
// population controller for length-1 rounds, and assembles the stacked
// observable matrices across every chain that existed — active and discarded
// alike, one row per chain, zero-padded to the requested length.
//
// biasFactor is cPlus; the lower threshold is fixed at cPlus/10. Population
// exhaustion is a normal outcome reported in the returned perm.Result, never
// as an error. After the call the ensemble's Active and Discarded lists hold
// the final population for downstream inspection.
//
// Complexity: O(length·N) growth plus O(N·length²) matrix assembly, where N
// is the final population size.
func (e *Ensemble) RunPERM(initialCount int, biasFactor float64, length int) (*Matrices, perm.Result, error) {
	if initialCount < 1 {
		return nil, perm.Result{}, ErrBadCount
	}
	if length < 1 {
		return nil, perm.Result{}, ErrBadLength
	}

	seeds := make([]*walk.Chain, initialCount)
	for i := range seeds {
		seeds[i] = walk.NewChain(e.origin, walk.WithRand(e.chainRand()))
	}

	ctrl, err := perm.NewController(seeds, perm.Options{
		BiasFactor: biasFactor,
		Rand:       e.chainRand(),
	})
	if err != nil {
		return nil, perm.Result{}, err
	}

	res, err := ctrl.Run(length)
	if err != nil {
		return nil, perm.Result{}, err
	}

	e.active = append(e.active, ctrl.Active()...)
	e.discarded = append(e.discarded, ctrl.Discarded()...)

	m, err := stack(ctrl.Chains(), length)
	if err != nil {
		return nil, perm.Result{}, err
	}
	return m, res, nil
}
