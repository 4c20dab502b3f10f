// Package perm defines options, results, and sentinel errors for the
// population controller.
package perm

import (
	"errors"
	"math/rand"
)

// Sentinel errors for population control.
var (
	// ErrBadBiasFactor indicates a bias factor that is not strictly positive.
	ErrBadBiasFactor = errors.New("perm: bias factor must be > 0")
	// ErrNoSeeds indicates a controller constructed without any chains.
	ErrNoSeeds = errors.New("perm: at least one seed chain required")
	// ErrBadLength indicates a target length below the current seed length.
	ErrBadLength = errors.New("perm: target length must exceed seed length")
	// ErrPopulationExhausted signals that every chain pruned before the target
	// length was reached. Normal early termination, not a failure: Run folds
	// it into Result.Exhausted.
	ErrPopulationExhausted = errors.New("perm: population exhausted")
)

// biasRatio fixes cMinus = cPlus / biasRatio, the classical threshold ratio.
const biasRatio = 10.0

// Options configures a Controller.
//
// Fields:
//   - BiasFactor — cPlus, the upper-threshold multiplier on the population
//     mean weight. The lower threshold is fixed at cPlus/10.
//   - Rand       — random source for prune coin flips. Nil ⇒ deterministic
//     default stream (seed 0 policy of package walk).
type Options struct {
	BiasFactor float64
	Rand       *rand.Rand
}

// DefaultOptions returns Options with BiasFactor=10 and the default
// deterministic random stream.
func DefaultOptions() Options {
	return Options{BiasFactor: 10}
}

// Result reports the outcome of a Run.
type Result struct {
	// Length is the chain length the population reached (equals the target
	// unless the population exhausted first).
	Length int
	// Rounds is the number of growth rounds executed.
	Rounds int
	// Exhausted reports early termination with every chain pruned.
	Exhausted bool
}
