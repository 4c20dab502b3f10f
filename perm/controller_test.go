package perm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SangersJeroen/Polymer-Growth/perm"
	"github.com/SangersJeroen/Polymer-Growth/walk"
)

// seedChains builds n single-link chains with independent deterministic
// substreams derived from one base seed.
func seedChains(n int, seed int64) []*walk.Chain {
	base := walk.NewRand(seed)
	out := make([]*walk.Chain, n)
	for i := range out {
		out[i] = walk.NewChain(walk.Coord{}, walk.WithRand(walk.DeriveRand(base, uint64(i)+1)))
	}
	return out
}

// trappedChain builds a 7-link chain whose end anchor is boxed in on all four
// sides, so its next growth step must dead-end.
func trappedChain(t *testing.T) *walk.Chain {
	t.Helper()
	dirs := []walk.Direction{
		walk.North, walk.North, walk.West, walk.West, walk.South, walk.East,
	}
	c := walk.NewChain(walk.Coord{}, walk.WithSeedDirection(walk.East))
	for _, d := range dirs {
		l, err := walk.NewLink(d, c.EndAnchor())
		require.NoError(t, err)
		require.NoError(t, c.Append(l))
	}
	return c
}

// TestNewController_Validation covers the argument sentinels.
func TestNewController_Validation(t *testing.T) {
	_, err := perm.NewController(nil, perm.DefaultOptions())
	assert.ErrorIs(t, err, perm.ErrNoSeeds, "empty population must be rejected")

	_, err = perm.NewController(seedChains(2, 1), perm.Options{BiasFactor: 0})
	assert.ErrorIs(t, err, perm.ErrBadBiasFactor, "zero bias factor must be rejected")

	_, err = perm.NewController(seedChains(2, 1), perm.Options{BiasFactor: -3})
	assert.ErrorIs(t, err, perm.ErrBadBiasFactor, "negative bias factor must be rejected")
}

// TestRun_BadLength verifies targets that leave no rounds to run are rejected.
func TestRun_BadLength(t *testing.T) {
	ct, err := perm.NewController(seedChains(2, 1), perm.DefaultOptions())
	require.NoError(t, err)

	_, err = ct.Run(1)
	assert.ErrorIs(t, err, perm.ErrBadLength)
}

// TestRound_PopulationExhausted drives a population of one trapped chain:
// the first round must report the exhaustion sentinel and leave the chain
// pruned but retained.
func TestRound_PopulationExhausted(t *testing.T) {
	ct, err := perm.NewController([]*walk.Chain{trappedChain(t)}, perm.DefaultOptions())
	require.NoError(t, err)

	err = ct.Round()
	assert.ErrorIs(t, err, perm.ErrPopulationExhausted)
	require.Len(t, ct.Active(), 1, "exhausted chains stay in the population")
	assert.True(t, ct.Active()[0].Pruned())
	assert.Empty(t, ct.Discarded(), "dead ends are not prune decisions")
}

// TestRun_ExhaustionIsNormal verifies Run folds exhaustion into the result
// instead of an error, reporting the achieved length.
func TestRun_ExhaustionIsNormal(t *testing.T) {
	ct, err := perm.NewController([]*walk.Chain{trappedChain(t)}, perm.DefaultOptions())
	require.NoError(t, err)

	res, err := ct.Run(20)
	require.NoError(t, err, "exhaustion must not surface as an error")
	assert.True(t, res.Exhausted)
	assert.Equal(t, 7, res.Length, "the trapped chain reached 7 links")
	assert.Equal(t, 0, res.Rounds, "no round completed")
}

// TestRound_BoundedGrowth verifies the per-round population change is
// bounded: each survivor can contribute at most one clone, so the active
// count never more than doubles in one round.
func TestRound_BoundedGrowth(t *testing.T) {
	ct, err := perm.NewController(seedChains(10, 42), perm.Options{
		BiasFactor: 10,
		Rand:       walk.NewRand(42),
	})
	require.NoError(t, err)

	for round := 0; round < 19; round++ {
		before := len(ct.Active())
		if err := ct.Round(); err != nil {
			assert.ErrorIs(t, err, perm.ErrPopulationExhausted)
			break
		}
		after := len(ct.Active())
		assert.LessOrEqual(t, after, 2*before, "round %d doubled the population more than once", round)
		assert.GreaterOrEqual(t, after+len(ct.Discarded()), before,
			"round %d lost chains without discarding them", round)
	}
}

// TestRun_Determinism verifies a fixed seed reproduces the entire population:
// same counts, same lengths, same weights.
func TestRun_Determinism(t *testing.T) {
	run := func() ([]int, []float64, perm.Result) {
		ct, err := perm.NewController(seedChains(10, 7), perm.Options{
			BiasFactor: 10,
			Rand:       walk.NewRand(7),
		})
		require.NoError(t, err)
		res, err := ct.Run(20)
		require.NoError(t, err)

		chains := ct.Chains()
		lengths := make([]int, len(chains))
		weights := make([]float64, len(chains))
		for i, c := range chains {
			lengths[i] = c.Length()
			weights[i] = c.LastWeight()
		}
		return lengths, weights, res
	}

	l1, w1, r1 := run()
	l2, w2, r2 := run()
	assert.Equal(t, l1, l2, "lengths must reproduce under a fixed seed")
	assert.Equal(t, w1, w2, "weights must reproduce under a fixed seed")
	assert.Equal(t, r1, r2, "results must reproduce under a fixed seed")
}

// TestRun_Invariants runs a full PERM pass and checks the structural
// bookkeeping: discarded chains are pruned, weights stay positive, and no
// chain exceeds the target length.
func TestRun_Invariants(t *testing.T) {
	ct, err := perm.NewController(seedChains(10, 3), perm.Options{
		BiasFactor: 10,
		Rand:       walk.NewRand(3),
	})
	require.NoError(t, err)

	res, err := ct.Run(20)
	require.NoError(t, err)
	assert.LessOrEqual(t, res.Length, 20)
	assert.LessOrEqual(t, res.Rounds, 19)

	for _, c := range ct.Discarded() {
		assert.True(t, c.Pruned(), "every discarded chain must be pruned")
	}
	for _, c := range ct.Chains() {
		assert.LessOrEqual(t, c.Length(), 20, "no chain may exceed the target")
		assert.Greater(t, c.LastWeight(), 0.0, "weights must stay positive")
	}
	if !res.Exhausted {
		// At least one chain must have reached the target.
		var reached bool
		for _, c := range ct.Active() {
			if c.Length() == 20 {
				reached = true
				break
			}
		}
		assert.True(t, reached, "a non-exhausted run must produce a full-length chain")
	}
}
