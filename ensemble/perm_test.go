package ensemble_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SangersJeroen/Polymer-Growth/ensemble"
	"github.com/SangersJeroen/Polymer-Growth/perm"
	"github.com/SangersJeroen/Polymer-Growth/walk"
)

// TestRunPERM_Validation covers the argument sentinels.
func TestRunPERM_Validation(t *testing.T) {
	e := ensemble.New(testDims, walk.Coord{})

	_, _, err := e.RunPERM(0, 10, 20)
	assert.ErrorIs(t, err, ensemble.ErrBadCount)

	_, _, err = e.RunPERM(10, 10, 0)
	assert.ErrorIs(t, err, ensemble.ErrBadLength)

	_, _, err = e.RunPERM(10, 10, 1)
	assert.ErrorIs(t, err, perm.ErrBadLength, "a single-link target leaves no rounds to run")

	_, _, err = e.RunPERM(10, 0, 20)
	assert.ErrorIs(t, err, perm.ErrBadBiasFactor)
}

// TestRunPERM_Shape verifies one matrix row per chain (active and discarded)
// padded to the requested length, and that the chain lists stay populated for
// downstream inspection.
func TestRunPERM_Shape(t *testing.T) {
	e := ensemble.New(testDims, walk.Coord{}, ensemble.WithSeed(42))
	m, res, err := e.RunPERM(10, 10, 20)
	require.NoError(t, err)

	total := len(e.Active()) + len(e.Discarded())
	assert.NotZero(t, total, "the population must remain inspectable")
	assert.Equal(t, total, m.Rows(), "one row per chain that ever existed")
	assert.Equal(t, 20, m.Cols())
	assert.LessOrEqual(t, res.Length, 20)

	for _, c := range e.Discarded() {
		assert.True(t, c.Pruned(), "discarded chains must be pruned")
	}
	for i, c := range e.Chains() {
		achieved := c.Length()
		require.LessOrEqual(t, achieved, 20)
		assert.Equal(t, 1.0, m.EndToEnd[i][0], "row %d: endToEnd[0]", i)
		for j := achieved; j < 20; j++ {
			assert.Zero(t, m.Weights[i][j], "row %d col %d must be padding", i, j)
		}
	}
}

// TestRunPERM_Determinism verifies a fixed ensemble seed reproduces the whole
// run: identical matrices and result.
func TestRunPERM_Determinism(t *testing.T) {
	run := func() (*ensemble.Matrices, perm.Result) {
		e := ensemble.New(testDims, walk.Coord{}, ensemble.WithSeed(1234))
		m, res, err := e.RunPERM(10, 10, 20)
		require.NoError(t, err)
		return m, res
	}

	m1, r1 := run()
	m2, r2 := run()
	assert.Equal(t, r1, r2, "results must reproduce under a fixed seed")
	assert.Equal(t, m1.EndToEnd, m2.EndToEnd, "end-to-end matrices must reproduce")
	assert.Equal(t, m1.Gyration, m2.Gyration, "gyration matrices must reproduce")
	assert.Equal(t, m1.Weights, m2.Weights, "weight matrices must reproduce")
}

// TestRunPERM_ExhaustionSignal verifies that exhaustion, when it happens, is
// consistent: the flag set exactly when every chain pruned.
func TestRunPERM_ExhaustionSignal(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		e := ensemble.New(testDims, walk.Coord{}, ensemble.WithSeed(seed))
		_, res, err := e.RunPERM(4, 10, 30)
		require.NoError(t, err)

		var longest int
		for _, c := range e.Chains() {
			if c.Length() > longest {
				longest = c.Length()
			}
		}
		if res.Exhausted {
			assert.Less(t, res.Length, 30, "exhaustion must report a short length (seed %d)", seed)
			assert.Equal(t, longest, res.Length, "reported length must match the population (seed %d)", seed)
		} else {
			assert.Equal(t, 30, res.Length)
			assert.Equal(t, 30, longest, "a completed run must grow a full-length chain (seed %d)", seed)
		}
	}
}
