// Package ensemble - sampling drivers without population control.
package ensemble

import (
	"github.com/SangersJeroen/Polymer-Growth/walk"
)

// GeneratePlain grows count independent self-avoiding chains toward the given
// length with no population control. Chains that dead-end early stay in the
// ensemble; their matrix rows are zero-padded past the achieved length.
// Returns count×length matrices, one row per generated chain.
// Complexity: O(count·length).
func (e *Ensemble) GeneratePlain(count, length int) (*Matrices, error) {
	if count < 1 {
		return nil, ErrBadCount
	}
	if length < 1 {
		return nil, ErrBadLength
	}

	batch := make([]*walk.Chain, 0, count)
	for i := 0; i < count; i++ {
		c := walk.NewChain(e.origin, walk.WithRand(e.chainRand()))
		c.GrowTo(length)
		batch = append(batch, c)
	}
	e.active = append(e.active, batch...)

	return stack(batch, length)
}

// GenerateComplete retries plain growth until count chains reach exactly the
// requested length. Failed attempts are kept in the ensemble — they carry
// weight like any other Rosenbluth sample — and the returned matrices cover
// every attempt, successes and failures alike.
//
// The expected number of attempts grows with length (the attrition of the
// plain sampler is the very reason PERM exists), so keep length moderate.
func (e *Ensemble) GenerateComplete(count, length int) (*Matrices, error) {
	if count < 1 {
		return nil, ErrBadCount
	}
	if length < 1 {
		return nil, ErrBadLength
	}

	var batch []*walk.Chain
	done := 0
	for done < count {
		c := walk.NewChain(e.origin, walk.WithRand(e.chainRand()))
		if c.GrowTo(length) == length {
			done++
		}
		batch = append(batch, c)
	}
	e.active = append(e.active, batch...)

	return stack(batch, length)
}

// GenerateFree grows count free random walks of the given length: self-
// avoidance is disabled, every step sees all four moves, and no walk ever
// dead-ends. The ideal-chain baseline for comparing against SAW statistics.
// Returns count×length matrices, one row per walk.
// Complexity: O(count·length).
func (e *Ensemble) GenerateFree(count, length int) (*Matrices, error) {
	if count < 1 {
		return nil, ErrBadCount
	}
	if length < 1 {
		return nil, ErrBadLength
	}

	batch := make([]*walk.Chain, 0, count)
	for i := 0; i < count; i++ {
		c := walk.NewChain(e.origin, walk.WithRand(e.chainRand()), walk.WithFreeGrowth())
		c.GrowTo(length)
		batch = append(batch, c)
	}
	e.active = append(e.active, batch...)

	return stack(batch, length)
}

// Directions exports every chain's direction sequence as one row per chain,
// padded with walk.NoDirection to the longest chain's length. This is the
// plain-data surface the external angular-correlation analysis consumes.
// Complexity: O(N·L).
func (e *Ensemble) Directions() [][]walk.Direction {
	chains := e.Chains()
	var width int
	for _, c := range chains {
		if l := c.Length(); l > width {
			width = l
		}
	}

	out := make([][]walk.Direction, len(chains))
	for i, c := range chains {
		row := make([]walk.Direction, width)
		dirs := c.Directions()
		copy(row, dirs)
		for j := len(dirs); j < width; j++ {
			row[j] = walk.NoDirection
		}
		out[i] = row
	}
	return out
}
