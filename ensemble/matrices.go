// Package ensemble - stacked matrix assembly.
package ensemble

import (
	"github.com/SangersJeroen/Polymer-Growth/observable"
	"github.com/SangersJeroen/Polymer-Growth/walk"
)

// stack assembles the observable matrices for a batch of chains: one row per
// chain, width columns, entries past a chain's achieved length left at zero.
// Weights come from each chain's own record so that population-control
// corrections are included.
// Complexity: O(N·width²), dominated by gyration.
func stack(chains []*walk.Chain, width int) (*Matrices, error) {
	m := &Matrices{
		EndToEnd: make([][]float64, len(chains)),
		Gyration: make([][]float64, len(chains)),
		Weights:  make([][]float64, len(chains)),
	}
	for i, c := range chains {
		endToEnd, gyration, err := observable.Observables(c)
		if err != nil {
			return nil, err
		}
		m.EndToEnd[i] = pad(endToEnd, width)
		m.Gyration[i] = pad(gyration, width)
		m.Weights[i] = pad(c.Weights(), width)
	}
	return m, nil
}

// pad copies s into a fresh slice of the given width, zero-filling the tail.
// Oversized inputs are truncated to width.
func pad(s []float64, width int) []float64 {
	out := make([]float64, width)
	copy(out, s)
	return out
}
