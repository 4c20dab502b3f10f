// Package observable - weight and observable derivation over chain nodes.
package observable

import (
	"errors"

	"gonum.org/v1/gonum/stat"

	"github.com/SangersJeroen/Polymer-Growth/walk"
)

// ErrEmptyChain indicates a chain with no links to derive observables from.
var ErrEmptyChain = errors.New("observable: chain has no links")

// Nodes returns the chain's visited sites as separate float64 coordinate
// sequences, node 0 being the origin. L links yield L+1 entries each.
// Complexity: O(L).
func Nodes(c *walk.Chain) (xs, ys []float64, err error) {
	if c == nil || c.Length() == 0 {
		return nil, nil, ErrEmptyChain
	}
	nodes := c.Nodes()
	xs = make([]float64, len(nodes))
	ys = make([]float64, len(nodes))
	for i, n := range nodes {
		xs[i] = float64(n.X)
		ys[i] = float64(n.Y)
	}
	return xs, ys, nil
}

// Weights computes the pure Rosenbluth weight sequence from the chain's
// recorded branching factors: weights[i] = Π branching[0..i], one entry per
// link. The terminal zero of a pruned chain is excluded, and population-
// control corrections are deliberately ignored — for those, use the chain's
// own Weights method.
// Complexity: O(L).
func Weights(c *walk.Chain) ([]float64, error) {
	if c == nil || c.Length() == 0 {
		return nil, ErrEmptyChain
	}
	m := c.Branching()
	out := make([]float64, c.Length())
	prod := 1.0
	for i := range out {
		prod *= float64(m[i])
		out[i] = prod
	}
	return out, nil
}

// EndToEnd returns the squared end-to-end distance per growth step:
// endToEnd[i] is the squared lattice distance between the origin node and
// node i+1. A chain of L links yields L entries, and endToEnd[0] is always 1
// (a single bond spans one unit).
// Complexity: O(L).
func EndToEnd(c *walk.Chain) ([]float64, error) {
	xs, ys, err := Nodes(c)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(xs)-1)
	for i := range out {
		dx := xs[0] - xs[i+1]
		dy := ys[0] - ys[i+1]
		out[i] = dx*dx + dy*dy
	}
	return out, nil
}

// Gyration returns the squared radius of gyration per growth step:
// gyration[i] is the mean squared distance of nodes 0..i from their centre of
// mass. gyration[0] is 0 — a single node has no spread — and every entry is
// non-negative.
// Complexity: O(L²).
func Gyration(c *walk.Chain) ([]float64, error) {
	xs, ys, err := Nodes(c)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(xs)-1)
	for i := range out {
		px, py := xs[:i+1], ys[:i+1]
		cmX := stat.Mean(px, nil)
		cmY := stat.Mean(py, nil)
		// Second moment about the centre of mass, per axis.
		out[i] = stat.MomentAbout(2, px, cmX, nil) + stat.MomentAbout(2, py, cmY, nil)
	}
	return out, nil
}

// CentreOfMass returns the mean position of the chain's first n nodes.
// n is clamped to the available node count; n < 1 yields the origin node.
// Complexity: O(n).
func CentreOfMass(c *walk.Chain, n int) (cx, cy float64, err error) {
	xs, ys, err := Nodes(c)
	if err != nil {
		return 0, 0, err
	}
	if n < 1 {
		n = 1
	}
	if n > len(xs) {
		n = len(xs)
	}
	return stat.Mean(xs[:n], nil), stat.Mean(ys[:n], nil), nil
}

// Observables computes EndToEnd and Gyration together, sharing one node
// extraction.
// Complexity: O(L²), dominated by Gyration.
func Observables(c *walk.Chain) (endToEnd, gyration []float64, err error) {
	xs, ys, err := Nodes(c)
	if err != nil {
		return nil, nil, err
	}
	endToEnd = make([]float64, len(xs)-1)
	gyration = make([]float64, len(xs)-1)
	for i := range endToEnd {
		dx := xs[0] - xs[i+1]
		dy := ys[0] - ys[i+1]
		endToEnd[i] = dx*dx + dy*dy

		px, py := xs[:i+1], ys[:i+1]
		cmX := stat.Mean(px, nil)
		cmY := stat.Mean(py, nil)
		gyration[i] = stat.MomentAbout(2, px, cmX, nil) + stat.MomentAbout(2, py, cmY, nil)
	}
	return endToEnd, gyration, nil
}
