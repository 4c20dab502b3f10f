// Package observable derives statistical observables from self-avoiding
// chains: Rosenbluth weights, squared end-to-end distances, and radii of
// gyration.
//
// What:
//
//   - Weights computes the pure Rosenbluth products of a chain's recorded
//     branching factors (population-control corrections excluded).
//   - EndToEnd returns the squared distance from the origin node to each
//     subsequent node.
//   - Gyration returns the squared radius of gyration of each node prefix.
//   - Observables bundles EndToEnd and Gyration in one pass.
//
// Why:
//
//   - Rosenbluth growth picks each step with probability 1/m, so ensemble
//     averages must be reweighted by the product of branching factors m to
//     stay unbiased.
//   - End-to-end distance and radius of gyration are the standard size
//     measures of a polymer chain.
//
// Indexing convention (zero-based, per growth step):
//
//	endToEnd[i] = (x0-x[i+1])² + (y0-y[i+1])²   — endToEnd[0] == 1 always.
//	gyration[i] = spread of nodes 0..i about their centre of mass
//	              — gyration[0] == 0, a single node has no spread.
//	weights[i]  = Π branching[0..i].
//
// All functions are pure over immutable chain state: recomputation on an
// unmutated chain is bit-identical, so results may be memoized freely but
// never treated as mutable derived truth.
//
// Complexity: O(L) for Weights and EndToEnd, O(L²) for Gyration (each prefix
// is reduced independently), for a chain of L links.
//
// Errors:
//
//   - ErrEmptyChain: the chain has no links to derive observables from.
package observable
