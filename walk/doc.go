// Package walk models self-avoiding random walks on the 2D square lattice.
//
// What:
//
//   - Direction enumerates the four lattice moves and their unit deltas.
//   - Link is a single lattice bond; its end point is derived from the start
//     point and direction, never set independently.
//   - Chain is an ordered sequence of links with a hashed occupancy set, two
//     growth-capable anchors, per-step branching factors, and cumulative
//     Rosenbluth weights.
//   - Conflicts is the pure self-avoidance predicate over chain state and a
//     candidate link.
//   - GrowStep / GrowTo implement conflict-checked stochastic growth.
//
// Why:
//
//   - Polymer physics: a self-avoiding walk is the standard lattice model of
//     a polymer chain in a good solvent.
//   - Rosenbluth sampling: recording the branching factor of every growth
//     step yields the weight that reweights the biased sampler back to
//     unbiased ensemble averages.
//
// Complexity:
//
//   - Conflicts:  O(1) amortized (hashed occupancy set).
//   - GrowStep:   O(1) amortized (4 candidate links).
//   - GrowTo(L):  O(L).
//   - Clone:      O(L) deep value copy, independent RNG substream.
//
// Randomness:
//
//   - All stochastic choices draw from an explicit *rand.Rand carried by the
//     chain. Same seed, same walk. See NewRand and DeriveRand.
//
// Errors:
//
//   - ErrUnknownDirection: direction value outside the four lattice moves.
//   - ErrInvalidAnchor: growth anchor is neither Start nor End.
//   - ErrSelfIntersection: explicit append targets a conflicting site.
//   - ErrEmptyChain: operation requires at least one link.
package walk
