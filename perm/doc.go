// Package perm implements the Pruned-Enriched Rosenbluth Method (PERM), the
// population-control scheme that keeps Rosenbluth sampling of long chains
// statistically manageable.
//
// What:
//
//   - Controller drives synchronized growth rounds over an ensemble of
//     chains, one round per target-length increment.
//   - Each round, every live chain attempts one growth step; dead ends are
//     pruned in place but retained for bookkeeping.
//   - The round's population mean weight W̃ sets two thresholds,
//     W- = cMinus·W̃ and W+ = cPlus·W̃ with cMinus = cPlus/10 (the classical
//     Grassberger ratio).
//   - Chains below W- survive a fair coin flip with doubled weight or are
//     discarded; chains above W+ have their weight halved and a deep clone
//     enriched into the population.
//
// Why:
//
//   - Plain Rosenbluth weights spread over many orders of magnitude as chains
//     grow; a handful of walks dominate every average. Pruning the light
//     walks and cloning the heavy ones bounds the variance while the
//     compensating weight corrections keep ensemble averages unbiased.
//
// Normal termination:
//
//   - A round in which no chain grows exhausts the population. This is a
//     normal early stop, not a failure: Round reports it through the
//     ErrPopulationExhausted sentinel and Run folds it into Result.Exhausted
//     together with the achieved length.
//
// Complexity: O(N) per round for N active chains, plus O(L) per enrichment
// clone.
//
// Errors:
//
//   - ErrBadBiasFactor: bias factor is not strictly positive.
//   - ErrNoSeeds: the controller was given no chains to drive.
//   - ErrBadLength: requested target length is below the seed length.
//   - ErrPopulationExhausted: early-termination signal, see above.
package perm
