// Package ensemble owns collections of chains and drives the sampling
// strategies over them: plain Rosenbluth growth, free (non-self-avoiding)
// baselines, and PERM population control.
//
// What:
//
//   - Ensemble holds the active and discarded chain lists plus the lattice
//     origin and dimension context (dimensions are retained as configuration
//     and unused by growth itself).
//   - GeneratePlain grows independent chains with no population control —
//     the baseline, biased Rosenbluth sampler.
//   - GenerateComplete retries until a requested number of chains reach the
//     full target length, keeping failed attempts for bookkeeping.
//   - GenerateFree grows free random walks, the ideal-chain baseline that
//     ignores self-avoidance.
//   - RunPERM seeds single-link chains and hands the population to the perm
//     controller, then assembles observables across every chain that existed.
//   - Matrices stacks per-chain observable sequences into uniform, zero-
//     padded rows ready for downstream statistics.
//
// Why:
//
//   - Every estimate of polymer statistics is an ensemble average; the
//     aggregator is the single owner of the chain collection, so collaborator
//     code (correlation analysis, plotting, exporters) only ever consumes
//     plain slices and matrices.
//
// Reproducibility:
//
//   - The ensemble carries one seedable random source. Every chain receives
//     an independent substream derived from it, so a fixed seed fixes the
//     entire run.
//
// Errors:
//
//   - ErrBadCount, ErrBadLength: argument validation.
//   - Population exhaustion during PERM is a normal outcome carried in
//     perm.Result, not an error.
package ensemble
