// Package polymergrowth is an in-memory toolkit for simulating self-avoiding
// random walks on a 2D square lattice and estimating polymer-chain statistics
// by Monte Carlo sampling.
//
// What it brings together:
//
//   - Lattice primitives: directions, links, and self-avoiding chains with
//     conflict-checked growth
//   - Rosenbluth bookkeeping: per-step branching factors and cumulative
//     weights that reweight the biased growth sampler back to unbiased
//     ensemble statistics
//   - Observables: end-to-end distance and radius of gyration per growth step
//   - PERM: the Pruned-Enriched Rosenbluth Method, a population-control
//     scheme that prunes low-weight walks and clones high-weight ones to
//     tame sampling variance for long chains
//   - Ensembles: plain, free-walk, and PERM generation with stacked
//     observable matrices ready for downstream analysis
//
// Everything is organized under four subpackages:
//
//	walk/       — Direction, Coord, Link, Chain; conflict detection & growth
//	observable/ — weights, end-to-end distance, radius of gyration
//	perm/       — pruned-enriched population control over a chain ensemble
//	ensemble/   — chain collections, sampling drivers, observable matrices
//
// All randomness flows through explicit, seedable sources, so every run is
// reproducible: same seed, same ensemble.
//
// Quick ASCII example of a length-5 self-avoiding walk:
//
//	    ●───●
//	        │
//	    ●───●
//	    │
//	    ○───●   (○ = origin)
//
//	go get github.com/SangersJeroen/Polymer-Growth
package polymergrowth
