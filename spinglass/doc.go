// Package spinglass implements the Ising spin-glass energy model as an
// annealing problem for package sa.
//
// Energy of a configuration s ∈ {−1,+1}ⁿ with symmetric couplings J:
//
//	E(s) = Σ_i Σ_j J_ij · s_i · s_j
//
// The state keeps the local fields h = J·s next to the spins, so a single
// spin flip is proposed in O(1) (Δ = −4·s_i·h_i + 4·J_ii) and applied in O(n).
//
// Couplings are read from whitespace-separated "i j w" triples (see
// ReadCouplings); duplicated pairs are summed and the result is symmetrized
// as (J + Jᵀ)/2.
package spinglass
