// Package tsp expresses the symmetric Travelling Salesman Problem as an
// annealing problem for package sa.
//
// A state is a closed Hamiltonian tour over the vertices of a distance matrix:
// len(tour) == n+1 and tour[0] == tour[n] == Start (vertex 0). Moves are
// classic 2-opt segment reversals:
//
//   - Move{I, K} reverses tour[I..K], 1 ≤ I < K ≤ n−1.
//
//   - Δ = w(a,c) + w(b,d) − w(a,b) − w(c,d), with a=T[I−1], b=T[I], c=T[K], d=T[K+1].
//
// Proposals are O(1), accepted moves O(K−I).
//
// Distances are any gonum mat.Matrix that is square (n ≥ 3), finite,
// non-negative, symmetric and zero on the diagonal; NewProblem validates this
// and copies the weights into a flat buffer.
package tsp
