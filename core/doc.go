// Package core provides the adjacency-matrix Graph primitive for chroma.
//
// What:
//
//   - Graph: an immutable-after-construction graph over the fixed vertex set
//     {0..N-1}, built from an N×N adjacency matrix whose entries are
//     restricted to {0,1}. Each edge carries a stable integer index.
//   - Directed and undirected modes. In undirected mode the matrix is read
//     through its symmetric closure: the edge {i,j} exists if either (i,j)
//     or (j,i) is set, and the direction pair collapses to one logical edge.
//   - Queries: VertexCount, EdgeCount, Neighbors, Degree, MaxDegree,
//     Endpoints, IncidentEdges, Edges, Matrix.
//   - ToUndirected: derives a new Graph over the symmetric closure of a
//     directed Graph. Existing instances are never mutated — a new matrix
//     always produces a new Graph.
//
// Why:
//   - The coloring search in chroma/coloring needs cheap, index-based
//     neighbor and incidence lookups with a stable edge numbering.
//   - Validation happens exactly once, at construction; queries afterwards
//     cannot fail for structural reasons.
//
// Degrees follow the total-degree convention: in a directed graph the
// degree of v counts both incoming and outgoing edges, and a self-loop
// always contributes 2. This is the convention the Vizing bound in
// chroma/coloring relies on.
//
// Errors:
//
//   - ErrNonSquareMatrix  matrix is not N×N (including ragged rows)
//   - ErrMatrixValue      an entry lies outside {0,1}; the wrapped error
//     names the offending cell
//   - ErrVertexOutOfRange vertex index outside [0, VertexCount)
//   - ErrEdgeOutOfRange   edge index outside [0, EdgeCount)
//
// Complexity:
//
//   - NewGraph / ToUndirected: Time O(N²), Memory O(N² + E)
//   - All queries: O(1), except Neighbors/IncidentEdges which return
//     precomputed slices in O(1) (copied defensively: O(result))
package core
