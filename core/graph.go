package core

import "fmt"

// Graph is an immutable adjacency-matrix graph over vertices {0..N-1}.
// All structural indexes (neighbor lists, incidence lists, degrees) are
// precomputed at construction; instances are safe for concurrent readers.
type Graph struct {
	directed  bool
	adj       [][]int // validated matrix copy (symmetric closure when undirected)
	edges     []Edge  // edges in stable index order
	neighbors [][]int // per-vertex adjacent vertices, ascending
	incident  [][]int // per-vertex incident edge indexes, ascending
	degree    []int   // total degree per vertex (self-loop counts twice)
	maxDegree int
}

// NewGraph validates matrix and builds a Graph.
//
// The matrix must be N×N with every entry in {0,1}; self-loops
// (diagonal 1) are permitted. Violations fail with ErrNonSquareMatrix or
// ErrMatrixValue, the latter wrapped with the offending cell. The input
// slice is copied — later caller mutations never reach the Graph.
//
// Complexity: O(N²) time, O(N²+E) memory.
func NewGraph(matrix [][]int, opts ...Option) (*Graph, error) {
	// 1. Resolve options.
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 2. Validate shape and entry domain in one pass, copying as we go.
	n := len(matrix)
	adj := make([][]int, n)
	var (
		i, j, v int
		row     []int
	)
	for i, row = range matrix {
		if len(row) != n {
			return nil, fmt.Errorf("row %d has %d entries, want %d: %w", i, len(row), n, ErrNonSquareMatrix)
		}
		adj[i] = make([]int, n)
		for j, v = range row {
			if v != 0 && v != 1 {
				return nil, fmt.Errorf("cell (%d,%d)=%d: %w", i, j, v, ErrMatrixValue)
			}
			adj[i][j] = v
		}
	}

	// 3. Undirected mode reads the matrix through its symmetric closure.
	if !o.directed {
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				if adj[i][j] == 1 {
					adj[j][i] = 1
				}
			}
		}
	}

	g := &Graph{directed: o.directed, adj: adj}
	g.index()

	return g, nil
}

// index enumerates edges in stable scan order and precomputes the
// neighbor, incidence and degree tables. Called once per construction.
func (g *Graph) index() {
	n := len(g.adj)
	g.neighbors = make([][]int, n)
	g.incident = make([][]int, n)
	g.degree = make([]int, n)

	// 1. Enumerate edges. Directed: every set cell (i,j), row-major.
	//    Undirected: one logical edge per set cell with i ≤ j.
	var i, j int
	for i = 0; i < n; i++ {
		jStart := 0
		if !g.directed {
			jStart = i
		}
		for j = jStart; j < n; j++ {
			if g.adj[i][j] != 1 {
				continue
			}
			e := Edge{Index: len(g.edges), U: i, V: j}
			g.edges = append(g.edges, e)

			// 2. Incidence table: a self-loop is listed once at its vertex.
			g.incident[i] = append(g.incident[i], e.Index)
			if j != i {
				g.incident[j] = append(g.incident[j], e.Index)
			}

			// 3. Total degree: each edge contributes one endpoint twice
			//    when it is a self-loop, once per endpoint otherwise.
			g.degree[i]++
			g.degree[j]++
		}
	}

	// 4. Neighbor lists in ascending vertex order, both directions merged.
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if g.adj[i][j] == 1 || g.adj[j][i] == 1 {
				g.neighbors[i] = append(g.neighbors[i], j)
			}
		}
		if g.degree[i] > g.maxDegree {
			g.maxDegree = g.degree[i]
		}
	}
}

// Directed reports whether the Graph was built in directed mode.
func (g *Graph) Directed() bool { return g.directed }

// VertexCount returns N, the number of vertices.
func (g *Graph) VertexCount() int { return len(g.adj) }

// EdgeCount returns the number of edges under the Graph's mode.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Neighbors returns the vertices adjacent to v (either direction),
// ascending. A self-loop makes v its own neighbor.
func (g *Graph) Neighbors(v int) ([]int, error) {
	if v < 0 || v >= len(g.adj) {
		return nil, fmt.Errorf("vertex %d: %w", v, ErrVertexOutOfRange)
	}
	out := make([]int, len(g.neighbors[v]))
	copy(out, g.neighbors[v])

	return out, nil
}

// IncidentEdges returns the indexes of edges touching v, ascending.
func (g *Graph) IncidentEdges(v int) ([]int, error) {
	if v < 0 || v >= len(g.adj) {
		return nil, fmt.Errorf("vertex %d: %w", v, ErrVertexOutOfRange)
	}
	out := make([]int, len(g.incident[v]))
	copy(out, g.incident[v])

	return out, nil
}

// Degree returns the total degree of v: incoming plus outgoing edge
// endpoints, a self-loop counting twice.
func (g *Graph) Degree(v int) (int, error) {
	if v < 0 || v >= len(g.adj) {
		return 0, fmt.Errorf("vertex %d: %w", v, ErrVertexOutOfRange)
	}

	return g.degree[v], nil
}

// MaxDegree returns the maximum total degree over all vertices,
// 0 for the empty graph.
func (g *Graph) MaxDegree() int { return g.maxDegree }

// Endpoints returns the endpoint vertices (u, v) of edge e.
func (g *Graph) Endpoints(e int) (int, int, error) {
	if e < 0 || e >= len(g.edges) {
		return 0, 0, fmt.Errorf("edge %d: %w", e, ErrEdgeOutOfRange)
	}

	return g.edges[e].U, g.edges[e].V, nil
}

// Edges returns all edges in stable index order. The slice is a copy.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// Matrix returns a defensive copy of the Graph's adjacency matrix
// (the symmetric closure when the Graph is undirected).
func (g *Graph) Matrix() [][]int {
	out := make([][]int, len(g.adj))
	for i, row := range g.adj {
		out[i] = make([]int, len(row))
		copy(out[i], row)
	}

	return out
}

// ToUndirected returns a Graph over the symmetric closure of g:
// the edge {i,j} exists if (i,j) or (j,i) was set, direction pairs
// collapsing into one logical edge. If g is already undirected, g itself
// is returned — immutability makes sharing safe.
func (g *Graph) ToUndirected() *Graph {
	if !g.directed {
		return g
	}

	u := &Graph{directed: false, adj: symmetricClosure(g.adj)}
	u.index()

	return u
}

// symmetricClosure returns a fresh matrix with adj[i][j] = adj[j][i] = 1
// wherever either direction was set.
func symmetricClosure(adj [][]int) [][]int {
	n := len(adj)
	out := make([][]int, n)
	for i := range out {
		out[i] = make([]int, n)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if adj[i][j] == 1 {
				out[i][j] = 1
				out[j][i] = 1
			}
		}
	}

	return out
}
