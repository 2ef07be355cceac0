package galaxygen

import (
	"math"
)

// edge is an index pair with i < j.
type edge struct {
	i, j int
}

func edgeKey(i, j int) edge {
	if i > j {
		i, j = j, i
	}
	return edge{i, j}
}

// graphBuilder owns the lane list and the adjacency of the galaxy under
// construction. Every stage that produces lanes goes through TryAddEdge, so
// duplicate detection and the Connections bookkeeping live in exactly one
// place. Systems are addressed by their index in the dense systems slice;
// string ids only appear on the externally visible lanes.
type graphBuilder struct {
	systems []StarSystem
	adj     [][]int
	lanes   []WarpLane
	edges   []edge
	present map[edge]bool
}

func newGraphBuilder(systems []StarSystem) *graphBuilder {
	return &graphBuilder{
		systems: systems,
		adj:     make([][]int, len(systems)),
		present: make(map[edge]bool),
	}
}

// TryAddEdge inserts the lane between systems i and j unless it already
// exists or would be a self-loop. Returns true when a new lane was created.
func (b *graphBuilder) TryAddEdge(i, j int, dist float64) bool {
	if i == j {
		return false
	}
	key := edgeKey(i, j)
	if b.present[key] {
		return false
	}

	from := &b.systems[i]
	to := &b.systems[j]

	lane := WarpLane{
		ID:         from.ID + "-" + to.ID,
		From:       from.ID,
		To:         to.ID,
		Distance:   dist,
		TravelTime: int(math.Ceil(dist / 5.0)), // 5 LY per turn
		Discovered: from.Explored && to.Explored,
	}

	b.lanes = append(b.lanes, lane)
	b.edges = append(b.edges, key)
	b.present[key] = true
	b.adj[i] = append(b.adj[i], j)
	b.adj[j] = append(b.adj[j], i)
	from.Connections = append(from.Connections, to.ID)
	to.Connections = append(to.Connections, from.ID)

	return true
}

// Connected reports whether a lane already joins i and j.
func (b *graphBuilder) Connected(i, j int) bool {
	return b.present[edgeKey(i, j)]
}

// Degree returns the current lane count of system i.
func (b *graphBuilder) Degree(i int) int {
	return len(b.adj[i])
}
