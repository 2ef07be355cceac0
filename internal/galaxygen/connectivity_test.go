package galaxygen

import "testing"

// bfsComponent counts the systems reachable from index 0 over the builder's
// adjacency.
func bfsComponent(gb *graphBuilder) int {
	if len(gb.systems) == 0 {
		return 0
	}
	seen := make([]bool, len(gb.systems))
	queue := []int{0}
	seen[0] = true
	count := 0
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		count++
		for _, next := range gb.adj[cur] {
			if !seen[next] {
				seen[next] = true
				queue = append(queue, next)
			}
		}
	}
	return count
}

func TestEnsureConnectivityBridgesTwoClusters(t *testing.T) {
	cfg := testConfig()
	g := NewGenerator(cfg, nil)

	// Two internally connected clusters with a wide gap between them.
	systems := []StarSystem{
		{ID: "a1", X: 0, Y: 0},
		{ID: "a2", X: 2, Y: 0},
		{ID: "b1", X: 50, Y: 0},
		{ID: "b2", X: 52, Y: 0},
	}
	gb := newGraphBuilder(systems)
	gb.TryAddEdge(0, 1, 2)
	gb.TryAddEdge(2, 3, 2)

	g.ensureConnectivity(gb)

	if got := bfsComponent(gb); got != 4 {
		t.Fatalf("reachable systems = %d, want 4", got)
	}
	if g.stats.BridgeLanes != 1 {
		t.Errorf("BridgeLanes = %d, want exactly 1", g.stats.BridgeLanes)
	}
	// The shortest cross-cluster pair is a2-b1.
	if !gb.Connected(1, 2) {
		t.Error("bridge did not use the shortest cross-cluster pair a2-b1")
	}
}

func TestEnsureConnectivityLeavesConnectedGraphAlone(t *testing.T) {
	g := NewGenerator(testConfig(), nil)

	systems := []StarSystem{
		{ID: "a", X: 0, Y: 0},
		{ID: "b", X: 2, Y: 0},
		{ID: "c", X: 4, Y: 0},
	}
	gb := newGraphBuilder(systems)
	gb.TryAddEdge(0, 1, 2)
	gb.TryAddEdge(1, 2, 2)

	g.ensureConnectivity(gb)

	if len(gb.lanes) != 2 {
		t.Errorf("got %d lanes, want the original 2", len(gb.lanes))
	}
	if g.stats.BridgeLanes != 0 {
		t.Errorf("BridgeLanes = %d, want 0", g.stats.BridgeLanes)
	}
}

func TestEnsureConnectivitySingleSystemNoOp(t *testing.T) {
	g := NewGenerator(testConfig(), nil)
	gb := newGraphBuilder([]StarSystem{{ID: "sol"}})

	g.ensureConnectivity(gb)

	if len(gb.lanes) != 0 {
		t.Errorf("got %d lanes for a single system, want 0", len(gb.lanes))
	}
}

func TestRepairIsolatedSystems(t *testing.T) {
	cfg := testConfig()
	cfg.Radius = 100
	g := NewGenerator(cfg, nil)

	systems := []StarSystem{
		{ID: "a", X: 0, Y: 0},
		{ID: "b", X: 2, Y: 0},
		{ID: "lonely", X: 10, Y: 0},
	}
	gb := newGraphBuilder(systems)
	gb.TryAddEdge(0, 1, 2)

	g.repairIsolatedSystems(gb)

	if gb.Degree(2) != 1 {
		t.Fatalf("isolated system degree = %d, want 1", gb.Degree(2))
	}
	if !gb.Connected(2, 1) {
		t.Error("isolated system should connect to its nearest neighbor b")
	}
	if g.stats.IsolatedRepairs != 1 {
		t.Errorf("IsolatedRepairs = %d, want 1", g.stats.IsolatedRepairs)
	}
}

func TestRepairIsolatedSystemsRespectsFallbackRadius(t *testing.T) {
	cfg := testConfig()
	cfg.Radius = 10 // fallback reach is 3
	g := NewGenerator(cfg, nil)

	systems := []StarSystem{
		{ID: "a", X: 0, Y: 0},
		{ID: "far", X: 9, Y: 0},
	}
	gb := newGraphBuilder(systems)

	g.repairIsolatedSystems(gb)

	if len(gb.lanes) != 0 {
		t.Errorf("got %d lanes, nearest neighbor is past the fallback radius", len(gb.lanes))
	}
}
