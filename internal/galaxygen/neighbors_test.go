package galaxygen

import "testing"

func TestComputeNeighborsSymmetry(t *testing.T) {
	cfg := testConfig()
	g := NewGenerator(cfg, nil)
	sites := g.placeSites(cfg.StarSystemCount)
	g.computeNeighbors(sites)

	for i := range sites {
		for _, j := range sites[i].neighbors {
			if !containsInt(sites[j].neighbors, i) {
				t.Errorf("site %d lists %d but %d does not list %d back", i, j, j, i)
			}
		}
	}
}

func TestComputeNeighborsNoSelfOrDuplicates(t *testing.T) {
	cfg := testConfig()
	g := NewGenerator(cfg, nil)
	sites := g.placeSites(cfg.StarSystemCount)
	g.computeNeighbors(sites)

	for i := range sites {
		seen := make(map[int]bool)
		for _, j := range sites[i].neighbors {
			if j == i {
				t.Errorf("site %d lists itself as a neighbor", i)
			}
			if seen[j] {
				t.Errorf("site %d lists %d twice", i, j)
			}
			seen[j] = true
		}
	}
}

func TestComputeNeighborsIncludesNearest(t *testing.T) {
	g := NewGenerator(testConfig(), nil)
	sites := []site{
		{x: 0, y: 0},
		{x: 1, y: 0},
		{x: 10, y: 0},
		{x: 11, y: 0},
	}
	g.computeNeighbors(sites)

	if !containsInt(sites[0].neighbors, 1) {
		t.Error("site 0 should list its nearest neighbor 1")
	}
	if !containsInt(sites[3].neighbors, 2) {
		t.Error("site 3 should list its nearest neighbor 2")
	}
}

func TestComputeNeighborsHonorsDistanceCap(t *testing.T) {
	cfg := testConfig()
	cfg.Neighbors.DistanceCap = 5
	g := NewGenerator(cfg, nil)

	sites := []site{
		{x: 0, y: 0},
		{x: 1, y: 0},
		{x: 100, y: 0},
	}
	g.computeNeighbors(sites)

	if containsInt(sites[0].neighbors, 2) {
		t.Error("site 0 lists site 2, which sits past the distance cap")
	}
	if len(sites[2].neighbors) != 0 {
		t.Errorf("site 2 has %d neighbors, want 0", len(sites[2].neighbors))
	}
}
