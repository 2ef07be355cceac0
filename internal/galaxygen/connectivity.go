package galaxygen

import (
	"math"
	"sort"
)

// ensureConnectivity makes the lane graph a single connected component. This
// is a hard postcondition for any galaxy with at least one system, not a
// best-effort pass.
//
// Pass 1 cheaply connects degree-zero stragglers to their nearest neighbor.
// Pass 2 runs a Kruskal-style sweep over a union-find of all systems and
// bridges whatever components remain with the globally shortest
// inter-component edges, leaving every previously accepted lane untouched.
func (g *Generator) ensureConnectivity(gb *graphBuilder) {
	systems := gb.systems
	n := len(systems)
	if n < 2 {
		return
	}

	g.repairIsolatedSystems(gb)

	uf := newUnionFind(n)
	for _, e := range gb.edges {
		uf.Union(e.i, e.j)
	}
	if uf.Components() == 1 {
		return
	}

	type bridge struct {
		i, j int
		dist float64
	}

	candidates := make([]bridge, 0)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if uf.Find(i) != uf.Find(j) {
				candidates = append(candidates, bridge{
					i:    i,
					j:    j,
					dist: systemDistance(&systems[i], &systems[j]),
				})
			}
		}
	}

	// Equal-distance candidates are ordered by their id pair so the result
	// never depends on system iteration order.
	sort.Slice(candidates, func(a, b int) bool {
		if candidates[a].dist != candidates[b].dist {
			return candidates[a].dist < candidates[b].dist
		}
		aLo, aHi := orderedIDs(&systems[candidates[a].i], &systems[candidates[a].j])
		bLo, bHi := orderedIDs(&systems[candidates[b].i], &systems[candidates[b].j])
		if aLo != bLo {
			return aLo < bLo
		}
		return aHi < bHi
	})

	bridges := 0
	for _, c := range candidates {
		if uf.Components() == 1 {
			break
		}
		if uf.Union(c.i, c.j) {
			gb.TryAddEdge(c.i, c.j, c.dist)
			bridges++
			g.logger.Debug("Added bridge lane",
				"from", systems[c.i].ID,
				"to", systems[c.j].ID,
				"distance", c.dist)
		}
	}
	g.stats.BridgeLanes += bridges

	if bridges > 0 {
		g.logger.Info("Bridged disconnected components", "bridges", bridges)
	}
}

// repairIsolatedSystems connects each zero-lane system to its single nearest
// neighbor, provided that neighbor sits within a generous fallback radius.
func (g *Generator) repairIsolatedSystems(gb *graphBuilder) {
	systems := gb.systems
	fallback := g.cfg.Radius * 0.3

	for i := range systems {
		if gb.Degree(i) > 0 {
			continue
		}

		nearest := -1
		best := math.MaxFloat64
		for j := range systems {
			if j == i {
				continue
			}
			if d := systemDistance(&systems[i], &systems[j]); d < best {
				best = d
				nearest = j
			}
		}

		if nearest >= 0 && best <= fallback {
			gb.TryAddEdge(i, nearest, best)
			g.stats.IsolatedRepairs++
			g.logger.Debug("Connected isolated system",
				"system", systems[i].ID,
				"to", systems[nearest].ID,
				"distance", best)
		}
	}
}

func orderedIDs(a, b *StarSystem) (string, string) {
	if a.ID < b.ID {
		return a.ID, b.ID
	}
	return b.ID, a.ID
}
