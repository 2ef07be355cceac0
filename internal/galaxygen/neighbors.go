package galaxygen

import "sort"

// computeNeighbors fills each site's neighbor list with its k nearest other
// sites within the distance cap, then symmetrizes the relation. Without the
// symmetrization pass, a sparsely surrounded site whose own top-k all point
// elsewhere would end up with no neighbors at all.
func (g *Generator) computeNeighbors(sites []site) {
	k := g.cfg.Neighbors.MaxNeighbors
	cap := g.cfg.neighborDistanceCap()

	type candidate struct {
		idx  int
		dist float64
	}

	for i := range sites {
		candidates := make([]candidate, 0, len(sites)-1)
		for j := range sites {
			if i == j {
				continue
			}
			d := distance(sites[i].x, sites[i].y, sites[j].x, sites[j].y)
			if d <= cap {
				candidates = append(candidates, candidate{idx: j, dist: d})
			}
		}

		sort.Slice(candidates, func(a, b int) bool {
			if candidates[a].dist != candidates[b].dist {
				return candidates[a].dist < candidates[b].dist
			}
			return candidates[a].idx < candidates[b].idx
		})

		limit := k
		if limit > len(candidates) {
			limit = len(candidates)
		}
		sites[i].neighbors = sites[i].neighbors[:0]
		for c := 0; c < limit; c++ {
			sites[i].neighbors = append(sites[i].neighbors, candidates[c].idx)
		}
	}

	// Symmetrize: if i lists j, j must list i.
	for i := range sites {
		for _, j := range sites[i].neighbors {
			if !containsInt(sites[j].neighbors, i) {
				sites[j].neighbors = append(sites[j].neighbors, i)
			}
		}
	}

	g.logger.Debug("Computed neighbor graph",
		"sites", len(sites),
		"max_neighbors", k,
		"distance_cap", cap)
}

func containsInt(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}
