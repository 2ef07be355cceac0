package galaxygen

import (
	"sort"
)

// redundantLaneCap bounds the total number of resilience lanes per galaxy,
// together with systemCount/4.
const redundantLaneCap = 40

// addRedundantLanes gives topologically weak systems extra lanes so a single
// cut lane cannot sever whole regions. It runs after connectivity is already
// guaranteed and never re-validates that invariant; it is strictly
// best-effort within its cap.
func (g *Generator) addRedundantLanes(gb *graphBuilder) {
	systems := gb.systems
	n := len(systems)
	if n < 3 {
		return
	}

	var centroidX, centroidY float64
	for i := range systems {
		centroidX += systems[i].X
		centroidY += systems[i].Y
	}
	centroidX /= float64(n)
	centroidY /= float64(n)

	outlyingRadius := g.cfg.Radius * 0.6
	var vulnerable []int
	for i := range systems {
		deg := gb.Degree(i)
		fromCentroid := distance(systems[i].X, systems[i].Y, centroidX, centroidY)
		if deg <= 2 || (fromCentroid > outlyingRadius && deg < 4) {
			vulnerable = append(vulnerable, i)
		}
	}

	maxAdditions := min(n/4, redundantLaneCap)
	maxReach := g.cfg.Radius * 0.4
	added := 0

	for _, v := range vulnerable {
		if added >= maxAdditions {
			break
		}

		type target struct {
			idx   int
			dist  float64
			score float64
		}
		candidates := make([]target, 0, n-1)
		for t := range systems {
			if t == v || gb.Connected(v, t) {
				continue
			}
			d := systemDistance(&systems[v], &systems[t])
			// Bias toward already well-connected hubs: linking a weak system
			// to another weak system helps the network far less.
			score := d / (1.0 + float64(gb.Degree(t))*0.2)
			candidates = append(candidates, target{idx: t, dist: d, score: score})
		}

		sort.Slice(candidates, func(a, b int) bool {
			if candidates[a].score != candidates[b].score {
				return candidates[a].score < candidates[b].score
			}
			return systems[candidates[a].idx].ID < systems[candidates[b].idx].ID
		})

		wanted := 1
		if gb.Degree(v) == 1 {
			wanted = 2
		}

		for _, c := range candidates {
			if wanted == 0 || added >= maxAdditions {
				break
			}
			if c.dist >= maxReach {
				continue
			}
			if gb.TryAddEdge(v, c.idx, c.dist) {
				added++
				wanted--
				g.logger.Debug("Added redundant lane",
					"from", systems[v].ID,
					"to", systems[c.idx].ID,
					"distance", c.dist)
			}
		}
	}

	g.stats.RedundantLanes += added
	if added > 0 {
		g.logger.Info("Added redundant lanes for network resilience",
			"vulnerable_systems", len(vulnerable),
			"lanes_added", added)
	}
}
