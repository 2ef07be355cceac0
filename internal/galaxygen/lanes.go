package galaxygen

import (
	"math"
	"sort"
)

// classMultiplier scales the lane-distance threshold by topological tier.
// The origin system reaches furthest, the core reaches far, and the rim is
// deliberately isolated. Mixed pairs use the more generous of the two.
func classMultiplier(class SystemClass) float64 {
	switch class {
	case ClassOrigin:
		return 2.5
	case ClassCore:
		return 2.0
	default:
		return 0.4
	}
}

func tierMultiplier(a, b SystemClass) float64 {
	return math.Max(classMultiplier(a), classMultiplier(b))
}

// baseLaneDistance is the un-tiered lane threshold: the configured maximum
// stretched by half, or a quarter of the galaxy radius, whichever is larger.
// Pure config.MaxDistance values tuned for small maps would otherwise starve
// large galaxies of lanes entirely.
func (g *Generator) baseLaneDistance() float64 {
	return math.Max(g.cfg.Connectivity.MaxDistance*1.5, g.cfg.Radius*0.25)
}

// effectiveMaxDistance resolves the lane threshold for one candidate pair.
func (g *Generator) effectiveMaxDistance(a, b *StarSystem) float64 {
	base := g.baseLaneDistance()
	if g.cfg.Connectivity.UseTieredConnectivity {
		return base * tierMultiplier(a.Class, b.Class)
	}
	return base
}

// buildLanes converts the site neighbor graph into warp lanes. Each system is
// first guaranteed its one or two geometrically closest neighbor edges so no
// system enters the repair stage at degree zero merely because the dice were
// cold; remaining neighbor pairs are accepted probabilistically with
// exponential distance decay and a diversity bonus for sparse endpoints.
func (g *Generator) buildLanes(sites []site, gb *graphBuilder) {
	g.guaranteeClosestLanes(sites, gb)
	g.addProbabilisticLanes(sites, gb)

	g.logger.Debug("Built lanes",
		"lanes", len(gb.lanes),
		"tiered", g.cfg.Connectivity.UseTieredConnectivity)
}

func (g *Generator) guaranteeClosestLanes(sites []site, gb *graphBuilder) {
	type near struct {
		sysIdx int
		dist   float64
	}

	for i := range sites {
		if !sites[i].hasSystem {
			continue
		}
		self := sites[i].systemIdx

		nears := make([]near, 0, len(sites[i].neighbors))
		for _, n := range sites[i].neighbors {
			if !sites[n].hasSystem {
				continue
			}
			other := sites[n].systemIdx
			nears = append(nears, near{
				sysIdx: other,
				dist:   systemDistance(&gb.systems[self], &gb.systems[other]),
			})
		}
		sort.Slice(nears, func(a, b int) bool {
			if nears[a].dist != nears[b].dist {
				return nears[a].dist < nears[b].dist
			}
			return gb.systems[nears[a].sysIdx].ID < gb.systems[nears[b].sysIdx].ID
		})

		guaranteed := 0
		for _, n := range nears {
			if guaranteed >= 2 {
				break
			}
			// Existing lanes count toward the guarantee.
			gb.TryAddEdge(self, n.sysIdx, n.dist)
			guaranteed++
		}
	}
}

func (g *Generator) addProbabilisticLanes(sites []site, gb *graphBuilder) {
	decay := g.cfg.Connectivity.DistanceDecayFactor
	maxConns := g.cfg.Connectivity.MaxConnections

	for i := range sites {
		if !sites[i].hasSystem {
			continue
		}
		for _, n := range sites[i].neighbors {
			if n <= i || !sites[n].hasSystem {
				continue
			}

			a := sites[i].systemIdx
			b := sites[n].systemIdx
			if gb.Connected(a, b) {
				continue
			}

			sysA := &gb.systems[a]
			sysB := &gb.systems[b]
			if gb.Degree(a) >= g.connectionCap(sysA, maxConns) ||
				gb.Degree(b) >= g.connectionCap(sysB, maxConns) {
				continue
			}

			dist := systemDistance(sysA, sysB)
			effMax := g.effectiveMaxDistance(sysA, sysB)
			if dist > effMax {
				continue
			}

			probability := math.Exp(-(dist / effMax) * decay)
			if gb.Degree(a) < 2 || gb.Degree(b) < 2 {
				probability *= 1.5 // help sparse systems attract lanes
			}

			if g.rng.Next() < probability {
				gb.TryAddEdge(a, b, dist)
			}
		}
	}
}

// connectionCap lets central systems carry a couple more lanes than the
// configured maximum, turning them into hubs.
func (g *Generator) connectionCap(sys *StarSystem, maxConns int) int {
	if sys.Class == ClassOrigin || sys.Class == ClassCore {
		return maxConns + 2
	}
	return maxConns
}
