package galaxygen

import "fmt"

var systemNamePrefixes = []string{
	"Alpha", "Beta", "Gamma", "Delta", "Epsilon", "Zeta", "Eta", "Theta",
}

var systemNameSuffixes = []string{
	"Centauri", "Draconis", "Leonis", "Aquarii", "Orionis", "Cygni", "Lyrae",
}

// systemName derives a display name from a generated system's ordinal. The
// lookup is purely positional so renames never depend on the RNG stream.
func systemName(index int) string {
	prefix := systemNamePrefixes[index%len(systemNamePrefixes)]
	suffix := systemNameSuffixes[(index/len(systemNamePrefixes))%len(systemNameSuffixes)]
	return prefix + " " + suffix
}

var anomalyNames = map[AnomalyCategory][]string{
	AnomalyNebula:    {"Crimson Nebula", "Azure Cloud", "Stellar Nursery", "Dark Nebula"},
	AnomalyBlackHole: {"Void Maw", "Event Horizon", "Singularity", "Dark Star"},
	AnomalyWormhole:  {"Quantum Gate", "Space Fold", "Dimensional Rift", "Warp Tunnel"},
	AnomalyArtifact:  {"Ancient Relic", "Precursor Site", "Mysterious Structure", "Alien Beacon"},
	AnomalyResource:  {"Asteroid Field", "Resource Cluster", "Mining Zone", "Rare Elements"},
}

func anomalyName(category AnomalyCategory, index int) string {
	names := anomalyNames[category]
	return fmt.Sprintf("%s %d", names[index%len(names)], index/len(names)+1)
}
