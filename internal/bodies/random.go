package bodies

import (
	"hash/fnv"
	"math/rand"
	"strconv"
)

var starTypes = []string{"G-class", "K-class", "M-class", "F-class", "A-class"}

var randomAtmospheres = []string{
	"Thin carbon dioxide", "Dense nitrogen-oxygen", "Methane and hydrogen",
	"Thick carbon dioxide", "Hydrogen and helium", "None",
}

// earthRadiusKm converts body radii to Earth-relative ratios for the
// mass and gravity formulas.
const earthRadiusKm = 6371.0

// GenerateRandom builds a plausible detail for a system without a predefined
// entry. The PRNG is seeded from the system id, so the same system always
// gets the same contents without any storage.
func GenerateRandom(systemID, systemName string) *SystemDetail {
	h := fnv.New64a()
	h.Write([]byte(systemID))
	rng := rand.New(rand.NewSource(int64(h.Sum64())))

	detail := &SystemDetail{
		SystemID:        systemID,
		SystemName:      systemName,
		StarType:        starTypes[rng.Intn(len(starTypes))],
		StarMass:        0.5 + rng.Float64()*1.5,
		StarRadius:      0.7 + rng.Float64()*1.1,
		StarTemperature: 3000 + rng.Intn(4001),
	}

	planetCount := 4 + rng.Intn(7)
	currentDistance := 0.3
	for i := 0; i < planetCount; i++ {
		detail.Planets = append(detail.Planets, generateRandomPlanet(i, currentDistance, rng))
		currentDistance *= 1.3 + rng.Float64()*0.9
	}

	return detail
}

func generateRandomPlanet(index int, distanceFromStar float64, rng *rand.Rand) Planet {
	planet := Planet{Body: Body{
		ID:                 "planet-" + strconv.Itoa(index+1),
		Name:               "Planet " + strconv.Itoa(index+1),
		Type:               "planet",
		DistanceFromParent: distanceFromStar,
	}}

	typeRoll := rng.Float64()
	if distanceFromStar < 2.0 {
		if typeRoll < 0.8 {
			// Terrestrial, Mercury to super-Earth sized.
			setBodyPhysique(&planet.Body, 2000+rng.Float64()*6000, 0.7+rng.Float64()*0.6)
			planet.Composition = "Silicate rock with iron core"
		} else {
			// Mini-Neptune.
			setBodyPhysique(&planet.Body, 8000+rng.Float64()*17000, 0.3+rng.Float64()*0.5)
			planet.Composition = "Hydrogen and helium with rocky core"
		}
	} else {
		switch {
		case typeRoll < 0.4:
			setBodyPhysique(&planet.Body, 25000+rng.Float64()*55000, 0.2+rng.Float64()*0.4)
			planet.Composition = "Hydrogen and helium gas giant"
		case typeRoll < 0.7:
			setBodyPhysique(&planet.Body, 15000+rng.Float64()*15000, 0.4+rng.Float64()*0.5)
			planet.Composition = "Water, methane, and ammonia ices over rock core"
		default:
			setBodyPhysique(&planet.Body, 3000+rng.Float64()*7000, 0.5+rng.Float64()*0.6)
			planet.Composition = "Water ice and silicate rock"
		}
	}

	// Habitable zone sits around 0.8-1.5 AU, with a marginal band around it.
	switch {
	case distanceFromStar >= 0.8 && distanceFromStar <= 1.5:
		planet.Habitability = 20 + rng.Intn(61)
	case distanceFromStar >= 0.5 && distanceFromStar <= 2.0:
		planet.Habitability = 5 + rng.Intn(26)
	default:
		planet.Habitability = 0
	}

	planet.Atmosphere = randomAtmospheres[rng.Intn(len(randomAtmospheres))]
	planet.Resources = generateRandomResources("planet", planet.Habitability, rng)

	if rng.Float64() <= 0.1 {
		moonCount := 1 + rng.Intn(3)
		for m := 0; m < moonCount; m++ {
			planet.Moons = append(planet.Moons, generateRandomMoon(m, &planet, rng))
		}
	}

	return planet
}

// setBodyPhysique derives diameter, mass and gravity from a sampled radius
// and density factor. Mass scales with the cube of the Earth radius ratio;
// gravity with mass over radius squared.
func setBodyPhysique(body *Body, radius, densityFactor float64) {
	body.Radius = radius
	body.Diameter = radius * 2
	ratio := radius / earthRadiusKm
	body.Mass = ratio * ratio * ratio * densityFactor
	body.Gravity = float64(int(body.Mass * 100 / (ratio * ratio)))
}

func generateRandomMoon(index int, parent *Planet, rng *rand.Rand) Body {
	moon := Body{
		ID:                 parent.ID + "-moon-" + strconv.Itoa(index+1),
		Name:               parent.Name + " Moon " + strconv.Itoa(index+1),
		Type:               "moon",
		DistanceFromParent: 10000 + rng.Float64()*490000,
	}

	setBodyPhysique(&moon, parent.Radius*(0.1+rng.Float64()*0.3), 0.6+rng.Float64()*0.6)

	moon.Habitability = min(parent.Habitability/2, 20)
	moon.Atmosphere = "Extremely thin or none"
	moon.Composition = "Silicate rock and ice"
	moon.Resources = generateRandomResources("moon", moon.Habitability, rng)

	return moon
}

func generateRandomResources(bodyType string, habitability int, rng *rand.Rand) []ResourceDeposit {
	resources := []ResourceDeposit{
		{Type: ResourceMinerals, Abundance: 20 + rng.Intn(61), Accessibility: 30 + rng.Intn(61)},
		{Type: ResourceRareMetals, Abundance: 20 + rng.Intn(61), Accessibility: 30 + rng.Intn(61)},
	}

	if habitability > 20 && rng.Float64() < 0.7 {
		resources = append(resources, ResourceDeposit{
			Type:          ResourceWaterIce,
			Abundance:     40 + habitability/2,
			Accessibility: 60 + habitability/3,
		})
	}

	if bodyType == "planet" && rng.Float64() < 0.3 {
		resources = append(resources, ResourceDeposit{
			Type:          ResourceEnergyCrystals,
			Abundance:     15 + rng.Intn(30),
			Accessibility: 20 + rng.Intn(40),
		})
	}

	return resources
}
