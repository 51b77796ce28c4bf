package biome

import "github.com/df-mc/terravolt/server/world/block"

// Jungle is a hot, wet biome with the densest canopy of all overworld
// biomes and an extra undergrowth pass on top of the standard vegetation
// trials.
type Jungle struct {
	base
}

// NewJungle creates the jungle biome.
func NewJungle() Jungle {
	return Jungle{base: base{
		id:     "jungle",
		colour: "#537b09",
		profile: Profile{
			Temperature:     Span{Min: 0.7, Max: 0.95},
			Precipitation:   Span{Min: 0.7, Max: 1},
			Continentalness: Span{Min: 0.2, Max: 0.9},
			Erosion:         Span{Min: 0.1, Max: 0.7},
			Weirdness:       Span{Min: -0.7, Max: 0.7},
			Bounded:         true,
		},
		terrain: Terrain{BaseHeight: 68, HeightVariation: 9, Hilliness: 0.8},
		palette: Palette{Top: block.Grass, Filler: block.Dirt, Underground: block.Stone, Underwater: block.Gravel},
		densities: Densities{
			Tree:   0.5,
			Grass:  0.35,
			Flower: 0.04,
		},
		features: []WeightedID{
			{ID: "tree:jungle", Weight: 25},
			{ID: "tree:oak", Weight: 5},
			{ID: "plant:short_grass", Weight: 25},
			{ID: "plant:fern", Weight: 10},
			{ID: "flower:blue_orchid", Weight: 5},
		},
		structures: []WeightedID{
			{ID: "jungle_temple", Weight: 2},
		},
		spawns: SpawnTables{
			Passive: []SpawnEntry{
				{Type: "parrot", Weight: 40, MinCount: 1, MaxCount: 2},
				{Type: "ocelot", Weight: 2, MinCount: 1, MaxCount: 3},
				{Type: "chicken", Weight: 10, MinCount: 4, MaxCount: 4},
			},
			Hostile: standardHostile(),
		},
	}}
}

// Height adds a rougher hill term than the temperate forests.
func (j Jungle) Height(x, z int64, n NoiseField) float64 {
	return j.base.Height(x, z, n) + channel(n, "forest", x, z, 1.0/72)*6*j.terrain.Hilliness
}

// FeaturesAt runs the base trials first, then one extra undergrowth trial.
// Draw order: tree, grass, flower (base), then undergrowth. The extra trial
// always consumes exactly one draw, plus one on success.
func (j Jungle) FeaturesAt(x, z int64, r RandSource, n NoiseField) []Feature {
	fs := j.base.FeaturesAt(x, z, r, n)
	if r() < 0.1 {
		if r() < 0.5 {
			fs = append(fs, Feature{Type: "plant", ID: "melon", X: x, Z: z})
		} else {
			fs = append(fs, Feature{Type: "plant", ID: "vines", X: x, Z: z})
		}
	}
	return fs
}
