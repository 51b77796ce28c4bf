package biome

import "github.com/df-mc/terravolt/server/world/block"

// BirchForest is a slightly cooler forest variant dominated by birch trees.
type BirchForest struct {
	base
}

// NewBirchForest creates the birch forest biome.
func NewBirchForest() BirchForest {
	return BirchForest{base: base{
		id:     "birch_forest",
		colour: "#307444",
		profile: Profile{
			Temperature:     Span{Min: 0.1, Max: 0.4},
			Precipitation:   Span{Min: 0.5, Max: 0.8},
			Continentalness: Span{Min: 0.2, Max: 0.9},
			Erosion:         Span{Min: 0.1, Max: 0.7},
			Weirdness:       Span{Min: -0.4, Max: 0.8},
			Bounded:         true,
		},
		terrain: Terrain{BaseHeight: 68, HeightVariation: 6, Hilliness: 0.5},
		palette: Palette{Top: block.Grass, Filler: block.Dirt, Underground: block.Stone, Underwater: block.Gravel},
		densities: Densities{
			Tree:   0.3,
			Grass:  0.12,
			Flower: 0.05,
		},
		features: []WeightedID{
			{ID: "tree:birch", Weight: 20},
			{ID: "tree:oak", Weight: 2},
			{ID: "plant:short_grass", Weight: 15},
			{ID: "flower:blue_orchid", Weight: 4},
			{ID: "flower:dandelion", Weight: 6},
		},
		spawns: grasslandSpawns(),
	}}
}

// Height reuses the forest channel with a gentler amplitude.
func (f BirchForest) Height(x, z int64, n NoiseField) float64 {
	return f.base.Height(x, z, n) + channel(n, "forest", x, z, 1.0/96)*3*f.terrain.Hilliness
}
