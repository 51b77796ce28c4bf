package biome

import "github.com/df-mc/terravolt/server/world/block"

// Plains is the gently rolling grassland that also serves as the overworld
// default biome in the standard registry.
type Plains struct {
	base
}

// NewPlains creates the plains biome.
func NewPlains() Plains {
	return Plains{base: base{
		id:     "plains",
		colour: "#8db360",
		profile: Profile{
			Temperature:     Span{Min: 0.3, Max: 0.6},
			Precipitation:   Span{Min: 0.3, Max: 0.7},
			Continentalness: Span{Min: 0.1, Max: 0.8},
			Erosion:         Span{Min: 0.2, Max: 0.9},
			Weirdness:       Span{Min: -0.5, Max: 0.5},
			Bounded:         true,
		},
		terrain: Terrain{BaseHeight: 66, HeightVariation: 4, Hilliness: 0.4},
		palette: Palette{Top: block.Grass, Filler: block.Dirt, Underground: block.Stone, Underwater: block.Gravel},
		densities: Densities{
			Tree:   0.02,
			Grass:  0.3,
			Flower: 0.06,
		},
		features: []WeightedID{
			{ID: "tree:oak", Weight: 10},
			{ID: "plant:short_grass", Weight: 30},
			{ID: "plant:fern", Weight: 2},
			{ID: "flower:poppy", Weight: 10},
			{ID: "flower:dandelion", Weight: 10},
		},
		structures: []WeightedID{
			{ID: "village", Weight: 8},
			{ID: "well", Weight: 2},
		},
		spawns: grasslandSpawns(),
	}}
}

// Height layers a low-frequency rolling hill term over the base height
// curve.
func (p Plains) Height(x, z int64, n NoiseField) float64 {
	return p.base.Height(x, z, n) + channel(n, "largeHills", x, z, 1.0/256)*6*p.terrain.Hilliness
}
