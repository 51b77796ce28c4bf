package biome

import "github.com/df-mc/terravolt/server/world/block"

const saltPodzol = 0x51a3

// Forest is a temperate, densely treed biome with occasional podzol patches
// under the canopy.
type Forest struct {
	base
}

// NewForest creates the forest biome.
func NewForest() Forest {
	return Forest{base: base{
		id:     "forest",
		colour: "#056621",
		profile: Profile{
			Temperature:     Span{Min: 0.25, Max: 0.6},
			Precipitation:   Span{Min: 0.5, Max: 0.9},
			Continentalness: Span{Min: 0.2, Max: 0.9},
			Erosion:         Span{Min: 0.1, Max: 0.7},
			Weirdness:       Span{Min: -0.6, Max: 0.6},
			Bounded:         true,
		},
		terrain: Terrain{BaseHeight: 68, HeightVariation: 7, Hilliness: 0.6},
		palette: Palette{Top: block.Grass, Filler: block.Dirt, Underground: block.Stone, Underwater: block.Gravel},
		densities: Densities{
			Tree:   0.35,
			Grass:  0.15,
			Flower: 0.03,
		},
		features: []WeightedID{
			{ID: "tree:oak", Weight: 20},
			{ID: "tree:birch", Weight: 5},
			{ID: "plant:short_grass", Weight: 20},
			{ID: "plant:fern", Weight: 5},
			{ID: "flower:poppy", Weight: 5},
			{ID: "flower:dandelion", Weight: 5},
		},
		spawns: SpawnTables{
			Passive: []SpawnEntry{
				{Type: "wolf", Weight: 5, MinCount: 4, MaxCount: 4},
				{Type: "chicken", Weight: 10, MinCount: 2, MaxCount: 4},
			},
			Hostile: standardHostile(),
		},
	}}
}

// Height layers a mid-frequency forest channel over the base curve.
func (f Forest) Height(x, z int64, n NoiseField) float64 {
	return f.base.Height(x, z, n) + channel(n, "forest", x, z, 1.0/96)*4*f.terrain.Hilliness
}

// BlockAt scatters podzol over the grass surface.
func (f Forest) BlockAt(x, y, z int64, surface float64, n NoiseField) block.Block {
	b := f.base.BlockAt(x, y, z, surface, n)
	if b == block.Grass && decorative(x, y, z, saltPodzol) < 0.08 {
		return block.Podzol
	}
	return b
}
