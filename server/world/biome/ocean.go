package biome

import (
	"math"

	"github.com/df-mc/terravolt/server/world/block"
)

// Ocean is the low-continentalness water biome. Deep and Frozen variants are
// flags on the same type rather than separate definitions: the flags adjust
// the floor depth, the surface cap and the registered ID.
type Ocean struct {
	base
	// Deep lowers the ocean floor by an extra shelf.
	Deep bool
	// Frozen caps the water surface with ice.
	Frozen bool
}

// NewOcean creates an ocean biome with the variant flags passed.
func NewOcean(deep, frozen bool) Ocean {
	id := "ocean"
	temperature := Span{Min: 0.2, Max: 0.7}
	if deep {
		id = "deep_" + id
	}
	if frozen {
		id = "frozen_" + id
		temperature = Span{Min: -1, Max: 0}
	}
	return Ocean{
		Deep:   deep,
		Frozen: frozen,
		base: base{
			id:     id,
			colour: "#000070",
			profile: Profile{
				Temperature:     temperature,
				Precipitation:   Span{Min: 0, Max: 1},
				Continentalness: Span{Min: -1, Max: -0.2},
				Erosion:         Span{Min: -1, Max: 1},
				Weirdness:       Span{Min: -1, Max: 1},
				Bounded:         true,
			},
			terrain: Terrain{BaseHeight: 50, HeightVariation: 6, Hilliness: 0.3},
			palette: Palette{Top: block.Gravel, Filler: block.Gravel, Underground: block.Stone, Underwater: block.Gravel},
			densities: Densities{
				Grass: 0.05,
			},
			features: []WeightedID{
				{ID: "plant:seagrass", Weight: 10},
			},
			spawns: SpawnTables{
				Water: []SpawnEntry{
					{Type: "cod", Weight: 10, MinCount: 3, MaxCount: 6},
					{Type: "salmon", Weight: 8, MinCount: 1, MaxCount: 5},
					{Type: "squid", Weight: 4, MinCount: 1, MaxCount: 4},
				},
				Hostile: []SpawnEntry{{Type: "drowned", Weight: 5, MinCount: 1, MaxCount: 1}},
			},
		},
	}
}

// Height keeps the floor well below sea level, dropping an extra shelf for
// deep oceans.
func (o Ocean) Height(x, z int64, n NoiseField) float64 {
	h := o.base.Height(x, z, n)
	if o.Deep {
		h -= 15
	}
	return math.Min(h, SeaLevel-4)
}

// BlockAt caps frozen oceans with an ice sheet at sea level.
func (o Ocean) BlockAt(x, y, z int64, surface float64, n NoiseField) block.Block {
	b := o.base.BlockAt(x, y, z, surface, n)
	if o.Frozen && y == SeaLevel && b == block.Water {
		return block.Ice
	}
	return b
}
