package biome

import (
	"math"

	"github.com/df-mc/terravolt/server/world/block"
)

const saltBasalt = 0xba5a

// BasaltDeltas is a volcanic nether biome of basalt spikes and blackstone.
// Its erosion midpoint sits at the top of the axis so the weighted distance
// keeps it away from the smoother nether variants.
type BasaltDeltas struct {
	base
}

// NewBasaltDeltas creates the basalt deltas biome.
func NewBasaltDeltas() BasaltDeltas {
	return BasaltDeltas{base: base{
		id:      "basalt_deltas",
		colour:  "#403636",
		nether:  true,
		profile: PointProfile(0.9, 0, 0, 0.95, 0),
		terrain: Terrain{BaseHeight: 45, HeightVariation: 4, Hilliness: 1},
		palette: Palette{Top: block.Basalt, Filler: block.Basalt, Underground: block.Blackstone, Underwater: block.Basalt},
		spawns: SpawnTables{
			Hostile: []SpawnEntry{
				{Type: "ghast", Weight: 40, MinCount: 1, MaxCount: 1},
				{Type: "magma_cube", Weight: 100, MinCount: 2, MaxCount: 5},
			},
		},
	}}
}

// Height folds the cave channel into steep spikes characteristic of the
// deltas.
func (b BasaltDeltas) Height(x, z int64, n NoiseField) float64 {
	spike := math.Abs(channel(n, "caveNoise", x, z, 1.0/24))
	return b.base.Height(x, z, n) + spike*12*b.terrain.Hilliness
}

// BlockAt mixes blackstone and magma pockets into the basalt.
func (b BasaltDeltas) BlockAt(x, y, z int64, surface float64, n NoiseField) block.Block {
	bl := b.base.BlockAt(x, y, z, surface, n)
	if bl == block.Basalt {
		switch v := decorative(x, y, z, saltBasalt); {
		case v < 0.2:
			return block.Blackstone
		case v < 0.24:
			return block.Magma
		}
	}
	return bl
}
