package biome

import "github.com/df-mc/terravolt/server/world/block"

const saltSoul = 0x5057

// SoulSandValley is a nether valley floored with soul sand and soul soil.
type SoulSandValley struct {
	base
}

// NewSoulSandValley creates the soul sand valley biome.
func NewSoulSandValley() SoulSandValley {
	return SoulSandValley{base: base{
		id:      "soul_sand_valley",
		colour:  "#5b4538",
		nether:  true,
		profile: PointProfile(0.9, 0, 0, 0.3, 0.6),
		terrain: Terrain{BaseHeight: 40, HeightVariation: 5, Hilliness: 0.3},
		palette: Palette{Top: block.SoulSand, Filler: block.SoulSoil, Underground: block.Netherrack, Underwater: block.SoulSand},
		structures: []WeightedID{
			{ID: "nether_fossil", Weight: 6},
		},
		spawns: SpawnTables{
			Hostile: []SpawnEntry{
				{Type: "skeleton", Weight: 20, MinCount: 5, MaxCount: 5},
				{Type: "ghast", Weight: 50, MinCount: 4, MaxCount: 4},
				{Type: "enderman", Weight: 1, MinCount: 4, MaxCount: 4},
			},
		},
	}}
}

// BlockAt bands the soul sand surface with soul soil.
func (v SoulSandValley) BlockAt(x, y, z int64, surface float64, n NoiseField) block.Block {
	b := v.base.BlockAt(x, y, z, surface, n)
	if b == block.SoulSand && decorative(x, y, z, saltSoul) < 0.35 {
		return block.SoulSoil
	}
	return b
}
