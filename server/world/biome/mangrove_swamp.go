package biome

import "github.com/df-mc/terravolt/server/world/block"

const saltRoots = 0x77c1

// MangroveSwamp is a hot wetland hugging sea level. Its point profile is a
// mediocre match for most coastal samples, so a named precipitation bonus
// biases selection towards it wherever rainfall is extreme.
type MangroveSwamp struct {
	base
}

// NewMangroveSwamp creates the mangrove swamp biome.
func NewMangroveSwamp() MangroveSwamp {
	return MangroveSwamp{base: base{
		id:      "mangrove_swamp",
		colour:  "#2d8053",
		profile: PointProfile(0.75, 0.9, 0.3, 0.2, 0.1),
		bonuses: []Bonus{{
			Name:   "high_precipitation",
			Amount: 100,
			Applies: func(s ClimateSample) bool {
				return s.Precipitation > 0.85
			},
		}},
		terrain: Terrain{BaseHeight: 62, HeightVariation: 2, Hilliness: 0.2},
		palette: Palette{Top: block.Mud, Filler: block.Mud, Underground: block.Stone, Underwater: block.Mud},
		densities: Densities{
			Tree:   0.3,
			Grass:  0.2,
			Flower: 0.01,
		},
		features: []WeightedID{
			{ID: "tree:mangrove", Weight: 30},
			{ID: "plant:short_grass", Weight: 10},
			{ID: "plant:fern", Weight: 10},
			{ID: "flower:blue_orchid", Weight: 5},
		},
		spawns: SpawnTables{
			Passive: []SpawnEntry{{Type: "frog", Weight: 10, MinCount: 2, MaxCount: 5}},
			Hostile: append(standardHostile(), SpawnEntry{Type: "slime", Weight: 20, MinCount: 1, MaxCount: 3}),
			Water:   []SpawnEntry{{Type: "tadpole", Weight: 8, MinCount: 2, MaxCount: 6}},
		},
	}}
}

// Height flattens the base curve towards sea level so the swamp stays half
// submerged regardless of the terrain channel.
func (m MangroveSwamp) Height(x, z int64, n NoiseField) float64 {
	h := m.base.Height(x, z, n)
	return h + (float64(SeaLevel)-h)*0.6
}

// BlockAt mixes mangrove root pockets into the mud surface.
func (m MangroveSwamp) BlockAt(x, y, z int64, surface float64, n NoiseField) block.Block {
	b := m.base.BlockAt(x, y, z, surface, n)
	if b == block.Mud && decorative(x, y, z, saltRoots) < 0.12 {
		return block.MangroveRoots
	}
	return b
}
