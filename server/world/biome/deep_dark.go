package biome

import "github.com/df-mc/terravolt/server/world/block"

const saltSculk = 0xd00d

// DeepDark is the deepest underground biome. Its depth bonus threshold sits
// above the dripstone caves', so the two cave biomes partition the depth
// axis between them.
type DeepDark struct {
	base
}

// NewDeepDark creates the deep dark biome.
func NewDeepDark() DeepDark {
	return DeepDark{base: base{
		id:      "deep_dark",
		colour:  "#0e252a",
		profile: PointProfile(0.4, 0.4, 0.6, 0.3, -0.2),
		bonuses: []Bonus{{
			Name:   "extreme_depth",
			Amount: 100,
			Applies: func(s ClimateSample) bool {
				return s.Depth > 0.7
			},
		}},
		terrain: Terrain{BaseHeight: 64, HeightVariation: 5, Hilliness: 0.4},
		palette: Palette{Top: block.Deepslate, Filler: block.Deepslate, Underground: block.Deepslate, Underwater: block.Deepslate},
		structures: []WeightedID{
			{ID: "ancient_city", Weight: 1},
		},
		// No regular mob spawns; the warden is managed by the structure.
		spawns: SpawnTables{},
	}}
}

// BlockAt grows sculk patches through the deepslate.
func (d DeepDark) BlockAt(x, y, z int64, surface float64, n NoiseField) block.Block {
	b := d.base.BlockAt(x, y, z, surface, n)
	if b == block.Deepslate && decorative(x, y, z, saltSculk) < 0.15 {
		return block.Sculk
	}
	return b
}
