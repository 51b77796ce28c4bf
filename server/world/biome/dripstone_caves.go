package biome

import "github.com/df-mc/terravolt/server/world/block"

const saltDripstone = 0x3b97

// DripstoneCaves is an underground biome. Its surface profile is a poor
// match on purpose: the depth bonus is what pulls it ahead of surface biomes
// once a column samples deep enough.
type DripstoneCaves struct {
	base
}

// NewDripstoneCaves creates the dripstone caves biome.
func NewDripstoneCaves() DripstoneCaves {
	return DripstoneCaves{base: base{
		id:      "dripstone_caves",
		colour:  "#7a5b4c",
		profile: PointProfile(0.5, 0.4, 0.6, 0.4, 0),
		bonuses: []Bonus{{
			Name:   "high_depth",
			Amount: 100,
			Applies: func(s ClimateSample) bool {
				return s.Depth > 0.4
			},
		}},
		terrain: Terrain{BaseHeight: 64, HeightVariation: 6, Hilliness: 0.5},
		palette: Palette{Top: block.Stone, Filler: block.Stone, Underground: block.Stone, Underwater: block.Gravel},
		features: []WeightedID{
			{ID: "ore:copper", Weight: 10},
		},
		spawns: SpawnTables{
			Hostile: standardHostile(),
		},
	}}
}

// BlockAt carves dripstone pockets into the stone body of the column.
func (d DripstoneCaves) BlockAt(x, y, z int64, surface float64, n NoiseField) block.Block {
	b := d.base.BlockAt(x, y, z, surface, n)
	if b == block.Stone && decorative(x, y, z, saltDripstone) < 0.1 {
		return block.DripstoneBlock
	}
	return b
}

// FeaturesAt adds a pointed dripstone trial and an ore vein trial after the
// base pass. Draw order: the base sequence, then dripstone, then ore.
func (d DripstoneCaves) FeaturesAt(x, z int64, r RandSource, n NoiseField) []Feature {
	fs := d.base.FeaturesAt(x, z, r, n)
	if r() < 0.08 {
		fs = append(fs, Feature{Type: "plant", ID: "pointed_dripstone", X: x, Z: z})
	}
	if id, ok := trial(r, 0.25, d.features, "ore"); ok {
		fs = append(fs, Feature{Type: "ore", ID: id, X: x, Z: z, Meta: map[string]float64{"size": 8}})
	}
	return fs
}
