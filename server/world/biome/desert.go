package biome

import (
	"math"

	"github.com/df-mc/terravolt/server/world/block"
)

// saltRedSand keys the deterministic red-sand banding of desert surfaces.
const saltRedSand = 0x9d5f

// Desert is a hot, dry biome with dune ridges and rare desert temples. Its
// point profile reuses the weighted-distance match rather than hard bounds.
type Desert struct {
	base
}

// NewDesert creates the desert biome.
func NewDesert() Desert {
	return Desert{base: base{
		id:      "desert",
		colour:  "#fa9418",
		profile: PointProfile(0.85, 0.05, 0.55, 0.65, 0),
		terrain: Terrain{BaseHeight: 66, HeightVariation: 3, Hilliness: 1},
		palette: Palette{Top: block.Sand, Filler: block.Sand, Underground: block.Sandstone, Underwater: block.Sand},
		densities: Densities{
			Tree:   0.004,
			Grass:  0.015,
			Flower: 0,
		},
		features: []WeightedID{
			{ID: "tree:cactus", Weight: 10},
			{ID: "plant:dead_bush", Weight: 10},
		},
		structures: []WeightedID{
			{ID: "desert_temple", Weight: 2},
			{ID: "well", Weight: 1},
		},
		spawns: SpawnTables{
			Passive: []SpawnEntry{{Type: "rabbit", Weight: 4, MinCount: 2, MaxCount: 3}},
			Hostile: append(standardHostile(), SpawnEntry{Type: "husk", Weight: 80, MinCount: 2, MaxCount: 4}),
		},
	}}
}

// Height adds dune ridges to the base curve: the absolute value of the dunes
// channel folds the noise into sharp crests.
func (d Desert) Height(x, z int64, n NoiseField) float64 {
	ridge := math.Abs(channel(n, "dunes", x, z, 1.0/48))
	return d.base.Height(x, z, n) + ridge*5*d.terrain.Hilliness
}

// BlockAt bands the sand surface with red sand patches. The banding derives
// from a per-position hash, never from a shared random source, so a reloaded
// chunk regenerates identical decoration.
func (d Desert) BlockAt(x, y, z int64, surface float64, n NoiseField) block.Block {
	b := d.base.BlockAt(x, y, z, surface, n)
	if b == block.Sand && decorative(x, y, z, saltRedSand) < 0.18 {
		return block.RedSand
	}
	return b
}
