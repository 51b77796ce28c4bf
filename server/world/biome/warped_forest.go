package biome

import "github.com/df-mc/terravolt/server/world/block"

// WarpedForest is the teal counterpart of the crimson forest, sitting on the
// positive side of the weirdness axis.
type WarpedForest struct {
	base
}

// NewWarpedForest creates the warped forest biome.
func NewWarpedForest() WarpedForest {
	return WarpedForest{base: base{
		id:      "warped_forest",
		colour:  "#49907b",
		nether:  true,
		profile: PointProfile(0.9, 0, 0, 0.5, 0.5),
		terrain: Terrain{BaseHeight: 48, HeightVariation: 8, Hilliness: 0.6},
		palette: Palette{Top: block.WarpedNylium, Filler: block.Netherrack, Underground: block.Netherrack, Underwater: block.Netherrack},
		densities: Densities{
			Tree:  0.2,
			Grass: 0.1,
		},
		features: []WeightedID{
			{ID: "tree:warped_fungus", Weight: 20},
			{ID: "plant:warped_roots", Weight: 10},
		},
		spawns: SpawnTables{
			// The warped forest is the one quiet corner of the nether.
			Neutral: []SpawnEntry{{Type: "enderman", Weight: 1, MinCount: 4, MaxCount: 4}},
		},
	}}
}
