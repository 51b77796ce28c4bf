package biome

import "github.com/df-mc/terravolt/server/world/block"

// CrimsonForest is a nether forest of crimson fungi on crimson nylium. The
// negative weirdness midpoint mirrors the warped forest on the other side of
// the axis.
type CrimsonForest struct {
	base
}

// NewCrimsonForest creates the crimson forest biome.
func NewCrimsonForest() CrimsonForest {
	return CrimsonForest{base: base{
		id:      "crimson_forest",
		colour:  "#dd0808",
		nether:  true,
		profile: PointProfile(0.9, 0, 0, 0.5, -0.5),
		terrain: Terrain{BaseHeight: 48, HeightVariation: 8, Hilliness: 0.6},
		palette: Palette{Top: block.CrimsonNylium, Filler: block.Netherrack, Underground: block.Netherrack, Underwater: block.Netherrack},
		densities: Densities{
			Tree:  0.2,
			Grass: 0.1,
		},
		features: []WeightedID{
			{ID: "tree:crimson_fungus", Weight: 20},
			{ID: "plant:crimson_roots", Weight: 10},
		},
		spawns: SpawnTables{
			Neutral: []SpawnEntry{
				{Type: "piglin", Weight: 15, MinCount: 4, MaxCount: 4},
				{Type: "zombified_piglin", Weight: 1, MinCount: 2, MaxCount: 4},
			},
			Hostile: []SpawnEntry{{Type: "hoglin", Weight: 9, MinCount: 3, MaxCount: 4}},
		},
	}}
}
