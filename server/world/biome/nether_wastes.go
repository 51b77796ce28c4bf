package biome

import "github.com/df-mc/terravolt/server/world/block"

// NetherWastes is the barren netherrack expanse that also serves as the
// nether default biome in the standard registry.
type NetherWastes struct {
	base
}

// NewNetherWastes creates the nether wastes biome.
func NewNetherWastes() NetherWastes {
	return NetherWastes{base: base{
		id:      "nether_wastes",
		colour:  "#bf3b3b",
		nether:  true,
		profile: PointProfile(0.9, 0, 0, 0.5, 0),
		terrain: Terrain{BaseHeight: 48, HeightVariation: 10, Hilliness: 0.8},
		palette: Palette{Top: block.Netherrack, Filler: block.Netherrack, Underground: block.Netherrack, Underwater: block.Netherrack},
		densities: Densities{
			Tree: 0.01,
		},
		features: []WeightedID{
			{ID: "tree:crimson_fungus", Weight: 1},
			{ID: "tree:warped_fungus", Weight: 1},
		},
		structures: []WeightedID{
			{ID: "nether_fortress", Weight: 2},
		},
		spawns: SpawnTables{
			Neutral: []SpawnEntry{
				{Type: "zombified_piglin", Weight: 100, MinCount: 4, MaxCount: 4},
				{Type: "enderman", Weight: 1, MinCount: 4, MaxCount: 4},
			},
			Hostile: []SpawnEntry{
				{Type: "ghast", Weight: 50, MinCount: 4, MaxCount: 4},
				{Type: "magma_cube", Weight: 2, MinCount: 4, MaxCount: 4},
			},
		},
	}}
}
