package biome

// BambooJungle is the bamboo-dominated jungle variant. It composes the
// jungle biome and extends its feature pass with a bamboo trial instead of
// forming a deeper specialisation chain.
type BambooJungle struct {
	Jungle
}

// NewBambooJungle creates the bamboo jungle biome.
func NewBambooJungle() BambooJungle {
	j := NewJungle()
	j.id = "bamboo_jungle"
	j.colour = "#768e14"
	j.profile.Weirdness = Span{Min: 0.4, Max: 1}
	j.densities.Tree = 0.4
	j.features = append([]WeightedID{
		{ID: "tree:bamboo", Weight: 40},
	}, j.features...)
	j.spawns.Passive = append([]SpawnEntry{
		{Type: "panda", Weight: 8, MinCount: 1, MaxCount: 2},
	}, j.spawns.Passive...)
	return BambooJungle{Jungle: j}
}

// FeaturesAt extends the jungle pass with one bamboo shoot trial. Draw
// order: the full jungle sequence first, then bamboo.
func (b BambooJungle) FeaturesAt(x, z int64, r RandSource, n NoiseField) []Feature {
	fs := b.Jungle.FeaturesAt(x, z, r, n)
	if r() < 0.25 {
		fs = append(fs, Feature{Type: "plant", ID: "bamboo", X: x, Z: z})
	}
	return fs
}
