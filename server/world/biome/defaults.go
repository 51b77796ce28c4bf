package biome

import "fmt"

// RegisterDefaults seeds the registry with the standard biome set in a fixed
// order. The order matters: it decides tie-breaks between biomes with equal
// fitness scores and which biome becomes the default of each dimension.
// Plains is registered first and becomes the overworld default; nether
// wastes is the first nether biome and becomes the nether default.
func RegisterDefaults(r *Registry) error {
	defaults := []Biome{
		NewPlains(),
		NewForest(),
		NewBirchForest(),
		NewDesert(),
		NewJungle(),
		NewBambooJungle(),
		NewMangroveSwamp(),
		NewOcean(false, false),
		NewOcean(true, false),
		NewOcean(false, true),
		NewDripstoneCaves(),
		NewDeepDark(),
		NewNetherWastes(),
		NewSoulSandValley(),
		NewCrimsonForest(),
		NewWarpedForest(),
		NewBasaltDeltas(),
	}
	for _, b := range defaults {
		if !r.Register(b) {
			return fmt.Errorf("register default biomes: registration of %v failed", b.ID())
		}
	}
	return nil
}
