package biome

// SpawnEntry describes one mob type eligible to spawn in a biome, with its
// selection weight and the group size bounds used when a spawn attempt
// succeeds.
type SpawnEntry struct {
	Type               string
	Weight             int
	MinCount, MaxCount int
}

// SpawnTables holds the four spawn categories of a biome. The tables are
// static per biome and read-only; the creature spawning subsystem consumes
// them through the Biome interface.
type SpawnTables struct {
	Passive []SpawnEntry
	Neutral []SpawnEntry
	Hostile []SpawnEntry
	Water   []SpawnEntry
}

// standardHostile is the hostile table shared by most overworld biomes.
func standardHostile() []SpawnEntry {
	return []SpawnEntry{
		{Type: "zombie", Weight: 95, MinCount: 2, MaxCount: 4},
		{Type: "skeleton", Weight: 80, MinCount: 1, MaxCount: 4},
		{Type: "creeper", Weight: 60, MinCount: 1, MaxCount: 2},
		{Type: "spider", Weight: 60, MinCount: 1, MaxCount: 3},
	}
}

// grassland spawns are shared by plains-like biomes.
func grasslandSpawns() SpawnTables {
	return SpawnTables{
		Passive: []SpawnEntry{
			{Type: "sheep", Weight: 12, MinCount: 2, MaxCount: 4},
			{Type: "cow", Weight: 8, MinCount: 2, MaxCount: 4},
			{Type: "pig", Weight: 10, MinCount: 2, MaxCount: 4},
			{Type: "chicken", Weight: 10, MinCount: 2, MaxCount: 4},
		},
		Hostile: standardHostile(),
	}
}
