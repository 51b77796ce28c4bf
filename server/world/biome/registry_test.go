package biome

import (
	"io"
	"log/slog"
	"testing"

	"github.com/df-mc/terravolt/server/world"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	return NewRegistry(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newDefaultRegistry(t *testing.T) *Registry {
	t.Helper()
	r := newTestRegistry(t)
	if err := RegisterDefaults(r); err != nil {
		t.Fatalf("register defaults: %v", err)
	}
	return r
}

func TestRegisterDuplicate(t *testing.T) {
	t.Parallel()
	r := newTestRegistry(t)
	if !r.Register(NewPlains()) {
		t.Fatal("first registration failed")
	}
	if r.Register(NewPlains()) {
		t.Fatal("duplicate registration succeeded")
	}
	if r.Count() != 1 {
		t.Fatalf("Count = %v, want 1", r.Count())
	}
}

func TestRegisterInvalid(t *testing.T) {
	t.Parallel()
	r := newTestRegistry(t)
	if r.Register(nil) {
		t.Error("nil biome registered")
	}
	if r.Register(base{}) {
		t.Error("biome with empty ID registered")
	}
}

func TestRegisterAssignsDefaults(t *testing.T) {
	t.Parallel()
	r := newTestRegistry(t)
	if _, ok := r.DefaultBiome(); ok {
		t.Fatal("empty registry reports a default biome")
	}
	r.Register(NewPlains())
	r.Register(NewDesert())
	if d, ok := r.DefaultBiome(); !ok || d.ID() != "plains" {
		t.Fatalf("default biome = %v, want plains", d)
	}
	r.Register(NewSoulSandValley())
	r.Register(NewNetherWastes())
	if d, ok := r.DefaultNetherBiome(); !ok || d.ID() != "soul_sand_valley" {
		t.Fatalf("default nether biome = %v, want the first registered nether biome", d)
	}
}

func TestUnregisterReassignsDefault(t *testing.T) {
	t.Parallel()
	r := newTestRegistry(t)
	r.Register(NewPlains())
	r.Register(NewForest())
	if !r.Unregister("plains") {
		t.Fatal("unregister failed")
	}
	if d, ok := r.DefaultBiome(); !ok || d.ID() != "forest" {
		t.Fatalf("default after unregister = %v, want forest", d)
	}
	if r.Unregister("plains") {
		t.Error("unregistering an absent biome succeeded")
	}
	r.Unregister("forest")
	if _, ok := r.DefaultBiome(); ok {
		t.Error("default biome survives an empty registry")
	}
}

func TestUnregisterReassignsNetherDefault(t *testing.T) {
	t.Parallel()
	r := newTestRegistry(t)
	r.Register(NewPlains())
	r.Register(NewSoulSandValley())
	r.Register(NewNetherWastes())
	if !r.Unregister("soul_sand_valley") {
		t.Fatal("unregister failed")
	}
	if d, ok := r.DefaultNetherBiome(); !ok || d.ID() != "nether_wastes" {
		t.Fatalf("nether default after unregister = %v, want nether_wastes", d)
	}
	if d, ok := r.DefaultBiome(); !ok || d.ID() != "plains" {
		t.Fatalf("overworld default disturbed, got %v", d)
	}
	r.Unregister("nether_wastes")
	if _, ok := r.DefaultNetherBiome(); ok {
		t.Error("nether default survives without nether biomes")
	}
}

func TestFreeze(t *testing.T) {
	t.Parallel()
	r := newTestRegistry(t)
	r.Register(NewPlains())
	r.Freeze()
	if r.Register(NewDesert()) {
		t.Error("registration succeeded on a frozen registry")
	}
	if r.Unregister("plains") {
		t.Error("unregistration succeeded on a frozen registry")
	}
	if r.Count() != 1 {
		t.Errorf("Count = %v, want 1", r.Count())
	}
}

func TestBestForClimateTieBreak(t *testing.T) {
	t.Parallel()
	profile := PointProfile(0.5, 0.5, 0.5, 0.5, 0)
	sample := ClimateSample{Temperature: 0.5, Precipitation: 0.5, Continentalness: 0.5, Erosion: 0.5}

	r := newTestRegistry(t)
	r.Register(base{id: "first", profile: profile})
	r.Register(base{id: "second", profile: profile})
	if b, ok := r.BestForClimate(sample); !ok || b.ID() != "first" {
		t.Fatalf("tie resolved to %v, want the biome registered first", b)
	}

	r = newTestRegistry(t)
	r.Register(base{id: "second", profile: profile})
	r.Register(base{id: "first", profile: profile})
	if b, ok := r.BestForClimate(sample); !ok || b.ID() != "second" {
		t.Fatalf("tie resolved to %v, want the biome registered first", b)
	}
}

func TestBestForClimateFallback(t *testing.T) {
	t.Parallel()
	r := newTestRegistry(t)
	if _, ok := r.BestForClimate(ClimateSample{}); ok {
		t.Fatal("empty registry produced a biome")
	}
	r.Register(NewPlains())
	// Nothing matches a sample this far out; the default catches it.
	extreme := ClimateSample{Temperature: -1, Precipitation: -1, Continentalness: 1, Erosion: 1, Weirdness: 1}
	if b, ok := r.BestForClimate(extreme); !ok || b.ID() != "plains" {
		t.Fatalf("fallback = %v, want the default biome", b)
	}
}

func TestBestForClimateSelectsDesert(t *testing.T) {
	t.Parallel()
	r := newDefaultRegistry(t)
	s := ClimateSample{
		Temperature:     0.85,
		Precipitation:   0.1,
		Continentalness: 0.8,
		Erosion:         0.75,
		Dimension:       world.Overworld,
	}
	b, ok := r.BestForClimateIn(s, world.Overworld)
	if !ok || b.ID() != "desert" {
		t.Fatalf("hot dry sample selected %v, want desert", b.ID())
	}
}

func TestDepthBonusPartitionsCaves(t *testing.T) {
	t.Parallel()
	r := newDefaultRegistry(t)
	s := ClimateSample{
		Temperature:     0.4,
		Precipitation:   0.4,
		Continentalness: 0.6,
		Erosion:         0.3,
		Weirdness:       -0.2,
		Dimension:       world.Overworld,
	}
	s.Depth = 0.5
	if b, _ := r.BestForClimateIn(s, world.Overworld); b.ID() != "dripstone_caves" {
		t.Fatalf("mid-depth sample selected %v, want dripstone_caves", b.ID())
	}
	s.Depth = 0.9
	if b, _ := r.BestForClimateIn(s, world.Overworld); b.ID() != "deep_dark" {
		t.Fatalf("extreme-depth sample selected %v, want deep_dark", b.ID())
	}
}

func TestBestForClimateInNetherFallback(t *testing.T) {
	t.Parallel()
	r := newDefaultRegistry(t)
	extreme := ClimateSample{Temperature: -1, Precipitation: -1, Continentalness: -1, Erosion: -1, Weirdness: -1, Dimension: world.Nether}
	b, ok := r.BestForClimateIn(extreme, world.Nether)
	if !ok || b.ID() != "nether_wastes" {
		t.Fatalf("nether fallback = %v, want nether_wastes", b.ID())
	}
	if !b.NetherBiome() {
		t.Error("nether selection returned a non-nether biome")
	}
}

func TestBiomesByDimension(t *testing.T) {
	t.Parallel()
	r := newDefaultRegistry(t)
	nether := r.BiomesByDimension(world.Nether)
	if len(nether) != 5 {
		t.Fatalf("nether biomes = %v, want 5", len(nether))
	}
	for _, b := range nether {
		if !b.NetherBiome() {
			t.Errorf("%v listed for the Nether", b.ID())
		}
	}
	if end := r.BiomesByDimension(world.End); len(end) != 0 {
		t.Fatalf("end biomes = %v, want none registered", len(end))
	}
	overworld := r.BiomesByDimension(world.Overworld)
	if len(overworld) != r.Count()-5 {
		t.Fatalf("overworld biomes = %v, want %v", len(overworld), r.Count()-5)
	}
}

func TestByTerrainType(t *testing.T) {
	t.Parallel()
	r := newDefaultRegistry(t)
	oceans := r.ByTerrainType("ocean")
	if len(oceans) != 3 {
		t.Fatalf("ByTerrainType(ocean) = %v biomes, want 3", len(oceans))
	}
	forests := map[string]bool{}
	for _, b := range r.ByTerrainType("forest") {
		forests[b.ID()] = true
	}
	for _, id := range []string{"forest", "birch_forest", "crimson_forest", "warped_forest"} {
		if !forests[id] {
			t.Errorf("ByTerrainType(forest) missing %v", id)
		}
	}
	if r.ByTerrainType("tundra") != nil {
		t.Error("ByTerrainType matched an absent substring")
	}
}

func TestByTemperature(t *testing.T) {
	t.Parallel()
	r := newDefaultRegistry(t)
	hot := map[string]bool{}
	for _, b := range r.ByTemperature(TemperatureHot) {
		hot[b.ID()] = true
	}
	if !hot["desert"] {
		t.Error("desert missing from the hot category")
	}
	if hot["plains"] {
		t.Error("plains listed in the hot category")
	}
	frozen := map[string]bool{}
	for _, b := range r.ByTemperature(TemperatureFrozen) {
		frozen[b.ID()] = true
	}
	if !frozen["frozen_ocean"] {
		t.Error("frozen ocean missing from the frozen category")
	}

	// Bands touch at their edges, so a span crossing an edge shows up in both
	// neighbouring categories.
	cold := map[string]bool{}
	for _, b := range r.ByTemperature(TemperatureCold) {
		cold[b.ID()] = true
	}
	temperate := map[string]bool{}
	for _, b := range r.ByTemperature(TemperatureTemperate) {
		temperate[b.ID()] = true
	}
	if !cold["birch_forest"] || !temperate["birch_forest"] {
		t.Error("birch forest missing from a neighbouring temperature category")
	}

	if r.ByTemperature("scorching") != nil {
		t.Error("unknown category produced biomes")
	}
}

func TestAllSnapshot(t *testing.T) {
	t.Parallel()
	r := newTestRegistry(t)
	r.Register(NewPlains())
	snap := r.All()
	r.Register(NewDesert())
	if len(snap) != 1 {
		t.Fatalf("snapshot grew with the registry: %v", len(snap))
	}
	if len(r.All()) != 2 {
		t.Fatalf("All = %v biomes, want 2", len(r.All()))
	}
}

func TestSetDefaultBiome(t *testing.T) {
	t.Parallel()
	r := newDefaultRegistry(t)
	if !r.SetDefaultBiome("desert") {
		t.Fatal("SetDefaultBiome failed for a registered biome")
	}
	if d, _ := r.DefaultBiome(); d.ID() != "desert" {
		t.Fatalf("default = %v, want desert", d.ID())
	}
	if r.SetDefaultBiome("tundra") {
		t.Error("SetDefaultBiome accepted an unknown ID")
	}
}
