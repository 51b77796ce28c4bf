package server

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/df-mc/terravolt/server/world"
	"github.com/df-mc/terravolt/server/world/chunk"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestEngineNewDefaults(t *testing.T) {
	t.Parallel()
	e, err := Config{Log: discardLogger()}.New()
	if err != nil {
		t.Fatalf("create engine: %v", err)
	}
	t.Cleanup(func() { _ = e.Close() })

	if got := e.Registry().Count(); got != 17 {
		t.Errorf("registry holds %v biomes, want the default set of 17", got)
	}
	if got := len(e.Dimensions()); got != 3 {
		t.Errorf("engine serves %v dimensions, want 3", got)
	}
	if d, ok := e.Registry().DefaultBiome(); !ok || d.ID() != "plains" {
		t.Errorf("default biome = %v, want plains", d)
	}
	// The registry is frozen; late registration must fail.
	if e.Registry().Unregister("plains") {
		t.Error("engine registry not frozen")
	}
}

func TestEngineDisabledBiomes(t *testing.T) {
	t.Parallel()
	e, err := Config{Log: discardLogger(), DisabledBiomes: []string{"desert", "no_such_biome"}}.New()
	if err != nil {
		t.Fatalf("create engine: %v", err)
	}
	t.Cleanup(func() { _ = e.Close() })
	if _, ok := e.Registry().Biome("desert"); ok {
		t.Error("disabled biome still registered")
	}
	if got := e.Registry().Count(); got != 16 {
		t.Errorf("registry holds %v biomes, want 16", got)
	}
}

func TestEngineDisabledDefaultBiome(t *testing.T) {
	t.Parallel()
	// Disabling the biome that is the registry default must reassign the
	// default, not fail engine construction.
	e, err := Config{Log: discardLogger(), DisabledBiomes: []string{"plains", "nether_wastes"}}.New()
	if err != nil {
		t.Fatalf("create engine: %v", err)
	}
	t.Cleanup(func() { _ = e.Close() })
	if d, ok := e.Registry().DefaultBiome(); !ok || d.ID() == "plains" {
		t.Errorf("default biome = %v, want a reassigned one", d)
	}
	if d, ok := e.Registry().DefaultNetherBiome(); !ok || d.ID() == "nether_wastes" {
		t.Errorf("default nether biome = %v, want a reassigned one", d)
	}
}

func TestEngineDefaultOverride(t *testing.T) {
	t.Parallel()
	e, err := Config{Log: discardLogger(), DefaultBiome: "forest"}.New()
	if err != nil {
		t.Fatalf("create engine: %v", err)
	}
	t.Cleanup(func() { _ = e.Close() })
	if d, _ := e.Registry().DefaultBiome(); d.ID() != "forest" {
		t.Errorf("default biome = %v, want forest", d.ID())
	}

	if _, err := (Config{Log: discardLogger(), DefaultBiome: "no_such_biome"}).New(); err == nil {
		t.Error("engine accepted an unknown default biome")
	}
}

func TestEngineDisabledDimension(t *testing.T) {
	t.Parallel()
	e, err := Config{Log: discardLogger(), DisableNether: true, DisableEnd: true}.New()
	if err != nil {
		t.Fatalf("create engine: %v", err)
	}
	t.Cleanup(func() { _ = e.Close() })
	if got := len(e.Dimensions()); got != 1 {
		t.Fatalf("engine serves %v dimensions, want 1", got)
	}
	if _, err := e.BiomeAt(world.Nether, 0, 0); err == nil {
		t.Error("disabled dimension answered a biome query")
	}
	if _, err := e.Chunk(world.Nether, world.ChunkPos{0, 0}); err == nil {
		t.Error("disabled dimension produced a chunk")
	}
}

func TestEngineChunkDeterminism(t *testing.T) {
	t.Parallel()
	e, err := Config{Log: discardLogger(), Seed: 99}.New()
	if err != nil {
		t.Fatalf("create engine: %v", err)
	}
	t.Cleanup(func() { _ = e.Close() })

	pos := world.ChunkPos{2, -3}
	a, err := e.Chunk(world.Overworld, pos)
	if err != nil {
		t.Fatalf("chunk: %v", err)
	}
	b, err := e.Chunk(world.Overworld, pos)
	if err != nil {
		t.Fatalf("chunk: %v", err)
	}
	assertSameTerrain(t, a, b)
}

func TestEngineChunkStoreRoundTrip(t *testing.T) {
	t.Parallel()
	uc := DefaultConfig()
	uc.World.Seed = 7
	uc.World.Folder = filepath.Join(t.TempDir(), "world")

	conf, err := uc.Config(discardLogger())
	if err != nil {
		t.Fatalf("convert config: %v", err)
	}
	e, err := conf.New()
	if err != nil {
		t.Fatalf("create engine: %v", err)
	}
	t.Cleanup(func() { _ = e.Close() })

	pos := world.ChunkPos{1, 1}
	generated, err := e.Chunk(world.Overworld, pos)
	if err != nil {
		t.Fatalf("generate chunk: %v", err)
	}
	cached, err := e.Chunk(world.Overworld, pos)
	if err != nil {
		t.Fatalf("load cached chunk: %v", err)
	}
	assertSameTerrain(t, generated, cached)
}

func TestEngineGenerateArea(t *testing.T) {
	t.Parallel()
	e, err := Config{Log: discardLogger(), Seed: 3}.New()
	if err != nil {
		t.Fatalf("create engine: %v", err)
	}
	t.Cleanup(func() { _ = e.Close() })

	results, err := e.GenerateArea(context.Background(), world.Overworld, world.ChunkPos{0, 0}, world.ChunkPos{2, 1})
	if err != nil {
		t.Fatalf("generate area: %v", err)
	}
	if len(results) != 6 {
		t.Fatalf("area produced %v chunks, want 6", len(results))
	}
	if _, err := e.GenerateArea(context.Background(), world.Overworld, world.ChunkPos{1, 0}, world.ChunkPos{0, 0}); err == nil {
		t.Error("inverted area bounds accepted")
	}
}

func TestParseDimension(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		want world.Dimension
		ok   bool
	}{
		{"", world.Overworld, true},
		{"overworld", world.Overworld, true},
		{"Nether", world.Nether, true},
		{"the_end", world.End, true},
		{"aether", nil, false},
	}
	for _, tt := range tests {
		got, ok := ParseDimension(tt.name)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseDimension(%q) = %v, %v", tt.name, got, ok)
		}
	}
}

func TestReadConfigCreatesDefault(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "config.toml")
	created, err := ReadConfig(path)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	if !reflect.DeepEqual(created, DefaultConfig()) {
		t.Fatal("missing config file did not yield the defaults")
	}
	read, err := ReadConfig(path)
	if err != nil {
		t.Fatalf("re-read config: %v", err)
	}
	if read.World.Seed != created.World.Seed || read.World.Folder != created.World.Folder ||
		read.World.SaveData != created.World.SaveData || read.Generator != created.Generator {
		t.Fatal("config changed across write and re-read")
	}
}

func assertSameTerrain(t *testing.T, a, b *chunk.Chunk) {
	t.Helper()
	r := a.Range()
	if r != b.Range() {
		t.Fatalf("range %v != %v", a.Range(), b.Range())
	}
	for x := uint8(0); x < chunk.Width; x++ {
		for z := uint8(0); z < chunk.Width; z++ {
			if a.Biome(x, z) != b.Biome(x, z) || a.Height(x, z) != b.Height(x, z) {
				t.Fatalf("column (%v, %v) differs", x, z)
			}
			for y := r.Min(); y < r.Max(); y++ {
				if a.Block(x, y, z) != b.Block(x, y, z) {
					t.Fatalf("block (%v, %v, %v) differs", x, y, z)
				}
			}
		}
	}
}
