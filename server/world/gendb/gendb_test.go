package gendb

import (
	"encoding/binary"
	"io"
	"log/slog"
	"testing"

	"github.com/df-mc/terravolt/server/world"
	"github.com/df-mc/terravolt/server/world/block"
	"github.com/df-mc/terravolt/server/world/chunk"
)

// testChunk builds a chunk with enough variety to exercise the run-length
// coding: long uniform runs, single-block runs and per-column biome and
// height data.
func testChunk() *chunk.Chunk {
	c := chunk.New(world.Overworld.Range())
	for x := uint8(0); x < chunk.Width; x++ {
		for z := uint8(0); z < chunk.Width; z++ {
			surface := 60 + int(x) + int(z)
			for y := 1; y < surface; y++ {
				c.SetBlock(x, y, z, block.RuntimeID(block.Stone))
			}
			c.SetBlock(x, 0, z, block.RuntimeID(block.Bedrock))
			c.SetBlock(x, surface, z, block.RuntimeID(block.Grass))
			if x%3 == 0 {
				c.SetBlock(x, surface/2, z, block.RuntimeID(block.CoalOre))
			}
			c.SetHeight(x, z, surface)
			c.SetBiome(x, z, uint32(x)%5)
		}
	}
	return c
}

func assertChunksEqual(t *testing.T, want, got *chunk.Chunk) {
	t.Helper()
	if want.Range() != got.Range() {
		t.Fatalf("range = %v, want %v", got.Range(), want.Range())
	}
	r := want.Range()
	for x := uint8(0); x < chunk.Width; x++ {
		for z := uint8(0); z < chunk.Width; z++ {
			if want.Biome(x, z) != got.Biome(x, z) {
				t.Fatalf("biome at (%v, %v) = %v, want %v", x, z, got.Biome(x, z), want.Biome(x, z))
			}
			if want.Height(x, z) != got.Height(x, z) {
				t.Fatalf("height at (%v, %v) = %v, want %v", x, z, got.Height(x, z), want.Height(x, z))
			}
			for y := r.Min(); y < r.Max(); y++ {
				if want.Block(x, y, z) != got.Block(x, y, z) {
					t.Fatalf("block at (%v, %v, %v) = %v, want %v", x, y, z, got.Block(x, y, z), want.Block(x, y, z))
				}
			}
		}
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	t.Parallel()
	want := testChunk()
	got, err := decodeChunk(encodeChunk(want))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	assertChunksEqual(t, want, got)
}

func TestDecodeRejectsBadPayloads(t *testing.T) {
	t.Parallel()
	rangePayload := func(minY, maxY int64) []byte {
		buf := []byte{snapshotVersion}
		buf = binary.AppendVarint(buf, minY)
		return binary.AppendVarint(buf, maxY)
	}
	payload := encodeChunk(testChunk())
	for name, data := range map[string][]byte{
		"empty":           nil,
		"unknown version": {0xff, 0x01},
		"truncated":       payload[:len(payload)/2],
		"inverted range":  rangePayload(100, 0),
		"empty range":     rangePayload(64, 64),
		"huge range":      rangePayload(0, 1<<40),
	} {
		if _, err := decodeChunk(data); err == nil {
			t.Errorf("%v payload decoded without error", name)
		}
	}
}

func TestStoreLoadChunk(t *testing.T) {
	t.Parallel()
	db, err := Config{Log: slog.New(slog.NewTextHandler(io.Discard, nil))}.Open(t.TempDir())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	pos := world.ChunkPos{12, -7}
	if _, ok := db.LoadChunk(world.Overworld, pos); ok {
		t.Fatal("empty store returned a chunk")
	}
	want := testChunk()
	if err := db.StoreChunk(world.Overworld, pos, want); err != nil {
		t.Fatalf("store: %v", err)
	}
	got, ok := db.LoadChunk(world.Overworld, pos)
	if !ok {
		t.Fatal("stored chunk not found")
	}
	assertChunksEqual(t, want, got)

	// The same position in another dimension is a distinct key.
	if _, ok := db.LoadChunk(world.Nether, pos); ok {
		t.Fatal("chunk leaked across dimensions")
	}
}

func TestStorePersistsAcrossReopen(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	db, err := Config{Log: log}.Open(dir)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	pos := world.ChunkPos{0, 3}
	want := testChunk()
	if err := db.StoreChunk(world.Overworld, pos, want); err != nil {
		t.Fatalf("store: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	db, err = Config{Log: log, ReadOnly: true}.Open(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	got, ok := db.LoadChunk(world.Overworld, pos)
	if !ok {
		t.Fatal("chunk lost across reopen")
	}
	assertChunksEqual(t, want, got)
	if err := db.StoreChunk(world.Overworld, pos, want); err == nil {
		t.Fatal("read-only store accepted a write")
	}
}
