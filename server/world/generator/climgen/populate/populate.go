// Package populate provides the built-in feature placer: it consumes the
// feature descriptors emitted by biome hooks and writes trees, vegetation
// and ore veins into the chunk being generated. Placement is chunk-local;
// canopies reaching over the chunk border are clipped rather than spilling
// into neighbours, keeping every chunk a pure function of its own position.
package populate

import (
	"log/slog"

	"github.com/df-mc/terravolt/server/world"
	"github.com/df-mc/terravolt/server/world/biome"
	"github.com/df-mc/terravolt/server/world/block"
	"github.com/df-mc/terravolt/server/world/chunk"
	"github.com/df-mc/terravolt/server/world/generator/climgen/rand"
)

// ChunkPlacer implements climgen.Placer, handling the feature types the
// default biome set emits. Descriptors it does not recognise are logged at
// debug level and skipped; an external placer may pick those up instead.
type ChunkPlacer struct {
	log *slog.Logger
}

// NewChunkPlacer creates a ChunkPlacer logging through the logger passed. A
// nil logger falls back to slog.Default().
func NewChunkPlacer(log *slog.Logger) ChunkPlacer {
	if log == nil {
		log = slog.Default()
	}
	return ChunkPlacer{log: log}
}

// PlaceFeature writes the feature passed into the chunk.
func (p ChunkPlacer) PlaceFeature(c *chunk.Chunk, pos world.ChunkPos, f biome.Feature, r *rand.Random) {
	lx, lz, ok := localColumn(pos, f.X, f.Z)
	if !ok {
		p.log.Debug("feature outside chunk", "feature", f.ID, "x", f.X, "z", f.Z)
		return
	}
	switch f.Type {
	case "tree":
		p.placeTree(c, lx, lz, f.ID, r)
	case "plant", "flower":
		p.placePlant(c, lx, lz, f.ID)
	case "ore":
		p.placeVein(c, lx, lz, f, r)
	default:
		p.log.Debug("unhandled feature type", "type", f.Type, "feature", f.ID)
	}
}

// placePlant sets a single vegetation block on the column surface. Unknown
// plant IDs and submerged surfaces are skipped.
func (p ChunkPlacer) placePlant(c *chunk.Chunk, lx, lz uint8, id string) {
	b, ok := block.ByName(id)
	if !ok {
		p.log.Debug("unknown plant", "plant", id)
		return
	}
	y := c.Height(lx, lz) + 1
	if y >= c.Range().Max() || y <= biome.SeaLevel && c.Block(lx, y, lz) == block.RuntimeID(block.Water) {
		return
	}
	if c.Block(lx, y, lz) != block.RuntimeID(block.Air) {
		return
	}
	if !solidSurface(c, lx, lz) {
		return
	}
	c.SetBlock(lx, y, lz, block.RuntimeID(b))
}

// solidSurface reports whether the recorded surface block of a column can
// carry vegetation.
func solidSurface(c *chunk.Chunk, lx, lz uint8) bool {
	surface := c.Block(lx, c.Height(lx, lz), lz)
	for _, b := range []block.Block{block.Water, block.Lava, block.Air, block.Ice} {
		if surface == block.RuntimeID(b) {
			return false
		}
	}
	return true
}

// localColumn translates a world column to chunk-local coordinates.
func localColumn(pos world.ChunkPos, x, z int64) (uint8, uint8, bool) {
	lx := x - int64(pos[0])*chunk.Width
	lz := z - int64(pos[1])*chunk.Width
	if lx < 0 || lx >= chunk.Width || lz < 0 || lz >= chunk.Width {
		return 0, 0, false
	}
	return uint8(lx), uint8(lz), true
}

// setIfReplaceable writes a block only over air, water or leaves, so trunks
// and veins do not carve existing terrain features.
func setIfReplaceable(c *chunk.Chunk, lx uint8, y int, lz uint8, rid uint32) {
	if y < c.Range().Min() || y >= c.Range().Max() {
		return
	}
	cur := c.Block(lx, y, lz)
	for _, b := range []block.Block{block.Air, block.Water, block.OakLeaves, block.BirchLeaves, block.JungleLeaves, block.MangroveLeaves} {
		if cur == block.RuntimeID(b) {
			c.SetBlock(lx, y, lz, rid)
			return
		}
	}
}
