// Package chunk implements the dense block storage written to by the terrain
// synthesis engine. A chunk covers a 16x16 column area over the full height
// range of its dimension.
package chunk

import (
	"github.com/df-mc/terravolt/server/world"
	"github.com/df-mc/terravolt/server/world/block"
)

// Width is the horizontal size of a chunk along both the X and Z axis.
const Width = 16

// Chunk stores the blocks, per-column biome indices and the height map of a
// 16x16 column area. Chunks are not safe for concurrent use; each generation
// call owns the chunk it populates exclusively.
type Chunk struct {
	r       world.Range
	blocks  []uint32
	biomes  [Width * Width]uint32
	heights [Width * Width]int16
}

// New creates a Chunk spanning the height range passed. All blocks are
// initialised to air.
func New(r world.Range) *Chunk {
	return &Chunk{r: r, blocks: make([]uint32, Width*Width*r.Height())}
}

// Range returns the height range the chunk spans.
func (c *Chunk) Range() world.Range {
	return c.r
}

// Block returns the runtime ID of the block at a position local to the chunk.
// Y coordinates outside the chunk's range return the runtime ID of air.
func (c *Chunk) Block(x uint8, y int, z uint8) uint32 {
	if y < c.r.Min() || y >= c.r.Max() {
		return block.RuntimeID(block.Air)
	}
	return c.blocks[c.index(x, y, z)]
}

// SetBlock sets the runtime ID of the block at a position local to the chunk.
// Y coordinates outside the chunk's range are ignored.
func (c *Chunk) SetBlock(x uint8, y int, z uint8, rid uint32) {
	if y < c.r.Min() || y >= c.r.Max() {
		return
	}
	c.blocks[c.index(x, y, z)] = rid
}

// Biome returns the biome index of the column at the local position passed.
func (c *Chunk) Biome(x, z uint8) uint32 {
	return c.biomes[uint16(x)<<4|uint16(z)]
}

// SetBiome sets the biome index of the column at the local position passed.
// The index refers to the registration order of the biome registry used to
// generate the chunk.
func (c *Chunk) SetBiome(x, z uint8, biome uint32) {
	c.biomes[uint16(x)<<4|uint16(z)] = biome
}

// Height returns the Y coordinate of the highest non-air block of the column
// at the local position passed, as recorded by SetHeight.
func (c *Chunk) Height(x, z uint8) int {
	return int(c.heights[uint16(x)<<4|uint16(z)])
}

// SetHeight records the surface height of the column at the local position.
func (c *Chunk) SetHeight(x, z uint8, y int) {
	c.heights[uint16(x)<<4|uint16(z)] = int16(y)
}

func (c *Chunk) index(x uint8, y int, z uint8) int {
	return (int(x)<<4|int(z))*c.r.Height() + (y - c.r.Min())
}
