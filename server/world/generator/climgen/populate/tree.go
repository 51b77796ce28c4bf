package populate

import (
	"github.com/df-mc/terravolt/server/world/block"
	"github.com/df-mc/terravolt/server/world/chunk"
	"github.com/df-mc/terravolt/server/world/generator/climgen/rand"
)

// treeShape bundles the materials and size bounds of one tree variant.
type treeShape struct {
	log, leaves          block.Block
	minHeight, maxHeight int32
	radius               int
}

var treeShapes = map[string]treeShape{
	"oak":      {log: block.OakLog, leaves: block.OakLeaves, minHeight: 4, maxHeight: 6, radius: 2},
	"birch":    {log: block.BirchLog, leaves: block.BirchLeaves, minHeight: 5, maxHeight: 7, radius: 2},
	"jungle":   {log: block.JungleLog, leaves: block.JungleLeaves, minHeight: 7, maxHeight: 11, radius: 3},
	"mangrove": {log: block.MangroveLog, leaves: block.MangroveLeaves, minHeight: 5, maxHeight: 8, radius: 3},
}

// placeTree grows the tree variant named by id on the column surface. Fungi,
// cacti and bamboo use dedicated shapes; everything else resolves through
// the shape table.
func (p ChunkPlacer) placeTree(c *chunk.Chunk, lx, lz uint8, id string, r *rand.Random) {
	if !solidSurface(c, lx, lz) {
		return
	}
	y := c.Height(lx, lz) + 1
	switch id {
	case "cactus":
		p.placeColumn(c, lx, y, lz, block.Cactus, 1+int(r.Int31n(3)))
	case "bamboo":
		p.placeColumn(c, lx, y, lz, block.Bamboo, 4+int(r.Int31n(8)))
	case "crimson_fungus":
		p.placeFungus(c, lx, y, lz, block.CrimsonStem, block.NetherWartBlock, r)
	case "warped_fungus":
		p.placeFungus(c, lx, y, lz, block.WarpedStem, block.WarpedWartBlock, r)
	default:
		shape, ok := treeShapes[id]
		if !ok {
			p.log.Debug("unknown tree variant", "tree", id)
			return
		}
		p.placeShapedTree(c, lx, y, lz, shape, r)
	}
}

// placeColumn stacks a single-block column, as used by cacti and bamboo.
func (p ChunkPlacer) placeColumn(c *chunk.Chunk, lx uint8, y int, lz uint8, b block.Block, height int) {
	rid := block.RuntimeID(b)
	air := block.RuntimeID(block.Air)
	for i := 0; i < height; i++ {
		if y+i >= c.Range().Max() || c.Block(lx, y+i, lz) != air {
			return
		}
		c.SetBlock(lx, y+i, lz, rid)
	}
}

// placeShapedTree builds a trunk with a layered leaf canopy. The canopy is
// clipped at the chunk border; corner leaves are thinned by one random draw
// per layer to round the silhouette.
func (p ChunkPlacer) placeShapedTree(c *chunk.Chunk, lx uint8, y int, lz uint8, shape treeShape, r *rand.Random) {
	height := int(shape.minHeight + r.Int31n(shape.maxHeight-shape.minHeight+1))
	if y+height+1 >= c.Range().Max() {
		return
	}

	logRID := block.RuntimeID(shape.log)
	leafRID := block.RuntimeID(shape.leaves)

	// Canopy first, trunk second: the trunk overwrites the leaves it passes
	// through.
	top := y + height
	for layer := 0; layer < 3; layer++ {
		ly := top - layer + 1
		radius := shape.radius
		if layer == 0 {
			radius = 1
		}
		thin := r.Int31n(2) == 0
		for dx := -radius; dx <= radius; dx++ {
			for dz := -radius; dz <= radius; dz++ {
				if dx*dx+dz*dz > radius*radius+1 {
					continue
				}
				if thin && dx*dx == radius*radius && dz*dz == radius*radius {
					continue
				}
				nx, nz := int(lx)+dx, int(lz)+dz
				if nx < 0 || nx >= chunk.Width || nz < 0 || nz >= chunk.Width {
					continue
				}
				if c.Block(uint8(nx), ly, uint8(nz)) == block.RuntimeID(block.Air) {
					c.SetBlock(uint8(nx), ly, uint8(nz), leafRID)
				}
			}
		}
	}
	for i := 0; i < height; i++ {
		setIfReplaceable(c, lx, y+i, lz, logRID)
	}
	if top+1 < c.Range().Max() && c.Block(lx, top+1, lz) == block.RuntimeID(block.Air) {
		c.SetBlock(lx, top+1, lz, leafRID)
	}
}

// placeFungus builds the nether fungus shape: a stem capped with a wart
// block blob and a few shroomlights.
func (p ChunkPlacer) placeFungus(c *chunk.Chunk, lx uint8, y int, lz uint8, stem, wart block.Block, r *rand.Random) {
	height := 4 + int(r.Int31n(5))
	if y+height+2 >= c.Range().Max() {
		return
	}
	stemRID := block.RuntimeID(stem)
	for i := 0; i < height; i++ {
		setIfReplaceable(c, lx, y+i, lz, stemRID)
	}
	wartRID := block.RuntimeID(wart)
	lightRID := block.RuntimeID(block.Shroomlight)
	top := y + height
	for dx := -1; dx <= 1; dx++ {
		for dz := -1; dz <= 1; dz++ {
			nx, nz := int(lx)+dx, int(lz)+dz
			if nx < 0 || nx >= chunk.Width || nz < 0 || nz >= chunk.Width {
				continue
			}
			rid := wartRID
			if dx != 0 && dz != 0 && r.Int31n(6) == 0 {
				rid = lightRID
			}
			setIfReplaceable(c, uint8(nx), top, uint8(nz), rid)
		}
	}
	setIfReplaceable(c, lx, top+1, lz, wartRID)
}
