package populate

import (
	"math"

	"github.com/df-mc/terravolt/server/world/biome"
	"github.com/df-mc/terravolt/server/world/block"
	"github.com/df-mc/terravolt/server/world/chunk"
	"github.com/df-mc/terravolt/server/world/generator/climgen/rand"
	"github.com/go-gl/mathgl/mgl64"
)

// placeVein scatters an ore cluster along a randomly angled line segment
// through the column, replacing only stone-like blocks. The segment walk
// mirrors the classic vein algorithm: overlapping spheres of shrinking
// radius strung between the two segment ends.
func (p ChunkPlacer) placeVein(c *chunk.Chunk, lx, lz uint8, f biome.Feature, r *rand.Random) {
	ore, ok := block.ByName(f.ID + "_ore")
	if !ok {
		p.log.Debug("unknown ore", "ore", f.ID)
		return
	}
	size := 6.0
	if v, ok := f.Meta["size"]; ok && v > 0 {
		size = v
	}

	surface := c.Height(lx, lz)
	depth := 4 + int(r.Int31n(int32(max(surface-c.Range().Min()-4, 1))))
	centre := mgl64.Vec3{float64(lx), float64(surface - depth), float64(lz)}

	angle := r.Float64() * math.Pi
	offset := mgl64.Vec2{math.Cos(angle), math.Sin(angle)}.Mul(size / 8)
	start := mgl64.Vec3{centre.X() + offset.X(), centre.Y() + float64(r.Int31n(3)) - 1, centre.Z() + offset.Y()}
	end := mgl64.Vec3{centre.X() - offset.X(), centre.Y() + float64(r.Int31n(3)) - 1, centre.Z() - offset.Y()}

	oreRID := block.RuntimeID(ore)
	for i := 0.0; i <= size; i++ {
		seed := start.Add(end.Sub(start).Mul(i / size))
		radius := ((math.Sin(i*(math.Pi/size))+1)*r.Float64()*size/16 + 1) / 2

		for xx := int(seed.X() - radius); xx <= int(seed.X()+radius); xx++ {
			for yy := int(seed.Y() - radius); yy <= int(seed.Y()+radius); yy++ {
				for zz := int(seed.Z() - radius); zz <= int(seed.Z()+radius); zz++ {
					if xx < 0 || xx >= chunk.Width || zz < 0 || zz >= chunk.Width {
						continue
					}
					d := mgl64.Vec3{float64(xx) + 0.5, float64(yy) + 0.5, float64(zz) + 0.5}.Sub(seed)
					if d.Dot(d) >= radius*radius {
						continue
					}
					if replaceableByOre(c.Block(uint8(xx), yy, uint8(zz))) {
						c.SetBlock(uint8(xx), yy, uint8(zz), oreRID)
					}
				}
			}
		}
	}
}

func replaceableByOre(rid uint32) bool {
	for _, b := range []block.Block{block.Stone, block.Deepslate, block.Netherrack, block.DripstoneBlock} {
		if rid == block.RuntimeID(b) {
			return true
		}
	}
	return false
}
