package gendb

import (
	"encoding/binary"
	"fmt"

	"github.com/df-mc/terravolt/server/world"
	"github.com/df-mc/terravolt/server/world/chunk"
)

// snapshotVersion is bumped whenever the chunk payload layout changes.
// Payloads with an unknown version are treated as a cache miss and
// regenerated rather than failing the load.
const snapshotVersion = 1

// maxSnapshotHeight bounds the height range accepted from stored payloads. A
// corrupt range must yield a decode error, never a huge allocation.
const maxSnapshotHeight = 4096

// encodeChunk serialises a chunk into the uncompressed snapshot payload:
// version, height range, per-column biome indices and heights, then the
// block grid run-length encoded column by column.
func encodeChunk(c *chunk.Chunk) []byte {
	r := c.Range()
	buf := make([]byte, 0, 4096)
	buf = append(buf, snapshotVersion)
	buf = binary.AppendVarint(buf, int64(r.Min()))
	buf = binary.AppendVarint(buf, int64(r.Max()))
	for x := uint8(0); x < chunk.Width; x++ {
		for z := uint8(0); z < chunk.Width; z++ {
			buf = binary.AppendUvarint(buf, uint64(c.Biome(x, z)))
			buf = binary.AppendVarint(buf, int64(c.Height(x, z)))
		}
	}
	for x := uint8(0); x < chunk.Width; x++ {
		for z := uint8(0); z < chunk.Width; z++ {
			run, current := uint64(0), c.Block(x, r.Min(), z)
			for y := r.Min(); y < r.Max(); y++ {
				if rid := c.Block(x, y, z); rid != current {
					buf = binary.AppendUvarint(buf, run)
					buf = binary.AppendUvarint(buf, uint64(current))
					run, current = 0, rid
				}
				run++
			}
			buf = binary.AppendUvarint(buf, run)
			buf = binary.AppendUvarint(buf, uint64(current))
			// Column terminator: a zero-length run.
			buf = binary.AppendUvarint(buf, 0)
		}
	}
	return buf
}

// decodeChunk rebuilds a chunk from a snapshot payload.
func decodeChunk(payload []byte) (*chunk.Chunk, error) {
	if len(payload) == 0 || payload[0] != snapshotVersion {
		return nil, fmt.Errorf("decode chunk: unsupported snapshot version")
	}
	buf := payload[1:]

	minY, n := binary.Varint(buf)
	if n <= 0 {
		return nil, fmt.Errorf("decode chunk: truncated range")
	}
	buf = buf[n:]
	maxY, n := binary.Varint(buf)
	if n <= 0 {
		return nil, fmt.Errorf("decode chunk: truncated range")
	}
	buf = buf[n:]
	if minY >= maxY || maxY-minY > maxSnapshotHeight {
		return nil, fmt.Errorf("decode chunk: invalid height range [%v, %v]", minY, maxY)
	}

	c := chunk.New(world.Range{int(minY), int(maxY)})
	for x := uint8(0); x < chunk.Width; x++ {
		for z := uint8(0); z < chunk.Width; z++ {
			b, n := binary.Uvarint(buf)
			if n <= 0 {
				return nil, fmt.Errorf("decode chunk: truncated biome data")
			}
			buf = buf[n:]
			h, n := binary.Varint(buf)
			if n <= 0 {
				return nil, fmt.Errorf("decode chunk: truncated height data")
			}
			buf = buf[n:]
			c.SetBiome(x, z, uint32(b))
			c.SetHeight(x, z, int(h))
		}
	}
	for x := uint8(0); x < chunk.Width; x++ {
		for z := uint8(0); z < chunk.Width; z++ {
			y := int(minY)
			for {
				run, n := binary.Uvarint(buf)
				if n <= 0 {
					return nil, fmt.Errorf("decode chunk: truncated block data")
				}
				buf = buf[n:]
				if run == 0 {
					break
				}
				rid, n := binary.Uvarint(buf)
				if n <= 0 {
					return nil, fmt.Errorf("decode chunk: truncated block data")
				}
				buf = buf[n:]
				for i := uint64(0); i < run; i++ {
					c.SetBlock(x, y, z, uint32(rid))
					y++
				}
			}
		}
	}
	return c, nil
}
