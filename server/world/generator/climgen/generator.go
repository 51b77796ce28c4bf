// Package climgen implements the climate-driven chunk generator: it samples
// a seeded noise field into climate samples, asks the biome registry for the
// governing biome of every column and invokes that biome's generation hooks
// to populate chunks. Generation is a pure function of the world seed, the
// dimension and the registry configuration, independent of call order or
// concurrency.
package climgen

import (
	"errors"
	"log/slog"
	"math"

	"github.com/brentp/intintmap"
	"github.com/df-mc/terravolt/server/world"
	"github.com/df-mc/terravolt/server/world/biome"
	"github.com/df-mc/terravolt/server/world/block"
	"github.com/df-mc/terravolt/server/world/chunk"
	"github.com/df-mc/terravolt/server/world/generator/climgen/rand"
)

// Salts separating the random streams of the two emission stages. Changing
// either reshuffles every feature and structure on existing seeds.
const (
	saltFeatures   = 0x7f4a7c15
	saltStructures = 0x2545f491
)

// Placer consumes feature descriptors emitted during generation and performs
// the actual block writes. Implementations must only write within the chunk
// passed and must derive all randomness from the supplied source.
type Placer interface {
	PlaceFeature(c *chunk.Chunk, pos world.ChunkPos, f biome.Feature, r *rand.Random)
}

// Config holds the inputs of a Generator.
type Config struct {
	// Logger is used for configuration errors surfaced during generation.
	// If nil, slog.Default() is used.
	Logger *slog.Logger
	// Seed is the world seed all noise and randomness derives from.
	Seed int64
	// Dimension restricts biome selection and sets the chunk height range.
	Dimension world.Dimension
	// Registry is the biome registry queried per column. It must hold a
	// default biome; New fails fast otherwise.
	Registry *biome.Registry
	// Field is the noise field sampled by climate and generation hooks. If
	// nil, the standard field seeded with Seed is used.
	Field biome.NoiseField
	// Placer handles feature placement. If nil, features are counted but not
	// placed.
	Placer Placer
	// StructureSink receives the structure descriptors of each generated
	// chunk, to be consumed by an external structure generator. May be nil.
	StructureSink func(pos world.ChunkPos, structures []biome.Structure)
	// Metrics receives per-chunk counters. May be nil.
	Metrics *Metrics
}

// Generator generates chunks column by column. It holds no mutable state
// shared between generation calls and is safe for concurrent use.
type Generator struct {
	log     *slog.Logger
	seed    int64
	dim     world.Dimension
	reg     *biome.Registry
	field   biome.NoiseField
	sampler *ClimateSampler
	placer  Placer
	sink    func(pos world.ChunkPos, structures []biome.Structure)
	metrics *Metrics

	bedrockRID uint32
}

// New creates a Generator from the config passed. It returns an error if the
// registry is missing or holds no default biome for the dimension: without a
// fallback, generation could not determine a biome for unmatched columns, a
// configuration error that must surface before any chunk is requested.
func New(cfg Config) (*Generator, error) {
	if cfg.Registry == nil {
		return nil, errors.New("climgen: config must carry a biome registry")
	}
	if cfg.Dimension == nil {
		cfg.Dimension = world.Overworld
	}
	if _, ok := cfg.Registry.DefaultBiome(); !ok {
		return nil, errors.New("climgen: registry has no default biome configured")
	}
	if cfg.Dimension == world.Nether {
		if _, ok := cfg.Registry.DefaultNetherBiome(); !ok {
			return nil, errors.New("climgen: registry has no default nether biome configured")
		}
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Field == nil {
		cfg.Field = NewField(cfg.Seed)
	}
	return &Generator{
		log:        cfg.Logger,
		seed:       cfg.Seed,
		dim:        cfg.Dimension,
		reg:        cfg.Registry,
		field:      cfg.Field,
		sampler:    NewClimateSampler(cfg.Field, cfg.Dimension),
		placer:     cfg.Placer,
		sink:       cfg.StructureSink,
		metrics:    cfg.Metrics,
		bedrockRID: block.RuntimeID(block.Bedrock),
	}, nil
}

// BiomeAt returns the biome governing the column at the world position
// passed. It applies the same border jitter as chunk generation, so results
// agree exactly with generated terrain.
func (g *Generator) BiomeAt(x, z int64) biome.Biome {
	sx, sz := g.jitter(x, z)
	b, ok := g.reg.BestForClimateIn(g.sampler.Sample(sx, sz), g.dim)
	if !ok {
		// Unreachable when the registry passed validation in New and was
		// frozen afterwards; mutation during generation is a misuse.
		g.log.Error("biome selection failed: no default biome", "x", x, "z", z)
		return g.reg.All()[0]
	}
	return b
}

// GenerateChunk generates the chunk at the position passed into c. The chunk
// must span the dimension's full height range.
func (g *Generator) GenerateChunk(pos world.ChunkPos, c *chunk.Chunk) {
	var (
		r         = c.Range()
		snapshot  = g.reg.All()
		snapIndex = make(map[string]int64, len(snapshot))
		// Border jitter makes neighbouring columns resolve to overlapping
		// jittered positions, so selections are cached per generation call.
		cache = intintmap.New(chunk.Width*chunk.Width*2, 0.6)
		cols  [chunk.Width][chunk.Width]biome.Biome
	)
	for i, b := range snapshot {
		snapIndex[b.ID()] = int64(i)
	}

	for x := int64(0); x < chunk.Width; x++ {
		for z := int64(0); z < chunk.Width; z++ {
			wx, wz := int64(pos[0])*chunk.Width+x, int64(pos[1])*chunk.Width+z

			b, idx := g.selectBiome(wx, wz, snapshot, snapIndex, cache)
			cols[x][z] = b
			c.SetBiome(uint8(x), uint8(z), uint32(idx))

			height := b.Height(wx, wz, g.field)
			surface := int(math.Floor(height))
			if surface < r.Min()+1 {
				surface = r.Min() + 1
			} else if surface >= r.Max() {
				surface = r.Max() - 1
			}
			c.SetHeight(uint8(x), uint8(z), surface)

			for y := r.Min(); y < r.Max(); y++ {
				if y == r.Min() {
					c.SetBlock(uint8(x), y, uint8(z), g.bedrockRID)
					continue
				}
				bl := b.BlockAt(wx, int64(y), wz, float64(surface), g.field)
				if bl != block.Air {
					c.SetBlock(uint8(x), y, uint8(z), block.RuntimeID(bl))
				}
			}
		}
	}
	g.metrics.AddColumns(pos, chunk.Width*chunk.Width)

	g.populate(pos, c, cols)
}

// populate runs the feature and structure emission stage over the generated
// columns. Both stages draw from sources keyed purely to the world seed, the
// column and a stage salt, never from a shared generator, so regenerating
// the chunk reproduces identical placements.
func (g *Generator) populate(pos world.ChunkPos, c *chunk.Chunk, cols [chunk.Width][chunk.Width]biome.Biome) {
	var structures []biome.Structure
	for x := int64(0); x < chunk.Width; x++ {
		for z := int64(0); z < chunk.Width; z++ {
			wx, wz := int64(pos[0])*chunk.Width+x, int64(pos[1])*chunk.Width+z
			b := cols[x][z]

			features := b.FeaturesAt(wx, wz, rand.Source(g.seed, wx, wz, saltFeatures), g.field)
			if g.placer != nil {
				for _, f := range features {
					g.placer.PlaceFeature(c, pos, f, rand.At(g.seed, wx, wz, saltFeatures+1))
				}
			}
			g.metrics.AddFeatures(pos, uint64(len(features)))

			structures = append(structures, b.StructuresAt(wx, wz, rand.Source(g.seed, wx, wz, saltStructures))...)
		}
	}
	g.metrics.AddStructures(pos, uint64(len(structures)))
	if g.sink != nil && len(structures) > 0 {
		g.sink(pos, structures)
	}
}

// selectBiome resolves the biome of a column, caching selections by jittered
// position for the duration of one generation call.
func (g *Generator) selectBiome(x, z int64, snapshot []biome.Biome, snapIndex map[string]int64, cache *intintmap.Map) (biome.Biome, int64) {
	sx, sz := g.jitter(x, z)
	key := sx<<32 | (sz & 0xffffffff)
	if idx, ok := cache.Get(key); ok {
		return snapshot[idx], idx
	}
	b, ok := g.reg.BestForClimateIn(g.sampler.Sample(sx, sz), g.dim)
	if !ok {
		g.log.Error("biome selection failed: no default biome", "x", x, "z", z)
		b = snapshot[0]
	}
	idx := snapIndex[b.ID()]
	cache.Put(key, idx)
	return b, idx
}

// jitter perturbs a column position by up to one block per axis using a
// position hash, roughening the straight biome borders the low-frequency
// climate channels would otherwise produce.
func (g *Generator) jitter(x, z int64) (int64, int64) {
	hash := x*2345803 ^ z*9236449 ^ g.seed
	hash *= hash + 223
	xo := hash >> 20 & 3
	zo := hash >> 22 & 3
	if xo == 3 {
		xo = 1
	}
	if zo == 3 {
		zo = 1
	}
	return x + xo - 1, z + zo - 1
}
