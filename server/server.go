// Package server assembles the terrain synthesis engine: it wires the biome
// registry, the climate generator, the worker pipeline and the optional chunk
// snapshot store together according to a Config.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/df-mc/terravolt/server/world"
	"github.com/df-mc/terravolt/server/world/biome"
	"github.com/df-mc/terravolt/server/world/chunk"
	"github.com/df-mc/terravolt/server/world/gendb"
	"github.com/df-mc/terravolt/server/world/generator/climgen"
	"github.com/df-mc/terravolt/server/world/generator/climgen/populate"
)

// Engine generates terrain for all enabled dimensions. An Engine is created
// once through Config.New and is safe for concurrent use.
type Engine struct {
	conf    Config
	log     *slog.Logger
	reg     *biome.Registry
	store   *gendb.DB
	metrics *climgen.Metrics

	gens  map[world.Dimension]*climgen.Generator
	pipes map[world.Dimension]*climgen.Pipeline

	closeOnce sync.Once
}

// New creates an Engine using fields of conf. The biome registry is frozen as
// part of engine construction; configuration errors such as a missing default
// biome surface here, before any chunk is requested.
func (conf Config) New() (*Engine, error) {
	if conf.Log == nil {
		conf.Log = slog.Default()
	}
	reg := conf.Registry
	if reg == nil {
		reg = biome.NewRegistry(conf.Log)
		if err := biome.RegisterDefaults(reg); err != nil {
			return nil, fmt.Errorf("create engine: %w", err)
		}
	}
	for _, id := range conf.DisabledBiomes {
		if !reg.Unregister(strings.TrimSpace(id)) {
			conf.Log.Warn("config: disabled biome not registered", "biome", id)
		}
	}
	if conf.DefaultBiome != "" && !reg.SetDefaultBiome(conf.DefaultBiome) {
		return nil, fmt.Errorf("create engine: default biome %q not registered", conf.DefaultBiome)
	}
	if conf.DefaultNetherBiome != "" && !reg.SetDefaultNetherBiome(conf.DefaultNetherBiome) {
		return nil, fmt.Errorf("create engine: default nether biome %q not registered", conf.DefaultNetherBiome)
	}
	reg.Freeze()

	if conf.Placer == nil {
		conf.Placer = populate.NewChunkPlacer(conf.Log)
	}

	e := &Engine{
		conf:    conf,
		log:     conf.Log,
		reg:     reg,
		store:   conf.Store,
		metrics: climgen.NewMetrics(),
		gens:    make(map[world.Dimension]*climgen.Generator),
		pipes:   make(map[world.Dimension]*climgen.Pipeline),
	}
	for _, dim := range e.enabledDimensions() {
		sink := func(dim world.Dimension) func(pos world.ChunkPos, structures []biome.Structure) {
			if conf.StructureSink == nil {
				return nil
			}
			return func(pos world.ChunkPos, structures []biome.Structure) {
				conf.StructureSink(dim, pos, structures)
			}
		}(dim)

		gen, err := climgen.New(climgen.Config{
			Logger:        conf.Log,
			Seed:          conf.Seed,
			Dimension:     dim,
			Registry:      reg,
			Placer:        conf.Placer,
			StructureSink: sink,
			Metrics:       e.metrics,
		})
		if err != nil {
			return nil, fmt.Errorf("create engine: %v generator: %w", dim, err)
		}
		e.gens[dim] = gen
		e.pipes[dim] = climgen.NewPipeline(climgen.PipelineConfig{
			Logger:    conf.Log,
			Generator: gen,
			Workers:   conf.GeneratorWorkers,
			QueueSize: conf.GeneratorQueueSize,
		})
	}
	e.log.Info("engine created", "seed", conf.Seed, "biomes", reg.Count(), "dimensions", len(e.gens))
	return e, nil
}

func (conf Config) enabledDimensions() []world.Dimension {
	dims := []world.Dimension{world.Overworld}
	if !conf.DisableNether {
		dims = append(dims, world.Nether)
	}
	if !conf.DisableEnd {
		dims = append(dims, world.End)
	}
	return dims
}

func (e *Engine) enabledDimensions() []world.Dimension {
	return e.conf.enabledDimensions()
}

// Registry returns the frozen biome registry of the engine.
func (e *Engine) Registry() *biome.Registry {
	return e.reg
}

// Metrics returns the generation counters of the engine.
func (e *Engine) Metrics() *climgen.Metrics {
	return e.metrics
}

// Dimensions returns the dimensions the engine generates terrain for.
func (e *Engine) Dimensions() []world.Dimension {
	return e.enabledDimensions()
}

// BiomeAt returns the biome governing the column at the world position passed
// in the dimension passed.
func (e *Engine) BiomeAt(dim world.Dimension, x, z int64) (biome.Biome, error) {
	gen, ok := e.gens[dim]
	if !ok {
		return nil, fmt.Errorf("biome at: dimension %v not enabled", dim)
	}
	return gen.BiomeAt(x, z), nil
}

// Chunk returns the chunk at the position passed, loading it from the chunk
// snapshot store when one is configured and holds it, or generating and
// storing it otherwise.
func (e *Engine) Chunk(dim world.Dimension, pos world.ChunkPos) (*chunk.Chunk, error) {
	gen, ok := e.gens[dim]
	if !ok {
		return nil, fmt.Errorf("chunk %v: dimension %v not enabled", pos, dim)
	}
	if e.store != nil {
		if c, ok := e.store.LoadChunk(dim, pos); ok {
			return c, nil
		}
	}
	c := chunk.New(dim.Range())
	gen.GenerateChunk(pos, c)
	if e.store != nil {
		if err := e.store.StoreChunk(dim, pos, c); err != nil {
			e.log.Error("store generated chunk: " + err.Error())
		}
	}
	return c, nil
}

// GenerateArea generates all chunks in the rectangle spanned by min and max
// inclusive, fanning the work out over the generation pipeline of the
// dimension. Results are returned in completion order. Chunks already present
// in the snapshot store are served from it without regeneration.
func (e *Engine) GenerateArea(ctx context.Context, dim world.Dimension, min, max world.ChunkPos) ([]climgen.Result, error) {
	pipe, ok := e.pipes[dim]
	if !ok {
		return nil, fmt.Errorf("generate area: dimension %v not enabled", dim)
	}
	if min[0] > max[0] || min[1] > max[1] {
		return nil, fmt.Errorf("generate area: min %v exceeds max %v", min, max)
	}

	var (
		cached    []climgen.Result
		positions []world.ChunkPos
	)
	for x := min[0]; x <= max[0]; x++ {
		for z := min[1]; z <= max[1]; z++ {
			pos := world.ChunkPos{x, z}
			if e.store != nil {
				if c, ok := e.store.LoadChunk(dim, pos); ok {
					cached = append(cached, climgen.Result{Pos: pos, Chunk: c})
					continue
				}
			}
			positions = append(positions, pos)
		}
	}

	results, err := pipe.GenerateBatch(ctx, positions)
	if e.store != nil {
		for _, res := range results {
			if serr := e.store.StoreChunk(dim, res.Pos, res.Chunk); serr != nil {
				e.log.Error("store generated chunk: " + serr.Error())
			}
		}
	}
	return append(cached, results...), err
}

// Close shuts the generation pipelines down and closes the chunk snapshot
// store if one is configured. It is safe to call Close multiple times.
func (e *Engine) Close() error {
	var err error
	e.closeOnce.Do(func() {
		for _, pipe := range e.pipes {
			pipe.Close()
		}
		if e.store != nil {
			err = e.store.Close()
		}
		e.log.Info("engine closed")
	})
	return err
}
