package climgen

import (
	"context"
	"log/slog"
	"runtime"
	"sync"

	"github.com/df-mc/terravolt/server/world"
	"github.com/df-mc/terravolt/server/world/chunk"
	"github.com/google/uuid"
)

// PipelineConfig holds the tunable parameters of a generation Pipeline. The
// zero value is usable; sensible defaults are applied for missing fields.
type PipelineConfig struct {
	// Logger is used for batch progress reporting. If nil, slog.Default() is
	// used.
	Logger *slog.Logger
	// Generator produces the chunks. Required.
	Generator *Generator
	// Workers controls the number of goroutines generating chunks. If 0 or
	// lower, the worker count is derived from the host's available CPUs.
	Workers int
	// QueueSize limits how many chunk jobs may wait for a worker. If 0 or
	// lower, a queue proportional to the worker count is chosen.
	QueueSize int
}

func (c PipelineConfig) withDefaults() PipelineConfig {
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	if c.Workers <= 0 {
		c.Workers = runtime.GOMAXPROCS(0)
	}
	if c.QueueSize <= 0 {
		c.QueueSize = c.Workers * 32
	}
	return c
}

// Result is the outcome of one chunk generation job.
type Result struct {
	Pos   world.ChunkPos
	Chunk *chunk.Chunk
}

type job struct {
	pos world.ChunkPos
	out chan<- Result
}

// Pipeline fans chunk generation out over a fixed pool of workers. Because
// generation is a pure function of seed and position, jobs may complete in
// any order without affecting the produced terrain.
type Pipeline struct {
	log *slog.Logger
	gen *Generator

	jobs chan job

	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewPipeline creates a Pipeline and starts its workers.
func NewPipeline(cfg PipelineConfig) *Pipeline {
	if cfg.Generator == nil {
		panic("climgen: pipeline requires a generator")
	}
	cfg = cfg.withDefaults()
	p := &Pipeline{
		log:  cfg.Logger,
		gen:  cfg.Generator,
		jobs: make(chan job, cfg.QueueSize),
	}
	for i := 0; i < cfg.Workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
	return p
}

func (p *Pipeline) worker() {
	defer p.wg.Done()
	for j := range p.jobs {
		c := chunk.New(p.gen.dim.Range())
		p.gen.GenerateChunk(j.pos, c)
		j.out <- Result{Pos: j.pos, Chunk: c}
	}
}

// GenerateBatch generates all chunk positions passed and returns the results
// in completion order. Each batch is tagged with a fresh ID in the logs. If
// the context is cancelled, pending positions are skipped and the results
// completed so far are returned along with the context error; chunks already
// handed out remain fully valid, as generation never mutates shared state.
func (p *Pipeline) GenerateBatch(ctx context.Context, positions []world.ChunkPos) ([]Result, error) {
	batch := uuid.New().String()
	p.log.Debug("generation batch started", "batch", batch, "chunks", len(positions))

	out := make(chan Result, len(positions))
	queued := 0
	var err error
queue:
	for _, pos := range positions {
		select {
		case <-ctx.Done():
			err = ctx.Err()
			break queue
		case p.jobs <- job{pos: pos, out: out}:
			queued++
		}
	}

	results := make([]Result, 0, queued)
	for i := 0; i < queued; i++ {
		results = append(results, <-out)
	}
	if err != nil {
		p.log.Debug("generation batch cancelled", "batch", batch, "generated", len(results))
		return results, err
	}
	p.log.Debug("generation batch finished", "batch", batch, "generated", len(results))
	return results, nil
}

// Close stops the workers after all queued jobs have been handed out. It is
// safe to call Close multiple times.
func (p *Pipeline) Close() {
	p.closeOnce.Do(func() {
		close(p.jobs)
		p.wg.Wait()
	})
}
