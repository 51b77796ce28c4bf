package climgen

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/df-mc/terravolt/server/world"
)

func TestPipelineGenerateBatch(t *testing.T) {
	t.Parallel()
	p := NewPipeline(PipelineConfig{Logger: discardLogger(), Generator: testGenerator(t, world.Overworld), Workers: 2})
	t.Cleanup(p.Close)

	var positions []world.ChunkPos
	for x := int32(0); x < 3; x++ {
		for z := int32(0); z < 3; z++ {
			positions = append(positions, world.ChunkPos{x, z})
		}
	}
	results, err := p.GenerateBatch(context.Background(), positions)
	if err != nil {
		t.Fatalf("GenerateBatch: %v", err)
	}
	if len(results) != len(positions) {
		t.Fatalf("GenerateBatch returned %v results, want %v", len(results), len(positions))
	}
	seen := make(map[world.ChunkPos]bool)
	for _, res := range results {
		if res.Chunk == nil {
			t.Fatalf("result %v carries no chunk", res.Pos)
		}
		if seen[res.Pos] {
			t.Fatalf("position %v generated twice", res.Pos)
		}
		seen[res.Pos] = true
	}
}

func TestPipelineBatchDeterminism(t *testing.T) {
	t.Parallel()
	p := NewPipeline(PipelineConfig{Logger: discardLogger(), Generator: testGenerator(t, world.Overworld), Workers: 4})
	t.Cleanup(p.Close)

	positions := []world.ChunkPos{{0, 0}, {1, 0}, {0, 1}}
	first, err := p.GenerateBatch(context.Background(), positions)
	if err != nil {
		t.Fatalf("GenerateBatch: %v", err)
	}
	second, err := p.GenerateBatch(context.Background(), positions)
	if err != nil {
		t.Fatalf("GenerateBatch: %v", err)
	}
	byPos := make(map[world.ChunkPos]Result, len(first))
	for _, res := range first {
		byPos[res.Pos] = res
	}
	for _, res := range second {
		if !chunksEqual(byPos[res.Pos].Chunk, res.Chunk) {
			t.Fatalf("chunk %v differs between batches", res.Pos)
		}
	}
}

func TestPipelineCancellation(t *testing.T) {
	t.Parallel()
	// A single slow worker with a single-slot queue guarantees queueing blocks
	// long before the batch completes, so the cancel lands mid-queue.
	p := NewPipeline(PipelineConfig{Logger: discardLogger(), Generator: testGenerator(t, world.Overworld), Workers: 1, QueueSize: 1})
	t.Cleanup(p.Close)

	positions := make([]world.ChunkPos, 1000)
	for i := range positions {
		positions[i] = world.ChunkPos{int32(i), 0}
	}
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()
	results, err := p.GenerateBatch(ctx, positions)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("GenerateBatch error = %v, want context.Canceled", err)
	}
	if len(results) >= len(positions) {
		t.Fatal("cancelled batch completed fully")
	}
	for _, res := range results {
		if res.Chunk == nil {
			t.Fatalf("partial result %v carries no chunk", res.Pos)
		}
	}
}

func TestPipelineCloseIdempotent(t *testing.T) {
	t.Parallel()
	p := NewPipeline(PipelineConfig{Logger: discardLogger(), Generator: testGenerator(t, world.Overworld)})
	p.Close()
	p.Close()
}
