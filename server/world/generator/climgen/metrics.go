package climgen

import (
	"sync"

	"github.com/df-mc/terravolt/server/world"
)

// Metrics tracks per-chunk generation counters for observability.
type Metrics struct {
	mu sync.Mutex

	columns    map[world.ChunkPos]uint64
	features   map[world.ChunkPos]uint64
	structures map[world.ChunkPos]uint64
}

// NewMetrics creates an empty metrics registry.
func NewMetrics() *Metrics {
	return &Metrics{
		columns:    make(map[world.ChunkPos]uint64),
		features:   make(map[world.ChunkPos]uint64),
		structures: make(map[world.ChunkPos]uint64),
	}
}

// AddColumns increments the generated column counter for a chunk.
func (m *Metrics) AddColumns(pos world.ChunkPos, value uint64) {
	if m == nil || value == 0 {
		return
	}
	m.mu.Lock()
	m.columns[pos] += value
	m.mu.Unlock()
}

// AddFeatures increments the emitted feature counter for a chunk.
func (m *Metrics) AddFeatures(pos world.ChunkPos, value uint64) {
	if m == nil || value == 0 {
		return
	}
	m.mu.Lock()
	m.features[pos] += value
	m.mu.Unlock()
}

// AddStructures increments the emitted structure counter for a chunk.
func (m *Metrics) AddStructures(pos world.ChunkPos, value uint64) {
	if m == nil || value == 0 {
		return
	}
	m.mu.Lock()
	m.structures[pos] += value
	m.mu.Unlock()
}

// ChunkCounters is a snapshot of the counters of a single chunk.
type ChunkCounters struct {
	Columns    uint64
	Features   uint64
	Structures uint64
}

// Chunk returns a snapshot of the counters recorded for the chunk passed.
func (m *Metrics) Chunk(pos world.ChunkPos) ChunkCounters {
	if m == nil {
		return ChunkCounters{}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return ChunkCounters{
		Columns:    m.columns[pos],
		Features:   m.features[pos],
		Structures: m.structures[pos],
	}
}
