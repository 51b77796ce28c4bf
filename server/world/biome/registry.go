package biome

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/df-mc/terravolt/server/world"
)

// Registry owns all registered biome definitions and implements the selection
// policy matching climate samples to biomes. A Registry is constructed once at
// server start, seeded with the default biome set and mutated only during
// startup or configuration reload. Once Freeze is called, the registry is
// read-only and may be shared across any number of concurrent chunk
// generation calls without locking concerns.
type Registry struct {
	log *slog.Logger

	mu     sync.RWMutex
	frozen bool

	biomes map[string]Biome
	// order mirrors registration order. Selection iterates it so that exact
	// fitness ties resolve to the biome registered first.
	order []Biome

	defaultBiome       Biome
	defaultNetherBiome Biome
}

// NewRegistry creates an empty Registry logging through the logger passed. A
// nil logger falls back to slog.Default().
func NewRegistry(log *slog.Logger) *Registry {
	if log == nil {
		log = slog.Default()
	}
	return &Registry{log: log, biomes: make(map[string]Biome)}
}

// Register adds a biome to the registry. It returns false and logs if the
// biome is nil, has an empty ID, the ID is already taken or the registry has
// been frozen. The first successfully registered non-nether, non-end biome
// becomes the default biome if none is set yet; likewise the first nether
// biome becomes the default nether biome. An existing default is never
// reassigned by Register.
func (r *Registry) Register(b Biome) bool {
	if b == nil || b.ID() == "" {
		r.log.Error("register biome: nil biome or empty id")
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.frozen {
		r.log.Error("register biome: registry frozen", "biome", b.ID())
		return false
	}
	if _, ok := r.biomes[b.ID()]; ok {
		r.log.Error("register biome: duplicate id", "biome", b.ID())
		return false
	}
	r.biomes[b.ID()] = b
	r.order = append(r.order, b)
	if r.defaultBiome == nil && !b.NetherBiome() && !b.EndBiome() {
		r.defaultBiome = b
	}
	if r.defaultNetherBiome == nil && b.NetherBiome() {
		r.defaultNetherBiome = b
	}
	return true
}

// Unregister removes the biome with the ID passed. It returns false if no
// such biome is registered or the registry has been frozen. If the removed
// biome is the current default, the default is reassigned to the first
// remaining biome in registration order, or cleared if none remain, so that
// the default pointer never dangles.
func (r *Registry) Unregister(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.frozen {
		r.log.Error("unregister biome: registry frozen", "biome", id)
		return false
	}
	if _, ok := r.biomes[id]; !ok {
		return false
	}
	delete(r.biomes, id)
	for i, o := range r.order {
		if o.ID() == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	// Defaults are matched by ID: biome values hold slices, so comparing the
	// interface values directly would panic.
	if r.defaultBiome != nil && r.defaultBiome.ID() == id {
		r.defaultBiome = nil
		if len(r.order) > 0 {
			r.defaultBiome = r.order[0]
		}
	}
	if r.defaultNetherBiome != nil && r.defaultNetherBiome.ID() == id {
		r.defaultNetherBiome = nil
		for _, o := range r.order {
			if o.NetherBiome() {
				r.defaultNetherBiome = o
				break
			}
		}
	}
	return true
}

// Freeze marks the end of the registration phase. Any mutation after Freeze
// fails with a log. Freezing is optional but recommended before handing the
// registry to concurrent generation workers.
func (r *Registry) Freeze() {
	r.mu.Lock()
	r.frozen = true
	r.mu.Unlock()
}

// Biome looks up a biome by its exact ID.
func (r *Registry) Biome(id string) (Biome, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.biomes[id]
	return b, ok
}

// All returns a snapshot copy of all registered biomes in registration order.
// The returned slice is safe to hold across registry mutations.
func (r *Registry) All() []Biome {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Biome, len(r.order))
	copy(out, r.order)
	return out
}

// Count returns the number of registered biomes.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// DefaultBiome returns the current default biome. The second return value is
// false if no default is configured, which callers must treat as a fatal
// configuration error before serving generation requests.
func (r *Registry) DefaultBiome() (Biome, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.defaultBiome, r.defaultBiome != nil
}

// DefaultNetherBiome returns the current default nether biome.
func (r *Registry) DefaultNetherBiome() (Biome, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.defaultNetherBiome, r.defaultNetherBiome != nil
}

// SetDefaultBiome makes the biome with the ID passed the default biome
// returned when no biome matches a climate sample. It returns false if the ID
// is not registered.
func (r *Registry) SetDefaultBiome(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.biomes[id]
	if !ok {
		r.log.Error("set default biome: unknown id", "biome", id)
		return false
	}
	r.defaultBiome = b
	return true
}

// SetDefaultNetherBiome makes the biome with the ID passed the default for
// nether selection. It returns false if the ID is not registered.
func (r *Registry) SetDefaultNetherBiome(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.biomes[id]
	if !ok {
		r.log.Error("set default nether biome: unknown id", "biome", id)
		return false
	}
	r.defaultNetherBiome = b
	return true
}

// ForClimate returns all biomes valid for the climate sample passed, in
// registration order.
func (r *Registry) ForClimate(s ClimateSample) []Biome {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Biome
	for _, b := range r.order {
		if b.ValidFor(s) {
			out = append(out, b)
		}
	}
	return out
}

// BestForClimate returns the valid biome with the highest fitness score for
// the sample. On exact score ties the biome registered earlier wins. If no
// biome is valid, the default biome is returned. The second return value is
// false only if no biome could be determined at all, i.e. no default biome is
// configured; callers must treat that as a fatal configuration error rather
// than a per-column failure.
func (r *Registry) BestForClimate(s ClimateSample) (Biome, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.best(s, r.order, r.defaultBiome)
}

// BiomesByDimension returns all biomes that generate in the dimension
// passed: nether biomes for the Nether, end biomes for the End and all
// remaining biomes for any other dimension.
func (r *Registry) BiomesByDimension(d world.Dimension) []Biome {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byDimension(d)
}

// BestForClimateIn behaves like BestForClimate restricted to the biomes of
// the dimension passed. Selection in the Nether falls back to the default
// nether biome; every other dimension falls back to the default biome.
func (r *Registry) BestForClimateIn(s ClimateSample, d world.Dimension) (Biome, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fallback := r.defaultBiome
	if d == world.Nether && r.defaultNetherBiome != nil {
		fallback = r.defaultNetherBiome
	}
	return r.best(s, r.byDimension(d), fallback)
}

// ByTerrainType returns all biomes whose ID contains the substring passed.
// This is best-effort tagging for commands and UI, not authoritative
// taxonomy: "ocean" matches any biome with "ocean" in its ID. Generation
// paths never rely on it.
func (r *Registry) ByTerrainType(terrainType string) []Biome {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Biome
	for _, b := range r.order {
		if strings.Contains(b.ID(), terrainType) {
			out = append(out, b)
		}
	}
	return out
}

// ByTemperature returns all biomes whose declared temperature range overlaps
// the band of the category passed. An unknown category yields nil.
func (r *Registry) ByTemperature(category TemperatureCategory) []Biome {
	band, ok := TemperatureBand(category)
	if !ok {
		r.log.Error("biomes by temperature: unknown category", "category", string(category))
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Biome
	for _, b := range r.order {
		if b.Profile().Temperature.Overlaps(band) {
			out = append(out, b)
		}
	}
	return out
}

func (r *Registry) byDimension(d world.Dimension) []Biome {
	var out []Biome
	for _, b := range r.order {
		switch d {
		case world.Nether:
			if b.NetherBiome() {
				out = append(out, b)
			}
		case world.End:
			if b.EndBiome() {
				out = append(out, b)
			}
		default:
			if !b.NetherBiome() && !b.EndBiome() {
				out = append(out, b)
			}
		}
	}
	return out
}

// best ranks the candidates by fitness score, keeping the earliest candidate
// on ties, and falls back to the biome passed when none is valid.
func (r *Registry) best(s ClimateSample, candidates []Biome, fallback Biome) (Biome, bool) {
	var (
		chosen Biome
		score  float64
	)
	for _, b := range candidates {
		if !b.ValidFor(s) {
			continue
		}
		if f := b.FitnessFor(s); chosen == nil || f > score {
			chosen, score = b, f
		}
	}
	if chosen != nil {
		return chosen, true
	}
	if fallback != nil {
		return fallback, true
	}
	return nil, false
}
