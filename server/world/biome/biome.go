// Package biome implements the climate-driven biome model at the core of the
// terrain synthesis engine: biome definitions with their climate profiles and
// generation hooks, the fitness scoring that matches columns to biomes and
// the registry that owns all definitions.
package biome

import (
	"math"
	"strings"
	"sync"

	"github.com/df-mc/terravolt/server/world/block"
	"github.com/segmentio/fasthash/fnv1a"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NoiseField exposes named deterministic noise channels to generation hooks.
// Implementations must be pure functions of their seed and the coordinates
// passed: repeated samples at the same position return identical values
// regardless of call order or goroutine.
type NoiseField interface {
	// Sample samples the channel with the name passed at a world position.
	// The value returned lies in [-1, 1]. The second return value is false if
	// the field does not carry the channel, in which case callers fall back
	// to a closed-form expression.
	Sample(channel string, x, y, z float64) (float64, bool)
}

// RandSource is a seeded random source yielding values in [0, 1). Sources
// passed into generation hooks derive purely from the world seed and the
// column position, so consuming a fixed number of draws per hook keeps world
// generation reproducible.
type RandSource func() float64

// Feature is a placement request for a small element such as a tree, plant
// or ore vein, emitted probabilistically per column. Actual block placement
// is performed by a placer consuming these descriptors.
type Feature struct {
	// Type is the feature category, e.g. "tree", "plant", "flower" or "ore".
	Type string
	// ID names the concrete variant within the category, e.g. "oak".
	ID string
	// X and Z hold the world column the feature was emitted for.
	X, Z int64
	// Meta carries optional numeric parameters for the placer.
	Meta map[string]float64
}

// Structure is a placement request for a large element such as a temple or
// village, forwarded to an external structure generator.
type Structure struct {
	ID   string
	X, Z int64
}

// WeightedID is an identifier with a selection weight, used in biome feature
// and structure tables.
type WeightedID struct {
	ID     string
	Weight int
}

// Palette holds the four material bands a biome builds its columns from.
type Palette struct {
	// Top is placed at the surface when it lies above water level.
	Top block.Block
	// Filler fills the few blocks directly below the surface.
	Filler block.Block
	// Underground fills everything below the filler band.
	Underground block.Block
	// Underwater replaces Top on submerged surfaces.
	Underwater block.Block
}

// Densities holds the per-column emission probabilities of the three
// vegetation categories, each in [0, 1].
type Densities struct {
	Tree, Grass, Flower float64
}

// Terrain holds the height curve parameters of a biome.
type Terrain struct {
	// BaseHeight is the mean surface height of the biome.
	BaseHeight float64
	// HeightVariation scales the primary terrain noise channel.
	HeightVariation float64
	// Hilliness scales biome-specific secondary height terms.
	Hilliness float64
}

// Biome is one named generation policy: a climate profile paired with the
// hooks that shape terrain, pick materials and spawn vegetation and
// structures. All hooks are pure in (coordinates, noise, random source);
// biomes hold no mutable state after registration.
type Biome interface {
	// ID returns the unique, stable identifier of the biome.
	ID() string
	// DisplayName returns the human-readable name of the biome.
	DisplayName() string
	// Colour returns the display colour of the biome as a #rrggbb string.
	Colour() string
	// Profile returns the climate profile matched against samples.
	Profile() Profile
	// Bonuses returns the named additive fitness adjustments of the biome.
	Bonuses() []Bonus
	// FitnessFor returns the fitness score of the sample: the base
	// weighted-distance score of the profile plus all applicable bonuses.
	FitnessFor(s ClimateSample) float64
	// ValidFor reports whether the biome may govern a column with the sample
	// passed. Range-defined profiles test hard bounds; point profiles test
	// the fitness score against ValidityThreshold.
	ValidFor(s ClimateSample) bool
	// Terrain returns the height curve parameters of the biome.
	Terrain() Terrain
	// Palette returns the material bands of the biome.
	Palette() Palette
	// Densities returns the vegetation emission probabilities.
	Densities() Densities
	// Features returns the weighted feature table of the biome.
	Features() []WeightedID
	// Structures returns the weighted structure table of the biome.
	Structures() []WeightedID
	// Spawns returns the read-only mob spawn tables of the biome.
	Spawns() SpawnTables
	// Height returns the surface height of the column at (x, z). Height must
	// be pure in (x, z, n): repeated calls at the same coordinate return an
	// identical result regardless of call order.
	Height(x, z int64, n NoiseField) float64
	// BlockAt returns the material at an absolute position, given the
	// surface height previously computed for the column.
	BlockAt(x, y, z int64, surface float64, n NoiseField) block.Block
	// FeaturesAt emits zero or more feature placement requests for the
	// column. The number and order of draws taken from r is fixed per biome.
	FeaturesAt(x, z int64, r RandSource, n NoiseField) []Feature
	// StructuresAt emits zero or more structure placement requests for the
	// column, consuming one draw per structure table entry.
	StructuresAt(x, z int64, r RandSource) []Structure
	// NetherBiome reports whether the biome generates in the Nether.
	NetherBiome() bool
	// EndBiome reports whether the biome generates in the End.
	EndBiome() bool
}

// SeaLevel is the Y coordinate up to which overworld terrain is flooded.
const SeaLevel = 62

// lavaLevel is the Y coordinate of the nether lava ocean.
const lavaLevel = 32

// base carries the profile and data tables shared by all biome variants and
// provides the default behaviour of every generation hook. Concrete biomes
// embed base and override a small fixed set of hooks, calling the base
// implementation first where they extend rather than replace it.
type base struct {
	id     string
	name   string
	colour string

	profile Profile
	bonuses []Bonus

	terrain   Terrain
	palette   Palette
	densities Densities

	features   []WeightedID
	structures []WeightedID
	spawns     SpawnTables

	nether, end bool
}

func (b base) ID() string { return b.id }

// titleCaser derives display names from biome IDs. A cases.Caser carries
// transformer state and is not safe for concurrent use, so the shared one is
// guarded by titleMu.
var (
	titleMu    sync.Mutex
	titleCaser = cases.Title(language.AmericanEnglish)
)

func (b base) DisplayName() string {
	if b.name != "" {
		return b.name
	}
	titleMu.Lock()
	defer titleMu.Unlock()
	return titleCaser.String(strings.ReplaceAll(b.id, "_", " "))
}

func (b base) Colour() string {
	if b.colour == "" {
		return "#7f7f7f"
	}
	return b.colour
}

func (b base) Profile() Profile         { return b.profile }
func (b base) Bonuses() []Bonus         { return b.bonuses }
func (b base) Terrain() Terrain         { return b.terrain }
func (b base) Palette() Palette         { return b.palette }
func (b base) Densities() Densities     { return b.densities }
func (b base) Features() []WeightedID   { return b.features }
func (b base) Structures() []WeightedID { return b.structures }
func (b base) Spawns() SpawnTables      { return b.spawns }
func (b base) NetherBiome() bool        { return b.nether }
func (b base) EndBiome() bool           { return b.end }

func (b base) FitnessFor(s ClimateSample) float64 {
	score := b.profile.Fitness(s)
	for _, bonus := range b.bonuses {
		if bonus.Applies(s) {
			score += bonus.Amount
		}
	}
	return score
}

func (b base) ValidFor(s ClimateSample) bool {
	if b.profile.Bounded {
		return b.profile.Contains(s)
	}
	return b.FitnessFor(s) >= ValidityThreshold
}

// terrainFrequency is the frequency of the primary terrain channel.
const terrainFrequency = 1.0 / 64

func (b base) Height(x, z int64, n NoiseField) float64 {
	return b.terrain.BaseHeight + channel(n, "terrain", x, z, terrainFrequency)*b.terrain.HeightVariation
}

func (b base) BlockAt(x, y, z int64, surface float64, n NoiseField) block.Block {
	si := int64(math.Floor(surface))
	switch {
	case y > si:
		if b.nether {
			if y <= lavaLevel {
				return block.Lava
			}
			return block.Air
		}
		if y <= SeaLevel && !b.end {
			return block.Water
		}
		return block.Air
	case y == si:
		if si < SeaLevel && !b.nether && !b.end {
			return b.palette.Underwater
		}
		return b.palette.Top
	case y >= si-3:
		return b.palette.Filler
	default:
		return b.palette.Underground
	}
}

// FeaturesAt performs one Bernoulli trial per vegetation category in the
// fixed order tree, grass, flower. Each trial consumes exactly one draw; a
// successful trial consumes one further draw to pick from the weighted
// feature table. The draw discipline is part of the reproducibility contract.
func (b base) FeaturesAt(x, z int64, r RandSource, n NoiseField) []Feature {
	var fs []Feature
	if id, ok := trial(r, b.densities.Tree, b.features, "tree"); ok {
		fs = append(fs, Feature{Type: "tree", ID: id, X: x, Z: z})
	}
	if id, ok := trial(r, b.densities.Grass, b.features, "plant"); ok {
		fs = append(fs, Feature{Type: "plant", ID: id, X: x, Z: z})
	}
	if id, ok := trial(r, b.densities.Flower, b.features, "flower"); ok {
		fs = append(fs, Feature{Type: "flower", ID: id, X: x, Z: z})
	}
	return fs
}

// structureScale divides structure table weights into per-column
// probabilities, keeping structures far rarer than features.
const structureScale = 10000

func (b base) StructuresAt(x, z int64, r RandSource) []Structure {
	var out []Structure
	for _, entry := range b.structures {
		if r() < float64(entry.Weight)/structureScale {
			out = append(out, Structure{ID: entry.ID, X: x, Z: z})
		}
	}
	return out
}

// trial runs a single Bernoulli trial against the probability passed and, on
// success, picks a weighted entry of the given category from the table.
func trial(r RandSource, probability float64, table []WeightedID, category string) (string, bool) {
	if r() >= probability {
		return "", false
	}
	return pickWeighted(table, category, r)
}

// pickWeighted selects an entry of the category passed from the table,
// consuming exactly one draw. Entries are namespaced "category:id".
func pickWeighted(table []WeightedID, category string, r RandSource) (string, bool) {
	prefix := category + ":"
	total := 0
	for _, e := range table {
		if strings.HasPrefix(e.ID, prefix) {
			total += e.Weight
		}
	}
	if total == 0 {
		return "", false
	}
	pick := int(r() * float64(total))
	for _, e := range table {
		if !strings.HasPrefix(e.ID, prefix) {
			continue
		}
		pick -= e.Weight
		if pick < 0 {
			return strings.TrimPrefix(e.ID, prefix), true
		}
	}
	return "", false
}

// channel samples a named noise channel at a column position, falling back
// to the closed-form sin(x*k)*cos(z*k) expression when the channel is
// absent. The fallback is part of the seed-compatibility contract and must
// not change.
func channel(n NoiseField, name string, x, z int64, k float64) float64 {
	if n != nil {
		if v, ok := n.Sample(name, float64(x)*k, 0, float64(z)*k); ok {
			return v
		}
	}
	return math.Sin(float64(x)*k) * math.Cos(float64(z)*k)
}

// decorative returns a deterministic pseudo-random value in [0, 1) for a
// block position and salt. It replaces the true randomness historically used
// for cosmetic block variants, which broke save/reload consistency.
func decorative(x, y, z int64, salt uint64) float64 {
	h := fnv1a.Init64
	h = fnv1a.AddUint64(h, uint64(x))
	h = fnv1a.AddUint64(h, uint64(y))
	h = fnv1a.AddUint64(h, uint64(z))
	h = fnv1a.AddUint64(h, salt)
	return float64(h>>11) / (1 << 53)
}
