package biome

import (
	"math"

	"github.com/df-mc/terravolt/server/world"
)

// ClimateSample describes the climate of a single world column. Samples are
// produced fresh per query by a climate sampler and are never mutated or
// persisted.
type ClimateSample struct {
	// Temperature, Precipitation, Continentalness, Erosion and Weirdness are
	// the five scoring axes used to match a sample against biome profiles.
	Temperature     float64
	Precipitation   float64
	Continentalness float64
	Erosion         float64
	Weirdness       float64
	// Depth describes how far below the surface the sampled column sits. It
	// does not take part in the weighted distance but drives the fitness
	// bonuses of cave biomes.
	Depth float64
	// Dimension is the dimension the sample was taken in.
	Dimension world.Dimension
}

// Valid reports whether all axes of the sample hold finite values. Samplers
// backed by broken noise channels may produce NaN values; such samples match
// no biome and fall through to the registry default.
func (s ClimateSample) Valid() bool {
	for _, v := range [...]float64{s.Temperature, s.Precipitation, s.Continentalness, s.Erosion, s.Weirdness, s.Depth} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Span is an inclusive numeric interval on one climate axis.
type Span struct {
	Min, Max float64
}

// Point returns a Span covering exactly the single value passed.
func Point(v float64) Span {
	return Span{Min: v, Max: v}
}

// Contains reports whether v lies within the span, bounds included.
func (s Span) Contains(v float64) bool {
	return v >= s.Min && v <= s.Max
}

// Overlaps reports whether the two spans share at least one value.
func (s Span) Overlaps(o Span) bool {
	return s.Min <= o.Max && o.Min <= s.Max
}

// Mid returns the midpoint of the span. For point spans this is the point
// itself; the midpoint is the representative value used in weighted-distance
// scoring.
func (s Span) Mid() float64 {
	return (s.Min + s.Max) / 2
}

// Profile is the climate profile of a biome. Two historical representations
// are unified here: biomes defined by a single ideal point use point spans
// and rely purely on the weighted-distance score, while biomes defined by
// per-axis ranges additionally set Bounded, turning the spans into hard
// validity bounds.
type Profile struct {
	Temperature     Span
	Precipitation   Span
	Continentalness Span
	Erosion         Span
	Weirdness       Span
	// Bounded marks the profile as range-defined: a sample is then valid only
	// if it lies within all five spans. Unbounded profiles derive validity
	// from the fitness score alone.
	Bounded bool
}

// PointProfile builds an unbounded Profile from the five ideal values passed.
func PointProfile(temperature, precipitation, continentalness, erosion, weirdness float64) Profile {
	return Profile{
		Temperature:     Point(temperature),
		Precipitation:   Point(precipitation),
		Continentalness: Point(continentalness),
		Erosion:         Point(erosion),
		Weirdness:       Point(weirdness),
	}
}

// Axis weights of the fitness score. These are part of the observable
// contract: changing them shifts biome borders on existing world seeds.
const (
	weightTemperature     = 1.2
	weightPrecipitation   = 1.0
	weightContinentalness = 0.8
	weightErosion         = 0.6
	weightWeirdness       = 0.4
)

// ValidityThreshold is the minimum fitness score at which an unbounded biome
// profile accepts a climate sample.
const ValidityThreshold = 0.6

// Fitness returns the weighted-distance score of the sample against the
// profile's representative values. The score is 1 for an exact match and
// decays linearly with the weighted sum of per-axis differences, clamped at
// 0. Invalid samples score 0.
func (p Profile) Fitness(s ClimateSample) float64 {
	if !s.Valid() {
		return 0
	}
	diff := math.Abs(s.Temperature-p.Temperature.Mid())*weightTemperature +
		math.Abs(s.Precipitation-p.Precipitation.Mid())*weightPrecipitation +
		math.Abs(s.Continentalness-p.Continentalness.Mid())*weightContinentalness +
		math.Abs(s.Erosion-p.Erosion.Mid())*weightErosion +
		math.Abs(s.Weirdness-p.Weirdness.Mid())*weightWeirdness
	return math.Max(0, 1-diff)
}

// Contains reports whether the sample lies within all five spans of the
// profile. Only meaningful for bounded profiles.
func (p Profile) Contains(s ClimateSample) bool {
	return s.Valid() &&
		p.Temperature.Contains(s.Temperature) &&
		p.Precipitation.Contains(s.Precipitation) &&
		p.Continentalness.Contains(s.Continentalness) &&
		p.Erosion.Contains(s.Erosion) &&
		p.Weirdness.Contains(s.Weirdness)
}

// Bonus is a named additive fitness adjustment layered on top of the base
// weighted-distance score. Bonuses are deliberately unbounded: a cave biome
// adding +100 for deep samples outranks every surface biome there, no matter
// how well those match. Naming bonuses keeps the tuning visible instead of
// burying magic constants in per-biome conditionals.
type Bonus struct {
	// Name describes the condition, e.g. "high_precipitation".
	Name string
	// Amount is added to the fitness score when Applies returns true.
	Amount float64
	// Applies reports whether the bonus applies to the sample passed.
	Applies func(s ClimateSample) bool
}

// TemperatureCategory is a coarse temperature classification used by registry
// convenience filters.
type TemperatureCategory string

const (
	TemperatureFrozen    TemperatureCategory = "frozen"
	TemperatureCold      TemperatureCategory = "cold"
	TemperatureTemperate TemperatureCategory = "temperate"
	TemperatureWarm      TemperatureCategory = "warm"
	TemperatureHot       TemperatureCategory = "hot"
)

// temperatureBands is the fixed category to range table. Bands deliberately
// touch at their edges; filtering uses span overlap, so a biome declared
// exactly on an edge shows up in both neighbouring categories.
var temperatureBands = map[TemperatureCategory]Span{
	TemperatureFrozen:    {Min: -1, Max: 0},
	TemperatureCold:      {Min: 0, Max: 0.3},
	TemperatureTemperate: {Min: 0.3, Max: 0.6},
	TemperatureWarm:      {Min: 0.6, Max: 0.8},
	TemperatureHot:       {Min: 0.8, Max: 1},
}

// TemperatureBand returns the numeric range of a temperature category. The
// second return value is false for unknown categories.
func TemperatureBand(c TemperatureCategory) (Span, bool) {
	s, ok := temperatureBands[c]
	return s, ok
}
