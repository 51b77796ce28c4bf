package climgen

import (
	"github.com/df-mc/terravolt/server/world"
	"github.com/df-mc/terravolt/server/world/biome"
)

// Climate channel frequencies. Biomes span hundreds of blocks, so the
// climate axes sample at far lower frequencies than terrain shaping noise.
const (
	freqTemperature     = 1.0 / 512
	freqPrecipitation   = 1.0 / 512
	freqContinentalness = 1.0 / 1024
	freqErosion         = 1.0 / 384
	freqWeirdness       = 1.0 / 256
	freqDepth           = 1.0 / 128
)

// ClimateSampler turns a world column into a biome.ClimateSample by reading
// the six climate channels of a noise field. Samplers are stateless and safe
// for concurrent use.
type ClimateSampler struct {
	field biome.NoiseField
	dim   world.Dimension
}

// NewClimateSampler creates a ClimateSampler reading from the field passed
// for the dimension passed.
func NewClimateSampler(field biome.NoiseField, dim world.Dimension) *ClimateSampler {
	return &ClimateSampler{field: field, dim: dim}
}

// Sample produces the climate sample of the column at (x, z). Channel values
// already lie in [-1, 1]; temperature and precipitation are folded into the
// [-1, 1] range with their natural sign kept, matching the band table of the
// biome registry.
func (s *ClimateSampler) Sample(x, z int64) biome.ClimateSample {
	return biome.ClimateSample{
		Temperature:     s.channel("temperature", x, z, freqTemperature),
		Precipitation:   s.channel("precipitation", x, z, freqPrecipitation),
		Continentalness: s.channel("continentalness", x, z, freqContinentalness),
		Erosion:         s.channel("erosion", x, z, freqErosion),
		Weirdness:       s.channel("weirdness", x, z, freqWeirdness),
		Depth:           s.channel("depth", x, z, freqDepth),
		Dimension:       s.dim,
	}
}

func (s *ClimateSampler) channel(name string, x, z int64, k float64) float64 {
	if v, ok := s.field.Sample(name, float64(x)*k, 0, float64(z)*k); ok {
		return v
	}
	// Absent channels fall back to the same closed-form expression the
	// generation hooks use, keeping samples deterministic either way.
	return fallback(x, z, k)
}
