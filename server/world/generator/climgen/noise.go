package climgen

import (
	"math"

	"github.com/cespare/xxhash/v2"
)

// Field is the default biome.NoiseField implementation: a set of named,
// independently seeded octave value-noise channels. Each channel's lattice
// derives from the world seed and the channel name, so two fields built from
// the same seed sample identically and channels never correlate.
type Field struct {
	channels map[string]channelConfig
}

type channelConfig struct {
	seed        int64
	octaves     int
	persistence float64
	lacunarity  float64
}

// standardChannels lists the channels the default field carries, with their
// octave settings. Height and block hooks asking for channels outside this
// table fall back to their closed-form expressions.
var standardChannels = map[string]struct {
	octaves     int
	persistence float64
	lacunarity  float64
}{
	"temperature":     {octaves: 4, persistence: 0.5, lacunarity: 2},
	"precipitation":   {octaves: 4, persistence: 0.5, lacunarity: 2},
	"continentalness": {octaves: 5, persistence: 0.5, lacunarity: 2},
	"erosion":         {octaves: 4, persistence: 0.55, lacunarity: 2},
	"weirdness":       {octaves: 3, persistence: 0.6, lacunarity: 2},
	"depth":           {octaves: 3, persistence: 0.5, lacunarity: 2},
	"terrain":         {octaves: 5, persistence: 0.5, lacunarity: 2},
	"dunes":           {octaves: 2, persistence: 0.6, lacunarity: 2},
	"forest":          {octaves: 3, persistence: 0.5, lacunarity: 2},
	"largeHills":      {octaves: 3, persistence: 0.5, lacunarity: 2},
	"caveNoise":       {octaves: 4, persistence: 0.55, lacunarity: 2},
}

// NewField creates a Field carrying the standard channel set, seeded with
// the world seed passed.
func NewField(seed int64) *Field {
	f := &Field{channels: make(map[string]channelConfig, len(standardChannels))}
	for name, cfg := range standardChannels {
		f.channels[name] = channelConfig{
			seed:        channelSeed(seed, name),
			octaves:     cfg.octaves,
			persistence: cfg.persistence,
			lacunarity:  cfg.lacunarity,
		}
	}
	return f
}

// channelSeed derives an independent lattice seed for a named channel.
func channelSeed(seed int64, channel string) int64 {
	d := xxhash.New()
	var buf [8]byte
	for i := 0; i < 8; i++ {
		buf[i] = byte(uint64(seed) >> (8 * i))
	}
	_, _ = d.Write(buf[:])
	_, _ = d.WriteString(channel)
	return int64(d.Sum64())
}

// Sample samples the named channel at the position passed, returning a value
// in [-1, 1]. The second return value is false for unknown channels.
func (f *Field) Sample(channel string, x, y, z float64) (float64, bool) {
	cfg, ok := f.channels[channel]
	if !ok {
		return 0, false
	}
	return octaveNoise(x, y, z, cfg)*2 - 1, true
}

// octaveNoise sums value-noise octaves into a result in [0, 1].
func octaveNoise(x, y, z float64, cfg channelConfig) float64 {
	amplitude, frequency := 1.0, 1.0
	var sum, norm float64
	for i := 0; i < cfg.octaves; i++ {
		sum += valueNoise(x*frequency, y*frequency, z*frequency, cfg.seed+int64(i)*131) * amplitude
		norm += amplitude
		amplitude *= cfg.persistence
		frequency *= cfg.lacunarity
	}
	return sum / norm
}

// valueNoise interpolates hashed lattice values trilinearly, smoothed by the
// classic 6t^5-15t^4+10t^3 fade.
func valueNoise(x, y, z float64, seed int64) float64 {
	x0, y0, z0 := math.Floor(x), math.Floor(y), math.Floor(z)
	fx, fy, fz := fade(x-x0), fade(y-y0), fade(z-z0)
	ix0, iy0, iz0 := int64(x0), int64(y0), int64(z0)

	v000 := lattice(ix0, iy0, iz0, seed)
	v100 := lattice(ix0+1, iy0, iz0, seed)
	v010 := lattice(ix0, iy0+1, iz0, seed)
	v110 := lattice(ix0+1, iy0+1, iz0, seed)
	v001 := lattice(ix0, iy0, iz0+1, seed)
	v101 := lattice(ix0+1, iy0, iz0+1, seed)
	v011 := lattice(ix0, iy0+1, iz0+1, seed)
	v111 := lattice(ix0+1, iy0+1, iz0+1, seed)

	i0 := lerp(lerp(v000, v100, fx), lerp(v010, v110, fx), fy)
	i1 := lerp(lerp(v001, v101, fx), lerp(v011, v111, fx), fy)
	return lerp(i0, i1, fz)
}

// lattice hashes an integer lattice point to a value in [0, 1], stable
// across runs for the same inputs.
func lattice(x, y, z, seed int64) float64 {
	v := uint64(x)*0x9e3779b97f4a7c15 + uint64(y)*0x517cc1b727220a95 + uint64(z)*0x6c62272e07bb0142 + uint64(seed)
	v += 0x9e3779b97f4a7c15
	v = (v ^ (v >> 30)) * 0xbf58476d1ce4e5b9
	v = (v ^ (v >> 27)) * 0x94d049bb133111eb
	v ^= v >> 31
	return float64(v&0xffffffff) / float64(0xffffffff)
}

// fallback is the closed-form expression substituted for absent noise
// channels. It must be preserved exactly for seed compatibility.
func fallback(x, z int64, k float64) float64 {
	return math.Sin(float64(x)*k) * math.Cos(float64(z)*k)
}

func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}
