// Package rand implements the deterministic pseudo-random sources used by
// terrain generation. Every source derives purely from the world seed and a
// position, so regenerating a chunk after a crash or reload reproduces the
// exact same draws.
package rand

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Random is a splitmix64-based generator. It is not safe for concurrent use;
// generation code creates one per chunk or per column instead of sharing.
type Random struct {
	state uint64
}

// NewRandom creates a Random seeded with the value passed.
func NewRandom(seed int64) *Random {
	r := &Random{}
	r.SetSeed(seed)
	return r
}

// SetSeed resets the generator to the seed passed.
func (r *Random) SetSeed(seed int64) {
	r.state = uint64(seed)
}

// Uint64 advances the generator and returns the next 64 random bits.
func (r *Random) Uint64() uint64 {
	r.state += 0x9e3779b97f4a7c15
	v := r.state
	v = (v ^ (v >> 30)) * 0xbf58476d1ce4e5b9
	v = (v ^ (v >> 27)) * 0x94d049bb133111eb
	return v ^ (v >> 31)
}

// Int31n returns a non-negative random int32 below n. It panics if n <= 0.
func (r *Random) Int31n(n int32) int32 {
	if n <= 0 {
		panic("rand: Int31n with non-positive n")
	}
	return int32(r.Uint64() % uint64(n))
}

// Range returns a random int32 in [min, max], bounds included.
func (r *Random) Range(min, max int32) int32 {
	if max < min {
		min, max = max, min
	}
	return min + r.Int31n(max-min+1)
}

// Float64 returns a random float64 in [0, 1).
func (r *Random) Float64() float64 {
	return float64(r.Uint64()>>11) / (1 << 53)
}

// mix hashes the world seed, a column position and a salt into a single
// 64-bit seed. The hash breaks up the coordinate lattice so that neighbouring
// columns draw unrelated sequences.
func mix(worldSeed, x, z int64, salt uint64) uint64 {
	var buf [32]byte
	binary.LittleEndian.PutUint64(buf[0:], uint64(worldSeed))
	binary.LittleEndian.PutUint64(buf[8:], uint64(x))
	binary.LittleEndian.PutUint64(buf[16:], uint64(z))
	binary.LittleEndian.PutUint64(buf[24:], salt)
	return xxhash.Sum64(buf[:])
}

// At creates a Random keyed to a world seed, column position and salt. The
// result is a pure function of its arguments.
func At(worldSeed, x, z int64, salt uint64) *Random {
	return &Random{state: mix(worldSeed, x, z, salt)}
}

// Source returns a draw function in [0, 1) keyed to a world seed, column
// position and salt, for hooks that only need uniform draws.
func Source(worldSeed, x, z int64, salt uint64) func() float64 {
	r := At(worldSeed, x, z, salt)
	return r.Float64
}
