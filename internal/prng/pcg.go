// Package prng implements the PCG32 pseudo-random generator used to drive
// the Handycipher engine's randomized choices (direction selection,
// permutation ranking, noise and null placement).
//
// Adapted from the "minimal C implementation" of PCG
// (http://www.pcg-random.org); see pcgrandom.h in the reference sources.
package prng

import (
	"crypto/rand"
	"encoding/binary"

	"github.com/pkg/errors"
)

// multiplier is the 64-bit LCG constant from the PCG reference implementation.
const multiplier uint64 = 6364136223846793005

// PCG32 is a single PCG32 generator instance: 64 bits of state advanced by a
// fixed, odd increment derived from the seed sequence.
type PCG32 struct {
	state uint64
	inc   uint64
}

// New returns a PCG32 seeded with initState and initSeq, following the
// reference seeding procedure: the increment is derived first, one value is
// discarded to mix it in, then the state is offset and a second value is
// discarded.
func New(initState, initSeq uint64) *PCG32 {
	p := &PCG32{}
	p.Seed(initState, initSeq)
	return p
}

// Seed (re)initializes the generator from a 128-bit seed (state, sequence).
func (p *PCG32) Seed(initState, initSeq uint64) {
	p.state = 0
	p.inc = (initSeq << 1) | 1
	p.Next32()
	p.state += initState
	p.Next32()
}

// SeedFromEntropy seeds the generator from the OS entropy source. It returns
// an error (never a process exit) when entropy cannot be read, so that
// callers can decide how to surface the failure.
func (p *PCG32) SeedFromEntropy() error {
	var seeds [16]byte
	if _, err := rand.Read(seeds[:]); err != nil {
		return errors.Wrap(err, "prng: cannot read OS entropy")
	}
	initState := binary.LittleEndian.Uint64(seeds[0:8])
	initSeq := binary.LittleEndian.Uint64(seeds[8:16])
	p.Seed(initState, initSeq)
	return nil
}

// Next32 returns the next uniformly distributed 32-bit value in the stream.
func (p *PCG32) Next32() uint32 {
	oldstate := p.state
	p.state = oldstate*multiplier + p.inc
	xorshifted := uint32(((oldstate >> 18) ^ oldstate) >> 27)
	rot := uint32(oldstate >> 59)
	return (xorshifted >> rot) | (xorshifted << ((-rot) & 31))
}

// Bounded returns a uniformly distributed value in [0, bound) with no modulo
// bias: raw draws below the threshold (-bound) mod bound are rejected, as in
// the PCG reference bounded generator. Bound must be > 0.
func (p *PCG32) Bounded(bound uint32) uint32 {
	threshold := -bound % bound
	for {
		r := p.Next32()
		if r >= threshold {
			return r % bound
		}
	}
}
