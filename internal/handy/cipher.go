// Package handy implements the Handycipher engine: key expansion, the
// randomized per-character encoder, and its streaming decoder. See
// SPEC_FULL.md for the full specification this package implements.
package handy

import (
	"github.com/ombreve/handycipher/internal/prng"
	"github.com/pkg/errors"
)

// Cipher holds the artifacts derived from a single key (the code matrix,
// null matrix and subkey), the PRNG driving its randomized choices, and the
// per-stream context carried between successive Encode/Decode calls. A
// Cipher is owned exclusively by the encode or decode call using it; it is
// not safe for concurrent use.
type Cipher struct {
	CodeMat [MatrixLen]byte
	NullMat [MatrixLen]byte
	Subkey  [SubkeyLen]byte

	RNG  *prng.PCG32
	Core bool

	// Trace, when set, causes the encoder/decoder to report per-character
	// tracing information through Warn. It is a field on the cipher
	// context, not process-global state.
	Trace bool

	// Warn receives non-fatal diagnostics (e.g. null-salt saturation,
	// trace lines). A nil Warn discards them.
	Warn func(format string, args ...any)

	// Stream context, reset at construction and updated by Encode/Decode.
	prevCode int
	prevLast byte
	prevDir  int
	parity   int
}

// New validates key and builds a Cipher seeded from OS entropy.
func New(key string, core bool) (*Cipher, error) {
	c, err := newFromKey(key, core)
	if err != nil {
		return nil, err
	}
	c.RNG = &prng.PCG32{}
	if err := c.RNG.SeedFromEntropy(); err != nil {
		return nil, errors.Wrap(err, "handy: cannot initialize random source")
	}
	return c, nil
}

// NewWithRNG validates key and builds a Cipher driven by an
// already-seeded PRNG, for deterministic tests and reproducible traces.
func NewWithRNG(key string, core bool, rng *prng.PCG32) (*Cipher, error) {
	c, err := newFromKey(key, core)
	if err != nil {
		return nil, err
	}
	c.RNG = rng
	return c, nil
}

func newFromKey(key string, core bool) (*Cipher, error) {
	if err := ValidateKey(key); err != nil {
		return nil, err
	}
	codeMat, nullMat := buildMatrices(key)
	c := &Cipher{
		CodeMat:  codeMat,
		NullMat:  nullMat,
		Subkey:   buildSubkey(key),
		Core:     core,
		prevCode: 0,
		prevLast: 0,
		prevDir:  -1,
		parity:   0,
	}
	return c, nil
}

func (c *Cipher) warnf(format string, args ...any) {
	if c.Warn != nil {
		c.Warn(format, args...)
	}
}
