package handy

import "github.com/pkg/errors"

// EOFCode is the sentinel next-code value meaning "no following character",
// used at end of stream for the encoder's lookahead.
const EOFCode = 0

// Encode produces the ciphertext fragment for plaintext character ch, given
// the character that follows it (next, when hasNext is true; otherwise
// EOFCode is used as the lookahead code at end of stream).
// It handles the hyphenation rule (SPEC_FULL.md §4.5.1) transparently: the
// returned fragment may include an encoding of '-' ahead of c's own
// encoding.
func (c *Cipher) Encode(ch byte, next byte, hasNext bool) ([]byte, error) {
	code, err := c.codeOf(ch)
	if err != nil {
		return nil, err
	}

	var out []byte
	if c.prevCode*code == 16 {
		origCode := code
		hyphenCode, err := c.codeOf('-')
		if err != nil {
			return nil, err
		}
		if c.prevCode*hyphenCode == 16 {
			return nil, errors.Errorf("handy: cannot hyphenate character %q", ch)
		}
		frag, err := c.encodeChar(hyphenCode, origCode)
		if err != nil {
			return nil, err
		}
		out = append(out, frag...)
		code = origCode
	}

	nextCode := EOFCode
	if hasNext {
		nextCode, err = c.codeOf(next)
		if err != nil {
			return nil, err
		}
	}

	frag, err := c.encodeChar(code, nextCode)
	if err != nil {
		return nil, err
	}
	return append(out, frag...), nil
}

// encodeChar runs the direction-selection, permutation, noise and salting
// pipeline for a single codeword (SPEC_FULL.md §4.5.2-4.5.5).
func (c *Cipher) encodeChar(code, nextCode int) ([]byte, error) {
	c.parity = 1 - c.parity

	dirs := make([]int, LineCount)
	for i := range dirs {
		dirs[i] = i
	}
	shuffleInts(dirs, c.RNG)

	for _, dir := range dirs {
		if c.rejectDirection(code, nextCode, dir) {
			continue
		}

		raw := c.buildRaw(dir, code)
		k := len(raw)
		total := factorial(k)

		ranks := make([]int, total)
		for i := range ranks {
			ranks[i] = i
		}
		shuffleInts(ranks, c.RNG)

		for _, rank := range ranks {
			permuted := unrank(raw, rank)
			if c.acceptsPermutation(permuted) {
				c.prevCode = code
				c.prevDir = dir
				c.prevLast = permuted[len(permuted)-1]
				if c.Trace {
					c.warnf("trace: code=%05b dir=%d perm=%q", code, dir, permuted)
				}
				return c.finish(permuted), nil
			}
		}
	}

	// SPEC_FULL.md §4.5.3: under a valid key some (dir, permutation) pair
	// always satisfies the adjacency rule. Reaching here is an internal
	// invariant violation, not a recoverable input error.
	panic("handy: no encoding direction found - internal invariant violation")
}

// rejectDirection implements the power-of-two and next-code lookahead
// restrictions on candidate directions (SPEC_FULL.md §4.5.2).
func (c *Cipher) rejectDirection(code, nextCode, dir int) bool {
	if isPow2Code(code) && dir >= 5 {
		return true
	}
	if dir >= 5 && dir < 10 {
		r := dir - 5
		if c.parity == 0 && nextCode == 1<<(4-r) {
			return true
		}
		if c.parity == 1 && nextCode == 1<<r {
			return true
		}
	}
	return false
}

// buildRaw extracts the raw (unpermuted) sequence of code-matrix characters
// selected by code along line dir, honoring parity's bit-to-position
// mapping (SPEC_FULL.md §4.5.2).
func (c *Cipher) buildRaw(dir, code int) []byte {
	raw := make([]byte, 0, LineLen)
	for j := 0; j < LineLen; j++ {
		if code&(1<<(4-j)) == 0 {
			continue
		}
		idx := 4 - j
		if c.parity == 1 {
			idx = j
		}
		raw = append(raw, c.CodeMat[lines[dir][idx]])
	}
	return raw
}

// acceptsPermutation implements the adjacency rule of SPEC_FULL.md §4.5.3
// against the cipher's previous-character context.
func (c *Cipher) acceptsPermutation(permuted []byte) bool {
	if c.prevCode == 0 {
		return true
	}
	if c.hasDirection(permuted[0], c.prevDir) {
		return false
	}
	if c.colinear(permuted[0], c.prevLast) {
		return !isPow2Code(c.prevCode)
	}
	return isPow2Code(c.prevCode)
}

// finish wraps a noise-injected, permuted raw sequence with null salt
// unless the cipher runs in core mode.
func (c *Cipher) finish(permuted []byte) []byte {
	noised := c.injectNoise(permuted)
	if c.Core {
		return noised
	}
	return c.injectSalt(noised)
}

// injectNoise walks permuted[1:], appending with probability 1/2 a
// knight-neighbor character of the just-emitted cell (SPEC_FULL.md §4.5.4).
func (c *Cipher) injectNoise(permuted []byte) []byte {
	result := make([]byte, 0, 2*len(permuted)-1)
	result = append(result, permuted[0])
	for i := 1; i < len(permuted); i++ {
		result = append(result, permuted[i])
		if c.RNG.Bounded(2) == 1 {
			cell := c.cellOf(permuted[i])
			k := c.RNG.Bounded(KnightJump)
			result = append(result, c.CodeMat[knightjumps[cell][k]])
		}
	}
	return result
}

// injectSalt wraps a noised fragment with null characters (SPEC_FULL.md
// §4.5.5), emitting zero or more nulls ahead of each fragment character.
// Once the MaxEncodedLen budget is used up, the remaining characters are
// emitted without nulls and a warning is reported through Warn.
func (c *Cipher) injectSalt(noised []byte) []byte {
	result := make([]byte, 0, MaxEncodedLen)
	full := false
	for i := 0; i < len(noised); i++ {
		for c.RNG.Bounded(2) == 1 {
			if len(result) >= MaxEncodedLen-len(noised)+i {
				full = true
				break
			}
			result = append(result, c.NullMat[c.RNG.Bounded(MatrixLen)])
		}
		result = append(result, noised[i])
	}
	if full {
		c.warnf("salt buffer full -- randomizer may lack uniformity")
	}
	return result
}

// factorial returns n! for the small n (0..5) the encoder ever sees.
func factorial(n int) int {
	r := 1
	for i := 2; i <= n; i++ {
		r *= i
	}
	return r
}

// unrank reconstructs the permutation of raw with Lehmer rank `rank`, using
// the linear-time unranking of Myrvold and Ruskey ("Ranking and unranking
// permutations in linear time").
func unrank(raw []byte, rank int) []byte {
	permuted := make([]byte, len(raw))
	copy(permuted, raw)
	k := rank
	for l := len(permuted); l > 0; l-- {
		permuted[l-1], permuted[k%l] = permuted[k%l], permuted[l-1]
		k /= l
	}
	return permuted
}
