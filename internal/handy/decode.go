package handy

import "github.com/pkg/errors"

// Decode consumes a prefix of buf and reports the plaintext character it
// decodes to, if any. It implements the streaming sequence parser of
// SPEC_FULL.md §4.6: a single "sequence" accumulator of up to 5 non-null
// characters, with noise detected and discarded along the way.
//
// produced is false when the consumed prefix was made up entirely of null
// characters (no plaintext character results); used is always > 0 as long
// as buf is non-empty. Callers must supply enough lookahead (see
// SPEC_FULL.md §4.7) that a sequence terminator is available before EOF,
// except at true end of stream.
func (c *Cipher) Decode(buf []byte) (out byte, produced bool, used int, err error) {
	var raw [LineLen]byte
	pos := 0
	dir := -1
	noise := false

	for used < len(buf) {
		ch := buf[used]
		used++

		isNull, nerr := c.isNull(ch)
		if nerr != nil {
			return 0, false, used, nerr
		}
		if isNull {
			continue
		}

		endSequence := false
		switch pos {
		case 0:
			raw[0] = ch
			pos++
		case 1:
			d := c.getDirection(ch, raw[0])
			if d < 0 {
				dir = c.getColumn(raw[0])
				endSequence = true
			} else {
				raw[1] = ch
				pos++
				dir = d
				noise = false
			}
		case 2, 3:
			if c.hasDirection(ch, dir) {
				raw[pos] = ch
				pos++
				noise = false
			} else if c.colinear(raw[pos-1], ch) {
				endSequence = true
			} else if noise {
				return 0, false, used, errors.Errorf("handy: invalid sequence -- bad noise in position %d", pos)
			} else {
				noise = true
			}
		case 4:
			if c.hasDirection(ch, dir) {
				return 0, false, used, errors.New("handy: invalid sequence -- too many characters")
			}
			if c.colinear(raw[pos-1], ch) {
				endSequence = true
			} else if noise {
				return 0, false, used, errors.New("handy: invalid sequence -- bad noise in position 4")
			} else {
				noise = true
			}
		}

		if endSequence {
			used-- // reprocess ch as the first character of the next sequence
			break
		}
	}

	if pos == 0 {
		// Consumed characters were all nulls; nothing decoded yet.
		return 0, false, used, nil
	}
	if pos == 1 {
		dir = c.getColumn(raw[0])
	}

	return c.reconstruct(raw, pos, dir), true, used, nil
}

// reconstruct rebuilds the codeword from the accumulated raw characters and
// flips parity, per SPEC_FULL.md §4.6 "Codeword reconstruction".
func (c *Cipher) reconstruct(raw [LineLen]byte, pos, dir int) byte {
	c.parity = 1 - c.parity

	code := 0
	for i := 0; i < LineLen; i++ {
		for j := 0; j < pos; j++ {
			if c.CodeMat[lines[dir][i]] == raw[j] {
				if c.parity == 1 {
					code |= 16 >> i
				} else {
					code |= 1 << i
				}
			}
		}
	}
	result := c.Subkey[code-1]
	if c.Trace {
		c.warnf("trace: dir=%d raw=%q code=%05b char=%q", dir, raw[:pos], code, result)
	}
	return result
}

// isNull reports whether ch is a null-matrix character. In core mode there
// are no nulls: any character outside the code matrix is an error. In
// salted mode, a character outside the 50-letter key alphabet is an error,
// and a key-alphabet letter not found in the null matrix is trusted to be a
// code-matrix character (every key letter necessarily resides in one or the
// other, so this is never actually ambiguous; see SPEC_FULL.md §9, "Null
// classification in non-core decode").
func (c *Cipher) isNull(ch byte) (bool, error) {
	if c.Core {
		if c.cellOf(ch) < 0 {
			return false, errors.Errorf("handy: invalid input character %q", ch)
		}
		return false, nil
	}
	for _, n := range c.NullMat {
		if n == ch {
			return true, nil
		}
	}
	if !isKeyLetter(ch) {
		return false, errors.Errorf("handy: invalid input character %q", ch)
	}
	return false, nil
}
