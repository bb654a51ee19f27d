package handy

import "github.com/pkg/errors"

// Structural sizes of the cipher, named rather than left as magic numbers.
const (
	KeyLen     = 51 // exactly {A..Y} ∪ {a..y} ∪ {^}
	MatrixLen  = 25 // 5x5 code/null matrices
	SubkeyLen  = 30 // plaintext substitution alphabet
	LineLen    = 5  // cells per line
	LineCount  = 20 // columns + rows + right diagonals + left diagonals
	KnightJump = 8  // non-colinear neighbors per cell

	// MaxEncodedLen bounds a single character's salted encoding:
	// (5 codes) + (4 noises) + (23 nulls) = 32.
	MaxEncodedLen = 32
	// MaxCoreLen bounds a single character's core (unsalted) encoding:
	// (5 codes) + (4 noises) = 9.
	MaxCoreLen = 9
	// PermutationRanks is 5!, the largest permutation-rank space the
	// encoder ever needs to shuffle.
	PermutationRanks = 120
)

// keyAlphabet is the 51-character alphabet a valid key is a permutation of.
const keyAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYabcdefghijklmnopqrstuvwxy^"

// ValidateKey checks that key has exactly KeyLen bytes, drawn from
// {A..Y, a..y, ^}, with no repeats.
func ValidateKey(key string) error {
	if len(key) != KeyLen {
		return errors.Errorf("handy: key must be %d characters, got %d", KeyLen, len(key))
	}
	var seen [KeyLen]bool
	for i := 0; i < len(key); i++ {
		idx, err := keyIndex(key[i])
		if err != nil {
			return err
		}
		if seen[idx] {
			return errors.Errorf("handy: repeated character in key -- %q", key[i])
		}
		seen[idx] = true
	}
	return nil
}

// keyIndex maps a key character to its slot in {A..Y, a..y, ^} (0..50).
func keyIndex(c byte) (int, error) {
	switch {
	case c >= 'A' && c <= 'Y':
		return int(c - 'A'), nil
	case c >= 'a' && c <= 'y':
		return int(c-'a') + 25, nil
	case c == '^':
		return 50, nil
	default:
		return 0, errors.Errorf("handy: invalid character in key -- %q", c)
	}
}

// isKeyLetter reports whether c is one of the 50 letters {A..Y, a..y} that
// populate the code and null matrices (i.e. every key character but '^').
func isKeyLetter(c byte) bool {
	return (c >= 'A' && c <= 'Y') || (c >= 'a' && c <= 'y')
}

// buildMatrices walks key, skipping '^', and deposits characters
// alternately into the code and null matrices, 5 at a time, until both are
// filled (see SPEC_FULL.md §3, "Matrices").
func buildMatrices(key string) (codeMat, nullMat [MatrixLen]byte) {
	toCode := true
	ci, ni := 0, 0
	for i := 0; i < len(key); i++ {
		c := key[i]
		if c == '^' {
			continue
		}
		if toCode {
			codeMat[ci] = c
			ci++
			if ci%LineLen == 0 {
				toCode = false
			}
		} else {
			nullMat[ni] = c
			ni++
			if ni%LineLen == 0 {
				toCode = true
			}
		}
	}
	return codeMat, nullMat
}

// subkeyReplacements substitutes the five lowercase letters 'a'..'e' among
// the key's first 30 eligible characters with 'Z' and four punctuation marks.
var subkeyReplacements = map[byte]byte{
	'a': 'Z',
	'b': '.',
	'c': ',',
	'd': '?',
	'e': '-',
}

// buildSubkey traverses key from index 0, skipping 'f'..'y', substituting
// 'a'..'e' per subkeyReplacements, and taking the first SubkeyLen such
// characters.
func buildSubkey(key string) [SubkeyLen]byte {
	var subkey [SubkeyLen]byte
	j := 0
	for i := 0; i < len(key) && j < SubkeyLen; i++ {
		c := key[i]
		if c >= 'f' && c <= 'y' {
			continue
		}
		if r, ok := subkeyReplacements[c]; ok {
			c = r
		}
		subkey[j] = c
		j++
	}
	return subkey
}

// codeOf returns the 1..31 code of a subkey (plaintext) character.
func (c *Cipher) codeOf(ch byte) (int, error) {
	for i, s := range c.Subkey {
		if s == ch {
			return i + 1, nil
		}
	}
	return 0, errors.Errorf("handy: cannot encode character %q", ch)
}

// isPow2Code reports whether code (1..31) is one of 1, 2, 4, 8, 16.
func isPow2Code(code int) bool {
	return code == 1 || code == 2 || code == 4 || code == 8 || code == 16
}
