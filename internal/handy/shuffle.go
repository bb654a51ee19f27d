package handy

import "github.com/ombreve/handycipher/internal/prng"

// shuffleBytes performs an in-place Fisher-Yates shuffle of buf using rnd's
// unbiased bounded draws.
func shuffleBytes(buf []byte, rnd *prng.PCG32) {
	for i := len(buf) - 1; i > 0; i-- {
		j := int(rnd.Bounded(uint32(i + 1)))
		if i != j {
			buf[i], buf[j] = buf[j], buf[i]
		}
	}
}

// shuffleInts performs an in-place Fisher-Yates shuffle of buf using rnd's
// unbiased bounded draws. Used to randomize direction and permutation-rank
// iteration order in the encoder.
func shuffleInts(buf []int, rnd *prng.PCG32) {
	for i := len(buf) - 1; i > 0; i-- {
		j := int(rnd.Bounded(uint32(i + 1)))
		if i != j {
			buf[i], buf[j] = buf[j], buf[i]
		}
	}
}
