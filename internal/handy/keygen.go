package handy

import (
	"crypto/sha256"
	"encoding/binary"

	"github.com/ombreve/handycipher/internal/prng"
)

// KeyFromPassword derives a 51-character key from an arbitrary password by
// hashing it with SHA-256 and using the hash to seed a PCG32 generator that
// shuffles the fixed key alphabet. The SHA-256 output is interpreted as two
// little-endian uint64 values: initState from bytes [0:8], initSeq from
// bytes [8:16] with its top bit cleared, matching the reference tool's
// pcg_seed(*(uint64_t*)hash, *(uint64_t*)(hash+8) & 0x7FFFFFFFFFFFFFFF) call
// on a little-endian host.
func KeyFromPassword(password string) string {
	hash := sha256.Sum256([]byte(password))

	initState := binary.LittleEndian.Uint64(hash[0:8])
	initSeq := binary.LittleEndian.Uint64(hash[8:16]) & 0x7FFFFFFFFFFFFFFF

	rnd := prng.New(initState, initSeq)

	key := []byte(keyAlphabet)
	shuffleBytes(key, rnd)
	return string(key)
}
