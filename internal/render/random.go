package render

import (
	"crypto/sha256"
	"encoding/binary"
	"math/rand/v2"
	"strconv"
)

// NewRand returns the random source used to build one exam version. An empty seed
// gives a fresh, unreproducible stream; otherwise the stream is derived from the
// seed and version so each version can be rebuilt on its own.
func NewRand(seed string, version int) *rand.Rand {
	if seed == "" {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	hi, lo := deriveSeed(seed, version)
	return rand.New(rand.NewPCG(hi, lo))
}

// deriveSeed maps (seed, version) onto a stable pair of PCG seeds.
func deriveSeed(seed string, version int) (uint64, uint64) {
	h := sha256.Sum256([]byte(seed + "|" + strconv.Itoa(version)))
	return binary.LittleEndian.Uint64(h[:8]), binary.LittleEndian.Uint64(h[8:16])
}
