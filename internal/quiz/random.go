package quiz

import (
	crypto "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
	"time"
)

// Random is the randomness the engine needs. *rand.Rand satisfies it.
type Random interface {
	IntN(n int) int
	Shuffle(n int, swap func(i, j int))
}

// NewRandom returns a deterministic source for the given seed.
func NewRandom(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewSeededRandom seeds a source from crypto/rand, falling back to the clock.
func NewSeededRandom() *rand.Rand {
	var b [16]byte
	if _, err := crypto.Read(b[:]); err != nil {
		now := uint64(time.Now().UnixNano())
		return rand.New(rand.NewPCG(now, now>>1))
	}
	return rand.New(rand.NewPCG(binary.LittleEndian.Uint64(b[:8]), binary.LittleEndian.Uint64(b[8:])))
}
