package game

import (
	"encoding/binary"

	"lukechampine.com/frand"
)

// Source is the randomness a secret is drawn from.
type Source interface {
	// Intn returns a uniform int in [0, n). n must be > 0.
	Intn(n int) int
}

const (
	seededBufSize = 1024
	seededRounds  = 12
)

// NewSource returns the process-wide source for drawing secrets. A seed of
// zero means a fresh crypto-seeded generator; any other seed gives a
// generator that replays the same secrets every time.
func NewSource(seed int64) Source {
	if seed == 0 {
		return frand.New()
	}
	var key [32]byte
	// Spread the seed over the whole ChaCha key so nearby seeds differ.
	for i := 0; i < 4; i++ {
		binary.LittleEndian.PutUint64(key[i*8:], uint64(seed)^(uint64(i)*0x9E3779B97F4A7C15))
	}
	return frand.NewCustom(key[:], seededBufSize, seededRounds)
}
