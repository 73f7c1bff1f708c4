// Package entropy supplies seeds for the simulation's random sources.
package entropy

import (
	"crypto/rand"
	"encoding/binary"
	mrand "math/rand"
	"time"
)

// Seed returns a random non-zero int64 from crypto/rand.
// Falls back to the wall clock if crypto/rand is unavailable.
func Seed() int64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return time.Now().UnixNano() | 1
	}
	// Keep it positive and non-zero so it round-trips through configs.
	n := int64(binary.LittleEndian.Uint64(buf[:]) >> 1)
	if n == 0 {
		return 1
	}
	return n
}

// Resolve returns seed, or a fresh random seed when seed is 0.
func Resolve(seed int64) int64 {
	if seed == 0 {
		return Seed()
	}
	return seed
}

// NewRand creates a deterministic generator for seed (0 picks a random seed).
func NewRand(seed int64) *mrand.Rand {
	return mrand.New(mrand.NewSource(Resolve(seed)))
}
