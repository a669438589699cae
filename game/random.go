package game

import (
	"hash/fnv"
	"math/rand"
	"time"
)

// RandomSource produces uniform values in [0, 1). *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

func NewSeededSource(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// SeedFromPhrase turns a human-friendly phrase into a seed, so boards can be
// shared by name
func SeedFromPhrase(phrase string) int64 {
	h := fnv.New64a()
	h.Write([]byte(phrase))
	return int64(h.Sum64())
}

func timeSeed() int64 {
	return time.Now().UnixNano()
}

// pick draws an index in [0, n)
func pick(rand RandomSource, n int) int {
	i := int(rand.Float64() * float64(n))
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}
