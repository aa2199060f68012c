package engine

import (
	"math/rand"
	"sync"
)

// Rand is the randomness the engine consumes. Tests swap in a fixed
// sequence to make comedic picks deterministic.
type Rand interface {
	// Intn returns a value in [0, n). n must be > 0.
	Intn(n int) int
}

type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewLockedRand returns a seeded Rand safe for concurrent use.
func NewLockedRand(seed int64) Rand {
	return &lockedRand{r: rand.New(rand.NewSource(seed))}
}

func (l *lockedRand) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Intn(n)
}

// pick returns a random element of items, or the zero value when empty.
func pick[T any](r Rand, items []T) T {
	var zero T
	if len(items) == 0 {
		return zero
	}
	return items[r.Intn(len(items))]
}

// sample returns k distinct elements of items in random order. When k
// exceeds len(items) the whole (shuffled) slice comes back.
func sample[T any](r Rand, items []T, k int) []T {
	if k > len(items) {
		k = len(items)
	}
	out := make([]T, len(items))
	copy(out, items)
	for i := 0; i < k; i++ {
		j := i + r.Intn(len(out)-i)
		out[i], out[j] = out[j], out[i]
	}
	return out[:k]
}

// randRange returns a value in [lo, hi].
func randRange(r Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo+1)
}
