package evade

import (
	"math/rand"
	"sync"
	"time"
)

// Rand is the randomness NextPosition draws from. *math/rand.Rand satisfies it.
type Rand interface {
	// Float64 returns a number in [0.0, 1.0).
	Float64() float64
}

// NewRand returns a deterministic source for seed. It is not safe for concurrent use.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

var defaultRand Rand = &lockedRand{r: NewRand(time.Now().UnixNano())}

// DefaultRand returns the shared clock seeded source used when no Rand is given.
// It is safe for concurrent use.
func DefaultRand() Rand {
	return defaultRand
}

type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (lr *lockedRand) Float64() float64 {
	lr.mu.Lock()
	defer lr.mu.Unlock()
	return lr.r.Float64()
}
