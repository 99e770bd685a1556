package enhancer

import (
	"math/rand"
	"time"
)

// Rand is the random source used by the probabilistic stages. It is an
// injection point: production uses math/rand, tests substitute a
// deterministic source so stage output becomes reproducible.
type Rand interface {
	// Float64 returns the next value in [0, 1).
	Float64() float64
	// Intn returns a value in [0, n). n must be positive.
	Intn(n int) int
}

func newDefaultRand() Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
