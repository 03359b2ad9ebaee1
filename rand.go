package skiplist

import (
	"math/bits"
	"time"
)

const defaultSeed = uint64(0xdeadbeefcafebabe)

func newRandomSeed() uint64 {
	seed := uint64(time.Now().UnixNano())
	if seed == 0 {
		seed = defaultSeed
	}
	return seed
}

// rng is a xorshift64* generator owned by one list. Keeping the state on
// the list (instead of a process-wide source) makes height sequences
// reproducible via Seed.
type rng struct {
	state uint64
}

func (r *rng) seed(seed uint64) {
	if seed == 0 {
		seed = defaultSeed
	}
	r.state = seed
}

func (r *rng) next() uint64 {
	x := r.state
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	if x == 0 {
		x = defaultSeed
	}
	r.state = x
	return x * 2685821657736338717
}

// HeightSource replaces the built-in height generator. Implementations must
// return heights in [1, max height] with the standard 50%-per-level decay;
// anything outside that range is a contract violation and panics.
type HeightSource func() int

// randomHeight draws a geometric height by counting low-order set bits of
// one random word: each trailing zero halves the probability of the next
// level, capped at the configured maximum.
func (l *List[K, V]) randomHeight() int {
	if l.heightFn != nil {
		h := l.heightFn()
		if h < 1 || h > l.maxHeight {
			panic("skiplist: height source out of range")
		}
		return h
	}
	h := bits.TrailingZeros64(l.rng.next()) + 1
	if h > l.maxHeight {
		h = l.maxHeight
	}
	return h
}

// Seed resets the list's random source for reproducible height sequences.
// A zero seed selects the fixed default.
func (l *List[K, V]) Seed(seed uint64) {
	l.rng.seed(seed)
}
