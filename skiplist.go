// Package skiplist provides a generic ordered associative container backed
// by a probabilistic skip list: expected O(log n) insert, lookup, delete,
// and min/max extraction under a caller-supplied total order.
//
// Lists are not safe for concurrent use. Callers mixing goroutines must
// synchronize externally; mutating a list during Iter/IterFrom is likewise
// forbidden.
package skiplist

import (
	"cmp"
	"errors"
)

var (
	// ErrNilCompare is returned by New when no comparator is supplied.
	ErrNilCompare = errors.New("skiplist: nil compare function")
	// ErrAllocFailed is returned when the allocator refuses a reservation.
	// The failing operation performs no structural change.
	ErrAllocFailed = errors.New("skiplist: allocation refused")
	// ErrBadMaxHeight is returned by New for a max height outside [1, MaxHeight].
	ErrBadMaxHeight = errors.New("skiplist: max height out of range")
)

// CompareFunc defines the total order over keys: negative if a sorts before
// b, zero if they are equal, positive if a sorts after b. Distinct entries
// may compare equal; the list keeps duplicates.
type CompareFunc[K any] func(a, b K) int

// RemoveFunc observes a key/value pair as it is removed by DeleteAll,
// Clear, or Free, before the node is released. Callers use it to free
// resources held by the pair.
type RemoveFunc[K, V any] func(key K, value V)

type config struct {
	alloc     Allocator
	maxHeight int
	heightFn  HeightSource
}

// Option configures a List at construction.
type Option func(*config)

// WithAllocator injects the memory accounting capability. The default
// performs no accounting.
func WithAllocator(a Allocator) Option {
	return func(c *config) { c.alloc = a }
}

// WithMaxHeight caps node towers at h levels, 1 <= h <= MaxHeight.
func WithMaxHeight(h int) Option {
	return func(c *config) { c.maxHeight = h }
}

// WithHeightSource replaces the built-in geometric height generator,
// typically to make tower shapes deterministic in tests.
func WithHeightSource(fn HeightSource) Option {
	return func(c *config) { c.heightFn = fn }
}

// List is an ordered collection of key/value pairs. The head node's height
// tracks the tallest stored node; the sentinel terminates every level.
type List[K, V any] struct {
	compare   CompareFunc[K]
	alloc     Allocator
	head      *node[K, V]
	sentinel  *node[K, V]
	count     int
	maxHeight int
	heightFn  HeightSource
	rng       rng
	metrics   Metrics
}

// New creates an empty list ordered by compare. The comparator is
// mandatory; allocator, max height, and height source are optional.
func New[K, V any](compare CompareFunc[K], opts ...Option) (*List[K, V], error) {
	if compare == nil {
		return nil, ErrNilCompare
	}
	cfg := config{maxHeight: MaxHeight}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.maxHeight < 1 || cfg.maxHeight > MaxHeight {
		return nil, ErrBadMaxHeight
	}
	if cfg.alloc == nil {
		cfg.alloc = nopAllocator{}
	}

	l := &List[K, V]{
		compare:   compare,
		alloc:     cfg.alloc,
		maxHeight: cfg.maxHeight,
		heightFn:  cfg.heightFn,
	}
	l.rng.seed(newRandomSeed())

	if !l.alloc.Reserve(listSize[K, V]()) {
		return nil, ErrAllocFailed
	}
	l.sentinel = &node[K, V]{}

	var zk K
	var zv V
	head, err := l.newNode(1, zk, zv)
	if err != nil {
		l.alloc.Release(listSize[K, V]())
		return nil, err
	}
	l.head = head
	return l, nil
}

// NewOrdered creates a list over a naturally ordered key type, using
// cmp.Compare as the comparator.
func NewOrdered[K cmp.Ordered, V any](opts ...Option) (*List[K, V], error) {
	return New[K, V](cmp.Compare[K], opts...)
}

// Count returns the number of stored entries.
func (l *List[K, V]) Count() int { return l.count }

// Empty reports whether the list holds no entries.
func (l *List[K, V]) Empty() bool { return l.count == 0 }

// Get returns the value of the first entry comparing equal to key.
func (l *List[K, V]) Get(key K) (V, bool) {
	if n := l.firstEqual(key); n != nil {
		return n.val, true
	}
	var zero V
	return zero, false
}

// Member reports whether any entry compares equal to key.
func (l *List[K, V]) Member(key K) bool {
	return l.firstEqual(key) != nil
}

// First returns the minimum entry without removing it.
func (l *List[K, V]) First() (K, V, bool) {
	first := l.head.next[0]
	if l.isSentinel(first) {
		var zk K
		var zv V
		return zk, zv, false
	}
	return first.key, first.val, true
}

// Last returns the maximum entry without removing it. It descends from the
// head's top level, backing off a level whenever the sentinel is hit, so
// the walk stays expected O(log n).
func (l *List[K, V]) Last() (K, V, bool) {
	if l.count == 0 {
		var zk K
		var zv V
		return zk, zv, false
	}
	cur := l.head
	for lvl := l.head.height - 1; lvl >= 0; lvl-- {
		for !l.isSentinel(cur.next[lvl]) {
			cur = cur.next[lvl]
		}
	}
	return cur.key, cur.val, true
}

// Clear removes every entry, invoking fn (if non-nil) on each pair before
// its node is released, and leaves the empty list reusable. It returns the
// number of entries removed.
func (l *List[K, V]) Clear(fn RemoveFunc[K, V]) int {
	cur := l.head.next[0]
	removed := 0
	for !l.isSentinel(cur) {
		doomed := cur
		cur = doomed.next[0]
		if fn != nil {
			fn(doomed.key, doomed.val)
		}
		l.freeNode(doomed)
		removed++
	}
	for i := range l.head.next {
		l.head.next[i] = l.sentinel
	}
	l.count = 0
	l.metrics.Removals += int64(removed)
	return removed
}

// Free clears the list and releases the head and the list record itself.
// The list must not be used afterwards. It returns the number of entries
// removed.
func (l *List[K, V]) Free(fn RemoveFunc[K, V]) int {
	removed := l.Clear(fn)
	l.freeNode(l.head)
	l.alloc.Release(listSize[K, V]())
	l.head = nil
	l.sentinel = nil
	return removed
}
