package skiplist

// Allocator is the memory accounting capability injected at construction.
// The list charges every node, the head, and the list record itself through
// it, so a caller can supply arena, pool, or tracking semantics. Reserve may
// refuse; the refusing operation fails with ErrAllocFailed and leaves the
// list in its prior, consistent state.
type Allocator interface {
	// Reserve asks for size bytes. Returning false denies the allocation.
	Reserve(size int) bool
	// Release returns size bytes previously obtained from Reserve.
	Release(size int)
}

// nopAllocator is substituted when no allocator is supplied: the Go runtime
// owns the memory and accounting is a no-op.
type nopAllocator struct{}

func (nopAllocator) Reserve(int) bool { return true }
func (nopAllocator) Release(int)      {}

// CountingAllocator tracks live and cumulative reservations. A non-zero
// Budget caps live bytes, which makes it a failure-injection vehicle as
// well as a usage tracker. Not safe for concurrent use, like the lists it
// serves.
type CountingAllocator struct {
	// Budget is the maximum number of live bytes; zero means unlimited.
	Budget int

	live     int
	total    int
	failures int
}

func (a *CountingAllocator) Reserve(size int) bool {
	if a.Budget > 0 && a.live+size > a.Budget {
		a.failures++
		return false
	}
	a.live += size
	a.total += size
	return true
}

func (a *CountingAllocator) Release(size int) {
	a.live -= size
}

// Live reports the bytes currently reserved.
func (a *CountingAllocator) Live() int { return a.live }

// Total reports the cumulative bytes ever reserved.
func (a *CountingAllocator) Total() int { return a.total }

// Failures reports how many reservations the budget refused.
func (a *CountingAllocator) Failures() int { return a.failures }
