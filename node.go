package skiplist

import "unsafe"

// MaxHeight is the tallest tower any node may occupy. It bounds the
// predecessor arrays used by every mutation and clamps height generation.
const MaxHeight = 32

// node holds one key/value pair and its per-level forward links.
// height is fixed at creation; len(next) == height.
type node[K, V any] struct {
	height int
	key    K
	val    V
	next   []*node[K, V]
}

const ptrSize = int(unsafe.Sizeof(uintptr(0)))

// nodeSize is the accounting charge for a node of the given height:
// the node header plus one forward link per level.
func nodeSize[K, V any](height int) int {
	return int(unsafe.Sizeof(node[K, V]{})) + height*ptrSize
}

func listSize[K, V any]() int {
	return int(unsafe.Sizeof(List[K, V]{}))
}

// newNode charges the allocator and builds a node with every forward link
// pointing at the list's sentinel. The head node is created the same way,
// with zero key/value placeholders.
func (l *List[K, V]) newNode(height int, key K, val V) (*node[K, V], error) {
	if height < 1 || height > l.maxHeight {
		panic("skiplist: node height out of range")
	}
	if !l.alloc.Reserve(nodeSize[K, V](height)) {
		return nil, ErrAllocFailed
	}
	n := &node[K, V]{
		height: height,
		key:    key,
		val:    val,
		next:   make([]*node[K, V], height),
	}
	for i := range n.next {
		n.next[i] = l.sentinel
	}
	return n, nil
}

func (l *List[K, V]) freeNode(n *node[K, V]) {
	l.alloc.Release(nodeSize[K, V](n.height))
}

// isSentinel detects the terminal marker by identity. The sentinel carries
// no key and must never reach the comparator.
func (l *List[K, V]) isSentinel(n *node[K, V]) bool {
	return n == l.sentinel
}
