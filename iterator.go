package skiplist

// IterFunc is invoked once per entry during Iter and IterFrom. Returning
// false stops the walk.
type IterFunc[K, V any] func(key K, value V) bool

// Iter walks every entry in ascending key order. Mutating the list from fn
// or concurrently is forbidden.
func (l *List[K, V]) Iter(fn IterFunc[K, V]) {
	l.walk(l.head.next[0], fn)
}

// IterFrom walks in ascending key order starting at the first entry
// comparing equal to key. It does nothing when no entry matches.
func (l *List[K, V]) IterFrom(key K, fn IterFunc[K, V]) {
	cur := l.firstEqual(key)
	if cur == nil {
		return
	}
	l.walk(cur, fn)
}

func (l *List[K, V]) walk(cur *node[K, V], fn IterFunc[K, V]) {
	for !l.isSentinel(cur) {
		if !fn(cur.key, cur.val) {
			return
		}
		cur = cur.next[0]
	}
}
