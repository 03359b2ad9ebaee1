package skiplist

// findPrevs fills prevs[lvl] with the node immediately preceding the first
// entry comparing equal to key at every level of the head. Used by Set,
// Delete, and DeleteAll, which all target the oldest equal entry.
// len(prevs) must be at least the head height.
func (l *List[K, V]) findPrevs(key K, prevs []*node[K, V]) {
	l.locate(key, prevs, false)
}

// findInsertPrevs stops after any run of equal keys instead of before it,
// so Add appends duplicates behind their elders and level-0 order among
// equal keys stays insertion order.
func (l *List[K, V]) findInsertPrevs(key K, prevs []*node[K, V]) {
	l.locate(key, prevs, true)
}

// locate walks top-down: advance while the successor sorts before the
// target position, record the predecessor and descend otherwise.
func (l *List[K, V]) locate(key K, prevs []*node[K, V], afterEquals bool) {
	cur := l.head
	for lvl := l.head.height - 1; lvl >= 0; lvl-- {
		for {
			next := cur.next[lvl]
			if l.isSentinel(next) {
				break
			}
			res := l.compare(next.key, key)
			if res < 0 || (afterEquals && res == 0) {
				cur = next
				continue
			}
			break
		}
		prevs[lvl] = cur
	}
}

// firstEqual returns the first node comparing equal to key, or nil. The
// descent continues on equality above level 0 so that, with duplicates, the
// leftmost match is found.
func (l *List[K, V]) firstEqual(key K) *node[K, V] {
	cur := l.head
	for lvl := l.head.height - 1; lvl >= 0; lvl-- {
		for {
			next := cur.next[lvl]
			if l.isSentinel(next) {
				break
			}
			res := l.compare(next.key, key)
			if res < 0 {
				cur = next
				continue
			}
			if lvl == 0 && res == 0 {
				return next
			}
			break
		}
	}
	return nil
}

// findLastPrevs locates, per level, the node whose forward link skips
// directly over the final node to the sentinel, and returns that final
// node. The list must be non-empty.
func (l *List[K, V]) findLastPrevs(prevs []*node[K, V]) *node[K, V] {
	cur := l.head
	lvl := l.head.height - 1
	for lvl >= 0 {
		next := cur.next[lvl]
		if l.isSentinel(next) || l.isSentinel(next.next[lvl]) {
			prevs[lvl] = cur
			lvl--
		} else {
			cur = next
		}
	}
	return cur.next[0]
}
