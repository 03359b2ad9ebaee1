package skiplist

// Add inserts a new entry for key, regardless of duplicates.
func (l *List[K, V]) Add(key K, value V) error {
	_, _, err := l.addOrSet(key, value, false)
	return err
}

// Set overwrites the value of the first entry comparing equal to key and
// returns the previous value. If no entry matches, it inserts one like Add
// and reports no previous value.
func (l *List[K, V]) Set(key K, value V) (prev V, replaced bool, err error) {
	return l.addOrSet(key, value, true)
}

func (l *List[K, V]) addOrSet(key K, value V, replace bool) (prev V, replaced bool, err error) {
	head := l.head
	curHeight := head.height
	prevs := make([]*node[K, V], curHeight)

	if replace {
		l.findPrevs(key, prevs)
		if next := prevs[0].next[0]; !l.isSentinel(next) && l.compare(next.key, key) == 0 {
			prev = next.val
			next.val = value
			l.metrics.Replacements++
			return prev, true, nil
		}
	} else {
		l.findInsertPrevs(key, prevs)
	}

	height := l.randomHeight()
	nn, err := l.newNode(height, key, value)
	if err != nil {
		return prev, false, err
	}

	if height > curHeight {
		if err := l.growHead(nn); err != nil {
			l.freeNode(nn)
			return prev, false, err
		}
		// Predecessor entries that referenced the old head now belong to
		// the reallocated one.
		for i := range prevs {
			if prevs[i] == head {
				prevs[i] = l.head
			}
		}
	}

	span := height
	if curHeight < span {
		span = curHeight
	}
	for i := 0; i < span; i++ {
		nn.next[i] = prevs[i].next[i]
		prevs[i].next[i] = nn
	}
	l.count++
	l.metrics.Inserts++
	l.metrics.Heights[height-1]++
	return prev, false, nil
}

// growHead reallocates the head at the new node's height. Existing levels
// copy over; the new top levels point straight at the new tallest node,
// which has no predecessor there besides the head.
func (l *List[K, V]) growHead(nn *node[K, V]) error {
	old := l.head
	var zk K
	var zv V
	head, err := l.newNode(nn.height, zk, zv)
	if err != nil {
		return err
	}
	copy(head.next[:old.height], old.next)
	for i := old.height; i < nn.height; i++ {
		head.next[i] = nn
	}
	l.head = head
	l.freeNode(old)
	l.metrics.HeadGrowths++
	return nil
}

// Delete removes the first entry comparing equal to key and returns its
// value. It reports false when no entry matches.
func (l *List[K, V]) Delete(key K) (V, bool) {
	prevs := make([]*node[K, V], l.head.height)
	l.findPrevs(key, prevs)

	doomed := prevs[0].next[0]
	if l.isSentinel(doomed) || l.compare(doomed.key, key) != 0 {
		var zero V
		return zero, false
	}
	for i := 0; i < doomed.height; i++ {
		prevs[i].next[i] = doomed.next[i]
	}
	val := doomed.val
	l.freeNode(doomed)
	l.count--
	l.metrics.Removals++
	return val, true
}

// DeleteAll removes every entry comparing equal to key and returns how many
// were removed. fn, if non-nil, observes each pair before its node is
// released, in level-0 order: oldest insertion first.
//
// Equal keys are contiguous, so the removal records, per level up to the
// tallest doomed tower, the first node past the run, then relinks the
// original predecessors to those successors once instead of once per node.
func (l *List[K, V]) DeleteAll(key K, fn RemoveFunc[K, V]) int {
	curHeight := l.head.height
	prevs := make([]*node[K, V], curHeight)
	l.findPrevs(key, prevs)

	doomed := prevs[0].next[0]
	if l.isSentinel(doomed) || l.compare(doomed.key, key) != 0 {
		return 0
	}

	nexts := make([]*node[K, V], curHeight)
	for i := range nexts {
		nexts[i] = l.sentinel
	}

	tallest := 0
	removed := 0
	for {
		next := doomed.next[0]
		if doomed.height > tallest {
			tallest = doomed.height
		}
		for i := 0; i < doomed.height; i++ {
			nexts[i] = doomed.next[i]
		}
		if fn != nil {
			fn(doomed.key, doomed.val)
		}
		l.freeNode(doomed)
		l.count--
		removed++
		if l.isSentinel(next) || l.compare(next.key, key) != 0 {
			break
		}
		doomed = next
	}

	for i := 0; i < tallest; i++ {
		prevs[i].next[i] = nexts[i]
	}
	l.metrics.Removals += int64(removed)
	return removed
}

// PopFirst removes and returns the minimum entry. The head is the universal
// predecessor at every level, so no predecessor search is needed.
func (l *List[K, V]) PopFirst() (K, V, bool) {
	first := l.head.next[0]
	if l.isSentinel(first) {
		var zk K
		var zv V
		return zk, zv, false
	}
	for i := 0; i < first.height; i++ {
		l.head.next[i] = first.next[i]
	}
	key, val := first.key, first.val
	l.freeNode(first)
	l.count--
	l.metrics.Removals++
	return key, val, true
}

// PopLast removes and returns the maximum entry.
func (l *List[K, V]) PopLast() (K, V, bool) {
	if l.count == 0 {
		var zk K
		var zv V
		return zk, zv, false
	}
	prevs := make([]*node[K, V], l.head.height)
	last := l.findLastPrevs(prevs)
	for i := 0; i < last.height; i++ {
		prevs[i].next[i] = l.sentinel
	}
	key, val := last.key, last.val
	l.freeNode(last)
	l.count--
	l.metrics.Removals++
	return key, val, true
}
