package skiplist

import (
	"fmt"
	"io"
)

// Metrics accumulates operation counters for one list. Plain integers: the
// list is single-threaded, so there is nothing to synchronize.
type Metrics struct {
	// Inserts counts nodes created by Add and the insert path of Set.
	Inserts int64
	// Replacements counts in-place overwrites performed by Set.
	Replacements int64
	// Removals counts nodes released by Delete, DeleteAll, PopFirst,
	// PopLast, and Clear.
	Removals int64
	// HeadGrowths counts head reallocations forced by tall inserts.
	HeadGrowths int64
	// Heights histograms generated node heights; index is height-1.
	Heights [MaxHeight]int64
}

// Metrics returns a snapshot of the list's counters.
func (l *List[K, V]) Metrics() Metrics {
	return l.metrics
}

// Dump renders the level structure to w, one line per level from the top
// down, with each node's key and height plus a per-level count. Diagnostic
// only; the output format is not part of the contract.
func (l *List[K, V]) Dump(w io.Writer) {
	fmt.Fprintf(w, "height=%d count=%d\n", l.head.height, l.count)
	for lvl := l.head.height - 1; lvl >= 0; lvl-- {
		fmt.Fprintf(w, "L%02d:", lvl)
		n := 0
		for cur := l.head.next[lvl]; !l.isSentinel(cur); cur = cur.next[lvl] {
			if cur.height > l.head.height {
				panic("skiplist: node taller than head")
			}
			fmt.Fprintf(w, " %v/%d", cur.key, cur.height)
			n++
		}
		fmt.Fprintf(w, " (%d)\n", n)
	}
}
