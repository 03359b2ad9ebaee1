package skiplist_test

import (
	"fmt"

	"github.com/ordset/skiplist"
)

func ExampleNew() {
	l, _ := skiplist.New[string, int](func(a, b string) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	})
	l.Add("b", 2)
	l.Add("a", 1)
	fmt.Println(l.Count())
	// Output: 2
}

func ExampleList_Set() {
	l, _ := skiplist.NewOrdered[int, string]()
	l.Set(1, "one")
	prev, replaced, _ := l.Set(1, "uno")
	fmt.Println(prev, replaced, l.Count())
	// Output: one true 1
}

func ExampleList_Iter() {
	l, _ := skiplist.NewOrdered[int, string]()
	l.Add(3, "three")
	l.Add(1, "one")
	l.Add(2, "two")
	l.Iter(func(k int, v string) bool {
		fmt.Printf("%d:%s ", k, v)
		return true
	})
	fmt.Println()
	// Output: 1:one 2:two 3:three
}

func ExampleList_DeleteAll() {
	l, _ := skiplist.NewOrdered[int, string]()
	l.Add(5, "a")
	l.Add(5, "b")
	l.Add(5, "c")
	removed := l.DeleteAll(5, func(k int, v string) {
		fmt.Printf("%d:%s ", k, v)
	})
	fmt.Println(removed)
	// Output: 5:a 5:b 5:c 3
}

func ExampleList_PopFirst() {
	l, _ := skiplist.NewOrdered[int, string]()
	l.Add(2, "two")
	l.Add(1, "one")
	k, v, _ := l.PopFirst()
	fmt.Println(k, v, l.Count())
	// Output: 1 one 1
}
