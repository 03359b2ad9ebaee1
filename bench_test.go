package skiplist

import (
	"fmt"
	"math/rand"
	"testing"
)

func BenchmarkAdd(b *testing.B) {
	for _, size := range []int{1 << 10, 1 << 14, 1 << 18} {
		b.Run(fmt.Sprintf("N%d", size), func(b *testing.B) {
			r := rand.New(rand.NewSource(1))
			l, _ := NewOrdered[int, int]()
			l.Seed(1)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if l.Count() == size {
					b.StopTimer()
					l.Clear(nil)
					b.StartTimer()
				}
				_ = l.Add(r.Int(), i)
			}
		})
	}
}

func BenchmarkGet(b *testing.B) {
	const keyRange = 1 << 14
	l, _ := NewOrdered[int, int]()
	l.Seed(1)
	for i := 0; i < keyRange; i++ {
		_ = l.Add(i, i)
	}
	r := rand.New(rand.NewSource(2))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = l.Get(r.Intn(keyRange))
	}
}

func BenchmarkMixedWorkload(b *testing.B) {
	workloads := []struct {
		name         string
		writePercent int
	}{
		{name: "ReadMostly", writePercent: 5},
		{name: "Mixed", writePercent: 50},
		{name: "WriteHeavy", writePercent: 90},
	}
	const keyRange = 1 << 12

	for _, workload := range workloads {
		b.Run(workload.name, func(b *testing.B) {
			l, _ := NewOrdered[int, int]()
			l.Seed(3)
			for i := 0; i < keyRange/2; i++ {
				_, _, _ = l.Set(i, i)
			}
			r := rand.New(rand.NewSource(4))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				key := r.Intn(keyRange)
				if r.Intn(100) < workload.writePercent {
					if r.Intn(2) == 0 {
						_, _, _ = l.Set(key, i)
					} else {
						_, _ = l.Delete(key)
					}
				} else {
					if r.Intn(2) == 0 {
						_, _ = l.Get(key)
					} else {
						_ = l.Member(key)
					}
				}
			}
		})
	}
}

func BenchmarkPopFirst(b *testing.B) {
	l, _ := NewOrdered[int, int]()
	l.Seed(5)
	r := rand.New(rand.NewSource(6))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if l.Empty() {
			b.StopTimer()
			for j := 0; j < 1<<12; j++ {
				_ = l.Add(r.Int(), j)
			}
			b.StartTimer()
		}
		_, _, _ = l.PopFirst()
	}
}
