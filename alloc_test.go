package skiplist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountingAllocatorAccounting(t *testing.T) {
	a := &CountingAllocator{}

	require.True(t, a.Reserve(100))
	require.True(t, a.Reserve(50))
	assert.Equal(t, 150, a.Live())
	assert.Equal(t, 150, a.Total())

	a.Release(100)
	assert.Equal(t, 50, a.Live())
	assert.Equal(t, 150, a.Total(), "total never decreases")
	assert.Zero(t, a.Failures())
}

func TestCountingAllocatorBudget(t *testing.T) {
	a := &CountingAllocator{Budget: 100}

	require.True(t, a.Reserve(80))
	require.False(t, a.Reserve(30))
	assert.Equal(t, 80, a.Live(), "refused reservations leave no trace")
	assert.Equal(t, 1, a.Failures())

	a.Release(80)
	require.True(t, a.Reserve(100))
}

func TestAllocatorChargesEveryNode(t *testing.T) {
	a := &CountingAllocator{}
	l, err := NewOrdered[int, int](
		WithAllocator(a),
		WithHeightSource(scriptedHeights(1)),
	)
	require.NoError(t, err)

	base := a.Live()
	require.NoError(t, l.Add(1, 1))
	assert.Equal(t, base+nodeSize[int, int](1), a.Live())

	_, ok := l.Delete(1)
	require.True(t, ok)
	assert.Equal(t, base, a.Live(), "delete returns the node's charge")
}

func TestHeadGrowthSwapsCharges(t *testing.T) {
	a := &CountingAllocator{}
	l, err := NewOrdered[int, int](
		WithAllocator(a),
		WithHeightSource(scriptedHeights(4)),
	)
	require.NoError(t, err)

	before := a.Live()
	require.NoError(t, l.Add(1, 1))
	// One height-4 node, plus the head regrown from 1 to 4 levels.
	wantDelta := nodeSize[int, int](4) + nodeSize[int, int](4) - nodeSize[int, int](1)
	assert.Equal(t, before+wantDelta, a.Live())
	assert.Zero(t, a.Failures())
}
