package world_test

import (
	"testing"

	"github.com/plus3/invaders/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolAppendGetDelete(t *testing.T) {
	var p world.Pool[string]

	a := p.Append("a")
	b := p.Append("b")
	assert.Equal(t, 2, p.Len())
	assert.Equal(t, "b", *p.Get(b))

	require.True(t, p.Delete(a))
	assert.False(t, p.Delete(a))
	assert.Nil(t, p.Get(a))
	assert.False(t, p.Has(a))
	assert.Equal(t, 1, p.Free())

	c := p.Append("c")
	assert.Equal(t, a, c, "freed slot is reused")
	assert.Equal(t, 0, p.Free())
	assert.Equal(t, 2, p.Cap())
}

func TestPoolOutOfRange(t *testing.T) {
	var p world.Pool[int]
	assert.Nil(t, p.Get(-1))
	assert.Nil(t, p.Get(0))
	assert.False(t, p.Delete(5))
}

func TestPoolSpansBlocks(t *testing.T) {
	var p world.Pool[int]
	for i := 0; i < 200; i++ {
		p.Append(i)
	}

	sum := 0
	for i, v := range p.Iter() {
		assert.Equal(t, i, *v)
		sum += *v
	}
	assert.Equal(t, 199*200/2, sum)

	p.Clear()
	assert.Equal(t, 0, p.Len())
	assert.Equal(t, 0, p.Cap())
}

func TestPoolDeleteDuringIter(t *testing.T) {
	var p world.Pool[int]
	for i := 0; i < 100; i++ {
		p.Append(i)
	}

	seen := make(map[int]int)
	for i, v := range p.Iter() {
		val := *v
		seen[val]++
		p.Delete(i)
		// Also drop the next slot so it must be skipped.
		if val%10 == 0 {
			p.Delete(i + 1)
		}
	}

	assert.Equal(t, 0, p.Len())
	for v, n := range seen {
		assert.Equal(t, 1, n, "value %d", v)
		assert.NotEqual(t, 1, v%10, "value %d was deleted before it was reached", v)
	}
	assert.Len(t, seen, 90)
}

func TestPoolDeleteZeroesYieldedSlot(t *testing.T) {
	var p world.Pool[int]
	p.Append(5)

	for i, v := range p.Iter() {
		p.Delete(i)
		assert.Equal(t, 0, *v)
	}
}

func TestPoolIterStopsEarly(t *testing.T) {
	var p world.Pool[int]
	for i := 0; i < 10; i++ {
		p.Append(i)
	}

	n := 0
	for range p.Iter() {
		n++
		if n == 3 {
			break
		}
	}
	assert.Equal(t, 3, n)
}
