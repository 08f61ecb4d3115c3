package world

import "iter"

const blockSize = 64

// Pool stores values of type T in fixed-size blocks. A slot index stays valid
// until the slot is deleted; deleting never moves other values, which makes it
// safe to delete while iterating.
type Pool[T any] struct {
	blocks    [][blockSize]T
	filled    [][blockSize]bool
	freeSlots []int
	nextIndex int
	live      int
}

// Append stores item and returns its slot index. Freed slots are reused first.
func (p *Pool[T]) Append(item T) int {
	var index int
	if n := len(p.freeSlots); n > 0 {
		index = p.freeSlots[n-1]
		p.freeSlots = p.freeSlots[:n-1]
	} else {
		index = p.nextIndex
		p.nextIndex++
		if index/blockSize >= len(p.blocks) {
			p.blocks = append(p.blocks, [blockSize]T{})
			p.filled = append(p.filled, [blockSize]bool{})
		}
	}

	blockIdx := index / blockSize
	slotIdx := index % blockSize

	p.blocks[blockIdx][slotIdx] = item
	p.filled[blockIdx][slotIdx] = true
	p.live++
	return index
}

// Get returns a pointer to the value at index, or nil if the slot is empty.
func (p *Pool[T]) Get(index int) *T {
	if !p.Has(index) {
		return nil
	}
	return &p.blocks[index/blockSize][index%blockSize]
}

// Has reports whether the slot at index holds a value.
func (p *Pool[T]) Has(index int) bool {
	if index < 0 || index >= p.nextIndex {
		return false
	}
	return p.filled[index/blockSize][index%blockSize]
}

// Delete empties the slot at index. It reports whether a value was removed.
func (p *Pool[T]) Delete(index int) bool {
	if !p.Has(index) {
		return false
	}

	blockIdx := index / blockSize
	slotIdx := index % blockSize

	var zero T
	p.filled[blockIdx][slotIdx] = false
	p.blocks[blockIdx][slotIdx] = zero
	p.freeSlots = append(p.freeSlots, index)
	p.live--
	return true
}

// Len returns the number of occupied slots.
func (p *Pool[T]) Len() int { return p.live }

// Cap returns the number of slots handed out so far, occupied or free.
func (p *Pool[T]) Cap() int { return p.nextIndex }

// Free returns the number of slots waiting for reuse.
func (p *Pool[T]) Free() int { return len(p.freeSlots) }

// Clear empties every slot and releases the blocks.
func (p *Pool[T]) Clear() {
	p.blocks = nil
	p.filled = nil
	p.freeSlots = nil
	p.nextIndex = 0
	p.live = 0
}

// Iter yields every occupied slot in index order. Occupancy is checked as the
// iteration reaches each slot: a slot deleted before it is reached is skipped
// and deleting the current slot does not disturb the rest of the walk.
// Delete zeroes the slot, so read what you need from the yielded pointer
// before deleting it.
func (p *Pool[T]) Iter() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := 0; i < p.nextIndex; i++ {
			blockIdx := i / blockSize
			slotIdx := i % blockSize

			if !p.filled[blockIdx][slotIdx] {
				continue
			}
			if !yield(i, &p.blocks[blockIdx][slotIdx]) {
				return
			}
		}
	}
}
