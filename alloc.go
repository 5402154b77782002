package kstdio

// Allocator hands out fixed-size buffers for streams that own their
// storage. A nil result is an allocation failure; callers never retry.
type Allocator interface {
	Allocate(n int) []byte
}

// HeapAllocator allocates from the Go heap.
type HeapAllocator struct{}

// Allocate implements [Allocator].
func (HeapAllocator) Allocate(n int) []byte {
	if n < 0 {
		return nil
	}
	return make([]byte, n)
}

// BumpAllocator carves buffers from a fixed arena by advancing a cursor.
// Individual frees only decrement a live count; the arena is reclaimed as
// a whole once every allocation has been freed.
type BumpAllocator struct {
	arena []byte
	next  int
	live  int
}

// NewBumpAllocator returns an allocator over arena.
func NewBumpAllocator(arena []byte) *BumpAllocator {
	return &BumpAllocator{arena: arena}
}

// Allocate implements [Allocator]. It returns nil when the arena cannot
// hold n more bytes.
func (b *BumpAllocator) Allocate(n int) []byte {
	if n < 0 || n > len(b.arena)-b.next {
		return nil
	}
	p := b.arena[b.next : b.next+n : b.next+n]
	clear(p)
	b.next += n
	b.live++
	return p
}

// Free releases one allocation.
func (b *BumpAllocator) Free() {
	if b.live == 0 {
		return
	}
	b.live--
	if b.live == 0 {
		b.next = 0
	}
}

// Used reports the number of arena bytes currently handed out.
func (b *BumpAllocator) Used() int { return b.next }
