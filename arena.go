package klib

import "fmt"

// Arena is a bump allocator over a fixed block of memory. Allocations advance
// a position and are never individually reclaimed; [Arena.Reset] reclaims the
// whole block at once. The zero value has no memory and fails every Alloc.
type Arena struct {
	block []byte
	used  int
}

// NewArena returns an arena over a fresh block of the given size.
func NewArena(size int) *Arena {
	return &Arena{block: make([]byte, size)}
}

// ArenaOver returns an arena over caller-owned memory. The arena takes
// exclusive ownership of block until it is discarded.
func ArenaOver(block []byte) *Arena {
	return &Arena{block: block}
}

// Alloc returns the next n bytes of the block. The returned slice has
// capacity n, so appends cannot bleed into later allocations. Memory handed
// out after a Reset is not re-zeroed.
func (a *Arena) Alloc(n int) ([]byte, error) {
	if n < 0 || n > len(a.block)-a.used {
		return nil, fmt.Errorf("%w: %d bytes requested, %d free", ErrOutOfMemory, n, len(a.block)-a.used)
	}
	p := a.block[a.used : a.used+n : a.used+n]
	a.used += n
	return p, nil
}

// Free is a no-op; the allocator reclaims only via Reset.
func (a *Arena) Free([]byte) {}

// Reset makes the whole block available again. Slices from earlier Allocs
// still alias it and must not be used afterwards.
func (a *Arena) Reset() { a.used = 0 }

// Remaining reports the bytes still available.
func (a *Arena) Remaining() int { return len(a.block) - a.used }
