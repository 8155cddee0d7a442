// Package alloc provides an accounting allocator for observing and
// restricting the memory requested by a strq.Queue.
package alloc

// Budget counts allocations and frees and can be made to refuse
// allocations once a number of them have succeeded. The zero value
// never refuses.
type Budget struct {
	limited bool
	left    int

	allocs, frees int
	live          int
}

// Limit returns a Budget that allows n more allocations before
// refusing every further one.
func Limit(n int) *Budget {
	b := new(Budget)
	b.SetLimit(n)
	return b
}

// SetLimit allows n more allocations from now on. A negative n
// removes the limit.
func (b *Budget) SetLimit(n int) {
	b.limited = n >= 0
	b.left = n
}

// Alloc reports whether an allocation of size bytes may proceed and
// records it if so.
func (b *Budget) Alloc(size int) bool {
	if b.limited {
		if b.left <= 0 {
			return false
		}
		b.left--
	}

	b.allocs++
	b.live += size
	return true
}

// Free records the release of size bytes.
func (b *Budget) Free(size int) {
	b.frees++
	b.live -= size
}

// Allocs returns the number of successful allocations.
func (b *Budget) Allocs() int { return b.allocs }

// Frees returns the number of releases.
func (b *Budget) Frees() int { return b.frees }

// Live returns the number of bytes allocated and not yet freed.
func (b *Budget) Live() int { return b.live }

// Outstanding returns the number of allocations not yet freed.
func (b *Budget) Outstanding() int { return b.allocs - b.frees }
