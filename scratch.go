package hirschberg

// Scratch holds the two equally-sized score rows (forward and reverse) the
// driver reuses across every subproblem, eliminating the O(m·n) memory
// cost of the naive DP table. Allocated once per Iterator and never
// resized during iteration; callers that need a larger capacity must
// construct a new Scratch.
type Scratch[T Number] struct {
	fwd []T
	rev []T
}

// NewScratch allocates a Scratch with capacity entries in each row.
// capacity must be at least n+1, where n is the s2-axis extent of the root
// subproblem in the active unit (bytes in byte mode, code points in UTF-8
// mode); splits only ever shrink that extent. len(B)+1 for the caller's
// second string B always suffices, since root swapping only ever places
// the shorter string on the s2 axis.
func NewScratch[T Number](capacity int) *Scratch[T] {
	return &Scratch[T]{
		fwd: make([]T, capacity),
		rev: make([]T, capacity),
	}
}

// Cap returns the capacity each row was allocated with.
func (s *Scratch[T]) Cap() int { return len(s.fwd) }

// zero clears both rows. Invoked per split step only when Options.ZeroScratch
// is set; otherwise the driver trusts the callback to overwrite every cell
// it uses.
func (s *Scratch[T]) zero() {
	clear(s.fwd)
	clear(s.rev)
}
