package hirschberg

// Iterator is the subproblem stack and state machine at the core of the
// package. It holds the work stack, pops one subproblem per Pull, either
// emits it as atomic or splits it by invoking the callback twice (forward
// and reverse) and choosing the best column boundary, pushes the two
// children, and continues. It is a lazy, single-threaded producer of
// atoms: pull until Pull returns false.
//
// An Iterator exclusively owns its work stack and (by convention) its
// Scratch rows; the input strings are borrowed for the Iterator's
// lifetime and must outlive it.
type Iterator[T Number] struct {
	s1, s2  []byte
	opts    Options
	scratch *Scratch[T]
	cb      Callback[T]

	stack []frame

	current Subproblem
	isAtom  bool
	failed  bool
	swapped bool
}

// frame is an internal work-stack entry. bx/by are byte offsets into
// s1/s2; ux/uy are unit offsets (equal to bx/by in byte mode, a
// code-point count in UTF-8 mode); m/n are unit counts (the same active
// unit as ux/uy); mBytes/nBytes are the byte lengths of the m-unit/n-unit
// spans, needed to slice s1/s2 and to drive the score-row callback.
type frame struct {
	bx, by         int
	ux, uy         int
	m, n           int
	mBytes, nBytes int
}

// New constructs an Iterator over s1, s2 with the given Options, Scratch,
// and Callback. It returns ErrInvalidInput if s1, s2, or scratch is nil,
// and ErrInvalidCallback if cb has no valid shape. A zero-length (but
// non-nil) side at the root is not a construction failure: it surfaces as
// an ordinary single-atom result on the first Pull (see DESIGN.md).
func New[T Number](s1, s2 []byte, opts Options, scratch *Scratch[T], cb Callback[T]) (*Iterator[T], error) {
	if s1 == nil || s2 == nil || scratch == nil {
		return nil, ErrInvalidInput
	}
	if !cb.valid() {
		return nil, ErrInvalidCallback
	}

	it := &Iterator[T]{opts: opts}
	it.reset(s1, s2, scratch, cb)
	return it, nil
}

// Reset re-drives it over a new string pair, reusing its work stack and
// Scratch rows without reallocating them — useful for aligning many pairs
// back to back without paying an allocation per pair.
func (it *Iterator[T]) Reset(s1, s2 []byte, scratch *Scratch[T], cb Callback[T]) error {
	if s1 == nil || s2 == nil || scratch == nil {
		return ErrInvalidInput
	}
	if !cb.valid() {
		return ErrInvalidCallback
	}
	it.reset(s1, s2, scratch, cb)
	return nil
}

func (it *Iterator[T]) reset(s1, s2 []byte, scratch *Scratch[T], cb Callback[T]) {
	m0, n0 := len(s1), len(s2)
	if it.opts.UTF8 {
		m0, n0 = countCodepoints(s1), countCodepoints(s2)
	}

	it.swapped = m0 < n0
	if it.swapped {
		s1, s2 = s2, s1
		m0, n0 = n0, m0
	}

	it.s1, it.s2 = s1, s2
	it.scratch = scratch
	it.cb = cb
	it.current = Subproblem{}
	it.isAtom = false
	it.failed = false

	if it.stack != nil {
		it.stack = it.stack[:0]
	}
	it.stack = append(it.stack, frame{
		bx: 0, by: 0,
		ux: 0, uy: 0,
		m: m0, n: n0,
		mBytes: len(s1), nBytes: len(s2),
	})
}

// S1 returns the first axis's byte buffer as normalized by root swapping:
// the longer of the two input strings.
func (it *Iterator[T]) S1() []byte { return it.s1 }

// S2 returns the second axis's byte buffer.
func (it *Iterator[T]) S2() []byte { return it.s2 }

// Swapped reports whether New/Reset swapped the caller's A and B at
// construction because B was longer than A. When true, every Subproblem's
// X/M refers to the caller's original B and Y/N to the caller's original A.
func (it *Iterator[T]) Swapped() bool { return it.swapped }

// Pull advances the iterator by one step and returns false when no work
// remains or the iterator has failed. When Pull returns true, call IsAtom
// to find out whether this step emitted a terminal Subproblem (retrieve it
// with Atom) or performed an internal split (call Pull again to keep
// going).
func (it *Iterator[T]) Pull() bool {
	if it.failed {
		it.isAtom = false
		return false
	}
	if len(it.stack) == 0 {
		it.isAtom = false
		return false
	}

	fr := it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]

	s1seg := it.s1[fr.bx : fr.bx+fr.mBytes]
	s2seg := it.s2[fr.by : fr.by+fr.nBytes]

	transposeOK := false
	if it.opts.AllowTranspose && fr.m == 2 && fr.n == 2 {
		if it.opts.UTF8 {
			transposeOK = isTranspose2x2UTF8(s1seg, s2seg, it.opts.codepointEqual())
		} else {
			transposeOK = isTranspose2x2Byte(s1seg, s2seg, it.opts.byteEqual())
		}
	}

	if atom, _ := isAtomShape(fr.m, fr.n, it.opts.AllowTranspose, transposeOK); atom {
		it.current = Subproblem{X: fr.ux, M: fr.m, Y: fr.uy, N: fr.n}
		it.isAtom = true
		return true
	}

	it.split(fr, s1seg, s2seg)
	it.isAtom = false
	return true
}

// split performs one Hirschberg split of fr and pushes its two children
// onto the stack.
func (it *Iterator[T]) split(fr frame, s1seg, s2seg []byte) {
	// Midpoint on the s1 axis.
	splitUnits := fr.m / 2
	var splitBytes int
	if it.opts.UTF8 {
		splitBytes = nthOffset(s1seg, splitUnits)
		splitBytes = snapBackToCodepointBoundary(s1seg, splitBytes)
	} else {
		splitBytes = splitUnits
	}

	// Border-transposition guard.
	if it.opts.AllowTranspose && fr.m > 1 {
		var borderHit bool
		if it.opts.UTF8 {
			borderHit = borderTransposeUTF8(s1seg, s2seg, splitBytes, it.opts.codepointEqual())
		} else {
			borderHit = borderTransposeByte(s1seg, s2seg, splitBytes, it.opts.byteEqual())
		}
		if borderHit {
			splitUnits++
			if it.opts.UTF8 {
				splitBytes += nextLen(s1seg, splitBytes)
			} else {
				splitBytes++
			}
		}
	}

	// Score rows, forward then reverse.
	if it.opts.ZeroScratch {
		it.scratch.zero()
	}
	left := s1seg[:splitBytes]
	right := s1seg[splitBytes:]
	usedFwd := it.cb.call(left, s2seg, false, it.scratch.fwd)
	usedRev := it.cb.call(right, s2seg, true, it.scratch.rev)

	// Both calls are expected to report the same used count U; clamp
	// defensively to the smaller of the two so a misbehaving callback
	// cannot drive an out-of-bounds read in the combine step below —
	// an irregular callback yields a defined but possibly-suboptimal
	// split rather than a crash.
	u := usedFwd
	if usedRev < u {
		u = usedRev
	}
	if u > fr.n+1 {
		u = fr.n + 1
	}
	if u < 1 {
		u = 1
	}

	// Midpoint on the s2 axis — combine rows and scan for the best
	// column. singleCharOneSide is always false here: a subproblem with
	// exactly one side of unit length 1 is caught by the atom test in
	// Pull before split is ever called, so the "first strict improvement
	// latches, later ties don't override it" suppression can never
	// actually fire in this atom-first ordering. It is threaded through
	// explicitly anyway so the tie-break rule stays correct if that
	// ordering ever changes (see DESIGN.md).
	const singleCharOneSide = false

	best := initialBest[T](it.opts.Metric)
	bestJ := 0
	bestJBytes := 0
	latched := false
	cursorBytes := 0
	for j := 0; j < u; j++ {
		sum := it.scratch.fwd[j] + it.scratch.rev[u-1-j]
		switch {
		case improves(it.opts.Metric, sum, best):
			best = sum
			bestJ = j
			bestJBytes = cursorBytes
			latched = true
		case !latched && j > 0 && !singleCharOneSide && approxEqual(sum, best):
			bestJ = j
			bestJBytes = cursorBytes
			latched = true
		}
		if j+1 < u && cursorBytes < len(s2seg) {
			if it.opts.UTF8 {
				cursorBytes += nextLen(s2seg, cursorBytes)
			} else {
				cursorBytes++
			}
		}
	}

	// Split column on the s2 axis.
	subM, subMBytes := splitUnits, splitBytes
	subN, subNBytes := bestJ, bestJBytes

	// Degenerate-split rescue: a split that puts everything in one child
	// would never make progress, so force one unit off the front instead.
	if (subM == 0 && subN == 0) || (subM == fr.m && subN == fr.n) {
		subM, subN = 1, 1
		subMBytes = nextLen(s1seg, 0)
		subNBytes = nextLen(s2seg, 0)
		if !it.opts.UTF8 {
			subMBytes, subNBytes = 1, 1
		}
	}

	// Push children, right first so left pops next: pre-order traversal
	// yields left-to-right emission.
	leftChild := frame{
		bx: fr.bx, by: fr.by,
		ux: fr.ux, uy: fr.uy,
		m: subM, n: subN,
		mBytes: subMBytes, nBytes: subNBytes,
	}
	rightChild := frame{
		bx: fr.bx + subMBytes, by: fr.by + subNBytes,
		ux: fr.ux + subM, uy: fr.uy + subN,
		m: fr.m - subM, n: fr.n - subN,
		mBytes: fr.mBytes - subMBytes, nBytes: fr.nBytes - subNBytes,
	}
	it.stack = append(it.stack, rightChild, leftChild)
}

// IsAtom reports whether the most recent Pull emitted a terminal Subproblem.
// Only meaningful immediately after a Pull that returned true.
func (it *Iterator[T]) IsAtom() bool { return it.isAtom }

// Atom returns the terminal Subproblem from the most recent Pull. Only
// meaningful when IsAtom reports true.
func (it *Iterator[T]) Atom() Subproblem { return it.current }

// Next folds Pull/IsAtom/Atom into a single call, looping internally past
// any number of splits until the next atom is reached or the iterator is
// exhausted.
func (it *Iterator[T]) Next() (Subproblem, bool) {
	for it.Pull() {
		if it.isAtom {
			return it.current, true
		}
	}
	return Subproblem{}, false
}

// Destroy releases the iterator's work stack and drops its references to
// the Scratch and input buffers without freeing them, so the same Scratch
// can be handed to another Iterator or to a later Reset of this one.
func (it *Iterator[T]) Destroy() {
	it.stack = nil
	it.scratch = nil
	it.s1, it.s2 = nil, nil
	it.isAtom = false
	it.failed = true
}
