package example

import (
	"unicode/utf8"

	"github.com/gostrings/hirschberg"
)

// decodeRunes decodes buf fully into a rune slice. Used only by this
// demonstration package's score-row callbacks and assembler; the core
// driver never decodes a full string up front — its cursor helpers step
// one code point at a time by design.
func decodeRunes(buf []byte) []rune {
	out := make([]rune, 0, len(buf))
	for len(buf) > 0 {
		r, size := utf8.DecodeRune(buf)
		out = append(out, r)
		buf = buf[size:]
	}
	return out
}

// Assembler renders a stream of atoms into a printable alignment string
// using one rendering rule per atom kind:
//
//	(a) for (m=k, n=1) atoms, output the single symbol on the short side if
//	    it matches any symbol on the long side under the active equality;
//	(b) for (m=1, n=k), symmetrically;
//	(c) for (m=2, n=2) transposition atoms, output the two-byte literal "/\";
//	(d) otherwise nothing.
type Assembler struct {
	s1, s2 []byte
	utf8   bool
	byteEq hirschberg.ByteEqual
	runeEq hirschberg.CodepointEqual
}

// NewAssembler builds an Assembler over the (possibly root-swapped) strings
// an Iterator is driving. Pass the same equality used to construct the
// Iterator's Options so rendering and splitting agree on what "matches"
// means.
func NewAssembler(s1, s2 []byte, utf8Mode bool, byteEq hirschberg.ByteEqual, runeEq hirschberg.CodepointEqual) *Assembler {
	if byteEq == nil {
		byteEq = hirschberg.DefaultByteEqual
	}
	if runeEq == nil {
		runeEq = hirschberg.DefaultCodepointEqual
	}
	return &Assembler{s1: s1, s2: s2, utf8: utf8Mode, byteEq: byteEq, runeEq: runeEq}
}

// Render appends the rendering of a single atom to dst and returns the
// result.
func (a *Assembler) Render(dst []byte, atom hirschberg.Subproblem) []byte {
	switch atom.Kind() {
	case hirschberg.KindIndel:
		return dst
	case hirschberg.KindTranspose:
		return append(dst, '/', '\\')
	default:
		return a.renderOneSided(dst, atom)
	}
}

func (a *Assembler) renderOneSided(dst []byte, atom hirschberg.Subproblem) []byte {
	if a.utf8 {
		return a.renderOneSidedUTF8(dst, atom)
	}
	return a.renderOneSidedByte(dst, atom)
}

func (a *Assembler) renderOneSidedByte(dst []byte, atom hirschberg.Subproblem) []byte {
	s1seg := a.s1[atom.X : atom.X+atom.M]
	s2seg := a.s2[atom.Y : atom.Y+atom.N]
	if atom.M == 1 {
		candidate := s1seg[0]
		for _, c := range s2seg {
			if a.byteEq(candidate, c) {
				return append(dst, candidate)
			}
		}
		return dst
	}
	candidate := s2seg[0]
	for _, c := range s1seg {
		if a.byteEq(candidate, c) {
			return append(dst, candidate)
		}
	}
	return dst
}

func (a *Assembler) renderOneSidedUTF8(dst []byte, atom hirschberg.Subproblem) []byte {
	s1seg := codepointSlice(a.s1, atom.X, atom.X+atom.M)
	s2seg := codepointSlice(a.s2, atom.Y, atom.Y+atom.N)
	r1 := decodeRunes(s1seg)
	r2 := decodeRunes(s2seg)
	if len(r1) == 1 {
		candidate := r1[0]
		for _, c := range r2 {
			if a.runeEq(candidate, c) {
				return appendRune(dst, candidate)
			}
		}
		return dst
	}
	candidate := r2[0]
	for _, c := range r1 {
		if a.runeEq(candidate, c) {
			return appendRune(dst, candidate)
		}
	}
	return dst
}

func appendRune(dst []byte, r rune) []byte {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	return append(dst, buf[:n]...)
}

// codepointSlice returns buf's bytes spanning code points [fromUnit,
// toUnit), using the same non-validating decode as the core package's
// cursor helpers.
func codepointSlice(buf []byte, fromUnit, toUnit int) []byte {
	from := codepointOffset(buf, fromUnit)
	to := codepointOffset(buf, toUnit)
	return buf[from:to]
}

func codepointOffset(buf []byte, k int) int {
	pos := 0
	for i := 0; i < k && pos < len(buf); i++ {
		_, size := utf8.DecodeRune(buf[pos:])
		pos += size
	}
	return pos
}

// Assemble drains it, rendering every atom in order, and returns the
// resulting alignment string. It relies on atoms being emitted in strict
// left-to-right order.
func Assemble[T hirschberg.Number](it *hirschberg.Iterator[T], a *Assembler) string {
	var out []byte
	for {
		atom, ok := it.Next()
		if !ok {
			break
		}
		out = a.Render(out, atom)
	}
	return string(out)
}
