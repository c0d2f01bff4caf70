package hirschberg

import "testing"

func TestSubproblemKind(t *testing.T) {
	cases := []struct {
		sub  Subproblem
		want Kind
	}{
		{Subproblem{M: 0, N: 5}, KindIndel},
		{Subproblem{M: 5, N: 0}, KindIndel},
		{Subproblem{M: 1, N: 1}, KindMatch},
		{Subproblem{M: 2, N: 2}, KindTranspose},
		{Subproblem{M: 1, N: 4}, KindOneSided},
		{Subproblem{M: 4, N: 1}, KindOneSided},
	}
	for _, c := range cases {
		if got := c.sub.Kind(); got != c.want {
			t.Fatalf("Kind(%+v)=%v want %v", c.sub, got, c.want)
		}
	}
}

func TestIsAtomShape(t *testing.T) {
	if atom, _ := isAtomShape(0, 5, false, false); !atom {
		t.Fatalf("m=0 must be atomic")
	}
	if atom, _ := isAtomShape(1, 1, false, false); !atom {
		t.Fatalf("1x1 must be atomic")
	}
	if atom, one := isAtomShape(1, 5, false, false); !atom || !one {
		t.Fatalf("one-sided shape must be atomic and flagged")
	}
	if atom, _ := isAtomShape(2, 2, true, true); !atom {
		t.Fatalf("2x2 transpose with predicate true must be atomic")
	}
	if atom, _ := isAtomShape(2, 2, true, false); atom {
		t.Fatalf("2x2 without transpose predicate must not be atomic")
	}
	if atom, _ := isAtomShape(2, 2, false, true); atom {
		t.Fatalf("2x2 transpose predicate ignored when AllowTranspose is false")
	}
	if atom, _ := isAtomShape(3, 4, false, false); atom {
		t.Fatalf("3x4 must not be atomic")
	}
}
