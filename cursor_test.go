package hirschberg

import "testing"

func TestNextLen(t *testing.T) {
	buf := []byte("aé中🎉")
	// a=1 byte, é=2 bytes, 中=3 bytes, 🎉=4 bytes
	want := []int{1, 2, 3, 4}
	pos := 0
	for i, w := range want {
		got := nextLen(buf, pos)
		if got != w {
			t.Fatalf("codepoint %d: nextLen=%d want %d", i, got, w)
		}
		pos += got
	}
	if got := nextLen(buf, pos); got != 0 {
		t.Fatalf("nextLen at end=%d want 0", got)
	}
}

func TestPrevLen(t *testing.T) {
	buf := []byte("aé中🎉")
	offsets := []int{1, 3, 6, 10}
	want := []int{1, 2, 3, 4}
	for i, off := range offsets {
		got := prevLen(buf, off)
		if got != want[i] {
			t.Fatalf("prevLen(%d)=%d want %d", off, got, want[i])
		}
	}
	if got := prevLen(buf, 0); got != 0 {
		t.Fatalf("prevLen(0)=%d want 0", got)
	}
}

func TestNthOffset(t *testing.T) {
	buf := []byte("aé中🎉")
	want := []int{0, 1, 3, 6, 10}
	for k, w := range want {
		if got := nthOffset(buf, k); got != w {
			t.Fatalf("nthOffset(%d)=%d want %d", k, got, w)
		}
	}
}

func TestCountCodepoints(t *testing.T) {
	if got := countCodepoints([]byte("aé中🎉")); got != 4 {
		t.Fatalf("countCodepoints=%d want 4", got)
	}
	if got := countCodepoints(nil); got != 0 {
		t.Fatalf("countCodepoints(nil)=%d want 0", got)
	}
}

func TestSnapBackToCodepointBoundary(t *testing.T) {
	buf := []byte("aé") // a=1 byte, é=2 bytes (0xC3 0xA9)
	// offset 2 is the continuation byte of é; should snap back to 1.
	if got := snapBackToCodepointBoundary(buf, 2); got != 1 {
		t.Fatalf("snap(2)=%d want 1", got)
	}
	if got := snapBackToCodepointBoundary(buf, 1); got != 1 {
		t.Fatalf("snap(1)=%d want 1", got)
	}
	if got := snapBackToCodepointBoundary(buf, len(buf)); got != len(buf) {
		t.Fatalf("snap(end)=%d want %d", got, len(buf))
	}
}
