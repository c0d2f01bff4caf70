package hirschberg

import "testing"

func TestIsTranspose2x2Byte(t *testing.T) {
	eq := DefaultByteEqual
	if !isTranspose2x2Byte([]byte("he"), []byte("eh"), eq) {
		t.Fatalf("he/eh should be a transpose")
	}
	if isTranspose2x2Byte([]byte("aa"), []byte("aa"), eq) {
		t.Fatalf("aa/aa must not be a transpose (symbols don't differ)")
	}
	if isTranspose2x2Byte([]byte("ab"), []byte("ab"), eq) {
		t.Fatalf("ab/ab is identity, not a transpose")
	}
	if isTranspose2x2Byte([]byte("a"), []byte("ab"), eq) {
		t.Fatalf("wrong-length sides must never be a transpose")
	}
}

func TestIsTranspose2x2UTF8(t *testing.T) {
	eq := DefaultCodepointEqual
	if !isTranspose2x2UTF8([]byte("eñ"), []byte("ñe"), eq) {
		t.Fatalf("eñ/ñe should be a transpose")
	}
	if isTranspose2x2UTF8([]byte("ee"), []byte("ee"), eq) {
		t.Fatalf("ee/ee must not be a transpose")
	}
}

func TestBorderTransposeByte(t *testing.T) {
	eq := DefaultByteEqual
	// s1 = "the", split at 1 => left='t' right='h'; s2="hte" has the
	// adjacent pair s2[0]='h' (== right), s2[1]='t' (== left).
	s1 := []byte("the")
	s2 := []byte("hte")
	if !borderTransposeByte(s1, s2, 1, eq) {
		t.Fatalf("expected border transpose at split=1")
	}
	if borderTransposeByte(s1, s2, 0, eq) {
		t.Fatalf("split=0 must never be a border transpose")
	}
}

func TestBorderTransposeUTF8(t *testing.T) {
	eq := DefaultCodepointEqual
	s1 := []byte("añb") // split after 'a' (1 byte) => left='a', right='ñ'
	s2 := []byte("ña")
	if !borderTransposeUTF8(s1, s2, 1, eq) {
		t.Fatalf("expected utf8 border transpose at split byte offset 1")
	}
}
