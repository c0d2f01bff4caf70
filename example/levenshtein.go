package example

import "github.com/gostrings/hirschberg"

// LevenshteinByteRow returns a score-row callback computing unit-cost edit
// distance over byte-mode substrings, under eq. It is a Distance metric:
// forward rows grow monotonically with the number of edits required.
func LevenshteinByteRow(eq hirschberg.ByteEqual) hirschberg.NoContextFunc[int32] {
	return func(a, b []byte, reverse bool, out []int32) int {
		m, n := len(a), len(b)
		prev := make([]int32, n+1)
		cur := make([]int32, n+1)
		for j := range prev {
			prev[j] = int32(j)
		}
		for i := 1; i <= m; i++ {
			ai := i - 1
			if reverse {
				ai = m - i
			}
			cur[0] = int32(i)
			for j := 1; j <= n; j++ {
				bj := j - 1
				if reverse {
					bj = n - j
				}
				if eq(a[ai], b[bj]) {
					cur[j] = prev[j-1]
					continue
				}
				cur[j] = 1 + min3(prev[j-1], prev[j], cur[j-1])
			}
			prev, cur = cur, prev
		}
		copy(out, prev[:n+1])
		return n + 1
	}
}

// LevenshteinUTF8Row is the code-point analogue of LevenshteinByteRow.
func LevenshteinUTF8Row(eq hirschberg.CodepointEqual) hirschberg.NoContextFunc[int32] {
	return func(a, b []byte, reverse bool, out []int32) int {
		ra, rb := decodeRunes(a), decodeRunes(b)
		m, n := len(ra), len(rb)
		prev := make([]int32, n+1)
		cur := make([]int32, n+1)
		for j := range prev {
			prev[j] = int32(j)
		}
		for i := 1; i <= m; i++ {
			ai := i - 1
			if reverse {
				ai = m - i
			}
			cur[0] = int32(i)
			for j := 1; j <= n; j++ {
				bj := j - 1
				if reverse {
					bj = n - j
				}
				if eq(ra[ai], rb[bj]) {
					cur[j] = prev[j-1]
					continue
				}
				cur[j] = 1 + min3(prev[j-1], prev[j], cur[j-1])
			}
			prev, cur = cur, prev
		}
		copy(out, prev[:n+1])
		return n + 1
	}
}

func min3(a, b, c int32) int32 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
