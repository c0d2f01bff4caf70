package example

import "github.com/gostrings/hirschberg"

// LCSByteRow returns a score-row callback computing the LCS-length
// recurrence over byte-mode substrings, under eq. It is a Similarity
// metric: forward rows grow monotonically with shared subsequence length.
//
// The reverse pass runs the identical recurrence reading both substrings
// from their right ends, which is the standard way to produce the suffix
// half of a Hirschberg split without allocating reversed copies of the
// input.
func LCSByteRow(eq hirschberg.ByteEqual) hirschberg.NoContextFunc[int32] {
	return func(a, b []byte, reverse bool, out []int32) int {
		m, n := len(a), len(b)
		prev := make([]int32, n+1)
		cur := make([]int32, n+1)
		for i := 1; i <= m; i++ {
			ai := i - 1
			if reverse {
				ai = m - i
			}
			cur[0] = 0
			for j := 1; j <= n; j++ {
				bj := j - 1
				if reverse {
					bj = n - j
				}
				if eq(a[ai], b[bj]) {
					cur[j] = prev[j-1] + 1
				} else if prev[j] >= cur[j-1] {
					cur[j] = prev[j]
				} else {
					cur[j] = cur[j-1]
				}
			}
			prev, cur = cur, prev
		}
		copy(out, prev[:n+1])
		return n + 1
	}
}

// LCSUTF8Row is the code-point analogue of LCSByteRow: a, b are decoded as
// UTF-8 before the recurrence runs, and out is indexed by code-point
// column rather than byte column.
func LCSUTF8Row(eq hirschberg.CodepointEqual) hirschberg.NoContextFunc[int32] {
	return func(a, b []byte, reverse bool, out []int32) int {
		ra, rb := decodeRunes(a), decodeRunes(b)
		m, n := len(ra), len(rb)
		prev := make([]int32, n+1)
		cur := make([]int32, n+1)
		for i := 1; i <= m; i++ {
			ai := i - 1
			if reverse {
				ai = m - i
			}
			cur[0] = 0
			for j := 1; j <= n; j++ {
				bj := j - 1
				if reverse {
					bj = n - j
				}
				if eq(ra[ai], rb[bj]) {
					cur[j] = prev[j-1] + 1
				} else if prev[j] >= cur[j-1] {
					cur[j] = prev[j]
				} else {
					cur[j] = cur[j-1]
				}
			}
			prev, cur = cur, prev
		}
		copy(out, prev[:n+1])
		return n + 1
	}
}
