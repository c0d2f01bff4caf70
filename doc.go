// Package hirschberg provides a divide-and-conquer driver for pairwise
// string alignment in linear auxiliary memory, following the classical
// Hirschberg decomposition.
//
// # Overview
//
// Given two strings A and B and a caller-supplied score-row callback (the
// forward sweep of any two-row alignment DP recurrence — LCS, edit distance,
// Needleman-Wunsch, Smith-Waterman, ...), the driver repeatedly splits the
// problem along its longer axis until each remaining piece is small enough
// to be atomic. It yields atoms in left-to-right order; the caller
// interprets each one to assemble a trace, a score, or a rendered alignment.
//
// # When to Use This Package
//
// Use it when you already have an O(m·n)-time, O(n)-space DP row function
// for some alignment scoring model and want to recover the full alignment
// (not just its score) without O(m·n) memory. Good fits:
//   - LCS / edit-distance style diffing over long sequences
//   - Needleman-Wunsch / Smith-Waterman variants over biological or textual
//     sequences
//   - Any two-row DP recurrence where only the final row, not the full
//     table, is needed to make the split decision
//
// # When NOT to Use This Package
//
// This package is not suitable for:
//   - Scoring models that require information beyond a linear DP row
//     (e.g. affine gap penalties needing two coupled rows — wire both into
//     one callback invocation, or reconsider)
//   - One-off alignments of short strings where O(m·n) memory is cheaper
//     than the bookkeeping of a split driver
//   - Concurrent use of a single Iterator from multiple goroutines (each
//     Pull mutates the Iterator's work stack and Scratch rows without
//     locking)
//
// # Basic Usage
//
//	opts := hirschberg.DefaultOptions()
//	opts.AllowTranspose = true
//	scratch := hirschberg.NewScratch[int32](len(b) + 1)
//	it, err := hirschberg.New(a, b, opts, scratch, hirschberg.NewCallback(myLCSRow))
//	if err != nil {
//		// handle invalid input/callback
//	}
//	for it.Pull() {
//		if it.IsAtom() {
//			atom := it.Atom()
//			// interpret atom against a, b
//		}
//	}
//
// # Performance Characteristics
//
// Given an O(m·n) score-row callback, total driver work is O(m·n) (the
// standard Hirschberg result). Auxiliary memory is O(min(m, n)) for the two
// scratch rows plus an O(log m) (balanced case) to O(m) (worst case) split
// stack. The number of pulls is O(m + n).
package hirschberg
