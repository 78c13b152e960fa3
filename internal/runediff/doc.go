// Package runediff computes minimal edit sequences between generic
// comparable-element slices using Hirschberg's algorithm.
//
// The character refiner needs to know, for a pair of candidate token texts,
// whether they are similar enough to justify re-splitting to graphemes and
// re-matching: equal prefix/suffix with a shorter interior (internal
// insert/delete), one being a contiguous run of the other (flanking
// insert/delete), or a high rune-level identity ratio at equal length. All
// three checks reduce to an LCS computation over runes or graphemes.
//
// # Algorithm Interface
//
// The [Algorithm] interface allows pluggable diff algorithms. [Hirschberg] is
// the default implementation, using a space-efficient LCS algorithm.
//
// Unlike the standard dynamic programming approach that requires O(m*n) space,
// Hirschberg's divide-and-conquer strategy reduces space complexity to
// O(min(m,n)) while maintaining O(m*n) time.
//
// # Usage
//
// Create a [Hirschberg] instance once and reuse it for multiple comparisons:
//
//	h := runediff.NewHirschberg[rune]()
//	h.Init(len(before), len(after)) // Optional: preallocate buffers.
//	ops := h.Diff(before, after)
//
// Each [Op] in the result describes one edit operation with an index into the
// appropriate input slice.
//
// The [OpKind] indicates the operation type:
//
//   - [OpEqual]: Element exists in both (index into after).
//   - [OpDelete]: Element only in before (index into before).
//   - [OpInsert]: Element only in after (index into after).
//
// [LCSLen] is a convenience for callers that only need the shared-length
// count rather than the full operation list.
package runediff
