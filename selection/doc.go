// Package selection finds the k-th smallest element of an int64 sequence
// with in-place quickselect.
//
// Select reorders its input. The multiset of values is preserved but the
// positional order is not, so callers that need the original length or
// order must capture them first and must not share the slice with another
// goroutine while a selection runs.
//
// The pivot policy is configurable:
//
//	selection:
//	  pivot: "last"     # last | random | median3
//
// "last" partitions around the last element of the window. It is simple and
// deterministic but degrades to O(n^2) on sorted or reverse-sorted input.
// "random" and "median3" only change how the pivot index is picked; results
// are identical for every policy.
package selection
