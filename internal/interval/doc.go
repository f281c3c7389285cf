// Package interval provides half-open uint64 intervals and unordered
// collections of them.
//
// An Interval is [Start, Start+Length) with Length >= 1 and an end that
// fits in uint64. A Set is a flat, unordered collection that may contain
// overlapping or duplicate intervals. Canonical sorts and coalesces a Set
// when a normalized form is wanted; nothing in the package requires it.
package interval
