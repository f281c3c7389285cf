// Package pipeline threads interval sets through an ordered sequence of
// remap stages and answers aggregate queries over the result.
//
// Query methods:
//  1. RunForward pushes a Set through every stage, splitting intervals at
//     mapping boundaries. Cost scales with the number of splits, not with
//     interval magnitude.
//  2. MinimumOutput is the smallest Start of RunForward's result.
//  3. ApplyPoint and MinimumPointOutput work on individual values.
//  4. MinimumReachable answers "smallest output reachable from these input
//     ranges, below a limit" by intersecting the forward image with [0, limit).
//  5. MinimumInputReaching answers the same question by brute force: it
//     walks candidate outputs upward through the inverse pipeline. It is the
//     deliberately naive fallback, bounded by a caller-supplied limit, and is
//     only correct when every stage is a bijection. Prefer MinimumReachable
//     whenever the acceptance predicate is a union of intervals.
//
// Pipelines are immutable and all queries are free of shared state, so one
// Pipeline may be queried from many goroutines.
package pipeline
