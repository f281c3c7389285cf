// Package remap implements a single layer of the remapping pipeline.
//
// A Stage is a set of Mappings with pairwise disjoint source intervals and
// identity everywhere else. Stage.Apply pushes a whole interval through the
// stage at once: covered parts are translated by their mapping's offset and
// uncovered gaps pass through unchanged, so the cost depends on the number
// of mapping boundaries inside the interval, never on its length.
//
// Stages are immutable after NewStage. The zero Stage is the identity.
package remap
