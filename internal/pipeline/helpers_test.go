package pipeline

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"range-remapper/internal/interval"
	"range-remapper/internal/remap"
)

// examplePipeline is the seven-stage seed-to-location almanac from the
// puzzle statement.
func examplePipeline(t *testing.T) *Pipeline {
	t.Helper()

	defs := []struct {
		name     string
		mappings [][3]uint64
	}{
		{"seed-to-soil", [][3]uint64{{50, 98, 2}, {52, 50, 48}}},
		{"soil-to-fertilizer", [][3]uint64{{0, 15, 37}, {37, 52, 2}, {39, 0, 15}}},
		{"fertilizer-to-water", [][3]uint64{{49, 53, 8}, {0, 11, 42}, {42, 0, 7}, {57, 7, 4}}},
		{"water-to-light", [][3]uint64{{88, 18, 7}, {18, 25, 70}}},
		{"light-to-temperature", [][3]uint64{{45, 77, 23}, {81, 45, 19}, {68, 64, 13}}},
		{"temperature-to-humidity", [][3]uint64{{0, 69, 1}, {1, 0, 69}}},
		{"humidity-to-location", [][3]uint64{{60, 56, 37}, {56, 93, 4}}},
	}

	stages := make([]*remap.Stage, 0, len(defs))

	for _, d := range defs {
		ms := make([]remap.Mapping, 0, len(d.mappings))
		for _, m := range d.mappings {
			ms = append(ms, remap.Mapping{DestStart: m[0], SourceStart: m[1], Length: m[2]})
		}

		st, err := remap.NewStage(d.name, ms)
		require.NoError(t, err)

		stages = append(stages, st)
	}

	return New(stages...)
}

func exampleSeeds() interval.Set {
	return interval.Set{{Start: 79, Length: 14}, {Start: 55, Length: 13}}
}

// permutationStage rearranges segments of [base, base+size) so the stage is
// a bijection on the whole domain.
func permutationStage(r *rand.Rand, base, size uint64) *remap.Stage {
	cuts := []uint64{0, size}
	for range 1 + r.IntN(5) {
		cuts = append(cuts, r.Uint64N(size))
	}

	slices.Sort(cuts)
	cuts = slices.Compact(cuts)

	segs := make([]interval.Interval, 0, len(cuts)-1)
	for i := 0; i+1 < len(cuts); i++ {
		segs = append(segs, interval.Interval{Start: base + cuts[i], Length: cuts[i+1] - cuts[i]})
	}

	order := r.Perm(len(segs))
	dest := base
	mappings := make([]remap.Mapping, 0, len(segs))

	for _, k := range order {
		mappings = append(mappings, remap.Mapping{DestStart: dest, SourceStart: segs[k].Start, Length: segs[k].Length})
		dest += segs[k].Length
	}

	return remap.MustStage("perm", mappings...)
}

func randomPermutationPipeline(r *rand.Rand) *Pipeline {
	stages := make([]*remap.Stage, 1+r.IntN(6))
	for i := range stages {
		stages[i] = permutationStage(r, r.Uint64N(50), 20+r.Uint64N(100))
	}

	return New(stages...)
}

func expand(s interval.Set) []uint64 {
	var out []uint64

	for _, iv := range s {
		for v := iv.Start; v < iv.End(); v++ {
			out = append(out, v)
		}
	}

	slices.Sort(out)

	return out
}
