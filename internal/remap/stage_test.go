package remap

import (
	"math"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"range-remapper/internal/errkind"
	"range-remapper/internal/interval"
)

func seedToSoil(t *testing.T) *Stage {
	t.Helper()

	s, err := NewStage("seed-to-soil", []Mapping{
		{DestStart: 50, SourceStart: 98, Length: 2},
		{DestStart: 52, SourceStart: 50, Length: 48},
	})
	require.NoError(t, err)

	return s
}

func TestApplyPoint(t *testing.T) {
	s := seedToSoil(t)

	tests := []struct {
		in, want uint64
	}{
		{0, 0},
		{49, 49},
		{50, 52},
		{79, 81},
		{97, 99},
		{98, 50},
		{99, 51},
		{100, 100},
		{math.MaxUint64, math.MaxUint64},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, s.ApplyPoint(tt.in), "ApplyPoint(%d)", tt.in)
	}
}

func TestApplySplitsCoveredAndUncovered(t *testing.T) {
	s := MustStage("split", Mapping{DestStart: 10, SourceStart: 0, Length: 5})

	out, err := s.Apply(interval.Interval{Start: 0, Length: 10})
	require.NoError(t, err)

	assert.ElementsMatch(t, interval.Set{{Start: 10, Length: 5}, {Start: 5, Length: 5}}, out)
	assert.Equal(t, uint64(10), out.TotalLength())
}

func TestApplyCases(t *testing.T) {
	s := seedToSoil(t)

	tests := []struct {
		name string
		in   interval.Interval
		want interval.Set
	}{
		{"fully inside one mapping", interval.Interval{Start: 79, Length: 14}, interval.Set{{Start: 81, Length: 14}}},
		{"fully uncovered below", interval.Interval{Start: 0, Length: 10}, interval.Set{{Start: 0, Length: 10}}},
		{"fully uncovered above", interval.Interval{Start: 100, Length: 10}, interval.Set{{Start: 100, Length: 10}}},
		{"straddles lower edge", interval.Interval{Start: 45, Length: 10}, interval.Set{{Start: 45, Length: 5}, {Start: 52, Length: 5}}},
		{"spans both mappings", interval.Interval{Start: 90, Length: 9}, interval.Set{{Start: 92, Length: 8}, {Start: 50, Length: 1}}},
		{"covers everything", interval.Interval{Start: 40, Length: 70}, interval.Set{
			{Start: 40, Length: 10},
			{Start: 52, Length: 48},
			{Start: 50, Length: 2},
			{Start: 100, Length: 10},
		}},
		{"single point", interval.Interval{Start: 99, Length: 1}, interval.Set{{Start: 51, Length: 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := s.Apply(tt.in)
			require.NoError(t, err)
			assert.ElementsMatch(t, tt.want, out, spew.Sdump(out))
			assert.Equal(t, tt.in.Length, out.TotalLength())
		})
	}
}

func TestApplyRejectsInvalidInterval(t *testing.T) {
	s := seedToSoil(t)

	_, err := s.Apply(interval.Interval{Start: 5})
	assert.ErrorIs(t, err, errkind.ErrInvalidInterval)

	_, err = s.Apply(interval.Interval{Start: math.MaxUint64, Length: 2})
	assert.ErrorIs(t, err, errkind.ErrInvalidInterval)
}

func TestEmptyStageIsIdentity(t *testing.T) {
	stages := []*Stage{nil, {}, MustStage("empty")}

	for _, s := range stages {
		iv := interval.Interval{Start: 1234, Length: 99}

		out, err := s.Apply(iv)
		require.NoError(t, err)
		assert.Equal(t, interval.Set{iv}, out)
		assert.Equal(t, uint64(7), s.ApplyPoint(7))
	}
}

func TestNewStageRejectsOverlap(t *testing.T) {
	_, err := NewStage("bad", []Mapping{
		{DestStart: 0, SourceStart: 10, Length: 10},
		{DestStart: 100, SourceStart: 0, Length: 5},
		{DestStart: 200, SourceStart: 15, Length: 2},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, errkind.ErrMalformedStage)
	assert.Contains(t, err.Error(), "mapping 0")
	assert.Contains(t, err.Error(), "mapping 2")
}

func TestNewStageRejectsDegenerateMapping(t *testing.T) {
	_, err := NewStage("zero", []Mapping{{DestStart: 1, SourceStart: 2, Length: 0}})
	assert.ErrorIs(t, err, errkind.ErrMalformedStage)

	_, err = NewStage("overflow", []Mapping{{DestStart: math.MaxUint64, SourceStart: 0, Length: 2}})
	assert.ErrorIs(t, err, errkind.ErrMalformedStage)
}

func TestNewStageCopiesInput(t *testing.T) {
	in := []Mapping{{DestStart: 5, SourceStart: 20, Length: 3}, {DestStart: 0, SourceStart: 0, Length: 3}}
	s, err := NewStage("copy", in)
	require.NoError(t, err)

	in[0].DestStart = 999

	assert.Equal(t, uint64(5), s.ApplyPoint(20))
	assert.Equal(t, uint64(0), s.Mappings()[0].SourceStart, "mappings are kept sorted")
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, "copy", s.Name())
}

func TestFindOverlaps(t *testing.T) {
	got := FindOverlaps([]Mapping{
		{SourceStart: 50, Length: 10},
		{SourceStart: 0, Length: 100},
		{SourceStart: 55, Length: 1},
		{SourceStart: 100, Length: 1},
		{SourceStart: 7, Length: 0},
	})

	assert.Equal(t, []Overlap{{0, 1}, {0, 2}, {1, 2}}, got)
	assert.Empty(t, FindOverlaps(nil))
}

func TestStageInverse(t *testing.T) {
	s := seedToSoil(t)

	inv, err := s.Inverse()
	require.NoError(t, err)

	for v := uint64(0); v < 120; v++ {
		assert.Equal(t, v, inv.ApplyPoint(s.ApplyPoint(v)), "round trip of %d", v)
	}
}

func TestStageInverseRejectsOverlappingDestinations(t *testing.T) {
	s := MustStage("collapse",
		Mapping{DestStart: 0, SourceStart: 10, Length: 5},
		Mapping{DestStart: 2, SourceStart: 20, Length: 5},
	)

	_, err := s.Inverse()
	assert.ErrorIs(t, err, errkind.ErrMalformedStage)
}

// randomStage builds a stage with disjoint sources inside [0, 200) and
// arbitrary destinations.
func randomStage(r *rand.Rand) *Stage {
	cuts := make([]uint64, 0, 8)
	for range 2 * (1 + r.IntN(4)) {
		cuts = append(cuts, r.Uint64N(200))
	}

	slices.Sort(cuts)
	cuts = slices.Compact(cuts)

	var mappings []Mapping

	for i := 0; i+1 < len(cuts); i += 2 {
		mappings = append(mappings, Mapping{
			DestStart:   r.Uint64N(300),
			SourceStart: cuts[i],
			Length:      cuts[i+1] - cuts[i],
		})
	}

	r.Shuffle(len(mappings), func(i, j int) { mappings[i], mappings[j] = mappings[j], mappings[i] })

	return MustStage("random", mappings...)
}

func TestApplyConservesLength(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))

	for range 500 {
		s := randomStage(r)
		iv := interval.Interval{Start: r.Uint64N(250), Length: 1 + r.Uint64N(120)}

		out, err := s.Apply(iv)
		require.NoError(t, err)
		require.Equal(t, iv.Length, out.TotalLength(), "stage %s interval %s -> %s", spew.Sdump(s.Mappings()), iv, out)

		for _, o := range out {
			require.NoError(t, o.Validate())
		}
	}
}

func TestApplyAgreesWithApplyPoint(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))

	for range 200 {
		s := randomStage(r)
		iv := interval.Interval{Start: r.Uint64N(250), Length: 1 + r.Uint64N(60)}

		out, err := s.Apply(iv)
		require.NoError(t, err)

		var want, got []uint64
		for v := iv.Start; v < iv.End(); v++ {
			want = append(want, s.ApplyPoint(v))
		}

		for _, o := range out {
			for v := o.Start; v < o.End(); v++ {
				got = append(got, v)
			}
		}

		slices.Sort(want)
		slices.Sort(got)
		require.Equal(t, want, got, "interval %s", iv)
	}
}
