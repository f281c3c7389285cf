package remap

import (
	"cmp"
	"slices"
	"sort"

	"range-remapper/internal/errkind"
	"range-remapper/internal/interval"
)

// Stage is one layer of the pipeline: disjoint Mappings, identity elsewhere.
type Stage struct {
	name string
	// mappings are sorted by SourceStart and pairwise disjoint.
	mappings []Mapping
}

// Overlap identifies two mappings, by input position, whose sources intersect.
type Overlap struct {
	First, Second int
}

// NewStage validates mappings and builds an immutable Stage.
// The input may be in any order; it is copied, not retained.
func NewStage(name string, mappings []Mapping) (*Stage, error) {
	for i, m := range mappings {
		if err := m.Source().Validate(); err != nil {
			return nil, errkind.New(errkind.MalformedStage, "stage.new", "%s: mapping %d source: %v", name, i, err)
		}

		if err := m.Dest().Validate(); err != nil {
			return nil, errkind.New(errkind.MalformedStage, "stage.new", "%s: mapping %d dest: %v", name, i, err)
		}
	}

	if overlaps := FindOverlaps(mappings); len(overlaps) > 0 {
		o := overlaps[0]

		return nil, errkind.New(errkind.MalformedStage, "stage.new", "%s: mapping %d %s overlaps mapping %d %s",
			name, o.First, mappings[o.First].Source(), o.Second, mappings[o.Second].Source())
	}

	sorted := slices.Clone(mappings)
	slices.SortFunc(sorted, bySource)

	return &Stage{name: name, mappings: sorted}, nil
}

// MustStage is NewStage for literals known to be valid. It panics on error.
func MustStage(name string, mappings ...Mapping) *Stage {
	s, err := NewStage(name, mappings)
	if err != nil {
		panic(err)
	}

	return s
}

// FindOverlaps returns every pair of mappings whose source intervals
// intersect, ordered by the first index. Zero-length mappings never overlap.
func FindOverlaps(mappings []Mapping) []Overlap {
	order := make([]int, len(mappings))
	for i := range order {
		order[i] = i
	}

	slices.SortFunc(order, func(a, b int) int { return bySource(mappings[a], mappings[b]) })

	var found []Overlap

	// Sweep in source order; each mapping is compared against the following
	// ones until a start at or past its end is seen.
	for x, i := range order {
		src := mappings[i].Source()

		for _, j := range order[x+1:] {
			if mappings[j].SourceStart >= src.End() {
				break
			}

			if src.Overlaps(mappings[j].Source()) {
				found = append(found, Overlap{First: min(i, j), Second: max(i, j)})
			}
		}
	}

	slices.SortFunc(found, func(a, b Overlap) int {
		if c := cmp.Compare(a.First, b.First); c != 0 {
			return c
		}

		return cmp.Compare(a.Second, b.Second)
	})

	return found
}

// Name returns the stage label, e.g. "seed-to-soil".
func (s *Stage) Name() string {
	if s == nil {
		return ""
	}

	return s.name
}

// Mappings returns a copy of the stage's mappings sorted by source start.
func (s *Stage) Mappings() []Mapping {
	if s == nil {
		return nil
	}

	return slices.Clone(s.mappings)
}

// Len returns the number of mappings.
func (s *Stage) Len() int {
	if s == nil {
		return 0
	}

	return len(s.mappings)
}

// Apply maps every point of iv through the stage and returns the images as
// whole intervals. Covered pieces are translated, gaps are passed through.
// The lengths of the result always sum to iv.Length. Order is unspecified.
func (s *Stage) Apply(iv interval.Interval) (interval.Set, error) {
	if err := iv.Validate(); err != nil {
		return nil, err
	}

	var mappings []Mapping
	if s != nil {
		mappings = s.mappings
	}

	out := make(interval.Set, 0, 1)
	cursor, end := iv.Start, iv.End()

	i := sort.Search(len(mappings), func(i int) bool { return mappings[i].Source().End() > iv.Start })
	for ; i < len(mappings) && cursor < end; i++ {
		m := mappings[i]

		ov, ok := iv.Intersect(m.Source())
		if !ok {
			break
		}

		if ov.Start > cursor {
			out = append(out, interval.Interval{Start: cursor, Length: ov.Start - cursor})
		}

		out = append(out, ov.Shift(m.Offset()))
		cursor = ov.End()
	}

	if cursor < end {
		out = append(out, interval.Interval{Start: cursor, Length: end - cursor})
	}

	return out, nil
}

// ApplyPoint maps a single value. At most one mapping can contain it.
func (s *Stage) ApplyPoint(v uint64) uint64 {
	if m, ok := s.lookup(v); ok {
		return m.Translate(v)
	}

	return v
}

// Inverse returns the stage with every mapping's source and destination
// swapped. It fails with MalformedStage when destinations overlap. The
// result is the true inverse only if the stage permutes its domain, i.e.
// the destinations cover exactly the sources; that is not checked.
func (s *Stage) Inverse() (*Stage, error) {
	if s == nil {
		return &Stage{}, nil
	}

	inv := make([]Mapping, len(s.mappings))
	for i, m := range s.mappings {
		inv[i] = m.Inverse()
	}

	out, err := NewStage(s.name, inv)
	if err != nil {
		return nil, errkind.New(errkind.MalformedStage, "stage.inverse", "%s: destinations overlap: %v", s.name, err)
	}

	return out, nil
}

func (s *Stage) lookup(v uint64) (Mapping, bool) {
	if s == nil || len(s.mappings) == 0 {
		return Mapping{}, false
	}

	// first mapping starting after v; the candidate is the one before it
	i := sort.Search(len(s.mappings), func(i int) bool { return s.mappings[i].SourceStart > v })
	if i == 0 {
		return Mapping{}, false
	}

	m := s.mappings[i-1]

	return m, m.Source().Contains(v)
}

func bySource(a, b Mapping) int {
	if c := cmp.Compare(a.SourceStart, b.SourceStart); c != 0 {
		return c
	}

	return cmp.Compare(a.Length, b.Length)
}
