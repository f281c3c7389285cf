package interval

import (
	"cmp"
	"slices"
	"strings"

	"range-remapper/internal/errkind"
)

// Set is an unordered collection of intervals. Members may overlap.
type Set []Interval

// FromPairs builds a Set from (start, length) pairs, validating each one.
func FromPairs(pairs [][2]uint64) (Set, error) {
	s := make(Set, 0, len(pairs))

	for _, p := range pairs {
		iv, err := New(p[0], p[1])
		if err != nil {
			return nil, err
		}

		s = append(s, iv)
	}

	return s, nil
}

// Validate returns the first invalid member's error.
func (s Set) Validate() error {
	for _, iv := range s {
		if err := iv.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// TotalLength sums member lengths, counting overlapping points once per member.
func (s Set) TotalLength() uint64 {
	var n uint64
	for _, iv := range s {
		n += iv.Length
	}

	return n
}

// Min returns the smallest Start in the set.
func (s Set) Min() (uint64, bool) {
	if len(s) == 0 {
		return 0, false
	}

	m := s[0].Start
	for _, iv := range s[1:] {
		m = min(m, iv.Start)
	}

	return m, true
}

// Contains reports whether any member contains v.
func (s Set) Contains(v uint64) bool {
	return slices.ContainsFunc(s, func(iv Interval) bool { return iv.Contains(v) })
}

// Sorted returns a copy ordered by Start, then Length. Duplicates are kept.
func (s Set) Sorted() Set {
	out := slices.Clone(s)
	slices.SortFunc(out, compare)

	return out
}

// Canonical returns a sorted copy with overlapping and touching members merged.
// Two sets cover the same points iff their canonical forms are equal.
func (s Set) Canonical() Set {
	sorted := s.Sorted()
	if len(sorted) == 0 {
		return sorted
	}

	out := sorted[:1]
	for _, iv := range sorted[1:] {
		last := &out[len(out)-1]
		if iv.Start <= last.End() {
			if end := iv.End(); end > last.End() {
				last.Length = end - last.Start
			}

			continue
		}

		out = append(out, iv)
	}

	return out
}

// Intersect returns the points covered by both s and o, in canonical form.
func (s Set) Intersect(o Set) Set {
	a, b := s.Canonical(), o.Canonical()

	var out Set

	for i, j := 0, 0; i < len(a) && j < len(b); {
		if ov, ok := a[i].Intersect(b[j]); ok {
			out = append(out, ov)
		}

		if a[i].End() < b[j].End() {
			i++
		} else {
			j++
		}
	}

	return out
}

func (s Set) String() string {
	parts := make([]string, len(s))
	for i, iv := range s {
		parts[i] = iv.String()
	}

	return "{" + strings.Join(parts, " ") + "}"
}

func compare(a, b Interval) int {
	if c := cmp.Compare(a.Start, b.Start); c != 0 {
		return c
	}

	return cmp.Compare(a.Length, b.Length)
}

// Window returns the interval [0, limit), or an InvalidInterval error when limit is 0.
func Window(limit uint64) (Interval, error) {
	if limit == 0 {
		return Interval{}, errkind.New(errkind.InvalidInterval, "interval.window", "empty window")
	}

	return Interval{Start: 0, Length: limit}, nil
}
