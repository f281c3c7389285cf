package interval

import (
	"fmt"

	"range-remapper/internal/errkind"
	"range-remapper/utils"
)

// Interval is the half-open range [Start, Start+Length).
type Interval struct {
	Start  uint64 `yaml:"start"`
	Length uint64 `yaml:"length"`
}

// New returns a validated interval.
func New(start, length uint64) (Interval, error) {
	iv := Interval{Start: start, Length: length}
	if err := iv.Validate(); err != nil {
		return Interval{}, err
	}

	return iv, nil
}

// FromBounds returns the interval [start, end).
func FromBounds(start, end uint64) (Interval, error) {
	if end <= start {
		return Interval{}, errkind.New(errkind.InvalidInterval, "interval.bounds", "empty bounds [%d, %d)", start, end)
	}

	return Interval{Start: start, Length: end - start}, nil
}

// Validate rejects zero-length intervals and intervals whose end overflows.
func (i Interval) Validate() error {
	if i.Length == 0 {
		return errkind.New(errkind.InvalidInterval, "interval.validate", "zero length at %d", i.Start)
	}

	if _, ok := utils.CheckedAdd(i.Start, i.Length); !ok {
		return errkind.New(errkind.InvalidInterval, "interval.validate", "start %d + length %d overflows", i.Start, i.Length)
	}

	return nil
}

// End returns the exclusive upper bound.
func (i Interval) End() uint64 {
	return i.Start + i.Length
}

// Contains reports whether v lies in the interval.
func (i Interval) Contains(v uint64) bool {
	if i.Length == 0 {
		return false
	}

	return utils.IsInRange(i.Start, v, i.End()-1)
}

// Intersect returns the overlap of i and o and whether it is non-empty.
func (i Interval) Intersect(o Interval) (Interval, bool) {
	lo := max(i.Start, o.Start)
	hi := min(i.End(), o.End())

	if lo >= hi {
		return Interval{}, false
	}

	return Interval{Start: lo, Length: hi - lo}, true
}

// Overlaps reports whether i and o share at least one point.
func (i Interval) Overlaps(o Interval) bool {
	_, ok := i.Intersect(o)
	return ok
}

// Shift translates the interval by offset using wrapping uint64 arithmetic,
// so an offset of -k is expressed as 0-k.
func (i Interval) Shift(offset uint64) Interval {
	return Interval{Start: i.Start + offset, Length: i.Length}
}

func (i Interval) String() string {
	return fmt.Sprintf("[%d, %d)", i.Start, i.End())
}
