package remap

import (
	"fmt"

	"range-remapper/internal/interval"
)

// Mapping translates [SourceStart, SourceStart+Length) onto
// [DestStart, DestStart+Length) point by point.
type Mapping struct {
	DestStart   uint64 `yaml:"dest"`
	SourceStart uint64 `yaml:"source"`
	Length      uint64 `yaml:"length"`
}

// Source returns the domain of the mapping.
func (m Mapping) Source() interval.Interval {
	return interval.Interval{Start: m.SourceStart, Length: m.Length}
}

// Dest returns the image of the mapping.
func (m Mapping) Dest() interval.Interval {
	return interval.Interval{Start: m.DestStart, Length: m.Length}
}

// Offset is DestStart-SourceStart in wrapping uint64 arithmetic.
func (m Mapping) Offset() uint64 {
	return m.DestStart - m.SourceStart
}

// Translate maps v, which must lie in Source, to its image.
func (m Mapping) Translate(v uint64) uint64 {
	return v + m.Offset()
}

// Inverse swaps source and destination.
func (m Mapping) Inverse() Mapping {
	return Mapping{DestStart: m.SourceStart, SourceStart: m.DestStart, Length: m.Length}
}

func (m Mapping) String() string {
	return fmt.Sprintf("%s -> %s", m.Source(), m.Dest())
}
