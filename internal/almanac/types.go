package almanac

import (
	"fmt"
	"strings"

	"range-remapper/internal/interval"
	"range-remapper/internal/pipeline"
	"range-remapper/internal/remap"
	"range-remapper/utils"
)

// Document is a parsed almanac.
type Document struct {
	Version string     `yaml:"version"`
	Seeds   []uint64   `yaml:"seeds,flow"`
	Stages  []StageDef `yaml:"stages"`
}

// StageDef is one named block of mappings.
type StageDef struct {
	Name     string          `yaml:"name"`
	Mappings []remap.Mapping `yaml:"mappings"`
	// Line is the 1-based header line in text input; 0 for YAML.
	Line int `yaml:"-"`
}

// From returns the source category of a "<from>-to-<to>" stage name.
func (s StageDef) From() string {
	from, _, _ := strings.Cut(s.Name, "-to-")
	return from
}

// To returns the destination category of a "<from>-to-<to>" stage name.
func (s StageDef) To() string {
	_, to, ok := strings.Cut(s.Name, "-to-")
	if !ok {
		return ""
	}

	return to
}

// SeedPoints returns the seeds read as individual values.
func (d *Document) SeedPoints() []uint64 {
	return append([]uint64(nil), d.Seeds...)
}

// SeedRanges returns the seeds read as (start, length) pairs.
func (d *Document) SeedRanges() (interval.Set, error) {
	pairs, rest := utils.Chunks2(d.Seeds)
	if len(rest) != 0 {
		return nil, fmt.Errorf("seed ranges need an even number of values, got %d", len(d.Seeds))
	}

	return interval.FromPairs(pairs)
}

// Pipeline builds the immutable pipeline described by d.
func (d *Document) Pipeline() (*pipeline.Pipeline, error) {
	stages := make([]*remap.Stage, 0, len(d.Stages))

	for _, sd := range d.Stages {
		st, err := remap.NewStage(sd.Name, sd.Mappings)
		if err != nil {
			return nil, err
		}

		stages = append(stages, st)
	}

	return pipeline.New(stages...), nil
}

// FromPipeline captures p and seeds as a Document, e.g. for YAML export.
func FromPipeline(p *pipeline.Pipeline, seeds []uint64) *Document {
	doc := &Document{Version: "1", Seeds: append([]uint64(nil), seeds...)}

	for _, st := range p.Stages() {
		doc.Stages = append(doc.Stages, StageDef{Name: st.Name(), Mappings: st.Mappings()})
	}

	return doc
}
