package almanac

import (
	"fmt"

	"range-remapper/internal/diagnostic"
	"range-remapper/internal/remap"
	"range-remapper/utils"
)

// Validate checks the whole document and reports every problem found.
// A document with no errors always builds with Pipeline.
func (d *Document) Validate() *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if d == nil {
		res.AddError("document_is_nil", "almanac is nil", "", "")
		return res
	}

	if len(d.Seeds) == 0 {
		res.AddWarning("no_seeds", "almanac has no seeds", "", "")
	}

	if len(d.Seeds)%2 != 0 {
		res.AddInfo("odd_seed_count", fmt.Sprintf("%d seeds cannot be read as ranges", len(d.Seeds)), "", "seeds")
	}

	seen := make(map[string]int, len(d.Stages))

	for i := range d.Stages {
		sd := &d.Stages[i]

		if prev, ok := seen[sd.Name]; ok {
			res.AddWarning("duplicate_stage", fmt.Sprintf("stage name also used by stage %d", prev), sd.Name, sd.location(-1))
		} else {
			seen[sd.Name] = i
		}

		if i > 0 {
			prev := d.Stages[i-1]
			if prev.To() != "" && sd.From() != "" && prev.To() != sd.From() {
				res.AddWarning("category_mismatch",
					fmt.Sprintf("stage consumes %q but previous stage produces %q", sd.From(), prev.To()),
					sd.Name, sd.location(-1))
			}
		}

		validateStage(res, sd)
	}

	return res
}

func validateStage(res *diagnostic.Diagnostics, sd *StageDef) {
	if len(sd.Mappings) == 0 {
		res.AddWarning("empty_stage", "stage has no mappings and acts as identity", sd.Name, sd.location(-1))
		return
	}

	before := len(res.Errors)

	for i, m := range sd.Mappings {
		if m.Length == 0 {
			res.AddError("zero_length", "mapping has zero length", sd.Name, sd.location(i))
			continue
		}

		if _, ok := utils.CheckedAdd(m.SourceStart, m.Length); !ok {
			res.AddError("source_overflow", "source range overflows uint64", sd.Name, sd.location(i))
		}

		if _, ok := utils.CheckedAdd(m.DestStart, m.Length); !ok {
			res.AddError("dest_overflow", "destination range overflows uint64", sd.Name, sd.location(i))
		}
	}

	// overlap positions are meaningless for degenerate ranges
	if len(res.Errors) > before {
		return
	}

	for _, o := range remap.FindOverlaps(sd.Mappings) {
		res.AddError("overlapping_mappings",
			fmt.Sprintf("mapping %s overlaps %s", sd.Mappings[o.First].Source(), sd.Mappings[o.Second].Source()),
			sd.Name, sd.location(o.First)+" / "+sd.location(o.Second))
	}
}

// location describes mapping i of the stage, or the stage itself for i < 0.
func (s *StageDef) location(i int) string {
	switch {
	case i < 0 && s.Line > 0:
		return fmt.Sprintf("line %d", s.Line)
	case i < 0:
		return ""
	case s.Line > 0:
		return fmt.Sprintf("line %d", s.Line+1+i)
	default:
		return fmt.Sprintf("mapping[%d]", i)
	}
}
