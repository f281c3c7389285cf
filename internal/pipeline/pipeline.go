package pipeline

import (
	"slices"

	"range-remapper/internal/errkind"
	"range-remapper/internal/remap"
)

// Pipeline is an ordered sequence of stages. Stage i's output domain is
// stage i+1's input domain.
type Pipeline struct {
	stages []*remap.Stage
}

// New builds a pipeline from stages in application order. Nil stages are
// treated as identity.
func New(stages ...*remap.Stage) *Pipeline {
	return &Pipeline{stages: slices.Clone(stages)}
}

// Stages returns the stages in application order.
func (p *Pipeline) Stages() []*remap.Stage {
	return slices.Clone(p.stages)
}

// Len returns the number of stages.
func (p *Pipeline) Len() int {
	return len(p.stages)
}

// ApplyPoint maps v through every stage.
func (p *Pipeline) ApplyPoint(v uint64) uint64 {
	for _, st := range p.stages {
		v = st.ApplyPoint(v)
	}

	return v
}

// Trace returns v's value after each stage; Trace(v)[i] is the output of stage i.
func (p *Pipeline) Trace(v uint64) []uint64 {
	out := make([]uint64, len(p.stages))
	for i, st := range p.stages {
		v = st.ApplyPoint(v)
		out[i] = v
	}

	return out
}

// Inverse reverses stage order and swaps source and destination in every
// mapping. It fails with MalformedStage if a stage's destinations overlap.
func (p *Pipeline) Inverse() (*Pipeline, error) {
	inv := make([]*remap.Stage, len(p.stages))

	for i, st := range p.stages {
		s, err := st.Inverse()
		if err != nil {
			return nil, err
		}

		inv[len(p.stages)-1-i] = s
	}

	return &Pipeline{stages: inv}, nil
}

// MinimumPointOutput returns the smallest image of the given individual values.
func (p *Pipeline) MinimumPointOutput(points []uint64) (uint64, error) {
	if len(points) == 0 {
		return 0, errkind.New(errkind.InvalidInterval, "pipeline.min_point", "no input points")
	}

	best := p.ApplyPoint(points[0])
	for _, v := range points[1:] {
		best = min(best, p.ApplyPoint(v))
	}

	return best, nil
}
