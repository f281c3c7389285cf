package pipeline

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"range-remapper/internal/common"
	"range-remapper/internal/errkind"
	"range-remapper/internal/interval"
	"range-remapper/internal/remap"
)

// cancelCheckEvery is how many candidates MinimumInputReaching tries
// between context checks.
const cancelCheckEvery = 1 << 12

// Executor runs range queries against pipelines. The zero value is not
// usable; construct with NewExecutor.
type Executor struct {
	logger      *zap.Logger
	parallelism int
	coalesce    bool
}

// Option configures an Executor.
type Option func(*Executor)

// WithLogger sets the logger used for per-stage debug output.
func WithLogger(l *zap.Logger) Option {
	return func(e *Executor) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithParallelism fans intervals of one stage out over n goroutines.
// Values below 2 run serially.
func WithParallelism(n int) Option {
	return func(e *Executor) { e.parallelism = n }
}

// WithCoalesce merges overlapping and touching intervals between stages.
// It never changes query answers, only the size of the working set.
func WithCoalesce(on bool) Option {
	return func(e *Executor) { e.coalesce = on }
}

func NewExecutor(opts ...Option) *Executor {
	e := &Executor{logger: zap.NewNop(), parallelism: 1}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// RunForward pushes initial through every stage of p. The result is the
// flat union of per-interval images; it is not deduplicated or ordered.
func (e *Executor) RunForward(ctx context.Context, p *Pipeline, initial interval.Set) (interval.Set, error) {
	if err := initial.Validate(); err != nil {
		return nil, err
	}

	current := common.Clone(initial)

	for i, st := range p.stages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		next, err := e.step(ctx, st, current)
		if err != nil {
			return nil, err
		}

		if e.coalesce {
			next = next.Canonical()
		}

		e.logger.Debug("stage applied",
			zap.Int("stage", i),
			zap.String("name", st.Name()),
			zap.Int("intervals_in", len(current)),
			zap.Int("intervals_out", len(next)))

		current = next
	}

	return current, nil
}

// MinimumOutput returns the smallest value in the forward image of initial.
func (e *Executor) MinimumOutput(ctx context.Context, p *Pipeline, initial interval.Set) (uint64, error) {
	if common.IsEmpty(initial) {
		return 0, errkind.New(errkind.InvalidInterval, "pipeline.min_output", "no input ranges")
	}

	out, err := e.RunForward(ctx, p, initial)
	if err != nil {
		return 0, err
	}

	m, _ := out.Min()

	return m, nil
}

// MinimumReachable returns the smallest output value below limit whose
// preimage lies in seeds. It answers the same question as
// MinimumInputReaching with a range-membership predicate, without scanning
// candidates, and reports SearchExhausted under the same conditions.
func (e *Executor) MinimumReachable(ctx context.Context, p *Pipeline, seeds interval.Set, limit uint64) (uint64, error) {
	if limit == 0 {
		return 0, errkind.New(errkind.SearchExhausted, "pipeline.min_reachable", "limit is zero")
	}

	window, err := interval.Window(limit)
	if err != nil {
		return 0, err
	}

	out, err := e.RunForward(ctx, p, seeds)
	if err != nil {
		return 0, err
	}

	m, ok := out.Intersect(interval.Set{window}).Min()
	if !ok {
		return 0, errkind.New(errkind.SearchExhausted, "pipeline.min_reachable", "no output below %d", limit)
	}

	return m, nil
}

// MinimumInputReaching scans candidate outputs 0, 1, ... limit-1, maps each
// backward through the inverse pipeline and returns the first whose preimage
// satisfies accept. This is the brute-force fallback: runtime is linear in
// the answer, and it is only valid when every stage is a bijection. Use
// MinimumReachable when accept is membership in a Set.
func (e *Executor) MinimumInputReaching(ctx context.Context, p *Pipeline, accept func(uint64) bool, limit uint64) (uint64, error) {
	inv, err := p.Inverse()
	if err != nil {
		return 0, err
	}

	for c := uint64(0); c < limit; c++ {
		if c%cancelCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
		}

		if accept(inv.ApplyPoint(c)) {
			e.logger.Debug("inverse search matched", zap.Uint64("candidate", c))
			return c, nil
		}
	}

	return 0, errkind.New(errkind.SearchExhausted, "pipeline.min_input_reaching", "no match among %d candidates", limit)
}

// SeedsAsPredicate returns a membership test for seeds.
func SeedsAsPredicate(seeds interval.Set) func(uint64) bool {
	canon := seeds.Canonical()
	return canon.Contains
}

func (e *Executor) step(ctx context.Context, st *remap.Stage, current interval.Set) (interval.Set, error) {
	if e.parallelism < 2 || len(current) < 2 {
		next := make(interval.Set, 0, len(current))

		for _, iv := range current {
			out, err := st.Apply(iv)
			if err != nil {
				return nil, err
			}

			next = append(next, out...)
		}

		return next, nil
	}

	parts := make([]interval.Set, len(current))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.parallelism)

	for i, iv := range current {
		i, iv := i, iv
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			out, err := st.Apply(iv)
			if err != nil {
				return err
			}

			parts[i] = out

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return common.Flatten(parts), nil
}
