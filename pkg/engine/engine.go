package engine

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"math/big"
	"os"
	"slices"
	"time"

	"github.com/wildfunctions/reach_target/pkg/expr"
	"github.com/wildfunctions/reach_target/pkg/rational"
	"github.com/wildfunctions/reach_target/pkg/shape"
	"github.com/wildfunctions/reach_target/pkg/strategy"
)

var (
	ErrNoValues      = errors.New("engine: no input values")
	ErrUnknownFormat = errors.New("engine: unknown output format")
)

// progressEvery is how many candidates pass between debug progress lines.
const progressEvery = 1 << 20

// Engine runs the exhaustive search for an expression reaching the target.
type Engine struct {
	cfg      Config
	strategy strategy.Strategy
	values   []rational.Rational
	target   rational.Rational
	logger   *slog.Logger
}

// Option customizes an Engine.
type Option func(*Engine)

// WithLogger replaces the default stderr logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// New creates a new engine from the given config.
func New(cfg Config, opts ...Option) (*Engine, error) {
	if len(cfg.Values) == 0 {
		return nil, ErrNoValues
	}
	target, err := rational.Parse(cfg.Target)
	if err != nil {
		return nil, fmt.Errorf("target: %w", err)
	}
	s, err := strategy.Get(cfg.Strategy)
	if err != nil {
		return nil, err
	}
	if !slices.Contains(Formats(), cfg.Format) {
		return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownFormat, cfg.Format, Formats())
	}

	e := &Engine{
		cfg:      cfg,
		strategy: s,
		values:   rational.FromInts(cfg.Values),
		target:   target,
		logger:   defaultLogger(os.Stderr, cfg.Verbose),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

func defaultLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Enumerate yields every expression instance over values in the order of s.
// It panics if fewer than two values are given; a single value forms no
// expression and must be handled by the caller.
func Enumerate(values []int64, s strategy.Strategy) iter.Seq[*expr.Instance] {
	return s.Instances(rational.FromInts(values), shape.Enumerate(len(values)))
}

// SearchSpace returns the number of candidates for n values:
// n! permutations x 4^(n-1) operator assignments x shapes.
func SearchSpace(n int, shapes int) *big.Int {
	if n < 1 {
		return new(big.Int)
	}
	total := new(big.Int).MulRange(1, int64(n))
	ops := new(big.Int).Exp(big.NewInt(int64(len(expr.Operators()))), big.NewInt(int64(n-1)), nil)
	total.Mul(total, ops)
	return total.Mul(total, big.NewInt(int64(shapes)))
}

// Run searches until the first candidate equal to the target, or until the
// search space (or the configured candidate cap) is exhausted.
func (e *Engine) Run() Report {
	start := time.Now()

	var shapes []*shape.Shape
	if len(e.values) == 1 {
		shapes = []*shape.Shape{shape.Leaf()}
	} else {
		shapes = shape.Enumerate(len(e.values))
	}

	e.logger.Info("search started",
		slog.Any("values", e.cfg.Values),
		slog.String("target", e.target.String()),
		slog.String("strategy", e.strategy.Name()),
		slog.Int("shapes", len(shapes)),
		slog.String("space", SearchSpace(len(e.values), len(shapes)).String()))

	report := Report{
		Values:   e.cfg.Values,
		Target:   e.target.String(),
		Strategy: e.strategy.Name(),
	}

	for in := range e.strategy.Instances(e.values, shapes) {
		if e.cfg.MaxCandidates > 0 && report.Candidates >= e.cfg.MaxCandidates {
			report.Truncated = true
			break
		}
		report.Candidates++
		if report.Candidates%progressEvery == 0 {
			e.logger.Debug("search progress",
				slog.Int64("candidates", report.Candidates),
				slog.Int64("pruned", report.Pruned))
		}

		v, ok := in.Evaluate()
		if !ok {
			report.Pruned++
			continue
		}
		if rational.Equal(v, e.target) {
			report.Found = true
			report.Expression = in.String()
			report.LaTeX = in.LaTeX()
			report.Value = v.String()
			break
		}
	}
	report.Elapsed = time.Since(start)

	e.logger.Info("search finished",
		slog.Bool("found", report.Found),
		slog.Bool("truncated", report.Truncated),
		slog.Int64("candidates", report.Candidates),
		slog.Int64("pruned", report.Pruned),
		slog.Duration("elapsed", report.Elapsed))

	return report
}
