// Package benchmark runs every (dataset, algorithm) pair on a bounded pool of workers, times each run and checks
// that all algorithms agree on every dataset.
package benchmark

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/limaJavier/threemul/pkg/counter"
	"github.com/limaJavier/threemul/pkg/dataset"
	"github.com/samber/lo"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Result struct {
	RunID     string
	Dataset   string
	Elements  int
	Algorithm counter.Algorithm
	Count     uint64
	Duration  time.Duration
	TimedOut  bool
}

type task struct {
	dataset   dataset.Dataset
	algorithm counter.Algorithm
}

type Runner struct {
	runID   string
	workers int
	timeout time.Duration
	logger  *zap.Logger
	metrics *Metrics
}

// Creates a runner executing at most workers runs at a time. A positive timeout bounds how long a single run is
// waited for; the counting itself cannot be interrupted and keeps its goroutine until it returns.
// logger and metrics may be nil.
func NewRunner(workers int, timeout time.Duration, logger *zap.Logger, metrics *Metrics) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	runID := uuid.NewString()
	return &Runner{
		runID:   runID,
		workers: max(1, workers),
		timeout: timeout,
		logger:  logger.With(zap.String("run_id", runID)),
		metrics: metrics,
	}
}

func (runner *Runner) RunID() string {
	return runner.runID
}

// Runs every algorithm on every dataset, which must have distinct names. Results are sorted by dataset, then algorithm.
func (runner *Runner) Run(ctx context.Context, datasets []dataset.Dataset, algorithms []counter.Algorithm) ([]Result, error) {
	if err := dataset.CheckUniqueNames(datasets); err != nil {
		return nil, err
	}

	counters := make(map[counter.Algorithm]counter.Counter, len(algorithms))
	for _, algorithm := range algorithms {
		c, ok := counter.New(algorithm)
		if !ok {
			return nil, fmt.Errorf("%v is not a valid algorithm", algorithm)
		}
		counters[algorithm] = c
	}

	tasks := make([]task, 0, len(datasets)*len(algorithms))
	for _, algorithm := range algorithms {
		for _, data := range datasets {
			tasks = append(tasks, task{dataset: data, algorithm: algorithm})
		}
	}

	runner.logger.Info("Starting benchmark",
		zap.Int("datasets", len(datasets)),
		zap.Int("algorithms", len(algorithms)),
		zap.Int("workers", runner.workers))

	results := make([]Result, len(tasks))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(runner.workers)
	for i, current := range tasks {
		group.Go(func() error {
			result, err := runner.measure(groupCtx, counters[current.algorithm], current)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	sortResults(results)
	return results, nil
}

func (runner *Runner) measure(ctx context.Context, c counter.Counter, current task) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	logger := runner.logger.With(
		zap.String("dataset", current.dataset.Name),
		zap.String("algorithm", string(current.algorithm)),
		zap.Int("elements", len(current.dataset.Sequence)))
	logger.Debug("Benchmarking")

	result := Result{
		RunID:     runner.runID,
		Dataset:   current.dataset.Name,
		Elements:  len(current.dataset.Sequence),
		Algorithm: current.algorithm,
	}

	done := make(chan uint64, 1)
	start := time.Now()
	go func() {
		done <- c.Count(current.dataset.Sequence)
	}()

	var expired <-chan time.Time
	if runner.timeout > 0 {
		timer := time.NewTimer(runner.timeout)
		defer timer.Stop()
		expired = timer.C
	}

	select {
	case count := <-done:
		result.Count = count
		result.Duration = time.Since(start)
	case <-expired:
		result.TimedOut = true
		result.Duration = runner.timeout
		logger.Warn("Run timed out", zap.Duration("timeout", runner.timeout))
	case <-ctx.Done():
		return Result{}, ctx.Err()
	}

	if !result.TimedOut {
		logger.Info("Run finished", zap.Uint64("result", result.Count), zap.Duration("elapsed", result.Duration))
	}
	if runner.metrics != nil {
		runner.metrics.Observe(result)
	}
	return result, nil
}

// Checks that every finished run of a dataset produced the same count
func (runner *Runner) Verify(results []Result) error {
	perDataset := lo.GroupBy(
		lo.Filter(results, func(result Result, _ int) bool { return !result.TimedOut }),
		func(result Result) string { return result.Dataset },
	)

	disagreements := make([]Disagreement, 0)
	for _, name := range lo.Uniq(lo.Map(results, func(result Result, _ int) string { return result.Dataset })) {
		runs := perDataset[name]
		if len(lo.UniqBy(runs, func(result Result) uint64 { return result.Count })) > 1 {
			disagreement := Disagreement{Dataset: name, Counts: make(map[counter.Algorithm]uint64, len(runs))}
			for _, run := range runs {
				disagreement.Counts[run.Algorithm] = run.Count
			}
			disagreements = append(disagreements, disagreement)
			runner.logger.Error("Algorithms disagree", zap.String("dataset", name), zap.Any("counts", disagreement.Counts))
		}
	}

	if runner.metrics != nil {
		runner.metrics.disagreements.Add(float64(len(disagreements)))
	}
	if len(disagreements) > 0 {
		return DisagreementError{Disagreements: disagreements}
	}
	return nil
}
