package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/limaJavier/threemul/pkg/benchmark"
	"github.com/limaJavier/threemul/pkg/config"
	"github.com/limaJavier/threemul/pkg/counter"
	"github.com/limaJavier/threemul/pkg/dataset"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

func main() {
	configPathPtr := flag.String("config", "", "Path to a JSON or YAML configuration file; defaults and THREEMUL_* environment variables are used if empty")
	sizePtr := flag.Int("size", 0, "Elements per synthetic dataset, overriding the configuration when positive")
	verbosePtr := flag.Bool("verbose", false, "Log every run at debug level")
	flag.Parse()

	logger := newLogger(*verbosePtr)
	defer logger.Sync()

	cfg, err := config.Load(*configPathPtr)
	if err != nil {
		logger.Fatal("cannot load configuration", zap.Error(err))
	}
	if *sizePtr > 0 {
		cfg.Size = *sizePtr
	}

	datasets, err := loadDatasets(cfg)
	if err != nil {
		logger.Fatal("cannot build datasets", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	metrics := benchmark.NewMetrics()
	runner := benchmark.NewRunner(cfg.Workers, cfg.Timeout, logger, metrics)
	results, err := runner.Run(ctx, datasets, algorithms(cfg))
	if err != nil {
		logger.Fatal("benchmark failed", zap.Error(err))
	}

	fmt.Println(benchmark.RenderTable(results))

	if cfg.CSV != "" {
		if err := benchmark.WriteCSV(cfg.CSV, results); err != nil {
			logger.Fatal("cannot write CSV report", zap.Error(err))
		}
	}

	verification := runner.Verify(results)
	if cfg.Metrics != "" {
		if err := metrics.WriteToTextfile(cfg.Metrics); err != nil {
			logger.Fatal("cannot write metrics", zap.Error(err))
		}
	}
	if verification != nil {
		logger.Fatal("verification failed", zap.Error(verification))
	}
	logger.Info("Benchmark finished", zap.String("run_id", runner.RunID()), zap.Int("runs", len(results)))
}

func newLogger(verbose bool) *zap.Logger {
	var (
		logger *zap.Logger
		err    error
	)
	if verbose {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		panic(fmt.Sprintf("cannot build logger: %v", err))
	}
	return logger
}

// Generates the configured synthetic datasets and appends the ones read from the configured files
func loadDatasets(cfg *config.Config) ([]dataset.Dataset, error) {
	datasets, err := dataset.GenerateAll(cfg.Datasets, cfg.Size)
	if err != nil {
		return nil, err
	}
	for _, file := range cfg.Files {
		fromFile, err := dataset.InputFromFile(file)
		if err != nil {
			return nil, err
		}
		datasets = append(datasets, fromFile...)
	}
	if err := dataset.CheckUniqueNames(datasets); err != nil {
		return nil, err
	}
	return datasets, nil
}

func algorithms(cfg *config.Config) []counter.Algorithm {
	return lo.Map(cfg.Algorithms, func(algorithm string, _ int) counter.Algorithm { return counter.Algorithm(algorithm) })
}
