// Package config holds the benchmark configuration
package config

import (
	"fmt"
	"os"
	"runtime"
	"slices"
	"strconv"
	"time"

	"github.com/limaJavier/threemul/pkg/counter"
	"github.com/limaJavier/threemul/pkg/dataset"
)

type Config struct {
	Size       int           // Elements per synthetic dataset
	Workers    int           // Concurrent benchmark runs
	Datasets   []string      // Synthetic datasets to generate; all of them if empty
	Files      []string      // Sequence files to benchmark in addition to the synthetic datasets
	Algorithms []string      // Algorithms run on every dataset
	CSV        string        // Path of the CSV report; no report if empty
	Metrics    string        // Path of the Prometheus textfile; no metrics if empty
	Timeout    time.Duration // Upper bound on waiting for a single run; 0 disables it
}

func Default() *Config {
	return &Config{
		Size:       dataset.DefaultSize,
		Workers:    max(2, runtime.NumCPU()/2),
		Algorithms: []string{string(counter.Quadratic), string(counter.Subquadratic)},
		CSV:        "benchmark_results.csv",
	}
}

func (cfg *Config) Validate() error {
	if cfg.Size <= 0 {
		return fmt.Errorf("size must be positive: %v", cfg.Size)
	} else if cfg.Workers <= 0 {
		return fmt.Errorf("workers must be positive: %v", cfg.Workers)
	} else if cfg.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative: %v", cfg.Timeout)
	} else if len(cfg.Algorithms) == 0 {
		return fmt.Errorf("at least one algorithm must be specified")
	}

	for _, name := range cfg.Datasets {
		if !slices.Contains(dataset.Names(), name) {
			return fmt.Errorf("%v is not a valid dataset", name)
		}
	}
	for _, algorithm := range cfg.Algorithms {
		if _, ok := counter.New(counter.Algorithm(algorithm)); !ok {
			return fmt.Errorf("%v is not a valid algorithm", algorithm)
		}
	}
	return nil
}

func applyEnvironmentOverrides(cfg *Config) error {
	if size := os.Getenv("THREEMUL_SIZE"); size != "" {
		value, err := strconv.Atoi(size)
		if err != nil {
			return fmt.Errorf("invalid THREEMUL_SIZE: %w", err)
		}
		cfg.Size = value
	}
	if workers := os.Getenv("THREEMUL_WORKERS"); workers != "" {
		value, err := strconv.Atoi(workers)
		if err != nil {
			return fmt.Errorf("invalid THREEMUL_WORKERS: %w", err)
		}
		cfg.Workers = value
	}
	if csv, ok := os.LookupEnv("THREEMUL_CSV"); ok {
		cfg.CSV = csv
	}
	if metrics, ok := os.LookupEnv("THREEMUL_METRICS"); ok {
		cfg.Metrics = metrics
	}
	return nil
}
