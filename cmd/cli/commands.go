package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/limaJavier/threemul/pkg/benchmark"
	"github.com/limaJavier/threemul/pkg/counter"
	"github.com/limaJavier/threemul/pkg/dataset"
	"github.com/limaJavier/threemul/pkg/divisor"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const argumentsDataset = "arguments"

type application struct {
	verbose bool
	log     *zap.Logger

	// count
	algorithm string
	file      string

	// triples
	list bool
}

func (cli *application) logger() *zap.Logger {
	if cli.log != nil {
		return cli.log
	}

	var err error
	if cli.verbose {
		cli.log, err = zap.NewDevelopment()
	} else {
		cli.log, err = zap.NewProduction(zap.IncreaseLevel(zap.WarnLevel))
	}
	if err != nil {
		cli.log = zap.NewNop()
	}
	return cli.log
}

func (cli *application) sync() {
	if cli.log != nil {
		_ = cli.log.Sync()
	}
}

func (cli *application) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "threemul",
		Short:         "Count positions whose value is the product of three later values",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&cli.verbose, "verbose", "v", false, "Log every run at debug level")

	count := &cobra.Command{
		Use:   "count [values...]",
		Short: "Count the quadruples of a sequence given as arguments or read from a file",
		Long: `Counts the quadruples (p0, p1, p2, p3), p0 < p1 < p2 < p3, such that the value at p0 equals the
product of the values at p1, p2 and p3. Sequences come from the arguments, from --file (JSON or YAML) or both.`,
		RunE: cli.count,
	}
	count.Flags().StringVarP(&cli.algorithm, "algorithm", "a", string(counter.Subquadratic),
		fmt.Sprintf("Counting algorithm. Allowed values are: %v and \"all\", which also checks that they agree", quoted(counter.Algorithms())))
	count.Flags().StringVarP(&cli.file, "file", "f", "", "Path to a JSON or YAML sequence file")

	divisors := &cobra.Command{
		Use:   "divisors VALUE",
		Short: "List every divisor of a value in ascending order",
		Args:  cobra.ExactArgs(1),
		RunE:  cli.divisors,
	}

	triples := &cobra.Command{
		Use:   "triples VALUE",
		Short: "Count the unordered three-factor decompositions of a value",
		Args:  cobra.ExactArgs(1),
		RunE:  cli.triples,
	}
	triples.Flags().BoolVarP(&cli.list, "list", "l", false, "Print every decomposition as largest, middle and smallest factor")

	root.AddCommand(count, divisors, triples)
	return root
}

func (cli *application) count(cmd *cobra.Command, args []string) error {
	algorithms, err := parseAlgorithm(cli.algorithm)
	if err != nil {
		return err
	}

	datasets := make([]dataset.Dataset, 0)
	if cli.file != "" {
		fromFile, err := dataset.InputFromFile(cli.file)
		if err != nil {
			return err
		}
		datasets = append(datasets, fromFile...)
	}
	if len(args) > 0 || cli.file == "" {
		sequence, err := parseValues(args)
		if err != nil {
			return err
		}
		datasets = append(datasets, dataset.Dataset{Name: argumentsDataset, Sequence: sequence})
	}

	runner := benchmark.NewRunner(1, 0, cli.logger(), nil)
	results, err := runner.Run(cmd.Context(), datasets, algorithms)
	if err != nil {
		return err
	}

	printCounts(cmd.OutOrStdout(), results, len(algorithms) > 1)
	return runner.Verify(results)
}

func (cli *application) divisors(cmd *cobra.Command, args []string) error {
	value, err := parseValue(args[0])
	if err != nil {
		return err
	}
	divisors := divisor.AllDivisors(value)
	fmt.Fprintln(cmd.OutOrStdout(), strings.Join(lo.Map(divisors, func(d uint64, _ int) string { return strconv.FormatUint(d, 10) }), " "))
	return nil
}

func (cli *application) triples(cmd *cobra.Command, args []string) error {
	value, err := parseValue(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !cli.list {
		fmt.Fprintln(out, divisor.CountFactorTriples(value))
		return nil
	}
	for _, triple := range divisor.Triples(value) {
		fmt.Fprintf(out, "%d %d %d\n", triple[0], triple[1], triple[2])
	}
	return nil
}

// Prints one count per dataset, prefixed by the algorithm when several ran
func printCounts(out io.Writer, results []benchmark.Result, withAlgorithm bool) {
	for _, result := range results {
		if withAlgorithm {
			fmt.Fprintf(out, "%v\t%v\t%d\n", result.Dataset, result.Algorithm, result.Count)
		} else {
			fmt.Fprintf(out, "%v\t%d\n", result.Dataset, result.Count)
		}
	}
}

func parseAlgorithm(name string) ([]counter.Algorithm, error) {
	name = strings.ToLower(name)
	if name == "all" {
		return counter.Algorithms(), nil
	} else if _, ok := counter.New(counter.Algorithm(name)); !ok {
		return nil, fmt.Errorf("%v is not a valid algorithm", name)
	}
	return []counter.Algorithm{counter.Algorithm(name)}, nil
}

func parseValues(args []string) ([]uint64, error) {
	values := make([]uint64, 0, len(args))
	for _, arg := range args {
		value, err := parseValue(arg)
		if err != nil {
			return nil, err
		}
		values = append(values, value)
	}
	return values, nil
}

func parseValue(arg string) (uint64, error) {
	value, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not an unsigned 64-bit integer: %w", arg, err)
	}
	return value, nil
}

func quoted(algorithms []counter.Algorithm) string {
	return strings.Join(lo.Map(algorithms, func(algorithm counter.Algorithm, _ int) string {
		return strconv.Quote(string(algorithm))
	}), ", ")
}

