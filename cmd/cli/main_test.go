package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/limaJavier/threemul/pkg/benchmark"
	"github.com/limaJavier/threemul/pkg/counter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func execute(t *testing.T, args ...string) (string, error) {
	cli := &application{log: zaptest.NewLogger(t)}
	root := cli.rootCommand()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestCount(t *testing.T) {
	t.Run("Arguments", func(t *testing.T) {
		out, err := execute(t, "count", "8", "2", "2", "2", "2")
		require.NoError(t, err)
		assert.Equal(t, "arguments\t4\n", out)
	})

	t.Run("Zero after overflowing factors", func(t *testing.T) {
		out, err := execute(t, "count", "--algorithm", "all", "0", "18446744073709551615", "18446744073709551615", "0")
		require.NoError(t, err)
		assert.Equal(t, "arguments\tbruteforce\t1\narguments\tquadratic\t1\narguments\tsubquadratic\t1\n", out)
	})

	t.Run("All algorithms", func(t *testing.T) {
		out, err := execute(t, "count", "--algorithm", "all", "0", "0", "5", "7")
		require.NoError(t, err)
		assert.Equal(t, "arguments\tbruteforce\t1\narguments\tquadratic\t1\narguments\tsubquadratic\t1\n", out)
	})

	t.Run("File", func(t *testing.T) {
		//** Arrange
		file := filepath.Join(t.TempDir(), "sequences.yaml")
		content := "datasets:\n  - name: cube\n    sequence: [8, 2, 2, 2]\n  - name: none\n    sequence: [2, 3, 5, 30]\n"
		require.NoError(t, os.WriteFile(file, []byte(content), 0666))

		//** Act
		out, err := execute(t, "count", "-a", "quadratic", "--file", file)

		//** Assert
		require.NoError(t, err)
		assert.Equal(t, "cube\t1\nnone\t0\n", out)
	})

	t.Run("Invalid input", func(t *testing.T) {
		_, err := execute(t, "count", "1", "-2")
		assert.Error(t, err)

		_, err = execute(t, "count", "--algorithm", "cubic", "1")
		assert.Error(t, err)

		_, err = execute(t, "count", "--file", filepath.Join(t.TempDir(), "missing.json"))
		assert.Error(t, err)

		// A file dataset named like the arguments dataset
		file := filepath.Join(t.TempDir(), "arguments.json")
		require.NoError(t, os.WriteFile(file, []byte("[1, 1, 1, 1]"), 0666))
		_, err = execute(t, "count", "--file", file, "1", "1", "1", "1")
		assert.ErrorContains(t, err, "arguments")
	})
}

func TestDivisors(t *testing.T) {
	out, err := execute(t, "divisors", "12")
	require.NoError(t, err)
	assert.Equal(t, "1 2 3 4 6 12\n", out)

	_, err = execute(t, "divisors")
	assert.Error(t, err)
}

func TestTriples(t *testing.T) {
	out, err := execute(t, "triples", "720720")
	require.NoError(t, err)
	assert.Equal(t, "1218\n", out)

	out, err = execute(t, "triples", "--list", "8")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"8 1 1", "4 2 1", "2 2 2"}, splitLines(out))
}

func TestParseAlgorithm(t *testing.T) {
	algorithms, err := parseAlgorithm("ALL")
	require.NoError(t, err)
	assert.Equal(t, counter.Algorithms(), algorithms)

	algorithms, err = parseAlgorithm("quadratic")
	require.NoError(t, err)
	assert.Equal(t, []counter.Algorithm{counter.Quadratic}, algorithms)

	_, err = parseAlgorithm("")
	assert.Error(t, err)
}

func TestPrintCounts(t *testing.T) {
	results := []benchmark.Result{{Dataset: "a", Algorithm: counter.Quadratic, Count: 3}}
	out := &bytes.Buffer{}
	printCounts(out, results, true)
	assert.Equal(t, "a\tquadratic\t3\n", out.String())
}

func splitLines(text string) []string {
	lines := bytes.Split(bytes.TrimSpace([]byte(text)), []byte("\n"))
	result := make([]string, len(lines))
	for i, line := range lines {
		result[i] = string(line)
	}
	return result
}
