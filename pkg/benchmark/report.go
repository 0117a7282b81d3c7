package benchmark

import (
	"encoding/csv"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/samber/lo"
)

var tableHeader = []string{"Data set", "Elements", "Algorithm", "Result", "Execution time (ms)"}

func sortResults(results []Result) {
	slices.SortFunc(results, func(a, b Result) int {
		if comparison := strings.Compare(a.Dataset, b.Dataset); comparison != 0 {
			return comparison
		}
		return strings.Compare(string(a.Algorithm), string(b.Algorithm))
	})
}

func row(result Result) []string {
	count := fmt.Sprintf("%d", result.Count)
	duration := fmt.Sprintf("%d", result.Duration.Milliseconds())
	if result.TimedOut {
		count = "timeout"
		duration = fmt.Sprintf(">%d", result.Duration.Milliseconds())
	}
	return []string{result.Dataset, fmt.Sprintf("%d", result.Elements), string(result.Algorithm), count, duration}
}

// Renders results as a bordered terminal table
func RenderTable(results []Result) string {
	headerStyle := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	return table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(rowIndex, _ int) lipgloss.Style {
			if rowIndex == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(tableHeader...).
		Rows(lo.Map(results, func(result Result, _ int) []string { return row(result) })...).
		Render()
}

func WriteCSV(path string, results []Result) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	header := append([]string{"Run"}, tableHeader...)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("cannot write CSV header: %w", err)
	}

	for _, result := range results {
		if err := writer.Write(append([]string{result.RunID}, row(result)...)); err != nil {
			return fmt.Errorf("cannot write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("cannot flush CSV file: %w", err)
	}
	return file.Close()
}
