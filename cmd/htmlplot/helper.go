package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// readCSVGrid parses a CSV file into a numeric grid. With xHeader the
// first row is returned as column labels; with yHeader the first column
// of every data row is returned as row labels. When both are set, the
// header row's corner field is discarded.
func readCSVGrid(path string, xHeader, yHeader bool) (grid [][]float64, xticks, yticks []string, err error) {
	// #nosec G304 -- path is a user-supplied input file by design
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, nil, nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if xHeader && len(records) > 0 {
		xticks = records[0]
		records = records[1:]
		if yHeader && len(xticks) > 0 {
			xticks = xticks[1:]
		}
	}

	for i, rec := range records {
		if yHeader && len(rec) > 0 {
			yticks = append(yticks, rec[0])
			rec = rec[1:]
		}
		row := make([]float64, 0, len(rec))
		for j, field := range rec {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, nil, nil, fmt.Errorf("%s: row %d, column %d: %q is not a number", path, i+1, j+1, field)
			}
			row = append(row, v)
		}
		grid = append(grid, row)
	}
	return grid, xticks, yticks, nil
}

func splitLabels(s string) []string {
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// columnLabel produces spreadsheet-style column names: A..Z, AA, AB, ...
func columnLabel(i int) string {
	label := ""
	for i >= 0 {
		label = string(rune('A'+i%26)) + label
		i = i/26 - 1
	}
	return label
}

func writeOutput(path, content string) error {
	if path == "" {
		_, err := fmt.Print(content)
		return err
	}
	return os.WriteFile(path, []byte(content), 0644)
}
