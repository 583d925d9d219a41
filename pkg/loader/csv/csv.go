package csv

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"castnet/pkg/graph"
)

const (
	columnCharacterA = "Character 1"
	columnCharacterB = "Character 2"
	columnScenes     = "Scenes Together"
)

// ParseTable parses a co-appearance CSV into graph records. The first
// non-empty row must be a header naming the "Character 1", "Character 2" and
// "Scenes Together" columns; blank rows are skipped. A row with an empty
// character name, a non-numeric weight, or a negative weight fails the whole
// parse rather than being coerced.
func ParseTable(content []byte) ([]graph.Record, error) {
	reader := csv.NewReader(bytes.NewReader(content))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var (
		records []graph.Record
		columns map[string]int
		rowNum  int
	)

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row: %w", err)
		}
		rowNum++

		if isEmptyRow(row) {
			continue
		}

		if columns == nil {
			columns, err = mapColumns(row)
			if err != nil {
				return nil, err
			}
			continue
		}

		record, err := parseRow(row, columns)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}
		records = append(records, record)
	}

	if columns == nil {
		return nil, fmt.Errorf("CSV file is empty or contains no valid data")
	}

	return records, nil
}

func mapColumns(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}

	for _, required := range []string{columnCharacterA, columnCharacterB, columnScenes} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("CSV header is missing column %q", required)
		}
	}

	return columns, nil
}

func parseRow(row []string, columns map[string]int) (graph.Record, error) {
	characterA, err := field(row, columns[columnCharacterA], columnCharacterA)
	if err != nil {
		return graph.Record{}, err
	}
	characterB, err := field(row, columns[columnCharacterB], columnCharacterB)
	if err != nil {
		return graph.Record{}, err
	}
	rawScenes, err := field(row, columns[columnScenes], columnScenes)
	if err != nil {
		return graph.Record{}, err
	}

	scenes, err := strconv.Atoi(rawScenes)
	if err != nil {
		return graph.Record{}, fmt.Errorf("invalid scene count %q", rawScenes)
	}
	if scenes < 0 {
		return graph.Record{}, fmt.Errorf("negative scene count %d", scenes)
	}

	return graph.Record{
		CharacterA:     characterA,
		CharacterB:     characterB,
		ScenesTogether: scenes,
	}, nil
}

func field(row []string, index int, name string) (string, error) {
	if index >= len(row) {
		return "", fmt.Errorf("missing value for column %q", name)
	}
	value := strings.TrimSpace(row[index])
	if value == "" {
		return "", fmt.Errorf("empty value for column %q", name)
	}
	return value, nil
}

func isEmptyRow(row []string) bool {
	for _, value := range row {
		if strings.TrimSpace(value) != "" {
			return false
		}
	}
	return true
}
