package services

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"realestate-chat-api/pkg/models"
)

// Canonical column names.
const (
	ColumnLocation = "location"
	ColumnYear     = "year"
	ColumnPrice    = "price"
	ColumnDemand   = "demand"
	ColumnSupply   = "supply"
)

var requiredColumns = []string{ColumnLocation, ColumnYear, ColumnPrice}

// MissingColumnError is returned when a required column is absent after renaming.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("missing required column: %s", e.Column)
}

// InvalidRowError reports a data row whose required cell is empty or unparsable.
// Row is the 1-based row number in the source sheet, header included.
type InvalidRowError struct {
	Row    int
	Column string
	Value  string
}

func (e *InvalidRowError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("row %d: empty %s", e.Row, e.Column)
	}
	return fmt.Sprintf("row %d: invalid %s %q", e.Row, e.Column, e.Value)
}

// NormalizeHeader trims and lowercases a header cell and applies the alias table.
func NormalizeHeader(cell string, aliases map[string]string) string {
	name := strings.ToLower(strings.TrimSpace(cell))
	if canonical, ok := aliases[name]; ok {
		return canonical
	}
	return name
}

// NormalizeRows converts raw rows (header first) into a canonical Dataset.
func NormalizeRows(rows [][]string, aliases map[string]string) (models.Dataset, error) {
	if len(rows) == 0 {
		return nil, &MissingColumnError{Column: ColumnLocation}
	}

	index := make(map[string]int)
	for i, cell := range rows[0] {
		name := NormalizeHeader(cell, aliases)
		if _, exists := index[name]; !exists {
			index[name] = i
		}
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, &MissingColumnError{Column: col}
		}
	}

	dataset := make(models.Dataset, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if isBlankRow(row) {
			continue
		}
		rowNum := i + 2

		location := strings.TrimSpace(cellAt(row, index[ColumnLocation]))
		if location == "" {
			return nil, &InvalidRowError{Row: rowNum, Column: ColumnLocation}
		}

		yearStr := cellAt(row, index[ColumnYear])
		year, err := parseYear(yearStr)
		if err != nil {
			return nil, &InvalidRowError{Row: rowNum, Column: ColumnYear, Value: yearStr}
		}

		priceStr := cellAt(row, index[ColumnPrice])
		price, err := parseNumber(priceStr)
		if err != nil {
			return nil, &InvalidRowError{Row: rowNum, Column: ColumnPrice, Value: priceStr}
		}

		record := models.Record{Location: location, Year: year, Price: price}
		if idx, ok := index[ColumnDemand]; ok {
			record.Demand = optionalNumber(cellAt(row, idx))
		}
		if idx, ok := index[ColumnSupply]; ok {
			record.Supply = optionalNumber(cellAt(row, idx))
		}
		dataset = append(dataset, record)
	}

	return dataset, nil
}

func cellAt(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// parseNumber accepts "1,234.5" style cells.
func parseNumber(s string) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0, fmt.Errorf("empty value")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("not a finite number: %s", s)
	}
	return v, nil
}

// parseYear accepts "2020" and spreadsheet floats such as "2020.0".
func parseYear(s string) (int, error) {
	v, err := parseNumber(s)
	if err != nil {
		return 0, err
	}
	if v != math.Trunc(v) {
		return 0, fmt.Errorf("year is not an integer: %s", s)
	}
	return int(v), nil
}

func optionalNumber(s string) *float64 {
	v, err := parseNumber(s)
	if err != nil {
		return nil
	}
	return &v
}
