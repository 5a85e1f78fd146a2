package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"
)

// DatasetSource yields the raw table (header row first) a Dataset is built from.
type DatasetSource interface {
	Name() string
	Rows(ctx context.Context) ([][]string, error)
}

// SourceConfig selects and configures a DatasetSource.
type SourceConfig struct {
	Kind  string // xlsx, csv, sqlite, postgres, mysql
	Path  string
	Sheet string
	DSN   string
	Table string
}

// NewDatasetSource builds the source named by cfg.Kind.
func NewDatasetSource(cfg SourceConfig) (DatasetSource, error) {
	switch cfg.Kind {
	case "", "xlsx":
		return &XLSXSource{Path: cfg.Path, Sheet: cfg.Sheet}, nil
	case "csv":
		return &CSVSource{Path: cfg.Path}, nil
	case "sqlite", "postgres", "mysql":
		return NewSQLSource(cfg.Kind, cfg.DSN, cfg.Table)
	default:
		return nil, fmt.Errorf("unsupported data source: %s", cfg.Kind)
	}
}

// XLSXSource reads the first (or named) sheet of an Excel workbook.
type XLSXSource struct {
	Path  string
	Sheet string
}

func (s *XLSXSource) Name() string { return "xlsx:" + s.Path }

func (s *XLSXSource) Rows(_ context.Context) ([][]string, error) {
	f, err := excelize.OpenFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", s.Path, err)
	}
	defer f.Close()

	sheet := s.Sheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	return rows, nil
}

// CSVSource reads a comma-separated file.
type CSVSource struct {
	Path string
}

func (s *CSVSource) Name() string { return "csv:" + s.Path }

func (s *CSVSource) Rows(_ context.Context) ([][]string, error) {
	file, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open csv %s: %w", s.Path, err)
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv %s: %w", s.Path, err)
	}
	return rows, nil
}
