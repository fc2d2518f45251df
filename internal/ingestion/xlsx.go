package ingestion

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
)

type xlsxSource struct {
	path  string
	sheet string // first sheet when empty
}

func (s *xlsxSource) Name() string { return s.path }

func (s *xlsxSource) Read(ctx context.Context) ([]string, [][]string, error) {
	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, nil, fmt.Errorf("error opening workbook: %w", err)
	}
	defer f.Close()

	sheet := s.sheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, nil, fmt.Errorf("error reading sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("sheet %q is empty", sheet)
	}

	return rows[0], rows[1:], nil
}
