// Package export writes the aggregate tables of one filtered summary to a
// workbook or a SQLite file.
package export

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/mr1hm/wildlife-strikes/internal/dataset"
	"github.com/mr1hm/wildlife-strikes/internal/repository"
)

// Sheet names in the workbook and table names in SQLite, per aggregate.
const (
	SheetFilter  = "Filter"
	SheetSpecies = "Species"
	SheetYearly  = "Yearly"
	SheetPhases  = "Phases"

	TableSpecies = "species_counts"
	TableYearly  = "yearly_counts"
	TablePhases  = "phase_counts"
)

// Write picks the output format from the extension of path.
func Write(ctx context.Context, path string, s dataset.Summary) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return WriteWorkbook(path, s)
	case ".db", ".sqlite", ".sqlite3":
		db, err := repository.NewSQLiteDB(path)
		if err != nil {
			return err
		}
		defer db.Close()
		return WriteTables(ctx, db, s)
	}
	return fmt.Errorf("unsupported output format: %s", path)
}

// WriteWorkbook writes a filter sheet followed by one sheet per table, each
// with a header row.
func WriteWorkbook(path string, s dataset.Summary) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetFilter); err != nil {
		return fmt.Errorf("error naming sheet: %w", err)
	}
	filter := [][]any{
		{"Outcome Scope", s.Scope.Label()},
		{"Year From", s.YearMin},
		{"Year To", s.YearMax},
		{"Incidents", s.Total},
	}
	if err := writeRows(f, SheetFilter, filter); err != nil {
		return err
	}

	for _, sheet := range []struct {
		name  string
		table dataset.Table
	}{
		{SheetSpecies, s.Species},
		{SheetYearly, s.Yearly},
		{SheetPhases, s.Phases},
	} {
		if _, err := f.NewSheet(sheet.name); err != nil {
			return fmt.Errorf("error creating sheet %s: %w", sheet.name, err)
		}
		if err := writeRows(f, sheet.name, tableRows(sheet.table)); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("error saving workbook: %w", err)
	}
	return nil
}

func tableRows(t dataset.Table) [][]any {
	rows := make([][]any, 0, len(t.Rows)+1)
	rows = append(rows, []any{t.Columns[0], t.Columns[1]})
	for _, r := range t.Rows {
		rows = append(rows, []any{r.Label, r.Count})
	}
	return rows
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for rowIdx, row := range rows {
		for colIdx, val := range row {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, val); err != nil {
				return fmt.Errorf("error writing %s!%s: %w", sheet, cell, err)
			}
		}
	}
	return nil
}

// WriteTables replaces the three count tables through w.
func WriteTables(ctx context.Context, w repository.CountWriter, s dataset.Summary) error {
	for _, t := range []struct {
		name  string
		table dataset.Table
	}{
		{TableSpecies, s.Species},
		{TableYearly, s.Yearly},
		{TablePhases, s.Phases},
	} {
		if err := w.WriteCounts(ctx, t.name, t.table); err != nil {
			return fmt.Errorf("error writing %s: %w", t.name, err)
		}
	}
	return nil
}
