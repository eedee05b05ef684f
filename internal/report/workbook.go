// Package report renders schema snapshots and their differences.
package report

import (
	"fmt"
	"io"
	"strconv"

	"db-compare/internal/compare"
	"db-compare/internal/schema"

	"github.com/xuri/excelize/v2"
)

// Sheet names, in workbook order.
const (
	SheetMaster      = "DB1"
	SheetCandidate   = "DB2"
	SheetCombined    = "Combined"
	SheetDifferences = "Differences"
)

var (
	structureHeader   = []interface{}{"Database", "Table", "Column", "Type", "Nullable", "Default"}
	differencesHeader = []interface{}{"Difference Type", "Table", "Column", "DB1 Value", "DB2 Value"}
)

// WriteWorkbook renders the four-sheet report and writes the xlsx bytes to w.
func WriteWorkbook(w io.Writer, master, candidate *schema.Schema, diffs []compare.Difference) error {
	f, err := buildWorkbook(master, candidate, diffs)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// SaveWorkbook is WriteWorkbook to a file path.
func SaveWorkbook(path string, master, candidate *schema.Schema, diffs []compare.Difference) error {
	f, err := buildWorkbook(master, candidate, diffs)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", path, err)
	}
	return nil
}

func buildWorkbook(master, candidate *schema.Schema, diffs []compare.Difference) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetMaster); err != nil {
		f.Close()
		return nil, err
	}
	for _, name := range []string{SheetCandidate, SheetCombined, SheetDifferences} {
		if _, err := f.NewSheet(name); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to add sheet %s: %w", name, err)
		}
	}

	steps := []struct {
		sheet string
		rows  [][]interface{}
	}{
		{SheetMaster, structureRows(master)},
		{SheetCandidate, structureRows(candidate)},
		{SheetCombined, append(structureRows(master), structureRows(candidate)[1:]...)},
		{SheetDifferences, differenceRows(diffs)},
	}
	for _, s := range steps {
		if err := writeRows(f, s.sheet, s.rows); err != nil {
			f.Close()
			return nil, err
		}
	}
	return f, nil
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		r := row
		if err := f.SetSheetRow(sheet, cell, &r); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}

// structureRows returns the header plus one row per column of s.
func structureRows(s *schema.Schema) [][]interface{} {
	rows := [][]interface{}{structureHeader}
	if s == nil {
		return rows
	}
	for _, c := range s.Columns() {
		def := ""
		if c.Default != nil {
			def = *c.Default
		}
		rows = append(rows, []interface{}{s.Label, c.TableName, c.ColumnName, c.DataType, strconv.FormatBool(c.Nullable), def})
	}
	return rows
}

// differenceRows returns the header plus one row per difference. The header
// is present even when diffs is empty.
func differenceRows(diffs []compare.Difference) [][]interface{} {
	rows := [][]interface{}{differencesHeader}
	for _, d := range diffs {
		rows = append(rows, []interface{}{Label(d.Kind), d.Table, columnCell(d), valueCell(d.MasterValue), valueCell(d.CandidateValue)})
	}
	return rows
}
