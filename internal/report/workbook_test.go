package report_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"db-compare/internal/compare"
	"db-compare/internal/report"
	"db-compare/internal/schema"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func fixtures(t *testing.T) (*schema.Schema, *schema.Schema, []compare.Difference) {
	t.Helper()
	def := "0"
	master := schema.New("DB_1", []schema.ColumnDescriptor{
		{TableName: "users", ColumnName: "id", DataType: "INT", Nullable: false},
		{TableName: "orders", ColumnName: "total", DataType: "DECIMAL", Nullable: true, Default: &def},
	})
	candidate := schema.New("DB_2", []schema.ColumnDescriptor{
		{TableName: "orders", ColumnName: "total", DataType: "FLOAT", Nullable: true},
	})
	diffs, err := compare.Compare(master, candidate)
	require.NoError(t, err)
	return master, candidate, diffs
}

func readSheets(t *testing.T, data []byte) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f
}

func TestWriteWorkbook(t *testing.T) {
	master, candidate, diffs := fixtures(t)

	var buf bytes.Buffer
	require.NoError(t, report.WriteWorkbook(&buf, master, candidate, diffs))
	f := readSheets(t, buf.Bytes())

	assert.Equal(t, []string{report.SheetMaster, report.SheetCandidate, report.SheetCombined, report.SheetDifferences}, f.GetSheetList())

	t.Run("master structure", func(t *testing.T) {
		rows, err := f.GetRows(report.SheetMaster)
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, []string{"Database", "Table", "Column", "Type", "Nullable", "Default"}, rows[0])
		require.GreaterOrEqual(t, len(rows[1]), 5)
		assert.Equal(t, []string{"DB_1", "users", "id", "INT", "false"}, rows[1][:5])
		assert.Equal(t, []string{"DB_1", "orders", "total", "DECIMAL", "true", "0"}, rows[2])
	})

	t.Run("combined view", func(t *testing.T) {
		rows, err := f.GetRows(report.SheetCombined)
		require.NoError(t, err)
		require.Len(t, rows, 4)
		assert.Equal(t, "DB_1", rows[1][0])
		assert.Equal(t, "DB_2", rows[3][0])
	})

	t.Run("differences", func(t *testing.T) {
		rows, err := f.GetRows(report.SheetDifferences)
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, []string{"Difference Type", "Table", "Column", "DB1 Value", "DB2 Value"}, rows[0])
		assert.Equal(t, []string{"Missing Table in DB2", "users", "ALL", "exists", "Missing"}, rows[1])
		assert.Equal(t, []string{"Type Mismatch", "orders", "total", "DECIMAL", "FLOAT"}, rows[2])
	})
}

func TestWriteWorkbook_NoDifferencesKeepsHeader(t *testing.T) {
	s := schema.New("DB_1", []schema.ColumnDescriptor{{TableName: "t", ColumnName: "id", DataType: "INT"}})

	var buf bytes.Buffer
	require.NoError(t, report.WriteWorkbook(&buf, s, s, []compare.Difference{}))
	f := readSheets(t, buf.Bytes())

	rows, err := f.GetRows(report.SheetDifferences)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Difference Type", rows[0][0])
}

func TestSaveWorkbook(t *testing.T) {
	master, candidate, diffs := fixtures(t)
	path := filepath.Join(t.TempDir(), "report.xlsx")

	require.NoError(t, report.SaveWorkbook(path, master, candidate, diffs))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(report.SheetCandidate)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestLabel(t *testing.T) {
	for _, k := range compare.Kinds {
		assert.NotEqual(t, k.String(), report.Label(k), "kind %s has no label", k)
	}
	assert.Equal(t, "Nullable Mismatch", report.Label(compare.NullableMismatch))
}
