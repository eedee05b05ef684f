package cmd

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"db-compare/internal/compare"
	"db-compare/internal/schema"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sqliteFile(t *testing.T, name string, ddl ...string) *DBConfig {
	t.Helper()
	path := filepath.Join(t.TempDir(), name+".db")

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()
	for _, stmt := range ddl {
		_, err := db.Exec(stmt)
		require.NoError(t, err, stmt)
	}
	// Make sure the file exists even without ddl.
	require.NoError(t, db.Ping())

	return &DBConfig{Name: name, Role: name, Driver: "sqlite3", DSN: path}
}

func TestRunCompare(t *testing.T) {
	master := sqliteFile(t, RoleMaster,
		`CREATE TABLE users (id INTEGER NOT NULL, name VARCHAR(50), email TEXT)`,
		`CREATE TABLE orders (id INTEGER NOT NULL)`,
	)
	candidate := sqliteFile(t, RoleCandidate,
		`CREATE TABLE users (id INTEGER NOT NULL, name VARCHAR(100))`,
		`CREATE TABLE audit (id INTEGER)`,
	)

	out := t.TempDir()
	opts := compareOptions{
		Master:     master,
		Candidate:  candidate,
		Output:     filepath.Join(out, "report.xlsx"),
		SyncScript: filepath.Join(out, "sync.sql"),
		Export:     filepath.Join(out, "diffs.yaml"),
	}

	diffs, err := runCompare(context.Background(), opts)
	require.NoError(t, err)

	kinds := make([]compare.Kind, len(diffs))
	for i, d := range diffs {
		kinds[i] = d.Kind
	}
	assert.Equal(t, []compare.Kind{
		compare.MissingTableInCandidate,
		compare.ExtraTableInCandidate,
		compare.MissingColumnInCandidate,
		compare.TypeMismatch,
	}, kinds)
	assert.Equal(t, "orders", diffs[0].Table)
	assert.Equal(t, "audit", diffs[1].Table)
	assert.Equal(t, "email", diffs[2].Column)
	assert.Equal(t, "VARCHAR(50)", *diffs[3].MasterValue)
	assert.Equal(t, "VARCHAR(100)", *diffs[3].CandidateValue)

	script, err := os.ReadFile(opts.SyncScript)
	require.NoError(t, err)
	assert.Contains(t, string(script), "-- Missing Table: orders")
	assert.Contains(t, string(script), "CREATE TABLE")
	assert.Contains(t, string(script), "ADD COLUMN")
	assert.Contains(t, string(script), "-- Extra Table in DB2: audit (left in place)")
	assert.Contains(t, string(script), "sqlite3 cannot alter users.name in place")

	f, err := excelize.OpenFile(opts.Output)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Differences")
	require.NoError(t, err)
	assert.Len(t, rows, len(diffs)+1)

	export, err := os.ReadFile(opts.Export)
	require.NoError(t, err)
	assert.Contains(t, string(export), "total: 4")
	assert.Contains(t, string(export), "kind: MissingTableInCandidate")
}

func TestRunCompare_Identical(t *testing.T) {
	ddl := `CREATE TABLE users (id INTEGER NOT NULL, name TEXT)`
	master := sqliteFile(t, RoleMaster, ddl)
	candidate := sqliteFile(t, RoleCandidate, ddl)

	out := t.TempDir()
	opts := compareOptions{
		Master:     master,
		Candidate:  candidate,
		Output:     filepath.Join(out, "report.xlsx"),
		SyncScript: filepath.Join(out, "sync.sql"),
	}

	diffs, err := runCompare(context.Background(), opts)
	require.NoError(t, err)
	assert.Empty(t, diffs)

	assert.FileExists(t, opts.Output)
	assert.NoFileExists(t, opts.SyncScript, "no script when nothing differs")
}

func TestRunCompare_BothEmpty(t *testing.T) {
	out := t.TempDir()
	opts := compareOptions{
		Master:    sqliteFile(t, RoleMaster),
		Candidate: sqliteFile(t, RoleCandidate),
		Output:    filepath.Join(out, "report.xlsx"),
	}

	diffs, err := runCompare(context.Background(), opts)
	require.NoError(t, err)
	assert.NotNil(t, diffs)
	assert.Empty(t, diffs)
	assert.NoFileExists(t, opts.Output)
}

func TestRunCompare_ConnectionFailureWritesNothing(t *testing.T) {
	out := t.TempDir()
	opts := compareOptions{
		Master:    sqliteFile(t, RoleMaster, `CREATE TABLE users (id INTEGER)`),
		Candidate: &DBConfig{Name: RoleCandidate, Role: RoleCandidate, Driver: "sqlite3", DSN: filepath.Join(out, "missing", "dir", "x.db")},
		Output:    filepath.Join(out, "report.xlsx"),
	}

	_, err := runCompare(context.Background(), opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "candidate")
	assert.NoFileExists(t, opts.Output)
}

func TestErrDifferencesFound(t *testing.T) {
	var err error = &errDifferencesFound{count: 3}
	var target *errDifferencesFound
	require.True(t, errors.As(err, &target))
	assert.Equal(t, "3 differences found between master and candidate", err.Error())
}

func TestPrintSummary(t *testing.T) {
	master := schema.New("DB_1", []schema.ColumnDescriptor{
		{TableName: "users", ColumnName: "id", DataType: "INT"},
		{TableName: "users", ColumnName: "nick", DataType: "TEXT", Nullable: true},
	})
	candidate := schema.New("DB_2", []schema.ColumnDescriptor{
		{TableName: "users", ColumnName: "id", DataType: "BIGINT", Nullable: true},
	})
	diffs, err := compare.Compare(master, candidate)
	require.NoError(t, err)

	var buf bytes.Buffer
	printSummary(&buf, master, candidate, diffs)
	out := buf.String()

	assert.Contains(t, out, "DB_1: 1 tables")
	assert.Contains(t, out, "Missing Column in DB2")
	assert.Contains(t, out, "Type Mismatch")
	assert.Contains(t, out, "Nullable Mismatch")
	assert.Contains(t, out, "users.id : INT -> BIGINT")
	assert.Contains(t, out, "users.nick : exists -> null")
	assert.Contains(t, out, "Total Differences: 3")
	assert.NotContains(t, out, "Extra Table")

	buf.Reset()
	printSummary(&buf, master, master, []compare.Difference{})
	assert.True(t, strings.Contains(buf.String(), "No differences found"))
}

func TestPrintStructure(t *testing.T) {
	def := "'active'"
	s := schema.New("DB_1", []schema.ColumnDescriptor{
		{TableName: "users", ColumnName: "id", DataType: "INT"},
		{TableName: "users", ColumnName: "status", DataType: "TEXT", Nullable: true, Default: &def},
		{TableName: "orders", ColumnName: "id", DataType: "INT"},
	})

	var buf bytes.Buffer
	require.NoError(t, printStructure(&buf, s, nil))
	assert.Contains(t, buf.String(), "[01] users (2 columns)")
	assert.Contains(t, buf.String(), "[02] orders (1 columns)")
	assert.Contains(t, buf.String(), "TEXT NULL DEFAULT 'active'")
	assert.Contains(t, buf.String(), "DB_1: 2 tables, 3 columns")

	buf.Reset()
	require.NoError(t, printStructure(&buf, s, []string{"ORDERS"}))
	assert.NotContains(t, buf.String(), "users (")
	assert.Contains(t, buf.String(), "orders (1 columns)")

	err := printStructure(&buf, s, []string{"nope"})
	require.Error(t, err)
}
