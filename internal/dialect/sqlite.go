package dialect

import (
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

type SqliteDialect struct{}

func (d *SqliteDialect) Name() string {
	return "sqlite3"
}

func (d *SqliteDialect) GetColumnsQuery(schema string) string {
	return `SELECT
    m.name AS table_name,
    p.name AS column_name,
    p.type AS data_type,
    CASE WHEN p."notnull" = 0 THEN 'YES' ELSE 'NO' END AS is_nullable,
    p.dflt_value AS column_default,
    NULL AS column_extra
FROM sqlite_master m
JOIN pragma_table_info(m.name) p
WHERE m.type = 'table' AND m.name NOT LIKE 'sqlite_%' AND ? IS NOT NULL
ORDER BY m.name, p.cid`
}

func (d *SqliteDialect) CreateTableQuery(table string, cols []ColumnDef) string {
	return fmt.Sprintf("CREATE TABLE %s (\n%s\n);", d.QuoteIdent(table), JoinColumnDefs(cols, d.columnDefinition))
}

func (d *SqliteDialect) AddColumnQuery(table string, col ColumnDef) string {
	return fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s;", d.QuoteIdent(table), d.columnDefinition(col))
}

// ModifyColumnQueries returns nil: SQLite cannot change a column's type or
// nullability without rebuilding the table.
func (d *SqliteDialect) ModifyColumnQueries(table string, col ColumnDef) []string {
	return nil
}

func (d *SqliteDialect) columnDefinition(c ColumnDef) string {
	return DefaultColumnDefinition(d.QuoteIdent, c)
}

func (d *SqliteDialect) QuoteIdent(name string) string {
	return quoteWith(name, `"`, `"`)
}

func (d *SqliteDialect) GetSchemaName(input string) string {
	if input == "" {
		return "main"
	}
	return input
}
