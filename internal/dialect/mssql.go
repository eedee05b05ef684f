package dialect

import (
	"fmt"

	_ "github.com/denisenkom/go-mssqldb" // SQL Server Driver
)

type MSSQLDialect struct{}

func (d *MSSQLDialect) Name() string {
	return "sqlserver"
}

func (d *MSSQLDialect) GetColumnsQuery(schema string) string {
	// Rebuild the declared type from DATA_TYPE plus length/precision; -1 means (max).
	return `
		SELECT
			c.TABLE_NAME AS table_name,
			c.COLUMN_NAME AS column_name,
			c.DATA_TYPE + CASE
				WHEN c.CHARACTER_MAXIMUM_LENGTH = -1 THEN '(max)'
				WHEN c.CHARACTER_MAXIMUM_LENGTH IS NOT NULL THEN '(' + CAST(c.CHARACTER_MAXIMUM_LENGTH AS VARCHAR(10)) + ')'
				WHEN c.DATA_TYPE IN ('decimal', 'numeric') THEN '(' + CAST(c.NUMERIC_PRECISION AS VARCHAR(10)) + ',' + CAST(c.NUMERIC_SCALE AS VARCHAR(10)) + ')'
				ELSE ''
			END AS data_type,
			c.IS_NULLABLE AS is_nullable,
			c.COLUMN_DEFAULT AS column_default,
			NULL AS column_extra
		FROM INFORMATION_SCHEMA.COLUMNS c
		JOIN INFORMATION_SCHEMA.TABLES t
			ON t.TABLE_SCHEMA = c.TABLE_SCHEMA AND t.TABLE_NAME = c.TABLE_NAME
		WHERE c.TABLE_SCHEMA = @p1 AND t.TABLE_TYPE = 'BASE TABLE'
		ORDER BY c.TABLE_NAME, c.ORDINAL_POSITION
	`
}

func (d *MSSQLDialect) CreateTableQuery(table string, cols []ColumnDef) string {
	return fmt.Sprintf("CREATE TABLE %s (\n%s\n);", d.QuoteIdent(table), JoinColumnDefs(cols, d.columnDefinition))
}

func (d *MSSQLDialect) AddColumnQuery(table string, col ColumnDef) string {
	return fmt.Sprintf("ALTER TABLE %s ADD %s;", d.QuoteIdent(table), d.columnDefinition(col))
}

func (d *MSSQLDialect) ModifyColumnQueries(table string, col ColumnDef) []string {
	// ALTER COLUMN cannot carry a DEFAULT; defaults live in named constraints.
	nullability := "NOT NULL"
	if col.Nullable {
		nullability = "NULL"
	}
	return []string{fmt.Sprintf("ALTER TABLE %s ALTER COLUMN %s %s %s;",
		d.QuoteIdent(table), d.QuoteIdent(col.Name), col.Type, nullability)}
}

func (d *MSSQLDialect) columnDefinition(c ColumnDef) string {
	return DefaultColumnDefinition(d.QuoteIdent, c)
}

func (d *MSSQLDialect) QuoteIdent(name string) string {
	return quoteWith(name, "[", "]")
}

func (d *MSSQLDialect) GetSchemaName(input string) string {
	if input == "" {
		return "dbo"
	}
	return input
}
