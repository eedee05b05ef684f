package dialect

import (
	"fmt"

	_ "github.com/sijms/go-ora/v2"
)

type OracleDialect struct{}

func (d *OracleDialect) Name() string {
	return "oracle"
}

func (d *OracleDialect) GetColumnsQuery(schema string) string {
	// USER_TAB_COLUMNS lists the current user's tables, so the schema argument
	// is only consumed by the dummy clause. Aliases are quoted to keep them
	// lower case for the row scanner.
	return `
SELECT
    t.TABLE_NAME AS "table_name",
    t.COLUMN_NAME AS "column_name",
    t.DATA_TYPE || CASE
        WHEN t.DATA_TYPE LIKE '%CHAR%' THEN '(' || t.CHAR_LENGTH || ')'
        WHEN t.DATA_TYPE = 'NUMBER' AND t.DATA_PRECISION IS NOT NULL THEN '(' || t.DATA_PRECISION || ',' || t.DATA_SCALE || ')'
        ELSE ''
    END AS "data_type",
    CASE WHEN t.NULLABLE = 'Y' THEN 'YES' ELSE 'NO' END AS "is_nullable",
    t.DATA_DEFAULT AS "column_default",
    NULL AS "column_extra"
FROM USER_TAB_COLUMNS t
JOIN USER_TABLES u ON u.TABLE_NAME = t.TABLE_NAME
WHERE :1 IS NOT NULL
ORDER BY t.TABLE_NAME, t.COLUMN_ID`
}

func (d *OracleDialect) CreateTableQuery(table string, cols []ColumnDef) string {
	return fmt.Sprintf("CREATE TABLE %s (\n%s\n);", d.QuoteIdent(table), JoinColumnDefs(cols, d.columnDefinition))
}

func (d *OracleDialect) AddColumnQuery(table string, col ColumnDef) string {
	return fmt.Sprintf("ALTER TABLE %s ADD (%s);", d.QuoteIdent(table), d.columnDefinition(col))
}

func (d *OracleDialect) ModifyColumnQueries(table string, col ColumnDef) []string {
	nullability := "NOT NULL"
	if col.Nullable {
		nullability = "NULL"
	}
	return []string{fmt.Sprintf("ALTER TABLE %s MODIFY (%s %s %s);",
		d.QuoteIdent(table), d.QuoteIdent(col.Name), col.Type, nullability)}
}

func (d *OracleDialect) columnDefinition(c ColumnDef) string {
	return DefaultColumnDefinition(d.QuoteIdent, c)
}

func (d *OracleDialect) QuoteIdent(name string) string {
	return quoteWith(name, `"`, `"`)
}

func (d *OracleDialect) GetSchemaName(input string) string {
	// Any non-empty value satisfies the dummy bind in the columns query.
	if input == "" {
		return "USER"
	}
	return input
}
