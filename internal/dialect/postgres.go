package dialect

import (
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
)

// PostgresDialect serves both the lib/pq ("postgres") and pgx ("pgx") drivers.
type PostgresDialect struct {
	driver string
}

func (d *PostgresDialect) Name() string {
	if d.driver == "" {
		return "postgres"
	}
	return d.driver
}

func (d *PostgresDialect) GetColumnsQuery(schema string) string {
	// format_type keeps the declared modifiers ("character varying(50)",
	// "numeric(10,2)"), which information_schema.columns.data_type drops.
	return `SELECT
    c.relname AS table_name,
    a.attname AS column_name,
    pg_catalog.format_type(a.atttypid, a.atttypmod) AS data_type,
    CASE WHEN a.attnotnull THEN 'NO' ELSE 'YES' END AS is_nullable,
    pg_catalog.pg_get_expr(ad.adbin, ad.adrelid) AS column_default,
    NULL AS column_extra
FROM pg_catalog.pg_attribute a
JOIN pg_catalog.pg_class c ON c.oid = a.attrelid
JOIN pg_catalog.pg_namespace n ON n.oid = c.relnamespace
LEFT JOIN pg_catalog.pg_attrdef ad ON ad.adrelid = a.attrelid AND ad.adnum = a.attnum
WHERE n.nspname = $1
  AND c.relkind IN ('r', 'p')
  AND a.attnum > 0
  AND NOT a.attisdropped
ORDER BY c.relname, a.attnum`
}

func (d *PostgresDialect) CreateTableQuery(table string, cols []ColumnDef) string {
	return fmt.Sprintf("CREATE TABLE %s (\n%s\n);", d.QuoteIdent(table), JoinColumnDefs(cols, d.columnDefinition))
}

func (d *PostgresDialect) AddColumnQuery(table string, col ColumnDef) string {
	return fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s;", d.QuoteIdent(table), d.columnDefinition(col))
}

func (d *PostgresDialect) ModifyColumnQueries(table string, col ColumnDef) []string {
	t, c := d.QuoteIdent(table), d.QuoteIdent(col.Name)
	nullability := "SET NOT NULL"
	if col.Nullable {
		nullability = "DROP NOT NULL"
	}
	return []string{
		fmt.Sprintf("ALTER TABLE %s ALTER COLUMN %s TYPE %s;", t, c, col.Type),
		fmt.Sprintf("ALTER TABLE %s ALTER COLUMN %s %s;", t, c, nullability),
	}
}

func (d *PostgresDialect) columnDefinition(c ColumnDef) string {
	return DefaultColumnDefinition(d.QuoteIdent, c)
}

func (d *PostgresDialect) QuoteIdent(name string) string {
	return quoteWith(name, `"`, `"`)
}

func (d *PostgresDialect) GetSchemaName(input string) string {
	if input == "" {
		return "public"
	}
	return input
}
