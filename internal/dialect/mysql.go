package dialect

import (
	"fmt"
	"strings"

	_ "github.com/go-sql-driver/mysql"
)

type MysqlDialect struct{}

func (d *MysqlDialect) Name() string {
	return "mysql"
}

func (d *MysqlDialect) GetColumnsQuery(schema string) string {
	// COLUMN_TYPE keeps length and precision ("varchar(255)", "decimal(10,2)").
	// An empty schema argument means the database selected in the DSN.
	return `SELECT TABLE_NAME AS table_name, COLUMN_NAME AS column_name, COLUMN_TYPE AS data_type, IS_NULLABLE AS is_nullable, COLUMN_DEFAULT AS column_default, EXTRA AS column_extra FROM information_schema.COLUMNS WHERE TABLE_SCHEMA = COALESCE(NULLIF(?, ''), DATABASE()) ORDER BY TABLE_NAME, ORDINAL_POSITION`
}

func (d *MysqlDialect) CreateTableQuery(table string, cols []ColumnDef) string {
	return fmt.Sprintf("CREATE TABLE %s (\n%s\n);", d.QuoteIdent(table), JoinColumnDefs(cols, d.columnDefinition))
}

func (d *MysqlDialect) AddColumnQuery(table string, col ColumnDef) string {
	return fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s;", d.QuoteIdent(table), d.columnDefinition(col))
}

func (d *MysqlDialect) ModifyColumnQueries(table string, col ColumnDef) []string {
	return []string{fmt.Sprintf("ALTER TABLE %s MODIFY COLUMN %s;", d.QuoteIdent(table), d.columnDefinition(col))}
}

// columnDefinition follows SHOW COLUMNS semantics: information_schema reports
// string defaults unquoted, so only NULL and CURRENT_TIMESTAMP stay bare.
// MODIFY COLUMN replaces the whole definition, so EXTRA is appended too.
func (d *MysqlDialect) columnDefinition(c ColumnDef) string {
	extra, generated := mysqlExtra(c.Extra)

	var b strings.Builder
	b.WriteString(d.QuoteIdent(c.Name))
	b.WriteString(" ")
	b.WriteString(c.Type)
	if c.Nullable {
		b.WriteString(" NULL")
	} else {
		b.WriteString(" NOT NULL")
	}
	switch {
	case c.Default != nil:
		b.WriteString(" DEFAULT ")
		b.WriteString(mysqlDefault(*c.Default, generated))
	case c.Nullable:
		b.WriteString(" DEFAULT NULL")
	}
	if extra != "" {
		b.WriteString(" ")
		b.WriteString(extra)
	}
	return b.String()
}

// mysqlExtra strips the DEFAULT_GENERATED marker from EXTRA and reports
// whether it was present. Generated columns (VIRTUAL/STORED GENERATED) need
// their expression, which EXTRA does not carry, so they are dropped.
func mysqlExtra(extra *string) (string, bool) {
	if extra == nil {
		return "", false
	}
	var kept []string
	generated := false
	for _, f := range strings.Fields(*extra) {
		switch strings.ToUpper(f) {
		case "DEFAULT_GENERATED":
			generated = true
		case "VIRTUAL", "STORED", "GENERATED":
		default:
			kept = append(kept, f)
		}
	}
	return strings.Join(kept, " "), generated
}

// mysqlDefault renders a default reported by information_schema. Expression
// defaults (DEFAULT_GENERATED) are written as `(expr)`.
func mysqlDefault(v string, generated bool) string {
	upper := strings.ToUpper(strings.TrimSpace(v))
	if upper == "NULL" || strings.HasPrefix(upper, "CURRENT_TIMESTAMP") {
		return v
	}
	if generated {
		return "(" + v + ")"
	}
	return QuoteLiteral(v)
}

func (d *MysqlDialect) QuoteIdent(name string) string {
	return quoteWith(name, "`", "`")
}

func (d *MysqlDialect) GetSchemaName(input string) string {
	return DefaultGetSchemaName(input)
}
