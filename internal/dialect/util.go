package dialect

import (
	"strings"
)

// JoinColumnDefs renders each column with def and joins them for a CREATE TABLE body.
func JoinColumnDefs(cols []ColumnDef, def func(ColumnDef) string) string {
	parts := make([]string, len(cols))
	for i, c := range cols {
		parts[i] = "    " + def(c)
	}
	return strings.Join(parts, ",\n")
}

// DefaultColumnDefinition renders `name type [NOT NULL] [DEFAULT expr]`, using
// the default as the raw expression the database reported.
func DefaultColumnDefinition(quote func(string) string, c ColumnDef) string {
	var b strings.Builder
	b.WriteString(quote(c.Name))
	b.WriteString(" ")
	b.WriteString(c.Type)
	if c.Default != nil {
		b.WriteString(" DEFAULT ")
		b.WriteString(*c.Default)
	}
	if !c.Nullable {
		b.WriteString(" NOT NULL")
	}
	return b.String()
}

// quoteWith wraps name in open/close, doubling any embedded close character.
func quoteWith(name, open, close string) string {
	return open + strings.ReplaceAll(name, close, close+close) + close
}

// QuoteLiteral returns s as a single-quoted SQL string literal.
func QuoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// DefaultGetSchemaName is a default implementation for Getting Schema Name (identity).
func DefaultGetSchemaName(input string) string {
	return input
}
