package dialect

// ColumnDef is the column shape the DDL generators work from.
type ColumnDef struct {
	Name     string
	Type     string
	Nullable bool
	Default  *string
	Extra    *string // MySQL EXTRA (auto_increment, on update ...); nil elsewhere
}

// Dialect abstracts database-specific operations.
type Dialect interface {
	// Name is the canonical database/sql driver name.
	Name() string

	// Metadata Queries (Schema Introspection)
	// The columns query takes the schema name as its only argument and returns
	// table_name, column_name, data_type, is_nullable ('YES'/'NO') and
	// column_default, plus column_extra (NULL outside MySQL), ordered by
	// table then ordinal position.
	GetColumnsQuery(schema string) string

	// DDL Generation (sync script). ModifyColumnQueries returns nil when the
	// database cannot alter a column in place.
	CreateTableQuery(table string, cols []ColumnDef) string
	AddColumnQuery(table string, col ColumnDef) string
	ModifyColumnQueries(table string, col ColumnDef) []string

	// Helpers
	QuoteIdent(name string) string
	GetSchemaName(input string) string
}
