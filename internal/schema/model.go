package schema

import (
	"fmt"
	"strings"
)

// ColumnDescriptor is one column of one table as reported by a provider.
type ColumnDescriptor struct {
	TableName  string
	ColumnName string
	DataType   string
	Nullable   bool
	Default    *string // nil when the column has no default
	Extra      *string // extra attributes (MySQL EXTRA); never compared
}

// Schema is an immutable snapshot of one database's tables and columns.
// Build it with New; it has no mutating methods.
type Schema struct {
	Label   string
	columns []ColumnDescriptor

	tables  []string
	byTable map[string][]int
}

// New copies columns into a new Schema. Table order is first-seen order.
func New(label string, columns []ColumnDescriptor) *Schema {
	s := &Schema{
		Label:   label,
		columns: make([]ColumnDescriptor, len(columns)),
		byTable: make(map[string][]int),
	}
	copy(s.columns, columns)

	for i, c := range s.columns {
		if _, ok := s.byTable[c.TableName]; !ok {
			s.tables = append(s.tables, c.TableName)
		}
		s.byTable[c.TableName] = append(s.byTable[c.TableName], i)
	}
	return s
}

// Columns returns a copy of the full column sequence.
func (s *Schema) Columns() []ColumnDescriptor {
	out := make([]ColumnDescriptor, len(s.columns))
	copy(out, s.columns)
	return out
}

// Len is the number of columns in the snapshot.
func (s *Schema) Len() int {
	return len(s.columns)
}

// Tables returns the distinct table names in first-seen order.
func (s *Schema) Tables() []string {
	out := make([]string, len(s.tables))
	copy(out, s.tables)
	return out
}

// HasTable reports whether the snapshot contains the table.
func (s *Schema) HasTable(table string) bool {
	_, ok := s.byTable[table]
	return ok
}

// ColumnsOf returns the columns of table in snapshot order.
func (s *Schema) ColumnsOf(table string) ([]ColumnDescriptor, error) {
	idx, ok := s.byTable[table]
	if !ok {
		return nil, &NotFoundError{Table: table}
	}
	out := make([]ColumnDescriptor, 0, len(idx))
	for _, i := range idx {
		out = append(out, s.columns[i])
	}
	return out, nil
}

// ColumnNames returns the set of column names of table.
func (s *Schema) ColumnNames(table string) (map[string]struct{}, error) {
	idx, ok := s.byTable[table]
	if !ok {
		return nil, &NotFoundError{Table: table}
	}
	names := make(map[string]struct{}, len(idx))
	for _, i := range idx {
		names[s.columns[i].ColumnName] = struct{}{}
	}
	return names, nil
}

// Validate checks that no (table, column) pair repeats.
func (s *Schema) Validate() error {
	seen := make(map[[2]string]struct{}, len(s.columns))
	for _, c := range s.columns {
		key := [2]string{c.TableName, c.ColumnName}
		if _, dup := seen[key]; dup {
			return &InvalidSchemaError{Label: s.Label, Table: c.TableName, Column: c.ColumnName}
		}
		seen[key] = struct{}{}
	}
	return nil
}

// NotFoundError is returned when a table is not part of the snapshot.
type NotFoundError struct {
	Table string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("table %q not found in schema", e.Table)
}

// InvalidSchemaError reports a snapshot that breaks the (table, column) uniqueness invariant.
type InvalidSchemaError struct {
	Label  string
	Table  string
	Column string
	Reason string
}

func (e *InvalidSchemaError) Error() string {
	var b strings.Builder
	b.WriteString("invalid schema")
	if e.Label != "" {
		fmt.Fprintf(&b, " %s", e.Label)
	}
	if e.Reason != "" {
		fmt.Fprintf(&b, ": %s", e.Reason)
		return b.String()
	}
	fmt.Fprintf(&b, ": duplicate column %s.%s", e.Table, e.Column)
	return b.String()
}
