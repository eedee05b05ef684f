package schema

import (
	"context"
	"database/sql"
	"fmt"

	"db-compare/internal/dialect"

	"github.com/jmoiron/sqlx"
)

// columnRow is one row of Dialect.GetColumnsQuery.
type columnRow struct {
	TableName  sql.NullString `db:"table_name"`
	ColumnName sql.NullString `db:"column_name"`
	DataType   sql.NullString `db:"data_type"`
	IsNullable sql.NullString `db:"is_nullable"`
	Default    sql.NullString `db:"column_default"`
	Extra      sql.NullString `db:"column_extra"`
}

// Analyze reads every column of schemaName through the dialect's metadata
// query and returns the snapshot labelled with label. Enumeration order is
// the order the database returns, which the dialects fix by table name and
// ordinal position.
func Analyze(ctx context.Context, db *sql.DB, d dialect.Dialect, schemaName, label string) (*Schema, error) {
	// [Interface-First]: Delegate schema resolution to the dialect
	target := d.GetSchemaName(schemaName)
	xdb := sqlx.NewDb(db, d.Name())

	rows, err := xdb.QueryxContext(ctx, d.GetColumnsQuery(target), target)
	if err != nil {
		return nil, fmt.Errorf("failed to query columns: %w", err)
	}
	defer rows.Close()

	var columns []ColumnDescriptor
	for rows.Next() {
		var r columnRow
		if err := rows.StructScan(&r); err != nil {
			return nil, fmt.Errorf("failed to scan column (table: %s): %w", r.TableName.String, err)
		}
		if !r.TableName.Valid || !r.ColumnName.Valid {
			continue // Skip invalid rows
		}
		columns = append(columns, r.descriptor())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating columns: %w", err)
	}

	s := New(label, columns)
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (r columnRow) descriptor() ColumnDescriptor {
	c := ColumnDescriptor{
		TableName:  r.TableName.String,
		ColumnName: r.ColumnName.String,
		DataType:   r.DataType.String,
		Nullable:   r.IsNullable.String == "YES",
	}
	if r.Default.Valid {
		def := r.Default.String
		c.Default = &def
	}
	if r.Extra.Valid && r.Extra.String != "" {
		extra := r.Extra.String
		c.Extra = &extra
	}
	return c
}
