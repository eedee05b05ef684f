// Package engine turns a comparison result into a reviewable SQL script that
// would bring the candidate in line with the master. The script is only
// written out; nothing here executes it.
package engine

import (
	"fmt"
	"strings"

	"db-compare/internal/compare"
	"db-compare/internal/dialect"
	"db-compare/internal/report"
	"db-compare/internal/schema"
)

type block struct {
	header     []string
	statements []string
}

func (b *block) render() string {
	return strings.Join(append(append([]string{}, b.header...), b.statements...), "\n")
}

// BuildSyncScript renders one block per difference, in diff order. A column
// with both a type and a nullable mismatch gets a single modify block.
// onProgress, if set, is called once per difference.
func BuildSyncScript(master *schema.Schema, diffs []compare.Difference, d dialect.Dialect, onProgress func()) string {
	if len(diffs) == 0 {
		return ""
	}

	var blocks []*block
	mismatches := make(map[[2]string]*block)

	for _, diff := range diffs {
		switch diff.Kind {
		case compare.MissingTableInCandidate:
			blocks = append(blocks, createTableBlock(master, diff.Table, d))

		case compare.ExtraTableInCandidate:
			blocks = append(blocks, &block{header: []string{
				fmt.Sprintf("-- Extra Table in DB2: %s (left in place)", diff.Table),
			}})

		case compare.MissingColumnInCandidate:
			b := &block{header: []string{fmt.Sprintf("-- Missing Column: %s.%s", diff.Table, diff.Column)}}
			if def, err := columnDef(master, diff.Table, diff.Column); err != nil {
				b.statements = append(b.statements, fmt.Sprintf("-- Error getting definition for %s.%s: %v", diff.Table, diff.Column, err))
			} else {
				b.statements = append(b.statements, d.AddColumnQuery(diff.Table, def))
			}
			blocks = append(blocks, b)

		case compare.ExtraColumnInCandidate:
			blocks = append(blocks, &block{header: []string{
				fmt.Sprintf("-- Extra Column in DB2: %s.%s (left in place)", diff.Table, diff.Column),
			}})

		case compare.TypeMismatch, compare.NullableMismatch:
			key := [2]string{diff.Table, diff.Column}
			if b, ok := mismatches[key]; ok {
				b.header[0] = strings.TrimSuffix(b.header[0], ")") + ", " + report.Label(diff.Kind) + ")"
				break
			}
			b := modifyColumnBlock(master, diff, d)
			mismatches[key] = b
			blocks = append(blocks, b)
		}

		if onProgress != nil {
			onProgress()
		}
	}

	rendered := make([]string, len(blocks))
	for i, b := range blocks {
		rendered[i] = b.render()
	}
	return strings.Join(rendered, "\n\n") + "\n"
}

func createTableBlock(master *schema.Schema, table string, d dialect.Dialect) *block {
	b := &block{header: []string{fmt.Sprintf("-- Missing Table: %s", table)}}
	cols, err := master.ColumnsOf(table)
	if err != nil {
		b.statements = append(b.statements, fmt.Sprintf("-- Error generating CREATE TABLE for %s: %v", table, err))
		return b
	}
	defs := make([]dialect.ColumnDef, len(cols))
	for i, c := range cols {
		defs[i] = toColumnDef(c)
	}
	b.statements = append(b.statements, d.CreateTableQuery(table, defs))
	return b
}

func modifyColumnBlock(master *schema.Schema, diff compare.Difference, d dialect.Dialect) *block {
	b := &block{header: []string{
		fmt.Sprintf("-- Mismatch: %s.%s (%s)", diff.Table, diff.Column, report.Label(diff.Kind)),
	}}
	def, err := columnDef(master, diff.Table, diff.Column)
	if err != nil {
		b.statements = append(b.statements, fmt.Sprintf("-- Error getting definition for %s.%s: %v", diff.Table, diff.Column, err))
		return b
	}
	stmts := d.ModifyColumnQueries(diff.Table, def)
	if len(stmts) == 0 {
		b.statements = append(b.statements, fmt.Sprintf("-- %s cannot alter %s.%s in place; rebuild the table", d.Name(), diff.Table, diff.Column))
		return b
	}
	b.statements = append(b.statements, stmts...)
	return b
}

func columnDef(master *schema.Schema, table, column string) (dialect.ColumnDef, error) {
	cols, err := master.ColumnsOf(table)
	if err != nil {
		return dialect.ColumnDef{}, err
	}
	for _, c := range cols {
		if c.ColumnName == column {
			return toColumnDef(c), nil
		}
	}
	return dialect.ColumnDef{}, fmt.Errorf("column %q not found in master", column)
}

func toColumnDef(c schema.ColumnDescriptor) dialect.ColumnDef {
	return dialect.ColumnDef{
		Name:     c.ColumnName,
		Type:     c.DataType,
		Nullable: c.Nullable,
		Default:  c.Default,
		Extra:    c.Extra,
	}
}
