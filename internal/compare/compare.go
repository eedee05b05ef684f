// Package compare classifies the structural differences between a master
// schema and a candidate schema.
package compare

import (
	"strconv"

	"db-compare/internal/schema"
)

// tableIndex maps column names of one table to their descriptor and keeps
// the snapshot order of the names.
type tableIndex struct {
	order  []string
	byName map[string]schema.ColumnDescriptor
}

// schemaIndex is the name-keyed view of one snapshot used for matching.
type schemaIndex struct {
	tables []string
	byName map[string]*tableIndex
}

func buildIndex(s *schema.Schema) (*schemaIndex, error) {
	if s == nil {
		return nil, &schema.InvalidSchemaError{Reason: "nil schema"}
	}
	idx := &schemaIndex{
		tables: s.Tables(),
		byName: make(map[string]*tableIndex),
	}
	for _, c := range s.Columns() {
		t, ok := idx.byName[c.TableName]
		if !ok {
			t = &tableIndex{byName: make(map[string]schema.ColumnDescriptor)}
			idx.byName[c.TableName] = t
		}
		if _, dup := t.byName[c.ColumnName]; dup {
			return nil, &schema.InvalidSchemaError{Label: s.Label, Table: c.TableName, Column: c.ColumnName}
		}
		t.byName[c.ColumnName] = c
		t.order = append(t.order, c.ColumnName)
	}
	return idx, nil
}

// Compare returns every structural difference of candidate relative to
// master. Output order is fixed: missing tables (master order), extra tables
// (candidate order), then per shared table in master order its missing
// columns, extra columns, and type/nullable mismatches in master column
// order. Both inputs are indexed before anything is emitted, so an
// InvalidSchemaError never comes with a partial result.
func Compare(master, candidate *schema.Schema) ([]Difference, error) {
	m, err := buildIndex(master)
	if err != nil {
		return nil, err
	}
	c, err := buildIndex(candidate)
	if err != nil {
		return nil, err
	}

	diffs := []Difference{}
	var shared []string

	for _, table := range m.tables {
		if _, ok := c.byName[table]; !ok {
			diffs = append(diffs, Difference{
				Kind:        MissingTableInCandidate,
				Table:       table,
				MasterValue: strPtr(Exists),
			})
			continue
		}
		shared = append(shared, table)
	}

	for _, table := range c.tables {
		if _, ok := m.byName[table]; !ok {
			diffs = append(diffs, Difference{
				Kind:           ExtraTableInCandidate,
				Table:          table,
				CandidateValue: strPtr(Exists),
			})
		}
	}

	for _, table := range shared {
		diffs = append(diffs, compareTable(table, m.byName[table], c.byName[table])...)
	}
	return diffs, nil
}

func compareTable(table string, m, c *tableIndex) []Difference {
	var diffs []Difference

	for _, name := range m.order {
		if _, ok := c.byName[name]; !ok {
			diffs = append(diffs, Difference{
				Kind:        MissingColumnInCandidate,
				Table:       table,
				Column:      name,
				MasterValue: strPtr(Exists),
			})
		}
	}

	for _, name := range c.order {
		if _, ok := m.byName[name]; !ok {
			diffs = append(diffs, Difference{
				Kind:           ExtraColumnInCandidate,
				Table:          table,
				Column:         name,
				CandidateValue: strPtr(Exists),
			})
		}
	}

	for _, name := range m.order {
		cc, ok := c.byName[name]
		if !ok {
			continue
		}
		mc := m.byName[name]

		// Raw labels, compared exactly: INT and INTEGER are different types here.
		if mc.DataType != cc.DataType {
			diffs = append(diffs, Difference{
				Kind:           TypeMismatch,
				Table:          table,
				Column:         name,
				MasterValue:    strPtr(mc.DataType),
				CandidateValue: strPtr(cc.DataType),
			})
		}
		if mc.Nullable != cc.Nullable {
			diffs = append(diffs, Difference{
				Kind:           NullableMismatch,
				Table:          table,
				Column:         name,
				MasterValue:    strPtr(strconv.FormatBool(mc.Nullable)),
				CandidateValue: strPtr(strconv.FormatBool(cc.Nullable)),
			})
		}
	}
	return diffs
}

// CountByKind tallies diffs per kind.
func CountByKind(diffs []Difference) map[Kind]int {
	counts := make(map[Kind]int, len(Kinds))
	for _, d := range diffs {
		counts[d.Kind]++
	}
	return counts
}
