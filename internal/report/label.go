package report

import "db-compare/internal/compare"

// Label is the human-readable name of a difference kind in the report.
func Label(k compare.Kind) string {
	switch k {
	case compare.MissingTableInCandidate:
		return "Missing Table in DB2"
	case compare.ExtraTableInCandidate:
		return "Extra Table in DB2"
	case compare.MissingColumnInCandidate:
		return "Missing Column in DB2"
	case compare.ExtraColumnInCandidate:
		return "Extra Column in DB2"
	case compare.TypeMismatch:
		return "Type Mismatch"
	case compare.NullableMismatch:
		return "Nullable Mismatch"
	default:
		return k.String()
	}
}

// cell values for absent entities and table-wide rows
const (
	missingValue = "Missing"
	allColumns   = "ALL"
)

func valueCell(p *string) string {
	if p == nil {
		return missingValue
	}
	return *p
}

func columnCell(d compare.Difference) string {
	if d.Kind.TableLevel() {
		return allColumns
	}
	return d.Column
}
