package compare

import "fmt"

// Kind classifies a Difference.
type Kind int

const (
	MissingTableInCandidate Kind = iota + 1
	ExtraTableInCandidate
	MissingColumnInCandidate
	ExtraColumnInCandidate
	TypeMismatch
	NullableMismatch
)

// Kinds lists every Kind in emission order.
var Kinds = []Kind{
	MissingTableInCandidate,
	ExtraTableInCandidate,
	MissingColumnInCandidate,
	ExtraColumnInCandidate,
	TypeMismatch,
	NullableMismatch,
}

func (k Kind) String() string {
	switch k {
	case MissingTableInCandidate:
		return "MissingTableInCandidate"
	case ExtraTableInCandidate:
		return "ExtraTableInCandidate"
	case MissingColumnInCandidate:
		return "MissingColumnInCandidate"
	case ExtraColumnInCandidate:
		return "ExtraColumnInCandidate"
	case TypeMismatch:
		return "TypeMismatch"
	case NullableMismatch:
		return "NullableMismatch"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// TableLevel reports whether the kind describes a whole table.
func (k Kind) TableLevel() bool {
	return k == MissingTableInCandidate || k == ExtraTableInCandidate
}

// Exists is the value recorded on the side where an entity is present.
const Exists = "exists"

// Difference is one discrepancy between master and candidate. Column is
// empty for table-level kinds; a nil value means the entity is absent on
// that side.
type Difference struct {
	Kind           Kind
	Table          string
	Column         string
	MasterValue    *string
	CandidateValue *string
}

func (d Difference) String() string {
	return fmt.Sprintf("{%s %s %s %s %s}", d.Kind, d.Table, orDash(d.Column), deref(d.MasterValue), deref(d.CandidateValue))
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func deref(p *string) string {
	if p == nil {
		return "null"
	}
	return *p
}

func strPtr(s string) *string {
	return &s
}
