package report

import (
	"fmt"
	"io"

	"db-compare/internal/compare"

	"gopkg.in/yaml.v3"
)

type exportedDifference struct {
	Kind      string  `yaml:"kind"`
	Label     string  `yaml:"label"`
	Table     string  `yaml:"table"`
	Column    string  `yaml:"column,omitempty"`
	Master    *string `yaml:"master"`
	Candidate *string `yaml:"candidate"`
}

type exportDocument struct {
	Master      string               `yaml:"master"`
	Candidate   string               `yaml:"candidate"`
	Total       int                  `yaml:"total"`
	Differences []exportedDifference `yaml:"differences"`
}

// WriteYAML writes diffs as a YAML document, keeping absent values as null.
func WriteYAML(w io.Writer, masterLabel, candidateLabel string, diffs []compare.Difference) error {
	doc := exportDocument{
		Master:      masterLabel,
		Candidate:   candidateLabel,
		Total:       len(diffs),
		Differences: make([]exportedDifference, 0, len(diffs)),
	}
	for _, d := range diffs {
		doc.Differences = append(doc.Differences, exportedDifference{
			Kind:      d.Kind.String(),
			Label:     Label(d.Kind),
			Table:     d.Table,
			Column:    d.Column,
			Master:    d.MasterValue,
			Candidate: d.CandidateValue,
		})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode differences: %w", err)
	}
	return enc.Close()
}
