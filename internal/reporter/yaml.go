package reporter

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/lintry/lintry/internal/lint"
	"github.com/lintry/lintry/internal/rule"
)

// yamlReport is the machine-readable shape of a lint result. Rule IDs are
// stable strings, so downstream tooling can key on them across versions.
type yamlReport struct {
	Commits    []yamlCommit    `yaml:"commits"`
	Branch     []yamlViolation `yaml:"branch,omitempty"`
	HasErrors  bool            `yaml:"has_errors"`
	Violations int             `yaml:"violation_count"`
}

type yamlCommit struct {
	Hash       string          `yaml:"hash"`
	Subject    string          `yaml:"subject"`
	Kind       string          `yaml:"kind"`
	Violations []yamlViolation `yaml:"violations,omitempty"`
}

type yamlViolation struct {
	Rule     string `yaml:"rule"`
	Severity string `yaml:"severity"`
	Message  string `yaml:"message"`
	Line     int    `yaml:"line,omitempty"`
	Column   int    `yaml:"column,omitempty"`
}

// RenderYAML writes the result as YAML for consumption by other tools.
func RenderYAML(w io.Writer, result *lint.Result) error {
	report := yamlReport{
		HasErrors:  result.HasErrors,
		Violations: result.ViolationCount(),
		Commits:    make([]yamlCommit, 0, len(result.Commits)),
	}
	for _, c := range result.Commits {
		report.Commits = append(report.Commits, yamlCommit{
			Hash:       c.Commit.Record.Hash,
			Subject:    c.Commit.Subject.Text,
			Kind:       c.Commit.Kind.String(),
			Violations: convertViolations(c.Violations),
		})
	}
	report.Branch = convertViolations(result.Branch)

	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	_, err = w.Write(data)
	return err
}

func convertViolations(violations []rule.Violation) []yamlViolation {
	out := make([]yamlViolation, 0, len(violations))
	for _, v := range violations {
		out = append(out, yamlViolation{
			Rule:     string(v.Rule),
			Severity: v.Severity.String(),
			Message:  v.Message,
			Line:     v.Line,
			Column:   v.Column,
		})
	}
	return out
}
