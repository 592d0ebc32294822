package lint

import (
	"github.com/lintry/lintry/internal/commit"
	"github.com/lintry/lintry/internal/rule"
)

// CommitReport pairs one inspected commit with its violations, in range
// order.
type CommitReport struct {
	Commit     *commit.Commit
	Violations []rule.Violation
}

// Result aggregates all violations over a commit range plus the branch
// check. Constructed once by the engine; immutable afterwards. Ordering
// is deterministic: commits keep their range position, and violations
// within a commit are sorted by (rule, line, column).
type Result struct {
	Commits   []CommitReport
	Branch    []rule.Violation
	HasErrors bool
}

// ViolationCount returns the total number of violations across all
// commits and the branch.
func (r *Result) ViolationCount() int {
	total := len(r.Branch)
	for _, c := range r.Commits {
		total += len(c.Violations)
	}
	return total
}

// ErrorCount returns the number of error-severity violations.
func (r *Result) ErrorCount() int {
	count := 0
	for _, v := range r.Branch {
		if v.Severity == rule.SeverityError {
			count++
		}
	}
	for _, c := range r.Commits {
		for _, v := range c.Violations {
			if v.Severity == rule.SeverityError {
				count++
			}
		}
	}
	return count
}
