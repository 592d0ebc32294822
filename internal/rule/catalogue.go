package rule

import (
	"slices"

	"github.com/lintry/lintry/internal/branch"
	"github.com/lintry/lintry/internal/commit"
)

// Rule is one unit of evaluation. Exactly one of the evaluate functions is
// set; both are pure functions of their input, so rules may run in any
// order or in parallel with identical results. A rule that does not apply
// to a commit kind returns an empty slice itself instead of being skipped
// by the dispatcher.
type Rule struct {
	ID             ID
	EvaluateCommit func(*commit.Commit) []Violation
	EvaluateBranch func(branch.Name) []Violation
}

// Catalogue is the process-wide, read-only registry of rules. Its order
// is fixed for reproducibility but never observable in the output:
// violations are sorted before reporting.
type Catalogue struct {
	rules []Rule
	index map[ID]int
}

// Option configures catalogue construction.
type Option func(*options)

type options struct {
	hints         bool
	requireTicket bool
}

// WithHints adds advisory rules (warning severity suggestions such as
// MessageTicketNumber) to the catalogue.
func WithHints() Option {
	return func(o *options) { o.hints = true }
}

// WithRequiredTicketReference makes BranchNameTicket also fire when the
// branch name carries no ticket reference at all.
func WithRequiredTicketReference() Option {
	return func(o *options) { o.requireTicket = true }
}

// NewCatalogue builds the rule registry. Call it once at startup and pass
// the value around; the catalogue is never mutated after construction.
func NewCatalogue(opts ...Option) *Catalogue {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	rules := []Rule{
		{ID: MergeCommit, EvaluateCommit: evaluateMergeCommit},
		{ID: NeedsRebase, EvaluateCommit: evaluateNeedsRebase},
		{ID: WipCommit, EvaluateCommit: evaluateWipCommit},
		{ID: SubjectCliche, EvaluateCommit: evaluateSubjectCliche},
		{ID: SubjectLength, EvaluateCommit: evaluateSubjectLength},
		{ID: SubjectMood, EvaluateCommit: evaluateSubjectMood},
		{ID: SubjectWhitespace, EvaluateCommit: evaluateSubjectWhitespace},
		{ID: SubjectPrefix, EvaluateCommit: evaluateSubjectPrefix},
		{ID: SubjectCapitalization, EvaluateCommit: evaluateSubjectCapitalization},
		{ID: SubjectPunctuation, EvaluateCommit: evaluateSubjectPunctuation},
		{ID: SubjectBuildTag, EvaluateCommit: evaluateSubjectBuildTag},
		{ID: SubjectTicketNumber, EvaluateCommit: evaluateSubjectTicketNumber},
		{ID: BlankLineAfterSubject, EvaluateCommit: evaluateBlankLineAfterSubject},
		{ID: MessagePresence, EvaluateCommit: evaluateMessagePresence},
		{ID: LineLength, EvaluateCommit: evaluateLineLength},
	}
	if o.hints {
		rules = append(rules, Rule{ID: MessageTicketNumber, EvaluateCommit: evaluateMessageTicketNumber})
	}
	rules = append(rules,
		Rule{ID: DiffPresence, EvaluateCommit: evaluateDiffPresence},
		Rule{ID: BranchNameLength, EvaluateBranch: evaluateBranchNameLength},
		Rule{ID: BranchNameTicket, EvaluateBranch: evaluateBranchNameTicket(o.requireTicket)},
		Rule{ID: BranchNamePunctuation, EvaluateBranch: evaluateBranchNamePunctuation},
		Rule{ID: BranchNameCliche, EvaluateBranch: evaluateBranchNameCliche},
	)

	index := make(map[ID]int, len(rules))
	for i, r := range rules {
		index[r.ID] = i
	}
	return &Catalogue{rules: rules, index: index}
}

// Rules returns the registered rules in registration order.
func (c *Catalogue) Rules() []Rule {
	return c.rules
}

// Index returns the registration position of a rule; unknown IDs sort
// last.
func (c *Catalogue) Index(id ID) int {
	if i, ok := c.index[id]; ok {
		return i
	}
	return len(c.rules)
}

// EvaluateCommit runs every commit rule over one commit. The result is
// sorted by (rule, line, column) so evaluation order is not observable.
// In-message disable lines suppress individual rules for this commit.
func (c *Catalogue) EvaluateCommit(cm *commit.Commit) []Violation {
	var violations []Violation
	for _, r := range c.rules {
		if r.EvaluateCommit == nil || cm.RuleDisabled(string(r.ID)) {
			continue
		}
		violations = append(violations, r.EvaluateCommit(cm)...)
	}
	c.Sort(violations)
	return violations
}

// EvaluateBranch runs every branch rule over one branch name.
func (c *Catalogue) EvaluateBranch(b branch.Name) []Violation {
	var violations []Violation
	for _, r := range c.rules {
		if r.EvaluateBranch == nil {
			continue
		}
		violations = append(violations, r.EvaluateBranch(b)...)
	}
	c.Sort(violations)
	return violations
}

// Sort orders violations by (rule position, line, column).
func (c *Catalogue) Sort(violations []Violation) {
	slices.SortStableFunc(violations, func(a, b Violation) int {
		if d := c.Index(a.Rule) - c.Index(b.Rule); d != 0 {
			return d
		}
		if d := a.Line - b.Line; d != 0 {
			return d
		}
		return a.Column - b.Column
	})
}
