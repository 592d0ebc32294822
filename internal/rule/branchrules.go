package rule

import (
	"fmt"
	"unicode/utf8"

	"github.com/lintry/lintry/internal/branch"
	"github.com/lintry/lintry/internal/textwidth"
)

const branchMinWidth = 4

func branchViolation(id ID, msg string, column int, ctx ...ContextLine) Violation {
	return Violation{
		Rule:     id,
		Severity: SeverityError,
		Message:  msg,
		Line:     1,
		Column:   column,
		Context:  ctx,
	}
}

func branchContext(b branch.Name, start, end int, hint string) ContextLine {
	return ContextLine{Number: 1, Text: b.Raw, Start: start, End: end, Hint: hint}
}

func evaluateBranchNameLength(b branch.Name) []Violation {
	width := textwidth.String(b.Raw)
	if width >= branchMinWidth {
		return nil
	}
	return []Violation{branchViolation(BranchNameLength,
		fmt.Sprintf("Branch name of `%d` characters wide is too short", width), 1,
		branchContext(b, 0, len(b.Raw), "Describe the change in the branch name"))}
}

// evaluateBranchNameTicket flags branch names that are nothing but a
// ticket number. When requireTicket is set it also flags names that carry
// no ticket reference at all.
func evaluateBranchNameTicket(requireTicket bool) func(branch.Name) []Violation {
	return func(b branch.Name) []Violation {
		if reBranchTicketOnly.MatchString(b.Raw) {
			return []Violation{branchViolation(BranchNameTicket,
				"A branch name with only a ticket number was found", 1,
				branchContext(b, 0, len(b.Raw), "Add a short description of the change to the branch name"))}
		}
		if requireTicket && !b.HasTicketReference {
			return []Violation{branchViolation(BranchNameTicket,
				"The branch name does not contain a ticket number", 1,
				branchContext(b, 0, len(b.Raw), "Add a ticket reference such as ABC-123 to the branch name"))}
		}
		return nil
	}
}

func evaluateBranchNamePunctuation(b branch.Name) []Violation {
	if b.Raw == "" {
		return nil
	}
	var violations []Violation
	first, firstSize := utf8.DecodeRuneInString(b.Raw)
	if isPunctuation(first) {
		violations = append(violations, branchViolation(BranchNamePunctuation,
			fmt.Sprintf("The branch name starts with a punctuation character: `%c`", first), 1,
			branchContext(b, 0, firstSize, "Remove punctuation from the start of the branch name")))
	}
	last, lastSize := utf8.DecodeLastRuneInString(b.Raw)
	// A single-rune name is covered by the leading check above.
	if isPunctuation(last) && len(b.Raw) > firstSize {
		start := len(b.Raw) - lastSize
		violations = append(violations, branchViolation(BranchNamePunctuation,
			fmt.Sprintf("The branch name ends with a punctuation character: `%c`", last),
			textwidth.RunesTo(b.Raw, start)+1,
			branchContext(b, start, len(b.Raw), "Remove punctuation from the end of the branch name")))
	}
	return violations
}

func evaluateBranchNameCliche(b branch.Name) []Violation {
	if !reBranchCliche.MatchString(b.Raw) {
		return nil
	}
	return []Violation{branchViolation(BranchNameCliche,
		"The branch name does not explain the change in much detail", 1,
		branchContext(b, 0, len(b.Raw), "Describe the change in more detail"))}
}
