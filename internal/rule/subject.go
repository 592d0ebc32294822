package rule

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/lintry/lintry/internal/commit"
	"github.com/lintry/lintry/internal/textwidth"
)

const (
	subjectMaxWidth = 50
	subjectMinWidth = 5
)

// subjectRulesApply reports whether the subject formatting rules apply to
// a commit kind. Merge, fixup and squash commits are rewritten or
// generated, so their subject shape is not the author's to fix.
func subjectRulesApply(c *commit.Commit) bool {
	switch c.Kind {
	case commit.KindMerge, commit.KindFixup, commit.KindSquash:
		return false
	}
	return true
}

func subjectViolation(c *commit.Commit, id ID, sev Severity, msg string, column int, ctx ...ContextLine) Violation {
	return Violation{
		Rule:     id,
		Severity: sev,
		Message:  msg,
		Hash:     c.Record.Hash,
		Line:     1,
		Column:   column,
		Context:  ctx,
	}
}

func subjectContext(c *commit.Commit, start, end int, hint string) ContextLine {
	return ContextLine{Number: 1, Text: c.Subject.Text, Start: start, End: end, Hint: hint}
}

func evaluateMergeCommit(c *commit.Commit) []Violation {
	if c.Kind != commit.KindMerge {
		return nil
	}
	subject := c.Subject.Text
	msg := "A merge commit was found"
	hint := "Rebase the changes instead of merging the branch"
	if reRemoteBranchMerge.MatchString(subject) {
		msg = "A remote merge commit was found"
		hint = "Rebase on the remote branch, rather than merging the remote branch into the local branch"
	}
	return []Violation{subjectViolation(c, MergeCommit, SeverityWarning, msg, 1,
		subjectContext(c, 0, len(subject), hint))}
}

func evaluateNeedsRebase(c *commit.Commit) []Violation {
	switch c.Kind {
	case commit.KindFixup:
		return []Violation{subjectViolation(c, NeedsRebase, SeverityError,
			"A fixup commit was found", 1,
			subjectContext(c, 0, len("fixup!"), "Rebase fixup commits before pushing or merging"))}
	case commit.KindSquash:
		return []Violation{subjectViolation(c, NeedsRebase, SeverityError,
			"A squash commit was found", 1,
			subjectContext(c, 0, len("squash!"), "Rebase squash commits before pushing or merging"))}
	}
	return nil
}

func evaluateWipCommit(c *commit.Commit) []Violation {
	if c.Kind == commit.KindMerge {
		return nil
	}
	loc := reWipMarker.FindStringIndex(c.Subject.Text)
	if loc == nil {
		return nil
	}
	return []Violation{subjectViolation(c, WipCommit, SeverityError,
		"The subject contains a work in progress marker",
		textwidth.RunesTo(c.Subject.Text, loc[0])+1,
		subjectContext(c, loc[0], loc[1], "Finish the change before pushing, or remove the marker"))}
}

func evaluateSubjectCliche(c *commit.Commit) []Violation {
	if !subjectRulesApply(c) {
		return nil
	}
	subject := c.Subject.Text
	if !reSubjectCliche.MatchString(subject) {
		return nil
	}
	return []Violation{subjectViolation(c, SubjectCliche, SeverityError,
		"The subject does not explain the change in much detail", 1,
		subjectContext(c, 0, len(subject), "Describe the change in more detail"))}
}

func evaluateSubjectLength(c *commit.Commit) []Violation {
	if !subjectRulesApply(c) {
		return nil
	}
	subject := c.Subject.Text
	width, cutoff := textwidth.Measure(subject, subjectMaxWidth)

	if width == 0 {
		return []Violation{subjectViolation(c, SubjectLength, SeverityError,
			"The commit has no subject", 1,
			subjectContext(c, 0, 1, "Add a subject to describe the change"))}
	}
	if width > subjectMaxWidth {
		return []Violation{subjectViolation(c, SubjectLength, SeverityError,
			fmt.Sprintf("The subject of `%d` characters wide is too long", width),
			cutoff.RuneCount+1,
			subjectContext(c, cutoff.ByteIndex, len(subject),
				fmt.Sprintf("Shorten the subject to a maximum width of %d characters", subjectMaxWidth)))}
	}
	// The cliche rule already covers subjects that are short because they
	// say nothing.
	if width < subjectMinWidth && !reSubjectCliche.MatchString(subject) {
		return []Violation{subjectViolation(c, SubjectLength, SeverityError,
			fmt.Sprintf("The subject of `%d` characters wide is too short", width), 1,
			subjectContext(c, 0, len(subject), "Describe the change in more detail"))}
	}
	return nil
}

func evaluateSubjectMood(c *commit.Commit) []Violation {
	if !subjectRulesApply(c) || c.Kind == commit.KindRevert {
		return nil
	}
	first, _, _ := strings.Cut(c.Subject.Text, " ")
	word := strings.ToLower(first)
	if _, found := moodWords[word]; !found {
		return nil
	}
	return []Violation{subjectViolation(c, SubjectMood, SeverityError,
		"The subject does not use the imperative grammatical mood", 1,
		subjectContext(c, 0, len(first), "Use the imperative mood for the subject"))}
}

func evaluateSubjectWhitespace(c *commit.Commit) []Violation {
	if !subjectRulesApply(c) || c.Subject.Text == "" {
		return nil
	}
	first, size := utf8.DecodeRuneInString(c.Subject.Text)
	if !unicode.IsSpace(first) {
		return nil
	}
	return []Violation{subjectViolation(c, SubjectWhitespace, SeverityError,
		"The subject starts with a whitespace character such as a space or a tab", 1,
		subjectContext(c, 0, size, "Remove the leading whitespace from the subject"))}
}

func evaluateSubjectPrefix(c *commit.Commit) []Violation {
	if !subjectRulesApply(c) {
		return nil
	}
	m := reSubjectPrefix.FindStringSubmatchIndex(c.Subject.Text)
	if m == nil {
		return nil
	}
	prefix := c.Subject.Text[m[2]:m[3]]
	return []Violation{subjectViolation(c, SubjectPrefix, SeverityError,
		fmt.Sprintf("Remove the `%s` prefix from the subject", prefix), 1,
		subjectContext(c, m[2], m[3], "Remove the prefix from the subject"))}
}

func evaluateSubjectCapitalization(c *commit.Commit) []Violation {
	if !subjectRulesApply(c) || c.Subject.Text == "" {
		return nil
	}
	// A prefixed subject is reported by SubjectPrefix; flagging its
	// casing as well would ask for two fixes to the same characters.
	if reSubjectPrefix.MatchString(c.Subject.Text) {
		return nil
	}
	first, size := utf8.DecodeRuneInString(c.Subject.Text)
	if !unicode.IsLower(first) {
		return nil
	}
	return []Violation{subjectViolation(c, SubjectCapitalization, SeverityError,
		"The subject does not start with a capital letter", 1,
		subjectContext(c, 0, size, "Start the subject with a capital letter"))}
}

func evaluateSubjectPunctuation(c *commit.Commit) []Violation {
	if !subjectRulesApply(c) || c.Kind == commit.KindRevert || c.Subject.Text == "" {
		return nil
	}
	subject := c.Subject.Text
	var violations []Violation

	first, size := utf8.DecodeRuneInString(subject)
	switch {
	case isEmoji(first):
		violations = append(violations, subjectViolation(c, SubjectPunctuation, SeverityError,
			"The subject starts with an emoji", 1,
			subjectContext(c, 0, size, "Remove the emoji from the start of the subject")))
	case isPunctuation(first):
		violations = append(violations, subjectViolation(c, SubjectPunctuation, SeverityError,
			fmt.Sprintf("The subject starts with a punctuation character: `%c`", first), 1,
			subjectContext(c, 0, size, "Remove punctuation from the start of the subject")))
	}

	last, lastSize := utf8.DecodeLastRuneInString(subject)
	if isPunctuation(last) && !isEmoji(last) {
		start := len(subject) - lastSize
		violations = append(violations, subjectViolation(c, SubjectPunctuation, SeverityError,
			fmt.Sprintf("The subject ends with a punctuation character: `%c`", last),
			textwidth.RunesTo(subject, start)+1,
			subjectContext(c, start, len(subject), "Remove punctuation from the end of the subject")))
	}
	return violations
}

func evaluateSubjectBuildTag(c *commit.Commit) []Violation {
	if !subjectRulesApply(c) {
		return nil
	}
	m := reBuildTag.FindStringSubmatchIndex(c.Subject.Text)
	if m == nil {
		return nil
	}
	tag := c.Subject.Text[m[2]:m[3]]
	return []Violation{subjectViolation(c, SubjectBuildTag, SeverityError,
		fmt.Sprintf("The `%s` build tag was found in the subject", tag),
		textwidth.RunesTo(c.Subject.Text, m[2])+1,
		subjectContext(c, m[2], m[3], "Move the build tag to the message body"))}
}

func evaluateSubjectTicketNumber(c *commit.Commit) []Violation {
	if !subjectRulesApply(c) {
		return nil
	}
	subject := c.Subject.Text
	var violations []Violation
	for _, re := range []*regexp.Regexp{reTicketNumber, reFixTicket} {
		loc := re.FindStringIndex(subject)
		if loc == nil {
			continue
		}
		violations = append(violations, subjectViolation(c, SubjectTicketNumber, SeverityError,
			"The subject contains a ticket number",
			textwidth.RunesTo(subject, loc[0])+1,
			subjectContext(c, loc[0], loc[1], "Move the ticket number to the message body")))
	}
	return violations
}
