package rule

import (
	"fmt"
	"strings"

	"github.com/lintry/lintry/internal/commit"
	"github.com/lintry/lintry/internal/textwidth"
)

const (
	bodyMaxLineWidth = 72
	bodyMinWidth     = 10
)

// messageRulesApply mirrors subjectRulesApply for body rules: generated
// and to-be-rebased commits are not held to body formatting.
func messageRulesApply(c *commit.Commit) bool {
	switch c.Kind {
	case commit.KindMerge, commit.KindFixup, commit.KindSquash:
		return false
	}
	return true
}

func messageViolation(c *commit.Commit, id ID, sev Severity, msg string, line, column int, ctx ...ContextLine) Violation {
	return Violation{
		Rule:     id,
		Severity: sev,
		Message:  msg,
		Hash:     c.Record.Hash,
		Line:     line,
		Column:   column,
		Context:  ctx,
	}
}

func evaluateBlankLineAfterSubject(c *commit.Commit) []Violation {
	if !messageRulesApply(c) || len(c.BodyLines) == 0 {
		return nil
	}
	first := c.BodyLines[0]
	if strings.TrimSpace(first.Text) == "" {
		return nil
	}
	return []Violation{messageViolation(c, BlankLineAfterSubject, SeverityError,
		"No blank line found below the subject", 2, 1,
		ContextLine{Number: 1, Text: c.Subject.Text},
		ContextLine{Number: 2, Text: first.Text, Start: 0, End: len(first.Text),
			Hint: "Add a blank line below the subject line"})}
}

func evaluateMessagePresence(c *commit.Commit) []Violation {
	if !messageRulesApply(c) {
		return nil
	}
	body := strings.TrimSpace(c.BodyText())
	width := textwidth.String(body)
	if width == 0 {
		return []Violation{messageViolation(c, MessagePresence, SeverityError,
			"No message body was found", 3, 1,
			ContextLine{Number: 1, Text: c.Subject.Text},
			ContextLine{Number: 2},
			ContextLine{Number: 3, Start: 0, End: 1,
				Hint: "Add a message body with context about the change and why it was made"})}
	}
	if width >= bodyMinWidth {
		return nil
	}
	last := c.BodyLines[len(c.BodyLines)-1]
	return []Violation{messageViolation(c, MessagePresence, SeverityError,
		"The message body is too short", last.Number, 1,
		ContextLine{Number: last.Number, Text: last.Text, Start: 0, End: len(last.Text),
			Hint: "Add a longer message with context about the change and why it was made"})}
}

// codeBlockStyle tracks whether a body line sits inside a code block,
// which is exempt from line length checks.
type codeBlockStyle int

const (
	codeBlockNone codeBlockStyle = iota
	codeBlockFenced
	codeBlockIndented
)

func evaluateLineLength(c *commit.Commit) []Violation {
	if !messageRulesApply(c) {
		return nil
	}
	var violations []Violation
	style := codeBlockNone
	previousBlank := false
	for _, bodyLine := range c.BodyLines {
		line := strings.TrimRight(bodyLine.Text, " \t")
		switch style {
		case codeBlockFenced:
			if reCodeFenceEnd.MatchString(line) {
				style = codeBlockNone
			}
		case codeBlockIndented:
			if !strings.HasPrefix(line, "    ") {
				style = codeBlockNone
			}
		case codeBlockNone:
			if reCodeFenceOpen.MatchString(line) {
				style = codeBlockFenced
			} else if strings.HasPrefix(line, "    ") && previousBlank {
				style = codeBlockIndented
			}
		}
		blank := strings.TrimSpace(line) == ""
		if style != codeBlockNone {
			previousBlank = blank
			continue
		}
		width, cutoff := textwidth.Measure(line, bodyMaxLineWidth)
		if width > bodyMaxLineWidth && !reURL.MatchString(line) {
			violations = append(violations, messageViolation(c, LineLength, SeverityError,
				fmt.Sprintf("Line %d in the message body is longer than %d characters",
					bodyLine.Number, bodyMaxLineWidth),
				bodyLine.Number, cutoff.RuneCount+1,
				ContextLine{Number: bodyLine.Number, Text: line,
					Start: cutoff.ByteIndex, End: len(line),
					Hint: fmt.Sprintf("Shorten the line to a maximum width of %d characters", bodyMaxLineWidth)}))
		}
		previousBlank = blank
	}
	return violations
}

func evaluateMessageTicketNumber(c *commit.Commit) []Violation {
	if !messageRulesApply(c) {
		return nil
	}
	body := c.BodyText()
	if reFixTicket.MatchString(body) || reLinkTicket.MatchString(body) {
		return nil
	}
	line := len(c.BodyLines) + 1
	last := ContextLine{Number: line, Text: c.Subject.Text}
	if n := len(c.BodyLines); n > 0 {
		last.Text = c.BodyLines[n-1].Text
	}
	return []Violation{messageViolation(c, MessageTicketNumber, SeverityWarning,
		"The message body does not contain a ticket or issue number", line + 2, 1,
		last,
		ContextLine{Number: line + 1},
		ContextLine{Number: line + 2, Text: "Fixes #123", Start: 0, End: len("Fixes #123"),
			Hint: "Consider adding a reference to a ticket or issue", Addition: true})}
}

func evaluateDiffPresence(c *commit.Commit) []Violation {
	// Merge commits list no changed files of their own.
	if c.Kind == commit.KindMerge {
		return nil
	}
	if c.Record.HasChanges || len(c.Record.ChangedFiles) > 0 {
		return nil
	}
	context := "0 files changed, 0 insertions(+), 0 deletions(-)"
	return []Violation{messageViolation(c, DiffPresence, SeverityError,
		"No file changes found", 0, 0,
		ContextLine{Text: context, Start: 0, End: len(context),
			Hint: "Add changes to the commit or remove the commit"})}
}
