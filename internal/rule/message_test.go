package rule

import (
	"strings"
	"testing"

	"github.com/lintry/lintry/internal/commit"
)

func TestBlankLineAfterSubjectRule(t *testing.T) {
	t.Parallel()

	t.Run("missing blank line", func(t *testing.T) {
		t.Parallel()
		violations := evaluate(t, "Fix the parser", "Body starts immediately after the subject line")
		v := findRule(t, violations, BlankLineAfterSubject)
		if v.Line != 2 || v.Column != 1 {
			t.Errorf("position = %d:%d, want 2:1", v.Line, v.Column)
		}
	})

	t.Run("blank line present", func(t *testing.T) {
		t.Parallel()
		violations := evaluate(t, "Fix the parser", "\nBody separated by a blank line.")
		if hasRule(violations, BlankLineAfterSubject) {
			t.Error("BlankLineAfterSubject should not fire")
		}
	})

	t.Run("no body at all", func(t *testing.T) {
		t.Parallel()
		violations := evaluate(t, "Fix the parser", "")
		if hasRule(violations, BlankLineAfterSubject) {
			t.Error("BlankLineAfterSubject needs a body to separate")
		}
	})
}

func TestMessagePresenceRule(t *testing.T) {
	t.Parallel()

	t.Run("no body", func(t *testing.T) {
		t.Parallel()
		v := findRule(t, evaluate(t, "Fix the parser", ""), MessagePresence)
		if v.Message != "No message body was found" {
			t.Errorf("message = %q", v.Message)
		}
		if v.Line != 3 {
			t.Errorf("line = %d, want 3", v.Line)
		}
	})

	t.Run("too short", func(t *testing.T) {
		t.Parallel()
		v := findRule(t, evaluate(t, "Fix the parser", "\nShort"), MessagePresence)
		if v.Message != "The message body is too short" {
			t.Errorf("message = %q", v.Message)
		}
		if v.Line != 3 {
			t.Errorf("line = %d, want 3 (the offending line)", v.Line)
		}
	})

	t.Run("long enough", func(t *testing.T) {
		t.Parallel()
		violations := evaluate(t, "Fix the parser", "\nExplains why the parser change was needed.")
		if hasRule(violations, MessagePresence) {
			t.Error("MessagePresence should not fire")
		}
	})
}

func TestLineLengthRule(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("a", 80)

	t.Run("long line reported with its position", func(t *testing.T) {
		t.Parallel()
		v := findRule(t, evaluate(t, "Fix the parser", "\n"+long), LineLength)
		if v.Line != 3 {
			t.Errorf("line = %d, want 3", v.Line)
		}
		if v.Column != 73 {
			t.Errorf("column = %d, want 73", v.Column)
		}
		if v.Message != "Line 3 in the message body is longer than 72 characters" {
			t.Errorf("message = %q", v.Message)
		}
	})

	t.Run("one violation per offending line in line order", func(t *testing.T) {
		t.Parallel()
		var found []Violation
		for _, v := range evaluate(t, "Fix the parser", "\n"+long+"\nshort line\n"+long) {
			if v.Rule == LineLength {
				found = append(found, v)
			}
		}
		if len(found) != 2 {
			t.Fatalf("violations = %d, want 2", len(found))
		}
		if found[0].Line != 3 || found[1].Line != 5 {
			t.Errorf("lines = %d, %d; want 3, 5", found[0].Line, found[1].Line)
		}
	})

	t.Run("urls are exempt", func(t *testing.T) {
		t.Parallel()
		line := "See https://example.com/" + strings.Repeat("a", 60)
		violations := evaluate(t, "Fix the parser", "\n"+line)
		if hasRule(violations, LineLength) {
			t.Error("lines containing a URL should be exempt")
		}
	})

	t.Run("fenced code blocks are exempt", func(t *testing.T) {
		t.Parallel()
		body := "\nExample:\n\n```\n" + long + "\n```"
		violations := evaluate(t, "Fix the parser", body)
		if hasRule(violations, LineLength) {
			t.Error("fenced code block lines should be exempt")
		}
	})

	t.Run("fence end resumes checking", func(t *testing.T) {
		t.Parallel()
		body := "\n```ruby\ninside = true\n```\n" + long
		v := findRule(t, evaluate(t, "Fix the parser", body), LineLength)
		if v.Line != 6 {
			t.Errorf("line = %d, want 6", v.Line)
		}
	})

	t.Run("indented code blocks are exempt", func(t *testing.T) {
		t.Parallel()
		body := "\nExample follows:\n\n    " + long
		violations := evaluate(t, "Fix the parser", body)
		if hasRule(violations, LineLength) {
			t.Error("indented code block lines should be exempt")
		}
	})

	t.Run("wide characters count double", func(t *testing.T) {
		t.Parallel()
		body := "\n" + strings.Repeat("字", 37) // 74 columns
		violations := evaluate(t, "Fix the parser", body)
		if !hasRule(violations, LineLength) {
			t.Error("wide lines over 72 columns should be reported")
		}
	})
}

func TestMessageTicketNumberRule(t *testing.T) {
	t.Parallel()

	t.Run("missing reference is a warning", func(t *testing.T) {
		t.Parallel()
		v := findRule(t, evaluate(t, "Fix the parser", "\nNo reference in this body."), MessageTicketNumber)
		if v.Severity != SeverityWarning {
			t.Errorf("severity = %v, want warning", v.Severity)
		}
	})

	t.Run("closing reference satisfies the rule", func(t *testing.T) {
		t.Parallel()
		violations := evaluate(t, "Fix the parser", "\nLonger context.\n\nFixes #123")
		if hasRule(violations, MessageTicketNumber) {
			t.Error("MessageTicketNumber should not fire when the body closes a ticket")
		}
	})

	t.Run("part of reference satisfies the rule", func(t *testing.T) {
		t.Parallel()
		violations := evaluate(t, "Fix the parser", "\nLonger context.\n\nPart of #42")
		if hasRule(violations, MessageTicketNumber) {
			t.Error("MessageTicketNumber should accept non-closing references")
		}
	})

	t.Run("absent without hints", func(t *testing.T) {
		t.Parallel()
		violations := NewCatalogue().EvaluateCommit(parsed(t, "Fix the parser", "\nNo reference in this body."))
		if hasRule(violations, MessageTicketNumber) {
			t.Error("hint rules require WithHints")
		}
	})
}

func TestDiffPresenceRule(t *testing.T) {
	t.Parallel()

	t.Run("no changes", func(t *testing.T) {
		t.Parallel()
		c := commit.Parse(&commit.Record{Hash: testHash, Subject: "Fix the parser"})
		violations := NewCatalogue().EvaluateCommit(c)
		if !hasRule(violations, DiffPresence) {
			t.Error("DiffPresence should fire for an empty commit")
		}
	})

	t.Run("changed files present", func(t *testing.T) {
		t.Parallel()
		c := commit.Parse(&commit.Record{
			Hash:         testHash,
			Subject:      "Fix the parser",
			ChangedFiles: []string{"parser.go"},
		})
		violations := NewCatalogue().EvaluateCommit(c)
		if hasRule(violations, DiffPresence) {
			t.Error("DiffPresence should not fire when files changed")
		}
	})

	t.Run("merge commits are exempt", func(t *testing.T) {
		t.Parallel()
		c := commit.Parse(&commit.Record{Hash: testHash, Subject: "Merge branch 'feature' into main"})
		violations := NewCatalogue().EvaluateCommit(c)
		if hasRule(violations, DiffPresence) {
			t.Error("merge commits carry no file list of their own")
		}
	})
}
