// Package reporter renders lint results for humans and machines and maps
// the aggregate verdict to an exit code.
package reporter

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/lintry/lintry/internal/lint"
	"github.com/lintry/lintry/internal/rule"
	"github.com/lintry/lintry/internal/textwidth"
)

// ColorMode controls whether the human renderer emits ANSI styles.
type ColorMode int

const (
	ColorAuto ColorMode = iota
	ColorAlways
	ColorNever
)

// Renderer writes a human-readable report.
type Renderer struct {
	color       bool
	showHints   bool
	errorStyle  lipgloss.Style
	warnStyle   lipgloss.Style
	ruleStyle   lipgloss.Style
	mutedStyle  lipgloss.Style
	hintStyle   lipgloss.Style
	markerStyle lipgloss.Style
}

// NewRenderer creates a Renderer. ColorAuto enables styling only when
// stdout is a terminal.
func NewRenderer(mode ColorMode, showHints bool) *Renderer {
	color := false
	switch mode {
	case ColorAlways:
		color = true
	case ColorAuto:
		color = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}

	r := &Renderer{color: color, showHints: showHints}
	if !color {
		return r
	}
	r.errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	r.warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	r.ruleStyle = lipgloss.NewStyle().Bold(true)
	r.mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	r.hintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	r.markerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	return r
}

// Render writes the full report: one block per violation, then a summary
// line.
func (r *Renderer) Render(w io.Writer, result *lint.Result) error {
	for _, report := range result.Commits {
		for _, v := range report.Violations {
			if err := r.renderViolation(w, v); err != nil {
				return err
			}
		}
	}
	for _, v := range result.Branch {
		if err := r.renderViolation(w, v); err != nil {
			return err
		}
	}
	return r.renderSummary(w, result)
}

func (r *Renderer) renderViolation(w io.Writer, v rule.Violation) error {
	if v.Severity == rule.SeverityWarning && !r.showHints {
		return nil
	}

	severity := v.Severity.String()
	if r.color {
		if v.Severity == rule.SeverityError {
			severity = r.errorStyle.Render(severity)
		} else {
			severity = r.warnStyle.Render(severity)
		}
	}
	header := fmt.Sprintf("%s[%s]: %s", severity, r.ruleStyle.Render(string(v.Rule)), v.Message)
	location := locationLabel(v)
	if _, err := fmt.Fprintf(w, "%s\n  %s\n", header, r.mutedStyle.Render(location)); err != nil {
		return err
	}
	if err := r.renderContext(w, v.Context); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}

func locationLabel(v rule.Violation) string {
	target := "branch"
	if v.Hash != "" {
		if len(v.Hash) > 7 {
			target = v.Hash[:7]
		} else {
			target = v.Hash
		}
	}
	if v.Line == 0 {
		return target
	}
	return fmt.Sprintf("%s:%d:%d", target, v.Line, v.Column)
}

// renderContext prints the source snippet with a line number gutter and a
// caret marker under the highlighted span.
func (r *Renderer) renderContext(w io.Writer, context []rule.ContextLine) error {
	gutter := gutterWidth(context)
	for _, line := range context {
		number := strings.Repeat(" ", gutter)
		if line.Number > 0 {
			number = fmt.Sprintf("%*d", gutter, line.Number)
		}
		divider := "|"
		if line.Addition {
			divider = "+"
		}
		prefix := r.mutedStyle.Render(fmt.Sprintf("  %s %s", number, divider))
		if _, err := fmt.Fprintf(w, "%s %s\n", prefix, line.Text); err != nil {
			return err
		}
		if line.End <= line.Start && line.Hint == "" {
			continue
		}
		markers := markerLine(line)
		hint := line.Hint
		if r.color {
			markers = r.markerStyle.Render(markers)
			hint = r.hintStyle.Render(hint)
		}
		underline := fmt.Sprintf("  %s %s %s %s",
			strings.Repeat(" ", gutter), r.mutedStyle.Render("|"), markers, hint)
		if _, err := fmt.Fprintln(w, strings.TrimRight(underline, " ")); err != nil {
			return err
		}
	}
	return nil
}

// markerLine builds the caret underline for a highlighted span, measured
// in display columns so it aligns under wide characters.
func markerLine(line rule.ContextLine) string {
	lead := textwidth.String(line.Text[:min(line.Start, len(line.Text))])
	span := 1
	if line.End > line.Start {
		end := min(line.End, len(line.Text))
		span = max(textwidth.String(line.Text[line.Start:end]), 1)
	}
	return strings.Repeat(" ", lead) + strings.Repeat("^", span)
}

func gutterWidth(context []rule.ContextLine) int {
	widest := 1
	for _, line := range context {
		if n := len(fmt.Sprint(line.Number)); line.Number > 0 && n > widest {
			widest = n
		}
	}
	return widest
}

func (r *Renderer) renderSummary(w io.Writer, result *lint.Result) error {
	commits := len(result.Commits)
	total := result.ViolationCount()
	if !r.showHints {
		total = countShown(result)
	}
	label := fmt.Sprintf("%d commits inspected, %s detected", commits, pluralize(total, "issue"))
	if total == 0 {
		label = fmt.Sprintf("%d commits inspected, no issues detected", commits)
	}
	_, err := fmt.Fprintln(w, label)
	return err
}

func countShown(result *lint.Result) int {
	count := 0
	for _, v := range result.Branch {
		if v.Severity == rule.SeverityError {
			count++
		}
	}
	for _, c := range result.Commits {
		for _, v := range c.Violations {
			if v.Severity == rule.SeverityError {
				count++
			}
		}
	}
	return count
}

func pluralize(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
