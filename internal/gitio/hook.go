package gitio

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/lintry/lintry/internal/commit"
)

// scissors is the marker git inserts above the verbose diff in a commit
// message file. Everything below it is never part of the message.
const scissors = "------------------------ >8 ------------------------"

// CleanupMode mirrors git's commit.cleanup setting, which decides how the
// contents of the commit message file are stripped before the commit is
// created.
type CleanupMode int

const (
	CleanupDefault CleanupMode = iota
	CleanupStrip
	CleanupWhitespace
	CleanupVerbatim
	CleanupScissors
)

// HookRecord reads a commit-msg hook message file and turns it into a
// record, applying the repository's cleanup mode and comment character
// the same way git will when it finalizes the commit. Staged changes
// decide HasChanges, since the message file itself is unreliable for
// that.
func (s *Source) HookRecord(ctx context.Context, path string) (*commit.Record, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read commit message file: %w", err)
	}

	mode := s.cleanupMode(ctx)
	comment := s.commentChar(ctx)
	rec := parseHookMessage(string(raw), mode, comment)

	staged, err := s.runGit(ctx, "diff", "--cached", "--name-only")
	if err != nil {
		slog.Debug("unable to determine staged changes", "error", err)
	}
	for _, line := range strings.Split(staged, "\n") {
		if p := strings.TrimSpace(line); p != "" {
			rec.ChangedFiles = append(rec.ChangedFiles, p)
		}
	}
	rec.HasChanges = len(rec.ChangedFiles) > 0
	return rec, nil
}

// parseHookMessage extracts subject and body from a raw commit message
// file. In every mode but verbatim the subject is the first non-empty
// cleaned line; comment lines are dropped in strip and default modes.
func parseHookMessage(message string, mode CleanupMode, comment string) *commit.Record {
	scissorLine := comment + " " + scissors
	var subject *string
	var bodyLines []string

	for line := range strings.Lines(message) {
		line = strings.TrimSuffix(line, "\n")
		if line == scissorLine {
			break
		}

		if subject == nil {
			if mode == CleanupVerbatim {
				s := line
				subject = &s
				continue
			}
			cleaned, keep := cleanupLine(line, mode, comment)
			if keep && cleaned != "" {
				subject = &cleaned
			}
			continue
		}

		if cleaned, keep := cleanupLine(line, mode, comment); keep {
			bodyLines = append(bodyLines, cleaned)
		}
	}

	rec := &commit.Record{}
	if subject != nil {
		rec.Subject = *subject
	}
	rec.Body = strings.TrimRight(strings.Join(bodyLines, "\n"), "\n")
	return rec
}

func cleanupLine(line string, mode CleanupMode, comment string) (string, bool) {
	switch mode {
	case CleanupDefault, CleanupStrip:
		if strings.HasPrefix(line, comment) {
			return "", false
		}
		return strings.TrimRight(line, " \t"), true
	case CleanupVerbatim:
		return line, true
	default: // whitespace, scissors
		return strings.TrimRight(line, " \t"), true
	}
}

// cleanupMode reads the repository's commit.cleanup setting. Git exits
// with code 1 when the option is unset, which falls through to the
// default here.
func (s *Source) cleanupMode(ctx context.Context) CleanupMode {
	out, err := s.runGit(ctx, "config", "commit.cleanup")
	if err != nil {
		slog.Debug("commit.cleanup not configured, using default", "error", err)
		return CleanupDefault
	}
	switch strings.TrimSpace(out) {
	case "strip":
		return CleanupStrip
	case "whitespace":
		return CleanupWhitespace
	case "verbatim":
		return CleanupVerbatim
	case "scissors":
		return CleanupScissors
	case "default", "":
		return CleanupDefault
	default:
		slog.Info("unsupported commit.cleanup config, using default", "value", out)
		return CleanupDefault
	}
}

func (s *Source) commentChar(ctx context.Context) string {
	out, err := s.runGit(ctx, "config", "core.commentChar")
	if err != nil {
		return "#"
	}
	if c := strings.TrimSpace(out); c != "" && c != "auto" {
		return c
	}
	return "#"
}
