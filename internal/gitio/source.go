// Package gitio reads commit records and the branch name from the git
// binary. It is the only package that touches the version control system;
// the lint core never performs I/O.
package gitio

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/lintry/lintry/internal/commit"
)

// Delimiters injected into the git log format to tell commits and their
// metadata apart. Chosen to be extremely unlikely to occur in messages.
const (
	commitDelimiter = "------------------------ COMMIT >! ------------------------"
	bodyDelimiter   = "------------------------ BODY >! ------------------------"
)

const defaultTimeout = 10 * time.Second

// Source reads commits from a git repository by running the git binary.
type Source struct {
	workDir string
	timeout time.Duration
}

// NewSource creates a Source rooted at workDir. An empty workDir uses the
// current directory.
func NewSource(workDir string) *Source {
	if workDir == "" {
		workDir, _ = os.Getwd()
	}
	return &Source{workDir: workDir, timeout: defaultTimeout}
}

// runGit executes a git command and returns its trimmed stdout.
func (s *Source) runGit(ctx context.Context, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = s.workDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail != "" {
			return "", fmt.Errorf("git %s: %w: %s", args[0], err, detail)
		}
		return "", fmt.Errorf("git %s: %w", args[0], err)
	}
	return strings.TrimRight(stdout.String(), "\n"), nil
}

// Commits yields the records selected by a revision or revision range,
// oldest first. An empty selection lints the latest commit; a selection
// without ".." lints that single commit. Commits matched by the ignore
// heuristics (bot authors, pull request merges) yield no record.
func (s *Source) Commits(ctx context.Context, selection string) ([]*commit.Record, error) {
	// Per commit: hash, author name, author email, then the raw message.
	// The body delimiter separates the message from the changed file
	// list produced by --name-only.
	format := fmt.Sprintf("%s%%n%%H%%n%%an%%n%%ae%%n%%B%%n%s", commitDelimiter, bodyDelimiter)
	args := []string{"log", "--pretty=" + format, "--name-only", "--reverse"}

	selection = strings.TrimSpace(selection)
	switch {
	case selection == "":
		args = append(args, "-n", "1", "HEAD")
	case !strings.Contains(selection, ".."):
		args = append(args, "-n", "1", selection)
	default:
		args = append(args, selection)
	}

	output, err := s.runGit(ctx, args...)
	if err != nil {
		return nil, fmt.Errorf("read commits: %w", err)
	}
	return parseLog(output), nil
}

// parseLog splits raw git log output into records.
func parseLog(output string) []*commit.Record {
	var records []*commit.Record
	for chunk := range strings.SplitSeq(output, commitDelimiter) {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}
		rec := parseChunk(chunk)
		if rec == nil {
			continue
		}
		if reason := ignoreReason(rec); reason != "" {
			slog.Debug("commit ignored", "hash", rec.ShortHash(), "reason", reason)
			continue
		}
		records = append(records, rec)
	}
	return records
}

func parseChunk(chunk string) *commit.Record {
	head, tail, _ := strings.Cut(chunk, bodyDelimiter)

	rec := &commit.Record{}
	var bodyLines []string
	for i, line := range strings.Split(head, "\n") {
		switch i {
		case 0:
			rec.Hash = line
		case 1:
			rec.AuthorName = line
		case 2:
			rec.AuthorEmail = line
		case 3:
			rec.Subject = line
		default:
			bodyLines = append(bodyLines, line)
		}
	}
	if rec.Hash == "" {
		slog.Debug("commit chunk without hash skipped")
		return nil
	}
	rec.Body = strings.TrimRight(strings.Join(bodyLines, "\n"), "\n")

	for _, line := range strings.Split(tail, "\n") {
		if path := strings.TrimSpace(line); path != "" {
			rec.ChangedFiles = append(rec.ChangedFiles, path)
		}
	}
	rec.HasChanges = len(rec.ChangedFiles) > 0
	return rec
}

// BranchName returns the current branch name. Detached heads return the
// string "HEAD", which the caller may choose to skip.
func (s *Source) BranchName(ctx context.Context) (string, error) {
	name, err := s.runGit(ctx, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", fmt.Errorf("read branch name: %w", err)
	}
	return strings.TrimSpace(name), nil
}
