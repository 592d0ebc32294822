package gitio

import (
	"regexp"
	"strings"

	"github.com/lintry/lintry/internal/commit"
)

var (
	// Subjects ending with a GitHub squash merge marker: " (#123)".
	reSquashPRSubject = regexp.MustCompile(`.+ \(#\d+\)$`)
	// GitLab merge commits reference their merge request in the body.
	reMergeRequestRef = regexp.MustCompile(`(?m)^See merge request .+/.+!\d+$`)
)

// ignoreReason decides whether a record should be exempt from linting
// entirely. Pull request and tag merges are created by the hosting
// platform and cannot be rewritten; bot commits are not authored by a
// person. Returns an empty string for commits that should be linted.
func ignoreReason(rec *commit.Record) string {
	if strings.HasSuffix(rec.AuthorEmail, "[bot]@users.noreply.github.com") {
		return "bot author"
	}
	subject := rec.Subject
	switch {
	case strings.HasPrefix(subject, "Merge tag "):
		return "tag merge"
	case strings.HasPrefix(subject, "Merge pull request"):
		return "pull request merge"
	case strings.HasPrefix(subject, "Merge branch ") && reMergeRequestRef.MatchString(rec.Body):
		return "merge request merge"
	case reSquashPRSubject.MatchString(subject):
		return "squashed pull request merge"
	}
	return ""
}
