// Package branch parses branch names into segments for rule evaluation.
package branch

import (
	"regexp"
	"strings"
)

// Ticket references look like ABC-123: an alphabetic project key of at
// least two characters, a dash and a number.
var ticketReference = regexp.MustCompile(`(?i)\b[a-z]{2,}-\d+\b`)

// Name is the parsed form of a branch name. Immutable after Parse.
type Name struct {
	Raw      string
	Segments []string
	// HasTicketReference is true when any path component of the name
	// contains a ticket reference such as ABC-123.
	HasTicketReference bool
}

// Parse splits a branch name into segments. It is total over all strings;
// an empty name yields zero segments.
func Parse(raw string) Name {
	name := Name{Raw: raw}
	name.Segments = strings.FieldsFunc(raw, func(r rune) bool {
		return r == '/' || r == '-' || r == '_'
	})
	for _, component := range strings.Split(raw, "/") {
		if ticketReference.MatchString(component) {
			name.HasTicketReference = true
			break
		}
	}
	return name
}
