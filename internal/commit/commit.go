// Package commit turns raw commit records into validated, immutable
// entities for rule evaluation.
package commit

import (
	"slices"
	"strings"

	"github.com/lintry/lintry/internal/textwidth"
)

// Kind classifies a commit by its subject shape. It is computed once at
// parse time and decides which rules apply.
type Kind int

const (
	KindNormal Kind = iota
	KindMerge
	KindFixup
	KindSquash
	KindRevert
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindMerge:
		return "merge"
	case KindFixup:
		return "fixup"
	case KindSquash:
		return "squash"
	case KindRevert:
		return "revert"
	default:
		return "normal"
	}
}

// Trailer is one Key: value line from the trailer block at the end of a
// commit message, such as a sign-off line.
type Trailer struct {
	Key   string
	Value string
}

// Record holds the raw fields of one historical commit as supplied by the
// git collaborator. Records are never mutated.
type Record struct {
	Hash         string
	Subject      string
	Body         string
	Trailers     []Trailer
	AuthorName   string
	AuthorEmail  string
	ChangedFiles []string
	HasChanges   bool
}

// ShortHash returns the first seven characters of the hash, or the full
// hash when it is shorter than that.
func (r *Record) ShortHash() string {
	if len(r.Hash) < 7 {
		return r.Hash
	}
	return r.Hash[:7]
}

// ParsedLine is one line of a commit message with its position and
// display width precomputed for the rules.
type ParsedLine struct {
	Text   string
	Number int
	Width  int
	// LeadingSpace and TrailingSpace report whitespace on the raw line.
	// The subject keeps its leading whitespace but is stored trimmed of
	// trailing whitespace.
	LeadingSpace  bool
	TrailingSpace bool
}

// Commit is the parsed, immutable form of a Record. Construction never
// fails; malformed input is represented as-is and left for the rules.
type Commit struct {
	Subject   ParsedLine
	BodyLines []ParsedLine
	Trailers  []Trailer
	Kind      Kind
	Record    *Record

	disabled []string
}

// RuleDisabled reports whether the message disabled the given rule with a
// "lintry:disable <RuleID>" line.
func (c *Commit) RuleDisabled(id string) bool {
	return slices.Contains(c.disabled, id)
}

// BodyText joins the body lines back into a single string, without the
// stripped trailer block.
func (c *Commit) BodyText() string {
	lines := make([]string, len(c.BodyLines))
	for i, l := range c.BodyLines {
		lines[i] = l.Text
	}
	return strings.Join(lines, "\n")
}

func parsedLine(raw string, number int) ParsedLine {
	return ParsedLine{
		Text:          raw,
		Number:        number,
		Width:         textwidth.String(raw),
		LeadingSpace:  raw != strings.TrimLeft(raw, " \t"),
		TrailingSpace: raw != strings.TrimRight(raw, " \t"),
	}
}
