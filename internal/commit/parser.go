package commit

import (
	"regexp"
	"strings"
)

const disablePrefix = "lintry:disable "

// A trailer line is "Key: value" where the key is a word of letters,
// digits and dashes. A line only counts as part of the trailer block when
// every line from it to the end of the message matches, which prevents
// accidental matches mid-paragraph.
var trailerLine = regexp.MustCompile(`^([A-Za-z][A-Za-z0-9-]*):[ \t]+(.+)$`)

// Parse converts a Record into a Commit. It is total: empty subjects,
// missing bodies and malformed trailers all produce a valid Commit and
// are left for the rules to flag.
func Parse(rec *Record) *Commit {
	subject := rec.Subject
	body := rec.Body
	// Defensive: when the collaborator hands over a full message in the
	// subject field, split it here.
	if i := strings.IndexByte(subject, '\n'); i >= 0 {
		rest := subject[i+1:]
		if body == "" {
			body = rest
		} else {
			body = rest + "\n" + body
		}
		subject = subject[:i]
	}

	c := &Commit{
		Record:   rec,
		Trailers: rec.Trailers,
		Kind:     classify(subject),
	}

	rawSubject := subject
	subject = strings.TrimRight(subject, " \t")
	c.Subject = parsedLine(subject, 1)
	c.Subject.TrailingSpace = rawSubject != subject

	rawLines := splitLines(body)
	// Collected from the raw body so a disable line below the trailer
	// block still counts.
	for _, line := range rawLines {
		if name, ok := strings.CutPrefix(line, disablePrefix); ok {
			c.disabled = append(c.disabled, strings.TrimSpace(name))
		}
	}

	bodyLines, trailers := splitTrailers(rawLines)
	c.Trailers = append(c.Trailers, trailers...)
	for i, raw := range bodyLines {
		c.BodyLines = append(c.BodyLines, parsedLine(raw, i+2))
	}
	return c
}

// classify computes the commit kind from the subject prefix. Deterministic
// and order-independent: the first matching prefix wins.
func classify(subject string) Kind {
	switch {
	case strings.HasPrefix(subject, "Merge "):
		return KindMerge
	case strings.HasPrefix(subject, "fixup! "):
		return KindFixup
	case strings.HasPrefix(subject, "squash! "):
		return KindSquash
	case strings.HasPrefix(subject, `Revert "`):
		return KindRevert
	default:
		return KindNormal
	}
}

func splitLines(body string) []string {
	if body == "" {
		return nil
	}
	return strings.Split(strings.TrimRight(body, "\n"), "\n")
}

// splitTrailers detaches the trailer block from the end of the body.
// The block is the longest suffix of lines that all match the trailer
// pattern; a blank line or any non-matching line above it ends the block.
func splitTrailers(lines []string) (body []string, trailers []Trailer) {
	start := len(lines)
	for i := len(lines) - 1; i >= 0; i-- {
		if !trailerLine.MatchString(lines[i]) {
			break
		}
		start = i
	}
	if start == len(lines) {
		return lines, nil
	}
	for _, line := range lines[start:] {
		m := trailerLine.FindStringSubmatch(line)
		trailers = append(trailers, Trailer{Key: m[1], Value: strings.TrimSpace(m[2])})
	}
	body = lines[:start]
	// Drop the blank separator above the trailer block.
	for len(body) > 0 && strings.TrimSpace(body[len(body)-1]) == "" {
		body = body[:len(body)-1]
	}
	return body, trailers
}
