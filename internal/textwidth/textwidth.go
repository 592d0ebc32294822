// Package textwidth measures strings in terminal display columns.
//
// Length rules count columns, not bytes: East Asian wide and fullwidth
// runes count as 2, zero-width runes (combining marks, joiners, variation
// selectors) count as 0, everything else counts as 1. All rules share this
// measurement so multi-byte subjects are judged consistently.
package textwidth

import (
	"unicode"

	"golang.org/x/text/width"
)

// Cutoff marks where a limit was crossed while scanning a string.
type Cutoff struct {
	// ByteIndex is the byte offset of the first rune past the limit.
	ByteIndex int
	// RuneCount is the number of runes before that offset.
	RuneCount int
}

// RuneWidth returns the display width of a single rune.
func RuneWidth(r rune) int {
	switch r {
	case '\u200b', '\u200c', '\u200d', '\ufeff': // zero-width space/joiners, BOM
		return 0
	}
	if r >= '\ufe00' && r <= '\ufe0f' { // variation selectors
		return 0
	}
	if unicode.In(r, unicode.Mn, unicode.Me, unicode.Cf) {
		return 0
	}
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	}
	return 1
}

// String returns the display width of s.
func String(s string) int {
	total := 0
	for _, r := range s {
		total += RuneWidth(r)
	}
	return total
}

// Measure returns the display width of s and the cutoff position where the
// accumulated width first exceeds limit. When s fits within limit, the
// cutoff points at the end of the string.
func Measure(s string, limit int) (int, Cutoff) {
	total := 0
	runes := 0
	cut := Cutoff{ByteIndex: len(s)}
	found := false
	for i, r := range s {
		if !found && total >= limit {
			cut = Cutoff{ByteIndex: i, RuneCount: runes}
			found = true
		}
		total += RuneWidth(r)
		runes++
	}
	if !found {
		cut.RuneCount = runes
	}
	return total, cut
}

// RunesTo returns the number of runes in s before byte offset index.
// Used to translate byte offsets from regexp matches into columns.
func RunesTo(s string, index int) int {
	if index > len(s) {
		index = len(s)
	}
	count := 0
	for i := range s {
		if i >= index {
			break
		}
		count++
	}
	return count
}
