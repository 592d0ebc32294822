package rule

import (
	"regexp"
	"unicode"
)

// Package-level compiled regexps to avoid repeated compilation.
var (
	// Merge of a remote branch into a local one: "Merge branch 'x' of host into y".
	reRemoteBranchMerge = regexp.MustCompile(`^Merge branch '.+' of .+ into .+`)

	// Conventional-commit style prefixes such as "fix:" or "chore(deps):".
	reSubjectPrefix = regexp.MustCompile(`^([\w()/!]+:)\s.*`)

	// Jira-style ticket numbers. Project keys are at least 2 characters.
	reTicketNumber = regexp.MustCompile(`[A-Z]{2,}-\d+`)

	// GitHub and GitLab issue-closing keywords followed by an issue number.
	reFixTicket = regexp.MustCompile(`([fF]ix(es|ed|ing)?|[cC]los(e|es|ed|ing)|[rR]esolv(e|es|ed|ing)|[iI]mplement(s|ed|ing)?):? ([^\s]*[\w\-/]+)?[#!]\d+`)

	// Non-closing references such as "Part of #123".
	reLinkTicket = regexp.MustCompile(`(?i)(part of|related):? ([^\s]*[\w\-/]+)?[#!]\d+`)

	// One or two word subjects that say nothing: "Fix bug", "Update code".
	// A second word only counts when it is itself generic, so subjects
	// like "Update readme" that at least name a target are not flagged.
	reSubjectCliche = regexp.MustCompile(`(?i)^(fix(es|ed|ing)?|add(s|ed|ing)?|(updat|chang|remov|delet)(e|es|ed|ing))(\s+(bug|bugs|code|stuff|things|this|that|it|typo|typos|test|tests))?$`)

	// CI skip markers.
	reBuildTag = regexp.MustCompile(`(?i)(\[(skip [\w\s_-]+|[\w\s_-]+ skip|no ci)\]|\*\*\*NO_CI\*\*\*)`)

	// Work-in-progress markers at the start of the subject or in brackets.
	reWipMarker = regexp.MustCompile(`(?i)^wip\b|\[wip\]`)

	reURL           = regexp.MustCompile(`https?://\w+`)
	reCodeFenceOpen = regexp.MustCompile("^\\s*```\\s*(\\w+)?$")
	reCodeFenceEnd  = regexp.MustCompile("^\\s*```$")

	// Branch names that are nothing but a ticket number.
	reBranchTicketOnly = regexp.MustCompile(`(?i)^\w{2,}-\d+$`)

	// Branch names that say nothing: "fix", "wip", "update-code".
	reBranchCliche = regexp.MustCompile(`(?i)^(wip|fix(es|ed|ing)?|add(s|ed|ing)?|(updat|chang|remov|delet)(e|es|ed|ing))([-_/](bug|bugs|code|stuff|things|this|that|it|typo|typos|test|tests))?$`)
)

// moodWords is the closed list of first words that indicate a past-tense
// or gerund subject instead of the imperative mood.
var moodWords = map[string]struct{}{
	"fixed": {}, "fixes": {}, "fixing": {},
	"solved": {}, "solves": {}, "solving": {},
	"resolved": {}, "resolves": {}, "resolving": {},
	"closed": {}, "closes": {}, "closing": {},
	"added": {}, "adding": {},
	"updated": {}, "updates": {}, "updating": {},
	"removed": {}, "removes": {}, "removing": {},
	"deleted": {}, "deletes": {}, "deleting": {},
	"changed": {}, "changes": {}, "changing": {},
	"moved": {}, "moves": {}, "moving": {},
	"refactored": {}, "refactors": {}, "refactoring": {},
	"checked": {}, "checks": {}, "checking": {},
	"tests": {}, "tested": {}, "testing": {},
	"adjusted": {}, "adjusts": {}, "adjusting": {},
}

// emojiRanges covers the non-ASCII emoji blocks. ASCII codepoints that can
// render as emoji (digits, #, *) are deliberately excluded so plain text
// is not misdetected.
var emojiRanges = [][2]rune{
	{0x1F000, 0x1F0FF}, // mahjong, dominoes, playing cards
	{0x1F300, 0x1F5FF}, // misc symbols and pictographs
	{0x1F600, 0x1F64F}, // emoticons
	{0x1F680, 0x1F6FF}, // transport
	{0x1F900, 0x1F9FF}, // supplemental symbols
	{0x1FA00, 0x1FAFF}, // extended-A
	{0x2600, 0x27BF},   // misc symbols, dingbats
	{0x2B00, 0x2BFF},   // arrows, stars
	{0xFE0F, 0xFE0F},   // variation selector-16
}

func isEmoji(r rune) bool {
	for _, rng := range emojiRanges {
		if r >= rng[0] && r <= rng[1] {
			return true
		}
	}
	return false
}

func isPunctuation(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}
