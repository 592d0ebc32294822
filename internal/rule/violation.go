// Package rule holds the violation value types and the catalogue of
// style rules evaluated over commits and branch names.
package rule

// ID identifies a rule. IDs are stable strings: downstream tooling and
// in-message disable lines reference rules by these names, so they must
// not change between releases.
type ID string

// Commit rule IDs.
const (
	MergeCommit           ID = "MergeCommit"
	NeedsRebase           ID = "NeedsRebase"
	WipCommit             ID = "WipCommit"
	SubjectCliche         ID = "SubjectCliche"
	SubjectLength         ID = "SubjectLength"
	SubjectMood           ID = "SubjectMood"
	SubjectWhitespace     ID = "SubjectWhitespace"
	SubjectPrefix         ID = "SubjectPrefix"
	SubjectCapitalization ID = "SubjectCapitalization"
	SubjectPunctuation    ID = "SubjectPunctuation"
	SubjectBuildTag       ID = "SubjectBuildTag"
	SubjectTicketNumber   ID = "SubjectTicketNumber"
	BlankLineAfterSubject ID = "BlankLineAfterSubject"
	MessagePresence       ID = "MessagePresence"
	LineLength            ID = "LineLength"
	MessageTicketNumber   ID = "MessageTicketNumber"
	DiffPresence          ID = "DiffPresence"
)

// Branch rule IDs.
const (
	BranchNameLength      ID = "BranchNameLength"
	BranchNameTicket      ID = "BranchNameTicket"
	BranchNamePunctuation ID = "BranchNamePunctuation"
	BranchNameCliche      ID = "BranchNameCliche"
)

// Severity of a violation. Errors fail the build; warnings do not.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

// String returns the display name of the severity.
func (s Severity) String() string {
	if s == SeverityWarning {
		return "Warning"
	}
	return "Error"
}

// ContextLine is one line of source context attached to a violation for
// rendering. Start and End are byte offsets into Text marking the
// highlighted span; End of zero means no highlight. Addition marks a
// suggested line that is not part of the original message.
type ContextLine struct {
	Number   int
	Text     string
	Start    int
	End      int
	Hint     string
	Addition bool
}

// Violation is a single reported rule failure. Violations are value
// objects and never mutated after creation. Line 1 is the subject; body
// lines count from 2. Columns are 1-based rune positions.
type Violation struct {
	Rule     ID
	Severity Severity
	Message  string
	Hash     string
	Line     int
	Column   int
	Context  []ContextLine
}
