package lint

// Severity indicates the severity level of a diagnostic.
type Severity string

// Severity levels.
const (
	Error   Severity = "error"
	Warning Severity = "warning"
)

// Diagnostic represents a single lint finding. Line and Column mark the
// start of the reported range, EndLine and EndColumn its exclusive end.
type Diagnostic struct {
	File      string
	Line      int
	Column    int
	EndLine   int
	EndColumn int
	RuleID    string
	RuleName  string
	Severity  Severity
	Message   string
	// Fix holds the ordered, non-overlapping edits that resolve the
	// finding. Empty when no automatic fix is offered.
	Fix []Edit
}

// Fixable reports whether the diagnostic carries an automatic fix.
func (d Diagnostic) Fixable() bool { return len(d.Fix) > 0 }
