package diagnostic

// Severity is the severity of a [Diagnostic].
type Severity string

const (
	// SeverityError marks a violation that makes the annotation wrong.
	SeverityError Severity = "error"
	// SeverityWarning marks a likely mistake that does not invalidate the
	// annotation.
	SeverityWarning Severity = "warning"
)

// AllSeverities returns every severity, most severe first.
func AllSeverities() []Severity {
	return []Severity{SeverityError, SeverityWarning}
}

// AtLeast reports whether s is as severe as or more severe than other.
// Unknown severities rank below [SeverityWarning].
func (s Severity) AtLeast(other Severity) bool {
	return s.rank() >= other.rank()
}

func (s Severity) rank() int {
	switch s {
	case SeverityError:
		return 2
	case SeverityWarning:
		return 1
	}

	return 0
}

// Diagnostic is a line-addressed message about a semantic problem found in
// the annotations of a document.
type Diagnostic struct {
	// EndLine is the last zero-based line of a diagnostic that spans
	// several lines. Nil for single-line diagnostics.
	EndLine *int
	// CharStart is the zero-based character offset within Line where the
	// diagnostic starts. Nil when the whole line is meant.
	CharStart *int
	// Rule is the name of the rule that produced the diagnostic.
	Rule     string
	Message  string
	Severity Severity
	// Line is the zero-based line the diagnostic starts on.
	Line int
}
