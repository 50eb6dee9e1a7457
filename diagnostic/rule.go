package diagnostic

import (
	"fmt"
	"net/http"

	"go.jacobcolvin.com/rovo/annotation"
)

const (
	// MinStatusCode is the lowest valid HTTP status code.
	MinStatusCode = 100
	// MaxStatusCode is the highest valid HTTP status code.
	MaxStatusCode = 599
)

// Rule names used by [DefaultRegistry].
const (
	RuleStatusRange    = "status-range"
	RuleStandardStatus = "standard-status"
	RuleExampleStatus  = "example-status"
	RuleDuplicateID    = "duplicate-id"
)

// Rule is a named validation rule. A Rule must also implement
// [AnnotationRule], [SequenceRule], or both; the [Validator] ignores rules
// that implement neither.
type Rule interface {
	Name() string
}

// AnnotationRule checks a single annotation.
type AnnotationRule interface {
	Rule
	Check(ann annotation.Annotation) []Diagnostic
}

// SequenceRule checks the full annotation sequence of one document.
type SequenceRule interface {
	Rule
	CheckAll(anns []annotation.Annotation) []Diagnostic
}

// RuleFunc adapts a plain function to an [AnnotationRule].
type RuleFunc struct {
	Fn       func(ann annotation.Annotation) []Diagnostic
	RuleName string
}

// NewRuleFunc returns an [AnnotationRule] named name that calls fn.
func NewRuleFunc(name string, fn func(ann annotation.Annotation) []Diagnostic) *RuleFunc {
	return &RuleFunc{RuleName: name, Fn: fn}
}

// Name returns the rule name.
func (r *RuleFunc) Name() string {
	return r.RuleName
}

// Check calls the wrapped function.
func (r *RuleFunc) Check(ann annotation.Annotation) []Diagnostic {
	return r.Fn(ann)
}

// StatusRange reports @response status codes outside
// [MinStatusCode]..[MaxStatusCode].
type StatusRange struct{}

// NewStatusRange creates the status-range rule.
func NewStatusRange() *StatusRange {
	return &StatusRange{}
}

// Name returns the rule name.
func (*StatusRange) Name() string {
	return RuleStatusRange
}

// Check reports an error for a [annotation.Response] with an out-of-range
// status. Every other annotation kind passes.
func (*StatusRange) Check(ann annotation.Annotation) []Diagnostic {
	resp, ok := ann.(annotation.Response)
	if !ok || validStatus(resp.Status) {
		return nil
	}

	return []Diagnostic{{
		Rule:     RuleStatusRange,
		Severity: SeverityError,
		Line:     resp.Line,
		Message:  invalidStatusMessage(resp.Status),
	}}
}

// StandardStatus warns about @response status codes that are in range but
// not registered in RFC 9110 (for example 299). Out-of-range codes are left
// to [StatusRange].
type StandardStatus struct{}

// NewStandardStatus creates the standard-status rule.
func NewStandardStatus() *StandardStatus {
	return &StandardStatus{}
}

// Name returns the rule name.
func (*StandardStatus) Name() string {
	return RuleStandardStatus
}

// Check reports a warning for a non-standard [annotation.Response] status.
func (*StandardStatus) Check(ann annotation.Annotation) []Diagnostic {
	resp, ok := ann.(annotation.Response)
	if !ok || !validStatus(resp.Status) || http.StatusText(int(resp.Status)) != "" {
		return nil
	}

	return []Diagnostic{{
		Rule:     RuleStandardStatus,
		Severity: SeverityWarning,
		Line:     resp.Line,
		Message:  fmt.Sprintf("Non-standard HTTP status code: %d.", resp.Status),
	}}
}

// ExampleStatus reports @example status codes outside
// [MinStatusCode]..[MaxStatusCode]. The example value itself is not checked.
type ExampleStatus struct{}

// NewExampleStatus creates the example-status rule.
func NewExampleStatus() *ExampleStatus {
	return &ExampleStatus{}
}

// Name returns the rule name.
func (*ExampleStatus) Name() string {
	return RuleExampleStatus
}

// Check reports an error for an [annotation.Example] with an out-of-range
// status.
func (*ExampleStatus) Check(ann annotation.Annotation) []Diagnostic {
	ex, ok := ann.(annotation.Example)
	if !ok || validStatus(ex.Status) {
		return nil
	}

	return []Diagnostic{{
		Rule:     RuleExampleStatus,
		Severity: SeverityError,
		Line:     ex.Line,
		Message:  invalidStatusMessage(ex.Status),
	}}
}

// DuplicateID warns when an operation id is declared more than once in the
// same document. The first declaration is accepted; each repeat is reported.
type DuplicateID struct{}

// NewDuplicateID creates the duplicate-id rule.
func NewDuplicateID() *DuplicateID {
	return &DuplicateID{}
}

// Name returns the rule name.
func (*DuplicateID) Name() string {
	return RuleDuplicateID
}

// CheckAll reports every repeated [annotation.ID].
func (*DuplicateID) CheckAll(anns []annotation.Annotation) []Diagnostic {
	var diags []Diagnostic

	first := make(map[string]int)

	for _, ann := range anns {
		id, ok := ann.(annotation.ID)
		if !ok {
			continue
		}

		line, seen := first[id.OperationID]
		if !seen {
			first[id.OperationID] = id.Line

			continue
		}

		diags = append(diags, Diagnostic{
			Rule:     RuleDuplicateID,
			Severity: SeverityWarning,
			Line:     id.Line,
			Message: fmt.Sprintf("Duplicate operation id %q, first declared on line %d.",
				id.OperationID, line+1),
		})
	}

	return diags
}

func validStatus(status uint16) bool {
	return status >= MinStatusCode && status <= MaxStatusCode
}

func invalidStatusMessage(status uint16) string {
	return fmt.Sprintf("Invalid HTTP status code: %d. Must be between %d and %d.",
		status, MinStatusCode, MaxStatusCode)
}
