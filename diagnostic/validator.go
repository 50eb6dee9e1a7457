package diagnostic

import (
	"log/slog"
	"maps"
	"slices"

	"go.jacobcolvin.com/rovo/annotation"
)

// Validator applies rules to annotations.
//
// Create instances with [NewValidator]. A Validator holds no state between
// calls and is safe for concurrent use as long as its rules are.
type Validator struct {
	rules []Rule
}

// Option configures a [Validator].
type Option func(*Validator)

// WithRules replaces the validator's rules. Rules run in the given order.
func WithRules(rules ...Rule) Option {
	return func(v *Validator) {
		v.rules = rules
	}
}

// NewValidator creates a [Validator]. Without options it uses
// [DefaultRules].
func NewValidator(opts ...Option) *Validator {
	v := &Validator{rules: DefaultRules()}

	for _, opt := range opts {
		opt(v)
	}

	return v
}

// DefaultRules returns the rules enabled by default: only [StatusRange].
func DefaultRules() []Rule {
	return []Rule{NewStatusRange()}
}

// Validate parses content with the default rules and returns its
// diagnostics.
func Validate(content string) []Diagnostic {
	return NewValidator().ValidateContent(content)
}

// RuleNames returns the names of the configured rules, in order.
func (v *Validator) RuleNames() []string {
	names := make([]string, 0, len(v.rules))
	for _, r := range v.rules {
		names = append(names, r.Name())
	}

	return names
}

// ValidateContent scans content with [annotation.Scan] and validates the
// result.
func (v *Validator) ValidateContent(content string) []Diagnostic {
	return v.Validate(annotation.Scan(content))
}

// Validate returns the diagnostics for anns.
//
// Per-annotation rules run for each annotation in order. Diagnostics from
// sequence rules are placed after the per-annotation diagnostics of the
// first annotation on the same line; any left over are appended in line
// order.
func (v *Validator) Validate(anns []annotation.Annotation) []Diagnostic {
	var (
		perAnn []AnnotationRule
		diags  []Diagnostic
	)

	pending := make(map[int][]Diagnostic)

	for _, r := range v.rules {
		if ar, ok := r.(AnnotationRule); ok {
			perAnn = append(perAnn, ar)
		}

		if sr, ok := r.(SequenceRule); ok {
			for _, d := range sr.CheckAll(anns) {
				pending[d.Line] = append(pending[d.Line], d)
			}
		}
	}

	for _, ann := range anns {
		for _, r := range perAnn {
			diags = append(diags, r.Check(ann)...)
		}

		line := ann.SourceLine()
		if seq, ok := pending[line]; ok {
			diags = append(diags, seq...)
			delete(pending, line)
		}
	}

	for _, line := range slices.Sorted(maps.Keys(pending)) {
		diags = append(diags, pending[line]...)
	}

	slog.Debug("validated annotations",
		slog.Int("annotations", len(anns)),
		slog.Int("rules", len(v.rules)),
		slog.Int("diagnostics", len(diags)),
	)

	return diags
}
