// Package diagnostic validates parsed rovo annotations and reports
// editor-facing diagnostics.
//
// A [Validator] applies a list of [Rule] values to the output of
// [annotation.Scan]. Rules come in two shapes: an [AnnotationRule] inspects
// one annotation at a time, and a [SequenceRule] inspects the whole
// annotation sequence of a document (for cross-annotation checks). A rule
// may implement either or both.
//
// The default rule set contains a single rule, [StatusRange], which reports
// an error for every @response status code outside 100..599:
//
//	diags := diagnostic.Validate(content)
//	for _, d := range diags {
//		fmt.Printf("%d: %s: %s\n", d.Line+1, d.Severity, d.Message)
//	}
//
// Additional rules ([StandardStatus], [ExampleStatus], [DuplicateID]) are
// opt-in. Select them by name through [Config] and [DefaultRegistry]:
//
//	cfg := diagnostic.NewConfig()
//	cfg.RegisterFlags(rootCmd.Flags())
//
//	v, err := cfg.NewValidator()
//
// Diagnostics are emitted in annotation order. For a single annotation,
// diagnostics from per-annotation rules come first in rule order, followed by
// sequence-rule diagnostics reported on the same line. Line numbers are
// zero-based; mapping them to a host protocol is the caller's job.
package diagnostic
