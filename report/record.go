package report

import (
	"go.jacobcolvin.com/rovo/annotation"
	"go.jacobcolvin.com/rovo/diagnostic"
)

// Report is the document produced by one rovo invocation.
type Report struct {
	// Summary is set for validation runs only.
	Summary *Summary `json:"summary,omitempty" yaml:"summary,omitempty"`
	Files   []File   `json:"files"             yaml:"files"`
}

// File holds the results for a single input.
type File struct {
	Path        string       `json:"path"                  yaml:"path"`
	Annotations []Annotation `json:"annotations,omitempty" yaml:"annotations,omitempty"`
	Diagnostics []Diagnostic `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`
}

// Summary counts the checked files and their diagnostics by severity.
type Summary struct {
	Files    int `json:"files"    yaml:"files"`
	Errors   int `json:"errors"   yaml:"errors"`
	Warnings int `json:"warnings" yaml:"warnings"`
}

// Annotation is the flattened form of an [annotation.Annotation]. Only the
// fields of its kind are set.
type Annotation struct {
	Status       *uint16 `json:"status,omitempty"       yaml:"status,omitempty"`
	Kind         string  `json:"kind"                   yaml:"kind"`
	ResponseType string  `json:"responseType,omitempty" yaml:"responseType,omitempty"`
	Description  string  `json:"description,omitempty"  yaml:"description,omitempty"`
	Name         string  `json:"name,omitempty"         yaml:"name,omitempty"`
	Scheme       string  `json:"scheme,omitempty"       yaml:"scheme,omitempty"`
	Value        string  `json:"value,omitempty"        yaml:"value,omitempty"`
	OperationID  string  `json:"operationId,omitempty"  yaml:"operationId,omitempty"`
	Line         int     `json:"line"                   yaml:"line"`
}

// Diagnostic is the serialized form of a [diagnostic.Diagnostic].
type Diagnostic struct {
	EndLine   *int   `json:"endLine,omitempty"   yaml:"endLine,omitempty"`
	CharStart *int   `json:"charStart,omitempty" yaml:"charStart,omitempty"`
	Severity  string `json:"severity"            yaml:"severity"`
	Rule      string `json:"rule,omitempty"      yaml:"rule,omitempty"`
	Message   string `json:"message"             yaml:"message"`
	Line      int    `json:"line"                yaml:"line"`
}

// NewFile converts scan and validation results for the input at path.
// Either slice may be nil.
func NewFile(path string, anns []annotation.Annotation, diags []diagnostic.Diagnostic) File {
	f := File{Path: path}

	for _, a := range anns {
		f.Annotations = append(f.Annotations, FromAnnotation(a))
	}

	for _, d := range diags {
		f.Diagnostics = append(f.Diagnostics, FromDiagnostic(d))
	}

	return f
}

// FromAnnotation flattens a.
func FromAnnotation(a annotation.Annotation) Annotation {
	out := Annotation{
		Kind: a.Kind().String(),
		Line: a.SourceLine(),
	}

	switch v := a.(type) {
	case annotation.Response:
		out.Status = &v.Status
		out.ResponseType = v.ResponseType
		out.Description = v.Description
	case annotation.Tag:
		out.Name = v.Name
	case annotation.Security:
		out.Scheme = v.Scheme
	case annotation.Example:
		out.Status = &v.Status
		out.Value = v.Value
	case annotation.ID:
		out.OperationID = v.OperationID
	case annotation.Hidden:
	}

	return out
}

// FromDiagnostic converts d.
func FromDiagnostic(d diagnostic.Diagnostic) Diagnostic {
	return Diagnostic{
		EndLine:   d.EndLine,
		CharStart: d.CharStart,
		Severity:  string(d.Severity),
		Rule:      d.Rule,
		Message:   d.Message,
		Line:      d.Line,
	}
}

// Summarize counts the diagnostics in files.
func Summarize(files []File) *Summary {
	s := &Summary{Files: len(files)}

	for _, f := range files {
		for _, d := range f.Diagnostics {
			switch diagnostic.Severity(d.Severity) {
			case diagnostic.SeverityError:
				s.Errors++
			case diagnostic.SeverityWarning:
				s.Warnings++
			}
		}
	}

	return s
}

// HasAtLeast reports whether any diagnostic in r is at least as severe as
// sev.
func (r Report) HasAtLeast(sev diagnostic.Severity) bool {
	for _, f := range r.Files {
		for _, d := range f.Diagnostics {
			if diagnostic.Severity(d.Severity).AtLeast(sev) {
				return true
			}
		}
	}

	return false
}
