package annotation

// Kind identifies the variant of an [Annotation].
type Kind int

const (
	// KindResponse is an @response annotation.
	KindResponse Kind = iota
	// KindTag is an @tag annotation.
	KindTag
	// KindSecurity is an @security annotation.
	KindSecurity
	// KindExample is an @example annotation.
	KindExample
	// KindID is an @id annotation.
	KindID
	// KindHidden is an @hidden annotation.
	KindHidden
)

// String returns the annotation keyword without the leading "@".
func (k Kind) String() string {
	switch k {
	case KindResponse:
		return "response"
	case KindTag:
		return "tag"
	case KindSecurity:
		return "security"
	case KindExample:
		return "example"
	case KindID:
		return "id"
	case KindHidden:
		return "hidden"
	}

	return "unknown"
}

// Annotation is one typed directive parsed from a doc comment line.
//
// The set of implementations is closed: [Response], [Tag], [Security],
// [Example], [ID], and [Hidden]. Consumers are expected to type switch over
// these variants.
type Annotation interface {
	// Kind returns the variant of the annotation.
	Kind() Kind
	// SourceLine returns the zero-based line the annotation appeared on.
	SourceLine() int

	sealed()
}

// Response documents the response returned for an HTTP status code.
type Response struct {
	// ResponseType is the response body type, e.g. "Json<User>".
	ResponseType string
	// Description is the free-form remainder of the line. May be empty.
	Description string
	Line        int
	Status      uint16
}

// Tag groups an operation under a tag name.
type Tag struct {
	Name string
	Line int
}

// Security names the security scheme that protects an operation.
type Security struct {
	Scheme string
	Line   int
}

// Example carries an example response body for an HTTP status code.
// Value is kept verbatim; its syntax is not interpreted here.
type Example struct {
	Value  string
	Line   int
	Status uint16
}

// ID sets the operation id.
type ID struct {
	OperationID string
	Line        int
}

// Hidden excludes an operation from generated documentation.
type Hidden struct {
	Line int
}

func (Response) Kind() Kind { return KindResponse }
func (Tag) Kind() Kind      { return KindTag }
func (Security) Kind() Kind { return KindSecurity }
func (Example) Kind() Kind  { return KindExample }
func (ID) Kind() Kind       { return KindID }
func (Hidden) Kind() Kind   { return KindHidden }

func (a Response) SourceLine() int { return a.Line }
func (a Tag) SourceLine() int      { return a.Line }
func (a Security) SourceLine() int { return a.Line }
func (a Example) SourceLine() int  { return a.Line }
func (a ID) SourceLine() int       { return a.Line }
func (a Hidden) SourceLine() int   { return a.Line }

func (Response) sealed() {}
func (Tag) sealed()      {}
func (Security) sealed() {}
func (Example) sealed()  {}
func (ID) sealed()       {}
func (Hidden) sealed()   {}
