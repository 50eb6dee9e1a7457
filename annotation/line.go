package annotation

import "strings"

const (
	// Marker is the attribute line that anchors a doc block for scanning.
	Marker = "#[rovo]"
	// DocPrefix starts every documentation comment line.
	DocPrefix = "///"

	attributeOpen = "#["
	markerName    = "rovo"

	// nearMarkerWindow is how many lines [NearMarker] looks ahead.
	nearMarkerWindow = 20
)

// LineKind is the classification of a single source line.
type LineKind int

const (
	// LineOther is any line that ends a doc block.
	LineOther LineKind = iota
	// LineDoc is a "///" documentation comment line.
	LineDoc
	// LineMarker is a line consisting of exactly [Marker].
	LineMarker
	// LineBlank is empty after trimming whitespace.
	LineBlank
)

// String returns a lowercase name for the line kind.
func (k LineKind) String() string {
	switch k {
	case LineDoc:
		return "doc"
	case LineMarker:
		return "marker"
	case LineBlank:
		return "blank"
	case LineOther:
		return "other"
	}

	return "unknown"
}

// Classify returns the [LineKind] of line. Leading and trailing whitespace,
// including a CR left over from CRLF line endings, is ignored.
func Classify(line string) LineKind {
	trimmed := strings.TrimSpace(line)

	switch {
	case trimmed == "":
		return LineBlank
	case trimmed == Marker:
		return LineMarker
	case strings.HasPrefix(trimmed, DocPrefix):
		return LineDoc
	}

	return LineOther
}

// IsMarkerLike reports whether line looks like a rovo marker. Besides the
// exact [Marker] it accepts any attribute line mentioning rovo, such as
// "#[rovo(skip)]". Only marker detection uses this; block extraction
// requires the exact marker.
func IsMarkerLike(line string) bool {
	if strings.TrimSpace(line) == Marker {
		return true
	}

	return strings.Contains(line, attributeOpen) && strings.Contains(line, markerName)
}

// DocContent strips the doc comment prefix from line and trims the
// remainder. It returns false if line is not a doc comment line.
func DocContent(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, DocPrefix) {
		return "", false
	}

	for strings.HasPrefix(trimmed, DocPrefix) {
		trimmed = trimmed[len(DocPrefix):]
	}

	return strings.TrimSpace(trimmed), true
}

// NearMarker reports whether a marker follows line within the same
// attribute/doc region. It looks ahead at most 20 lines starting at line
// (inclusive) and gives up at the first line that is not a doc comment,
// an attribute, or blank. Editors use it to decide whether annotation
// completion applies at a cursor position.
func NearMarker(content string, line int) bool {
	if line < 0 {
		return false
	}

	lines := splitLines(content)
	end := min(line+nearMarkerWindow, len(lines))

	for i := line; i < end; i++ {
		if IsMarkerLike(lines[i]) {
			return true
		}

		trimmed := strings.TrimSpace(lines[i])
		if trimmed != "" &&
			!strings.HasPrefix(trimmed, DocPrefix) &&
			!strings.HasPrefix(trimmed, attributeOpen) {
			break
		}
	}

	return false
}

// splitLines splits content on LF. A trailing newline does not produce an
// extra empty line.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}

	return strings.Split(strings.TrimSuffix(content, "\n"), "\n")
}
