package annotation

import (
	"regexp"
	"strconv"
	"strings"
)

// Token separators match Unicode white space, not only ASCII, so a no-break
// space between keyword and argument still splits tokens.
var (
	responseRegex = regexp.MustCompile(`^@response[\s\p{Z}]+(\d+)[\s\p{Z}]+([^\s\p{Z}]+)[\s\p{Z}]*(.*)$`)
	tagRegex      = regexp.MustCompile(`^@tag[\s\p{Z}]+([^\s\p{Z}]+)`)
	securityRegex = regexp.MustCompile(`^@security[\s\p{Z}]+([^\s\p{Z}]+)`)
	exampleRegex  = regexp.MustCompile(`^@example[\s\p{Z}]+(\d+)[\s\p{Z}]+(.+)$`)
	idRegex       = regexp.MustCompile(`^@id[\s\p{Z}]+([^\s\p{Z}]+)`)
)

type parseFunc func(content string, line int) (Annotation, bool)

// grammar maps annotation keywords to their parsers. Order matters: the
// first keyword that prefixes the content wins.
var grammar = []struct {
	parse   parseFunc
	keyword string
}{
	{keyword: "@response", parse: parseResponse},
	{keyword: "@tag", parse: parseTag},
	{keyword: "@security", parse: parseSecurity},
	{keyword: "@example", parse: parseExample},
	{keyword: "@id", parse: parseID},
	{keyword: "@hidden", parse: parseHidden},
}

// ParseLine parses a raw source line. The line must be a doc comment; the
// prefix is stripped before the content is handed to [ParseContent].
func ParseLine(raw string, line int) (Annotation, bool) {
	content, ok := DocContent(raw)
	if !ok {
		return nil, false
	}

	return ParseContent(content, line)
}

// ParseContent parses the content of a doc comment line, with the "///"
// prefix already stripped and surrounding whitespace trimmed.
//
// It returns false for prose, for unknown "@" keywords, and for annotation
// lines that do not match their keyword's shape (for example a status code
// that is not a number or does not fit in 16 bits). No error is reported
// for such lines.
func ParseContent(content string, line int) (Annotation, bool) {
	if !strings.HasPrefix(content, "@") {
		return nil, false
	}

	for _, rule := range grammar {
		if strings.HasPrefix(content, rule.keyword) {
			return rule.parse(content, line)
		}
	}

	return nil, false
}

// parseResponse parses "@response STATUS TYPE [DESCRIPTION]".
func parseResponse(content string, line int) (Annotation, bool) {
	m := responseRegex.FindStringSubmatch(content)
	if m == nil {
		return nil, false
	}

	status, ok := parseStatus(m[1])
	if !ok {
		return nil, false
	}

	return Response{
		Line:         line,
		Status:       status,
		ResponseType: m[2],
		Description:  strings.TrimSpace(m[3]),
	}, true
}

// parseTag parses "@tag NAME".
func parseTag(content string, line int) (Annotation, bool) {
	m := tagRegex.FindStringSubmatch(content)
	if m == nil {
		return nil, false
	}

	return Tag{Line: line, Name: m[1]}, true
}

// parseSecurity parses "@security SCHEME".
func parseSecurity(content string, line int) (Annotation, bool) {
	m := securityRegex.FindStringSubmatch(content)
	if m == nil {
		return nil, false
	}

	return Security{Line: line, Scheme: m[1]}, true
}

// parseExample parses "@example STATUS VALUE". VALUE runs to the end of the
// line and may contain spaces.
func parseExample(content string, line int) (Annotation, bool) {
	m := exampleRegex.FindStringSubmatch(content)
	if m == nil {
		return nil, false
	}

	status, ok := parseStatus(m[1])
	if !ok {
		return nil, false
	}

	return Example{Line: line, Status: status, Value: m[2]}, true
}

// parseID parses "@id OPERATION_ID".
func parseID(content string, line int) (Annotation, bool) {
	m := idRegex.FindStringSubmatch(content)
	if m == nil {
		return nil, false
	}

	return ID{Line: line, OperationID: m[1]}, true
}

func parseHidden(_ string, line int) (Annotation, bool) {
	return Hidden{Line: line}, true
}

func parseStatus(digits string) (uint16, bool) {
	n, err := strconv.ParseUint(digits, 10, 16)
	if err != nil {
		return 0, false
	}

	return uint16(n), true
}
