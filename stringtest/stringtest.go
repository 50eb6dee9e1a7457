// Package stringtest provides helpers for building multi-line test inputs
// and expected outputs.
package stringtest

import "strings"

// Input dedents a raw string literal so fixtures can be indented along with
// the surrounding test code.
//
// One leading newline is removed, a trailing line consisting only of
// whitespace is removed, and the longest whitespace prefix shared by all
// non-blank lines is stripped. Whitespace-only lines become empty.
//
// Example:
//
//	content := stringtest.Input(`
//		/// @tag users
//		#[rovo]
//	`) // -> "/// @tag users\n#[rovo]"
func Input(s string) string {
	s = strings.TrimPrefix(s, "\n")

	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		if strings.TrimSpace(s[i+1:]) == "" {
			s = s[:i]
		}
	} else if strings.TrimSpace(s) == "" {
		return ""
	}

	lines := strings.Split(s, "\n")
	indent := commonIndent(lines)

	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			lines[i] = ""

			continue
		}

		lines[i] = line[len(indent):]
	}

	return strings.Join(lines, "\n")
}

// JoinLF joins multiple strings with LF line endings.
// Use this to construct expected test output with explicit line endings.
//
// Example:
//
//	want := stringtest.JoinLF(
//		"line1",
//		"line2",
//	) // -> "line1\nline2"
func JoinLF(ss ...string) string {
	return strings.Join(ss, "\n")
}

// JoinCRLF joins multiple strings with CRLF line endings, for inputs that
// must look like they were saved on Windows.
func JoinCRLF(ss ...string) string {
	return strings.Join(ss, "\r\n")
}

// commonIndent returns the longest run of leading spaces and tabs shared by
// every non-blank line.
func commonIndent(lines []string) string {
	var (
		indent string
		found  bool
	)

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		lead := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
		if !found {
			indent = lead
			found = true

			continue
		}

		n := 0
		for n < len(indent) && n < len(lead) && indent[n] == lead[n] {
			n++
		}

		indent = indent[:n]
	}

	return indent
}
