package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml"

	"go.jacobcolvin.com/rovo/diagnostic"
)

// Renderer writes a [Report] in one [Format].
//
// Create instances with [NewRenderer].
type Renderer struct {
	location *color.Color
	kind     *color.Color
	rule     *color.Color
	errSev   *color.Color
	warnSev  *color.Color
	format   Format
}

// NewRenderer returns a [Renderer] for format. When colored is false, text
// output carries no ANSI escapes regardless of the global color setting.
func NewRenderer(format Format, colored bool) *Renderer {
	r := &Renderer{
		format:   format,
		location: color.New(color.Bold),
		kind:     color.New(color.FgCyan),
		rule:     color.New(color.Faint),
		errSev:   color.New(color.FgRed, color.Bold),
		warnSev:  color.New(color.FgYellow, color.Bold),
	}

	for _, c := range []*color.Color{r.location, r.kind, r.rule, r.errSev, r.warnSev} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return r
}

// Render writes rep to w. Write failures wrap [ErrWriteOutput].
func (r *Renderer) Render(w io.Writer, rep Report) error {
	var (
		out []byte
		err error
	)

	switch r.format {
	case FormatJSON:
		if rep.Files == nil {
			rep.Files = []File{}
		}

		out, err = json.MarshalIndent(rep, "", "  ")
		out = append(out, '\n')

	case FormatYAML:
		out, err = yaml.Marshal(rep)

	case FormatText:
		out = []byte(r.text(rep))

	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, r.format)
	}

	if err != nil {
		return fmt.Errorf("encode %s report: %w", r.format, err)
	}

	_, err = w.Write(out)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	return nil
}

func (r *Renderer) text(rep Report) string {
	var sb strings.Builder

	for _, f := range rep.Files {
		for _, a := range f.Annotations {
			fmt.Fprintf(&sb, "%s %s", r.location.Sprintf("%s:%d:", f.Path, a.Line+1), r.kind.Sprint(a.Kind))

			if detail := annotationDetail(a); detail != "" {
				sb.WriteString(" " + detail)
			}

			sb.WriteString("\n")
		}

		for _, d := range f.Diagnostics {
			loc := fmt.Sprintf("%s:%d:", f.Path, d.Line+1)
			if d.CharStart != nil {
				loc = fmt.Sprintf("%s:%d:%d:", f.Path, d.Line+1, *d.CharStart+1)
			}

			fmt.Fprintf(&sb, "%s %s %s", r.location.Sprint(loc), r.severity(d.Severity), d.Message)

			if d.Rule != "" {
				sb.WriteString(" " + r.rule.Sprintf("[%s]", d.Rule))
			}

			sb.WriteString("\n")
		}
	}

	if rep.Summary != nil {
		sb.WriteString(summaryLine(rep.Summary) + "\n")
	}

	return sb.String()
}

func (r *Renderer) severity(sev string) string {
	switch diagnostic.Severity(sev) {
	case diagnostic.SeverityError:
		return r.errSev.Sprint(sev + ":")
	case diagnostic.SeverityWarning:
		return r.warnSev.Sprint(sev + ":")
	}

	return sev + ":"
}

func annotationDetail(a Annotation) string {
	var parts []string

	if a.Status != nil {
		parts = append(parts, strconv.FormatUint(uint64(*a.Status), 10))
	}

	for _, s := range []string{a.ResponseType, a.Description, a.Name, a.Scheme, a.Value, a.OperationID} {
		if s != "" {
			parts = append(parts, s)
		}
	}

	return strings.Join(parts, " ")
}

func summaryLine(s *Summary) string {
	files := plural(s.Files, "file")
	if s.Errors == 0 && s.Warnings == 0 {
		return "no problems in " + files
	}

	return fmt.Sprintf("%s, %s in %s", plural(s.Errors, "error"), plural(s.Warnings, "warning"), files)
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}

	return strconv.Itoa(n) + " " + noun + "s"
}
