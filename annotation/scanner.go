package annotation

import (
	"log/slog"
	"slices"
)

// Block is the doc block attached to one marker.
type Block struct {
	// Annotations holds the block's annotations in source order.
	Annotations []Annotation
	// Marker is the zero-based line of the #[rovo] marker.
	Marker int
	// Start is the first doc comment line of the block, or Marker when no
	// doc comment precedes the marker.
	Start int
}

// Scan returns every annotation attached to a marker in content, ordered by
// source line.
func Scan(content string) []Annotation {
	var annotations []Annotation

	for _, b := range Blocks(content) {
		annotations = append(annotations, b.Annotations...)
	}

	return annotations
}

// Blocks returns one [Block] per marker in content, in marker order.
//
// For each marker the lines above it are walked upward. Blank lines are
// skipped, doc comment lines are parsed with [ParseLine], and any other line
// (including another marker) ends the block.
func Blocks(content string) []Block {
	lines := splitLines(content)

	var markers []int

	for i, line := range lines {
		if Classify(line) == LineMarker {
			markers = append(markers, i)
		}
	}

	blocks := make([]Block, 0, len(markers))
	total := 0

	for _, marker := range markers {
		b := scanBlock(lines, marker)
		total += len(b.Annotations)
		blocks = append(blocks, b)
	}

	slog.Debug("scanned doc blocks",
		slog.Int("lines", len(lines)),
		slog.Int("markers", len(markers)),
		slog.Int("annotations", total),
	)

	return blocks
}

// scanBlock walks upward from the line above marker. Annotations are
// collected bottom-up and reversed before returning.
func scanBlock(lines []string, marker int) Block {
	b := Block{Marker: marker, Start: marker}

	for i := marker - 1; i >= 0; i-- {
		kind := Classify(lines[i])
		if kind == LineBlank {
			continue
		}

		if kind != LineDoc {
			break
		}

		b.Start = i

		if ann, ok := ParseLine(lines[i], i); ok {
			b.Annotations = append(b.Annotations, ann)
		}
	}

	slices.Reverse(b.Annotations)

	return b
}
