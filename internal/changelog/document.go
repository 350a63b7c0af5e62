package changelog

import (
	"strings"
)

// unreleasedHeading is the literal heading of the unreleased section.
const unreleasedHeading = "## [Unreleased]"

// sectionPrefix marks the start of a version section heading.
const sectionPrefix = "## ["

// Section is one version block of the changelog. Heading is the heading
// line without its trailing newline; Body is every byte after the heading
// text up to the start of the next section (including the newline that
// terminated the heading line, when present).
type Section struct {
	Heading string
	Body    string
}

// IsUnreleased returns true if this is the unreleased section.
func (s Section) IsUnreleased() bool {
	return strings.TrimRight(s.Heading, " \t\r") == unreleasedHeading
}

// Document is a parsed changelog: preamble bytes (title, description,
// format links) followed by the ordered version sections. Existing section
// order is preserved, never re-sorted.
type Document struct {
	Preamble string
	Sections []Section
}

// Parse splits raw changelog content into a Document. Section boundaries
// are lines beginning with "## [". Parse never fails: content with no
// recognizable sections becomes a Document that is all preamble.
func Parse(content string) *Document {
	doc := &Document{}

	starts := sectionStarts(content)
	if len(starts) == 0 {
		doc.Preamble = content
		return doc
	}

	doc.Preamble = content[:starts[0]]
	for i, start := range starts {
		end := len(content)
		if i+1 < len(starts) {
			end = starts[i+1]
		}
		doc.Sections = append(doc.Sections, splitSection(content[start:end]))
	}

	return doc
}

// sectionStarts returns the byte offsets of every section heading line.
func sectionStarts(content string) []int {
	var starts []int
	offset := 0
	for _, line := range strings.SplitAfter(content, "\n") {
		if strings.HasPrefix(line, sectionPrefix) {
			starts = append(starts, offset)
		}
		offset += len(line)
	}
	return starts
}

// splitSection separates a raw section span into heading line and body.
func splitSection(raw string) Section {
	if i := strings.IndexByte(raw, '\n'); i >= 0 {
		return Section{Heading: raw[:i], Body: raw[i:]}
	}
	return Section{Heading: raw}
}

// String re-serializes the document. For an unmodified document the result
// is byte-identical to the parsed input.
func (d *Document) String() string {
	var sb strings.Builder
	sb.WriteString(d.Preamble)
	for _, s := range d.Sections {
		sb.WriteString(s.Heading)
		sb.WriteString(s.Body)
	}
	return sb.String()
}

// Unreleased returns the index of the unreleased section, or -1 if the
// document has none.
func (d *Document) Unreleased() int {
	for i, s := range d.Sections {
		if s.IsUnreleased() {
			return i
		}
	}
	return -1
}

// insertSectionAfter splices a section into the document directly after
// index i.
func (d *Document) insertSectionAfter(i int, s Section) {
	d.Sections = append(d.Sections, Section{})
	copy(d.Sections[i+2:], d.Sections[i+1:])
	d.Sections[i+1] = s
}
