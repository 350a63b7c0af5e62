package changelog

import (
	"fmt"
	"strings"

	errs "github.com/ariel-frischer/semv/internal/errors"
	"github.com/ariel-frischer/semv/internal/semver"
)

// entryBlock renders the section block for a new entry:
//
//	## [1.2.0] - 2025-03-04
//
//	### Changed
//	- message
func entryBlock(v semver.Version, date, message string) string {
	return fmt.Sprintf("## [%s] - %s\n\n### Changed\n- %s\n", v, date, message)
}

// header renders the standard Keep a Changelog preamble for a new document.
func header(project string) string {
	return `# Changelog

All notable changes to ` + project + ` will be documented in this file.

The format is based on [Keep a Changelog](https://keepachangelog.com/en/1.1.0/),
and this project adheres to [Semantic Versioning](https://semver.org/spec/v2.0.0.html).

`
}

// InitialContent is the starting document for a project with no entries
// yet: the standard header followed by an empty unreleased section.
func InitialContent(project string) string {
	return header(project) + unreleasedHeading + "\n"
}

// NewDocumentContent builds the content of a brand-new changelog holding a
// single entry beneath a fresh unreleased section.
func NewDocumentContent(project string, v semver.Version, date, message string) string {
	return header(project) + unreleasedHeading + "\n\n" + entryBlock(v, date, message) + "\n"
}

// Insert returns content with a new dated section for v spliced in.
// Placement, in priority order:
//
//  1. An unreleased section exists: the block goes directly after it,
//     before the next "## [" boundary (or at end-of-file when the
//     unreleased section is last).
//  2. No unreleased section, but some "##...[" heading line exists: the
//     block goes immediately before the first such line.
//  3. Otherwise the block is appended at end-of-file.
//
// All bytes outside the insertion point are copied through unmodified.
func Insert(content string, v semver.Version, date, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", errs.NewArgumentError("changelog message must not be empty")
	}

	doc := Parse(content)
	if i := doc.Unreleased(); i >= 0 {
		insertAfterUnreleased(doc, i, v, date, message)
		return doc.String(), nil
	}

	return insertWithoutUnreleased(content, v, date, message), nil
}

// insertAfterUnreleased splices the new section between the unreleased
// section and whatever follows it.
func insertAfterUnreleased(doc *Document, i int, v semver.Version, date, message string) {
	heading := fmt.Sprintf("## [%s] - %s", v, date)
	body := "\n\n### Changed\n- " + message + "\n"

	if i == len(doc.Sections)-1 {
		// Unreleased is the final section: the block lands at end-of-file,
		// separated from the existing tail by a single newline.
		doc.Sections[i].Body += "\n"
		doc.Sections = append(doc.Sections, Section{Heading: heading, Body: body})
		return
	}

	// A following section exists: the block ends with a blank line so the
	// next heading keeps its separating newline.
	doc.insertSectionAfter(i, Section{Heading: heading, Body: body + "\n"})
}

// insertWithoutUnreleased handles documents lacking an unreleased heading:
// the block goes before the first heading-like line ("##" prefix containing
// "["), or at end-of-file when no such line exists.
func insertWithoutUnreleased(content string, v semver.Version, date, message string) string {
	block := entryBlock(v, date, message)

	offset := 0
	for _, line := range strings.SplitAfter(content, "\n") {
		if strings.HasPrefix(line, "##") && strings.Contains(line, "[") {
			return content[:offset] + block + content[offset:]
		}
		offset += len(line)
	}

	return content + "\n" + block
}
