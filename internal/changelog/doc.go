// Package changelog manages the project CHANGELOG.md document.
//
// The document is parsed into an ordered list of section records (a
// preamble plus one record per "## [" heading), each holding its raw byte
// span. Serializing an unmodified document reproduces the input exactly,
// so inserting an entry is structurally local: every section outside the
// insertion point is byte-identical before and after.
//
// Inserted entries follow the Keep a Changelog layout
// (https://keepachangelog.com/en/1.1.0/): a dated version heading with the
// entry text under a "### Changed" sub-heading. Insertion is an append,
// not a merge; repeated identical entries accumulate.
package changelog
