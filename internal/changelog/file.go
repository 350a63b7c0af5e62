package changelog

import (
	"errors"
	"io/fs"
	"os"
	"strings"
	"time"

	errs "github.com/ariel-frischer/semv/internal/errors"
	"github.com/ariel-frischer/semv/internal/semver"
)

// dateLayout is the Keep a Changelog release date format.
const dateLayout = "2006-01-02"

// File is the on-disk changelog document.
type File struct {
	// Path is the changelog location, usually <root>/CHANGELOG.md.
	Path string
	// Project names the project in the header of a newly created document.
	Project string
}

// Exists reports whether the changelog file is present.
func (f *File) Exists() bool {
	info, err := os.Stat(f.Path)
	return err == nil && !info.IsDir()
}

// InsertEntry adds a dated entry for v to the document and persists it.
// A missing file is created with the standard header; an existing file is
// updated per the Insert placement rules. The write is whole-document: an
// I/O failure aborts with no partial write.
func (f *File) InsertEntry(v semver.Version, date time.Time, message string) error {
	return f.insertEntry(v, date.Format(dateLayout), message)
}

func (f *File) insertEntry(v semver.Version, date, message string) error {
	// Reject before any read or write so a bad call never mutates state.
	if err := validateMessage(message); err != nil {
		return err
	}

	var updated string
	raw, err := os.ReadFile(f.Path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		updated = NewDocumentContent(f.Project, v, date, message)
	case err != nil:
		return errs.WrapWithMessage(err, errs.IO, "reading changelog")
	default:
		updated, err = Insert(string(raw), v, date, message)
		if err != nil {
			return err
		}
	}

	if err := os.WriteFile(f.Path, []byte(updated), 0o644); err != nil {
		return errs.WrapWithMessage(err, errs.IO, "writing changelog")
	}
	return nil
}

func validateMessage(message string) error {
	if strings.TrimSpace(message) == "" {
		return errs.NewArgumentError("changelog message must not be empty")
	}
	return nil
}
