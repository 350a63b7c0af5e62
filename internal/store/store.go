// Package store owns the on-disk version record. The record is a single
// line of text holding a strict major.minor.patch triple; every mutation
// is a whole-file overwrite. A best-effort sync keeps an optional TOML
// project descriptor's version field aligned with the record.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/ariel-frischer/semv/internal/config"
	errs "github.com/ariel-frischer/semv/internal/errors"
	"github.com/ariel-frischer/semv/internal/report"
	"github.com/ariel-frischer/semv/internal/semver"
)

// metadataVersionPattern matches a TOML version assignment such as
// `version = "1.2.3"`. All occurrences are rewritten on sync, mirroring
// how descriptor files carry the version in a single canonical field.
var metadataVersionPattern = regexp.MustCompile(`version\s*=\s*"[^"]*"`)

// VersionStore reads and writes the project version record.
type VersionStore struct {
	// VersionPath is the absolute or root-relative VERSION file location.
	VersionPath string
	// MetadataPath is the optional project descriptor synchronized on
	// persist. Empty disables the sync.
	MetadataPath string

	reporter *report.Reporter
}

// New builds a VersionStore for the given project root and configuration.
func New(root string, cfg *config.Configuration, reporter *report.Reporter) *VersionStore {
	if reporter == nil {
		reporter = report.Discard
	}
	s := &VersionStore{
		VersionPath: filepath.Join(root, cfg.VersionFile),
		reporter:    reporter,
	}
	if cfg.MetadataFile != "" {
		s.MetadataPath = filepath.Join(root, cfg.MetadataFile)
	}
	return s
}

// Current returns the version on disk. A missing file yields the default
// 0.1.0; malformed or unreadable content is reported as a warning and also
// yields the default, never a partially parsed value.
func (s *VersionStore) Current() semver.Version {
	raw, err := os.ReadFile(s.VersionPath)
	if errors.Is(err, fs.ErrNotExist) {
		return semver.Default
	}
	if err != nil {
		s.reporter.Warning("could not read %s: %v", s.VersionPath, err)
		return semver.Default
	}

	v, err := semver.Parse(string(raw))
	if err != nil {
		s.reporter.Warning("invalid version format in %s: %q", s.VersionPath, string(raw))
		return semver.Default
	}
	return v
}

// Exists reports whether the version file is present on disk.
func (s *VersionStore) Exists() bool {
	info, err := os.Stat(s.VersionPath)
	return err == nil && !info.IsDir()
}

// Persist writes v to the version file, fully overwriting prior content,
// then best-effort syncs the metadata descriptor. A descriptor sync
// failure is reported as a warning and never fails the persist.
func (s *VersionStore) Persist(v semver.Version) error {
	if err := os.WriteFile(s.VersionPath, []byte(v.String()+"\n"), 0o644); err != nil {
		return errs.WrapWithMessage(err, errs.IO, "writing version file")
	}
	s.reporter.Success("updated %s to %s", filepath.Base(s.VersionPath), v)

	s.syncMetadata(v)
	return nil
}

// Bump reads the current version, advances the given part, and persists
// the result before returning it. An invalid part fails before any write.
func (s *VersionStore) Bump(p semver.Part) (semver.Version, error) {
	next, err := s.Current().Bump(p)
	if err != nil {
		return semver.Version{}, errs.Wrap(err, errs.Argument)
	}
	if err := s.Persist(next); err != nil {
		return semver.Version{}, err
	}
	return next, nil
}

// Set persists v verbatim. There is no monotonicity check: moving the
// version backward is a legal manual correction.
func (s *VersionStore) Set(v semver.Version) error {
	return s.Persist(v)
}

// syncMetadata rewrites the version field of the project descriptor when
// one exists. The file must parse as TOML and already carry a version
// assignment; only that assignment is rewritten, every other byte is
// preserved. All failures are swallowed and reported as warnings.
func (s *VersionStore) syncMetadata(v semver.Version) {
	if s.MetadataPath == "" {
		return
	}

	raw, err := os.ReadFile(s.MetadataPath)
	if errors.Is(err, fs.ErrNotExist) {
		return
	}
	if err != nil {
		s.reporter.Warning("could not read %s: %v", s.MetadataPath, err)
		return
	}

	var doc map[string]any
	if err := toml.Unmarshal(raw, &doc); err != nil {
		s.reporter.Warning("could not update %s: not valid TOML: %v", filepath.Base(s.MetadataPath), err)
		return
	}

	if !metadataVersionPattern.Match(raw) {
		return
	}

	updated := metadataVersionPattern.ReplaceAll(raw, []byte(fmt.Sprintf("version = %q", v)))
	if err := os.WriteFile(s.MetadataPath, updated, 0o644); err != nil {
		s.reporter.Warning("could not update %s: %v", filepath.Base(s.MetadataPath), err)
		return
	}
	s.reporter.Success("updated %s to %s", filepath.Base(s.MetadataPath), v)
}
