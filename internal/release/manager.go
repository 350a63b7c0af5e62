// Package release orchestrates the version store, changelog document, and
// tagging collaborator behind the commands the CLI exposes.
package release

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/ariel-frischer/semv/internal/changelog"
	"github.com/ariel-frischer/semv/internal/config"
	"github.com/ariel-frischer/semv/internal/git"
	"github.com/ariel-frischer/semv/internal/report"
	"github.com/ariel-frischer/semv/internal/semver"
	"github.com/ariel-frischer/semv/internal/store"
)

// Tagger is the narrow capability the manager needs from version control.
// It is satisfied by git.RepoTagger and by test doubles.
type Tagger interface {
	InRepository() bool
	CreateAnnotatedTag(name, message string) error
}

// Manager wires the core components for a single project root.
type Manager struct {
	Store     *store.VersionStore
	Changelog *changelog.File
	Tagger    Tagger
	Reporter  *report.Reporter
	TagPrefix string

	// now is the clock for changelog entry dates. Overridable in tests.
	now func() time.Time
}

// New builds a Manager for the given project root and configuration.
func New(root string, cfg *config.Configuration, reporter *report.Reporter) *Manager {
	if reporter == nil {
		reporter = report.Discard
	}
	return &Manager{
		Store: store.New(root, cfg, reporter),
		Changelog: &changelog.File{
			Path:    filepath.Join(root, cfg.ChangelogFile),
			Project: cfg.Project,
		},
		Tagger:    git.New(root),
		Reporter:  reporter,
		TagPrefix: cfg.TagPrefix,
		now:       time.Now,
	}
}

// Current returns the on-disk version.
func (m *Manager) Current() semver.Version {
	return m.Store.Current()
}

// Bump advances the given part and persists the result. When message is
// non-empty a changelog entry dated today is inserted for the new version.
// The two writes are sequential and independent: a changelog failure after
// the version write leaves the version updated and is reported as a
// warning, not rolled back.
func (m *Manager) Bump(part semver.Part, message string) (semver.Version, error) {
	next, err := m.Store.Bump(part)
	if err != nil {
		return semver.Version{}, err
	}

	if strings.TrimSpace(message) != "" {
		if err := m.Changelog.InsertEntry(next, m.now(), message); err != nil {
			m.Reporter.Warning("version updated to %s, but changelog update failed: %v", next, err)
			return next, nil
		}
		m.Reporter.Success("updated %s with entry for v%s", m.Changelog.Path, next)
	}

	return next, nil
}

// Set persists v verbatim.
func (m *Manager) Set(v semver.Version) error {
	return m.Store.Set(v)
}

// Tag creates an annotated tag for the current on-disk version. The tag
// name is the configured prefix plus the triple; an empty message falls
// back to "Release version X.Y.Z". Running outside a repository, or any
// tagging failure, is a reported warning rather than an error: tagging is
// a best-effort step layered on top of the version state.
func (m *Manager) Tag(message string) bool {
	v := m.Store.Current()
	name := m.TagPrefix + v.String()
	if strings.TrimSpace(message) == "" {
		message = "Release version " + v.String()
	}

	if !m.Tagger.InRepository() {
		m.Reporter.Warning("not in a git repository, skipping tag %s", name)
		return false
	}

	if err := m.Tagger.CreateAnnotatedTag(name, message); err != nil {
		m.Reporter.Warning("could not create tag %s: %v", name, err)
		return false
	}

	m.Reporter.Success("created git tag: %s", name)
	return true
}
