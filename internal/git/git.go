// Package git provides the version-control collaborator for semv: repository
// detection and annotated tag creation. It uses the go-git library so no git
// CLI installation is required.
package git

import (
	"fmt"
	"time"

	gogit "github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// debugLogger is a function that logs debug messages when debug mode is
// enabled. By default, it's a no-op. Set it via SetDebugLogger.
var debugLogger func(format string, args ...any)

// SetDebugLogger configures the debug logger for git operations.
// Pass nil to disable debug logging.
func SetDebugLogger(logger func(format string, args ...any)) {
	debugLogger = logger
}

func logDebug(format string, args ...any) {
	if debugLogger != nil {
		debugLogger(format, args...)
	}
}

// RepoTagger creates annotated tags in the repository containing root.
type RepoTagger struct {
	root string
}

// New returns a RepoTagger for the given project root.
func New(root string) *RepoTagger {
	return &RepoTagger{root: root}
}

// openRepo opens the repository at the project root. DetectDotGit walks up
// the directory tree, so a nested project directory still resolves.
func (t *RepoTagger) openRepo() (*gogit.Repository, error) {
	logDebug("[git] opening repository at %s", t.root)

	repo, err := gogit.PlainOpenWithOptions(t.root, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening repository at %s: %w", t.root, err)
	}
	return repo, nil
}

// InRepository reports whether the project root is inside a git repository.
func (t *RepoTagger) InRepository() bool {
	_, err := t.openRepo()
	result := err == nil
	logDebug("[git] InRepository: %v", result)
	return result
}

// CreateAnnotatedTag creates an annotated tag named name pointing at HEAD,
// carrying message as the tag annotation.
func (t *RepoTagger) CreateAnnotatedTag(name, message string) error {
	repo, err := t.openRepo()
	if err != nil {
		return err
	}

	head, err := repo.Head()
	if err != nil {
		return fmt.Errorf("resolving HEAD: %w", err)
	}

	_, err = repo.CreateTag(name, head.Hash(), &gogit.CreateTagOptions{
		Tagger:  tagSignature(repo),
		Message: message,
	})
	if err != nil {
		return fmt.Errorf("creating tag %s: %w", name, err)
	}

	logDebug("[git] CreateAnnotatedTag: created %s at %s", name, head.Hash())
	return nil
}

// tagSignature resolves the tagger identity from git configuration,
// falling back to a tool identity when none is configured.
func tagSignature(repo *gogit.Repository) *object.Signature {
	name, email := "semv", "semv@localhost"
	if cfg, err := repo.ConfigScoped(gitconfig.SystemScope); err == nil {
		if cfg.User.Name != "" {
			name = cfg.User.Name
		}
		if cfg.User.Email != "" {
			email = cfg.User.Email
		}
	}
	return &object.Signature{Name: name, Email: email, When: time.Now()}
}
