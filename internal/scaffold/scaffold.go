// Package scaffold bootstraps the files semv manages in a project that
// has none of them yet. Every file is created only when missing; existing
// files are never rewritten, so running it twice is safe.
package scaffold

import (
	"os"
	"path/filepath"

	"github.com/ariel-frischer/semv/internal/changelog"
	"github.com/ariel-frischer/semv/internal/config"
	errs "github.com/ariel-frischer/semv/internal/errors"
	"github.com/ariel-frischer/semv/internal/semver"
)

// Result records which files a scaffold run created and which it left
// alone because they already existed.
type Result struct {
	Created []string
	Skipped []string
}

// Run creates the project config, version file, and changelog under root,
// skipping any that already exist. Paths in the result are absolute within
// root so callers can print them directly.
func Run(root string, cfg *config.Configuration) (*Result, error) {
	res := &Result{}

	configPath := config.ProjectConfigPath(root)
	if err := createIfMissing(res, configPath, config.GetDefaultConfigTemplate()); err != nil {
		return nil, err
	}

	versionPath := filepath.Join(root, cfg.VersionFile)
	if err := createIfMissing(res, versionPath, semver.Default.String()+"\n"); err != nil {
		return nil, err
	}

	changelogPath := filepath.Join(root, cfg.ChangelogFile)
	if err := createIfMissing(res, changelogPath, changelog.InitialContent(cfg.Project)); err != nil {
		return nil, err
	}

	return res, nil
}

func createIfMissing(res *Result, path, content string) error {
	if _, err := os.Stat(path); err == nil {
		res.Skipped = append(res.Skipped, path)
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errs.WrapWithMessage(err, errs.IO, "creating directory for "+path)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return errs.WrapWithMessage(err, errs.IO, "writing "+path)
	}

	res.Created = append(res.Created, path)
	return nil
}
