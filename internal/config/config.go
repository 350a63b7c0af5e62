// Package config provides hierarchical configuration management for semv
// using koanf. Configuration is loaded with priority: environment variables >
// project config (.semv/config.yml) > user config (~/.config/semv/config.yml)
// > defaults. All managed file paths are resolved relative to the project
// root supplied by the caller.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// envPrefix namespaces the environment variable overrides, e.g.
// SEMV_TAG_PREFIX=release- overrides tag_prefix.
const envPrefix = "SEMV_"

// Configuration holds the semv settings for a project.
type Configuration struct {
	// VersionFile is the single-line version record, relative to the
	// project root.
	VersionFile string `koanf:"version_file"`

	// ChangelogFile is the Markdown changelog, relative to the project root.
	ChangelogFile string `koanf:"changelog_file"`

	// MetadataFile is an optional secondary project descriptor whose
	// version field is synchronized best-effort on every persist.
	MetadataFile string `koanf:"metadata_file"`

	// TagPrefix is prepended to the version when creating tags ("v" → v1.2.3).
	TagPrefix string `koanf:"tag_prefix"`

	// Project names the project in the generated changelog header.
	// Defaults to the base name of the project root.
	Project string `koanf:"project"`
}

// Load loads configuration for the given project root.
// Priority: environment variables > project config > user config > defaults.
func Load(projectRoot string) (*Configuration, error) {
	k := koanf.New(".")

	for key, value := range Defaults() {
		k.Set(key, value)
	}

	if path, err := UserConfigPath(); err == nil {
		if err := loadYAMLConfig(k, path, "user"); err != nil {
			return nil, err
		}
	}

	if err := loadYAMLConfig(k, ProjectConfigPath(projectRoot), "project"); err != nil {
		return nil, err
	}

	if err := k.Load(env.Provider(envPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("loading environment config: %w", err)
	}

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if cfg.Project == "" {
		cfg.Project = projectName(projectRoot)
	}

	return &cfg, nil
}

// loadYAMLConfig loads a YAML config file if it exists. A missing file is
// not an error; every setting has a default.
func loadYAMLConfig(k *koanf.Koanf, path, configType string) error {
	if !fileExists(path) {
		return nil
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("loading %s config %s: %w", configType, path, err)
	}
	return nil
}

// envTransform maps SEMV_TAG_PREFIX to tag_prefix and so on.
func envTransform(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "__", ".")
}

// UserConfigPath returns the XDG-compliant user config path.
func UserConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving user config dir: %w", err)
	}
	return filepath.Join(configDir, "semv", "config.yml"), nil
}

// ProjectConfigPath returns the project config path under the given root.
func ProjectConfigPath(projectRoot string) string {
	return filepath.Join(projectRoot, ".semv", "config.yml")
}

// projectName derives a project display name from the root directory.
func projectName(projectRoot string) string {
	abs, err := filepath.Abs(projectRoot)
	if err != nil {
		return filepath.Base(projectRoot)
	}
	return filepath.Base(abs)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
