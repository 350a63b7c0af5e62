package config

// GetDefaultConfigTemplate returns a fully commented config template
// that helps users understand all available options.
func GetDefaultConfigTemplate() string {
	return `# semv Configuration
# Project config: .semv/config.yml
# User config:    ~/.config/semv/config.yml
# Environment:    SEMV_* variables override both (e.g. SEMV_TAG_PREFIX)

version_file: VERSION           # Single-line semantic version record
changelog_file: CHANGELOG.md    # Keep a Changelog formatted history
metadata_file: pyproject.toml   # Optional descriptor kept in sync (best-effort)
tag_prefix: v                   # Tag name prefix (v1.2.3)
project: ""                     # Changelog header name (default: directory name)
`
}

// Defaults returns the default configuration values.
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"version_file":   "VERSION",
		"changelog_file": "CHANGELOG.md",
		// metadata_file: synchronized only when present on disk; failures
		// to sync are warnings, never errors.
		"metadata_file": "pyproject.toml",
		"tag_prefix":    "v",
		"project":       "",
	}
}
