// Package semver implements the strict major.minor.patch version model
// used across semv. It intentionally rejects prerelease and build metadata:
// the managed VERSION file holds a bare triple and nothing else.
package semver

import (
	"fmt"
	"regexp"
	"strings"
)

// versionPattern matches a bare semantic version triple. A leading "v",
// extra components, or prerelease suffixes are all rejected.
var versionPattern = regexp.MustCompile(`^(\d+)\.(\d+)\.(\d+)$`)

// Version is an immutable semantic version triple.
type Version struct {
	Major int
	Minor int
	Patch int
}

// Default is the version assumed for a project with no VERSION file yet.
var Default = Version{Major: 0, Minor: 1, Patch: 0}

// Parse parses a strict "X.Y.Z" triple. Surrounding whitespace is trimmed
// before matching; any other deviation is an error, never a partial parse.
func Parse(s string) (Version, error) {
	trimmed := strings.TrimSpace(s)
	m := versionPattern.FindStringSubmatch(trimmed)
	if m == nil {
		return Version{}, fmt.Errorf("invalid version format %q (expected: X.Y.Z)", trimmed)
	}

	var v Version
	// The pattern guarantees digit-only groups; Sscanf cannot fail here
	// short of integer overflow, which we surface as-is.
	if _, err := fmt.Sscanf(trimmed, "%d.%d.%d", &v.Major, &v.Minor, &v.Patch); err != nil {
		return Version{}, fmt.Errorf("parsing version %q: %w", trimmed, err)
	}
	return v, nil
}

// String renders the triple as "X.Y.Z".
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Compare returns -1, 0, or 1 ordering by major, then minor, then patch.
func (v Version) Compare(other Version) int {
	if c := compareInt(v.Major, other.Major); c != 0 {
		return c
	}
	if c := compareInt(v.Minor, other.Minor); c != 0 {
		return c
	}
	return compareInt(v.Patch, other.Patch)
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Part identifies which component of the triple a bump targets.
type Part string

const (
	Major Part = "major"
	Minor Part = "minor"
	Patch Part = "patch"
)

// ParsePart validates a bump kind. Anything outside major/minor/patch is
// rejected so callers fail before touching any file.
func ParsePart(s string) (Part, error) {
	switch Part(s) {
	case Major, Minor, Patch:
		return Part(s), nil
	default:
		return "", fmt.Errorf("invalid bump type %q (must be major, minor, or patch)", s)
	}
}

// Bump returns the next version for the given part. Lower-order components
// reset to zero when a higher-order component increments.
func (v Version) Bump(p Part) (Version, error) {
	switch p {
	case Major:
		return Version{Major: v.Major + 1}, nil
	case Minor:
		return Version{Major: v.Major, Minor: v.Minor + 1}, nil
	case Patch:
		return Version{Major: v.Major, Minor: v.Minor, Patch: v.Patch + 1}, nil
	default:
		return Version{}, fmt.Errorf("invalid bump type %q (must be major, minor, or patch)", string(p))
	}
}
