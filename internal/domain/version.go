package domain

import (
	"github.com/Masterminds/semver/v3"
)

// VersionParts is a best-effort breakdown of a version label.
type VersionParts struct {
	Label  string
	Semver bool
	Major  uint64
	Minor  uint64
	Patch  uint64
}

// ParseVersionLabel splits label into semver components when it parses.
// The label itself is always kept verbatim.
func ParseVersionLabel(label string) VersionParts {
	parts := VersionParts{Label: label}
	v, err := semver.StrictNewVersion(label)
	if err != nil {
		return parts
	}
	parts.Semver = true
	parts.Major = v.Major()
	parts.Minor = v.Minor()
	parts.Patch = v.Patch()
	return parts
}
