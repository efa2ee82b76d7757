// Package version reports the build version of the binary.
package version

import (
	"strings"

	"golang.org/x/mod/semver"
)

// Current is overridden at build time:
//
//	go build -ldflags "-X gearguard/internal/shared/version.Current=1.2.0"
var Current = "dev"

// Normalize ensures the version string has a "v" prefix for semver.
// Examples: "1.2.3" -> "v1.2.3", "v1.2.3" -> "v1.2.3"
func Normalize(version string) string {
	version = strings.TrimSpace(version)
	if version == "" {
		return ""
	}
	if !strings.HasPrefix(version, "v") {
		return "v" + version
	}
	return version
}

// String returns Current in canonical semver form, or as is when it is not
// a release version (e.g. "dev").
func String() string {
	v := Normalize(Current)
	if !semver.IsValid(v) {
		return strings.TrimSpace(Current)
	}
	return semver.Canonical(v)
}

// IsRelease reports whether the binary was built with a semver version.
func IsRelease() bool {
	return semver.IsValid(Normalize(Current))
}
