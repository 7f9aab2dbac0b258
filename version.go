// Package lineflow is a flat line-layout engine for text-editing surfaces.
//
// The engine lives in the layout package; this package only carries the
// module version.
package lineflow

import (
	_ "embed"
	"regexp"
	"runtime"
	"strings"
)

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

//go:embed VERSION
var embeddedVersion string

// Version returns the module version in SemVer form, without a leading "v".
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// VersionTag returns Version with the leading "v" used by git tags.
func VersionTag() string {
	return "v" + Version()
}

// IsSemver reports whether v is a SemVer 2.0.0 version.
func IsSemver(v string) bool {
	return semverRE.MatchString(strings.TrimSpace(v))
}

// VersionLine is the one-line banner printed by `lineflow --version`.
func VersionLine() string {
	return "lineflow " + VersionTag() + " (" + runtime.Version() + ")"
}
