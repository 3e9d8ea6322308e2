// Package version reports the version of the infoverify tool.
package version

import (
	"fmt"
	"strings"
)

// buildCharacters are the characters appBuild may consist of.
const buildCharacters = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz-."

const (
	appMajor uint = 0
	appMinor uint = 4
	appPatch uint = 0
)

// appBuild can be set at build time with
// '-ldflags "-X github.com/kaspanet/infoscript/version.appBuild=foo"'.
// It is ignored unless it consists of buildCharacters only.
var appBuild string

// Version returns the tool version, "major.minor.patch" followed by
// "-build" if build metadata was set.
func Version() string {
	version := fmt.Sprintf("%d.%d.%d", appMajor, appMinor, appPatch)
	if isValidBuild(appBuild) {
		version += "-" + appBuild
	}
	return version
}

func isValidBuild(build string) bool {
	if build == "" {
		return false
	}
	for _, r := range build {
		if !strings.ContainsRune(buildCharacters, r) {
			return false
		}
	}
	return true
}
