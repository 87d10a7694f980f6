package gridsheet

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var embeddedVersion string

// Version returns the library version, a bare SemVer string without the
// leading "v".
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}
