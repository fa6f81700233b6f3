// Package version exposes the build version of the batchkit binary.
package version

// version is overridable at build time via -ldflags "-X ...version.version=".
var version = "0.1.0" //nolint:gochecknoglobals // Set by the linker at release time

// GetVersion returns the current build version.
func GetVersion() string {
	return version
}
