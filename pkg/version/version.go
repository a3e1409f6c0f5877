// Package version exposes the build version of the vermicast binary.
package version

// Version is the semantic version of the build. Overridden at link time via
// -ldflags "-X github.com/compostops/vermicast/pkg/version.Version=...".
var Version = "0.1.0-dev" //nolint:gochecknoglobals // Set by the linker at build time

// GetVersion returns the current version string.
func GetVersion() string {
	return Version
}
