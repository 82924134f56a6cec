// Package chartkit provides the version information for chartkit.
package chartkit

// Version is the current version of chartkit.
const Version = "0.1.0"

// GetVersion returns the current version string.
func GetVersion() string {
	return Version
}
