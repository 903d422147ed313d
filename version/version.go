package version

import "fmt"

var (
	// Name is the name of the application
	Name = "framekit"
	// Version is the application version
	Version = "0.2.0"
	// Build is the build info (git commit, set at build time)
	Build = ""
)

// FullVersion returns the version and build info
func FullVersion() string {
	if Build == "" {
		return Version
	}
	return fmt.Sprintf("%s-%s", Version, Build)
}
