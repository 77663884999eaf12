package api

var (
	releaseBuild = "false"
	// Version contains the compiled alinfo version
	Version = "0.0.1"
	// Commit contains a short hash pointing to the commit that was used to compile alinfo
	Commit = "ffffff"
)

// ReleaseBuild indicates whether this build is a release build (true) or a debug build (false)
var ReleaseBuild = releaseBuild == "true"

// VersionString is used by alinfo --version.
func VersionString() string {
	if ReleaseBuild {
		return Version
	}
	return Version + "-dev+" + Commit
}
