package api

import "testing"

func TestVersionString(t *testing.T) {
	old := ReleaseBuild
	defer func() { ReleaseBuild = old }()

	ReleaseBuild = true
	if VersionString() != Version {
		t.Fatalf("expected %s but got %s", Version, VersionString())
	}

	ReleaseBuild = false
	if VersionString() != Version+"-dev+"+Commit {
		t.Fatalf("unexpected dev version %s", VersionString())
	}
}
