package libopenal

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/rotisserie/eris"
)

var versionPattern = regexp.MustCompile(`^v?(\d+)\.(\d+)(?:\.(\d+))?`)

// Version describes the implementation behind the current context.
type Version struct {
	Vendor   string
	Renderer string
	// Raw is the unparsed AL_VERSION string, e.g. "1.1 ALSOFT 1.23.1".
	Raw string
	// Spec is the OpenAL spec version the implementation claims to support.
	Spec *semver.Version
	// VendorVersion is the first major.minor[.patch] token after the spec version or
	// nil if there is none.
	VendorVersion *semver.Version
}

// QueryVersion reads AL_VENDOR, AL_RENDERER and AL_VERSION. It needs a current context.
func QueryVersion(al *AL) (Version, error) {
	ver := Version{
		Vendor:   al.GetString(Vendor),
		Renderer: al.GetString(Renderer),
		Raw:      al.GetString(VersionString),
	}

	if err := al.Check("failed to query version strings"); err != nil {
		return ver, err
	}

	var err error
	ver.Spec, ver.VendorVersion, err = ParseVersionString(ver.Raw)
	return ver, err
}

// ParseVersionString splits an AL_VERSION string into the spec version and the vendor's
// own version number.
func ParseVersionString(raw string) (*semver.Version, *semver.Version, error) {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return nil, nil, eris.New("empty version string")
	}

	spec, ok := parseVersionToken(fields[0])
	if !ok {
		return nil, nil, eris.Errorf("failed to parse version string %q", raw)
	}

	for _, field := range fields[1:] {
		if vendor, ok := parseVersionToken(field); ok {
			return spec, vendor, nil
		}
	}

	return spec, nil, nil
}

func parseVersionToken(token string) (*semver.Version, bool) {
	match := versionPattern.FindStringSubmatch(token)
	if match == nil {
		return nil, false
	}

	patch := match[3]
	if patch == "" {
		patch = "0"
	}

	ver, err := semver.NewVersion(fmt.Sprintf("%s.%s.%s", match[1], match[2], patch))
	if err != nil {
		return nil, false
	}

	return ver, true
}

// AtLeast checks the vendor version (or the spec version if the vendor didn't provide
// one) against a semver constraint like ">= 1.21".
func (v Version) AtLeast(constraint string) (bool, error) {
	con, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, eris.Wrapf(err, "failed to parse constraint %s", constraint)
	}

	target := v.VendorVersion
	if target == nil {
		target = v.Spec
	}
	if target == nil {
		return false, eris.New("no version available")
	}

	return con.Check(target), nil
}

func (v Version) String() string {
	return fmt.Sprintf("vendor %s, renderer %s, version %s", v.Vendor, v.Renderer, v.Raw)
}
