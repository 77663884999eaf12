package libopenal

import (
	"context"

	"github.com/rs/zerolog"
)

type OpenALDeviceInfo struct {
	DefaultDevice  string
	DefaultCapture string
	Devices        []string
	Captures       []string
}

// GetDeviceInfo lists the playback and capture devices the implementation knows about.
func GetDeviceInfo(ctx context.Context, alc *ALC) (OpenALDeviceInfo, error) {
	var info OpenALDeviceInfo

	if alc.IsExtensionPresent(0, ExtEnumerateAll) {
		info.Devices = alc.GetStrings(0, ALCAllDevicesSpecifier)
		info.DefaultDevice = alc.GetString(0, ALCDefaultAllDevicesSpecifier)
	} else {
		zerolog.Ctx(ctx).Debug().Msg("ALC_ENUMERATE_ALL_EXT is missing, falling back to the basic device list")
		info.Devices = alc.GetStrings(0, ALCDeviceSpecifier)
		info.DefaultDevice = alc.GetString(0, ALCDefaultDeviceSpecifier)
	}

	if alc.IsExtensionPresent(0, ExtCapture) {
		info.Captures = alc.GetStrings(0, ALCCaptureDeviceSpecifier)
		info.DefaultCapture = alc.GetString(0, ALCCaptureDefaultDeviceSpecifier)
	} else {
		info.Captures = []string{}
	}

	if err := alc.Error(0); err != nil {
		return info, err
	}

	return info, nil
}
