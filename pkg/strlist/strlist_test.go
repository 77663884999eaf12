package strlist

import (
	"math/rand"
	"strings"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	someDevice     uintptr = 0xdead0
	versionQuery   int32   = 0x1002
	extensionQuery int32   = 0x1006
)

func ptr(buf []byte) unsafe.Pointer {
	return unsafe.Pointer(&buf[0])
}

func TestIsStringList(t *testing.T) {
	for _, param := range []int32{DeviceSpecifier, CaptureDeviceSpecifier, AllDevicesSpecifier} {
		assert.True(t, IsStringList(0, param), "param 0x%x without device", param)
		assert.False(t, IsStringList(someDevice, param), "param 0x%x with device", param)
	}

	for _, param := range []int32{0, -1, versionQuery, extensionQuery, 0x311, 0x1004, 0x1012} {
		assert.False(t, IsStringList(0, param), "param 0x%x without device", param)
		assert.False(t, IsStringList(someDevice, param), "param 0x%x with device", param)
	}
}

func TestPlainString(t *testing.T) {
	buf := []byte("OpenAL Soft\x00")
	assert.Equal(t, 11, ScanLength(0, versionQuery, ptr(buf)))
	assert.Equal(t, 11, ScanLength(someDevice, AllDevicesSpecifier, ptr(buf)))
	assert.Equal(t, "OpenAL Soft", GoString(0, versionQuery, ptr(buf)))
}

func TestDeviceListIsPlainWithDevice(t *testing.T) {
	buf := []byte("front\x00rear\x00\x00")
	assert.Equal(t, 5, ScanLength(someDevice, DeviceSpecifier, ptr(buf)))
	assert.Equal(t, []string{"front"}, GoStrings(someDevice, DeviceSpecifier, ptr(buf)))
}

func TestStringList(t *testing.T) {
	buf := []byte("front\x00rear\x00\x00")
	assert.Equal(t, 11, ScanLength(0, DeviceSpecifier, ptr(buf)))
	assert.Equal(t, 11, ScanLength(0, CaptureDeviceSpecifier, ptr(buf)))
	assert.Equal(t, 11, ScanLength(0, AllDevicesSpecifier, ptr(buf)))
	assert.Equal(t, "front\x00rear\x00", GoString(0, AllDevicesSpecifier, ptr(buf)))
	assert.Equal(t, []string{"front", "rear"}, GoStrings(0, AllDevicesSpecifier, ptr(buf)))
}

func TestSingleElementList(t *testing.T) {
	buf := []byte("abc\x00\x00")
	assert.Equal(t, 4, ScanLength(0, DeviceSpecifier, ptr(buf)))
	assert.Equal(t, []string{"abc"}, GoStrings(0, DeviceSpecifier, ptr(buf)))
}

func TestEmptyList(t *testing.T) {
	buf := []byte{0, 0}
	assert.Equal(t, 0, ScanLength(0, DeviceSpecifier, ptr(buf)))
	assert.Equal(t, 0, ScanLength(0, versionQuery, ptr(buf)))
	assert.Equal(t, "", GoString(0, DeviceSpecifier, ptr(buf)))
	assert.Empty(t, GoStrings(0, DeviceSpecifier, ptr(buf)))
}

func TestNilPointer(t *testing.T) {
	assert.Equal(t, "", GoString(0, DeviceSpecifier, nil))
	assert.Empty(t, GoStrings(0, DeviceSpecifier, nil))
}

func TestScanIsIdempotent(t *testing.T) {
	buf := []byte("one\x00two\x00three\x00\x00")
	first := ScanLength(0, AllDevicesSpecifier, ptr(buf))
	for i := 0; i < 10; i++ {
		require.Equal(t, first, ScanLength(0, AllDevicesSpecifier, ptr(buf)))
	}
	assert.Equal(t, "one\x00two\x00three\x00\x00", string(buf))
}

func randomElement(rng *rand.Rand) string {
	const alphabet = "abcdefghijklmnopqrstuvwxyz ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789()-_."
	n := 1 + rng.Intn(40)
	var sb strings.Builder
	for i := 0; i < n; i++ {
		sb.WriteByte(alphabet[rng.Intn(len(alphabet))])
	}
	return sb.String()
}

func TestGeneratedStrings(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for round := 0; round < 200; round++ {
		plain := randomElement(rng)
		buf := append([]byte(plain), 0)
		require.Equal(t, len(plain), ScanLength(0, versionQuery, ptr(buf)), "plain %q", plain)

		count := 1 + rng.Intn(6)
		elements := make([]string, count)
		expected := 0
		var list []byte
		for idx := range elements {
			elements[idx] = randomElement(rng)
			expected += len(elements[idx]) + 1
			list = append(list, elements[idx]...)
			list = append(list, 0)
		}
		list = append(list, 0)

		require.Equal(t, expected, ScanLength(0, DeviceSpecifier, ptr(list)), "list %q", list)
		require.Equal(t, elements, GoStrings(0, DeviceSpecifier, ptr(list)))
		require.Equal(t, expected, Length(list, true))
	}
}

func TestLength(t *testing.T) {
	assert.Equal(t, 11, Length([]byte("front\x00rear\x00\x00"), true))
	assert.Equal(t, 5, Length([]byte("front\x00rear\x00\x00"), false))
	assert.Equal(t, 0, Length([]byte{0}, true))
	assert.Equal(t, 0, Length(nil, true))

	// unterminated slices stop at their end
	assert.Equal(t, 4, Length([]byte("abcd"), false))
	assert.Equal(t, 6, Length([]byte("ab\x00cd\x00"), true))
	assert.Equal(t, 5, Length([]byte("ab\x00cd"), true))
}

func TestSplit(t *testing.T) {
	assert.Equal(t, []string{"front", "rear"}, Split([]byte("front\x00rear\x00\x00")))
	assert.Equal(t, []string{"front", "rear"}, Split([]byte("front\x00rear\x00")))
	assert.Equal(t, []string{"front", "rear"}, Split([]byte("front\x00rear")))
	assert.Equal(t, []string{"front"}, Split([]byte("front\x00\x00rear\x00")))
	assert.Empty(t, Split([]byte{0, 0}))
	assert.Empty(t, Split(nil))
}
