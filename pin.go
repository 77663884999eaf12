package libopenal

import (
	"runtime"
	"unsafe"
)

// withPinned pins the backing array of data while fn runs. fn receives nil for empty
// slices. The pin is released when fn returns or panics.
func withPinned[T any](data []T, fn func(ptr unsafe.Pointer)) {
	if len(data) == 0 {
		fn(nil)
		return
	}

	var pinner runtime.Pinner
	defer pinner.Unpin()

	pinner.Pin(&data[0])
	fn(unsafe.Pointer(&data[0]))
}

// withCString passes a NUL-terminated copy of value to fn. The empty string is passed
// as NULL which OpenAL interprets as "default".
func withCString(value string, fn func(str unsafe.Pointer)) {
	if value == "" {
		fn(nil)
		return
	}

	withPinned(cString(value), fn)
}

func cString(value string) []byte {
	buf := make([]byte, len(value)+1)
	copy(buf, value)
	return buf
}
