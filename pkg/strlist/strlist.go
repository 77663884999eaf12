// Package strlist measures and decodes the strings returned by alcGetString.
//
// Enumeration queries made without a device return a "string list": several
// NUL-terminated strings stored back to back and closed by one extra NUL.
// Every other query returns a plain C string.
package strlist

import "unsafe"

// The enumeration queries that return string lists. The values are fixed by the ALC spec.
const (
	DeviceSpecifier        int32 = 0x1005
	CaptureDeviceSpecifier int32 = 0x310
	AllDevicesSpecifier    int32 = 0x1013
)

// IsStringList reports whether alcGetString(device, param) returns a string list.
// Unknown params are treated as plain strings.
func IsStringList(device uintptr, param int32) bool {
	return device == 0 && (param == DeviceSpecifier ||
		param == CaptureDeviceSpecifier ||
		param == AllDevicesSpecifier)
}

// ScanLength returns the number of bytes a caller has to copy from str to capture the
// whole result. For string lists that's every element plus its separator but not the
// final terminator; for plain strings it's the same as strlen.
//
// str must point to a properly terminated result. Nothing is bounds checked.
func ScanLength(device uintptr, param int32, str unsafe.Pointer) int {
	if !IsStringList(device, param) {
		return strlen(str)
	}

	length := 0
	for *(*byte)(str) != 0 {
		for *(*byte)(str) != 0 {
			str = unsafe.Add(str, 1)
			length++
		}

		// the separator belongs to the element
		str = unsafe.Add(str, 1)
		length++
	}

	return length
}

func strlen(str unsafe.Pointer) int {
	length := 0
	for *(*byte)(unsafe.Add(str, length)) != 0 {
		length++
	}

	return length
}

// GoString copies the result at str into Go memory. The returned string keeps the
// interior separators of a string list.
func GoString(device uintptr, param int32, str unsafe.Pointer) string {
	if str == nil {
		return ""
	}

	length := ScanLength(device, param, str)
	if length == 0 {
		return ""
	}

	return string(unsafe.Slice((*byte)(str), length))
}

// GoStrings copies the result at str and splits it into its elements. Plain strings
// produce a single element.
func GoStrings(device uintptr, param int32, str unsafe.Pointer) []string {
	if str == nil {
		return []string{}
	}

	length := ScanLength(device, param, str)
	if length == 0 {
		return []string{}
	}

	buf := unsafe.Slice((*byte)(str), length)
	if !IsStringList(device, param) {
		return []string{string(buf)}
	}

	return Split(buf)
}

// Length applies the same rules as ScanLength to buf. Scanning stops at the end of the
// slice if buf isn't terminated.
func Length(buf []byte, list bool) int {
	if !list {
		for idx, b := range buf {
			if b == 0 {
				return idx
			}
		}
		return len(buf)
	}

	pos := 0
	for pos < len(buf) && buf[pos] != 0 {
		for pos < len(buf) && buf[pos] != 0 {
			pos++
		}

		if pos < len(buf) {
			pos++
		}
	}

	return pos
}

// Split returns the elements of a string list. buf may or may not include the
// terminators.
func Split(buf []byte) []string {
	result := make([]string, 0)
	for len(buf) > 0 {
		end := Length(buf, false)
		if end == 0 {
			break
		}

		result = append(result, string(buf[:end]))
		if end == len(buf) {
			break
		}
		buf = buf[end+1:]
	}

	return result
}
