//go:build linux || freebsd

package dynlib

var (
	bundledNames = []string{"libopenal.so", "libOpenAL.so"}
	systemNames  = []string{"libopenal.so.1", "libOpenAL.so.1", "libopenal.so", "libOpenAL.so"}
)
