package dynlib

var (
	bundledNames = []string{"libopenal.dylib", "libopenal.1.dylib"}
	systemNames  = []string{"/System/Library/Frameworks/OpenAL.framework/OpenAL"}
)
