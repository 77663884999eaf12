package dynlib

// soft_oal.dll is the name OpenAL Soft's Windows builds ship under.
var (
	bundledNames = []string{"soft_oal.dll", "openal.dll"}
	systemNames  = []string{"OpenAL32.dll"}
)
