//go:build darwin || freebsd || linux

package dynlib

import (
	"github.com/ebitengine/purego"
	"github.com/rotisserie/eris"
)

type unixLibrary struct {
	name   string
	handle uintptr
}

// Open loads the named library with dlopen.
func Open(name string) (Library, error) {
	handle, err := purego.Dlopen(name, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return nil, eris.Wrapf(err, "failed to load %s", name)
	}

	return &unixLibrary{name: name, handle: handle}, nil
}

func (l *unixLibrary) Name() string {
	return l.name
}

func (l *unixLibrary) Lookup(symbol string) (uintptr, error) {
	if l.handle == 0 {
		return 0, eris.Errorf("library %s has been closed", l.name)
	}

	addr, err := purego.Dlsym(l.handle, symbol)
	if err != nil || addr == 0 {
		return 0, eris.Wrapf(ErrSymbolNotFound, "%s (%s)", symbol, l.name)
	}

	return addr, nil
}

func (l *unixLibrary) Close() error {
	if l.handle == 0 {
		return nil
	}

	err := purego.Dlclose(l.handle)
	l.handle = 0
	if err != nil {
		return eris.Wrapf(err, "failed to close %s", l.name)
	}

	return nil
}
