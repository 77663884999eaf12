package dynlib

import (
	"github.com/rotisserie/eris"
	"golang.org/x/sys/windows"
)

type windowsLibrary struct {
	name string
	dll  *windows.DLL
}

// Open loads the named DLL with LoadLibrary.
func Open(name string) (Library, error) {
	dll, err := windows.LoadDLL(name)
	if err != nil {
		return nil, eris.Wrapf(err, "failed to load %s", name)
	}

	return &windowsLibrary{name: name, dll: dll}, nil
}

func (l *windowsLibrary) Name() string {
	return l.name
}

func (l *windowsLibrary) Lookup(symbol string) (uintptr, error) {
	if l.dll == nil {
		return 0, eris.Errorf("library %s has been closed", l.name)
	}

	proc, err := l.dll.FindProc(symbol)
	if err != nil {
		return 0, eris.Wrapf(ErrSymbolNotFound, "%s (%s)", symbol, l.name)
	}

	return proc.Addr(), nil
}

func (l *windowsLibrary) Close() error {
	if l.dll == nil {
		return nil
	}

	err := l.dll.Release()
	l.dll = nil
	if err != nil {
		return eris.Wrapf(err, "failed to release %s", l.name)
	}

	return nil
}
