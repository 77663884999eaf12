package libopenal

import (
	"context"
	"sync"

	"github.com/ebitengine/purego"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"

	"github.com/ngld/knossos/packages/libopenal/pkg/dynlib"
)

// Options controls how Load finds the OpenAL implementation.
type Options struct {
	// LibraryPath skips the search and loads exactly this library.
	LibraryPath string
	// PreferSystem tries the system's OpenAL before bundled builds.
	PreferSystem bool
}

// OpenAL is a loaded OpenAL implementation.
type OpenAL struct {
	lib dynlib.Library

	AL  *AL
	ALC *ALC
	EAX *EAX

	closeOnce sync.Once
}

// Load opens the OpenAL library and resolves all core AL and ALC entry points.
func Load(ctx context.Context, opts Options) (*OpenAL, error) {
	var (
		lib dynlib.Library
		err error
	)

	if opts.LibraryPath != "" {
		lib, err = dynlib.Open(opts.LibraryPath)
	} else {
		lib, err = dynlib.OpenFirst(ctx, dynlib.DefaultCandidates(opts.PreferSystem))
	}
	if err != nil {
		return nil, eris.Wrap(err, "failed to load OpenAL")
	}

	oal, err := Bind(ctx, lib)
	if err != nil {
		lib.Close()
		return nil, err
	}

	return oal, nil
}

// Bind resolves the AL and ALC entry points in an already loaded library.
func Bind(ctx context.Context, lib dynlib.Library) (*OpenAL, error) {
	b := &binder{lib: lib}
	oal := &OpenAL{
		lib: lib,
		ALC: bindALC(b),
		AL:  bindAL(b),
	}
	if b.err != nil {
		return nil, b.err
	}

	oal.ALC.bindExtensions(ctx, oal)
	oal.EAX = &EAX{oal: oal}

	zerolog.Ctx(ctx).Debug().Str("library", lib.Name()).Msg("Bound OpenAL")
	return oal, nil
}

// Library returns the name of the loaded library.
func (o *OpenAL) Library() string {
	return o.lib.Name()
}

// Close unloads the library. Nothing bound through o may be called afterwards.
func (o *OpenAL) Close() error {
	var err error
	o.closeOnce.Do(func() {
		err = o.lib.Close()
	})
	return err
}

// resolveExtension looks up an extension entry point through alcGetProcAddress and
// alGetProcAddress before falling back to the library's symbol table.
func (o *OpenAL) resolveExtension(device Device, symbol string) uintptr {
	if addr := o.ALC.GetProcAddress(device, symbol); addr != 0 {
		return addr
	}

	if addr := o.AL.GetProcAddress(symbol); addr != 0 {
		return addr
	}

	addr, err := o.lib.Lookup(symbol)
	if err != nil {
		return 0
	}

	return addr
}

type binder struct {
	lib dynlib.Library
	err error
}

// bind stores the first failure and turns every later call into a no-op.
func (b *binder) bind(fptr interface{}, symbol string) {
	if b.err != nil {
		return
	}

	addr, err := b.lib.Lookup(symbol)
	if err != nil {
		b.err = eris.Wrapf(err, "failed to bind %s", symbol)
		return
	}

	purego.RegisterFunc(fptr, addr)
}

func bindOptional(fptr interface{}, addr uintptr) bool {
	if addr == 0 {
		return false
	}

	purego.RegisterFunc(fptr, addr)
	return true
}
