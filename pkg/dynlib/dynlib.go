// Package dynlib resolves entry points in shared libraries that are loaded at runtime.
package dynlib

import (
	"context"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

var (
	ErrSymbolNotFound = eris.New("symbol not found")
	ErrNoCandidates   = eris.New("no library candidates")
)

// Library is a loaded shared library.
type Library interface {
	// Name returns the name the library was opened with.
	Name() string
	// Lookup returns the address of the named entry point. Missing symbols produce an
	// error matching ErrSymbolNotFound.
	Lookup(symbol string) (uintptr, error)
	Close() error
}

// OpenFirst opens the first of the given candidates that loads successfully.
func OpenFirst(ctx context.Context, candidates []string) (Library, error) {
	if len(candidates) == 0 {
		return nil, ErrNoCandidates
	}

	failures := make([]string, 0, len(candidates))
	for _, name := range candidates {
		lib, err := Open(name)
		if err == nil {
			zerolog.Ctx(ctx).Debug().Str("library", name).Msg("Loaded shared library")
			return lib, nil
		}

		zerolog.Ctx(ctx).Debug().Err(err).Str("library", name).Msg("Failed to load shared library")
		failures = append(failures, err.Error())
	}

	return nil, eris.Errorf("failed to load any of %s: %s", strings.Join(candidates, ", "), strings.Join(failures, "; "))
}

// DefaultCandidates returns the names OpenAL is usually installed under on this platform.
// Bundled builds (OpenAL Soft shipped next to the application) come first unless
// preferSystem is set.
func DefaultCandidates(preferSystem bool) []string {
	var ordered []string
	if preferSystem {
		ordered = append(ordered, systemNames...)
		ordered = append(ordered, bundledNames...)
	} else {
		ordered = append(ordered, bundledNames...)
		ordered = append(ordered, systemNames...)
	}

	return dedupe(ordered)
}

func dedupe(names []string) []string {
	seen := make(map[string]bool, len(names))
	result := make([]string, 0, len(names))
	for _, name := range names {
		if seen[name] {
			continue
		}

		seen[name] = true
		result = append(result, name)
	}

	return result
}
