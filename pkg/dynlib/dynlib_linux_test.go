package dynlib

import (
	"context"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupInLibc(t *testing.T) {
	lib, err := OpenFirst(context.Background(), []string{"libdoes-not-exist.so", "libc.so.6"})
	if err != nil {
		t.Skipf("libc not loadable: %s", err)
	}
	defer lib.Close()

	assert.Equal(t, "libc.so.6", lib.Name())

	addr, err := lib.Lookup("strlen")
	require.NoError(t, err)
	assert.NotZero(t, addr)

	_, err = lib.Lookup("alcDefinitelyMissing")
	assert.True(t, eris.Is(err, ErrSymbolNotFound))

	require.NoError(t, lib.Close())
	require.NoError(t, lib.Close())

	_, err = lib.Lookup("strlen")
	assert.Error(t, err)
}
