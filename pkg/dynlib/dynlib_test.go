package dynlib

import (
	"context"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCandidatesOrder(t *testing.T) {
	bundled := DefaultCandidates(false)
	system := DefaultCandidates(true)

	require.NotEmpty(t, bundled)
	assert.ElementsMatch(t, bundled, system)
	assert.Equal(t, bundledNames[0], bundled[0])
	assert.Equal(t, systemNames[0], system[0])
}

func TestDefaultCandidatesHaveNoDuplicates(t *testing.T) {
	for _, preferSystem := range []bool{false, true} {
		seen := map[string]bool{}
		for _, name := range DefaultCandidates(preferSystem) {
			assert.False(t, seen[name], "%s listed twice", name)
			seen[name] = true
		}
	}
}

func TestOpenFirstWithoutCandidates(t *testing.T) {
	_, err := OpenFirst(context.Background(), nil)
	assert.True(t, eris.Is(err, ErrNoCandidates))
}

func TestOpenFirstReportsEveryAttempt(t *testing.T) {
	_, err := OpenFirst(context.Background(), []string{"libdoes-not-exist-1.so", "libdoes-not-exist-2.so"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "libdoes-not-exist-1.so")
	assert.Contains(t, err.Error(), "libdoes-not-exist-2.so")
}
