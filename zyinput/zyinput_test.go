package zyinput

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// initForTest initializes the process-wide singletons over temp directories
// and schedules Finalize so later tests in the package see a clean slate.
func initForTest(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, Init(filepath.Join(dir, "cache"), filepath.Join(dir, "config")))
	t.Cleanup(Finalize)
}

func TestCreatePanicsBeforeInit(t *testing.T) {
	assert.Panics(t, func() {
		Create(FullPinyin, nil)
	})
}

func TestInitCreateFinalizeLifecycle(t *testing.T) {
	initForTest(t)

	s := Create(FullPinyin, nil)
	require.NotNil(t, s)
	s.Insert('n')
	s.Insert('i')
	assert.Equal(t, "ni", s.InputText())
}

func TestInitTwiceIsIdempotentNoOp(t *testing.T) {
	initForTest(t)

	firstDB := phraseDB
	require.NoError(t, Init("ignored-cache-dir", "ignored-config-dir"))
	assert.Same(t, firstDB, phraseDB, "second Init call must not replace the running singletons")
}

func TestFinalizeIsSafeWhenNeverInitialized(t *testing.T) {
	assert.False(t, ready)
	assert.NotPanics(t, Finalize)
	assert.False(t, ready)
}

func TestFinalizeThenCreatePanicsAgain(t *testing.T) {
	initForTest(t)
	Finalize()
	assert.Panics(t, func() {
		Create(FullPinyin, nil)
	})
}

func TestCreateWithNilObserverUsesNopObserver(t *testing.T) {
	initForTest(t)

	s := Create(Bopomofo, nil)
	require.NotNil(t, s)
	// NopObserver must absorb every notification without panicking.
	assert.True(t, s.Insert('s'))
	s.Reset()
}

// TestPackagedDefaultSpecialPhraseSurfacesWithNoPhrasesFileAnywhere locks in
// the fix for Init() previously yielding an empty special-phrase table: a
// fresh Init with no phrases.txt in the working directory or the config
// directory must still produce the engine's own "aazhi" -> "AA制" worked
// example via the embedded packaged default.
func TestPackagedDefaultSpecialPhraseSurfacesWithNoPhrasesFileAnywhere(t *testing.T) {
	initForTest(t)

	s := Create(FullPinyin, nil)
	require.NotNil(t, s)
	for _, ch := range "aazhi" {
		s.Insert(byte(ch))
	}
	require.True(t, s.HasCandidate(0))
	c, ok := s.GetCandidate(0)
	require.True(t, ok)
	assert.Equal(t, "AA制", c.Text)
}

func TestCreateSessionsAreIndependent(t *testing.T) {
	initForTest(t)

	a := Create(FullPinyin, nil)
	b := Create(FullPinyin, nil)
	a.Insert('n')
	a.Insert('i')
	assert.Equal(t, "", b.InputText())
	assert.Equal(t, "ni", a.InputText())
}
