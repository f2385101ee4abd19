package special

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadYAMLOverlayMergesStaticAndDynamic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "phrases.yaml")
	require.NoError(t, os.WriteFile(path, []byte(""+
		"phrases:\n"+
		"  hi:\n"+
		"    - 你好\n"+
		"    - 哈喽\n"+
		"  rq:\n"+
		"    - \"#%year年\"\n"), 0o644))

	tbl := New()
	require.NoError(t, LoadYAMLOverlay(tbl, path))

	hi := Lookup(tbl, "hi", time.Now())
	assert.ElementsMatch(t, []string{"你好", "哈喽"}, hi)

	now := time.Date(2026, time.July, 31, 0, 0, 0, 0, time.UTC)
	rq := Lookup(tbl, "rq", now)
	require.Len(t, rq, 1)
	assert.Equal(t, "二零二六年", rq[0])
}

func TestLoadYAMLOverlayMissingFileIsNotError(t *testing.T) {
	tbl := New()
	err := LoadYAMLOverlay(tbl, filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.False(t, tbl.Has("anything"))
}

func TestLoadYAMLOverlayMergesIntoExistingEntries(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "phrases.yaml")
	require.NoError(t, os.WriteFile(path, []byte("phrases:\n  sig:\n    - two\n"), 0o644))

	tbl := New()
	tbl.add(Phrase{Command: "sig", Value: "one"})
	require.NoError(t, LoadYAMLOverlay(tbl, path))

	out := Lookup(tbl, "sig", time.Now())
	assert.Equal(t, []string{"one", "two"}, out)
}
