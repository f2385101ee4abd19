package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zyinput/zyinput/simptrad"
	"github.com/zyinput/zyinput/special"
	"github.com/zyinput/zyinput/store"
)

func newSessionWithSpecialPhrases(t *testing.T, phrasesTxt string) (*Session, *recordingObserver) {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "phrases.txt"), []byte(phrasesTxt), 0o644))
	tbl, err := special.Load(dir, "")
	require.NoError(t, err)

	obs := &recordingObserver{}
	deps := Deps{Store: s, Special: tbl, Simptrad: simptrad.New()}
	sess := New(FullPinyin, deps, obs)
	return sess, obs
}

// "iu" is typed as the special-phrase command deliberately: neither "iu"
// nor its prefix "i" names any syllable (the zero-initial spellings all
// begin with a, o or e, and "i"/"u" aren't standalone initials), so it parses into zero
// phonetic tokens and never picks up a default-conversion tail that would
// otherwise ride along in the TypeConverted commit.
func TestSpecialPhraseSurfacesAsCandidateAtCursorEnd(t *testing.T) {
	s, _ := newSessionWithSpecialPhrases(t, "iu=今天的日期\n")
	insertAll(s, "iu")

	require.True(t, s.HasCandidate(0))
	c, ok := s.GetCandidate(0)
	require.True(t, ok)
	assert.Equal(t, "今天的日期", c.Text)
	assert.Equal(t, SpecialPhrase, c.Type)
}

func TestSelectingSpecialPhraseAtBufferEndCommitsImmediately(t *testing.T) {
	s, obs := newSessionWithSpecialPhrases(t, "iu=今天的日期\n")
	insertAll(s, "iu")

	require.True(t, s.SelectCandidate(0))
	require.Len(t, obs.committed, 1)
	assert.Equal(t, "今天的日期", obs.committed[0])
	assert.Equal(t, "", s.InputText())
}

func TestSpecialPhraseDisabledPropertyHidesCandidates(t *testing.T) {
	s, _ := newSessionWithSpecialPhrases(t, "iu=今天的日期\n")
	require.True(t, s.SetProperty(PropertySpecialPhrase, BoolVariant(false)))
	insertAll(s, "iu")

	c, ok := s.GetCandidate(0)
	if ok {
		assert.NotEqual(t, SpecialPhrase, c.Type)
	}
}
