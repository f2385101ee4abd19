package session

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zyinput/zyinput/simptrad"
	"github.com/zyinput/zyinput/special"
	"github.com/zyinput/zyinput/store"
	"github.com/zyinput/zyinput/table"
)

type recordingObserver struct {
	committed     []string
	inputChanges  int
	cursorChanges int
	preeditCh     int
	auxCh         int
	candCh        int
}

func (o *recordingObserver) CommitText(_ *Session, text string) { o.committed = append(o.committed, text) }
func (o *recordingObserver) InputTextChanged(*Session)           { o.inputChanges++ }
func (o *recordingObserver) CursorChanged(*Session)              { o.cursorChanges++ }
func (o *recordingObserver) PreeditTextChanged(*Session)         { o.preeditCh++ }
func (o *recordingObserver) AuxiliaryTextChanged(*Session)       { o.auxCh++ }
func (o *recordingObserver) CandidatesChanged(*Session)          { o.candCh++ }

func newTestSession(t *testing.T, kind InputType) (*Session, *recordingObserver) {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	obs := &recordingObserver{}
	deps := Deps{Store: s, Special: special.New(), Simptrad: simptrad.New()}
	sess := New(kind, deps, obs)
	return sess, obs
}

func insertAll(s *Session, text string) {
	for i := 0; i < len(text); i++ {
		s.Insert(text[i])
	}
}

func findCandidateIndex(s *Session, text string) int {
	for i := 0; i < 64 && s.HasCandidate(i); i++ {
		c, ok := s.GetCandidate(i)
		if ok && c.Text == text {
			return i
		}
	}
	return -1
}

func TestInsertBuildsAuxiliaryTextWithSeparatorAndCursorTail(t *testing.T) {
	s, _ := newTestSession(t, FullPinyin)
	insertAll(s, "nihao")
	assert.Equal(t, "ni hao|", s.AuxiliaryText())
	assert.Equal(t, "nihao", s.InputText())
	assert.Equal(t, 5, s.Cursor())
}

func TestInsertRejectsInadmissibleChar(t *testing.T) {
	s, _ := newTestSession(t, FullPinyin)
	assert.False(t, s.Insert('A'))
	assert.False(t, s.Insert('5'))
	assert.Equal(t, "", s.InputText())
}

func TestDefaultConversionAndRestTextAfterFullInsert(t *testing.T) {
	s, _ := newTestSession(t, FullPinyin)
	insertAll(s, "nihao")
	assert.Equal(t, "你好", s.ConversionText())
	assert.Equal(t, "", s.RestText())
	assert.Equal(t, "", s.SelectedText())
}

func TestSelectCandidateAutoCommitsOnFullCoverage(t *testing.T) {
	s, obs := newTestSession(t, FullPinyin)
	insertAll(s, "nihao")

	idx := findCandidateIndex(s, "你好")
	require.GreaterOrEqual(t, idx, 0)

	ok := s.SelectCandidate(idx)
	require.True(t, ok)
	require.Len(t, obs.committed, 1)
	assert.Equal(t, "你好", obs.committed[0])

	// Commit resets the session.
	assert.Equal(t, "", s.InputText())
	assert.Equal(t, 0, s.Cursor())
}

func TestSelectCandidatePartialMatchDoesNotCommit(t *testing.T) {
	s, obs := newTestSession(t, FullPinyin)
	insertAll(s, "nihao")

	idx := findCandidateIndex(s, "你")
	require.GreaterOrEqual(t, idx, 0)

	ok := s.SelectCandidate(idx)
	require.True(t, ok)
	assert.Empty(t, obs.committed)
	assert.Equal(t, "你", s.SelectedText())
	assert.Equal(t, "nihao", s.InputText())
}

func TestCommitTypeRawAndPhoneticForFullPinyin(t *testing.T) {
	s, obs := newTestSession(t, FullPinyin)
	insertAll(s, "nihao")
	s.Commit(TypeRaw)
	require.Len(t, obs.committed, 1)
	assert.Equal(t, "nihao", obs.committed[0])

	insertAll(s, "nihao")
	s.Commit(TypePhonetic)
	require.Len(t, obs.committed, 2)
	assert.Equal(t, "nihao", obs.committed[1])
}

func TestCommitConvertedFallsBackToRawWhenNothingSelected(t *testing.T) {
	s, obs := newTestSession(t, FullPinyin)
	insertAll(s, "nihao")
	s.Commit(TypeConverted)
	require.Len(t, obs.committed, 1)
	assert.Equal(t, "nihao", obs.committed[0])
}

func TestBopomofoCommitConvertedFallsBackToPhoneticGlyphs(t *testing.T) {
	s, obs := newTestSession(t, Bopomofo)
	// Standard keyboard: "sucl" -> ni hao, same mapping as bopomofo/parser_test.go.
	insertAll(s, "sucl")
	s.Commit(TypeConverted)
	require.Len(t, obs.committed, 1)
	assert.Equal(t, "ㄋㄧㄏㄠ", obs.committed[0])
}

func TestBopomofoAuxiliaryTextUsesCommaSeparator(t *testing.T) {
	s, _ := newTestSession(t, Bopomofo)
	insertAll(s, "sucl")
	assert.Equal(t, "ㄋㄧ,ㄏㄠ|", s.AuxiliaryText())
}

func TestRemoveCharBeforeAndAfter(t *testing.T) {
	s, _ := newTestSession(t, FullPinyin)
	insertAll(s, "nihao")
	require.True(t, s.MoveCursorToBegin())
	assert.False(t, s.RemoveCharBefore())
	assert.True(t, s.RemoveCharAfter())
	assert.Equal(t, "ihao", s.InputText())
}

func TestRemoveWordBeforeSnapsToSyllableBoundary(t *testing.T) {
	s, _ := newTestSession(t, FullPinyin)
	insertAll(s, "nihao")
	require.True(t, s.RemoveWordBefore())
	assert.Equal(t, "ni", s.InputText())
	assert.Equal(t, 2, s.Cursor())
}

func TestRemoveWordAfterDeletesEntireTailAsOneStroke(t *testing.T) {
	s, _ := newTestSession(t, FullPinyin)
	insertAll(s, "nihao")
	require.True(t, s.MoveCursorToBegin())
	require.True(t, s.RemoveWordAfter())
	assert.Equal(t, "", s.InputText())
	assert.Equal(t, 0, s.Cursor())
}

func TestRemoveWordAfterAtEndOfBufferFails(t *testing.T) {
	s, _ := newTestSession(t, FullPinyin)
	insertAll(s, "nihao")
	assert.False(t, s.RemoveWordAfter())
}

func TestMoveCursorLeftByWordSnapsToBoundary(t *testing.T) {
	s, _ := newTestSession(t, FullPinyin)
	insertAll(s, "nihao")
	require.True(t, s.MoveCursorLeftByWord())
	assert.Equal(t, 2, s.Cursor())
}

func TestMoveCursorRightByWordAliasesToEnd(t *testing.T) {
	s, _ := newTestSession(t, FullPinyin)
	insertAll(s, "nihao")
	require.True(t, s.MoveCursorToBegin())
	require.True(t, s.MoveCursorRightByWord())
	assert.Equal(t, len(s.InputText()), s.Cursor())
}

func TestMoveCursorLeftRightAndBoundsChecks(t *testing.T) {
	s, _ := newTestSession(t, FullPinyin)
	insertAll(s, "ni")
	assert.False(t, s.MoveCursorRight())
	require.True(t, s.MoveCursorLeft())
	assert.Equal(t, 1, s.Cursor())
	require.True(t, s.MoveCursorToBegin())
	assert.False(t, s.MoveCursorLeft())
}

func TestUnselectCandidatesRestoresDefaultConversion(t *testing.T) {
	s, _ := newTestSession(t, FullPinyin)
	insertAll(s, "nihao")
	idx := findCandidateIndex(s, "你")
	require.GreaterOrEqual(t, idx, 0)
	require.True(t, s.SelectCandidate(idx))
	assert.Equal(t, "你", s.SelectedText())

	assert.True(t, s.UnselectCandidates())
	assert.Empty(t, s.SelectedText())
	assert.Equal(t, "你好", s.ConversionText())
}

func TestUnselectCandidatesFailsWhenNothingSelected(t *testing.T) {
	s, _ := newTestSession(t, FullPinyin)
	insertAll(s, "nihao")
	assert.False(t, s.UnselectCandidates())
}

func TestModeSimpTogglesConversionTextScript(t *testing.T) {
	s, _ := newTestSession(t, FullPinyin)
	insertAll(s, "laoshi")
	require.Equal(t, "老师", s.ConversionText())

	ok := s.SetProperty(PropertyModeSimp, BoolVariant(false))
	require.True(t, ok)
	assert.Equal(t, "老師", s.ConversionText())
}

func TestGetSetPropertyConversionOptionRoundTrip(t *testing.T) {
	s, _ := newTestSession(t, FullPinyin)
	v := s.GetProperty(PropertyConversionOption)
	require.True(t, v.IsUint())
	assert.Equal(t, uint32(table.DefaultOption), v.Uint())

	ok := s.SetProperty(PropertyConversionOption, UintVariant(0))
	require.True(t, ok)
	assert.Equal(t, uint32(0), s.GetProperty(PropertyConversionOption).Uint())
}

func TestSchemaPropertiesRejectedForForeignSessionKind(t *testing.T) {
	s, _ := newTestSession(t, FullPinyin)

	assert.True(t, s.GetProperty(PropertyDoublePinyinSchema).IsNull())
	assert.True(t, s.GetProperty(PropertyBopomofoSchema).IsNull())
	assert.False(t, s.SetProperty(PropertyDoublePinyinSchema, UintVariant(1)))
	assert.False(t, s.SetProperty(PropertyBopomofoSchema, UintVariant(1)))
}

func TestSchemaPropertyAcceptedForMatchingSessionKind(t *testing.T) {
	s, _ := newTestSession(t, DoublePinyin)
	ok := s.SetProperty(PropertyDoublePinyinSchema, UintVariant(2))
	require.True(t, ok)
	v := s.GetProperty(PropertyDoublePinyinSchema)
	require.True(t, v.IsUint())
	assert.Equal(t, uint32(2), v.Uint())

	assert.False(t, s.SetProperty(PropertyBopomofoSchema, UintVariant(1)))
}

func TestSetPropertyRejectsTypeMismatch(t *testing.T) {
	s, _ := newTestSession(t, FullPinyin)
	assert.False(t, s.SetProperty(PropertyConversionOption, BoolVariant(true)))
	assert.False(t, s.SetProperty(PropertySpecialPhrase, UintVariant(1)))
}

func TestSetPropertyUnknownNameFails(t *testing.T) {
	s, _ := newTestSession(t, FullPinyin)
	assert.False(t, s.SetProperty(PropertyName(999), BoolVariant(true)))
	assert.True(t, s.GetProperty(PropertyName(999)).IsNull())
}

func TestResetClearsEverythingAndFiresNotifications(t *testing.T) {
	s, obs := newTestSession(t, FullPinyin)
	insertAll(s, "nihao")
	obs.inputChanges, obs.cursorChanges, obs.candCh = 0, 0, 0

	s.Reset()
	assert.Equal(t, "", s.InputText())
	assert.Equal(t, 0, s.Cursor())
	assert.Equal(t, "", s.SelectedText())
	assert.GreaterOrEqual(t, obs.inputChanges, 1)
	assert.GreaterOrEqual(t, obs.candCh, 1)
}

func TestFocusCandidateNextAndPrevious(t *testing.T) {
	s, _ := newTestSession(t, FullPinyin)
	insertAll(s, "nihao")
	require.True(t, s.HasCandidate(1))

	assert.Equal(t, 0, s.FocusedCandidate())
	require.True(t, s.FocusCandidateNext())
	assert.Equal(t, 1, s.FocusedCandidate())
	require.True(t, s.FocusCandidatePrevious())
	assert.Equal(t, 0, s.FocusedCandidate())
	assert.False(t, s.FocusCandidatePrevious())
}

func TestResetCandidateFailsForOutOfRangeIndex(t *testing.T) {
	s, _ := newTestSession(t, FullPinyin)
	insertAll(s, "nihao")
	assert.False(t, s.ResetCandidate(-1))
	assert.False(t, s.ResetCandidate(999))
}
