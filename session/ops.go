package session

import (
	"strings"
	"time"

	"github.com/zyinput/zyinput/phonetic"
	"github.com/zyinput/zyinput/phonetic/bopomofo"
	"github.com/zyinput/zyinput/phonetic/doublepinyin"
	"github.com/zyinput/zyinput/table"
)

func nowFunc() time.Time { return time.Now() }

// rawFallback is what commit(TYPE_CONVERTED) emits when nothing has been
// selected: Full/Double-Pinyin fall back to the raw keystroke buffer,
// Bopomofo falls back to its phonetic (glyph) rendering, since Bopomofo's
// raw ASCII buffer is not itself meaningful to a reader. See DESIGN.md.
func (s *Session) rawFallback() string {
	if s.kind != Bopomofo {
		return string(s.raw)
	}
	return s.bopomofoPhonetic()
}

func (s *Session) bopomofoPhonetic() string {
	var b strings.Builder
	for _, t := range s.tokens {
		b.WriteString(t.Syllable.Bopomofo)
	}
	b.WriteString(string(s.raw[s.tokens.BytesConsumed():]))
	return b.String()
}

// Insert appends ch at the raw cursor if the buffer isn't full and ch is
// admissible for the active parser kind.
func (s *Session) Insert(ch byte) bool {
	if !s.isAdmissible(ch) {
		return false
	}
	if len(s.raw) >= phonetic.MaxPinyinLen {
		return false
	}
	buf := make([]byte, 0, len(s.raw)+1)
	buf = append(buf, s.raw[:s.cursor]...)
	buf = append(buf, ch)
	buf = append(buf, s.raw[s.cursor:]...)
	s.raw = buf
	s.cursor++
	s.reparse()
	s.fireInput()
	s.fireCursor()
	s.fireFull()
	return true
}

// Commit renders the final string for commitType, emits commitText, then
// resets the session (matching InputContext::commit's "resets the
// context" postcondition).
func (s *Session) Commit(commitType CommitType) {
	text := s.renderCommit(commitType)
	s.observer.CommitText(s, text)
	s.Reset()
}

func (s *Session) renderCommit(commitType CommitType) string {
	switch commitType {
	case TypeRaw:
		return string(s.raw)
	case TypePhonetic:
		if s.kind == Bopomofo {
			return s.bopomofoPhonetic()
		}
		return string(s.raw)
	default: // TypeConverted
		if len(s.editor.SelectedPhrases()) == 0 && s.selectedSpecialPhrase == "" {
			return s.rawFallback()
		}
		var b strings.Builder
		b.WriteString(s.editor.SelectedString())
		b.WriteString(s.selectedSpecialPhrase)
		b.WriteString(s.editor.DefaultConversionText(s.convertFn(), s.cfg.ModeSimp))
		tail := s.tokens.BytesConsumed()
		if s.selectedSpecialPhrase != "" {
			tail = s.cursor
		}
		b.WriteString(string(s.raw[tail:]))
		return b.String()
	}
}

// Reset clears all session state and emits the corresponding notifications.
func (s *Session) Reset() {
	s.raw = nil
	s.cursor = 0
	s.tokens = nil
	s.editor.Reset()
	s.specialPhrases = nil
	s.selectedSpecialPhrase = ""
	s.focusedCandidate = 0
	s.fireInput()
	s.fireCursor()
	s.fireFull()
}

// RemoveCharBefore deletes one ASCII char before the raw cursor.
func (s *Session) RemoveCharBefore() bool {
	if s.cursor == 0 {
		return false
	}
	s.cursor--
	s.raw = append(s.raw[:s.cursor], s.raw[s.cursor+1:]...)
	s.reparse()
	s.fireInput()
	s.fireCursor()
	s.fireFull()
	return true
}

// RemoveCharAfter deletes one ASCII char after the raw cursor.
func (s *Session) RemoveCharAfter() bool {
	if s.cursor == len(s.raw) {
		return false
	}
	s.raw = append(s.raw[:s.cursor], s.raw[s.cursor+1:]...)
	s.reparse()
	s.fireInput()
	s.fireFull()
	return true
}

// RemoveWordBefore deletes the ASCII tail back to the last syllable
// boundary if the cursor lies beyond it, else drops the last syllable
// token and its bytes.
func (s *Session) RemoveWordBefore() bool {
	if s.cursor == 0 {
		return false
	}
	consumed := s.tokens.BytesConsumed()
	if s.cursor > consumed {
		s.raw = append(s.raw[:consumed], s.raw[s.cursor:]...)
		s.cursor = consumed
	} else if len(s.tokens) > 0 {
		boundary := s.tokens[len(s.tokens)-1].Begin
		s.raw = append(s.raw[:boundary], s.raw[s.cursor:]...)
		s.cursor = boundary
	} else {
		return false
	}
	s.reparse()
	s.fireInput()
	s.fireCursor()
	s.fireFull()
	return true
}

// RemoveWordAfter deletes the entire raw tail after the cursor in one
// stroke, matching DoublePinyinContext::removeWordAfter's `m_text.erase
// (m_cursor)` — the whole remainder is treated as one opaque "word"
// regardless of how many syllables it would parse into. See DESIGN.md's
// open-question resolution #5.
func (s *Session) RemoveWordAfter() bool {
	if s.cursor == len(s.raw) {
		return false
	}
	s.raw = s.raw[:s.cursor]
	s.reparse()
	s.fireInput()
	s.fireFull()
	return true
}

// MoveCursorLeft moves the raw cursor left by one ASCII char.
func (s *Session) MoveCursorLeft() bool {
	if s.cursor == 0 {
		return false
	}
	s.cursor--
	s.reparse()
	s.fireCursor()
	s.fireFull()
	return true
}

// MoveCursorRight moves the raw cursor right by one ASCII char.
func (s *Session) MoveCursorRight() bool {
	if s.cursor == len(s.raw) {
		return false
	}
	s.cursor++
	s.reparse()
	s.fireCursor()
	s.fireFull()
	return true
}

// MoveCursorLeftByWord snaps to the last syllable boundary if the cursor
// is beyond it, else pops the last syllable.
func (s *Session) MoveCursorLeftByWord() bool {
	if s.cursor == 0 {
		return false
	}
	consumed := s.tokens.BytesConsumed()
	if s.cursor > consumed {
		s.cursor = consumed
	} else if len(s.tokens) > 0 {
		s.cursor = s.tokens[len(s.tokens)-1].Begin
	} else {
		return false
	}
	s.reparse()
	s.fireCursor()
	s.fireFull()
	return true
}

// MoveCursorRightByWord is aliased to moveCursorToEnd, matching
// DoublePinyinContext::moveCursorRightByWord (and PhoneticContext's
// default). See DESIGN.md's open-question resolution #3.
func (s *Session) MoveCursorRightByWord() bool { return s.MoveCursorToEnd() }

// MoveCursorToBegin moves the raw cursor to 0 and clears the syllable
// array.
func (s *Session) MoveCursorToBegin() bool {
	if s.cursor == 0 {
		return false
	}
	s.cursor = 0
	s.reparse()
	s.fireCursor()
	s.fireFull()
	return true
}

// MoveCursorToEnd moves the raw cursor to the buffer end.
func (s *Session) MoveCursorToEnd() bool {
	if s.cursor == len(s.raw) {
		return false
	}
	s.cursor = len(s.raw)
	s.reparse()
	s.fireCursor()
	s.fireFull()
	return true
}

// SelectCandidate selects candidate i: a special phrase (committed
// immediately if the raw cursor is at buffer end, else kept as an
// overlay), or delegated to the phrase editor (auto-commits once the
// syllable array and raw tail are both fully consumed).
func (s *Session) SelectCandidate(i int) bool {
	if !s.HasCandidate(i) {
		return false
	}
	if i < len(s.specialPhrases) {
		s.selectedSpecialPhrase = s.specialPhrases[i]
		s.focusedCandidate = 0
		if s.cursor == len(s.raw) {
			s.Commit(TypeConverted)
		} else {
			s.updateSpecialPhrases()
			s.fireFull()
		}
		return true
	}
	j := i - len(s.specialPhrases)
	if !s.editor.Select(s.ctx(), j, s.convertFn(), s.cfg.ModeSimp) {
		return false
	}
	s.focusedCandidate = 0
	if s.editor.SyllableCursor() < len(s.tokens) || s.cursor < len(s.raw) {
		s.updateSpecialPhrases()
		s.fireFull()
	} else {
		s.Commit(TypeConverted)
	}
	return true
}

// FocusCandidate changes the focused index and refreshes preedit only.
func (s *Session) FocusCandidate(i int) bool {
	if !s.HasCandidate(i) {
		return false
	}
	s.focusedCandidate = i
	s.firePreedit()
	return true
}

// FocusCandidatePrevious moves focus one candidate back.
func (s *Session) FocusCandidatePrevious() bool {
	if s.focusedCandidate == 0 {
		return false
	}
	return s.FocusCandidate(s.focusedCandidate - 1)
}

// FocusCandidateNext moves focus one candidate forward.
func (s *Session) FocusCandidateNext() bool {
	if !s.HasCandidate(s.focusedCandidate + 1) {
		return false
	}
	return s.FocusCandidate(s.focusedCandidate + 1)
}

// ResetCandidate forgets a user-learned candidate's frequency (rejected
// for special-phrase indices, which have no learned frequency).
func (s *Session) ResetCandidate(i int) bool {
	if i < len(s.specialPhrases) {
		return false
	}
	j := i - len(s.specialPhrases)
	if !s.editor.ResetCandidate(s.ctx(), j) {
		return false
	}
	s.fireCandidates()
	return true
}

// UnselectCandidates clears the phrase editor's selected prefix.
func (s *Session) UnselectCandidates() bool {
	if s.editor.SyllableCursor() == 0 {
		return false
	}
	s.editor.Unselect(s.ctx())
	s.updateSpecialPhrases()
	s.fireFull()
	return true
}

// GetProperty returns a property's current value, NullVariant for an
// unrecognized name, or NullVariant for a schema property foreign to this
// session's kind (PropertyDoublePinyinSchema on a non-Double-Pinyin session,
// PropertyBopomofoSchema on a non-Bopomofo one), mirroring pyzy's
// PinyinConfig/BopomofoConfig per-subclass property split.
func (s *Session) GetProperty(name PropertyName) Variant {
	switch name {
	case PropertyConversionOption:
		return UintVariant(uint32(s.cfg.Option))
	case PropertyDoublePinyinSchema:
		if s.kind != DoublePinyin {
			return NullVariant()
		}
		return UintVariant(uint32(s.cfg.DoublePinyinSchema))
	case PropertyBopomofoSchema:
		if s.kind != Bopomofo {
			return NullVariant()
		}
		return UintVariant(uint32(s.cfg.BopomofoSchema))
	case PropertySpecialPhrase:
		return BoolVariant(s.cfg.SpecialPhrase)
	case PropertyModeSimp:
		return BoolVariant(s.cfg.ModeSimp)
	default:
		return NullVariant()
	}
}

// SetProperty sets a property, returning false on a type mismatch, an
// unrecognized name, or a schema property foreign to this session's kind.
func (s *Session) SetProperty(name PropertyName, v Variant) bool {
	switch name {
	case PropertyConversionOption:
		if !v.IsUint() {
			return false
		}
		s.cfg.Option = table.Option(v.Uint())
		return true
	case PropertyDoublePinyinSchema:
		if s.kind != DoublePinyin || !v.IsUint() {
			return false
		}
		s.cfg.DoublePinyinSchema = doublepinyin.Schema(v.Uint())
		return true
	case PropertyBopomofoSchema:
		if s.kind != Bopomofo || !v.IsUint() {
			return false
		}
		s.cfg.BopomofoSchema = bopomofo.Keyboard(v.Uint())
		return true
	case PropertySpecialPhrase:
		if !v.IsBool() {
			return false
		}
		s.cfg.SpecialPhrase = v.Bool()
		return true
	case PropertyModeSimp:
		if !v.IsBool() {
			return false
		}
		s.cfg.ModeSimp = v.Bool()
		return true
	default:
		return false
	}
}
