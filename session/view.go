package session

import (
	"strings"

	"github.com/zyinput/zyinput/phonetic"
)

// InputText is the raw ASCII buffer, unconverted.
func (s *Session) InputText() string { return string(s.raw) }

// Cursor is the raw buffer's edit cursor, a byte offset.
func (s *Session) Cursor() int { return s.cursor }

// FocusedCandidate is the currently focused candidate index.
func (s *Session) FocusedCandidate() int { return s.focusedCandidate }

// SelectedText is C5's selected_string, or the selected special-phrase
// string when one is active.
func (s *Session) SelectedText() string {
	if s.selectedSpecialPhrase != "" {
		return s.selectedSpecialPhrase
	}
	return s.editor.SelectedString()
}

// focusedSyllableLength reports how many trailing syllables the focused
// candidate covers: the whole remainder when focus is 0 (the default
// conversion), otherwise the focused candidate's own syllable_length.
func (s *Session) focusedSyllableLength() int {
	if s.focusedCandidate == 0 {
		return len(s.tokens) - s.editor.SyllableCursor()
	}
	_, sylLen, _, ok := s.candidateAt(s.focusedCandidate)
	if !ok {
		return len(s.tokens) - s.editor.SyllableCursor()
	}
	return sylLen
}

// candidateAt resolves a session-wide candidate index (special phrases
// first, then the phrase editor) to its rendered text and syllable count.
func (s *Session) candidateAt(i int) (text string, syllableLen int, ctype CandidateType, ok bool) {
	if i < len(s.specialPhrases) {
		return s.specialPhrases[i], 0, SpecialPhrase, true
	}
	if s.selectedSpecialPhrase != "" {
		return "", 0, 0, false
	}
	c, got := s.editor.GetCandidate(s.ctx(), i-len(s.specialPhrases))
	if !got {
		return "", 0, 0, false
	}
	text = c.Text
	if !s.cfg.ModeSimp {
		if fn := s.convertFn(); fn != nil {
			text = fn(text)
		}
	}
	return text, c.SyllableLength, mapCandidateType(c.Type), true
}

// ConversionText is the text of the focused candidate, or — when focus is
// 0 — the default-conversion concatenation (Traditional-converted when
// mode_simp is false).
func (s *Session) ConversionText() string {
	if s.focusedCandidate == 0 {
		return s.editor.DefaultConversionText(s.convertFn(), s.cfg.ModeSimp)
	}
	if text, _, _, ok := s.candidateAt(s.focusedCandidate); ok {
		return text
	}
	return s.editor.DefaultConversionText(s.convertFn(), s.cfg.ModeSimp)
}

// RestText is the raw tail not yet covered by the focused candidate's
// syllables, running to the end of the raw buffer (the tail after the
// edit cursor is opaque, per the spec's Non-goals).
func (s *Session) RestText() string {
	covered := s.editor.SyllableCursor() + s.focusedSyllableLength()
	return string(s.raw[s.tokenBytesAt(covered):])
}

// tokenSpelling returns a token's display spelling: the romanized text for
// Full/Double-Pinyin, the Bopomofo glyph cluster for Bopomofo.
func (s *Session) tokenSpelling(t phonetic.Token) string {
	if s.kind == Bopomofo {
		return t.Syllable.Bopomofo
	}
	return t.Syllable.Text
}

// AuxiliaryText renders the parsed syllables with a '|' cursor marker,
// separated by " " (Pinyin) or "," (Bopomofo), followed by the raw tail
// after the last syllable boundary.
func (s *Session) AuxiliaryText() string {
	sep := " "
	if s.kind == Bopomofo {
		sep = ","
	}
	spellings := make([]string, len(s.tokens))
	for i, t := range s.tokens {
		spellings[i] = s.tokenSpelling(t)
	}
	consumed := s.tokens.BytesConsumed()
	return strings.Join(spellings, sep) + "|" + string(s.raw[consumed:])
}
