// Package session implements the phonetic context / editing session (C6)
// and the observer dispatch plumbing (C8), grounded on
// original_source/src/PhoneticContext.{h,cc}, InputContext.{h,cc}, and
// DoublePinyinContext.cc's insert/remove/cursor-motion bodies.
package session

import (
	"context"

	"github.com/zyinput/zyinput/editor"
	"github.com/zyinput/zyinput/phonetic"
	"github.com/zyinput/zyinput/phonetic/bopomofo"
	"github.com/zyinput/zyinput/phonetic/doublepinyin"
	"github.com/zyinput/zyinput/simptrad"
	"github.com/zyinput/zyinput/special"
	"github.com/zyinput/zyinput/store"
)

// Deps are the process-wide collaborators every Session shares, matching the
// spec's "phrase store and special-phrase table are process-wide
// singletons" lifecycle rule.
type Deps struct {
	Store    *store.Store
	Special  *special.Table
	Simptrad *simptrad.Converter
}

// Session is one independent editing context: its own raw buffer, cursor,
// syllable array, selection state, and view model.
type Session struct {
	kind     InputType
	deps     Deps
	observer Observer

	cfg Config

	raw    []byte
	cursor int
	tokens phonetic.Array

	editor *editor.Editor

	focusedCandidate      int
	specialPhrases        []string
	selectedSpecialPhrase string
}

// New constructs a Session for the given input kind. Conversion option and
// schema/keyboard default to the spec's §6 property defaults.
func New(kind InputType, deps Deps, observer Observer) *Session {
	return &Session{
		kind:     kind,
		deps:     deps,
		observer: observer,
		cfg:      DefaultConfig(),
		editor:   editor.New(deps.Store),
	}
}

func (s *Session) ctx() context.Context { return context.Background() }

// isAdmissible dispatches the per-kind keystroke admissibility check.
func (s *Session) isAdmissible(ch byte) bool {
	switch s.kind {
	case DoublePinyin:
		return doublepinyin.IsAdmissibleChar(ch)
	case Bopomofo:
		return bopomofo.IsAdmissibleChar(s.cfg.BopomofoSchema, ch)
	default:
		return phonetic.IsAdmissibleChar(ch)
	}
}

// parseTokens dispatches to the active parser over raw[0:cursor].
func (s *Session) parseTokens(cursor int) phonetic.Array {
	raw := string(s.raw)
	switch s.kind {
	case DoublePinyin:
		return doublepinyin.Parse(raw, 0, cursor, s.cfg.Option, s.cfg.DoublePinyinSchema, nil)
	case Bopomofo:
		return bopomofo.Parse(raw, 0, cursor, s.cfg.Option, s.cfg.BopomofoSchema, nil)
	default:
		return phonetic.Parse(raw, 0, cursor, s.cfg.Option, nil)
	}
}

// convertFn returns the Simp->Trad conversion function for the active
// converter, or nil if none was supplied.
func (s *Session) convertFn() func(string) string {
	if s.deps.Simptrad == nil {
		return nil
	}
	return s.deps.Simptrad.ToTraditional
}

// --- notification helpers, one per Observer method -------------------------

func (s *Session) fireInput()      { s.observer.InputTextChanged(s) }
func (s *Session) fireCursor()     { s.observer.CursorChanged(s) }
func (s *Session) firePreedit()    { s.observer.PreeditTextChanged(s) }
func (s *Session) fireAux()        { s.observer.AuxiliaryTextChanged(s) }
func (s *Session) fireCandidates() { s.focusedCandidate = 0; s.observer.CandidatesChanged(s) }

// fireFull mirrors PhoneticContext::update(): candidates, preedit, auxiliary.
func (s *Session) fireFull() {
	s.fireCandidates()
	s.firePreedit()
	s.fireAux()
}

// reparse rebuilds the syllable array over raw[0:cursor], feeds it to the
// phrase editor, and refreshes the special-phrase overlay. Every mutating
// operation funnels through this after updating raw/cursor, trading the
// original's incremental tail-only reparse for a full reparse each time —
// semantically equivalent at these buffer sizes (MAX_PINYIN_LEN = 64).
func (s *Session) reparse() {
	s.tokens = s.parseTokens(s.cursor)
	s.editor.Update(s.ctx(), s.tokens)
	s.updateSpecialPhrases()
}

// selectedTokenBytes returns the raw byte offset immediately after the last
// token already folded into the phrase editor's selected prefix.
func (s *Session) selectedTokenBytes() int {
	n := s.editor.SyllableCursor()
	if n == 0 || n > len(s.tokens) {
		return 0
	}
	return s.tokens[n-1].End()
}

// tokenBytesAt returns the raw byte offset immediately after the first n
// tokens (0 if n==0, tokens.BytesConsumed() if n exceeds the array).
func (s *Session) tokenBytesAt(n int) int {
	if n <= 0 {
		return 0
	}
	if n >= len(s.tokens) {
		return s.tokens.BytesConsumed()
	}
	return s.tokens[n-1].End()
}

// updateSpecialPhrases refreshes the special-phrase overlay over the raw
// substring from the selected-prefix boundary to the cursor, matching
// PhoneticContext::updateSpecialPhrases. Returns whether the overlay
// changed.
func (s *Session) updateSpecialPhrases() bool {
	before := len(s.specialPhrases)
	s.specialPhrases = nil
	if !s.cfg.SpecialPhrase || s.selectedSpecialPhrase != "" {
		return before != 0
	}
	begin := s.selectedTokenBytes()
	end := s.cursor
	if begin < end && s.deps.Special != nil {
		s.specialPhrases = special.Lookup(s.deps.Special, string(s.raw[begin:end]), nowFunc())
	}
	return before != len(s.specialPhrases)
}

// mapCandidateType converts an editor.CandidateType into the session's
// exported CandidateType.
func mapCandidateType(t editor.CandidateType) CandidateType {
	if t == editor.UserPhrase {
		return UserPhrase
	}
	return NormalPhrase
}

// HasCandidate drives pagination (special phrases first, then the phrase
// editor) until index i is available or exhausted.
func (s *Session) HasCandidate(i int) bool {
	if i < len(s.specialPhrases) {
		return true
	}
	if s.selectedSpecialPhrase != "" {
		return false
	}
	return s.editor.HasCandidate(s.ctx(), i-len(s.specialPhrases))
}

// GetCandidate returns candidate i (Traditional-converted when
// mode_simp=false), paginating as needed.
func (s *Session) GetCandidate(i int) (Candidate, bool) {
	if !s.HasCandidate(i) {
		return Candidate{}, false
	}
	if i < len(s.specialPhrases) {
		return Candidate{Text: s.specialPhrases[i], Type: SpecialPhrase}, true
	}
	c, ok := s.editor.GetCandidate(s.ctx(), i-len(s.specialPhrases))
	if !ok {
		return Candidate{}, false
	}
	text := c.Text
	if !s.cfg.ModeSimp {
		if fn := s.convertFn(); fn != nil {
			text = fn(text)
		}
	}
	return Candidate{Text: text, Type: mapCandidateType(c.Type)}, true
}

// GetPreparedCandidatesSize reports how many candidates are already
// paginated into memory (special phrases plus the editor's prepared
// count), without triggering further pagination.
func (s *Session) GetPreparedCandidatesSize() int {
	if s.selectedSpecialPhrase != "" {
		return 0
	}
	return len(s.specialPhrases) + s.editor.PreparedCandidateCount()
}
