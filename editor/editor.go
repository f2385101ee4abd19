// Package editor implements the phrase editor (C5): candidate generation
// and the selected-prefix state over a syllable array, grounded on
// original_source/src/PhraseEditor.{h,cc}.
package editor

import (
	"context"
	"strings"

	"github.com/zyinput/zyinput/phonetic"
	"github.com/zyinput/zyinput/store"
	"github.com/zyinput/zyinput/table"
)

// FillGranularity is the candidate pagination batch size. See DESIGN.md for
// why this is 12 (the canonical, non-draft value) rather than the abandoned
// draft's 10000.
const FillGranularity = 12

// CandidateType mirrors the spec's Candidate.type enumeration.
type CandidateType int

const (
	NormalPhrase CandidateType = iota
	UserPhrase
	SpecialPhrase
)

// Candidate is one offered phrase at the current syllable cursor.
type Candidate struct {
	Text           string
	Type           CandidateType
	SyllableLength int
	storePhrase    store.Phrase
}

// Editor owns the syllable array, the selected-prefix state, and the
// candidate window, matching PhraseEditor's member layout.
type Editor struct {
	store *store.Store

	syllables phonetic.Array

	selectedPhrases []store.Phrase
	selectedString  string
	syllableCursor  int

	candidate0     []store.Phrase // default-conversion phrases from the cursor
	candidates     []Candidate    // paginated query results, joined candidate prepended
	query          *store.Query
	queryExhausted bool
}

func New(s *store.Store) *Editor {
	return &Editor{store: s}
}

// syllableIDs converts table syllable descriptors into the store's
// "sheng:yun" id strings.
func syllableIDs(tokens []phonetic.Token) []string {
	ids := make([]string, len(tokens))
	for i, t := range tokens {
		ids[i] = t.Syllable.Sheng + ":" + t.Syllable.Yun
	}
	return ids
}

func phraseSyllableIDs(s *table.Syllable) string {
	return s.Sheng + ":" + s.Yun
}

// Update replaces the syllable array and recomputes candidates from
// syllableCursor, the editor's single entry point after any parser change.
func (e *Editor) Update(ctx context.Context, syllables phonetic.Array) {
	e.syllables = syllables
	if e.syllableCursor > len(syllables) {
		e.syllableCursor = len(syllables)
	}
	e.recompute(ctx)
}

// remainingIDs returns the canonical ids of the not-yet-selected syllable
// suffix, starting at syllableCursor.
func (e *Editor) remainingIDs() []string {
	tail := e.syllables[e.syllableCursor:]
	return syllableIDs(tail)
}

// recompute rebuilds candidate_0_phrases and the first candidate page.
// This is updateTheFirstCandidate + the initial fillCandidates page from
// original_source/src/PhraseEditor.cc.
func (e *Editor) recompute(ctx context.Context) {
	e.candidate0 = e.computeDefaultConversion(ctx)
	e.candidates = nil
	e.query = nil
	e.queryExhausted = false
	remaining := e.remainingIDs()
	if len(remaining) == 0 {
		return
	}
	if len(e.candidate0) >= 2 {
		joined := joinedCandidate(e.candidate0)
		e.candidates = append(e.candidates, joined)
	}
	e.query = e.store.Query(remaining)
	e.fillPage(ctx)
}

func joinedCandidate(phrases []store.Phrase) Candidate {
	var b strings.Builder
	n := 0
	for _, p := range phrases {
		b.WriteString(p.Text)
		n += p.SyllableLength
	}
	return Candidate{Text: b.String(), Type: NormalPhrase, SyllableLength: n}
}

// computeDefaultConversion is the greedy updateTheFirstCandidate algorithm:
// starting from syllableCursor, repeatedly take the top-ranked phrase
// covering as many syllables as possible, until the array is exhausted.
// Always terminates because every syllable has a singleton phrase.
func (e *Editor) computeDefaultConversion(ctx context.Context) []store.Phrase {
	var out []store.Phrase
	pos := e.syllableCursor
	for pos < len(e.syllables) {
		ids := syllableIDs(e.syllables[pos:])
		p, err := e.store.BestPrefixPhrase(ctx, ids)
		if err != nil || p.SyllableLength == 0 {
			// No entry at all (should not happen once seeded, but fall
			// back to an unconverted single-syllable placeholder so the
			// conversion never stalls).
			s := e.syllables[pos].Syllable
			p = store.Phrase{Text: s.Text, SyllableIDs: []string{phraseSyllableIDs(s)}, SyllableLength: 1}
		}
		out = append(out, p)
		if p.SyllableLength <= 0 {
			break
		}
		pos += p.SyllableLength
	}
	return out
}

func (e *Editor) fillPage(ctx context.Context) {
	if e.query == nil || e.queryExhausted {
		return
	}
	phrases, exhausted, err := e.query.Fill(ctx, FillGranularity)
	if err != nil {
		e.queryExhausted = true
		return
	}
	for _, p := range phrases {
		ctype := NormalPhrase
		if p.IsUserLearned() {
			ctype = UserPhrase
		}
		e.candidates = append(e.candidates, Candidate{Text: p.Text, Type: ctype, SyllableLength: p.SyllableLength, storePhrase: p})
	}
	e.queryExhausted = exhausted
}

// HasCandidate drives pagination until index i is available or the query is
// exhausted.
func (e *Editor) HasCandidate(ctx context.Context, i int) bool {
	for i >= len(e.candidates) && !e.queryExhausted {
		e.fillPage(ctx)
	}
	return i < len(e.candidates)
}

// GetCandidate returns candidate i, paginating as needed.
func (e *Editor) GetCandidate(ctx context.Context, i int) (Candidate, bool) {
	if !e.HasCandidate(ctx, i) {
		return Candidate{}, false
	}
	return e.candidates[i], true
}

// Candidates returns the candidates prepared so far (no further pagination).
func (e *Editor) Candidates() []Candidate { return e.candidates }

// PreparedCandidateCount returns the number of candidates already paginated
// into memory, distinct from HasCandidate which may trigger another page —
// see SPEC_FULL.md §4.7.
func (e *Editor) PreparedCandidateCount() int { return len(e.candidates) }

// Candidate0 exposes the default-conversion phrase sequence.
func (e *Editor) Candidate0() []store.Phrase { return e.candidate0 }

// DefaultConversionText concatenates candidate_0_phrases' text, converting
// to Traditional via convert when modeSimp is false.
func (e *Editor) DefaultConversionText(convert func(string) string, modeSimp bool) string {
	var b strings.Builder
	for _, p := range e.candidate0 {
		if !modeSimp && convert != nil {
			b.WriteString(convert(p.Text))
		} else {
			b.WriteString(p.Text)
		}
	}
	return b.String()
}

// SyllableCursor returns the current boundary between selected and pending
// syllables.
func (e *Editor) SyllableCursor() int { return e.syllableCursor }

// SelectedString returns the accumulated selected text.
func (e *Editor) SelectedString() string { return e.selectedString }

// SelectedPhrases returns the phrases selected so far, in order.
func (e *Editor) SelectedPhrases() []store.Phrase { return e.selectedPhrases }

// Select implements the spec's selection algorithm: index 0 when a joined
// candidate exists consumes the whole default conversion; otherwise the
// chosen candidate's phrase is appended.
func (e *Editor) Select(ctx context.Context, i int, convert func(string) string, modeSimp bool) bool {
	hasJoined := len(e.candidate0) >= 2
	if i == 0 && hasJoined {
		for _, p := range e.candidate0 {
			e.appendSelected(p, convert, modeSimp)
		}
		e.syllableCursor = len(e.syllables)
		e.recompute(ctx)
		return true
	}
	c, ok := e.GetCandidate(ctx, i)
	if !ok {
		return false
	}
	p := c.storePhrase
	if p.Text == "" {
		p = store.Phrase{Text: c.Text, SyllableLength: c.SyllableLength}
	}
	e.appendSelected(p, convert, modeSimp)
	e.syllableCursor += c.SyllableLength
	e.recompute(ctx)
	return true
}

func (e *Editor) appendSelected(p store.Phrase, convert func(string) string, modeSimp bool) {
	e.selectedPhrases = append(e.selectedPhrases, p)
	if !modeSimp && convert != nil {
		e.selectedString += convert(p.Text)
	} else {
		e.selectedString += p.Text
	}
}

// Unselect resets the selected-prefix state.
func (e *Editor) Unselect(ctx context.Context) {
	e.selectedPhrases = nil
	e.selectedString = ""
	e.syllableCursor = 0
	e.recompute(ctx)
}

// ResetCandidate forwards to the store's remove() then recomputes.
func (e *Editor) ResetCandidate(ctx context.Context, i int) bool {
	c, ok := e.GetCandidate(ctx, i)
	if !ok {
		return false
	}
	if c.storePhrase.Text == "" {
		return false
	}
	if err := e.store.Remove(ctx, c.storePhrase); err != nil {
		return false
	}
	e.recompute(ctx)
	return true
}

// Commit resets all selected-prefix and syllable-array state, then forwards
// the phrases that were selected to the store's commit().
func (e *Editor) Commit(ctx context.Context) error {
	phrases := e.selectedPhrases
	e.Reset()
	if len(phrases) == 0 {
		return nil
	}
	return e.store.Commit(ctx, phrases)
}

// Reset clears all editor state without touching the store.
func (e *Editor) Reset() {
	e.syllables = nil
	e.selectedPhrases = nil
	e.selectedString = ""
	e.syllableCursor = 0
	e.candidate0 = nil
	e.candidates = nil
	e.query = nil
	e.queryExhausted = false
}
