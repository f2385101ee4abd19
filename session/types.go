package session

// InputType selects which phonetic parser a Session uses, matching
// original_source/src/InputContext.h's InputType enum.
type InputType int

const (
	FullPinyin InputType = iota
	DoublePinyin
	Bopomofo
)

// CommitType selects what text commit() fixes, matching InputContext.h's
// CommitType enum.
type CommitType int

const (
	// TypeRaw commits the raw input text directly.
	TypeRaw CommitType = iota
	// TypePhonetic commits a phonetic-symbol rendering (Bopomofo glyphs).
	TypePhonetic
	// TypeConverted commits the selected text, any selected special phrase,
	// the default conversion of the remaining syllables and the raw text
	// left after them — the default commit type.
	TypeConverted
)

// PropertyName enumerates the properties accessible via GetProperty /
// SetProperty, matching InputContext.h's PropertyName enum.
type PropertyName int

const (
	PropertyConversionOption PropertyName = iota
	PropertyDoublePinyinSchema
	PropertyBopomofoSchema
	PropertySpecialPhrase
	PropertyModeSimp
)

// CandidateType mirrors InputContext.h's CandidateType enum.
type CandidateType int

const (
	NormalPhrase CandidateType = iota
	UserPhrase
	SpecialPhrase
)

// Candidate is one offered item in the candidate window.
type Candidate struct {
	Text string
	Type CandidateType
}
