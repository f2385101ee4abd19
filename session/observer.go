package session

// Observer receives change notifications from a Session, matching
// original_source/src/InputContext.h's nested Observer class one for one.
type Observer interface {
	CommitText(s *Session, text string)
	InputTextChanged(s *Session)
	CursorChanged(s *Session)
	PreeditTextChanged(s *Session)
	AuxiliaryTextChanged(s *Session)
	CandidatesChanged(s *Session)
}

// NopObserver implements Observer with no-op methods, for callers that only
// poll the view model instead of reacting to notifications.
type NopObserver struct{}

func (NopObserver) CommitText(*Session, string)   {}
func (NopObserver) InputTextChanged(*Session)      {}
func (NopObserver) CursorChanged(*Session)         {}
func (NopObserver) PreeditTextChanged(*Session)     {}
func (NopObserver) AuxiliaryTextChanged(*Session)   {}
func (NopObserver) CandidatesChanged(*Session)      {}
