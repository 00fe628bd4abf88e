package domain

import (
	"errors"
	"sort"
)

// AlphabetProgress validation errors
var (
	// ErrNegativeLetterIndex is returned when the letter index is negative.
	ErrNegativeLetterIndex = errors.New("letter index cannot be negative")

	// ErrInvalidQuizPhase is returned for an unknown quiz phase.
	ErrInvalidQuizPhase = errors.New("invalid quiz phase")
)

// QuizPhase is the quiz modality currently required for the active letter.
type QuizPhase string

// Quiz phases. A letter is mastered by passing visual recognition first and
// audio recognition second. PhaseProduction (writing the letter) is reserved
// and never entered by the progression engine.
const (
	PhaseVisualRecognition QuizPhase = "visual_recognition"
	PhaseAudioRecognition  QuizPhase = "audio_recognition"
	PhaseProduction        QuizPhase = "production"
)

// IsValid reports whether p is a known quiz phase.
func (p QuizPhase) IsValid() bool {
	switch p {
	case PhaseVisualRecognition, PhaseAudioRecognition, PhaseProduction:
		return true
	default:
		return false
	}
}

// AlphabetProgress tracks a learner's position in the alphabet course: which
// letter is active, which quiz phase that letter is in, and which letters have
// been fully mastered. The letter index never decreases; a letter joins the
// mastered set only when the engine advances past its audio phase.
type AlphabetProgress struct {
	LetterIndex  int             `json:"letter_index"`
	Phase        QuizPhase       `json:"phase"`
	Mastered     map[string]bool `json:"mastered"`
	TotalLetters int             `json:"total_letters"`
}

// NewAlphabetProgress creates progress at the documented initial state:
// first letter, visual recognition phase, nothing mastered.
func NewAlphabetProgress(totalLetters int) *AlphabetProgress {
	return &AlphabetProgress{
		LetterIndex:  0,
		Phase:        PhaseVisualRecognition,
		Mastered:     make(map[string]bool),
		TotalLetters: totalLetters,
	}
}

// IsComplete reports whether the learner has advanced past the last letter.
func (p *AlphabetProgress) IsComplete() bool {
	return p.LetterIndex >= p.TotalLetters
}

// MasteredIDs returns the mastered letter IDs in sorted order. The order is
// not meaningful; sorting just keeps snapshots deterministic.
func (p *AlphabetProgress) MasteredIDs() []string {
	ids := make([]string, 0, len(p.Mastered))
	for id := range p.Mastered {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// PercentComplete returns mastered letters as a percentage of the catalog,
// in the range [0, 100]. An empty catalog yields 0.
func (p *AlphabetProgress) PercentComplete() float64 {
	if p.TotalLetters == 0 {
		return 0
	}
	return float64(len(p.Mastered)) / float64(p.TotalLetters) * 100
}

// Clone returns a deep copy of the progress. Snapshots handed to observers
// and API responses must not alias the engine's mutable state.
func (p *AlphabetProgress) Clone() *AlphabetProgress {
	mastered := make(map[string]bool, len(p.Mastered))
	for id := range p.Mastered {
		mastered[id] = true
	}
	return &AlphabetProgress{
		LetterIndex:  p.LetterIndex,
		Phase:        p.Phase,
		Mastered:     mastered,
		TotalLetters: p.TotalLetters,
	}
}

// Validate checks if the AlphabetProgress has valid data.
func (p *AlphabetProgress) Validate() error {
	if p.LetterIndex < 0 {
		return ErrNegativeLetterIndex
	}

	if !p.Phase.IsValid() {
		return ErrInvalidQuizPhase
	}

	return nil
}
