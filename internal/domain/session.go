package domain

import (
	"time"

	"github.com/google/uuid"
)

// SessionType tags a study session with the selection mode it was started in.
type SessionType string

// Session types.
const (
	SessionDueReview SessionType = "due_review"
	SessionNewCards  SessionType = "new_cards"
	SessionMixed     SessionType = "mixed"
	SessionFavorites SessionType = "favorites"
)

// StudySession is the ephemeral record of one review session. It is created
// on session start, finalized on session end and then kept only in the
// scheduler's in-memory history for statistics.
type StudySession struct {
	ID                uuid.UUID   `json:"id"`
	Type              SessionType `json:"type"`
	StartedAt         time.Time   `json:"started_at"`
	EndedAt           *time.Time  `json:"ended_at,omitempty"`
	CardsStudied      []string    `json:"cards_studied"`
	TotalCards        int         `json:"total_cards"`
	CorrectAnswers    int         `json:"correct_answers"`
	AvgResponseTimeMs float64     `json:"avg_response_time_ms"`
}

// NewStudySession creates an active session. TotalCards snapshots how many
// cards were due when the session began.
func NewStudySession(sessionType SessionType, totalCards int, now time.Time) *StudySession {
	return &StudySession{
		ID:           uuid.New(),
		Type:         sessionType,
		StartedAt:    now,
		CardsStudied: make([]string, 0),
		TotalCards:   totalCards,
	}
}

// RecordCard appends a studied card and folds its response time into the
// session's running mean, keyed off the session's own prior card count.
func (s *StudySession) RecordCard(itemID string, correct bool, responseTimeMs float64) {
	prior := len(s.CardsStudied)
	s.AvgResponseTimeMs = (s.AvgResponseTimeMs*float64(prior) + responseTimeMs) / float64(prior+1)
	s.CardsStudied = append(s.CardsStudied, itemID)
	if correct {
		s.CorrectAnswers++
	}
}

// Clone returns a deep copy of the session.
func (s *StudySession) Clone() *StudySession {
	clone := *s
	clone.CardsStudied = append([]string(nil), s.CardsStudied...)
	if s.EndedAt != nil {
		ended := *s.EndedAt
		clone.EndedAt = &ended
	}
	return &clone
}
