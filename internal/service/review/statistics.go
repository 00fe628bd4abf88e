package review

import (
	"github.com/adlamlearn/adlam-api/internal/domain"
)

// Statistics aggregates the learner's vocabulary progress for display.
type Statistics struct {
	TotalCards      int     `json:"total_cards"`
	NewCards        int     `json:"new_cards"`
	LearningCards   int     `json:"learning_cards"`
	ReviewCards     int     `json:"review_cards"`
	MasteredCards   int     `json:"mastered_cards"`
	DueCards        int     `json:"due_cards"`
	FavoriteCards   int     `json:"favorite_cards"`
	TotalReviews    int     `json:"total_reviews"`
	CorrectReviews  int     `json:"correct_reviews"`
	OverallAccuracy float64 `json:"overall_accuracy"`
	CurrentStreak   int     `json:"current_streak"`
	LongestStreak   int     `json:"longest_streak"`
	SessionsToday   int     `json:"sessions_today"`
}

// Statistics computes aggregate statistics over the card collection and
// session history.
func (s *Scheduler) Statistics() Statistics {
	now := s.nowFn()
	today := midnight(now)

	s.mu.Lock()
	defer s.mu.Unlock()

	stats := Statistics{
		TotalCards:    len(s.cards),
		CurrentStreak: s.currentStreak,
		LongestStreak: s.longestStreak,
	}

	for _, c := range s.cards {
		switch c.Level {
		case domain.LevelNew:
			stats.NewCards++
		case domain.LevelLearning:
			stats.LearningCards++
		case domain.LevelReview:
			stats.ReviewCards++
		case domain.LevelMastered:
			stats.MasteredCards++
		}
		if c.IsDue(now) {
			stats.DueCards++
		}
		if c.Favorite {
			stats.FavoriteCards++
		}
		stats.TotalReviews += c.TotalReviews
		stats.CorrectReviews += c.CorrectReviews
	}

	if stats.TotalReviews > 0 {
		stats.OverallAccuracy = float64(stats.CorrectReviews) / float64(stats.TotalReviews)
	}

	for _, sess := range s.history {
		if midnight(sess.StartedAt).Equal(today) {
			stats.SessionsToday++
		}
	}

	return stats
}
