package review

import (
	"context"
	"time"
)

// loadStreak rebuilds streak state from preferences, defaulting to no streak.
func (s *Scheduler) loadStreak(ctx context.Context) {
	current, err := s.prefs.GetInt(ctx, prefKeyStreakCurrent, 0)
	if err != nil {
		s.logger.Warn("failed to read current streak, using default", "error", err)
	}
	longest, err := s.prefs.GetInt(ctx, prefKeyStreakLongest, 0)
	if err != nil {
		s.logger.Warn("failed to read longest streak, using default", "error", err)
	}
	lastMs, err := s.prefs.GetInt64(ctx, prefKeyLastStudyDay, 0)
	if err != nil {
		s.logger.Warn("failed to read last study day, using default", "error", err)
	}

	s.currentStreak = current
	s.longestStreak = longest
	if lastMs > 0 {
		s.lastStudyDay = time.UnixMilli(lastMs).UTC()
	}
}

// Streak returns the current and longest daily study streaks.
func (s *Scheduler) Streak() (current, longest int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentStreak, s.longestStreak
}

// midnight truncates t to the start of its UTC calendar day. Streaks are
// counted at daily granularity, midnight-aligned.
func midnight(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// updateStreakLocked recalculates the daily streak after a session ends:
// first-ever study day starts at 1; studying again on the same day leaves
// the streak unchanged; exactly one day after the last study extends it;
// any larger gap resets it to 1. The longest streak is a running maximum.
// Must be called with the mutex held.
func (s *Scheduler) updateStreakLocked(ctx context.Context, now time.Time) {
	today := midnight(now)

	switch {
	case s.lastStudyDay.IsZero():
		s.currentStreak = 1
	case today.Equal(midnight(s.lastStudyDay)):
		// Already counted today.
	case today.Equal(midnight(s.lastStudyDay).AddDate(0, 0, 1)):
		s.currentStreak++
	default:
		s.currentStreak = 1
	}

	if s.currentStreak > s.longestStreak {
		s.longestStreak = s.currentStreak
	}
	s.lastStudyDay = today

	if err := s.prefs.SetInt(ctx, prefKeyStreakCurrent, s.currentStreak); err != nil {
		s.logger.Error("failed to persist current streak", "error", err)
	}
	if err := s.prefs.SetInt(ctx, prefKeyStreakLongest, s.longestStreak); err != nil {
		s.logger.Error("failed to persist longest streak", "error", err)
	}
	if err := s.prefs.SetInt64(ctx, prefKeyLastStudyDay, today.UnixMilli()); err != nil {
		s.logger.Error("failed to persist last study day", "error", err)
	}
	if err := s.prefs.Commit(ctx); err != nil {
		s.logger.Error("failed to commit streak update", "error", err)
	}
}
