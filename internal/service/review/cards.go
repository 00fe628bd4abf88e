package review

import (
	"context"
	"time"

	"github.com/adlamlearn/adlam-api/internal/domain"
)

// Preference keys owned by the review scheduler. Card state is stored as
// flat scalars under a per-item prefix, mirroring how the mobile client
// keeps them in its preference file.
const (
	prefKeyFavorites     = "vocabulary.favorites"
	prefKeyStreakCurrent = "vocabulary.streak.current"
	prefKeyStreakLongest = "vocabulary.streak.longest"
	prefKeyLastStudyDay  = "vocabulary.streak.last_study_day"

	cardPrefPrefix = "vocabulary.card."
)

func cardKey(itemID, field string) string {
	return cardPrefPrefix + itemID + "." + field
}

// loadCard rebuilds the card for an item from persisted scalars, or returns
// a fresh NEW card when nothing was persisted. Individual read failures
// degrade to that field's default.
func (s *Scheduler) loadCard(ctx context.Context, item domain.VocabularyItem, now time.Time) *domain.VocabularyCard {
	level, err := s.prefs.GetString(ctx, cardKey(item.ID, "level"), "")
	if err != nil {
		s.logger.Warn("failed to read card level", "item_id", item.ID, "error", err)
	}
	if level == "" || !domain.MasteryLevel(level).IsValid() {
		card, newErr := domain.NewVocabularyCard(item, now)
		if newErr != nil {
			// Item already validated by InitializeCards; defaults cannot fail.
			s.logger.Error("failed to build default card", "item_id", item.ID, "error", newErr)
			card = &domain.VocabularyCard{
				Item:         item,
				Level:        domain.LevelNew,
				EaseFactor:   domain.DefaultEaseFactor,
				IntervalDays: domain.DefaultIntervalDays,
				NextReviewAt: now,
				CreatedAt:    now,
			}
		}
		return card
	}

	card := &domain.VocabularyCard{
		Item:  item,
		Level: domain.MasteryLevel(level),
	}
	card.Repetitions, _ = s.prefs.GetInt(ctx, cardKey(item.ID, "repetitions"), 0)
	card.EaseFactor, _ = s.prefs.GetFloat64(ctx, cardKey(item.ID, "ease"), domain.DefaultEaseFactor)
	card.IntervalDays, _ = s.prefs.GetInt(ctx, cardKey(item.ID, "interval"), domain.DefaultIntervalDays)
	card.CorrectStreak, _ = s.prefs.GetInt(ctx, cardKey(item.ID, "streak"), 0)
	card.TotalReviews, _ = s.prefs.GetInt(ctx, cardKey(item.ID, "total_reviews"), 0)
	card.CorrectReviews, _ = s.prefs.GetInt(ctx, cardKey(item.ID, "correct_reviews"), 0)
	card.AvgResponseTimeMs, _ = s.prefs.GetFloat64(ctx, cardKey(item.ID, "avg_response_ms"), 0)
	card.Tags, _ = s.prefs.GetStringSet(ctx, cardKey(item.ID, "tags"), nil)

	nextMs, _ := s.prefs.GetInt64(ctx, cardKey(item.ID, "next_review_ms"), now.UnixMilli())
	card.NextReviewAt = time.UnixMilli(nextMs).UTC()

	lastMs, _ := s.prefs.GetInt64(ctx, cardKey(item.ID, "last_review_ms"), 0)
	if lastMs > 0 {
		last := time.UnixMilli(lastMs).UTC()
		card.LastReviewedAt = &last
	}

	createdMs, _ := s.prefs.GetInt64(ctx, cardKey(item.ID, "created_ms"), now.UnixMilli())
	card.CreatedAt = time.UnixMilli(createdMs).UTC()

	// Persisted values can be inconsistent after a partial write; fall back
	// to a fresh card rather than violating scheduling invariants.
	if card.Validate() != nil {
		fresh, _ := domain.NewVocabularyCard(item, now)
		if fresh != nil {
			return fresh
		}
	}
	return card
}

// persistCard writes the card's scalar fields and commits. Failures are
// logged and swallowed: the in-memory update has already happened and the
// next successful write supersedes the lost one.
func (s *Scheduler) persistCard(ctx context.Context, card *domain.VocabularyCard) {
	id := card.Item.ID

	writes := []error{
		s.prefs.SetString(ctx, cardKey(id, "level"), string(card.Level)),
		s.prefs.SetInt(ctx, cardKey(id, "repetitions"), card.Repetitions),
		s.prefs.SetFloat64(ctx, cardKey(id, "ease"), card.EaseFactor),
		s.prefs.SetInt(ctx, cardKey(id, "interval"), card.IntervalDays),
		s.prefs.SetInt(ctx, cardKey(id, "streak"), card.CorrectStreak),
		s.prefs.SetInt(ctx, cardKey(id, "total_reviews"), card.TotalReviews),
		s.prefs.SetInt(ctx, cardKey(id, "correct_reviews"), card.CorrectReviews),
		s.prefs.SetFloat64(ctx, cardKey(id, "avg_response_ms"), card.AvgResponseTimeMs),
		s.prefs.SetInt64(ctx, cardKey(id, "next_review_ms"), card.NextReviewAt.UnixMilli()),
		s.prefs.SetInt64(ctx, cardKey(id, "created_ms"), card.CreatedAt.UnixMilli()),
	}
	if card.LastReviewedAt != nil {
		writes = append(writes, s.prefs.SetInt64(ctx, cardKey(id, "last_review_ms"), card.LastReviewedAt.UnixMilli()))
	}
	if len(card.Tags) > 0 {
		writes = append(writes, s.prefs.SetStringSet(ctx, cardKey(id, "tags"), card.Tags))
	}
	writes = append(writes, s.prefs.Commit(ctx))

	for _, err := range writes {
		if err != nil {
			s.logger.Error("failed to persist card", "item_id", id, "error", err)
			return
		}
	}
}
