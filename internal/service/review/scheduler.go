// Package review implements the spaced-repetition scheduler for vocabulary
// study: card selection (due, new, review), the review update loop on top of
// the SRS algorithm, study sessions, daily streaks, favorites and full
// progress reset.
package review

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/adlamlearn/adlam-api/internal/domain"
	"github.com/adlamlearn/adlam-api/internal/domain/srs"
	"github.com/adlamlearn/adlam-api/internal/events"
	"github.com/adlamlearn/adlam-api/internal/store"
)

// Scheduler maintains the per-learner card collection and runs review
// sessions. All mutating methods are serialized by an internal mutex; each
// performs a read-modify-write over the in-memory collection followed by a
// persistence write, so concurrent interleavings would lose updates.
type Scheduler struct {
	mu      sync.Mutex
	alg     srs.Service
	prefs   store.PrefStore
	emitter events.Emitter
	logger  *slog.Logger
	nowFn   func() time.Time

	items []domain.VocabularyItem
	cards []*domain.VocabularyCard

	session *domain.StudySession
	history []*domain.StudySession

	currentStreak int
	longestStreak int
	lastStudyDay  time.Time
}

// NewScheduler creates a scheduler backed by the given SRS service and
// preference store. Streak and favorite state are rebuilt from preferences;
// the card collection stays empty until InitializeCards runs.
func NewScheduler(
	alg srs.Service,
	prefs store.PrefStore,
	emitter events.Emitter,
	logger *slog.Logger,
) *Scheduler {
	return NewSchedulerWithClock(alg, prefs, emitter, logger, time.Now)
}

// NewSchedulerWithClock is NewScheduler with an injectable clock, so tests
// can drive due-date and streak behavior deterministically.
func NewSchedulerWithClock(
	alg srs.Service,
	prefs store.PrefStore,
	emitter events.Emitter,
	logger *slog.Logger,
	nowFn func() time.Time,
) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Scheduler{
		alg:     alg,
		prefs:   prefs,
		emitter: emitter,
		logger:  logger.With(slog.String("component", "review_scheduler")),
		nowFn:   nowFn,
		history: make([]*domain.StudySession, 0),
	}
	s.loadStreak(context.Background())
	return s
}

func (s *Scheduler) emit(eventType events.EventType, snapshot any) {
	if s.emitter != nil {
		s.emitter.Emit(events.NewStateEvent(eventType, snapshot))
	}
}

// InitializeCards builds one card per catalog item, reusing any persisted
// card state for that item's identifier and defaulting to a fresh NEW card
// otherwise. Favorite flags are mirrored from the persisted favorites set.
// Calling it again reloads the collection from the same sources.
func (s *Scheduler) InitializeCards(ctx context.Context, items []domain.VocabularyItem) error {
	now := s.nowFn()

	favorites, err := s.prefs.GetStringSet(ctx, prefKeyFavorites, nil)
	if err != nil {
		s.logger.Warn("failed to read favorites, using empty set", "error", err)
	}
	favoriteSet := make(map[string]bool, len(favorites))
	for _, id := range favorites {
		favoriteSet[id] = true
	}

	cards := make([]*domain.VocabularyCard, 0, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return newServiceError("initialize_cards", "invalid catalog item", err)
		}
		card := s.loadCard(ctx, item, now)
		card.Favorite = favoriteSet[item.ID]
		cards = append(cards, card)
	}

	s.mu.Lock()
	s.items = append([]domain.VocabularyItem(nil), items...)
	s.cards = cards
	snapshot := s.cloneCardsLocked()
	s.mu.Unlock()

	s.logger.Info("card collection initialized", "card_count", len(cards))
	s.emit(events.EventCardsChanged, snapshot)
	return nil
}

func (s *Scheduler) cloneCardsLocked() []*domain.VocabularyCard {
	out := make([]*domain.VocabularyCard, len(s.cards))
	for i, c := range s.cards {
		out[i] = c.Clone()
	}
	return out
}

// Cards returns a snapshot of the full collection in catalog order.
func (s *Scheduler) Cards() []*domain.VocabularyCard {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cloneCardsLocked()
}

// Card returns a snapshot of the card for the given item ID.
func (s *Scheduler) Card(itemID string) (*domain.VocabularyCard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	card := s.findLocked(itemID)
	if card == nil {
		return nil, ErrCardNotFound
	}
	return card.Clone(), nil
}

func (s *Scheduler) findLocked(itemID string) *domain.VocabularyCard {
	for _, c := range s.cards {
		if c.Item.ID == itemID {
			return c
		}
	}
	return nil
}

// DueCards returns every card whose next review time has passed, earliest
// overdue first.
func (s *Scheduler) DueCards() []*domain.VocabularyCard {
	now := s.nowFn()

	s.mu.Lock()
	defer s.mu.Unlock()

	due := make([]*domain.VocabularyCard, 0)
	for _, c := range s.cards {
		if c.IsDue(now) {
			due = append(due, c.Clone())
		}
	}
	sort.SliceStable(due, func(i, j int) bool {
		return due[i].NextReviewAt.Before(due[j].NextReviewAt)
	})
	return due
}

// NewCards returns cards at level NEW in catalog order, truncated to limit.
// A non-positive limit returns all of them.
func (s *Scheduler) NewCards(limit int) []*domain.VocabularyCard {
	s.mu.Lock()
	defer s.mu.Unlock()

	fresh := make([]*domain.VocabularyCard, 0)
	for _, c := range s.cards {
		if c.Level == domain.LevelNew {
			fresh = append(fresh, c.Clone())
			if limit > 0 && len(fresh) == limit {
				break
			}
		}
	}
	return fresh
}

// ReviewCards returns cards at level REVIEW, ascending by next review time.
func (s *Scheduler) ReviewCards() []*domain.VocabularyCard {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*domain.VocabularyCard, 0)
	for _, c := range s.cards {
		if c.Level == domain.LevelReview {
			out = append(out, c.Clone())
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].NextReviewAt.Before(out[j].NextReviewAt)
	})
	return out
}

// FavoriteCards returns the favorited cards in catalog order.
func (s *Scheduler) FavoriteCards() []*domain.VocabularyCard {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*domain.VocabularyCard, 0)
	for _, c := range s.cards {
		if c.Favorite {
			out = append(out, c.Clone())
		}
	}
	return out
}

// CardsByTag returns cards carrying the given free-form tag, catalog order.
func (s *Scheduler) CardsByTag(tag string) []*domain.VocabularyCard {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*domain.VocabularyCard, 0)
	for _, c := range s.cards {
		if c.HasTag(tag) {
			out = append(out, c.Clone())
		}
	}
	return out
}

// ReviewCard applies one review to the card for itemID and returns the
// updated card. The SRS algorithm computes the new scheduling state; the
// updated card replaces the old one in the collection, is persisted, and is
// folded into the active study session if one is running.
func (s *Scheduler) ReviewCard(
	ctx context.Context,
	itemID string,
	difficulty domain.ReviewDifficulty,
	responseTimeMs float64,
) (*domain.VocabularyCard, error) {
	now := s.nowFn()

	s.mu.Lock()

	card := s.findLocked(itemID)
	if card == nil {
		s.mu.Unlock()
		return nil, ErrCardNotFound
	}

	updated, err := s.alg.CalculateNextReview(card, difficulty, responseTimeMs, now)
	if err != nil {
		s.mu.Unlock()
		return nil, newServiceError("review_card", "failed to calculate next review", err)
	}

	for i, c := range s.cards {
		if c.Item.ID == itemID {
			s.cards[i] = updated
			break
		}
	}
	s.persistCard(ctx, updated)

	if s.session != nil {
		s.session.RecordCard(itemID, difficulty.IsSuccess(), responseTimeMs)
	}

	result := updated.Clone()
	snapshot := s.cloneCardsLocked()
	s.mu.Unlock()

	s.logger.Debug("card reviewed",
		"item_id", itemID,
		"difficulty", string(difficulty),
		"level", string(result.Level),
		"interval_days", result.IntervalDays)
	s.emit(events.EventCardsChanged, snapshot)
	return result, nil
}

// StartSession begins a study session, snapshotting the number of currently
// due cards as the session total. Any session still active is discarded.
func (s *Scheduler) StartSession(sessionType domain.SessionType) *domain.StudySession {
	now := s.nowFn()
	dueCount := len(s.DueCards())

	s.mu.Lock()
	if s.session != nil {
		s.logger.Warn("starting session while one is active, discarding previous",
			"previous_session_id", s.session.ID)
	}
	s.session = domain.NewStudySession(sessionType, dueCount, now)
	snapshot := s.session.Clone()
	s.mu.Unlock()

	s.logger.Info("study session started",
		"session_id", snapshot.ID,
		"session_type", string(sessionType),
		"due_cards", dueCount)
	s.emit(events.EventSessionChanged, snapshot)
	return snapshot
}

// Session returns a snapshot of the active session, or nil when none is
// running.
func (s *Scheduler) Session() *domain.StudySession {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return nil
	}
	return s.session.Clone()
}

// History returns the finished sessions, oldest first. Retained in memory
// only, for statistics.
func (s *Scheduler) History() []*domain.StudySession {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*domain.StudySession, len(s.history))
	for i, sess := range s.history {
		out[i] = sess.Clone()
	}
	return out
}

// EndSession finalizes the active session: sets its end time, appends it to
// the in-memory history, recalculates the daily streak and clears the active
// session. Returns nil when no session was active.
func (s *Scheduler) EndSession(ctx context.Context) *domain.StudySession {
	now := s.nowFn()

	s.mu.Lock()
	if s.session == nil {
		s.mu.Unlock()
		return nil
	}

	ended := now
	s.session.EndedAt = &ended
	s.history = append(s.history, s.session)
	finished := s.session.Clone()
	s.session = nil

	s.updateStreakLocked(ctx, now)
	s.mu.Unlock()

	s.logger.Info("study session ended",
		"session_id", finished.ID,
		"cards_studied", len(finished.CardsStudied),
		"correct_answers", finished.CorrectAnswers)
	s.emit(events.EventSessionChanged, finished)
	return finished
}

// ToggleFavorite flips the favorite flag for the given item, updating both
// the persisted favorites set and the in-memory card. Toggling twice returns
// the flag to its original value.
func (s *Scheduler) ToggleFavorite(ctx context.Context, itemID string) (*domain.VocabularyCard, error) {
	s.mu.Lock()

	card := s.findLocked(itemID)
	if card == nil {
		s.mu.Unlock()
		return nil, ErrCardNotFound
	}

	card.Favorite = !card.Favorite

	favorites := make([]string, 0)
	for _, c := range s.cards {
		if c.Favorite {
			favorites = append(favorites, c.Item.ID)
		}
	}
	if err := s.prefs.SetStringSet(ctx, prefKeyFavorites, favorites); err != nil {
		s.logger.Error("failed to persist favorites", "error", err)
	}
	if err := s.prefs.Commit(ctx); err != nil {
		s.logger.Error("failed to commit favorites", "error", err)
	}

	result := card.Clone()
	snapshot := s.cloneCardsLocked()
	s.mu.Unlock()

	s.emit(events.EventCardsChanged, snapshot)
	return result, nil
}

// ResetProgress reinitializes every card to its NEW defaults and clears the
// session history and persisted streak and card state. The replacement is
// atomic from the caller's perspective: no intermediate state is observable.
func (s *Scheduler) ResetProgress(ctx context.Context) error {
	now := s.nowFn()

	s.mu.Lock()

	cards := make([]*domain.VocabularyCard, 0, len(s.items))
	for _, item := range s.items {
		card, err := domain.NewVocabularyCard(item, now)
		if err != nil {
			s.mu.Unlock()
			return newServiceError("reset_progress", "failed to rebuild card", err)
		}
		cards = append(cards, card)
	}
	s.cards = cards
	s.session = nil
	s.history = s.history[:0]

	s.currentStreak = 0
	s.longestStreak = 0
	s.lastStudyDay = time.Time{}

	if err := s.prefs.DeletePrefix(ctx, cardPrefPrefix); err != nil {
		s.logger.Error("failed to clear card preferences", "error", err)
	}
	for _, key := range []string{prefKeyFavorites, prefKeyStreakCurrent, prefKeyStreakLongest, prefKeyLastStudyDay} {
		if err := s.prefs.Delete(ctx, key); err != nil {
			s.logger.Error("failed to clear preference", "key", key, "error", err)
		}
	}
	if err := s.prefs.Commit(ctx); err != nil {
		s.logger.Error("failed to commit progress reset", "error", err)
	}

	snapshot := s.cloneCardsLocked()
	s.mu.Unlock()

	s.logger.Info("vocabulary progress reset", "card_count", len(cards))
	s.emit(events.EventCardsChanged, snapshot)
	return nil
}
