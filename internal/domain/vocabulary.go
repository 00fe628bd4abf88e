package domain

import (
	"errors"
	"time"
)

// Vocabulary validation errors
var (
	// ErrItemIDEmpty is returned when a vocabulary item ID is empty.
	ErrItemIDEmpty = errors.New("vocabulary item ID cannot be empty")

	// ErrItemWordEmpty is returned when a vocabulary item has no word.
	ErrItemWordEmpty = errors.New("vocabulary item word cannot be empty")

	// ErrInvalidEaseFactor is returned when a card's ease factor drops below the floor.
	ErrInvalidEaseFactor = errors.New("ease factor must be at least 1.3")

	// ErrInvalidInterval is returned when a card's interval is below one day.
	ErrInvalidInterval = errors.New("interval must be at least 1 day")

	// ErrInvalidReviewCounts is returned when correct reviews exceed total reviews.
	ErrInvalidReviewCounts = errors.New("correct reviews cannot exceed total reviews")

	// ErrInvalidDifficulty is returned for an unknown review difficulty.
	ErrInvalidDifficulty = errors.New("invalid review difficulty")
)

// Default scheduling values for a card that has never been reviewed.
const (
	DefaultEaseFactor   = 2.5
	MinEaseFactor       = 1.3
	DefaultIntervalDays = 1
)

// MasteryLevel is the coarse progress bucket of a vocabulary card. Levels
// trend upward through NEW → LEARNING → REVIEW → MASTERED, though an "again"
// review drops any card back to LEARNING.
type MasteryLevel string

// Mastery levels.
const (
	LevelNew      MasteryLevel = "new"
	LevelLearning MasteryLevel = "learning"
	LevelReview   MasteryLevel = "review"
	LevelMastered MasteryLevel = "mastered"
)

// IsValid reports whether l is a known mastery level.
func (l MasteryLevel) IsValid() bool {
	switch l {
	case LevelNew, LevelLearning, LevelReview, LevelMastered:
		return true
	default:
		return false
	}
}

// ReviewDifficulty is the learner's self-assessment of a review, ordered
// Again < Hard < Good < Easy. Good and Easy count as successful recalls.
type ReviewDifficulty string

// Review difficulties.
const (
	ReviewAgain ReviewDifficulty = "again"
	ReviewHard  ReviewDifficulty = "hard"
	ReviewGood  ReviewDifficulty = "good"
	ReviewEasy  ReviewDifficulty = "easy"
)

// rank maps a difficulty onto its ordinal position, or -1 if unknown.
func (d ReviewDifficulty) rank() int {
	switch d {
	case ReviewAgain:
		return 0
	case ReviewHard:
		return 1
	case ReviewGood:
		return 2
	case ReviewEasy:
		return 3
	default:
		return -1
	}
}

// IsValid reports whether d is a known review difficulty.
func (d ReviewDifficulty) IsValid() bool {
	return d.rank() >= 0
}

// IsSuccess reports whether d counts as a successful recall, i.e. Good or
// Easy. Streaks, correct-review counts and mastery promotion all key off this.
func (d ReviewDifficulty) IsSuccess() bool {
	return d.rank() >= ReviewGood.rank()
}

// VocabularyItem is an immutable entry of the vocabulary catalog.
type VocabularyItem struct {
	ID          string `json:"id"`
	Word        string `json:"word"`
	Translation string `json:"translation"`
	Category    string `json:"category"`
}

// Validate checks if the VocabularyItem has valid data.
func (i VocabularyItem) Validate() error {
	if i.ID == "" {
		return ErrItemIDEmpty
	}

	if i.Word == "" {
		return ErrItemWordEmpty
	}

	return nil
}

// VocabularyCard tracks a learner's spaced-repetition state for one
// vocabulary item. It implements an SM-2 derived schedule: the ease factor
// controls how fast intervals grow and the mastery level summarizes progress.
type VocabularyCard struct {
	Item              VocabularyItem `json:"item"`
	Level             MasteryLevel   `json:"level"`
	Repetitions       int            `json:"repetitions"`
	EaseFactor        float64        `json:"ease_factor"`
	IntervalDays      int            `json:"interval_days"`
	NextReviewAt      time.Time      `json:"next_review_at"`
	LastReviewedAt    *time.Time     `json:"last_reviewed_at,omitempty"`
	CorrectStreak     int            `json:"correct_streak"`
	TotalReviews      int            `json:"total_reviews"`
	CorrectReviews    int            `json:"correct_reviews"`
	AvgResponseTimeMs float64        `json:"avg_response_time_ms"`
	CreatedAt         time.Time      `json:"created_at"`
	Favorite          bool           `json:"favorite"`
	Tags              []string       `json:"tags,omitempty"`
}

// NewVocabularyCard creates a card for an item with default scheduling
// values: level NEW, ease 2.5, a one day interval and an immediate next
// review so new cards are available right away.
func NewVocabularyCard(item VocabularyItem, now time.Time) (*VocabularyCard, error) {
	card := &VocabularyCard{
		Item:         item,
		Level:        LevelNew,
		Repetitions:  0,
		EaseFactor:   DefaultEaseFactor,
		IntervalDays: DefaultIntervalDays,
		NextReviewAt: now,
		CreatedAt:    now,
	}

	if err := card.Validate(); err != nil {
		return nil, err
	}

	return card, nil
}

// IsDue reports whether the card's next review time has passed.
func (c *VocabularyCard) IsDue(now time.Time) bool {
	return !c.NextReviewAt.After(now)
}

// Accuracy returns the fraction of reviews that were successful, or 0 when
// the card has never been reviewed.
func (c *VocabularyCard) Accuracy() float64 {
	if c.TotalReviews == 0 {
		return 0
	}
	return float64(c.CorrectReviews) / float64(c.TotalReviews)
}

// HasTag reports whether the card carries the given free-form tag.
func (c *VocabularyCard) HasTag(tag string) bool {
	for _, t := range c.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the card.
func (c *VocabularyCard) Clone() *VocabularyCard {
	clone := *c
	if c.LastReviewedAt != nil {
		last := *c.LastReviewedAt
		clone.LastReviewedAt = &last
	}
	if c.Tags != nil {
		clone.Tags = append([]string(nil), c.Tags...)
	}
	return &clone
}

// Validate checks if the VocabularyCard has valid data.
// Returns an error if any scheduling invariant is violated.
func (c *VocabularyCard) Validate() error {
	if err := c.Item.Validate(); err != nil {
		return err
	}

	if !c.Level.IsValid() {
		return errors.New("invalid mastery level")
	}

	if c.EaseFactor < MinEaseFactor {
		return ErrInvalidEaseFactor
	}

	if c.IntervalDays < 1 {
		return ErrInvalidInterval
	}

	if c.CorrectReviews > c.TotalReviews {
		return ErrInvalidReviewCounts
	}

	return nil
}
