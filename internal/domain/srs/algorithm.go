package srs

import (
	"math"
	"time"

	"github.com/adlamlearn/adlam-api/internal/domain"
)

// calculateNewEaseFactor determines the new ease factor based on the review
// difficulty. The ease factor represents how easy the card is for the learner;
// higher values make intervals grow faster. The result is clamped to
// params.MinEaseFactor from below; there is no upper bound, so consistently
// easy cards keep accelerating.
func calculateNewEaseFactor(
	currentEF float64,
	difficulty domain.ReviewDifficulty,
	params *Params,
) float64 {
	newEF := currentEF + params.EaseAdjustment[difficulty]

	if newEF < params.MinEaseFactor {
		newEF = params.MinEaseFactor
	}

	return newEF
}

// calculateNewInterval determines the next interval in days from the previous
// interval and the already-updated ease factor.
//
// Algorithm behavior:
//   - "Again" resets the interval to a single day
//   - "Hard" shrinks the interval by HardIntervalFactor, floored at 1 day
//   - "Good" multiplies the interval by the new ease factor
//   - "Easy" multiplies by the new ease factor and the EasyBonus on top
//
// Fractions are truncated toward zero, matching floor for the non-negative
// values that occur here.
func calculateNewInterval(
	currentInterval int,
	newEaseFactor float64,
	difficulty domain.ReviewDifficulty,
	params *Params,
) int {
	switch difficulty {
	case domain.ReviewAgain:
		return 1
	case domain.ReviewHard:
		shrunk := int(math.Floor(float64(currentInterval) * params.HardIntervalFactor))
		if shrunk < 1 {
			return 1
		}
		return shrunk
	case domain.ReviewEasy:
		return int(math.Floor(float64(currentInterval) * newEaseFactor * params.EasyBonus))
	default: // Good
		return int(math.Floor(float64(currentInterval) * newEaseFactor))
	}
}

// calculateMasteryLevel determines the card's new mastery bucket.
//
// repetitions is the card's repetition count BEFORE this review is counted.
// Checking the pre-increment value means a card needs one successful review
// beyond the nominal threshold to cross into REVIEW or MASTERED; this matches
// the shipped scheduling behavior and must not be "fixed".
//
// Rules, evaluated in order:
//   - "Again" always demotes to LEARNING, whatever the prior level
//   - at MasteredRepetitions or more with a successful recall: MASTERED
//   - at ReviewRepetitions or more with a successful recall: REVIEW
//   - otherwise LEARNING
func calculateMasteryLevel(
	repetitions int,
	difficulty domain.ReviewDifficulty,
	params *Params,
) domain.MasteryLevel {
	if difficulty == domain.ReviewAgain {
		return domain.LevelLearning
	}

	if repetitions >= params.MasteredRepetitions && difficulty.IsSuccess() {
		return domain.LevelMastered
	}

	if repetitions >= params.ReviewRepetitions && difficulty.IsSuccess() {
		return domain.LevelReview
	}

	return domain.LevelLearning
}

// calculateNextCard creates a new VocabularyCard with updated scheduling state
// for one review. It follows the immutable update pattern: the input card is
// never modified, a fresh copy carries the new state.
//
// The full update, in order: new ease factor, new interval computed from the
// previous interval and the NEW ease, mastery level from the pre-increment
// repetition count, next review at now plus the new interval in days, streak
// and review counters, and the running mean response time
// (oldAvg*oldTotal + responseTime) / (oldTotal+1).
func calculateNextCard(
	card *domain.VocabularyCard,
	difficulty domain.ReviewDifficulty,
	responseTimeMs float64,
	now time.Time,
	params *Params,
) *domain.VocabularyCard {
	next := card.Clone()

	next.EaseFactor = calculateNewEaseFactor(card.EaseFactor, difficulty, params)
	next.IntervalDays = calculateNewInterval(card.IntervalDays, next.EaseFactor, difficulty, params)
	next.Level = calculateMasteryLevel(card.Repetitions, difficulty, params)

	next.NextReviewAt = now.Add(time.Duration(next.IntervalDays) * 24 * time.Hour)
	next.LastReviewedAt = &now

	if difficulty.IsSuccess() {
		next.CorrectStreak = card.CorrectStreak + 1
		next.CorrectReviews = card.CorrectReviews + 1
	} else {
		next.CorrectStreak = 0
	}

	next.Repetitions = card.Repetitions + 1
	next.TotalReviews = card.TotalReviews + 1
	next.AvgResponseTimeMs = (card.AvgResponseTimeMs*float64(card.TotalReviews) + responseTimeMs) /
		float64(card.TotalReviews+1)

	return next
}
