package srs

import (
	"github.com/adlamlearn/adlam-api/internal/domain"
)

// Params defines all configurable parameters for the SRS algorithm.
type Params struct {
	// Core limits
	MinEaseFactor float64

	// Per-difficulty adjustment applied to the ease factor before clamping.
	EaseAdjustment map[domain.ReviewDifficulty]float64

	// Interval growth controls. Hard reviews shrink the interval by
	// HardIntervalFactor; easy reviews grow it by the ease factor times
	// EasyBonus; good reviews grow it by the ease factor alone.
	HardIntervalFactor float64
	EasyBonus          float64

	// Repetition thresholds for mastery promotion. A card is promoted when
	// its repetition count before the current review has reached the
	// threshold and the review was successful.
	ReviewRepetitions   int
	MasteredRepetitions int
}

// ParamsConfig allows overriding the default parameters when creating a new
// Params instance. Zero values leave the corresponding default in place.
type ParamsConfig struct {
	MinEaseFactor float64

	AgainEaseAdjustment float64
	HardEaseAdjustment  float64
	GoodEaseAdjustment  float64
	EasyEaseAdjustment  float64

	HardIntervalFactor float64
	EasyBonus          float64

	ReviewRepetitions   int
	MasteredRepetitions int
}

// NewDefaultParams creates a new Params instance with default values.
// The defaults collapse the classic SM-2 0-5 grade scale to four buckets:
// a failed recall ("again") costs far more ease than a strained one ("hard"),
// and only "easy" earns ease back.
func NewDefaultParams() *Params {
	return &Params{
		MinEaseFactor: domain.MinEaseFactor,

		EaseAdjustment: map[domain.ReviewDifficulty]float64{
			domain.ReviewAgain: -0.80,
			domain.ReviewHard:  -0.15,
			domain.ReviewGood:  0.0,
			domain.ReviewEasy:  0.15,
		},

		HardIntervalFactor: 0.8,
		EasyBonus:          1.3,

		ReviewRepetitions:   3,
		MasteredRepetitions: 6,
	}
}

// NewParams creates a new Params instance with custom configuration.
func NewParams(config ParamsConfig) *Params {
	params := NewDefaultParams()

	if config.MinEaseFactor > 0 {
		params.MinEaseFactor = config.MinEaseFactor
	}

	if config.AgainEaseAdjustment != 0 {
		params.EaseAdjustment[domain.ReviewAgain] = config.AgainEaseAdjustment
	}
	if config.HardEaseAdjustment != 0 {
		params.EaseAdjustment[domain.ReviewHard] = config.HardEaseAdjustment
	}
	if config.GoodEaseAdjustment != 0 {
		params.EaseAdjustment[domain.ReviewGood] = config.GoodEaseAdjustment
	}
	if config.EasyEaseAdjustment != 0 {
		params.EaseAdjustment[domain.ReviewEasy] = config.EasyEaseAdjustment
	}

	if config.HardIntervalFactor > 0 {
		params.HardIntervalFactor = config.HardIntervalFactor
	}
	if config.EasyBonus > 0 {
		params.EasyBonus = config.EasyBonus
	}

	if config.ReviewRepetitions > 0 {
		params.ReviewRepetitions = config.ReviewRepetitions
	}
	if config.MasteredRepetitions > 0 {
		params.MasteredRepetitions = config.MasteredRepetitions
	}

	return params
}
