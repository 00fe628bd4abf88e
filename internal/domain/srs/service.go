package srs

import (
	"errors"
	"time"

	"github.com/adlamlearn/adlam-api/internal/domain"
)

// Common errors
var (
	ErrNilCard            = errors.New("vocabulary card cannot be nil")
	ErrInvalidDifficulty  = errors.New("invalid review difficulty")
	ErrNegativeResponseMs = errors.New("response time cannot be negative")
)

// Service defines the interface for SRS algorithm operations.
type Service interface {
	// CalculateNextReview computes a new card based on a review. The returned
	// card is a fresh value; the input card is not modified.
	CalculateNextReview(
		card *domain.VocabularyCard,
		difficulty domain.ReviewDifficulty,
		responseTimeMs float64,
		now time.Time,
	) (*domain.VocabularyCard, error)
}

// defaultService is the standard implementation of the Service interface.
type defaultService struct {
	params *Params
}

// NewDefaultService creates a new SRS service with default parameters.
func NewDefaultService() Service {
	return &defaultService{
		params: NewDefaultParams(),
	}
}

// NewServiceWithParams creates a new SRS service with custom parameters.
func NewServiceWithParams(params *Params) Service {
	return &defaultService{
		params: params,
	}
}

// CalculateNextReview implements the Service interface.
func (s *defaultService) CalculateNextReview(
	card *domain.VocabularyCard,
	difficulty domain.ReviewDifficulty,
	responseTimeMs float64,
	now time.Time,
) (*domain.VocabularyCard, error) {
	if card == nil {
		return nil, ErrNilCard
	}

	if !difficulty.IsValid() {
		return nil, ErrInvalidDifficulty
	}

	if responseTimeMs < 0 {
		return nil, ErrNegativeResponseMs
	}

	return calculateNextCard(card, difficulty, responseTimeMs, now, s.params), nil
}
