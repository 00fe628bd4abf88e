package api

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/adlamlearn/adlam-api/internal/domain/srs"
	"github.com/adlamlearn/adlam-api/internal/service/review"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "card not found maps to 404", err: review.ErrCardNotFound, expected: http.StatusNotFound},
		{name: "invalid difficulty maps to 400", err: srs.ErrInvalidDifficulty, expected: http.StatusBadRequest},
		{name: "negative response time maps to 400", err: srs.ErrNegativeResponseMs, expected: http.StatusBadRequest},
		{name: "wrapped errors unwrap", err: errors.Join(errors.New("context"), review.ErrCardNotFound), expected: http.StatusNotFound},
		{name: "unknown errors map to 500", err: errors.New("disk on fire"), expected: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Card not found", GetSafeErrorMessage(review.ErrCardNotFound))
	assert.Equal(t, "Invalid review difficulty", GetSafeErrorMessage(srs.ErrInvalidDifficulty))

	// Internal details must never leak to clients.
	msg := GetSafeErrorMessage(errors.New("pq: connection refused on 10.0.0.5"))
	assert.Equal(t, "Internal server error", msg)
}
