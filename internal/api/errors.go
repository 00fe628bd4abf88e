package api

import (
	"errors"
	"net/http"

	"github.com/adlamlearn/adlam-api/internal/domain/srs"
	"github.com/adlamlearn/adlam-api/internal/service/review"
)

// MapErrorToStatusCode translates service-level errors into HTTP status
// codes. Unknown errors map to 500; their details never reach the client.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, review.ErrCardNotFound):
		return http.StatusNotFound
	case errors.Is(err, srs.ErrInvalidDifficulty),
		errors.Is(err, srs.ErrNegativeResponseMs):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a client-safe message for the given error.
func GetSafeErrorMessage(err error) string {
	switch {
	case errors.Is(err, review.ErrCardNotFound):
		return "Card not found"
	case errors.Is(err, srs.ErrInvalidDifficulty):
		return "Invalid review difficulty"
	case errors.Is(err, srs.ErrNegativeResponseMs):
		return "Response time cannot be negative"
	default:
		return "Internal server error"
	}
}
