package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/adlamlearn/adlam-api/internal/api/shared"
	"github.com/adlamlearn/adlam-api/internal/domain"
	"github.com/adlamlearn/adlam-api/internal/service/review"
)

// validate checks request body structs across all handlers.
var validate = validator.New()

// VocabularyHandler handles vocabulary review HTTP requests.
type VocabularyHandler struct {
	scheduler *review.Scheduler
	logger    *slog.Logger
}

// NewVocabularyHandler creates a new VocabularyHandler.
func NewVocabularyHandler(scheduler *review.Scheduler, logger *slog.Logger) *VocabularyHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for VocabularyHandler")
	}
	return &VocabularyHandler{
		scheduler: scheduler,
		logger:    logger.With(slog.String("component", "vocabulary_handler")),
	}
}

// ListDueCards handles GET /vocabulary/cards/due requests. Cards are ordered
// earliest overdue first.
func (h *VocabularyHandler) ListDueCards(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, h.scheduler.DueCards())
}

// ListNewCards handles GET /vocabulary/cards/new?limit=N requests.
func (h *VocabularyHandler) ListNewCards(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid limit parameter")
			return
		}
		limit = parsed
	}
	shared.RespondWithJSON(w, r, http.StatusOK, h.scheduler.NewCards(limit))
}

// ListReviewCards handles GET /vocabulary/cards/review requests.
func (h *VocabularyHandler) ListReviewCards(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, h.scheduler.ReviewCards())
}

// ListFavoriteCards handles GET /vocabulary/cards/favorites requests.
func (h *VocabularyHandler) ListFavoriteCards(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, h.scheduler.FavoriteCards())
}

// ReviewCardRequest is the request body for submitting a card review.
type ReviewCardRequest struct {
	Difficulty     string  `json:"difficulty" validate:"required,oneof=again hard good easy"`
	ResponseTimeMs float64 `json:"response_time_ms" validate:"gte=0"`
}

// ReviewCard handles POST /vocabulary/cards/{id}/review requests. It applies
// one review to the card and returns the updated scheduling state.
func (h *VocabularyHandler) ReviewCard(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "id")
	if itemID == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Card ID is required")
		return
	}

	var req ReviewCardRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}
	if err := validate.Struct(&req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request fields", err)
		return
	}

	card, err := h.scheduler.ReviewCard(
		r.Context(),
		itemID,
		domain.ReviewDifficulty(req.Difficulty),
		req.ResponseTimeMs,
	)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, card)
}

// ToggleFavorite handles POST /vocabulary/cards/{id}/favorite requests.
func (h *VocabularyHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "id")
	if itemID == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Card ID is required")
		return
	}

	card, err := h.scheduler.ToggleFavorite(r.Context(), itemID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, card)
}

// StartSessionRequest is the request body for starting a study session.
type StartSessionRequest struct {
	Type string `json:"type" validate:"required,oneof=due_review new_cards mixed favorites"`
}

// StartSession handles POST /vocabulary/sessions requests.
func (h *VocabularyHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	var req StartSessionRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}
	if err := validate.Struct(&req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request fields", err)
		return
	}

	session := h.scheduler.StartSession(domain.SessionType(req.Type))
	shared.RespondWithJSON(w, r, http.StatusCreated, session)
}

// EndSession handles POST /vocabulary/sessions/end requests. Responds 204
// when no session was active.
func (h *VocabularyHandler) EndSession(w http.ResponseWriter, r *http.Request) {
	session := h.scheduler.EndSession(r.Context())
	if session == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, session)
}

// GetStatistics handles GET /vocabulary/statistics requests.
func (h *VocabularyHandler) GetStatistics(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, h.scheduler.Statistics())
}

// ResetProgress handles POST /vocabulary/reset requests. Every card returns
// to its NEW defaults and streak state is cleared.
func (h *VocabularyHandler) ResetProgress(w http.ResponseWriter, r *http.Request) {
	if err := h.scheduler.ResetProgress(r.Context()); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to reset progress", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
