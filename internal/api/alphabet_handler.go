package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/adlamlearn/adlam-api/internal/api/shared"
	"github.com/adlamlearn/adlam-api/internal/domain"
	"github.com/adlamlearn/adlam-api/internal/service/alphabet"
)

// ProgressResponse is the alphabet progression snapshot returned to clients.
type ProgressResponse struct {
	LetterIndex      int      `json:"letter_index"`
	Phase            string   `json:"phase"`
	MasteredLetters  []string `json:"mastered_letters"`
	TotalLetters     int      `json:"total_letters"`
	PercentComplete  float64  `json:"percent_complete"`
	AlphabetComplete bool     `json:"alphabet_complete"`
}

// AlphabetHandler handles alphabet course HTTP requests.
type AlphabetHandler struct {
	engine        *alphabet.Engine
	questionCount int
	logger        *slog.Logger
}

// NewAlphabetHandler creates a new AlphabetHandler. questionCount is how
// many questions each quiz run generates; non-positive values fall back to
// the engine default.
func NewAlphabetHandler(engine *alphabet.Engine, questionCount int, logger *slog.Logger) *AlphabetHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for AlphabetHandler")
	}
	return &AlphabetHandler{
		engine:        engine,
		questionCount: questionCount,
		logger:        logger.With(slog.String("component", "alphabet_handler")),
	}
}

func (h *AlphabetHandler) progressResponse() ProgressResponse {
	progress := h.engine.Progress()
	return ProgressResponse{
		LetterIndex:      progress.LetterIndex,
		Phase:            string(progress.Phase),
		MasteredLetters:  progress.MasteredIDs(),
		TotalLetters:     progress.TotalLetters,
		PercentComplete:  progress.PercentComplete(),
		AlphabetComplete: progress.IsComplete(),
	}
}

// GetProgress handles GET /alphabet/progress requests.
func (h *AlphabetHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, h.progressResponse())
}

// ListLetters handles GET /alphabet/letters requests. The catalog is
// returned in teaching order.
func (h *AlphabetHandler) ListLetters(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, h.engine.Letters())
}

// GetLetter handles GET /alphabet/letters/{id} requests.
func (h *AlphabetHandler) GetLetter(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	letter, ok := h.engine.LetterByID(id)
	if !ok {
		shared.RespondWithError(w, r, http.StatusNotFound, "Letter not found")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, letter)
}

// GetCurrentLetter handles GET /alphabet/current requests. Responds 204
// when the alphabet is complete and no letter is active.
func (h *AlphabetHandler) GetCurrentLetter(w http.ResponseWriter, r *http.Request) {
	letter := h.engine.CurrentLetter()
	if letter == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, letter)
}

// StartVisualQuiz handles POST /alphabet/quiz/visual requests.
func (h *AlphabetHandler) StartVisualQuiz(w http.ResponseWriter, r *http.Request) {
	h.startQuiz(w, r, h.engine.StartVisualQuiz)
}

// StartAudioQuiz handles POST /alphabet/quiz/audio requests.
func (h *AlphabetHandler) StartAudioQuiz(w http.ResponseWriter, r *http.Request) {
	h.startQuiz(w, r, h.engine.StartAudioQuiz)
}

func (h *AlphabetHandler) startQuiz(
	w http.ResponseWriter,
	r *http.Request,
	start func(count int) []domain.Question,
) {
	questions := start(h.questionCount)
	if len(questions) == 0 {
		shared.RespondWithError(w, r, http.StatusConflict,
			"No current letter; the alphabet course is complete")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, questions)
}

// SubmitAnswerRequest is the request body for answering a quiz question.
type SubmitAnswerRequest struct {
	QuestionNumber int    `json:"question_number" validate:"required,gt=0"`
	LetterID       string `json:"letter_id" validate:"required"`
}

// SubmitAnswerResponse reports the outcome of one answered question.
type SubmitAnswerResponse struct {
	Result string `json:"result"`
}

// SubmitAnswer handles POST /alphabet/quiz/answer requests. A question
// number that does not match the active quiz yields 404; quiz state is not
// mutated in that case.
func (h *AlphabetHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	var req SubmitAnswerRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}
	if err := validate.Struct(&req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request fields", err)
		return
	}

	result := h.engine.SubmitAnswer(req.QuestionNumber, req.LetterID)
	if result == domain.AnswerError {
		shared.RespondWithError(w, r, http.StatusNotFound, "Question not found in active quiz")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, SubmitAnswerResponse{Result: string(result)})
}

// CheckMastery handles GET /alphabet/quiz/mastery requests.
func (h *AlphabetHandler) CheckMastery(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, h.engine.CheckMastery())
}

// AdvanceResponse reports the outcome of a progression transition together
// with the resulting progress snapshot.
type AdvanceResponse struct {
	Advanced bool             `json:"advanced"`
	Progress ProgressResponse `json:"progress"`
}

// AdvancePhase handles POST /alphabet/advance-phase requests.
func (h *AlphabetHandler) AdvancePhase(w http.ResponseWriter, r *http.Request) {
	more := h.engine.AdvancePhase(r.Context())
	shared.RespondWithJSON(w, r, http.StatusOK, AdvanceResponse{
		Advanced: more,
		Progress: h.progressResponse(),
	})
}

// AdvanceLetter handles POST /alphabet/advance-letter requests. Advanced is
// false once the alphabet is complete; the transition still happened.
func (h *AlphabetHandler) AdvanceLetter(w http.ResponseWriter, r *http.Request) {
	more := h.engine.AdvanceLetter(r.Context())
	shared.RespondWithJSON(w, r, http.StatusOK, AdvanceResponse{
		Advanced: more,
		Progress: h.progressResponse(),
	})
}

// ResetQuiz handles POST /alphabet/quiz/reset requests.
func (h *AlphabetHandler) ResetQuiz(w http.ResponseWriter, r *http.Request) {
	h.engine.ResetQuiz()
	w.WriteHeader(http.StatusNoContent)
}
