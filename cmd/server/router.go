package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/adlamlearn/adlam-api/internal/api"
	apimiddleware "github.com/adlamlearn/adlam-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(apimiddleware.Trace)
	r.Use(apimiddleware.RequestLogger(app.logger))

	alphabetHandler := api.NewAlphabetHandler(app.engine, app.cfg.Quiz.QuestionCount, app.logger)
	vocabularyHandler := api.NewVocabularyHandler(app.scheduler, app.logger)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/alphabet", func(r chi.Router) {
			r.Get("/progress", alphabetHandler.GetProgress)
			r.Get("/letters", alphabetHandler.ListLetters)
			r.Get("/letters/{id}", alphabetHandler.GetLetter)
			r.Get("/current", alphabetHandler.GetCurrentLetter)
			r.Post("/quiz/visual", alphabetHandler.StartVisualQuiz)
			r.Post("/quiz/audio", alphabetHandler.StartAudioQuiz)
			r.Post("/quiz/answer", alphabetHandler.SubmitAnswer)
			r.Get("/quiz/mastery", alphabetHandler.CheckMastery)
			r.Post("/quiz/reset", alphabetHandler.ResetQuiz)
			r.Post("/advance-phase", alphabetHandler.AdvancePhase)
			r.Post("/advance-letter", alphabetHandler.AdvanceLetter)
		})

		r.Route("/vocabulary", func(r chi.Router) {
			r.Get("/cards/due", vocabularyHandler.ListDueCards)
			r.Get("/cards/new", vocabularyHandler.ListNewCards)
			r.Get("/cards/review", vocabularyHandler.ListReviewCards)
			r.Get("/cards/favorites", vocabularyHandler.ListFavoriteCards)
			r.Post("/cards/{id}/review", vocabularyHandler.ReviewCard)
			r.Post("/cards/{id}/favorite", vocabularyHandler.ToggleFavorite)
			r.Post("/sessions", vocabularyHandler.StartSession)
			r.Post("/sessions/end", vocabularyHandler.EndSession)
			r.Get("/statistics", vocabularyHandler.GetStatistics)
			r.Post("/reset", vocabularyHandler.ResetProgress)
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
