package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/adlamlearn/adlam-api/internal/catalog"
	"github.com/adlamlearn/adlam-api/internal/domain/srs"
	"github.com/adlamlearn/adlam-api/internal/service/alphabet"
	"github.com/adlamlearn/adlam-api/internal/service/review"
	"github.com/adlamlearn/adlam-api/internal/store"
)

// testServer wires real engines over an in-memory preference store behind
// the same routes the server mounts.
type testServer struct {
	router    http.Handler
	engine    *alphabet.Engine
	scheduler *review.Scheduler
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	prefs := store.NewMemoryPrefStore()

	engine := alphabet.NewEngineWithRand(catalog.Alphabet(), prefs, nil, logger,
		rand.New(rand.NewSource(1)))

	scheduler := review.NewScheduler(srs.NewDefaultService(), prefs, nil, logger)
	require.NoError(t, scheduler.InitializeCards(context.Background(), catalog.Vocabulary()))

	alphabetHandler := NewAlphabetHandler(engine, 10, logger)
	vocabularyHandler := NewVocabularyHandler(scheduler, logger)

	r := chi.NewRouter()
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

	return &testServer{router: r, engine: engine, scheduler: scheduler}
}

// do performs a request against the test router and returns the recorder.
func (ts *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)
	return rec
}

// decode unmarshals the recorded response body into out.
func decode(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}
