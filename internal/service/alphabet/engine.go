// Package alphabet implements the letter progression engine: a small state
// machine that walks a learner through the Adlam alphabet one letter at a
// time, gating advancement on quiz mastery in two phases (visual recognition
// first, audio recognition second).
package alphabet

import (
	"context"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/adlamlearn/adlam-api/internal/domain"
	"github.com/adlamlearn/adlam-api/internal/events"
	"github.com/adlamlearn/adlam-api/internal/store"
)

// Preference keys owned by the alphabet engine. No other component may
// write this namespace.
const (
	prefKeyLetterIndex = "alphabet.letter_index"
	prefKeyPhase       = "alphabet.phase"
	prefKeyMastered    = "alphabet.mastered"
)

// Mastery gate: a quiz phase is passed at 80% accuracy over at least 8
// answered questions.
const (
	MasteryAccuracyThreshold = 0.80
	MasteryMinQuestions      = 8
)

// Question generation constants.
const (
	// DefaultQuestionCount is how many questions a quiz run generates.
	DefaultQuestionCount = 10

	// optionCount is the size of each question's options list, correct
	// answer included.
	optionCount = 4

	// distractorLookahead extends the distractor pool a few letters past
	// the learner's position so questions stay challenging without drawing
	// from content the learner has plausibly never seen.
	distractorLookahead = 4
)

// Engine runs the alphabet progression for one learner. All mutating methods
// are serialized by an internal mutex: each performs a read-modify-write over
// shared state followed by a persistence write, and concurrent interleavings
// would corrupt the quiz counters or the progression invariants.
type Engine struct {
	mu      sync.Mutex
	letters []domain.Letter
	prefs   store.PrefStore
	emitter events.Emitter
	logger  *slog.Logger
	rng     *rand.Rand

	progress *domain.AlphabetProgress
	quiz     *domain.QuizState
}

// NewEngine creates an engine over the given letter catalog, rebuilding
// progression state from the preference store. Missing or corrupted
// preference values degrade to the documented initial state (first letter,
// visual phase, nothing mastered); the learner is never blocked by a bad
// preference file.
func NewEngine(
	letters []domain.Letter,
	prefs store.PrefStore,
	emitter events.Emitter,
	logger *slog.Logger,
) *Engine {
	return NewEngineWithRand(letters, prefs, emitter, logger, newDefaultRand())
}

// NewEngineWithRand is NewEngine with an injectable random source, so tests
// can assert deterministic question sets.
func NewEngineWithRand(
	letters []domain.Letter,
	prefs store.PrefStore,
	emitter events.Emitter,
	logger *slog.Logger,
	rng *rand.Rand,
) *Engine {
	if logger == nil {
		logger = slog.Default()
	}

	e := &Engine{
		letters: append([]domain.Letter(nil), letters...),
		prefs:   prefs,
		emitter: emitter,
		logger:  logger.With(slog.String("component", "alphabet_engine")),
		rng:     rng,
	}
	e.progress = e.loadProgress(context.Background())
	return e
}

func newDefaultRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// loadProgress rebuilds AlphabetProgress from the preference store, falling
// back to defaults field by field.
func (e *Engine) loadProgress(ctx context.Context) *domain.AlphabetProgress {
	progress := domain.NewAlphabetProgress(len(e.letters))

	index, err := e.prefs.GetInt(ctx, prefKeyLetterIndex, 0)
	if err != nil {
		e.logger.Warn("failed to read letter index, using default", "error", err)
	}
	if index < 0 {
		index = 0
	}
	progress.LetterIndex = index

	phase, err := e.prefs.GetString(ctx, prefKeyPhase, string(domain.PhaseVisualRecognition))
	if err != nil {
		e.logger.Warn("failed to read quiz phase, using default", "error", err)
	}
	if p := domain.QuizPhase(phase); p.IsValid() {
		progress.Phase = p
	}

	mastered, err := e.prefs.GetStringSet(ctx, prefKeyMastered, nil)
	if err != nil {
		e.logger.Warn("failed to read mastered set, using default", "error", err)
	}
	for _, id := range mastered {
		progress.Mastered[id] = true
	}

	return progress
}

// persistProgress writes the progression fields and commits. Persistence is
// fire-and-forget: failures are logged, never propagated, because the
// in-memory state transition has already happened.
func (e *Engine) persistProgress(ctx context.Context) {
	if err := e.prefs.SetInt(ctx, prefKeyLetterIndex, e.progress.LetterIndex); err != nil {
		e.logger.Error("failed to persist letter index", "error", err)
	}
	if err := e.prefs.SetString(ctx, prefKeyPhase, string(e.progress.Phase)); err != nil {
		e.logger.Error("failed to persist quiz phase", "error", err)
	}
	if err := e.prefs.SetStringSet(ctx, prefKeyMastered, e.progress.MasteredIDs()); err != nil {
		e.logger.Error("failed to persist mastered set", "error", err)
	}
	if err := e.prefs.Commit(ctx); err != nil {
		e.logger.Error("failed to commit alphabet progress", "error", err)
	}
}

func (e *Engine) emit(eventType events.EventType, snapshot any) {
	if e.emitter != nil {
		e.emitter.Emit(events.NewStateEvent(eventType, snapshot))
	}
}

// Letters returns the catalog in teaching order.
func (e *Engine) Letters() []domain.Letter {
	return append([]domain.Letter(nil), e.letters...)
}

// LetterByID returns the catalog letter with the given ID and whether it
// exists.
func (e *Engine) LetterByID(id string) (domain.Letter, bool) {
	for _, l := range e.letters {
		if l.ID == id {
			return l, true
		}
	}
	return domain.Letter{}, false
}

// LettersByDifficulty groups the catalog by difficulty tier, preserving
// teaching order within each tier.
func (e *Engine) LettersByDifficulty() map[domain.LetterDifficulty][]domain.Letter {
	groups := make(map[domain.LetterDifficulty][]domain.Letter)
	for _, l := range e.letters {
		groups[l.Difficulty] = append(groups[l.Difficulty], l)
	}
	return groups
}

// CurrentLetter returns the active letter, or nil when the alphabet is
// complete or the catalog is empty. Callers must check for nil before
// starting a quiz.
func (e *Engine) CurrentLetter() *domain.Letter {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.currentLetterLocked()
}

func (e *Engine) currentLetterLocked() *domain.Letter {
	if e.progress.LetterIndex >= len(e.letters) {
		return nil
	}
	letter := e.letters[e.progress.LetterIndex]
	return &letter
}

// Progress returns a snapshot of the current progression state.
func (e *Engine) Progress() *domain.AlphabetProgress {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.progress.Clone()
}

// Quiz returns a snapshot of the active quiz, or nil when none is running.
func (e *Engine) Quiz() *domain.QuizState {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.quiz == nil {
		return nil
	}
	return e.quiz.Clone()
}

// ProgressPercentage returns mastered letters as a percentage of the catalog.
func (e *Engine) ProgressPercentage() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.progress.PercentComplete()
}

// IsComplete reports whether the learner has mastered the whole alphabet.
func (e *Engine) IsComplete() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.progress.IsComplete()
}

// StartVisualQuiz begins a visual recognition quiz for the current letter
// and returns its questions. The returned slice is empty when there is no
// current letter; callers must check before rendering a quiz.
func (e *Engine) StartVisualQuiz(count int) []domain.Question {
	return e.startQuiz(domain.PhaseVisualRecognition, count)
}

// StartAudioQuiz begins an audio recognition quiz for the current letter.
func (e *Engine) StartAudioQuiz(count int) []domain.Question {
	return e.startQuiz(domain.PhaseAudioRecognition, count)
}

func (e *Engine) startQuiz(phase domain.QuizPhase, count int) []domain.Question {
	if count <= 0 {
		count = DefaultQuestionCount
	}

	e.mu.Lock()
	target := e.currentLetterLocked()
	if target == nil {
		e.mu.Unlock()
		return []domain.Question{}
	}

	questions := e.generateQuestionsLocked(*target, phase, count)
	e.quiz = &domain.QuizState{
		Phase:     phase,
		Questions: questions,
	}
	snapshot := e.quiz.Clone()
	e.mu.Unlock()

	e.emit(events.EventQuizChanged, snapshot)

	out := make([]domain.Question, len(questions))
	copy(out, questions)
	return out
}

// SubmitAnswer records an answer to the question with the given 1-based
// number in the active quiz. An unknown question number or absent quiz
// yields AnswerError and mutates nothing. Quiz state is replaced atomically;
// no partial update is ever observable.
func (e *Engine) SubmitAnswer(questionNumber int, letterID string) domain.AnswerResult {
	e.mu.Lock()

	if e.quiz == nil {
		e.mu.Unlock()
		return domain.AnswerError
	}

	var question *domain.Question
	for i := range e.quiz.Questions {
		if e.quiz.Questions[i].Number == questionNumber {
			question = &e.quiz.Questions[i]
			break
		}
	}
	if question == nil {
		e.mu.Unlock()
		e.logger.Debug("answer for unknown question", "question_number", questionNumber)
		return domain.AnswerError
	}

	result := domain.AnswerIncorrect
	if letterID == question.CorrectID {
		result = domain.AnswerCorrect
	}

	next := e.quiz.Clone()
	next.Answered++
	if result == domain.AnswerCorrect {
		next.Correct++
	} else {
		next.Incorrect++
	}
	e.quiz = next
	snapshot := next.Clone()
	e.mu.Unlock()

	e.emit(events.EventQuizChanged, snapshot)
	return result
}

// CheckMastery reports whether the current quiz run meets the mastery gate:
// at least MasteryMinQuestions answered with MasteryAccuracyThreshold
// accuracy. It is a pure query; the caller decides whether to advance via
// AdvancePhase or AdvanceLetter.
func (e *Engine) CheckMastery() domain.MasteryResult {
	e.mu.Lock()
	defer e.mu.Unlock()

	result := domain.MasteryResult{
		RequiredAccuracy:  MasteryAccuracyThreshold,
		RequiredQuestions: MasteryMinQuestions,
	}
	if e.quiz == nil {
		return result
	}

	result.Answered = e.quiz.Answered
	result.Correct = e.quiz.Correct
	result.Accuracy = e.quiz.Accuracy()
	result.Mastered = result.Answered >= MasteryMinQuestions &&
		result.Accuracy >= MasteryAccuracyThreshold
	return result
}

// AdvancePhase moves the active letter to its next quiz phase. From visual
// recognition it advances to audio recognition on the same letter and
// returns true (more phases remain). From audio recognition it delegates to
// AdvanceLetter. The quiz state is cleared and the new progress persisted
// before returning.
func (e *Engine) AdvancePhase(ctx context.Context) bool {
	e.mu.Lock()

	if e.progress.Phase == domain.PhaseAudioRecognition {
		return e.advanceLetterLocked(ctx)
	}

	e.progress.Phase = domain.PhaseAudioRecognition
	e.quiz = nil
	e.persistProgress(ctx)
	snapshot := e.progress.Clone()
	e.mu.Unlock()

	e.logger.Info("advanced to audio phase", "letter_index", snapshot.LetterIndex)
	e.emit(events.EventProgressChanged, snapshot)
	return true
}

// AdvanceLetter marks the current letter mastered and moves to the next one,
// resetting the phase to visual recognition. It returns true while the new
// index is still within the catalog; false signals alphabet completion. The
// state change happens and is persisted regardless of the return value.
func (e *Engine) AdvanceLetter(ctx context.Context) bool {
	e.mu.Lock()
	return e.advanceLetterLocked(ctx)
}

// advanceLetterLocked completes the letter transition. It must be entered
// with the mutex held and releases it before emitting.
func (e *Engine) advanceLetterLocked(ctx context.Context) bool {
	if letter := e.currentLetterLocked(); letter != nil {
		e.progress.Mastered[letter.ID] = true
	}
	e.progress.LetterIndex++
	e.progress.Phase = domain.PhaseVisualRecognition
	e.quiz = nil
	e.persistProgress(ctx)

	snapshot := e.progress.Clone()
	more := e.progress.LetterIndex < len(e.letters)
	e.mu.Unlock()

	e.logger.Info("advanced to next letter",
		"letter_index", snapshot.LetterIndex,
		"mastered", len(snapshot.Mastered),
		"alphabet_complete", !more)
	e.emit(events.EventProgressChanged, snapshot)
	return more
}

// ResetQuiz discards the active quiz without touching progression state.
func (e *Engine) ResetQuiz() {
	e.mu.Lock()
	e.quiz = nil
	e.mu.Unlock()
	e.emit(events.EventQuizChanged, (*domain.QuizState)(nil))
}
