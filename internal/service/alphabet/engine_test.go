package alphabet

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adlamlearn/adlam-api/internal/domain"
	"github.com/adlamlearn/adlam-api/internal/store"
)

// testLetters builds a small deterministic catalog.
func testLetters(n int) []domain.Letter {
	letters := make([]domain.Letter, 0, n)
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("letter%02d", i)
		letters = append(letters, domain.Letter{
			ID:       id,
			Glyph:    fmt.Sprintf("g%d", i),
			Name:     fmt.Sprintf("Letter%02d", i),
			Sound:    fmt.Sprintf("/s%d/", i),
			Category: domain.CategoryConsonant,
		})
	}
	return letters
}

func newTestEngine(t *testing.T, letters []domain.Letter, prefs store.PrefStore) *Engine {
	t.Helper()
	if prefs == nil {
		prefs = store.NewMemoryPrefStore()
	}
	return NewEngineWithRand(letters, prefs, nil, nil, rand.New(rand.NewSource(1)))
}

func TestNewEngineStartsAtFirstLetter(t *testing.T) {
	t.Parallel()
	engine := newTestEngine(t, testLetters(8), nil)

	progress := engine.Progress()
	assert.Equal(t, 0, progress.LetterIndex)
	assert.Equal(t, domain.PhaseVisualRecognition, progress.Phase)
	assert.Empty(t, progress.Mastered)
	assert.False(t, engine.IsComplete())

	current := engine.CurrentLetter()
	require.NotNil(t, current)
	assert.Equal(t, "letter00", current.ID)
}

func TestStartVisualQuiz(t *testing.T) {
	t.Parallel()
	engine := newTestEngine(t, testLetters(8), nil)

	questions := engine.StartVisualQuiz(10)
	require.Len(t, questions, 10)

	for i, q := range questions {
		assert.Equal(t, i+1, q.Number, "question numbers are 1-based and sequential")
		assert.Equal(t, domain.PhaseVisualRecognition, q.Phase)
		assert.Equal(t, "letter00", q.CorrectID)
		assert.Empty(t, q.AudioClip, "visual questions carry no audio clip")
		assert.Len(t, q.Options, 4)

		seen := make(map[string]bool)
		containsCorrect := false
		for _, opt := range q.Options {
			assert.False(t, seen[opt.ID], "options must be distinct")
			seen[opt.ID] = true
			if opt.ID == q.CorrectID {
				containsCorrect = true
			}
		}
		assert.True(t, containsCorrect, "options must include the correct letter")
	}

	quiz := engine.Quiz()
	require.NotNil(t, quiz)
	assert.Equal(t, 0, quiz.Answered)
}

func TestStartAudioQuizCarriesClipName(t *testing.T) {
	t.Parallel()
	engine := newTestEngine(t, testLetters(8), nil)

	questions := engine.StartAudioQuiz(5)
	require.Len(t, questions, 5)
	for _, q := range questions {
		assert.Equal(t, domain.PhaseAudioRecognition, q.Phase)
		assert.Equal(t, "letter00", q.AudioClip)
	}
}

func TestStartQuizDefaultsCount(t *testing.T) {
	t.Parallel()
	engine := newTestEngine(t, testLetters(8), nil)

	questions := engine.StartVisualQuiz(0)
	assert.Len(t, questions, DefaultQuestionCount)
}

func TestStartQuizWhenAlphabetComplete(t *testing.T) {
	t.Parallel()
	letters := testLetters(2)
	engine := newTestEngine(t, letters, nil)

	ctx := context.Background()
	assert.True(t, engine.AdvanceLetter(ctx))
	assert.False(t, engine.AdvanceLetter(ctx))
	assert.True(t, engine.IsComplete())
	assert.Nil(t, engine.CurrentLetter())

	questions := engine.StartVisualQuiz(10)
	assert.Empty(t, questions)
}

func TestSubmitAnswer(t *testing.T) {
	t.Parallel()
	engine := newTestEngine(t, testLetters(8), nil)
	questions := engine.StartVisualQuiz(10)

	result := engine.SubmitAnswer(questions[0].Number, questions[0].CorrectID)
	assert.Equal(t, domain.AnswerCorrect, result)

	result = engine.SubmitAnswer(questions[1].Number, "definitely-wrong")
	assert.Equal(t, domain.AnswerIncorrect, result)

	quiz := engine.Quiz()
	require.NotNil(t, quiz)
	assert.Equal(t, 2, quiz.Answered)
	assert.Equal(t, 1, quiz.Correct)
	assert.Equal(t, 1, quiz.Incorrect)
	assert.Equal(t, quiz.Answered, quiz.Correct+quiz.Incorrect)
}

func TestSubmitAnswerUnknownQuestion(t *testing.T) {
	t.Parallel()
	engine := newTestEngine(t, testLetters(8), nil)
	engine.StartVisualQuiz(5)

	result := engine.SubmitAnswer(99, "letter00")
	assert.Equal(t, domain.AnswerError, result)

	quiz := engine.Quiz()
	require.NotNil(t, quiz)
	assert.Equal(t, 0, quiz.Answered, "failed submissions must not mutate quiz state")
}

func TestSubmitAnswerWithoutActiveQuiz(t *testing.T) {
	t.Parallel()
	engine := newTestEngine(t, testLetters(8), nil)

	result := engine.SubmitAnswer(1, "letter00")
	assert.Equal(t, domain.AnswerError, result)
}

// answerQuiz submits answers for the first total questions, the first correct
// of them correctly.
func answerQuiz(t *testing.T, engine *Engine, questions []domain.Question, total, correct int) {
	t.Helper()
	require.GreaterOrEqual(t, len(questions), total)
	for i := 0; i < total; i++ {
		answer := "definitely-wrong"
		if i < correct {
			answer = questions[i].CorrectID
		}
		result := engine.SubmitAnswer(questions[i].Number, answer)
		require.NotEqual(t, domain.AnswerError, result)
	}
}

func TestCheckMastery(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		answered int
		correct  int
		mastered bool
	}{
		{name: "8 answered 7 correct passes", answered: 8, correct: 7, mastered: true},
		{name: "8 answered 6 correct fails on accuracy", answered: 8, correct: 6, mastered: false},
		{name: "7 answered 7 correct fails on volume", answered: 7, correct: 7, mastered: false},
		{name: "10 answered 8 correct passes at exactly 80 percent", answered: 10, correct: 8, mastered: true},
		{name: "nothing answered fails", answered: 0, correct: 0, mastered: false},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			engine := newTestEngine(t, testLetters(8), nil)
			questions := engine.StartVisualQuiz(10)
			answerQuiz(t, engine, questions, tc.answered, tc.correct)

			result := engine.CheckMastery()
			assert.Equal(t, tc.mastered, result.Mastered)
			assert.Equal(t, tc.answered, result.Answered)
			assert.Equal(t, tc.correct, result.Correct)
			assert.Equal(t, MasteryAccuracyThreshold, result.RequiredAccuracy)
			assert.Equal(t, MasteryMinQuestions, result.RequiredQuestions)
		})
	}
}

func TestCheckMasteryWithoutQuiz(t *testing.T) {
	t.Parallel()
	engine := newTestEngine(t, testLetters(8), nil)

	result := engine.CheckMastery()
	assert.False(t, result.Mastered)
	assert.Equal(t, 0, result.Answered)
}

func TestAdvancePhase(t *testing.T) {
	t.Parallel()
	engine := newTestEngine(t, testLetters(8), nil)
	ctx := context.Background()

	engine.StartVisualQuiz(10)
	more := engine.AdvancePhase(ctx)
	assert.True(t, more, "visual to audio keeps the same letter")

	progress := engine.Progress()
	assert.Equal(t, 0, progress.LetterIndex)
	assert.Equal(t, domain.PhaseAudioRecognition, progress.Phase)
	assert.Nil(t, engine.Quiz(), "phase transition clears the quiz")

	// From the audio phase, advancing the phase completes the letter.
	more = engine.AdvancePhase(ctx)
	assert.True(t, more)

	progress = engine.Progress()
	assert.Equal(t, 1, progress.LetterIndex)
	assert.Equal(t, domain.PhaseVisualRecognition, progress.Phase)
	assert.True(t, progress.Mastered["letter00"])
}

func TestAdvanceLetterCompletion(t *testing.T) {
	t.Parallel()
	letters := testLetters(3)
	engine := newTestEngine(t, letters, nil)
	ctx := context.Background()

	assert.True(t, engine.AdvanceLetter(ctx))
	assert.True(t, engine.AdvanceLetter(ctx))
	assert.False(t, engine.AdvanceLetter(ctx), "advancing past the last letter signals completion")

	progress := engine.Progress()
	assert.True(t, engine.IsComplete())
	assert.Len(t, progress.Mastered, 3)
	assert.InDelta(t, 100.0, engine.ProgressPercentage(), 1e-9)
}

func TestLetterIndexNeverDecreases(t *testing.T) {
	t.Parallel()
	engine := newTestEngine(t, testLetters(8), nil)
	ctx := context.Background()

	lastIndex := engine.Progress().LetterIndex
	for i := 0; i < 10; i++ {
		engine.StartVisualQuiz(10)
		engine.ResetQuiz()
		engine.AdvancePhase(ctx)

		index := engine.Progress().LetterIndex
		require.GreaterOrEqual(t, index, lastIndex)
		lastIndex = index
	}
}

func TestResetQuiz(t *testing.T) {
	t.Parallel()
	engine := newTestEngine(t, testLetters(8), nil)

	engine.StartVisualQuiz(10)
	progressBefore := engine.Progress()

	engine.ResetQuiz()

	assert.Nil(t, engine.Quiz())
	progressAfter := engine.Progress()
	assert.Equal(t, progressBefore.LetterIndex, progressAfter.LetterIndex)
	assert.Equal(t, progressBefore.Phase, progressAfter.Phase)
}

func TestProgressPersistsAcrossEngines(t *testing.T) {
	t.Parallel()
	prefs := store.NewMemoryPrefStore()
	letters := testLetters(8)
	ctx := context.Background()

	engine := newTestEngine(t, letters, prefs)
	engine.AdvancePhase(ctx) // visual -> audio
	engine.AdvanceLetter(ctx)
	engine.AdvanceLetter(ctx)

	restored := newTestEngine(t, letters, prefs)
	progress := restored.Progress()
	assert.Equal(t, 2, progress.LetterIndex)
	assert.Equal(t, domain.PhaseVisualRecognition, progress.Phase)
	assert.True(t, progress.Mastered["letter00"])
	assert.True(t, progress.Mastered["letter01"])
}

func TestCorruptedPreferencesDegradeToDefaults(t *testing.T) {
	t.Parallel()
	prefs := store.NewMemoryPrefStore()
	ctx := context.Background()

	// Wrong types under the engine's keys simulate a corrupted preference file.
	require.NoError(t, prefs.SetString(ctx, "alphabet.letter_index", "three"))
	require.NoError(t, prefs.SetInt(ctx, "alphabet.phase", 7))

	engine := newTestEngine(t, testLetters(8), prefs)
	progress := engine.Progress()
	assert.Equal(t, 0, progress.LetterIndex)
	assert.Equal(t, domain.PhaseVisualRecognition, progress.Phase)
}

func TestLetterLookup(t *testing.T) {
	t.Parallel()
	engine := newTestEngine(t, testLetters(8), nil)

	letter, ok := engine.LetterByID("letter03")
	require.True(t, ok)
	assert.Equal(t, "Letter03", letter.Name)

	_, ok = engine.LetterByID("nope")
	assert.False(t, ok)

	assert.Len(t, engine.Letters(), 8)
}

func TestLettersByDifficulty(t *testing.T) {
	t.Parallel()
	letters := testLetters(4)
	letters[2].Difficulty = domain.DifficultyHard
	letters[3].Difficulty = domain.DifficultyHard
	engine := newTestEngine(t, letters, nil)

	groups := engine.LettersByDifficulty()
	assert.Len(t, groups[domain.DifficultyEasy], 2)
	require.Len(t, groups[domain.DifficultyHard], 2)
	assert.Equal(t, "letter02", groups[domain.DifficultyHard][0].ID,
		"teaching order is preserved within a tier")
}
