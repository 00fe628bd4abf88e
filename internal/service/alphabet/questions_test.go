package alphabet

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adlamlearn/adlam-api/internal/domain"
	"github.com/adlamlearn/adlam-api/internal/store"
)

func TestDistractorPoolRestriction(t *testing.T) {
	t.Parallel()
	letters := testLetters(28)
	engine := newTestEngine(t, letters, nil)

	// At the first letter the pool is the catalog prefix plus the lookahead:
	// only the first four letters may ever appear as options.
	allowed := map[string]bool{}
	for _, l := range letters[:distractorLookahead] {
		allowed[l.ID] = true
	}

	questions := engine.StartVisualQuiz(20)
	for _, q := range questions {
		for _, opt := range q.Options {
			assert.True(t, allowed[opt.ID],
				"option %s drawn from outside the learner's pool", opt.ID)
		}
	}
}

func TestDistractorPoolGrowsWithProgress(t *testing.T) {
	t.Parallel()
	letters := testLetters(28)
	engine := newTestEngine(t, letters, nil)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		engine.AdvanceLetter(ctx)
	}

	allowed := map[string]bool{}
	for _, l := range letters[:10+distractorLookahead] {
		allowed[l.ID] = true
	}

	questions := engine.StartVisualQuiz(20)
	seenBeyondStart := false
	for _, q := range questions {
		assert.Equal(t, "letter10", q.CorrectID)
		for _, opt := range q.Options {
			assert.True(t, allowed[opt.ID])
			if opt.ID != q.CorrectID && opt.ID > "letter03" {
				seenBeyondStart = true
			}
		}
	}
	assert.True(t, seenBeyondStart, "a wider pool should eventually surface later letters")
}

func TestDistractorPoolClampedToCatalog(t *testing.T) {
	t.Parallel()
	// A catalog smaller than the option count still produces questions; they
	// just carry fewer options.
	letters := testLetters(2)
	engine := newTestEngine(t, letters, nil)

	questions := engine.StartVisualQuiz(5)
	require.Len(t, questions, 5)
	for _, q := range questions {
		assert.Len(t, q.Options, 2)
		ids := map[string]bool{}
		for _, opt := range q.Options {
			ids[opt.ID] = true
		}
		assert.True(t, ids[q.CorrectID])
	}
}

func TestBuildOptionsSamplesWithoutReplacement(t *testing.T) {
	t.Parallel()
	letters := testLetters(8)
	engine := NewEngineWithRand(letters, store.NewMemoryPrefStore(), nil, nil,
		rand.New(rand.NewSource(42)))

	target := letters[0]
	candidates := letters[1:4]

	for i := 0; i < 50; i++ {
		options := engine.buildOptions(target, candidates)
		require.Len(t, options, 4)

		seen := map[string]bool{}
		for _, opt := range options {
			assert.False(t, seen[opt.ID], "duplicate option %s", opt.ID)
			seen[opt.ID] = true
		}
		assert.True(t, seen[target.ID])
	}
}

func TestCorrectAnswerPositionVaries(t *testing.T) {
	t.Parallel()
	engine := newTestEngine(t, testLetters(8), nil)

	questions := engine.StartVisualQuiz(40)
	positions := map[int]bool{}
	for _, q := range questions {
		for i, opt := range q.Options {
			if opt.ID == q.CorrectID {
				positions[i] = true
			}
		}
	}
	assert.Greater(t, len(positions), 1,
		"the correct answer should not always land in the same slot")
}

func TestAudioQuestionsUseTargetClip(t *testing.T) {
	t.Parallel()
	letters := []domain.Letter{
		{ID: "alif", Glyph: "a", Name: "Alif", Category: domain.CategoryVowel},
		{ID: "ba", Glyph: "b", Name: "Ba", Category: domain.CategoryConsonant},
		{ID: "daali", Glyph: "d", Name: "Daali", Category: domain.CategoryConsonant},
		{ID: "laam", Glyph: "l", Name: "Laam", Category: domain.CategoryConsonant},
	}
	engine := newTestEngine(t, letters, nil)

	questions := engine.StartAudioQuiz(3)
	for _, q := range questions {
		assert.Equal(t, "alif", q.AudioClip, "clip name is the lowercased letter name")
	}
}
