package alphabet

import (
	"github.com/adlamlearn/adlam-api/internal/domain"
)

// generateQuestionsLocked builds count multiple-choice questions for the
// target letter. The distractor pool is the catalog prefix up to the
// learner's position plus a small lookahead, so early questions draw from a
// handful of letters and later ones include the harder, more confusable
// shapes. Distractors are sampled without replacement; options are shuffled
// so the correct answer's position carries no signal.
//
// Must be called with the engine mutex held (it reads progression state and
// the engine's random source).
func (e *Engine) generateQuestionsLocked(
	target domain.Letter,
	phase domain.QuizPhase,
	count int,
) []domain.Question {
	poolEnd := e.progress.LetterIndex + distractorLookahead
	if poolEnd > len(e.letters) {
		poolEnd = len(e.letters)
	}

	candidates := make([]domain.Letter, 0, poolEnd)
	for _, l := range e.letters[:poolEnd] {
		if l.ID != target.ID {
			candidates = append(candidates, l)
		}
	}

	questions := make([]domain.Question, 0, count)
	for n := 1; n <= count; n++ {
		options := e.buildOptions(target, candidates)

		q := domain.Question{
			Number:    n,
			Phase:     phase,
			Target:    target,
			Options:   options,
			CorrectID: target.ID,
		}
		if phase == domain.PhaseAudioRecognition {
			q.AudioClip = target.AudioClip()
		}
		questions = append(questions, q)
	}
	return questions
}

// buildOptions draws up to three distinct distractors from candidates and
// shuffles them together with the target into the options list.
func (e *Engine) buildOptions(target domain.Letter, candidates []domain.Letter) []domain.Letter {
	distractorCount := optionCount - 1
	if distractorCount > len(candidates) {
		distractorCount = len(candidates)
	}

	// Partial Fisher-Yates: the first distractorCount slots end up holding
	// a uniform sample without replacement.
	indices := e.rng.Perm(len(candidates))
	options := make([]domain.Letter, 0, distractorCount+1)
	for _, idx := range indices[:distractorCount] {
		options = append(options, candidates[idx])
	}
	options = append(options, target)

	e.rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	return options
}
