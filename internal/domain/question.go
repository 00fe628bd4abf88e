package domain

// AnswerResult is the outcome of submitting a quiz answer.
type AnswerResult string

// Possible answer results. AnswerError indicates the referenced question was
// not found in the active quiz (for example stale UI state after navigation);
// no quiz state is mutated in that case.
const (
	AnswerCorrect   AnswerResult = "correct"
	AnswerIncorrect AnswerResult = "incorrect"
	AnswerError     AnswerResult = "error"
)

// Question is a single multiple-choice quiz question. Options always holds
// exactly four distinct letters, one of which matches CorrectID. Number is
// 1-based and unique within its quiz.
//
// For audio recognition questions AudioClip names the letter sound to play;
// it is empty for visual questions.
type Question struct {
	Number    int       `json:"number"`
	Phase     QuizPhase `json:"phase"`
	Target    Letter    `json:"target"`
	Options   []Letter  `json:"options"`
	CorrectID string    `json:"-"`
	AudioClip string    `json:"audio_clip,omitempty"`
}

// QuizState is the ephemeral state of one quiz run. It is created when a quiz
// starts and discarded when mastery is evaluated or the learner leaves; it is
// never persisted. Invariant: Answered == Correct + Incorrect.
type QuizState struct {
	Phase     QuizPhase  `json:"phase"`
	Questions []Question `json:"questions"`
	Answered  int        `json:"answered"`
	Correct   int        `json:"correct"`
	Incorrect int        `json:"incorrect"`
}

// Clone returns a copy of the quiz state with its own question slice.
func (q *QuizState) Clone() *QuizState {
	questions := make([]Question, len(q.Questions))
	copy(questions, q.Questions)
	return &QuizState{
		Phase:     q.Phase,
		Questions: questions,
		Answered:  q.Answered,
		Correct:   q.Correct,
		Incorrect: q.Incorrect,
	}
}

// Accuracy returns the fraction of answered questions that were correct,
// or 0 when nothing has been answered yet.
func (q *QuizState) Accuracy() float64 {
	if q.Answered == 0 {
		return 0
	}
	return float64(q.Correct) / float64(q.Answered)
}

// MasteryResult reports whether the current quiz run meets the mastery gate.
// It is a pure query result: the caller decides whether to advance the
// progression based on Mastered.
type MasteryResult struct {
	Mastered          bool    `json:"mastered"`
	Accuracy          float64 `json:"accuracy"`
	RequiredAccuracy  float64 `json:"required_accuracy"`
	Answered          int     `json:"answered"`
	Correct           int     `json:"correct"`
	RequiredQuestions int     `json:"required_questions"`
}
