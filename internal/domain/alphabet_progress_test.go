package domain

import (
	"errors"
	"testing"
)

func TestNewAlphabetProgress(t *testing.T) {
	t.Parallel()
	progress := NewAlphabetProgress(28)

	if progress.LetterIndex != 0 {
		t.Errorf("Expected letter index 0, got %d", progress.LetterIndex)
	}
	if progress.Phase != PhaseVisualRecognition {
		t.Errorf("Expected visual recognition phase, got %s", progress.Phase)
	}
	if len(progress.Mastered) != 0 {
		t.Errorf("Expected empty mastered set, got %d entries", len(progress.Mastered))
	}
	if progress.IsComplete() {
		t.Error("Expected fresh progress to be incomplete")
	}
	if progress.PercentComplete() != 0 {
		t.Errorf("Expected 0%%, got %f", progress.PercentComplete())
	}
}

func TestAlphabetProgressPercentComplete(t *testing.T) {
	t.Parallel()
	progress := NewAlphabetProgress(28)
	progress.Mastered["alif"] = true
	progress.Mastered["daali"] = true
	progress.Mastered["laam"] = true
	progress.Mastered["miim"] = true
	progress.Mastered["ba"] = true
	progress.Mastered["ra"] = true
	progress.Mastered["e"] = true

	want := 25.0 // 7 of 28
	if got := progress.PercentComplete(); got != want {
		t.Errorf("Expected %f%%, got %f%%", want, got)
	}

	// Empty catalog yields 0 rather than dividing by zero.
	empty := NewAlphabetProgress(0)
	if empty.PercentComplete() != 0 {
		t.Errorf("Expected 0%% for empty catalog, got %f", empty.PercentComplete())
	}
}

func TestAlphabetProgressMasteredIDs(t *testing.T) {
	t.Parallel()
	progress := NewAlphabetProgress(28)
	progress.Mastered["miim"] = true
	progress.Mastered["alif"] = true
	progress.Mastered["laam"] = true

	ids := progress.MasteredIDs()
	want := []string{"alif", "laam", "miim"}
	if len(ids) != len(want) {
		t.Fatalf("Expected %d IDs, got %d", len(want), len(ids))
	}
	for i, id := range want {
		if ids[i] != id {
			t.Errorf("Expected ids[%d] = %s, got %s", i, id, ids[i])
		}
	}
}

func TestAlphabetProgressClone(t *testing.T) {
	t.Parallel()
	progress := NewAlphabetProgress(28)
	progress.LetterIndex = 3
	progress.Phase = PhaseAudioRecognition
	progress.Mastered["alif"] = true

	clone := progress.Clone()
	clone.Mastered["e"] = true
	clone.LetterIndex = 9

	if progress.LetterIndex != 3 {
		t.Errorf("Expected original index unchanged at 3, got %d", progress.LetterIndex)
	}
	if len(progress.Mastered) != 1 {
		t.Errorf("Expected original mastered set unchanged, got %d entries", len(progress.Mastered))
	}
}

func TestAlphabetProgressValidate(t *testing.T) {
	t.Parallel()

	progress := NewAlphabetProgress(28)
	if err := progress.Validate(); err != nil {
		t.Errorf("Expected fresh progress to validate, got %v", err)
	}

	progress.LetterIndex = -1
	if err := progress.Validate(); !errors.Is(err, ErrNegativeLetterIndex) {
		t.Errorf("Expected ErrNegativeLetterIndex, got %v", err)
	}

	progress.LetterIndex = 0
	progress.Phase = QuizPhase("telepathy")
	if err := progress.Validate(); !errors.Is(err, ErrInvalidQuizPhase) {
		t.Errorf("Expected ErrInvalidQuizPhase, got %v", err)
	}
}

func TestQuizStateAccuracy(t *testing.T) {
	t.Parallel()

	quiz := &QuizState{}
	if quiz.Accuracy() != 0 {
		t.Errorf("Expected 0 accuracy before any answers, got %f", quiz.Accuracy())
	}

	quiz.Answered = 8
	quiz.Correct = 6
	quiz.Incorrect = 2
	if quiz.Accuracy() != 0.75 {
		t.Errorf("Expected accuracy 0.75, got %f", quiz.Accuracy())
	}
}
