package domain

import (
	"errors"
	"strings"
)

// Letter-specific validation errors
var (
	// ErrLetterIDEmpty is returned when a letter ID is empty.
	ErrLetterIDEmpty = errors.New("letter ID cannot be empty")

	// ErrLetterGlyphEmpty is returned when a letter has no glyph.
	ErrLetterGlyphEmpty = errors.New("letter glyph cannot be empty")

	// ErrLetterNameEmpty is returned when a letter has no canonical name.
	ErrLetterNameEmpty = errors.New("letter name cannot be empty")

	// ErrInvalidLetterCategory is returned for an unknown letter category.
	ErrInvalidLetterCategory = errors.New("invalid letter category")
)

// LetterDifficulty is the ordered difficulty tier of a letter.
// Tiers compare with the usual integer ordering: Easy < Medium < Hard < VeryHard.
type LetterDifficulty int

// Difficulty tiers, easiest first.
const (
	DifficultyEasy LetterDifficulty = iota
	DifficultyMedium
	DifficultyHard
	DifficultyVeryHard
)

// String returns the lowercase name of the difficulty tier.
func (d LetterDifficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyMedium:
		return "medium"
	case DifficultyHard:
		return "hard"
	case DifficultyVeryHard:
		return "very_hard"
	default:
		return "unknown"
	}
}

// LetterCategory classifies a letter by its phonological role.
type LetterCategory string

// Possible letter categories.
const (
	CategoryVowel     LetterCategory = "vowel"
	CategoryConsonant LetterCategory = "consonant"
	CategorySemiVowel LetterCategory = "semi_vowel"
)

// Letter is a single entry of the Adlam alphabet catalog. Letters are
// immutable for the process lifetime; the catalog package owns the canonical
// ordered set.
type Letter struct {
	ID         string           `json:"id"`
	Glyph      string           `json:"glyph"`
	Name       string           `json:"name"`
	Sound      string           `json:"sound"`
	AudioAsset string           `json:"audio_asset"`
	Difficulty LetterDifficulty `json:"difficulty"`
	Category   LetterCategory   `json:"category"`
}

// AudioClip returns the deterministic per-letter audio clip name derived from
// the letter's canonical name, lowercased. Audio recognition questions carry
// this value so the UI can resolve the matching asset.
func (l Letter) AudioClip() string {
	return strings.ToLower(l.Name)
}

// Validate checks if the Letter has valid data.
// Returns an error if any field fails validation.
func (l Letter) Validate() error {
	if l.ID == "" {
		return ErrLetterIDEmpty
	}

	if l.Glyph == "" {
		return ErrLetterGlyphEmpty
	}

	if l.Name == "" {
		return ErrLetterNameEmpty
	}

	switch l.Category {
	case CategoryVowel, CategoryConsonant, CategorySemiVowel:
	default:
		return ErrInvalidLetterCategory
	}

	return nil
}
