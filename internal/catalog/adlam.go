package catalog

import (
	"github.com/adlamlearn/adlam-api/internal/domain"
)

// adlamLetters is the canonical teaching order of the Adlam alphabet:
// the five vowels first, then simple consonants, then the sounds learners
// confuse most (semi-vowels, implosives, prenasals) last. Glyphs are the
// lowercase Adlam forms from the U+1E900 block.
var adlamLetters = []domain.Letter{
	{ID: "alif", Glyph: "\U0001E922", Name: "Alif", Sound: "/a/", Difficulty: domain.DifficultyEasy, Category: domain.CategoryVowel},
	{ID: "e", Glyph: "\U0001E92B", Name: "E", Sound: "/e/", Difficulty: domain.DifficultyEasy, Category: domain.CategoryVowel},
	{ID: "i", Glyph: "\U0001E92D", Name: "I", Sound: "/i/", Difficulty: domain.DifficultyEasy, Category: domain.CategoryVowel},
	{ID: "o", Glyph: "\U0001E92E", Name: "O", Sound: "/o/", Difficulty: domain.DifficultyEasy, Category: domain.CategoryVowel},
	{ID: "u", Glyph: "\U0001E935", Name: "U", Sound: "/u/", Difficulty: domain.DifficultyEasy, Category: domain.CategoryVowel},
	{ID: "ba", Glyph: "\U0001E926", Name: "Ba", Sound: "/b/", Difficulty: domain.DifficultyEasy, Category: domain.CategoryConsonant},
	{ID: "daali", Glyph: "\U0001E923", Name: "Daali", Sound: "/d/", Difficulty: domain.DifficultyEasy, Category: domain.CategoryConsonant},
	{ID: "laam", Glyph: "\U0001E924", Name: "Laam", Sound: "/l/", Difficulty: domain.DifficultyEasy, Category: domain.CategoryConsonant},
	{ID: "miim", Glyph: "\U0001E925", Name: "Miim", Sound: "/m/", Difficulty: domain.DifficultyEasy, Category: domain.CategoryConsonant},
	{ID: "nun", Glyph: "\U0001E932", Name: "Nun", Sound: "/n/", Difficulty: domain.DifficultyEasy, Category: domain.CategoryConsonant},
	{ID: "ra", Glyph: "\U0001E92A", Name: "Ra", Sound: "/r/", Difficulty: domain.DifficultyMedium, Category: domain.CategoryConsonant},
	{ID: "fa", Glyph: "\U0001E92C", Name: "Fa", Sound: "/f/", Difficulty: domain.DifficultyMedium, Category: domain.CategoryConsonant},
	{ID: "tu", Glyph: "\U0001E93C", Name: "Tu", Sound: "/t/", Difficulty: domain.DifficultyMedium, Category: domain.CategoryConsonant},
	{ID: "kaf", Glyph: "\U0001E933", Name: "Kaf", Sound: "/k/", Difficulty: domain.DifficultyMedium, Category: domain.CategoryConsonant},
	{ID: "sinnyiiyhe", Glyph: "\U0001E927", Name: "Sinnyiiyhe", Sound: "/s/", Difficulty: domain.DifficultyMedium, Category: domain.CategoryConsonant},
	{ID: "pe", Glyph: "\U0001E928", Name: "Pe", Sound: "/p/", Difficulty: domain.DifficultyMedium, Category: domain.CategoryConsonant},
	{ID: "ga", Glyph: "\U0001E93A", Name: "Ga", Sound: "/g/", Difficulty: domain.DifficultyMedium, Category: domain.CategoryConsonant},
	{ID: "ha", Glyph: "\U0001E938", Name: "Ha", Sound: "/h/", Difficulty: domain.DifficultyMedium, Category: domain.CategoryConsonant},
	{ID: "jiim", Glyph: "\U0001E936", Name: "Jiim", Sound: "/dʒ/", Difficulty: domain.DifficultyHard, Category: domain.CategoryConsonant},
	{ID: "chi", Glyph: "\U0001E937", Name: "Chi", Sound: "/tʃ/", Difficulty: domain.DifficultyHard, Category: domain.CategoryConsonant},
	{ID: "waw", Glyph: "\U0001E931", Name: "Waw", Sound: "/w/", Difficulty: domain.DifficultyHard, Category: domain.CategorySemiVowel},
	{ID: "ya", Glyph: "\U0001E934", Name: "Ya", Sound: "/j/", Difficulty: domain.DifficultyHard, Category: domain.CategorySemiVowel},
	{ID: "bhe", Glyph: "\U0001E929", Name: "Bhe", Sound: "/ɓ/", Difficulty: domain.DifficultyVeryHard, Category: domain.CategoryConsonant},
	{ID: "dha", Glyph: "\U0001E92F", Name: "Dha", Sound: "/ɗ/", Difficulty: domain.DifficultyVeryHard, Category: domain.CategoryConsonant},
	{ID: "yhe", Glyph: "\U0001E930", Name: "Yhe", Sound: "/ʔʲ/", Difficulty: domain.DifficultyVeryHard, Category: domain.CategoryConsonant},
	{ID: "nya", Glyph: "\U0001E93B", Name: "Nya", Sound: "/ɲ/", Difficulty: domain.DifficultyVeryHard, Category: domain.CategoryConsonant},
	{ID: "nha", Glyph: "\U0001E93D", Name: "Nha", Sound: "/ŋ/", Difficulty: domain.DifficultyVeryHard, Category: domain.CategoryConsonant},
	{ID: "qaaf", Glyph: "\U0001E939", Name: "Qaaf", Sound: "/q/", Difficulty: domain.DifficultyVeryHard, Category: domain.CategoryConsonant},
}

// Alphabet returns the Adlam letters in teaching order. The returned slice
// is a copy; the audio asset path is filled in from the letter's clip name.
func Alphabet() []domain.Letter {
	letters := make([]domain.Letter, len(adlamLetters))
	copy(letters, adlamLetters)
	for i := range letters {
		letters[i].AudioAsset = "letters/" + letters[i].AudioClip() + ".mp3"
	}
	return letters
}

// LetterByID returns the letter with the given ID and whether it exists.
func LetterByID(id string) (domain.Letter, bool) {
	for _, l := range Alphabet() {
		if l.ID == id {
			return l, true
		}
	}
	return domain.Letter{}, false
}
