package catalog

import (
	"github.com/adlamlearn/adlam-api/internal/domain"
)

// fulfuldeWords is the built-in starter vocabulary: everyday Fulfulde words
// grouped into the categories the mobile client shows as decks.
var fulfuldeWords = []domain.VocabularyItem{
	{ID: "jam", Word: "jam", Translation: "peace; well-being", Category: "greetings"},
	{ID: "jaaraama", Word: "jaaraama", Translation: "thank you", Category: "greetings"},
	{ID: "sannu", Word: "sannu", Translation: "hello", Category: "greetings"},
	{ID: "neene", Word: "neene", Translation: "mother", Category: "family"},
	{ID: "baaba", Word: "baaba", Translation: "father", Category: "family"},
	{ID: "biddo", Word: "ɓiɗɗo", Translation: "child", Category: "family"},
	{ID: "debbo", Word: "debbo", Translation: "woman", Category: "people"},
	{ID: "gorko", Word: "gorko", Translation: "man", Category: "people"},
	{ID: "ndiyam", Word: "ndiyam", Translation: "water", Category: "food"},
	{ID: "nyaamdu", Word: "nyaamdu", Translation: "food", Category: "food"},
	{ID: "kosam", Word: "kosam", Translation: "milk", Category: "food"},
	{ID: "maaro", Word: "maaro", Translation: "rice", Category: "food"},
	{ID: "suudu", Word: "suudu", Translation: "house", Category: "home"},
	{ID: "nagge", Word: "nagge", Translation: "cow", Category: "animals"},
	{ID: "mbeewa", Word: "mbeewa", Translation: "goat", Category: "animals"},
	{ID: "puccu", Word: "puccu", Translation: "horse", Category: "animals"},
	{ID: "naange", Word: "naange", Translation: "sun", Category: "nature"},
	{ID: "lewru", Word: "lewru", Translation: "moon; month", Category: "nature"},
	{ID: "leggal", Word: "leggal", Translation: "tree; wood", Category: "nature"},
	{ID: "demngal", Word: "ɗemngal", Translation: "tongue; language", Category: "body"},
	{ID: "hoore", Word: "hoore", Translation: "head", Category: "body"},
	{ID: "junngo", Word: "junngo", Translation: "hand", Category: "body"},
	{ID: "koyngal", Word: "koyngal", Translation: "foot; leg", Category: "body"},
	{ID: "goo", Word: "go'o", Translation: "one", Category: "numbers"},
	{ID: "didi", Word: "ɗiɗi", Translation: "two", Category: "numbers"},
	{ID: "tati", Word: "tati", Translation: "three", Category: "numbers"},
	{ID: "nayi", Word: "nayi", Translation: "four", Category: "numbers"},
	{ID: "jowi", Word: "jowi", Translation: "five", Category: "numbers"},
}

// Vocabulary returns the built-in vocabulary items in catalog order.
func Vocabulary() []domain.VocabularyItem {
	items := make([]domain.VocabularyItem, len(fulfuldeWords))
	copy(items, fulfuldeWords)
	return items
}

// VocabularyByID returns the item with the given ID and whether it exists.
func VocabularyByID(id string) (domain.VocabularyItem, bool) {
	for _, item := range fulfuldeWords {
		if item.ID == id {
			return item, true
		}
	}
	return domain.VocabularyItem{}, false
}
