package shared

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type answerBody struct {
	QuestionNumber int    `json:"question_number"`
	LetterID       string `json:"letter_id"`
}

func TestDecodeJSON(t *testing.T) {
	t.Parallel()

	t.Run("valid body decodes", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest("POST", "/", strings.NewReader(
			`{"question_number": 3, "letter_id": "alif"}`))

		var body answerBody
		require.NoError(t, DecodeJSON(req, &body))
		assert.Equal(t, 3, body.QuestionNumber)
		assert.Equal(t, "alif", body.LetterID)
	})

	t.Run("empty body is a typed error", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest("POST", "/", strings.NewReader(""))

		var body answerBody
		assert.ErrorIs(t, DecodeJSON(req, &body), ErrEmptyRequestBody)
	})

	t.Run("unknown fields are rejected", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest("POST", "/", strings.NewReader(
			`{"question_number": 3, "surprise": true}`))

		var body answerBody
		assert.Error(t, DecodeJSON(req, &body))
	})

	t.Run("trailing garbage is rejected", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest("POST", "/", strings.NewReader(
			`{"question_number": 3}{"question_number": 4}`))

		var body answerBody
		assert.Error(t, DecodeJSON(req, &body))
	})

	t.Run("malformed JSON is rejected", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest("POST", "/", strings.NewReader(`{"question`))

		var body answerBody
		assert.Error(t, DecodeJSON(req, &body))
	})
}
