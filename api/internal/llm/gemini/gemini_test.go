package gemini

import (
	"testing"

	"formula-viz/api/internal/llm"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_Generate(t *testing.T) {
	t.Run("Should refuse to call upstream without an api key", func(t *testing.T) {
		_, err := New(0).Generate(t.Context(), llm.Credentials{Model: "gemini-2.5-flash"}, "Hi")
		assert.ErrorIs(t, err, llm.ErrMissingAPIKey)
	})

	t.Run("Should refuse to call upstream without a model", func(t *testing.T) {
		_, err := New(0).Generate(t.Context(), llm.Credentials{APIKey: "k"}, "Hi")
		assert.ErrorIs(t, err, llm.ErrMissingModel)
	})
}

func TestResponseText(t *testing.T) {
	t.Run("Should return empty for nil response", func(t *testing.T) {
		assert.Equal(t, "", responseText(nil))
	})

	t.Run("Should join text parts of the first candidate with content", func(t *testing.T) {
		resp := &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{
				{Content: nil},
				{Content: &genai.Content{Parts: []genai.Part{
					genai.Text("```json\n"),
					&genai.Blob{MIMEType: "image/png", Data: []byte{1}},
					genai.Text(`{"a": 1}`),
				}}},
				{Content: &genai.Content{Parts: []genai.Part{genai.Text("ignored")}}},
			},
		}
		require.Equal(t, "```json\n{\"a\": 1}", responseText(resp))
	})

	t.Run("Should skip candidates without text", func(t *testing.T) {
		resp := &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{
				{Content: &genai.Content{Parts: []genai.Part{&genai.Blob{MIMEType: "image/png"}}}},
				{Content: &genai.Content{Parts: []genai.Part{genai.Text("ok")}}},
			},
		}
		assert.Equal(t, "ok", responseText(resp))
	})
}
