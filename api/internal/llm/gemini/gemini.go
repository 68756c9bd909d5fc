package gemini

import (
	"context"
	"fmt"
	"strings"

	"formula-viz/api/internal/llm"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

type Engine struct {
	Temperature float32
}

func New(temperature float32) *Engine {
	return &Engine{Temperature: temperature}
}

func (e *Engine) Name() string { return "gemini" }

// Generate отправляет один текстовый промпт. Клиент создаётся на каждый вызов
// из ключа запроса: общего сконфигурированного клиента нет.
func (e *Engine) Generate(ctx context.Context, cred llm.Credentials, prompt string) (string, error) {
	if err := cred.Validate(); err != nil {
		return "", err
	}
	cl, err := genai.NewClient(ctx, option.WithAPIKey(cred.APIKey))
	if err != nil {
		return "", fmt.Errorf("gemini client: %w", err)
	}
	defer cl.Close()

	m := cl.GenerativeModel(cred.Model)
	if m == nil {
		return "", fmt.Errorf("gemini: model is nil")
	}
	m.GenerationConfig = genai.GenerationConfig{
		Temperature: ptrFloat32(e.Temperature),
	}

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	txt := responseText(resp)
	if strings.TrimSpace(txt) == "" {
		return "", llm.ErrEmptyResponse
	}
	return txt, nil
}

// responseText склеивает текстовые части первого кандидата с контентом.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	for _, c := range resp.Candidates {
		if c == nil || c.Content == nil {
			continue
		}
		var b strings.Builder
		for _, p := range c.Content.Parts {
			if t, ok := p.(genai.Text); ok {
				b.WriteString(string(t))
			}
		}
		if b.Len() > 0 {
			return b.String()
		}
	}
	return ""
}

func ptrFloat32(v float32) *float32 { return &v }
