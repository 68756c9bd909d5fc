package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyResponse = errors.New("llm: empty response")
	ErrMissingAPIKey = errors.New("llm: api key is empty")
	ErrMissingModel  = errors.New("llm: model name is empty")
	ErrUnknownEngine = errors.New("llm: unknown llm_name; use 'gemini'")
)

// Credentials передаются в каждый вызов и живут ровно один запрос,
// чтобы ключ одного клиента не попал в запрос другого.
type Credentials struct {
	APIKey string
	Model  string
}

// WithDefaults fills empty fields from server-side defaults.
func (c Credentials) WithDefaults(def Credentials) Credentials {
	if strings.TrimSpace(c.APIKey) == "" {
		c.APIKey = def.APIKey
	}
	if strings.TrimSpace(c.Model) == "" {
		c.Model = def.Model
	}
	c.APIKey = strings.TrimSpace(c.APIKey)
	c.Model = strings.TrimSpace(c.Model)
	return c
}

func (c Credentials) Validate() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	if c.Model == "" {
		return ErrMissingModel
	}
	return nil
}

// Engine is a single text generation backend.
type Engine interface {
	Name() string
	Generate(ctx context.Context, cred Credentials, prompt string) (string, error)
}

// UpstreamError is a failed generation call, reported to the client in the
// endpoint's own error shape.
type UpstreamError struct {
	Engine string
	Err    error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: %v", e.Engine, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

type Engines struct {
	Gemini Engine
}

func (e *Engines) GetEngine(llmName string) (Engine, error) {
	switch strings.ToLower(strings.TrimSpace(llmName)) {
	case "", "gemini", "google":
		if e.Gemini == nil {
			return nil, ErrUnknownEngine
		}
		return e.Gemini, nil
	default:
		return nil, ErrUnknownEngine
	}
}

// Generate resolves the engine, validates credentials and wraps failures in UpstreamError.
func (e *Engines) Generate(ctx context.Context, llmName string, cred Credentials, prompt string) (string, error) {
	engine, err := e.GetEngine(llmName)
	if err != nil {
		return "", err
	}
	if err := cred.Validate(); err != nil {
		return "", err
	}
	out, err := engine.Generate(ctx, cred, prompt)
	if err != nil {
		return "", &UpstreamError{Engine: engine.Name(), Err: err}
	}
	return out, nil
}
