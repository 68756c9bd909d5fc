package llmjson

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrSyntaxRecovery: ни одна стратегия не смогла разобрать текст.
	ErrSyntaxRecovery = errors.New("llmjson: no strategy could parse the response")
	ErrNoStrategy     = errors.New("llmjson: no parse strategies configured")
)

// Strategy parses the extracted working text into a JSON-compatible value.
type Strategy interface {
	Name() string
	Parse(text string) (any, error)
}

type strictJSON struct{}

// StrictJSON parses RFC 8259 JSON with encoding/json. Numbers decode as float64.
func StrictJSON() Strategy { return strictJSON{} }

func (strictJSON) Name() string { return "json" }

func (strictJSON) Parse(text string) (any, error) {
	var v any
	if err := json.Unmarshal([]byte(text), &v); err != nil {
		return nil, fmt.Errorf("json: %w", err)
	}
	return v, nil
}

// DefaultStrategies is the fallback chain used by Normalize.
func DefaultStrategies() []Strategy {
	return []Strategy{StrictJSON(), LenientLiteral()}
}
