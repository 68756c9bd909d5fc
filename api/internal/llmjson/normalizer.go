// Package llmjson turns free-form model output into a JSON payload.
//
// The pipeline strips markdown fences, trims, narrows the text to the object
// region and then tries each parse strategy in order. Every input yields a
// Result; nothing in this package panics or returns an error to the caller.
package llmjson

import (
	"errors"
	"fmt"
	"strings"

	"formula-viz/api/internal/util"
)

type Normalizer struct {
	extract    Extractor
	strategies []Strategy
	reason     string
}

type Option func(*Normalizer)

func WithExtractor(e Extractor) Option {
	return func(n *Normalizer) {
		if e != nil {
			n.extract = e
		}
	}
}

func WithStrategies(s ...Strategy) Option {
	return func(n *Normalizer) { n.strategies = s }
}

// WithFailureReason overrides the user-facing failure message.
func WithFailureReason(reason string) Option {
	return func(n *Normalizer) { n.reason = reason }
}

func New(opts ...Option) *Normalizer {
	n := &Normalizer{
		extract:    GreedyObject,
		strategies: DefaultStrategies(),
		reason:     FailureReason,
	}
	for _, o := range opts {
		o(n)
	}
	return n
}

var defaultNormalizer = New()

// Normalize runs raw through the default pipeline.
func Normalize(raw string) Result {
	return defaultNormalizer.Normalize(raw)
}

// Normalize is safe for concurrent use: the Normalizer is never mutated after New.
func (n *Normalizer) Normalize(raw string) Result {
	text := Prepare(raw, n.extract)
	payload, err := n.parse(text)
	if err != nil {
		return Failure(n.reason, err.Error())
	}
	return Success(payload)
}

// Prepare applies the text stages (fences, trim, extraction) without parsing.
func Prepare(raw string, extract Extractor) string {
	text := util.StripCodeFences(raw)
	if extract == nil {
		extract = GreedyObject
	}
	return extract(text)
}

func (n *Normalizer) parse(text string) (payload any, err error) {
	if len(n.strategies) == 0 {
		return nil, ErrNoStrategy
	}
	var errs []error
	for _, s := range n.strategies {
		v, perr := tryParse(s, text)
		if perr == nil {
			return v, nil
		}
		errs = append(errs, perr)
	}
	return nil, fmt.Errorf("%w: %w", ErrSyntaxRecovery, errors.Join(errs...))
}

func tryParse(s Strategy, text string) (v any, err error) {
	defer func() {
		if r := recover(); r != nil {
			v, err = nil, fmt.Errorf("%s: panic: %v", s.Name(), r)
		}
	}()
	return s.Parse(text)
}

// Excerpt shortens text for logs.
func Excerpt(text string, limit int) string {
	text = strings.TrimSpace(text)
	r := []rune(text)
	if limit <= 0 || len(r) <= limit {
		return text
	}
	return string(r[:limit]) + "…"
}
