package llmjson

import "strings"

// Extractor narrows cleaned model output down to the region that should be parsed.
// It must return the input unchanged when nothing suitable is found.
type Extractor func(text string) string

// GreedyObject returns the span from the first '{' to the last '}' inclusive.
// Several top-level objects, or prose between them, end up in one span and
// will usually fail to parse; BalancedObject handles that case.
func GreedyObject(text string) string {
	start := strings.IndexByte(text, '{')
	end := strings.LastIndexByte(text, '}')
	if start < 0 || end < 0 || start >= end {
		return text
	}
	return text[start : end+1]
}

// BalancedObject returns the first brace-balanced object, ignoring braces that
// sit inside single- or double-quoted strings. An unterminated object falls
// back to GreedyObject.
func BalancedObject(text string) string {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return text
	}
	var (
		depth   int
		quote   byte
		escaped bool
	)
	for i := start; i < len(text); i++ {
		c := text[i]
		if quote != 0 {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == quote:
				quote = 0
			}
			continue
		}
		switch c {
		case '"', '\'':
			quote = c
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1]
			}
		}
	}
	return GreedyObject(text)
}

// ExtractorByName maps a config value to an extractor; unknown names get GreedyObject.
func ExtractorByName(name string) Extractor {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "balanced":
		return BalancedObject
	default:
		return GreedyObject
	}
}
