package llmjson

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// requotePythonStrings rewrites every quoted string in text ('...', "...",
// '''...''', """...""") as a JSON double-quoted string, decoding backslash
// escapes the way Python does. Text outside strings is copied unchanged.
func requotePythonStrings(text string) (string, error) {
	var b strings.Builder
	b.Grow(len(text) + 16)
	for i := 0; i < len(text); {
		c := text[i]
		if c != '\'' && c != '"' {
			b.WriteByte(c)
			i++
			continue
		}
		val, next, err := readPythonString(text, i)
		if err != nil {
			return "", err
		}
		b.WriteString(jsonQuote(val))
		i = next
	}
	return b.String(), nil
}

// readPythonString decodes the literal starting at text[start] and returns the
// index just past its closing quote.
func readPythonString(text string, start int) (string, int, error) {
	q := text[start]
	delim := string(q)
	if strings.HasPrefix(text[start:], strings.Repeat(delim, 3)) {
		delim = strings.Repeat(delim, 3)
	}
	var out strings.Builder
	i := start + len(delim)
	for i < len(text) {
		if strings.HasPrefix(text[i:], delim) {
			return out.String(), i + len(delim), nil
		}
		c := text[i]
		if c != '\\' {
			out.WriteByte(c)
			i++
			continue
		}
		n, err := decodePythonEscape(text, i, &out)
		if err != nil {
			return "", 0, err
		}
		i += n
	}
	return "", 0, fmt.Errorf("unterminated string starting at offset %d", start)
}

// decodePythonEscape writes the escape at text[i] (a backslash) and returns
// how many bytes it consumed. Unknown escapes keep the backslash.
func decodePythonEscape(text string, i int, out *strings.Builder) (int, error) {
	if i+1 >= len(text) {
		return 0, fmt.Errorf("dangling backslash at offset %d", i)
	}
	c := text[i+1]
	switch c {
	case '\n':
		return 2, nil
	case '\\', '\'', '"':
		out.WriteByte(c)
	case 'n':
		out.WriteByte('\n')
	case 't':
		out.WriteByte('\t')
	case 'r':
		out.WriteByte('\r')
	case 'a':
		out.WriteByte('\a')
	case 'b':
		out.WriteByte('\b')
	case 'f':
		out.WriteByte('\f')
	case 'v':
		out.WriteByte('\v')
	case 'x', 'u', 'U':
		width := map[byte]int{'x': 2, 'u': 4, 'U': 8}[c]
		if i+2+width > len(text) {
			return 0, fmt.Errorf(`truncated \%c escape at offset %d`, c, i)
		}
		r, err := strconv.ParseUint(text[i+2:i+2+width], 16, 32)
		if err != nil {
			return 0, fmt.Errorf(`bad \%c escape at offset %d`, c, i)
		}
		out.WriteRune(rune(r))
		return 2 + width, nil
	case '0', '1', '2', '3', '4', '5', '6', '7':
		j := i + 1
		for j < len(text) && j < i+4 && text[j] >= '0' && text[j] <= '7' {
			j++
		}
		r, _ := strconv.ParseUint(text[i+1:j], 8, 32)
		out.WriteRune(rune(r))
		return j - i, nil
	default:
		out.WriteByte('\\')
		out.WriteByte(c)
	}
	return 2, nil
}

func jsonQuote(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(s)
	return strings.TrimSuffix(buf.String(), "\n")
}
