package llmjson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequotePythonStrings(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"single quotes", `{'a': 'b'}`, `{"a": "b"}`},
		{"escaped quote", `['don\'t']`, `["don't"]`},
		{"apostrophe inside double quotes", `{"a": "it's"}`, `{"a": "it's"}`},
		{"double quote inside single quotes", `['say "hi"']`, `["say \"hi\""]`},
		{"newline and tab", `['a\nb\tc']`, `["a\nb\tc"]`},
		{"escaped backslash", `['\\frac']`, `["\\frac"]`},
		{"unknown escape keeps backslash", `['\cdot']`, `["\\cdot"]`},
		{"hex and unicode", `['\x41ت\U0001F600']`, `["Aت😀"]`},
		{"octal", `['\101\0']`, `["A\u0000"]`},
		{"line continuation", "['ab\\\ncd']", `["abcd"]`},
		{"triple quoted", `['''it's "x"''']`, `["it's \"x\""]`},
		{"html stays raw", `['<b>&</b>']`, `["<b>&</b>"]`},
		{"no strings", `{a: 1, b: [True, None]}`, `{a: 1, b: [True, None]}`},
	}
	for _, tc := range cases {
		t.Run("Should handle "+tc.name, func(t *testing.T) {
			got, err := requotePythonStrings(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	t.Run("Should reject an unterminated string", func(t *testing.T) {
		_, err := requotePythonStrings(`{'a': 'open}`)
		assert.Error(t, err)
	})

	t.Run("Should reject a truncated hex escape", func(t *testing.T) {
		_, err := requotePythonStrings(`['\x4']`)
		assert.Error(t, err)
	})

	t.Run("Should reject a malformed unicode escape", func(t *testing.T) {
		_, err := requotePythonStrings(`['\uZZZZ']`)
		assert.Error(t, err)
	})
}
