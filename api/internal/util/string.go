package util

import (
	"regexp"
	"strings"
)

var (
	openFenceRe  = regexp.MustCompile("(?i)```json\\s*")
	closeFenceRe = regexp.MustCompile("```\\s*")
)

// StripCodeFences вырезает маркеры ```json / ``` в любом месте текста:
// модель часто пишет пояснение до или после блока.
func StripCodeFences(s string) string {
	s = openFenceRe.ReplaceAllString(s, "")
	s = closeFenceRe.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}
