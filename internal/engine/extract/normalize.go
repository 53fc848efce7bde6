package extract

import (
	"regexp"
	"strings"
)

// A whitespace run may carry one embedded asterisk, the continuation marker
// of a multi-line block comment. Leftmost-first matching makes the asterisk
// branch win whenever it applies.
var commentNoise = regexp.MustCompile(`\s+\*\s+|\s+`)

// Normalize collapses whitespace runs and continuation-line markers in a
// block-comment body into single spaces and trims the result.
func Normalize(s string) string {
	return strings.TrimSpace(commentNoise.ReplaceAllString(s, " "))
}
