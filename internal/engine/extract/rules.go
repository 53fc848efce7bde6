// Package extract pulls error-code definitions out of raw header text.
//
// A fixed, ordered cascade of pattern rules is applied per file: the first
// rule that yields at least one definition wins for the whole file and the
// remaining rules are never consulted, even if they would also match. The
// rules target the definition idioms actually found in OS error headers,
// not the C grammar.
package extract

import "regexp"

// Rule names, reported alongside extraction results for logging.
const (
	// RuleDefineComment matches `#define NAME NUMBER ... /* description */`.
	RuleDefineComment = "define-comment"
	// RuleEnumComment matches `NAME = NUMBER, // description`.
	RuleEnumComment = "enum-line-comment"
	// RuleEnumBare matches `NAME = NUMBER` without a description.
	RuleEnumBare = "enum-bare"
)

// Definition is one raw extracted tuple. Number keeps its literal textual
// form, including a leading minus sign.
type Definition struct {
	Name        string
	Number      string
	Description string
}

type rule struct {
	name    string
	pattern *regexp.Regexp
	build   func(match []string) Definition
}

// The cascade, in fixed priority order. The define form tolerates arbitrary
// text and newlines between the number and the opening comment delimiter
// (non-greedy), so a comment several lines below its define is still picked
// up. The enum forms are line-local and unsigned; the comment form only
// claims a comment sitting on the definition's own line.
var rules = []rule{
	{
		name:    RuleDefineComment,
		pattern: regexp.MustCompile(`(?s)#define\s+([A-Za-z_]\w*)\s+(-?\d+)\b.*?/\*\s*(.*?)\s*\*/`),
		build: func(m []string) Definition {
			return Definition{Name: m[1], Number: m[2], Description: Normalize(m[3])}
		},
	},
	{
		name:    RuleEnumComment,
		pattern: regexp.MustCompile(`(?m)^[ \t]*([A-Za-z_]\w*)[ \t]*=[ \t]*(\d+)[ \t]*,?[ \t]*//[ \t]*(.*)$`),
		build: func(m []string) Definition {
			return Definition{Name: m[1], Number: m[2], Description: m[3]}
		},
	},
	{
		name:    RuleEnumBare,
		pattern: regexp.MustCompile(`([A-Za-z_]\w*)\s*=\s*(\d+)`),
		build: func(m []string) Definition {
			return Definition{Name: m[1], Number: m[2]}
		},
	},
}

// Extract applies the cascade to a file's full text. It returns the winning
// rule's definitions in text order and the winning rule's name, or a nil
// slice and an empty name when no rule matches.
func Extract(text string) ([]Definition, string) {
	for _, r := range rules {
		matches := r.pattern.FindAllStringSubmatch(text, -1)
		if len(matches) == 0 {
			continue
		}
		defs := make([]Definition, 0, len(matches))
		for _, m := range matches {
			defs = append(defs, r.build(m))
		}
		return defs, r.name
	}
	return nil, ""
}
