// Package rank filters and orders error records against a numeric query.
package rank

import (
	"sort"
	"strings"

	"go.errdex.dev/errdex/internal/core/domain"
)

// Base scores per match kind. Within a kind, closer matches score higher:
// prefixes lose a point per unmatched trailing character, substrings lose a
// point per character of offset, subsequences lose a point per skipped
// character.
const (
	scoreExact       = 1000
	scorePrefix      = 600
	scoreSubstring   = 250
	scoreSubsequence = 100
)

type scored struct {
	record domain.ErrorRecord
	score  int
}

// Rank returns the records whose number matches the query, best match first.
// Ties keep cache order. An empty query selects every record unchanged.
func Rank(records []domain.ErrorRecord, query string) []domain.ErrorRecord {
	if query == "" {
		return records
	}

	matched := make([]scored, 0, len(records))
	for _, r := range records {
		s, ok := score(r.Number, query)
		if !ok {
			continue
		}
		matched = append(matched, scored{record: r, score: s})
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].score > matched[j].score
	})

	out := make([]domain.ErrorRecord, len(matched))
	for i, m := range matched {
		out[i] = m.record
	}
	return out
}

func score(number, query string) (int, bool) {
	switch {
	case number == query:
		return scoreExact, true
	case strings.HasPrefix(number, query):
		return scorePrefix - (len(number) - len(query)), true
	case strings.Contains(number, query):
		return scoreSubstring - strings.Index(number, query), true
	}

	gaps, ok := subsequenceGaps(number, query)
	if !ok {
		return 0, false
	}
	return scoreSubsequence - gaps, true
}

// subsequenceGaps reports whether query occurs in order within number and
// how many characters were skipped along the way.
func subsequenceGaps(number, query string) (int, bool) {
	gaps := 0
	qi := 0
	for i := 0; i < len(number) && qi < len(query); i++ {
		if number[i] == query[qi] {
			qi++
		} else {
			gaps++
		}
	}
	if qi < len(query) {
		return 0, false
	}
	return gaps, true
}
