package dictionary

import (
	"strings"

	"github.com/numee-project/numee-backend/internal/domain"
)

// FilterEntries returns the subsequence of entries matching the query, in
// source order. It is a pure function of its inputs; results are recomputed
// on every call rather than cached.
//
// Policy, in priority order (the modes are exclusive by construction of
// QueryState):
//  1. active letter — folded headword starts with the folded letter;
//  2. active term — the folded term is a substring of any of the folded
//     headword, French gloss, definition, variants, or literal translation.
//     An empty term (an explicit empty search) matches every entry;
//  3. no query — empty result. This is the initial "choose something"
//     state, distinct from a search that found nothing.
func FilterEntries(entries []domain.Entry, q domain.QueryState) []domain.Entry {
	switch q.Kind {
	case domain.QueryLetter:
		letter := domain.Fold(q.Letter)
		var out []domain.Entry
		for _, e := range entries {
			if strings.HasPrefix(domain.Fold(e.Numee), letter) {
				out = append(out, e)
			}
		}
		return out

	case domain.QueryTerm:
		term := domain.Fold(q.Term)
		var out []domain.Entry
		for _, e := range entries {
			if entryMatchesTerm(&e, term) {
				out = append(out, e)
			}
		}
		return out

	default:
		return nil
	}
}

// entryMatchesTerm reports whether the folded term occurs in any searchable
// field. One matching field is enough.
func entryMatchesTerm(e *domain.Entry, foldedTerm string) bool {
	for _, field := range []string{e.Numee, e.French, e.Definition, e.Variants, e.Literal} {
		if field == "" {
			continue
		}
		if strings.Contains(domain.Fold(field), foldedTerm) {
			return true
		}
	}
	// The empty term matches even an entry whose optional fields are all
	// empty: headword and gloss are always present.
	return foldedTerm == "" && (e.Numee != "" || e.French != "")
}

// CleanReference strips the bracket and parenthesis characters a
// cross-reference value is wrapped in ("{Kwârè}", "(Dèèma)") so it can be
// fed back into a term search.
func CleanReference(value string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '{', '}', '(', ')':
			return -1
		}
		return r
	}, value)
}
