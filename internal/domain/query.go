package domain

// QueryKind discriminates the single active mode of a dictionary query.
type QueryKind string

const (
	QueryNone   QueryKind = "none"
	QueryLetter QueryKind = "letter"
	QueryTerm   QueryKind = "term"
)

func (k QueryKind) String() string { return string(k) }

// QueryState is the dictionary's single-valued query choice: no query, an
// active first-letter filter, or an active free-text term. Letter and term
// are mutually exclusive by construction; there is no way to hold both.
//
// The zero value is the no-query state.
type QueryState struct {
	Kind   QueryKind `json:"kind"`
	Letter string    `json:"letter,omitempty"`
	Term   string    `json:"term,omitempty"`
}

// NoQuery returns the initial "prompt the user to choose" state.
func NoQuery() QueryState {
	return QueryState{Kind: QueryNone}
}

// LetterQuery returns a state filtering by first letter.
func LetterQuery(letter string) QueryState {
	return QueryState{Kind: QueryLetter, Letter: letter}
}

// TermQuery returns a state filtering by free-text term. An empty term is a
// valid query (an explicit search action), distinct from NoQuery.
func TermQuery(term string) QueryState {
	return QueryState{Kind: QueryTerm, Term: term}
}

// IsActive reports whether any filter is in effect.
func (q QueryState) IsActive() bool {
	return q.Kind == QueryLetter || q.Kind == QueryTerm
}

// ToggleLetter returns the state after the user clicks a letter: selecting
// the already-active letter clears the filter, any other letter replaces
// whatever was active (letter or term).
func (q QueryState) ToggleLetter(letter string) QueryState {
	if q.Kind == QueryLetter && q.Letter == letter {
		return NoQuery()
	}
	return LetterQuery(letter)
}

// Valid reports whether the state holds exactly one of its modes. Used when
// reading persisted state; anything else is treated as no query.
func (q QueryState) Valid() bool {
	switch q.Kind {
	case QueryNone:
		return q.Letter == "" && q.Term == ""
	case QueryLetter:
		return q.Letter != "" && q.Term == ""
	case QueryTerm:
		return q.Letter == ""
	}
	return false
}
