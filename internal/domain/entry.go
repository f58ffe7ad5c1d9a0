package domain

// Entry is one immutable record of the Numèè dictionary. Entries are loaded
// once from the external dataset, in source order, and are never mutated by
// the application.
type Entry struct {
	Numee          string    `json:"numee"`
	French         string    `json:"french"`
	Phonetic       string    `json:"phonetic,omitempty"`
	Type           string    `json:"type,omitempty"`
	Definition     string    `json:"definition,omitempty"`
	Literal        string    `json:"literal,omitempty"`
	Variants       string    `json:"variants,omitempty"`
	Homonym        string    `json:"homonym,omitempty"`
	CrossReference string    `json:"crossReference,omitempty"`
	Examples       []Example `json:"examples,omitempty"`
}

// Example is a pair of parallel sentences. Both fields empty is a valid
// placeholder meaning "no example".
type Example struct {
	Numee  string `json:"numee"`
	French string `json:"french"`
}

// IsPlaceholder reports whether the example carries no content.
func (e Example) IsPlaceholder() bool {
	return e.Numee == "" && e.French == ""
}

// HasExample reports whether the entry has at least one non-placeholder
// example.
func (e *Entry) HasExample() bool {
	for _, ex := range e.Examples {
		if !ex.IsPlaceholder() {
			return true
		}
	}
	return false
}

// MainExample returns the first non-placeholder example, or nil.
func (e *Entry) MainExample() *Example {
	for i := range e.Examples {
		if !e.Examples[i].IsPlaceholder() {
			return &e.Examples[i]
		}
	}
	return nil
}
