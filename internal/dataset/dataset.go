// Package dataset is the dictionary data collaborator: it loads the static
// Numèè word list once, validates it, and hands the rest of the application
// an ordered, immutable sequence of entries. Nothing downstream parses or
// mutates the source format.
package dataset

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/numee-project/numee-backend/internal/domain"
)

//go:embed data/numee.json
var embedded embed.FS

// Load returns the dictionary entries in source order. When path is empty
// the embedded dataset is used; otherwise the JSON file at path replaces it
// (same schema).
func Load(path string) ([]domain.Entry, error) {
	var (
		raw []byte
		err error
		src = "embedded"
	)
	if path == "" {
		raw, err = embedded.ReadFile("data/numee.json")
	} else {
		raw, err = os.ReadFile(path)
		src = path
	}
	if err != nil {
		return nil, fmt.Errorf("dataset: read %s: %w", src, err)
	}

	var entries []domain.Entry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("dataset: parse %s: %w", src, err)
	}

	if err := validate(entries); err != nil {
		return nil, fmt.Errorf("dataset: %s: %w", src, err)
	}
	return entries, nil
}

// validate enforces the contract the core relies on: every entry carries a
// headword and a French gloss.
func validate(entries []domain.Entry) error {
	for i, e := range entries {
		if e.Numee == "" {
			return fmt.Errorf("entry %d: missing numee headword: %w", i, domain.ErrValidation)
		}
		if e.French == "" {
			return fmt.Errorf("entry %d (%s): missing french gloss: %w", i, e.Numee, domain.ErrValidation)
		}
	}
	return nil
}
