package dictionary

import (
	"time"

	"github.com/numee-project/numee-backend/internal/domain"
)

// WordOfDay picks the deterministic word for the calendar day of date:
// the ordinal day of the year (1 for January 1st) modulo the entry count.
// The same date and the same sequence always yield the same entry; the
// pick changes only at local midnight or when the sequence length changes.
// Returns nil for an empty sequence.
func WordOfDay(entries []domain.Entry, date time.Time) *domain.Entry {
	if len(entries) == 0 {
		return nil
	}
	idx := date.YearDay() % len(entries)
	return &entries[idx]
}

// WordOfDay returns today's word, or nil if the dictionary is empty.
func (s *Service) WordOfDay() *domain.Entry {
	return WordOfDay(s.entries, time.Now())
}
