package domain

import "errors"

var ErrSearchQueryEmpty = errors.New("search query cannot be empty")

type HabitMatch struct {
	Name   string `json:"name"`
	Streak int    `json:"streak"`
}

type MoodMatch struct {
	Emoji     string `json:"emoji"`
	Note      string `json:"note"`
	Date      Date   `json:"date"`
	Timestamp int64  `json:"timestamp"`
}

// SearchResults lists habits whose name and moods whose note contain the
// query, ignoring case. Both slices are non-nil.
type SearchResults struct {
	Query  string       `json:"query"`
	Habits []HabitMatch `json:"habits"`
	Moods  []MoodMatch  `json:"moods"`
}

func (r SearchResults) Empty() bool {
	return len(r.Habits) == 0 && len(r.Moods) == 0
}
