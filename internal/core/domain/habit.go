package domain

import (
	"encoding/json"
	"errors"
	"sort"
	"strings"
)

var (
	ErrHabitNameEmpty   = errors.New("habit name cannot be empty")
	ErrHabitNameTooLong = errors.New("habit name is too long (max 100 chars)")
)

const MaxHabitNameLen = 100

// Habit is a named checklist item with the set of days it was completed on.
// The name doubles as the identity key.
type Habit struct {
	Name      string
	completed map[Date]struct{}
}

// habitJSON is the persisted shape of a habit inside the habits blob.
type habitJSON struct {
	Name           string   `json:"name"`
	CompletedDates []string `json:"completedDates"`
}

func NormalizeHabitName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", ErrHabitNameEmpty
	}
	if len(trimmed) > MaxHabitNameLen {
		return "", ErrHabitNameTooLong
	}
	return trimmed, nil
}

func NewHabit(name string) (Habit, error) {
	clean, err := NormalizeHabitName(name)
	if err != nil {
		return Habit{}, err
	}
	return Habit{Name: clean}, nil
}

// HabitFromKeys builds a habit from raw date keys. Keys that do not parse are
// dropped.
func HabitFromKeys(name string, keys []string) Habit {
	h := Habit{Name: name}
	for _, k := range keys {
		d, err := ParseDate(k)
		if err != nil {
			continue
		}
		h.mark(d)
	}
	return h
}

func HabitFromDates(name string, dates ...Date) Habit {
	h := Habit{Name: name}
	for _, d := range dates {
		h.mark(d)
	}
	return h
}

func (h *Habit) mark(d Date) {
	if h.completed == nil {
		h.completed = make(map[Date]struct{})
	}
	h.completed[d] = struct{}{}
}

func (h Habit) CompletedOn(d Date) bool {
	_, ok := h.completed[d]
	return ok
}

func (h Habit) CompletionCount() int {
	return len(h.completed)
}

// Toggle returns a copy of the habit with membership of d flipped; the
// receiver is left untouched.
func (h Habit) Toggle(d Date) (Habit, bool) {
	next := h.Clone()
	if next.CompletedOn(d) {
		delete(next.completed, d)
		return next, false
	}
	next.mark(d)
	return next, true
}

func (h Habit) Rename(name string) Habit {
	next := h.Clone()
	next.Name = name
	return next
}

func (h Habit) Clone() Habit {
	c := Habit{Name: h.Name}
	if len(h.completed) > 0 {
		c.completed = make(map[Date]struct{}, len(h.completed))
		for d := range h.completed {
			c.completed[d] = struct{}{}
		}
	}
	return c
}

// Dates returns completed days in ascending order.
func (h Habit) Dates() []Date {
	dates := make([]Date, 0, len(h.completed))
	for d := range h.completed {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool {
		return dates[i].Before(dates[j])
	})
	return dates
}

func (h Habit) MarshalJSON() ([]byte, error) {
	dates := h.Dates()
	keys := make([]string, len(dates))
	for i, d := range dates {
		keys[i] = d.String()
	}
	return json.Marshal(habitJSON{Name: h.Name, CompletedDates: keys})
}

func (h *Habit) UnmarshalJSON(data []byte) error {
	var raw habitJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*h = HabitFromKeys(raw.Name, raw.CompletedDates)
	return nil
}

func FindHabit(habits []Habit, name string) int {
	for i, h := range habits {
		if h.Name == name {
			return i
		}
	}
	return -1
}
