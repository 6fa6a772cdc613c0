// Package analytics derives streaks, completion rates, mood trends and
// calendar aggregates from a snapshot of habits and moods. Every function is
// pure: the reference day or instant is always passed in, the wall clock is
// never read.
package analytics

import (
	"time"

	"github.com/comitanigiacomo/kanso-wellness/internal/core/domain"
)

const (
	weekDays  = 7
	dayMillis = int64(24 * time.Hour / time.Millisecond)
)

// Engine holds only the zone used to place mood timestamps on calendar days.
type Engine struct {
	loc *time.Location
}

func New(loc *time.Location) *Engine {
	if loc == nil {
		loc = time.UTC
	}
	return &Engine{loc: loc}
}

func (e *Engine) Location() *time.Location {
	return e.loc
}

// Today maps an instant to the calendar day it falls on in the engine zone.
func (e *Engine) Today(now time.Time) domain.Date {
	return domain.DateOf(now, e.loc)
}

// CurrentStreak counts consecutive completed days walking back from ref. It
// is 0 when ref itself is not completed.
func (e *Engine) CurrentStreak(h domain.Habit, ref domain.Date) int {
	streak := 0
	for d := ref; h.CompletedOn(d); d = d.AddDays(-1) {
		streak++
	}
	return streak
}

// BestStreak is the highest current streak across habits at ref. It is not a
// historical maximum; see LongestStreak for that.
func (e *Engine) BestStreak(habits []domain.Habit, ref domain.Date) int {
	best := 0
	for _, h := range habits {
		if s := e.CurrentStreak(h, ref); s > best {
			best = s
		}
	}
	return best
}

// LongestStreak scans the full completion history of every habit and returns
// the longest unbroken run ever recorded.
func (e *Engine) LongestStreak(habits []domain.Habit) int {
	longest := 0
	for _, h := range habits {
		run := 0
		var prev domain.Date
		for _, d := range h.Dates() {
			if run > 0 && d == prev.AddDays(1) {
				run++
			} else {
				run = 1
			}
			prev = d
			if run > longest {
				longest = run
			}
		}
	}
	return longest
}

// AverageStreak is the mean current streak at ref, truncated.
func (e *Engine) AverageStreak(habits []domain.Habit, ref domain.Date) int {
	if len(habits) == 0 {
		return 0
	}
	return e.streakSum(habits, ref) / len(habits)
}

func (e *Engine) streakSum(habits []domain.Habit, ref domain.Date) int {
	sum := 0
	for _, h := range habits {
		sum += e.CurrentStreak(h, ref)
	}
	return sum
}

// ActivityStreak counts back from ref while at least one habit was completed.
func (e *Engine) ActivityStreak(habits []domain.Habit, ref domain.Date) int {
	streak := 0
	for d := ref; e.CompletedCount(habits, d) > 0; d = d.AddDays(-1) {
		streak++
	}
	return streak
}

// PerfectStreak counts back from ref while every habit was completed. With no
// habits there is nothing to be perfect at and the streak is 0.
func (e *Engine) PerfectStreak(habits []domain.Habit, ref domain.Date) int {
	if len(habits) == 0 {
		return 0
	}
	streak := 0
	for d := ref; e.CompletedCount(habits, d) == len(habits); d = d.AddDays(-1) {
		streak++
	}
	return streak
}

// CompletedCount is the number of habits completed on d.
func (e *Engine) CompletedCount(habits []domain.Habit, d domain.Date) int {
	n := 0
	for _, h := range habits {
		if h.CompletedOn(d) {
			n++
		}
	}
	return n
}

// DailyCompletionRate is the truncated percentage of habits completed on d.
func (e *Engine) DailyCompletionRate(habits []domain.Habit, d domain.Date) int {
	if len(habits) == 0 {
		return 0
	}
	return e.CompletedCount(habits, d) * 100 / len(habits)
}

// WeeklyCompletionRate covers the seven days ending at ref inclusive and
// rounds half up.
func (e *Engine) WeeklyCompletionRate(habits []domain.Habit, ref domain.Date) int {
	if len(habits) == 0 {
		return 0
	}
	completed := 0
	for i := 0; i < weekDays; i++ {
		completed += e.CompletedCount(habits, ref.AddDays(-i))
	}
	return roundPercent(completed, len(habits)*weekDays)
}

// MonthlyCompletionRate covers every day of the month and truncates.
func (e *Engine) MonthlyCompletionRate(habits []domain.Habit, year int, month time.Month) int {
	if len(habits) == 0 {
		return 0
	}
	possible, completed := 0, 0
	for day := 1; day <= domain.DaysIn(year, month); day++ {
		possible += len(habits)
		completed += e.CompletedCount(habits, domain.NewDate(year, month, day))
	}
	return completed * 100 / possible
}

// roundPercent returns round(part/whole*100) with halves rounded up.
func roundPercent(part, whole int) int {
	return (200*part + whole) / (2 * whole)
}

func roundRatio(sum, n int) int {
	return (2*sum + n) / (2 * n)
}
