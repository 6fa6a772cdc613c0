package analytics_test

import (
	"testing"
	"time"

	"github.com/comitanigiacomo/kanso-wellness/internal/core/analytics"
	"github.com/comitanigiacomo/kanso-wellness/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(t *testing.T, s string) domain.Date {
	t.Helper()
	d, err := domain.ParseDate(s)
	require.NoError(t, err)
	return d
}

// run returns a habit completed on the n days ending at last.
func run(name string, last domain.Date, n int) domain.Habit {
	dates := make([]domain.Date, 0, n)
	for i := 0; i < n; i++ {
		dates = append(dates, last.AddDays(-i))
	}
	return domain.HabitFromDates(name, dates...)
}

func empties(n int) []domain.Habit {
	out := make([]domain.Habit, n)
	for i := range out {
		out[i] = domain.HabitFromDates(string(rune('b' + i)))
	}
	return out
}

func TestCurrentStreak(t *testing.T) {
	e := analytics.New(time.UTC)
	ref := domain.NewDate(2024, time.March, 10)

	tests := []struct {
		name  string
		habit domain.Habit
		ref   domain.Date
		want  int
	}{
		{"Success: Empty habit is always 0", domain.HabitFromDates("empty"), ref, 0},
		{"Success: Six day run", run("six", ref, 6), ref, 6},
		{"Success: Reference day missing", run("gap", ref.AddDays(-1), 5), ref, 0},
		{"Success: Crosses year boundary", run("year", domain.NewDate(2024, time.January, 2), 4), domain.NewDate(2024, time.January, 2), 4},
		{"Success: Crosses leap day", run("leap", domain.NewDate(2024, time.March, 1), 3), domain.NewDate(2024, time.March, 1), 3},
		{"Success: Gap stops the walk", domain.HabitFromDates("split", ref, ref.AddDays(-1), ref.AddDays(-3)), ref, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.CurrentStreak(tt.habit, tt.ref))
		})
	}

	t.Run("Success: Empty habit for any reference date", func(t *testing.T) {
		h := domain.HabitFromDates("empty")
		for i := -400; i <= 400; i += 37 {
			assert.Zero(t, e.CurrentStreak(h, ref.AddDays(i)))
		}
	})

	t.Run("Success: Not completed six days prior", func(t *testing.T) {
		h := run("six", ref, 6)
		require.False(t, h.CompletedOn(ref.AddDays(-6)))
		assert.Equal(t, 6, e.CurrentStreak(h, ref))
	})
}

func TestBestAndLongestStreak(t *testing.T) {
	e := analytics.New(time.UTC)
	ref := domain.NewDate(2024, time.June, 30)

	old := run("old", ref.AddDays(-20), 12)
	old = domain.HabitFromDates("old", append(old.Dates(), ref, ref.AddDays(-1))...)
	fresh := run("fresh", ref, 5)

	habits := []domain.Habit{old, fresh}

	assert.Equal(t, 5, e.BestStreak(habits, ref), "best streak is the highest current streak")
	assert.Equal(t, 12, e.LongestStreak(habits), "longest streak scans the whole history")
	assert.Equal(t, 3, e.AverageStreak(habits, ref), "(2+5)/2 truncates")
	assert.Zero(t, e.BestStreak(nil, ref))
	assert.Zero(t, e.LongestStreak(nil))
	assert.Zero(t, e.AverageStreak(nil, ref))
}

func TestActivityAndPerfectStreak(t *testing.T) {
	e := analytics.New(time.UTC)
	ref := domain.NewDate(2024, time.June, 30)

	a := run("a", ref, 4)
	b := domain.HabitFromDates("b", ref, ref.AddDays(-1), ref.AddDays(-4))
	habits := []domain.Habit{a, b}

	assert.Equal(t, 5, e.ActivityStreak(habits, ref))
	assert.Equal(t, 2, e.PerfectStreak(habits, ref))
	assert.Zero(t, e.PerfectStreak(nil, ref))
	assert.Zero(t, e.ActivityStreak(nil, ref))
}

func TestWeeklyCompletionRate(t *testing.T) {
	e := analytics.New(time.UTC)
	ref := domain.NewDate(2024, time.March, 10)

	tests := []struct {
		name   string
		habits []domain.Habit
		want   int
	}{
		{"Success: Half complete", []domain.Habit{run("a", ref, 7), domain.HabitFromDates("b")}, 50},
		{"Success: No habits", nil, 0},
		{"Success: Days outside window ignored", []domain.Habit{run("a", ref.AddDays(-4), 10)}, 43},
		{"Success: Rounds half up", append([]domain.Habit{run("a", ref, 7)}, empties(7)...), 13},
		{"Success: Full week", []domain.Habit{run("a", ref, 30)}, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.WeeklyCompletionRate(tt.habits, ref))
		})
	}
}

func TestDailyCompletionRate(t *testing.T) {
	e := analytics.New(time.UTC)
	ref := domain.NewDate(2024, time.March, 10)
	habits := []domain.Habit{run("a", ref, 1), domain.HabitFromDates("b"), domain.HabitFromDates("c")}

	assert.Equal(t, 33, e.DailyCompletionRate(habits, ref))
	assert.Zero(t, e.DailyCompletionRate(nil, ref))
}

func TestMonthlyCompletionRate(t *testing.T) {
	e := analytics.New(time.UTC)

	t.Run("Success: Leap February has 29 days", func(t *testing.T) {
		h := run("a", domain.NewDate(2024, time.February, 29), 29)
		assert.Equal(t, 100, e.MonthlyCompletionRate([]domain.Habit{h}, 2024, time.February))

		short := run("a", domain.NewDate(2024, time.February, 28), 28)
		assert.Equal(t, 96, e.MonthlyCompletionRate([]domain.Habit{short}, 2024, time.February))
	})

	t.Run("Success: Non leap February", func(t *testing.T) {
		h := run("a", domain.NewDate(2023, time.February, 28), 28)
		assert.Equal(t, 100, e.MonthlyCompletionRate([]domain.Habit{h}, 2023, time.February))
	})

	t.Run("Success: Truncates", func(t *testing.T) {
		h := run("a", domain.NewDate(2024, time.January, 10), 10)
		assert.Equal(t, 32, e.MonthlyCompletionRate([]domain.Habit{h}, 2024, time.January))
	})

	t.Run("Success: No habits", func(t *testing.T) {
		assert.Zero(t, e.MonthlyCompletionRate(nil, 2024, time.February))
	})
}

func TestEngine_Idempotent(t *testing.T) {
	e := analytics.New(time.UTC)
	now := time.Date(2024, time.March, 10, 18, 0, 0, 0, time.UTC)
	ref := e.Today(now)

	s := domain.Snapshot{
		Habits: []domain.Habit{run("a", ref, 9), run("b", ref.AddDays(-2), 3), domain.HabitFromDates("c")},
		Moods: []domain.MoodEntry{
			{Emoji: "😢", Timestamp: now.Add(-50 * time.Hour).UnixMilli()},
			{Emoji: "🥰", Timestamp: now.Add(-2 * time.Hour).UnixMilli()},
			{Emoji: "😐", Timestamp: now.Add(-26 * time.Hour).UnixMilli()},
		},
	}

	first := e.Summary(s, now)
	second := e.Summary(s, now)
	assert.Equal(t, first, second)

	assert.Equal(t, e.MonthCalendar(s.Habits, s.Moods, 2024, time.March, ref), e.MonthCalendar(s.Habits, s.Moods, 2024, time.March, ref))
	assert.Equal(t, e.WeeklyProgress(s, ref), e.WeeklyProgress(s, ref))
}
