package analytics_test

import (
	"testing"
	"time"

	"github.com/comitanigiacomo/kanso-wellness/internal/core/analytics"
	"github.com/comitanigiacomo/kanso-wellness/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayClassification(t *testing.T) {
	e := analytics.New(time.UTC)
	d := day(t, "2024-04-15")
	noon := d.Time().Add(12 * time.Hour)

	done := func(names ...string) []domain.Habit {
		out := make([]domain.Habit, 0, len(names))
		for _, n := range names {
			out = append(out, domain.HabitFromDates(n, d))
		}
		return append(out, domain.HabitFromDates("untouched"))
	}

	tests := []struct {
		name   string
		habits []domain.Habit
		moods  []domain.MoodEntry
		want   domain.DayLevel
	}{
		{"Success: Nothing done", done(), nil, domain.DayNone},
		{"Success: One habit", done("a"), nil, domain.DayOK},
		{"Success: Two habits no mood", done("a", "b"), nil, domain.DayGood},
		{"Success: Three habits and a mood", done("a", "b", "c"), []domain.MoodEntry{mood("😊", noon)}, domain.DayExcellent},
		{"Success: Three habits without mood", done("a", "b", "c"), nil, domain.DayGood},
		{"Success: Mood on another day", done("a", "b", "c"), []domain.MoodEntry{mood("😊", noon.Add(24*time.Hour))}, domain.DayGood},
		{"Success: Moods alone are not enough", done(), []domain.MoodEntry{mood("😊", noon)}, domain.DayNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.DayClassification(tt.habits, tt.moods, d))
		})
	}
}

func TestMonthCalendar(t *testing.T) {
	e := analytics.New(time.UTC)
	today := day(t, "2024-02-10")

	habits := []domain.Habit{run("a", today, 3), run("b", today, 1)}
	moods := []domain.MoodEntry{mood("😊", today.Time().Add(8*time.Hour))}

	cal := e.MonthCalendar(habits, moods, 2024, time.February, today)

	require.Len(t, cal.Days, 29)
	assert.Equal(t, 1, cal.Days[0].Day)
	assert.Equal(t, 29, cal.Days[28].Day)

	cell := cal.Days[9]
	assert.True(t, cell.IsToday)
	assert.Equal(t, 2, cell.CompletedHabits)
	assert.Equal(t, 2, cell.TotalHabits)
	assert.Equal(t, 1, cell.MoodCount)
	assert.Equal(t, domain.DayGood, cell.Level)

	assert.Equal(t, domain.DayOK, cal.Days[8].Level)
	assert.Equal(t, domain.DayNone, cal.Days[10].Level)

	assert.Equal(t, 3, cal.ActivityStreak)
	assert.Equal(t, 3, cal.BestStreak)
	assert.Equal(t, 4*100/(29*2), cal.CompletionRate)
}

func TestWeeklyProgress(t *testing.T) {
	e := analytics.New(time.UTC)
	today := day(t, "2024-05-05")

	s := domain.Snapshot{
		Habits: []domain.Habit{run("a", today, 7), domain.HabitFromDates("b", today)},
		Moods: []domain.MoodEntry{
			mood("😢", today.Time().Add(9*time.Hour)),
			mood("🥰", today.Time().Add(10*time.Hour)),
			mood("😄", today.AddDays(-3).Time().Add(10*time.Hour)),
		},
		Water: map[domain.Date]int{today: 6, today.AddDays(-1): 8, today.AddDays(-9): 20},
		Meditation: []domain.MeditationSession{
			{ID: "1", Type: domain.MeditationGuided, Duration: 10, StartTime: today.Time().Add(7 * time.Hour).UnixMilli(), Completed: true},
			{ID: "2", Type: domain.MeditationGuided, Duration: 15, StartTime: today.Time().Add(8 * time.Hour).UnixMilli(), Completed: false},
		},
	}

	report := e.WeeklyProgress(s, today)

	require.Len(t, report.Days, 7)
	assert.Equal(t, today.AddDays(-6), report.StartDate)
	assert.Equal(t, today, report.EndDate)
	assert.Equal(t, today.AddDays(-6), report.Days[0].Date)

	last := report.Days[6]
	assert.True(t, last.IsToday)
	assert.Equal(t, 2, last.HabitsCompleted)
	assert.Equal(t, 100, last.CompletionRate)
	assert.Equal(t, 2, last.MoodCount)
	assert.Equal(t, 3.0, last.MoodAverage)
	assert.Equal(t, 6, last.WaterGlasses)
	assert.Equal(t, 10, last.MeditationMinutes)

	assert.Equal(t, 8, report.HabitsCompleted)
	assert.Equal(t, 14, report.HabitsPossible)
	assert.Equal(t, 57, report.CompletionRate)
	assert.Equal(t, 14, report.WaterGlasses)
	assert.Equal(t, 10, report.MeditationMinutes)
	assert.Equal(t, 3.3, report.MoodAverage)
}

func TestHydration(t *testing.T) {
	e := analytics.New(time.UTC)
	today := day(t, "2024-05-05")

	h := e.Hydration(map[domain.Date]int{today: 10, today.AddDays(-2): 3}, 8, today)

	assert.Equal(t, 10, h.Glasses)
	assert.Equal(t, 100, h.Percent, "percent is capped")
	require.Len(t, h.History, 7)
	assert.Equal(t, 3, h.History[4].Glasses)
	assert.Equal(t, today, h.History[6].Date)
}

func TestMeditationSummary(t *testing.T) {
	e := analytics.New(time.UTC)
	today := day(t, "2024-05-05")
	at := func(d domain.Date) int64 { return d.Time().Add(7 * time.Hour).UnixMilli() }

	sessions := []domain.MeditationSession{
		{Duration: 10, StartTime: at(today), Completed: true},
		{Duration: 5, StartTime: at(today.AddDays(-6)), Completed: true},
		{Duration: 20, StartTime: at(today.AddDays(-7)), Completed: true},
		{Duration: 30, StartTime: at(today), Completed: false},
	}

	sum := e.MeditationSummary(sessions, today)
	assert.Equal(t, domain.MeditationSummary{TotalSessions: 3, TotalMinutes: 35, WeekSessions: 2, MinutesToday: 10}, sum)
}
