package analytics

import (
	"time"

	"github.com/comitanigiacomo/kanso-wellness/internal/core/domain"
)

const (
	excellentHabits = 3
	goodHabits      = 2
	okHabits        = 1
)

// DayClassification applies the fixed calendar thresholds to a single day.
func (e *Engine) DayClassification(habits []domain.Habit, moods []domain.MoodEntry, d domain.Date) domain.DayLevel {
	return classify(e.CompletedCount(habits, d), e.MoodsOn(moods, d))
}

func classify(completed, moodCount int) domain.DayLevel {
	switch {
	case completed >= excellentHabits && moodCount >= 1:
		return domain.DayExcellent
	case completed >= goodHabits:
		return domain.DayGood
	case completed >= okHabits:
		return domain.DayOK
	default:
		return domain.DayNone
	}
}

// MonthCalendar builds one cell per day of the month. Streaks are evaluated
// at today, which need not fall inside the month.
func (e *Engine) MonthCalendar(habits []domain.Habit, moods []domain.MoodEntry, year int, month time.Month, today domain.Date) domain.MonthCalendar {
	days := domain.DaysIn(year, month)
	cal := domain.MonthCalendar{
		Year:           year,
		Month:          month,
		Days:           make([]domain.CalendarDay, 0, days),
		ActivityStreak: e.ActivityStreak(habits, today),
		BestStreak:     e.BestStreak(habits, today),
		CompletionRate: e.MonthlyCompletionRate(habits, year, month),
	}

	for day := 1; day <= days; day++ {
		d := domain.NewDate(year, month, day)
		completed := e.CompletedCount(habits, d)
		moodCount := e.MoodsOn(moods, d)
		cal.Days = append(cal.Days, domain.CalendarDay{
			Day:             day,
			Date:            d,
			CompletedHabits: completed,
			TotalHabits:     len(habits),
			MoodCount:       moodCount,
			Level:           classify(completed, moodCount),
			IsToday:         d == today,
		})
	}
	return cal
}

// WeeklyProgress reports the seven days ending at today, oldest first.
func (e *Engine) WeeklyProgress(s domain.Snapshot, today domain.Date) domain.WeeklyReport {
	report := domain.WeeklyReport{
		StartDate: today.AddDays(-(weekDays - 1)),
		EndDate:   today,
		Days:      make([]domain.DayProgress, 0, weekDays),
	}

	var weekMoods []domain.MoodEntry
	for i := weekDays - 1; i >= 0; i-- {
		d := today.AddDays(-i)
		completed := e.CompletedCount(s.Habits, d)
		row := domain.DayProgress{
			Date:              d,
			HabitsCompleted:   completed,
			TotalHabits:       len(s.Habits),
			CompletionRate:    e.DailyCompletionRate(s.Habits, d),
			MoodCount:         e.MoodsOn(s.Moods, d),
			MoodAverage:       e.MoodAverageOn(s.Moods, d),
			WaterGlasses:      s.Water[d],
			MeditationMinutes: e.MeditationMinutesOn(s.Meditation, d),
			IsToday:           d == today,
		}
		report.Days = append(report.Days, row)

		report.HabitsCompleted += completed
		report.HabitsPossible += len(s.Habits)
		report.WaterGlasses += row.WaterGlasses
		report.MeditationMinutes += row.MeditationMinutes
		for _, m := range s.Moods {
			if domain.DateOf(m.Time(), e.loc) == d {
				weekMoods = append(weekMoods, m)
			}
		}
	}

	if report.HabitsPossible > 0 {
		report.CompletionRate = roundPercent(report.HabitsCompleted, report.HabitsPossible)
	}
	report.MoodAverage = roundTenth(averageLevel(weekMoods))
	return report
}

// MeditationMinutesOn sums completed sessions that started on d.
func (e *Engine) MeditationMinutesOn(sessions []domain.MeditationSession, d domain.Date) int {
	total := 0
	for _, s := range sessions {
		if s.Completed && domain.DateOf(s.Start(), e.loc) == d {
			total += s.Duration
		}
	}
	return total
}

// MeditationSummary totals completed sessions overall, in the trailing week
// ending at today, and on today itself.
func (e *Engine) MeditationSummary(sessions []domain.MeditationSession, today domain.Date) domain.MeditationSummary {
	var sum domain.MeditationSummary
	weekStart := today.AddDays(-(weekDays - 1))
	for _, s := range sessions {
		if !s.Completed {
			continue
		}
		sum.TotalSessions++
		sum.TotalMinutes += s.Duration

		d := domain.DateOf(s.Start(), e.loc)
		if !d.Before(weekStart) && !d.After(today) {
			sum.WeekSessions++
		}
		if d == today {
			sum.MinutesToday += s.Duration
		}
	}
	return sum
}

// Hydration reports intake against goal for today plus the trailing week.
func (e *Engine) Hydration(water map[domain.Date]int, goal int, today domain.Date) domain.Hydration {
	h := domain.Hydration{
		Date:    today,
		Glasses: water[today],
		Goal:    goal,
		History: make([]domain.WaterDay, 0, weekDays),
	}
	if goal > 0 {
		h.Percent = h.Glasses * 100 / goal
		if h.Percent > 100 {
			h.Percent = 100
		}
	}
	for i := weekDays - 1; i >= 0; i-- {
		d := today.AddDays(-i)
		h.History = append(h.History, domain.WaterDay{Date: d, Glasses: water[d]})
	}
	return h
}
