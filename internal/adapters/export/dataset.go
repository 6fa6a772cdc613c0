// Package export renders weekly wellness reports as CSV or PDF.
package export

import (
	"strconv"

	"github.com/comitanigiacomo/kanso-wellness/internal/core/domain"
)

type Dataset struct {
	Headers []string
	Rows    []map[string]string
}

var weeklyHeaders = []string{"date", "habits_completed", "total_habits", "completion_rate", "moods", "mood_average", "water_glasses", "meditation_minutes"}

// WeeklyDataset lays a report out as one row per day plus a "total" row.
func WeeklyDataset(r domain.WeeklyReport) Dataset {
	rows := make([]map[string]string, 0, len(r.Days)+1)
	for _, d := range r.Days {
		rows = append(rows, map[string]string{
			"date":               d.Date.String(),
			"habits_completed":   strconv.Itoa(d.HabitsCompleted),
			"total_habits":       strconv.Itoa(d.TotalHabits),
			"completion_rate":    strconv.Itoa(d.CompletionRate) + "%",
			"moods":              strconv.Itoa(d.MoodCount),
			"mood_average":       formatAverage(d.MoodAverage),
			"water_glasses":      strconv.Itoa(d.WaterGlasses),
			"meditation_minutes": strconv.Itoa(d.MeditationMinutes),
		})
	}

	rows = append(rows, map[string]string{
		"date":               "total",
		"habits_completed":   strconv.Itoa(r.HabitsCompleted),
		"total_habits":       strconv.Itoa(r.HabitsPossible),
		"completion_rate":    strconv.Itoa(r.CompletionRate) + "%",
		"moods":              "",
		"mood_average":       formatAverage(r.MoodAverage),
		"water_glasses":      strconv.Itoa(r.WaterGlasses),
		"meditation_minutes": strconv.Itoa(r.MeditationMinutes),
	})

	return Dataset{Headers: weeklyHeaders, Rows: rows}
}

func formatAverage(v float64) string {
	if v == 0 {
		return "-"
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}
