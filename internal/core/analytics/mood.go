package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/comitanigiacomo/kanso-wellness/internal/core/domain"
)

const trendScale = 20

// recentMoods keeps entries logged at or before now and at most days whole
// days earlier, in the order they were given.
func recentMoods(moods []domain.MoodEntry, now time.Time, days int) []domain.MoodEntry {
	ref := now.UnixMilli()
	out := make([]domain.MoodEntry, 0, len(moods))
	for _, m := range moods {
		diff := ref - m.Timestamp
		if diff < 0 || diff/dayMillis > int64(days) {
			continue
		}
		out = append(out, m)
	}
	return out
}

// MoodTrend compares the average level of the later half of the trailing
// week against the earlier half. With an odd count the middle entry belongs
// to the later half.
func (e *Engine) MoodTrend(moods []domain.MoodEntry, now time.Time) int {
	recent := recentMoods(moods, now, weekDays)
	if len(recent) < 2 {
		return 0
	}
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].Timestamp < recent[j].Timestamp
	})

	half := len(recent) / 2
	first := averageLevel(recent[:half])
	second := averageLevel(recent[half:])
	return int(math.Floor((second-first)*trendScale + 0.5))
}

func (e *Engine) ClassifyTrend(trend int) domain.TrendDirection {
	switch {
	case trend > 0:
		return domain.TrendImproving
	case trend < 0:
		return domain.TrendDeclining
	default:
		return domain.TrendStable
	}
}

// WeeklyMoodCount is the number of entries in the trailing week.
func (e *Engine) WeeklyMoodCount(moods []domain.MoodEntry, now time.Time) int {
	return len(recentMoods(moods, now, weekDays))
}

// MoodDistribution groups the trailing week by emoji in first-seen order.
// Percentages are rounded half up and may not sum to exactly 100.
func (e *Engine) MoodDistribution(moods []domain.MoodEntry, now time.Time) []domain.MoodShare {
	recent := recentMoods(moods, now, weekDays)
	if len(recent) == 0 {
		return []domain.MoodShare{}
	}

	index := make(map[string]int)
	shares := make([]domain.MoodShare, 0)
	for _, m := range recent {
		i, ok := index[m.Emoji]
		if !ok {
			i = len(shares)
			index[m.Emoji] = i
			shares = append(shares, domain.MoodShare{Emoji: m.Emoji})
		}
		shares[i].Count++
	}
	for i := range shares {
		shares[i].Percent = roundPercent(shares[i].Count, len(recent))
	}
	return shares
}

// MoodsOn counts entries whose timestamp falls on d in the engine zone.
func (e *Engine) MoodsOn(moods []domain.MoodEntry, d domain.Date) int {
	n := 0
	for _, m := range moods {
		if domain.DateOf(m.Time(), e.loc) == d {
			n++
		}
	}
	return n
}

// MoodAverageOn is the mean level of entries on d, 0 when nothing was logged.
func (e *Engine) MoodAverageOn(moods []domain.MoodEntry, d domain.Date) float64 {
	var day []domain.MoodEntry
	for _, m := range moods {
		if domain.DateOf(m.Time(), e.loc) == d {
			day = append(day, m)
		}
	}
	return roundTenth(averageLevel(day))
}

func averageLevel(moods []domain.MoodEntry) float64 {
	if len(moods) == 0 {
		return 0
	}
	sum := 0
	for _, m := range moods {
		sum += int(m.Level())
	}
	return float64(sum) / float64(len(moods))
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
