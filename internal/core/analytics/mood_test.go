package analytics_test

import (
	"testing"
	"time"

	"github.com/comitanigiacomo/kanso-wellness/internal/core/analytics"
	"github.com/comitanigiacomo/kanso-wellness/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mood(emoji string, at time.Time) domain.MoodEntry {
	return domain.MoodEntry{Emoji: emoji, Timestamp: at.UnixMilli()}
}

func TestMoodTrend(t *testing.T) {
	e := analytics.New(time.UTC)
	now := time.Date(2024, time.March, 10, 20, 0, 0, 0, time.UTC)
	recent := now.Add(-1 * time.Hour)
	sixDaysEarlier := recent.Add(-6 * 24 * time.Hour)

	tests := []struct {
		name  string
		moods []domain.MoodEntry
		want  int
	}{
		{"Success: Improving", []domain.MoodEntry{mood("😢", sixDaysEarlier), mood("😍", recent)}, 80},
		{"Success: Declining", []domain.MoodEntry{mood("😍", sixDaysEarlier), mood("😢", recent)}, -80},
		{"Success: Input order is irrelevant", []domain.MoodEntry{mood("😍", recent), mood("😢", sixDaysEarlier)}, 80},
		{"Success: Single entry is stable", []domain.MoodEntry{mood("😍", recent)}, 0},
		{"Success: No entries", nil, 0},
		{"Success: Outside window ignored", []domain.MoodEntry{mood("😢", now.Add(-9*24*time.Hour)), mood("😍", recent)}, 0},
		{"Success: Future entries ignored", []domain.MoodEntry{mood("😢", recent), mood("😍", now.Add(2*time.Hour))}, 0},
		// [1] [3 5] -> (4 - 1) * 20
		{"Success: Odd count puts middle in second half", []domain.MoodEntry{
			mood("😢", recent.Add(-3*time.Hour)),
			mood("🙂", recent.Add(-2*time.Hour)),
			mood("🥰", recent),
		}, 60},
		{"Success: Unknown emoji is neutral", []domain.MoodEntry{mood("😴", sixDaysEarlier), mood("😊", recent)}, 0},
		// [2 3] [3 3] -> 0.5 * 20
		{"Success: Fractional delta", []domain.MoodEntry{
			mood("😐", recent.Add(-4*time.Hour)),
			mood("🙂", recent.Add(-3*time.Hour)),
			mood("🙂", recent.Add(-2*time.Hour)),
			mood("😊", recent),
		}, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.MoodTrend(tt.moods, now))
		})
	}
}

func TestMoodTrend_SevenDayBoundary(t *testing.T) {
	e := analytics.New(time.UTC)
	now := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)

	edge := []domain.MoodEntry{mood("😢", now.Add(-7*24*time.Hour-time.Hour)), mood("😍", now)}
	assert.Equal(t, 80, e.MoodTrend(edge, now), "seven whole days back is still inside the window")

	past := []domain.MoodEntry{mood("😢", now.Add(-8*24*time.Hour)), mood("😍", now)}
	assert.Zero(t, e.MoodTrend(past, now))
}

func TestClassifyTrend(t *testing.T) {
	e := analytics.New(time.UTC)

	assert.Equal(t, domain.TrendImproving, e.ClassifyTrend(1))
	assert.Equal(t, domain.TrendDeclining, e.ClassifyTrend(-1))
	assert.Equal(t, domain.TrendStable, e.ClassifyTrend(0))
}

func TestMoodDistribution(t *testing.T) {
	e := analytics.New(time.UTC)
	now := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)

	moods := []domain.MoodEntry{
		mood("😊", now.Add(-1*time.Hour)),
		mood("😢", now.Add(-2*time.Hour)),
		mood("😊", now.Add(-3*time.Hour)),
		mood("😡", now.Add(-30*24*time.Hour)),
	}

	dist := e.MoodDistribution(moods, now)
	require.Len(t, dist, 2)
	assert.Equal(t, domain.MoodShare{Emoji: "😊", Count: 2, Percent: 67}, dist[0])
	assert.Equal(t, domain.MoodShare{Emoji: "😢", Count: 1, Percent: 33}, dist[1])

	assert.Empty(t, e.MoodDistribution(nil, now))
	assert.Equal(t, 3, e.WeeklyMoodCount(moods, now))
}

func TestMoodsOn_UsesEngineZone(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	at := time.Date(2024, time.March, 9, 20, 0, 0, 0, time.UTC)
	moods := []domain.MoodEntry{mood("😊", at)}

	assert.Equal(t, 1, analytics.New(time.UTC).MoodsOn(moods, domain.NewDate(2024, time.March, 9)))
	assert.Equal(t, 0, analytics.New(tokyo).MoodsOn(moods, domain.NewDate(2024, time.March, 9)))
	assert.Equal(t, 1, analytics.New(tokyo).MoodsOn(moods, domain.NewDate(2024, time.March, 10)))
}
