package domain

import "time"

// DayLevel classifies a calendar day by how much was tracked on it.
type DayLevel int

const (
	DayNone DayLevel = iota
	DayOK
	DayGood
	DayExcellent
)

func (l DayLevel) String() string {
	switch l {
	case DayOK:
		return "ok"
	case DayGood:
		return "good"
	case DayExcellent:
		return "excellent"
	default:
		return "none"
	}
}

func (l DayLevel) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

type TrendDirection string

const (
	TrendStable    TrendDirection = "stable"
	TrendImproving TrendDirection = "improving"
	TrendDeclining TrendDirection = "declining"
)

type Achievement struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Threshold int    `json:"threshold"`
}

type Insight struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type MoodShare struct {
	Emoji   string `json:"emoji"`
	Count   int    `json:"count"`
	Percent int    `json:"percent"`
}

type CalendarDay struct {
	Day             int      `json:"day"`
	Date            Date     `json:"date"`
	CompletedHabits int      `json:"completed_habits"`
	TotalHabits     int      `json:"total_habits"`
	MoodCount       int      `json:"mood_count"`
	Level           DayLevel `json:"level"`
	IsToday         bool     `json:"is_today"`
}

type MonthCalendar struct {
	Year           int           `json:"year"`
	Month          time.Month    `json:"month"`
	Days           []CalendarDay `json:"days"`
	ActivityStreak int           `json:"current_streak"`
	BestStreak     int           `json:"best_streak"`
	CompletionRate int           `json:"monthly_completion_rate"`
}

type DayProgress struct {
	Date              Date    `json:"date"`
	HabitsCompleted   int     `json:"habits_completed"`
	TotalHabits       int     `json:"total_habits"`
	CompletionRate    int     `json:"completion_rate"`
	MoodCount         int     `json:"mood_count"`
	MoodAverage       float64 `json:"mood_average"`
	WaterGlasses      int     `json:"water_glasses"`
	MeditationMinutes int     `json:"meditation_minutes"`
	IsToday           bool    `json:"is_today"`
}

type WeeklyReport struct {
	StartDate         Date          `json:"start_date"`
	EndDate           Date          `json:"end_date"`
	Days              []DayProgress `json:"days"`
	HabitsCompleted   int           `json:"habits_completed"`
	HabitsPossible    int           `json:"habits_possible"`
	CompletionRate    int           `json:"completion_rate"`
	MoodAverage       float64       `json:"mood_average"`
	WaterGlasses      int           `json:"water_glasses"`
	MeditationMinutes int           `json:"meditation_minutes"`
}

type AnalyticsSummary struct {
	Date             Date           `json:"date"`
	TotalHabits      int            `json:"total_habits"`
	WeeklyRate       int            `json:"weekly_completion_rate"`
	MonthlyRate      int            `json:"monthly_completion_rate"`
	MoodTrend        int            `json:"mood_trend"`
	MoodDirection    TrendDirection `json:"mood_direction"`
	BestStreak       int            `json:"best_streak"`
	AverageStreak    int            `json:"average_streak"`
	ActivityStreak   int            `json:"activity_streak"`
	PerfectStreak    int            `json:"perfect_streak"`
	LongestStreak    int            `json:"longest_streak"`
	WeeklyMoodCount  int            `json:"weekly_mood_count"`
	MoodDistribution []MoodShare    `json:"mood_distribution"`
	Achievements     []Achievement  `json:"achievements"`
	Insights         []Insight      `json:"insights"`
}

type Dashboard struct {
	Date              Date           `json:"date"`
	HabitCompletion   int            `json:"habit_completion"`
	WaterGlasses      int            `json:"water_glasses"`
	WaterGoal         int            `json:"water_goal"`
	MeditationMinutes int            `json:"meditation_minutes"`
	PerfectStreak     int            `json:"perfect_streak"`
	WeeklyRate        int            `json:"weekly_completion_rate"`
	MoodDirection     TrendDirection `json:"mood_direction"`
}

type HabitProgress struct {
	Date      Date `json:"date"`
	Completed int  `json:"completed"`
	Total     int  `json:"total"`
	Percent   int  `json:"percent"`
}

type Hydration struct {
	Date    Date       `json:"date"`
	Glasses int        `json:"glasses"`
	Goal    int        `json:"goal"`
	Percent int        `json:"percent"`
	History []WaterDay `json:"history"`
}

type WaterDay struct {
	Date    Date `json:"date"`
	Glasses int  `json:"glasses"`
}

type MeditationSummary struct {
	TotalSessions int `json:"total_sessions"`
	TotalMinutes  int `json:"total_minutes"`
	WeekSessions  int `json:"week_sessions"`
	MinutesToday  int `json:"minutes_today"`
}

// Milestone is a streak tier that was reached at least once.
type Milestone struct {
	AchievementID string `json:"achievement_id"`
	Title         string `json:"title"`
	Streak        int    `json:"streak"`
	ReachedOn     string `json:"reached_on"`
}
