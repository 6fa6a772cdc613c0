package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrGoalTitleEmpty    = errors.New("goal title cannot be empty")
	ErrGoalInvalidTarget = errors.New("goal target must be between 1 and 365 days")
	ErrGoalNotFound      = errors.New("goal not found")
	ErrChallengeNotFound = errors.New("challenge not found")
)

const (
	DefaultGoalTargetDays = 7
	MaxGoalTargetDays     = 365
)

type Goal struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	TargetDays      int    `json:"targetDays"`
	CurrentProgress int    `json:"currentProgress"`
	IsCompleted     bool   `json:"isCompleted"`
	CreatedDate     string `json:"createdDate"`
}

// NewGoal creates a goal. A targetDays of 0 derives the target from the
// title wording.
func NewGoal(title, description string, targetDays int, created Date) (*Goal, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrGoalTitleEmpty
	}
	if targetDays == 0 {
		targetDays = TargetFromTitle(title)
	}
	if targetDays < 1 || targetDays > MaxGoalTargetDays {
		return nil, ErrGoalInvalidTarget
	}
	if strings.TrimSpace(description) == "" {
		description = "Complete this goal to boost your wellness journey!"
	}
	return &Goal{
		ID:          uuid.NewString(),
		Title:       title,
		Description: strings.TrimSpace(description),
		TargetDays:  targetDays,
		CreatedDate: created.String(),
	}, nil
}

func TargetFromTitle(title string) int {
	switch {
	case strings.Contains(title, "week"):
		return 7
	case strings.Contains(title, "10-day"):
		return 10
	case strings.Contains(title, "5 days"):
		return 5
	default:
		return DefaultGoalTargetDays
	}
}

// Advance records one more day of progress. It reports whether this call
// completed the goal.
func (g *Goal) Advance() bool {
	wasCompleted := g.IsCompleted
	if g.CurrentProgress < g.TargetDays {
		g.CurrentProgress++
	}
	g.IsCompleted = g.CurrentProgress >= g.TargetDays
	return g.IsCompleted && !wasCompleted
}

func (g Goal) Percent() int {
	if g.TargetDays <= 0 {
		return 0
	}
	return g.CurrentProgress * 100 / g.TargetDays
}

type Challenge struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	DurationDays int    `json:"duration_days"`
	Emoji        string `json:"emoji"`
}

var challenges = []Challenge{
	{ID: "week_warrior", Title: "Week Warrior", Description: "Complete all your habits for 7 consecutive days", DurationDays: 7, Emoji: "⚔️"},
	{ID: "mood_master", Title: "Mood Master", Description: "Log your mood every day for 14 days", DurationDays: 14, Emoji: "😊"},
	{ID: "hydration_hero", Title: "Hydration Hero", Description: "Drink 8 glasses of water daily for 10 days", DurationDays: 10, Emoji: "💧"},
	{ID: "meditation_monk", Title: "Meditation Monk", Description: "Meditate for at least 10 minutes daily for 21 days", DurationDays: 21, Emoji: "🧘"},
	{ID: "gratitude_guru", Title: "Gratitude Guru", Description: "Write 3 things you're grateful for daily for 30 days", DurationDays: 30, Emoji: "🙏"},
}

func Challenges() []Challenge {
	out := make([]Challenge, len(challenges))
	copy(out, challenges)
	return out
}

func FindChallenge(id string) (Challenge, error) {
	for _, c := range challenges {
		if c.ID == id {
			return c, nil
		}
	}
	return Challenge{}, ErrChallengeNotFound
}

// GoalFromChallenge turns a joined challenge into a regular goal.
func GoalFromChallenge(c Challenge, created time.Time, loc *time.Location) *Goal {
	return &Goal{
		ID:          uuid.NewString(),
		Title:       "🏆 " + c.Title,
		Description: c.Description,
		TargetDays:  c.DurationDays,
		CreatedDate: DateOf(created, loc).String(),
	}
}
