package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidWaterGoal   = errors.New("water goal must be between 1 and 20 glasses")
	ErrInvalidWaterAmount = errors.New("water amount must be positive")
	ErrInvalidSessionLen  = errors.New("meditation duration must be between 1 and 240 minutes")
	ErrInvalidSessionType = errors.New("meditation type cannot be empty")
)

const (
	DefaultWaterGoal    = 8
	MinWaterGoal        = 1
	MaxWaterGoal        = 20
	MillilitresPerGlass = 250
	MaxSessionMinutes   = 240
)

const (
	MeditationGuided    = "guided"
	MeditationBreathing = "breathing"
	MeditationMindful   = "mindfulness"
	MeditationSleep     = "sleep"
	MeditationFocus     = "focus"
)

type MeditationSession struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Duration  int    `json:"duration"`
	StartTime int64  `json:"startTime"`
	Completed bool   `json:"completed"`
}

func NewMeditationSession(sessionType string, minutes int, start time.Time, completed bool) (MeditationSession, error) {
	sessionType = strings.TrimSpace(sessionType)
	if sessionType == "" {
		return MeditationSession{}, ErrInvalidSessionType
	}
	if minutes < 1 || minutes > MaxSessionMinutes {
		return MeditationSession{}, ErrInvalidSessionLen
	}
	return MeditationSession{
		ID:        uuid.NewString(),
		Type:      sessionType,
		Duration:  minutes,
		StartTime: start.UnixMilli(),
		Completed: completed,
	}, nil
}

func (s MeditationSession) Start() time.Time {
	return time.UnixMilli(s.StartTime)
}

func ValidateWaterGoal(glasses int) error {
	if glasses < MinWaterGoal || glasses > MaxWaterGoal {
		return ErrInvalidWaterGoal
	}
	return nil
}

// GlassesFromMillilitres rounds down to whole glasses.
func GlassesFromMillilitres(ml int) int {
	return ml / MillilitresPerGlass
}
