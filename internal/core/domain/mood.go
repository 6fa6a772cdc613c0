package domain

import (
	"errors"
	"strings"
	"time"
)

var ErrMoodEmojiEmpty = errors.New("mood emoji cannot be empty")

// MoodEntry is one mood log action. Entries are never edited after creation.
type MoodEntry struct {
	Emoji     string `json:"emoji"`
	Note      string `json:"note"`
	Timestamp int64  `json:"timestamp"`
}

func NewMoodEntry(emoji, note string, at time.Time) (MoodEntry, error) {
	emoji = strings.TrimSpace(emoji)
	if emoji == "" {
		return MoodEntry{}, ErrMoodEmojiEmpty
	}
	return MoodEntry{
		Emoji:     emoji,
		Note:      strings.TrimSpace(note),
		Timestamp: at.UnixMilli(),
	}, nil
}

func (m MoodEntry) Time() time.Time {
	return time.UnixMilli(m.Timestamp)
}

func (m MoodEntry) Level() MoodLevel {
	return LevelOf(m.Emoji)
}

// MoodLevel is the five-bucket valence scale moods are scored on.
type MoodLevel int

const (
	MoodVeryLow MoodLevel = iota + 1
	MoodLow
	MoodNeutral
	MoodHigh
	MoodVeryHigh
)

func (l MoodLevel) String() string {
	switch l {
	case MoodVeryLow:
		return "very_low"
	case MoodLow:
		return "low"
	case MoodNeutral:
		return "neutral"
	case MoodHigh:
		return "high"
	case MoodVeryHigh:
		return "very_high"
	default:
		return "neutral"
	}
}

var moodScale = map[string]MoodLevel{
	"😢": MoodVeryLow,
	"😰": MoodVeryLow,
	"😡": MoodVeryLow,
	"😐": MoodLow,
	"😕": MoodLow,
	"🙂": MoodNeutral,
	"😊": MoodNeutral,
	"😄": MoodHigh,
	"🤩": MoodHigh,
	"😍": MoodVeryHigh,
	"🥰": MoodVeryHigh,
}

var positiveMoods = map[string]bool{
	"😊": true,
	"😄": true,
	"🤩": true,
	"😍": true,
	"🥰": true,
	"🙂": true,
}

// LevelOf scores an emoji. Anything outside the scale, including the picker
// emoji that were never given a score, is MoodNeutral.
func LevelOf(emoji string) MoodLevel {
	if l, ok := moodScale[emoji]; ok {
		return l
	}
	return MoodNeutral
}

func IsPositiveMood(emoji string) bool {
	return positiveMoods[emoji]
}
