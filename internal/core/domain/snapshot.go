package domain

// Snapshot is an immutable copy of everything the analytics engine reads.
type Snapshot struct {
	Habits     []Habit
	Moods      []MoodEntry
	Water      map[Date]int
	Meditation []MeditationSession
}

// Clone deep-copies the snapshot so callers can keep mutating their own
// collections while a computation runs.
func (s Snapshot) Clone() Snapshot {
	c := Snapshot{
		Habits:     make([]Habit, len(s.Habits)),
		Moods:      make([]MoodEntry, len(s.Moods)),
		Meditation: make([]MeditationSession, len(s.Meditation)),
	}
	for i, h := range s.Habits {
		c.Habits[i] = h.Clone()
	}
	copy(c.Moods, s.Moods)
	copy(c.Meditation, s.Meditation)
	if s.Water != nil {
		c.Water = make(map[Date]int, len(s.Water))
		for d, v := range s.Water {
			c.Water[d] = v
		}
	}
	return c
}
