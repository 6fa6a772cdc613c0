package services

import (
	"time"

	"github.com/comitanigiacomo/kanso-wellness/internal/core/domain"
)

// Clock decides what "now" and "today" mean for every service.
type Clock struct {
	Now      func() time.Time
	Location *time.Location
}

func SystemClock(loc *time.Location) Clock {
	if loc == nil {
		loc = time.Local
	}
	return Clock{Now: time.Now, Location: loc}
}

// FixedClock always reports at. Useful for tests and for replaying a day.
func FixedClock(at time.Time, loc *time.Location) Clock {
	if loc == nil {
		loc = time.UTC
	}
	return Clock{Now: func() time.Time { return at }, Location: loc}
}

func (c Clock) Today() domain.Date {
	return domain.DateOf(c.Now(), c.Location)
}
