package reminder

import (
	"fmt"
	"time"

	"github.com/golang-module/carbon/v2"
)

// TimeOfDay is a wall-clock target parsed from a zero-padded 24-hour
// "HH:MM" string.
type TimeOfDay struct {
	hour   int
	minute int
}

func NewTimeOfDay(hour int, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return TimeOfDay{hour: hour, minute: minute}, nil
}

func ParseTimeOfDay(value string) (TimeOfDay, error) {
	if len(value) != 5 || value[2] != ':' {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	for _, ix := range []int{0, 1, 3, 4} {
		if value[ix] < '0' || value[ix] > '9' {
			return TimeOfDay{}, ErrInvalidTimeOfDay
		}
	}
	hour := int(value[0]-'0')*10 + int(value[1]-'0')
	minute := int(value[3]-'0')*10 + int(value[4]-'0')
	return NewTimeOfDay(hour, minute)
}

func (t TimeOfDay) Hour() int {
	return t.hour
}

func (t TimeOfDay) Minute() int {
	return t.minute
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.hour, t.minute)
}

// NextAfter returns today's instant at the target time, or the same
// time tomorrow if that instant is not strictly in the future. A target
// already passed today therefore fires the next day, never immediately.
func (t TimeOfDay) NextAfter(now time.Time) time.Time {
	target := carbon.Time2Carbon(now).StartOfDay().AddHours(t.hour).AddMinutes(t.minute)
	fireAt := target.Carbon2Time()
	if !fireAt.After(now) {
		fireAt = target.AddDay().Carbon2Time()
	}
	return fireAt
}
