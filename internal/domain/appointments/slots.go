package appointments

import (
	"fmt"
	"iter"
	"slices"
	"strings"
	"time"
)

// TimeOfDay son minutos desde medianoche.
type TimeOfDay int

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid time of day %q", s)
	}
	return TimeOfDay(t.Hour()*60 + t.Minute()), nil
}

func (t TimeOfDay) Hour() int   { return int(t) / 60 }
func (t TimeOfDay) Minute() int { return int(t) % 60 }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

func (t TimeOfDay) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *TimeOfDay) UnmarshalText(b []byte) error {
	v, err := ParseTimeOfDay(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// On combina el día (se toma año/mes/día en loc) con la hora.
func (t TimeOfDay) On(day time.Time, loc *time.Location) time.Time {
	d := day.In(loc)
	return time.Date(d.Year(), d.Month(), d.Day(), t.Hour(), t.Minute(), 0, 0, loc)
}

// SlotConfig define la grilla de horarios reservables.
type SlotConfig struct {
	Start TimeOfDay
	End   TimeOfDay
	Step  time.Duration
}

func DefaultSlotConfig() SlotConfig {
	return SlotConfig{
		Start: 8 * 60,
		End:   18 * 60,
		Step:  30 * time.Minute,
	}
}

// All recorre la grilla desde Start hasta End (incluido si cae justo en el paso).
// Se puede recorrer las veces que haga falta.
func (c SlotConfig) All() iter.Seq[TimeOfDay] {
	return func(yield func(TimeOfDay) bool) {
		step := int(c.Step / time.Minute)
		if step <= 0 || c.End < c.Start {
			return
		}
		for t := c.Start; t <= c.End; t += TimeOfDay(step) {
			if !yield(t) {
				return
			}
		}
	}
}

func (c SlotConfig) Slots() []TimeOfDay {
	return slices.Collect(c.All())
}

func (c SlotConfig) Contains(t TimeOfDay) bool {
	for s := range c.All() {
		if s == t {
			return true
		}
		if s > t {
			return false
		}
	}
	return false
}
