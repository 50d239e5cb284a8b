package appointments

import (
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// Schedule es la agenda de la clínica: grilla de horarios, días cerrados y zona horaria.
type Schedule struct {
	Slots    SlotConfig
	Closed   []time.Weekday
	Location *time.Location
	Notice   time.Duration // cuánto dura el aviso de "turno reservado"
}

func DefaultSchedule() Schedule {
	return Schedule{
		Slots:    DefaultSlotConfig(),
		Closed:   []time.Weekday{time.Sunday},
		Location: time.UTC,
		Notice:   3 * time.Second,
	}
}

// ParseWeekdays convierte nombres ("sunday", "Sun") a time.Weekday.
func ParseWeekdays(names []string) ([]time.Weekday, error) {
	out := make([]time.Weekday, 0, len(names))
	for _, n := range names {
		n = strings.ToLower(strings.TrimSpace(n))
		found := false
		for d := time.Sunday; d <= time.Saturday; d++ {
			full := strings.ToLower(d.String())
			if n == full || n == full[:3] {
				out = append(out, d)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("unknown weekday %q", n)
		}
	}
	return out, nil
}

func (s Schedule) loc() *time.Location {
	if s.Location == nil {
		return time.UTC
	}
	return s.Location
}

// ParseDay interpreta la fecha en la zona de la clínica y la lleva a medianoche.
func (s Schedule) ParseDay(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, fmt.Errorf("date required")
	}
	t, err := dateparse.ParseIn(raw, s.loc())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", raw)
	}
	return startOfDay(t, s.loc()), nil
}

func (s Schedule) IsClosed(day time.Time) bool {
	wd := day.In(s.loc()).Weekday()
	for _, c := range s.Closed {
		if c == wd {
			return true
		}
	}
	return false
}

// IsPast: el día es anterior al día calendario de now (en la zona de la clínica).
func (s Schedule) IsPast(day, now time.Time) bool {
	return startOfDay(day, s.loc()).Before(startOfDay(now, s.loc()))
}

// Available devuelve la grilla del día, vacía si es pasado o está cerrado.
func (s Schedule) Available(day, now time.Time) []TimeOfDay {
	if s.IsPast(day, now) || s.IsClosed(day) {
		return []TimeOfDay{}
	}
	return s.Slots.Slots()
}

func startOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}
