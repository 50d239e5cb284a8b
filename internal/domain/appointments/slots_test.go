package appointments

import (
	"encoding/json"
	"testing"
	"time"
)

func TestSlotConfig_EndInclusive(t *testing.T) {
	c := SlotConfig{Start: 8 * 60, End: 10 * 60, Step: 30 * time.Minute}

	got := c.Slots()
	want := []string{"08:00", "08:30", "09:00", "09:30", "10:00"}
	if len(got) != len(want) {
		t.Fatalf("expected %d slots, got %d (%v)", len(want), len(got), got)
	}
	for i := range want {
		if got[i].String() != want[i] {
			t.Fatalf("slot %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestSlotConfig_Defaults(t *testing.T) {
	slots := DefaultSlotConfig().Slots()
	if len(slots) != 21 {
		t.Fatalf("expected 21 default slots, got %d", len(slots))
	}
	if slots[0].String() != "08:00" || slots[len(slots)-1].String() != "18:00" {
		t.Fatalf("unexpected bounds %s..%s", slots[0], slots[len(slots)-1])
	}
}

func TestSlotConfig_UnalignedEndIsExcluded(t *testing.T) {
	c := SlotConfig{Start: 8 * 60, End: 9*60 + 15, Step: 30 * time.Minute}
	got := c.Slots()
	if len(got) != 3 || got[2].String() != "09:00" {
		t.Fatalf("expected [08:00 08:30 09:00], got %v", got)
	}
}

func TestSlotConfig_Degenerate(t *testing.T) {
	if n := len((SlotConfig{Start: 8 * 60, End: 10 * 60}).Slots()); n != 0 {
		t.Fatalf("expected no slots with zero step, got %d", n)
	}
	if n := len((SlotConfig{Start: 10 * 60, End: 8 * 60, Step: time.Hour}).Slots()); n != 0 {
		t.Fatalf("expected no slots with end < start, got %d", n)
	}
}

func TestSlotConfig_RestartableAndEarlyStop(t *testing.T) {
	c := DefaultSlotConfig()
	first := c.Slots()
	second := c.Slots()
	if len(first) != len(second) {
		t.Fatalf("expected same sequence twice")
	}

	n := 0
	for range c.All() {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Fatalf("expected early stop after 2, got %d", n)
	}
}

func TestSlotConfig_Contains(t *testing.T) {
	c := DefaultSlotConfig()
	for _, s := range []string{"08:00", "12:30", "18:00"} {
		tod, err := ParseTimeOfDay(s)
		if err != nil {
			t.Fatalf("ParseTimeOfDay(%s): %v", s, err)
		}
		if !c.Contains(tod) {
			t.Fatalf("expected %s to be a slot", s)
		}
	}
	for _, s := range []string{"07:30", "08:15", "18:30"} {
		tod, _ := ParseTimeOfDay(s)
		if c.Contains(tod) {
			t.Fatalf("expected %s not to be a slot", s)
		}
	}
}

func TestTimeOfDay_JSON(t *testing.T) {
	b, err := json.Marshal([]TimeOfDay{8 * 60, 9*60 + 30})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `["08:00","09:30"]` {
		t.Fatalf("unexpected json %s", b)
	}

	if _, err := ParseTimeOfDay("25:00"); err == nil {
		t.Fatalf("expected error for 25:00")
	}
}

func TestSchedule_Available(t *testing.T) {
	s := DefaultSchedule()
	now := time.Date(2025, 3, 12, 15, 0, 0, 0, time.UTC) // miércoles

	if n := len(s.Available(time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC), now)); n != 0 {
		t.Fatalf("expected no slots for yesterday, got %d", n)
	}
	if n := len(s.Available(time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC), now)); n != 0 {
		t.Fatalf("expected no slots on sunday, got %d", n)
	}
	if n := len(s.Available(time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC), now)); n != 21 {
		t.Fatalf("expected full grid for today, got %d", n)
	}
}

func TestParseWeekdays(t *testing.T) {
	got, err := ParseWeekdays([]string{"Sunday", "sat"})
	if err != nil {
		t.Fatalf("ParseWeekdays: %v", err)
	}
	if len(got) != 2 || got[0] != time.Sunday || got[1] != time.Saturday {
		t.Fatalf("unexpected weekdays %v", got)
	}
	if _, err := ParseWeekdays([]string{"caturday"}); err == nil {
		t.Fatalf("expected error")
	}
}
