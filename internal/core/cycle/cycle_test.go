package cycle

import (
	"testing"
	"time"

	ptime "lunacycle/internal/platform/time"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ptime.ParseDate(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return d
}

func TestCompute_SameDayIsDayZero(t *testing.T) {
	for _, s := range []string{"2025-01-01", "2024-02-29", "1999-12-31", "2030-06-15"} {
		d := mustDate(t, s)
		r := Compute(d, d)
		if r.Day != 0 {
			t.Fatalf("Compute(%s, %s).Day = %d, want 0", s, s, r.Day)
		}
		if r.Phase != Menstrual {
			t.Fatalf("day 0 phase = %s, want menstrual", r.Phase)
		}
	}
}

func TestCompute_DayCountsElapsedDays(t *testing.T) {
	d := mustDate(t, "2024-12-20")
	for n := 0; n <= 120; n++ {
		r := Compute(d, d.AddDate(0, 0, n))
		if r.Day != n {
			t.Fatalf("n=%d: Day = %d", n, r.Day)
		}
	}
}

func TestCompute_DayCountsAcrossCenturies(t *testing.T) {
	d := mustDate(t, "1700-01-01")
	for _, n := range []int{120000, 200001} {
		r := Compute(d, d.AddDate(0, 0, n))
		if r.Day != n {
			t.Fatalf("n=%d: Day = %d", n, r.Day)
		}
		if r.Phase != NewCycle {
			t.Fatalf("n=%d: phase = %s, want new cycle", n, r.Phase)
		}
	}
}

func TestCompute_FutureReferenceClampsToZero(t *testing.T) {
	today := mustDate(t, "2025-01-10")
	r := Compute(mustDate(t, "2025-02-01"), today)
	if r.Day != 0 {
		t.Fatalf("Day = %d, want 0", r.Day)
	}
	if got := ptime.FormatDate(r.NextPeriod); got != "2025-03-01" {
		t.Fatalf("NextPeriod = %s, want 2025-03-01", got)
	}
}

func TestCompute_NextPeriodIndependentOfToday(t *testing.T) {
	ref := mustDate(t, "2025-01-01")
	for _, today := range []string{"2024-12-01", "2025-01-01", "2025-01-10", "2025-06-30"} {
		r := Compute(ref, mustDate(t, today))
		if got := ptime.FormatDate(r.NextPeriod); got != "2025-01-29" {
			t.Fatalf("today=%s NextPeriod = %s, want 2025-01-29", today, got)
		}
	}
}

func TestCompute_IgnoresClockTime(t *testing.T) {
	ref := time.Date(2025, 1, 1, 23, 59, 0, 0, time.UTC)
	today := time.Date(2025, 1, 2, 0, 1, 0, 0, time.UTC)
	if r := Compute(ref, today); r.Day != 1 {
		t.Fatalf("Day = %d, want 1", r.Day)
	}
}

func TestCompute_Scenario(t *testing.T) {
	r := Compute(mustDate(t, "2025-01-01"), mustDate(t, "2025-01-10"))
	if r.Day != 9 {
		t.Fatalf("Day = %d, want 9", r.Day)
	}
	if r.Phase != Follicular {
		t.Fatalf("Phase = %s, want follicular", r.Phase)
	}
	if ptime.FormatDate(r.NextPeriod) != "2025-01-29" {
		t.Fatalf("NextPeriod = %s", ptime.FormatDate(r.NextPeriod))
	}
	if r.Symptoms() != Follicular.Symptoms() {
		t.Fatalf("Symptoms mismatch")
	}
}

func TestPhaseOf_Boundaries(t *testing.T) {
	cases := []struct {
		day  int
		want Phase
	}{
		{0, Menstrual}, {5, Menstrual},
		{6, Follicular}, {13, Follicular},
		{14, Ovulation}, {17, Ovulation},
		{18, Luteal}, {28, Luteal},
		{29, NewCycle}, {365, NewCycle},
	}
	for _, c := range cases {
		if got := PhaseOf(c.day); got != c.want {
			t.Fatalf("PhaseOf(%d) = %s, want %s", c.day, got, c.want)
		}
	}
}

func TestPhaseOf_PartitionsWithoutGaps(t *testing.T) {
	// walking the domain must visit every phase exactly once, in order, with no regressions
	prev := PhaseOf(0)
	seen := map[Phase]bool{prev: true}
	for day := 1; day <= 400; day++ {
		p := PhaseOf(day)
		if p < prev {
			t.Fatalf("day %d went back from %s to %s", day, prev, p)
		}
		if p != prev && seen[p] {
			t.Fatalf("phase %s revisited at day %d", p, day)
		}
		seen[p] = true
		prev = p
	}
	if len(seen) != 5 {
		t.Fatalf("expected 5 phases, saw %d", len(seen))
	}
}

func TestPhase_Metadata(t *testing.T) {
	keys := map[string]bool{}
	for p := Menstrual; p <= NewCycle; p++ {
		if p.Key() == "" || p.Label() == "" || p.Symptoms() == "" {
			t.Fatalf("phase %d has empty metadata", p)
		}
		if keys[p.Key()] {
			t.Fatalf("duplicate key %q", p.Key())
		}
		keys[p.Key()] = true
	}
	if Luteal.String() != "luteal" || NewCycle.Label() != "New Cycle Starting Soon" {
		t.Fatalf("unexpected metadata: %s %s", Luteal, NewCycle.Label())
	}
}
