// Package cycle computes the day of cycle, coarse phase and next period for a
// reference (last period start) date.
//
// Day counting is zero-based: the reference date itself is day 0. Phase bands
// are fixed integer ranges evaluated in order, first match wins:
//
//	0..5    menstrual
//	6..13   follicular
//	14..17  ovulation
//	18..28  luteal
//	29..    new cycle due
//
// The bands are a documented heuristic, not medical advice.
package cycle

import (
	"time"

	ptime "lunacycle/internal/platform/time"
)

// Length is the nominal cycle length in days used for predictions
const Length = 28

// Phase is a coarse label for a cycle day
type Phase uint8

const (
	// Menstrual covers the bleeding days
	Menstrual Phase = iota
	// Follicular covers the rising-energy days after bleeding
	Follicular
	// Ovulation is the short window around the mid-cycle peak
	Ovulation
	// Luteal covers the days leading up to the next period
	Luteal
	// NewCycle means the nominal cycle length has passed and a period is due
	NewCycle
)

// band is an inclusive upper bound for a phase
type band struct {
	last  int
	phase Phase
}

// bands must stay sorted by last; anything past the final bound is NewCycle
var bands = [...]band{
	{5, Menstrual},
	{13, Follicular},
	{17, Ovulation},
	{Length, Luteal},
}

var phaseInfo = [...]struct {
	key      string
	label    string
	symptoms string
}{
	Menstrual: {
		"menstrual", "Menstrual Phase",
		"Common symptoms during the menstrual phase include cramps, bloating, mood swings, and fatigue. " +
			"It's important to stay hydrated and get plenty of rest.",
	},
	Follicular: {
		"follicular", "Follicular Phase",
		"During the follicular phase, you may experience increased energy levels and improved mood. " +
			"This is a great time to focus on personal goals and self-care.",
	},
	Ovulation: {
		"ovulation", "Ovulation Phase",
		"In the ovulation phase, some people notice heightened senses and increased libido. " +
			"It's also a time when you may feel more social and outgoing.",
	},
	Luteal: {
		"luteal", "Luteal Phase",
		"The luteal phase can bring about symptoms such as breast tenderness, irritability, and food cravings. " +
			"Maintaining a balanced diet and managing stress can help alleviate these symptoms.",
	},
	NewCycle: {
		"new_cycle", "New Cycle Starting Soon",
		"As you approach a new cycle, you might experience a mix of symptoms from the previous phases. " +
			"Keeping track of your symptoms can help you better understand your cycle.",
	},
}

// Key is the stable machine name of the phase
func (p Phase) Key() string { return phaseInfo[p].key }

// Label is the display name of the phase
func (p Phase) Label() string { return phaseInfo[p].label }

// Symptoms is the static symptom summary for the phase
func (p Phase) Symptoms() string { return phaseInfo[p].symptoms }

// String implements fmt.Stringer
func (p Phase) String() string { return p.Key() }

// PhaseOf maps a cycle day to its phase. Negative days are treated as day 0
func PhaseOf(day int) Phase {
	for _, b := range bands {
		if day <= b.last {
			return b.phase
		}
	}
	return NewCycle
}

// Result is the outcome of a cycle computation. Values are never mutated after Compute
type Result struct {
	Reference  time.Time
	Day        int
	Phase      Phase
	NextPeriod time.Time
}

// Symptoms is the symptom summary for the result's phase
func (r Result) Symptoms() string { return r.Phase.Symptoms() }

// Compute derives the cycle state of reference as seen on today.
// Both inputs are reduced to calendar dates; reference is assumed valid
func Compute(reference, today time.Time) Result {
	ref := ptime.DateOnly(reference)
	day := max(0, ptime.DaysBetween(ref, today))
	return Result{
		Reference:  ref,
		Day:        day,
		Phase:      PhaseOf(day),
		NextPeriod: ptime.AddDays(ref, Length),
	}
}
