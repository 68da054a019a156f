package trip

import "fmt"

// --------------------------------------------------
// BUDGET
// --------------------------------------------------

type Budget string

const (
	BudgetBasic       Budget = "budget"
	BudgetMidRange    Budget = "mid-range"
	BudgetLuxury      Budget = "luxury"
	BudgetUltraLuxury Budget = "ultra-luxury"
)

var budgetBasePrice = map[Budget]float64{
	BudgetBasic:       2000,
	BudgetMidRange:    5000,
	BudgetLuxury:      11000,
	BudgetUltraLuxury: 20000,
}

var budgetRange = map[Budget]string{
	BudgetBasic:       "$1,000 - $3,000",
	BudgetMidRange:    "$3,000 - $7,000",
	BudgetLuxury:      "$7,000 - $15,000",
	BudgetUltraLuxury: "$15,000+",
}

func ParseBudget(s string) (Budget, error) {
	b := Budget(s)
	if _, ok := budgetBasePrice[b]; !ok {
		return "", fmt.Errorf("unknown budget %q", s)
	}
	return b, nil
}

// Range returns the display price range shown to travelers.
func (b Budget) Range() string {
	return budgetRange[b]
}

// --------------------------------------------------
// DURATION
// --------------------------------------------------

type Duration string

const (
	DurationWeekend  Duration = "weekend"
	DurationWeek     Duration = "week"
	DurationTwoWeeks Duration = "two-weeks"
	DurationMonth    Duration = "month"
)

var durationMultiplier = map[Duration]float64{
	DurationWeekend:  0.3,
	DurationWeek:     1,
	DurationTwoWeeks: 1.8,
	DurationMonth:    3.5,
}

var durationDays = map[Duration]int{
	DurationWeekend:  3,
	DurationWeek:     7,
	DurationTwoWeeks: 14,
	DurationMonth:    30,
}

func ParseDuration(s string) (Duration, error) {
	d := Duration(s)
	if _, ok := durationMultiplier[d]; !ok {
		return "", fmt.Errorf("unknown duration %q", s)
	}
	return d, nil
}

// Days returns the itinerary length used when prompting for a day-by-day plan.
func (d Duration) Days() int {
	return durationDays[d]
}

// --------------------------------------------------
// EXPERIENCES (FIXED OFFERED LIST)
// --------------------------------------------------

var offeredExperiences = []string{
	"Fine Dining",
	"Adventure & Outdoors",
	"Culture & Arts",
	"Wellness & Spa",
	"Nightlife",
	"Shopping",
	"Beaches & Islands",
	"Photography",
}

func Experiences() []string {
	out := make([]string, len(offeredExperiences))
	copy(out, offeredExperiences)
	return out
}

func ValidExperience(tag string) bool {
	for _, e := range offeredExperiences {
		if e == tag {
			return true
		}
	}
	return false
}
