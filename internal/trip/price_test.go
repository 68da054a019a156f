package trip

import "testing"

func TestEstimatePrice(t *testing.T) {
	cases := []struct {
		budget      Budget
		duration    Duration
		experiences int
		want        int
	}{
		{BudgetLuxury, DurationWeek, 2, 12000},
		{BudgetBasic, DurationWeekend, 0, 600},
		{BudgetMidRange, DurationTwoWeeks, 3, 10500},
		{BudgetUltraLuxury, DurationMonth, 0, 70000},
		{BudgetLuxury, DurationWeekend, 1, 3800},
	}

	for _, c := range cases {
		got := EstimatePrice(c.budget, c.duration, c.experiences)
		if got != c.want {
			t.Errorf("EstimatePrice(%s, %s, %d) = %d, want %d",
				c.budget, c.duration, c.experiences, got, c.want)
		}
	}
}

func TestParseBudgetRejectsUnknownValue(t *testing.T) {
	if _, err := ParseBudget("mid_range"); err == nil {
		t.Fatal("expected error for unknown budget value")
	}
	if _, err := ParseBudget(""); err == nil {
		t.Fatal("expected error for empty budget value")
	}

	b, err := ParseBudget("ultra-luxury")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b != BudgetUltraLuxury {
		t.Fatalf("got %q", b)
	}
}

func TestParseDurationRejectsUnknownValue(t *testing.T) {
	if _, err := ParseDuration("fortnight"); err == nil {
		t.Fatal("expected error for unknown duration value")
	}

	d, err := ParseDuration("two-weeks")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Days() != 14 {
		t.Fatalf("Days() = %d, want 14", d.Days())
	}
}
