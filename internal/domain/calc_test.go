package domain

import (
	"testing"

	"sppd-backend/internal/domain/models"
)

func TestCalculateDaysInclusive(t *testing.T) {
	cases := []struct {
		start, end string
		want       int
	}{
		{"2024-01-10", "2024-01-12", 3},
		{"2024-01-10", "2024-01-10", 1},
		{"2024-01-31", "2024-02-01", 2},
		{"2023-12-30", "2024-01-02", 4},
		{"", "2024-01-12", 0},
		{"2024-01-10", "", 0},
		{"invalid", "2024-01-12", 0},
	}
	for _, c := range cases {
		if got := CalculateDays(c.start, c.end); got != c.want {
			t.Errorf("CalculateDays(%q, %q) = %d, want %d", c.start, c.end, got, c.want)
		}
	}
}

func TestCalculateDaysEndBeforeStartPassesThrough(t *testing.T) {
	// Non-positive results are not rejected here; validation handles them.
	if got := CalculateDays("2024-01-12", "2024-01-10"); got != -1 {
		t.Fatalf("got %d, want -1", got)
	}
	if got := CalculateDays("2024-01-11", "2024-01-10"); got != 0 {
		t.Fatalf("got %d, want 0", got)
	}
}

func TestResetDayCounts(t *testing.T) {
	for _, n := range []int{1, 2, 5, 30} {
		costs := []models.TravelCost{
			{EmployeeID: "a", DailyDays: 99, LodgingDays: 99, RepresentationDays: 99},
			{EmployeeID: "b"},
		}
		ResetDayCounts(costs, n)
		for _, c := range costs {
			if c.DailyDays != n || c.RepresentationDays != n {
				t.Fatalf("n=%d: daily=%d repr=%d", n, c.DailyDays, c.RepresentationDays)
			}
			if want := n - 1; c.LodgingDays != want {
				t.Fatalf("n=%d: lodging=%d want %d", n, c.LodgingDays, want)
			}
		}
	}

	costs := []models.TravelCost{{EmployeeID: "a", LodgingDays: 7}}
	ResetDayCounts(costs, 0)
	if costs[0].LodgingDays != 0 {
		t.Fatalf("lodging days must not go negative, got %d", costs[0].LodgingDays)
	}
}

func TestLineTotalFormula(t *testing.T) {
	line := models.TravelCost{
		DailyAllowance: 200000, DailyDays: 3,
		Lodging: 300000, LodgingDays: 2,
		TransportBBM: 150000, SeaTransport: 50000, AirTransport: 70000, Taxi: 30000,
		Representation: 100000, RepresentationDays: 3,
	}
	want := int64(200000*3 + 300000*2 + 150000 + 50000 + 70000 + 30000 + 100000*3)
	if got := LineTotal(line); got != want {
		t.Fatalf("LineTotal = %d, want %d", got, want)
	}
}

func TestLineTotalLinearity(t *testing.T) {
	base := models.TravelCost{
		DailyAllowance: 100, DailyDays: 4,
		Lodging: 200, LodgingDays: 3,
		TransportBBM: 300, SeaTransport: 400, AirTransport: 500, Taxi: 600,
		Representation: 700, RepresentationDays: 4,
	}
	baseTotal := LineTotal(base)

	const delta = int64(1000)
	cases := []struct {
		name       string
		mutate     func(*models.TravelCost)
		multiplier int64
	}{
		{"dailyAllowance", func(c *models.TravelCost) { c.DailyAllowance += delta }, int64(base.DailyDays)},
		{"lodging", func(c *models.TravelCost) { c.Lodging += delta }, int64(base.LodgingDays)},
		{"transportBbm", func(c *models.TravelCost) { c.TransportBBM += delta }, 1},
		{"seaTransport", func(c *models.TravelCost) { c.SeaTransport += delta }, 1},
		{"airTransport", func(c *models.TravelCost) { c.AirTransport += delta }, 1},
		{"taxi", func(c *models.TravelCost) { c.Taxi += delta }, 1},
		{"representation", func(c *models.TravelCost) { c.Representation += delta }, int64(base.RepresentationDays)},
	}
	for _, c := range cases {
		line := base
		c.mutate(&line)
		if got, want := LineTotal(line)-baseTotal, delta*c.multiplier; got != want {
			t.Errorf("%s: delta effect %d, want %d", c.name, got, want)
		}
	}
}

func TestTripTotal(t *testing.T) {
	if got := TripTotal(models.TravelAssignment{}); got != 0 {
		t.Fatalf("empty cost list must total 0, got %d", got)
	}
	a := models.TravelAssignment{Costs: []models.TravelCost{
		{DailyAllowance: 100, DailyDays: 2},
		{Taxi: 50},
	}}
	if got := TripTotal(a); got != 250 {
		t.Fatalf("TripTotal = %d, want 250", got)
	}
}

func TestMataramScenario(t *testing.T) {
	master := models.MasterCost{
		Destination:    "Mataram",
		DailyAllowance: 200000,
		Lodging:        300000,
		TransportBBM:   150000,
	}
	emp := models.Employee{ID: "e1", Name: "Tester", RepresentationDalam: 100000}

	days := CalculateDays("2024-01-10", "2024-01-12")
	if days != 3 {
		t.Fatalf("duration = %d, want 3", days)
	}
	line := NewCostLine(emp, &master, models.DalamDaerah, days)

	if line.DailyDays != 3 || line.LodgingDays != 2 || line.RepresentationDays != 3 {
		t.Fatalf("day counts = %d/%d/%d", line.DailyDays, line.LodgingDays, line.RepresentationDays)
	}
	if line.DailyAllowance != 200000 || line.Lodging != 300000 || line.TransportBBM != 150000 {
		t.Fatalf("master rates not applied: %+v", line)
	}
	if line.Representation != 100000 {
		t.Fatalf("representation = %d, want 100000", line.Representation)
	}
	if got := LineTotal(line); got != 1650000 {
		t.Fatalf("LineTotal = %d, want 1650000", got)
	}
}
