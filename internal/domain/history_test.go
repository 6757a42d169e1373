package domain

import (
	"testing"

	"sppd-backend/internal/domain/models"
)

func historyFixture() []models.TravelAssignment {
	return []models.TravelAssignment{
		{
			ID: "a1", StartDate: "2024-01-10", DurationDays: 3,
			SelectedEmployeeIDs: []string{"e1", "e2"},
			Costs: []models.TravelCost{
				{EmployeeID: "e1", DailyAllowance: 200000, DailyDays: 3, Lodging: 300000, LodgingDays: 2, TransportBBM: 150000, Representation: 100000, RepresentationDays: 3},
			},
		},
		{
			ID: "a2", StartDate: "2024-03-05", DurationDays: 5,
			SelectedEmployeeIDs: []string{"e1"},
			Costs: []models.TravelCost{
				{EmployeeID: "e1", DailyAllowance: 400000, DailyDays: 5},
			},
		},
		{
			ID: "a3", StartDate: "2024-02-01", DurationDays: 2,
			SelectedEmployeeIDs: []string{"e2"},
			Costs:               []models.TravelCost{{EmployeeID: "e2", Taxi: 90000}},
		},
	}
}

func TestEmployeeHistoryStatsScenario(t *testing.T) {
	stats := EmployeeHistoryStats("e1", historyFixture())
	if stats.TripCount != 2 {
		t.Fatalf("tripCount = %d, want 2", stats.TripCount)
	}
	if stats.TotalDays != 8 {
		t.Fatalf("totalDays = %d, want 8", stats.TotalDays)
	}
	if stats.TotalCost != 1650000+2000000 {
		t.Fatalf("totalCost = %d, want 3650000", stats.TotalCost)
	}
}

func TestEmployeeHistoryStatsMissingCostLine(t *testing.T) {
	// e2 joined a1 but has no cost line there: counts for trips/days, zero cost.
	stats := EmployeeHistoryStats("e2", historyFixture())
	if stats.TripCount != 2 || stats.TotalDays != 5 {
		t.Fatalf("stats = %+v", stats)
	}
	if stats.TotalCost != 90000 {
		t.Fatalf("totalCost = %d, want 90000", stats.TotalCost)
	}
}

func TestEmployeeHistoryOrderedDescending(t *testing.T) {
	var ids []string
	for entry := range EmployeeHistory("e1", historyFixture()) {
		ids = append(ids, entry.Assignment.ID)
	}
	if len(ids) != 2 || ids[0] != "a2" || ids[1] != "a1" {
		t.Fatalf("order = %v, want [a2 a1]", ids)
	}
}

func TestEmployeeHistoryRestartable(t *testing.T) {
	seq := EmployeeHistory("e1", historyFixture())
	count := func() int {
		n := 0
		for range seq {
			n++
		}
		return n
	}
	if first, second := count(), count(); first != 2 || second != 2 {
		t.Fatalf("sequence must be restartable: %d then %d", first, second)
	}

	// Early break must stop the sequence cleanly.
	n := 0
	for range seq {
		n++
		break
	}
	if n != 1 {
		t.Fatalf("early break yielded %d", n)
	}
}

func TestEmployeeHistoryPersonalTotals(t *testing.T) {
	for entry := range EmployeeHistory("e2", historyFixture()) {
		switch entry.Assignment.ID {
		case "a1":
			if entry.HasCost || entry.PersonalTotal != 0 {
				t.Fatalf("a1 must have no personal cost: %+v", entry)
			}
		case "a3":
			if !entry.HasCost || entry.PersonalTotal != 90000 {
				t.Fatalf("a3 personal total = %d", entry.PersonalTotal)
			}
		}
	}
}
