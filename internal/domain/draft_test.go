package domain

import (
	"testing"

	"sppd-backend/internal/domain/models"
)

var draftEmployees = []models.Employee{
	{ID: "e1", Name: "Andi", RepresentationDalam: 100000, RepresentationLuar: 250000},
	{ID: "e2", Name: "Budi", RepresentationDalam: 50000, RepresentationLuar: 150000},
}

var mataram = models.MasterCost{
	Destination:    "Mataram",
	DailyAllowance: 200000,
	Lodging:        300000,
	TransportBBM:   150000,
	Taxi:           75000,
}

func newTestDraft() *Draft {
	d := &Draft{}
	d.TravelType = models.DalamDaerah
	d.SetDates("2024-01-10", "2024-01-12")
	d.ToggleEmployee("e1", draftEmployees, nil)
	return d
}

func TestSetDatesOverwritesManualDayCounts(t *testing.T) {
	d := newTestDraft()
	if err := d.UpdateCost("e1", "lodgingDays", 9); err != nil {
		t.Fatalf("UpdateCost: %v", err)
	}

	d.SetDates("2024-01-10", "2024-01-14")
	if d.DurationDays != 5 {
		t.Fatalf("duration = %d, want 5", d.DurationDays)
	}
	c := d.Costs[0]
	if c.DailyDays != 5 || c.RepresentationDays != 5 || c.LodgingDays != 4 {
		t.Fatalf("day counts after date change = %d/%d/%d", c.DailyDays, c.RepresentationDays, c.LodgingDays)
	}
}

func TestApplyDestinationRatesOncePerDestination(t *testing.T) {
	d := newTestDraft()
	d.SetDestination("Mataram", &mataram, draftEmployees)

	if d.LastAppliedDestination != "Mataram" {
		t.Fatalf("marker = %q", d.LastAppliedDestination)
	}
	if d.Costs[0].DailyAllowance != 200000 || d.Costs[0].Representation != 100000 {
		t.Fatalf("rates not applied: %+v", d.Costs[0])
	}

	// Manual override, then re-apply with the same destination: must not reset.
	if err := d.UpdateCost("e1", "dailyAllowance", 999); err != nil {
		t.Fatalf("UpdateCost: %v", err)
	}
	d.ApplyDestinationRates(&mataram, draftEmployees)
	if d.Costs[0].DailyAllowance != 999 {
		t.Fatalf("same destination must not re-apply rates, got %d", d.Costs[0].DailyAllowance)
	}
}

func TestApplyDestinationRatesWithoutMasterLeavesMarker(t *testing.T) {
	d := newTestDraft()
	d.SetDestination("Dompu", nil, draftEmployees)

	if d.LastAppliedDestination != "" {
		t.Fatalf("marker must stay empty without a master row, got %q", d.LastAppliedDestination)
	}
	if d.Costs[0].DailyAllowance != 0 {
		t.Fatalf("rates must stay untouched, got %d", d.Costs[0].DailyAllowance)
	}

	// The master row shows up later; the same destination now applies.
	dompu := mataram
	dompu.Destination = "Dompu"
	d.ApplyDestinationRates(&dompu, draftEmployees)
	if d.LastAppliedDestination != "Dompu" || d.Costs[0].DailyAllowance != 200000 {
		t.Fatalf("late master row not applied: marker=%q daily=%d", d.LastAppliedDestination, d.Costs[0].DailyAllowance)
	}
}

func TestDateChangeAfterRatesOnlyResetsDayCounts(t *testing.T) {
	d := newTestDraft()
	d.SetDestination("Mataram", &mataram, draftEmployees)
	if err := d.UpdateCost("e1", "lodging", 1); err != nil {
		t.Fatalf("UpdateCost: %v", err)
	}

	d.SetDates("2024-01-10", "2024-01-13")
	c := d.Costs[0]
	if c.Lodging != 1 {
		t.Fatalf("date change must not re-run the rate lookup, lodging=%d", c.Lodging)
	}
	if c.DailyDays != 4 || c.LodgingDays != 3 {
		t.Fatalf("day counts = %d/%d", c.DailyDays, c.LodgingDays)
	}
}

func TestSetTravelTypeReappliesRepresentationOnly(t *testing.T) {
	d := newTestDraft()
	d.SetDestination("Mataram", &mataram, draftEmployees)

	d.SetTravelType(models.LuarDaerah, draftEmployees)
	c := d.Costs[0]
	if c.Representation != 250000 {
		t.Fatalf("representation = %d, want luar rate 250000", c.Representation)
	}
	if c.DailyAllowance != 200000 || c.Lodging != 300000 {
		t.Fatalf("other fields must stay untouched: %+v", c)
	}
	if d.Destination != "" {
		t.Fatalf("destination must reset on category change, got %q", d.Destination)
	}
}

func TestToggleEmployeeAddAndRemove(t *testing.T) {
	d := newTestDraft()
	d.SetDestination("Mataram", &mataram, draftEmployees)

	d.ToggleEmployee("e2", draftEmployees, &mataram)
	if len(d.SelectedEmployeeIDs) != 2 || len(d.Costs) != 2 {
		t.Fatalf("add failed: ids=%v costs=%d", d.SelectedEmployeeIDs, len(d.Costs))
	}
	c := d.Costs[1]
	if c.EmployeeID != "e2" || c.DailyAllowance != 200000 || c.Representation != 50000 {
		t.Fatalf("new line not seeded from master: %+v", c)
	}
	if c.DailyDays != 3 || c.LodgingDays != 2 {
		t.Fatalf("new line day counts = %d/%d", c.DailyDays, c.LodgingDays)
	}

	d.ToggleEmployee("e1", draftEmployees, &mataram)
	if len(d.SelectedEmployeeIDs) != 1 || d.SelectedEmployeeIDs[0] != "e2" {
		t.Fatalf("remove failed: %v", d.SelectedEmployeeIDs)
	}
	if len(d.Costs) != 1 || d.Costs[0].EmployeeID != "e2" {
		t.Fatalf("cost line of removed employee must go: %+v", d.Costs)
	}
}

func TestSetTotalTransportCollapsesIntoBBM(t *testing.T) {
	d := newTestDraft()
	d.Costs[0].TransportBBM = 100
	d.Costs[0].SeaTransport = 200
	d.Costs[0].AirTransport = 300

	d.SetTotalTransport("e1", 450000)
	c := d.Costs[0]
	if c.TransportBBM != 450000 || c.SeaTransport != 0 || c.AirTransport != 0 {
		t.Fatalf("collapse policy violated: %+v", c)
	}
}

func TestUpdateCostUnknownField(t *testing.T) {
	d := newTestDraft()
	err := d.UpdateCost("e1", "bogus", 1)
	if !IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if err := d.UpdateCost("missing", "taxi", 1); !IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestDraftValidate(t *testing.T) {
	var d Draft
	if err := d.Validate(); !IsValidation(err) {
		t.Fatalf("empty draft must fail validation, got %v", err)
	}

	d = *newTestDraft()
	if err := d.Validate(); !IsValidation(err) {
		t.Fatalf("missing destination must fail, got %v", err)
	}

	d.SetDestination("Mataram", &mataram, draftEmployees)
	if err := d.Validate(); err != nil {
		t.Fatalf("complete draft must validate, got %v", err)
	}

	d.SetDates("2024-01-12", "2024-01-10")
	if err := d.Validate(); !IsValidation(err) {
		t.Fatalf("non-positive duration must fail, got %v", err)
	}
}
