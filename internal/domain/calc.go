package domain

import (
	"math"

	"sppd-backend/internal/domain/models"
	"sppd-backend/internal/utils"
)

// CalculateDays returns the inclusive day count of a date range:
// ceil(end-start in days) + 1, so a same-day trip counts as 1 day.
// Blank or unparseable dates yield 0. A range with end before start yields a
// zero or negative count; the deriver passes that through and leaves rejection
// to validation.
func CalculateDays(startDate, endDate string) int {
	if startDate == "" || endDate == "" {
		return 0
	}
	start, err := utils.ParseDate(startDate)
	if err != nil {
		return 0
	}
	end, err := utils.ParseDate(endDate)
	if err != nil {
		return 0
	}
	diff := end.Sub(start).Hours() / 24
	return int(math.Ceil(diff)) + 1
}

// LodgingDaysFor is the lodging-night rule: one night fewer than the trip
// lasts, never negative.
func LodgingDaysFor(durationDays int) int {
	if durationDays <= 1 {
		return 0
	}
	return durationDays - 1
}

// ResetDayCounts rewrites the three day-count fields of every cost line from
// the trip duration. This fires on every date change and overwrites manual
// edits to those fields.
func ResetDayCounts(costs []models.TravelCost, durationDays int) {
	for i := range costs {
		costs[i].DailyDays = durationDays
		costs[i].RepresentationDays = durationDays
		costs[i].LodgingDays = LodgingDaysFor(durationDays)
	}
}

// RepresentationRate picks the employee rate matching the travel type.
func RepresentationRate(emp models.Employee, t models.TravelType) int64 {
	if t == models.DalamDaerah {
		return emp.RepresentationDalam
	}
	return emp.RepresentationLuar
}

// NewCostLine seeds a fresh cost line for an employee joining the trip. Master
// rates apply when the destination has a row; day counts follow the current
// duration.
func NewCostLine(emp models.Employee, master *models.MasterCost, t models.TravelType, durationDays int) models.TravelCost {
	line := models.TravelCost{
		EmployeeID:         emp.ID,
		DailyDays:          durationDays,
		LodgingDays:        LodgingDaysFor(durationDays),
		Representation:     RepresentationRate(emp, t),
		RepresentationDays: durationDays,
	}
	if master != nil {
		line.DailyAllowance = master.DailyAllowance
		line.Lodging = master.Lodging
		line.TransportBBM = master.TransportBBM
		line.SeaTransport = master.SeaTransport
		line.AirTransport = master.AirTransport
		line.Taxi = master.Taxi
	}
	return line
}

// LineTotal is the one cost formula: rate x days for the daily, lodging and
// representation components, raw amounts for transport and taxi. Every view
// that shows a line or trip cost must go through here.
func LineTotal(c models.TravelCost) int64 {
	daily := c.DailyAllowance * int64(c.DailyDays)
	lodging := c.Lodging * int64(c.LodgingDays)
	transport := c.TransportBBM + c.SeaTransport + c.AirTransport + c.Taxi
	representation := c.Representation * int64(c.RepresentationDays)
	return daily + lodging + transport + representation
}

// TripTotal sums LineTotal over every cost line of the assignment.
func TripTotal(a models.TravelAssignment) int64 {
	var sum int64
	for _, c := range a.Costs {
		sum += LineTotal(c)
	}
	return sum
}
