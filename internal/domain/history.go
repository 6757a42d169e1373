package domain

import (
	"iter"
	"sort"

	"sppd-backend/internal/domain/models"
)

// HistoryEntry is one trip in an employee's travel history. HasCost is false
// when the assignment carries no cost line for the employee (a reference gap);
// such trips still count toward trip and day totals but contribute zero cost.
type HistoryEntry struct {
	Assignment    models.TravelAssignment `json:"assignment"`
	PersonalCost  models.TravelCost       `json:"personalCost"`
	HasCost       bool                    `json:"hasCost"`
	PersonalTotal int64                   `json:"personalTotal"`
}

// EmployeeStats accumulates an employee's full trip history.
type EmployeeStats struct {
	TripCount int   `json:"tripCount"`
	TotalDays int   `json:"totalDays"`
	TotalCost int64 `json:"totalCost"`
}

// EmployeeHistory yields the employee's trips ordered by start date
// descending. The sequence is finite and restartable; the filter and sort run
// again on each range, over the assignment slice as it was passed in.
func EmployeeHistory(employeeID string, assignments []models.TravelAssignment) iter.Seq[HistoryEntry] {
	return func(yield func(HistoryEntry) bool) {
		matched := make([]models.TravelAssignment, 0, len(assignments))
		for _, a := range assignments {
			if a.HasEmployee(employeeID) {
				matched = append(matched, a)
			}
		}
		sort.SliceStable(matched, func(i, j int) bool {
			return matched[i].StartDate > matched[j].StartDate
		})
		for _, a := range matched {
			cost, ok := a.CostFor(employeeID)
			entry := HistoryEntry{Assignment: a, PersonalCost: cost, HasCost: ok}
			if ok {
				entry.PersonalTotal = LineTotal(cost)
			}
			if !yield(entry) {
				return
			}
		}
	}
}

// EmployeeHistoryStats sums the employee's trips, service days and personal
// cost across all assignments.
func EmployeeHistoryStats(employeeID string, assignments []models.TravelAssignment) EmployeeStats {
	var stats EmployeeStats
	for _, a := range assignments {
		if !a.HasEmployee(employeeID) {
			continue
		}
		stats.TripCount++
		stats.TotalDays += a.DurationDays
		if cost, ok := a.CostFor(employeeID); ok {
			stats.TotalCost += LineTotal(cost)
		}
	}
	return stats
}
