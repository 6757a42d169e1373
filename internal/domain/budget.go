package domain

import (
	"strconv"

	"sppd-backend/internal/domain/models"
	"sppd-backend/internal/utils"
)

// RecomputeCeiling derives the budget and the SPD disbursement ceiling from
// the four quarterly allotments. The budget is always the sum of the quarters.
// The ceiling accumulates the quarters up to the selected quarter marker; with
// no marker it keeps whatever the operator last typed (free text). Re-running
// with unchanged inputs returns the same values, so callers can invoke it on
// every edit without update loops.
func RecomputeCeiling(q1, q2, q3, q4 int64, quarterMarker, currentSPD string) (anggaran int64, spd string) {
	anggaran = q1 + q2 + q3 + q4
	switch quarterMarker {
	case "I":
		spd = strconv.FormatInt(q1, 10)
	case "II":
		spd = strconv.FormatInt(q1+q2, 10)
	case "III":
		spd = strconv.FormatInt(q1+q2+q3, 10)
	case "IV":
		spd = strconv.FormatInt(anggaran, 10)
	default:
		spd = currentSPD
	}
	return anggaran, spd
}

// SubActivityRealization is one budget line with its realized spend.
type SubActivityRealization struct {
	models.SubActivity
	Realisasi    int64    `json:"realisasi"`
	SisaSPD      int64    `json:"sisaSpd"`
	SisaAnggaran int64    `json:"sisaAnggaran"`
	Destinations []string `json:"destinations"`
}

// BudgetTotals sums budget, ceiling and realization independently; the
// remainders are differences of those sums, not sums of per-line remainders.
type BudgetTotals struct {
	Anggaran     int64 `json:"anggaran"`
	SPD          int64 `json:"spd"`
	Realisasi    int64 `json:"realisasi"`
	SisaSPD      int64 `json:"sisaSpd"`
	SisaAnggaran int64 `json:"sisaAnggaran"`
}

// BudgetReport is the realization roll-up shown on the dashboard and exported
// to Excel.
type BudgetReport struct {
	Details []SubActivityRealization `json:"details"`
	Totals  BudgetTotals             `json:"totals"`
}

// BudgetRealization groups every assignment under its budget-line code and
// computes realized cost and remaining balances per sub-activity. Assignments
// whose code no longer matches a sub-activity still count toward the realized
// total. Destination lists keep first-seen order and drop duplicates.
func BudgetRealization(subs []models.SubActivity, assignments []models.TravelAssignment) BudgetReport {
	realization := map[string]int64{}
	destinations := map[string][]string{}
	seen := map[string]map[string]bool{}
	for _, a := range assignments {
		code := a.SubActivityCode
		realization[code] += TripTotal(a)
		if seen[code] == nil {
			seen[code] = map[string]bool{}
		}
		if !seen[code][a.Destination] {
			seen[code][a.Destination] = true
			destinations[code] = append(destinations[code], a.Destination)
		}
	}

	report := BudgetReport{Details: make([]SubActivityRealization, 0, len(subs))}
	for _, sub := range subs {
		realisasi := realization[sub.Code]
		spdVal := utils.ParseAmountOrZero(sub.SPD)
		dests := destinations[sub.Code]
		if dests == nil {
			dests = []string{}
		}
		report.Details = append(report.Details, SubActivityRealization{
			SubActivity:  sub,
			Realisasi:    realisasi,
			SisaSPD:      spdVal - realisasi,
			SisaAnggaran: sub.Anggaran - realisasi,
			Destinations: dests,
		})
		report.Totals.Anggaran += sub.Anggaran
		report.Totals.SPD += spdVal
	}
	for _, v := range realization {
		report.Totals.Realisasi += v
	}
	report.Totals.SisaSPD = report.Totals.SPD - report.Totals.Realisasi
	report.Totals.SisaAnggaran = report.Totals.Anggaran - report.Totals.Realisasi
	return report
}
