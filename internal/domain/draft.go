package domain

import (
	"sppd-backend/internal/domain/models"
)

// Draft is the assignment being edited. Every mutation of the form goes
// through one of the reducer methods below so the derivation rules live in one
// place and stay testable without the HTTP layer.
//
// LastAppliedDestination marks the destination whose master rates were last
// copied into the cost lines. Rates re-apply only when the destination
// actually changes; a later date change resets day counts but never re-runs
// the rate lookup.
type Draft struct {
	models.TravelAssignment
	LastAppliedDestination string `json:"lastAppliedDestination"`
}

func findEmployee(employees []models.Employee, id string) (models.Employee, bool) {
	for _, e := range employees {
		if e.ID == id {
			return e, true
		}
	}
	return models.Employee{}, false
}

// SetDates stores the travel dates and, once both ends are known, derives the
// duration and rewrites every line's day counts. Manual day-count edits made
// before the date change are overwritten.
func (d *Draft) SetDates(startDate, endDate string) {
	d.StartDate = startDate
	d.EndDate = endDate
	if startDate == "" || endDate == "" {
		return
	}
	d.DurationDays = CalculateDays(startDate, endDate)
	ResetDayCounts(d.Costs, d.DurationDays)
}

// SetDestination records the chosen destination and applies its master rates.
func (d *Draft) SetDestination(destination string, master *models.MasterCost, employees []models.Employee) {
	d.Destination = destination
	d.ApplyDestinationRates(master, employees)
}

// ApplyDestinationRates copies the destination's master rates into every cost
// line, exactly once per distinct destination value. A destination without a
// master row leaves the lines and the marker untouched, so a later retry with
// a freshly created master row still applies.
func (d *Draft) ApplyDestinationRates(master *models.MasterCost, employees []models.Employee) {
	if d.Destination == "" || d.Destination == d.LastAppliedDestination {
		return
	}
	if master == nil {
		return
	}
	for i := range d.Costs {
		c := &d.Costs[i]
		c.DailyAllowance = master.DailyAllowance
		c.Lodging = master.Lodging
		c.TransportBBM = master.TransportBBM
		c.SeaTransport = master.SeaTransport
		c.AirTransport = master.AirTransport
		c.Taxi = master.Taxi
		c.DailyDays = d.DurationDays
		c.LodgingDays = LodgingDaysFor(d.DurationDays)
		c.RepresentationDays = d.DurationDays
		if emp, ok := findEmployee(employees, c.EmployeeID); ok {
			c.Representation = RepresentationRate(emp, d.TravelType)
		} else {
			c.Representation = 0
		}
	}
	d.LastAppliedDestination = d.Destination
}

// SetTravelType switches between dalam/luar daerah. Only the representation
// rate of existing lines changes; the destination resets because the
// destination list differs per category.
func (d *Draft) SetTravelType(t models.TravelType, employees []models.Employee) {
	d.TravelType = t
	d.Destination = ""
	for i := range d.Costs {
		if emp, ok := findEmployee(employees, d.Costs[i].EmployeeID); ok {
			d.Costs[i].Representation = RepresentationRate(emp, t)
		}
	}
}

// ToggleEmployee adds or removes a participant. Adding seeds a fresh cost line
// from the current master rates (if any) and duration; removing drops the line.
func (d *Draft) ToggleEmployee(id string, employees []models.Employee, master *models.MasterCost) {
	if d.HasEmployee(id) {
		ids := d.SelectedEmployeeIDs[:0]
		for _, x := range d.SelectedEmployeeIDs {
			if x != id {
				ids = append(ids, x)
			}
		}
		d.SelectedEmployeeIDs = ids
		costs := d.Costs[:0]
		for _, c := range d.Costs {
			if c.EmployeeID != id {
				costs = append(costs, c)
			}
		}
		d.Costs = costs
		return
	}
	emp, _ := findEmployee(employees, id)
	emp.ID = id
	d.SelectedEmployeeIDs = append(d.SelectedEmployeeIDs, id)
	d.Costs = append(d.Costs, NewCostLine(emp, master, d.TravelType, d.DurationDays))
}

// SetTotalTransport collapses the three transport components into one figure:
// the whole amount lands in the BBM bucket, sea and air zero out.
func (d *Draft) SetTotalTransport(employeeID string, total int64) {
	for i := range d.Costs {
		if d.Costs[i].EmployeeID == employeeID {
			d.Costs[i].TransportBBM = total
			d.Costs[i].SeaTransport = 0
			d.Costs[i].AirTransport = 0
			return
		}
	}
}

// UpdateCost edits a single numeric field of an employee's line. No field is
// ever locked after derivation.
func (d *Draft) UpdateCost(employeeID, field string, value int64) error {
	for i := range d.Costs {
		c := &d.Costs[i]
		if c.EmployeeID != employeeID {
			continue
		}
		switch field {
		case "dailyAllowance":
			c.DailyAllowance = value
		case "dailyDays":
			c.DailyDays = int(value)
		case "lodging":
			c.Lodging = value
		case "lodgingDays":
			c.LodgingDays = int(value)
		case "transportBbm":
			c.TransportBBM = value
		case "seaTransport":
			c.SeaTransport = value
		case "airTransport":
			c.AirTransport = value
		case "taxi":
			c.Taxi = value
		case "representation":
			c.Representation = value
		case "representationDays":
			c.RepresentationDays = int(value)
		default:
			return ValidationError{Field: field, Msg: "field biaya tidak dikenal"}
		}
		return nil
	}
	return NotFoundError{Resource: "rincian biaya pegawai"}
}

// Validate guards the save: at least one employee, a destination, and a
// positive duration.
func (d Draft) Validate() error {
	if len(d.SelectedEmployeeIDs) == 0 {
		return ValidationError{Field: "selectedEmployeeIds", Msg: "Pilih minimal satu pegawai"}
	}
	if d.Destination == "" {
		return ValidationError{Field: "destination", Msg: "Pilih tujuan perjalanan"}
	}
	if d.DurationDays <= 0 {
		return ValidationError{Field: "durationDays", Msg: "Tanggal kembali harus setelah tanggal berangkat"}
	}
	return nil
}
