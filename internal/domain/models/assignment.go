package models

// TravelType restricts destination choice and selects which employee
// representation rate applies.
type TravelType string

const (
	DalamDaerah TravelType = "DALAM_DAERAH"
	LuarDaerah  TravelType = "LUAR_DAERAH"
)

// TravelCost is the per-employee cost line of an assignment: six rate x
// quantity components. Day-count fields default to the trip duration but stay
// user-editable afterwards.
type TravelCost struct {
	EmployeeID         string `json:"employeeId"`
	TransportBBM       int64  `json:"transportBbm"`
	SeaTransport       int64  `json:"seaTransport"`
	AirTransport       int64  `json:"airTransport"`
	Taxi               int64  `json:"taxi"`
	Lodging            int64  `json:"lodging"`
	LodgingDays        int    `json:"lodgingDays"`
	DailyAllowance     int64  `json:"dailyAllowance"`
	DailyDays          int    `json:"dailyDays"`
	Representation     int64  `json:"representation"`
	RepresentationDays int    `json:"representationDays"`
}

// TravelAssignment is the SPT being drafted, printed and accounted for.
// SelectedEmployeeIDs keeps selection order; Costs holds exactly one line per
// selected employee. DestinationOfficialIDs is an ordered list of at most
// three ids whose position decides the SPPD back-page slot (II/III/IV).
type TravelAssignment struct {
	ID                     string       `json:"id"`
	AssignmentNumber       string       `json:"assignmentNumber"`
	SubActivityCode        string       `json:"subActivityCode"`
	Purpose                string       `json:"purpose"`
	Origin                 string       `json:"origin"`
	TravelType             TravelType   `json:"travelType"`
	Transportation         string       `json:"transportation"`
	Destination            string       `json:"destination"`
	StartDate              string       `json:"startDate"`
	EndDate                string       `json:"endDate"`
	DurationDays           int          `json:"durationDays"`
	SelectedEmployeeIDs    []string     `json:"selectedEmployeeIds"`
	Costs                  []TravelCost `json:"costs"`
	SignedAt               string       `json:"signedAt"`
	SignDate               string       `json:"signDate"`
	SignerID               string       `json:"signerId"`
	PPTKID                 string       `json:"pptkId"`
	BendaharaID            string       `json:"bendaharaId"`
	DestinationOfficialIDs []string     `json:"destinationOfficialIds"`
}

// CostFor returns the cost line belonging to an employee, if any.
func (a TravelAssignment) CostFor(employeeID string) (TravelCost, bool) {
	for _, c := range a.Costs {
		if c.EmployeeID == employeeID {
			return c, true
		}
	}
	return TravelCost{}, false
}

// HasEmployee reports whether the employee participates in the trip.
func (a TravelAssignment) HasEmployee(employeeID string) bool {
	for _, id := range a.SelectedEmployeeIDs {
		if id == employeeID {
			return true
		}
	}
	return false
}
