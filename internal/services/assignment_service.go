package services

import (
	"fmt"
	"strings"

	"sppd-backend/internal/domain"
	"sppd-backend/internal/domain/models"
	"sppd-backend/internal/repositories"
	"sppd-backend/internal/utils"
)

// AssignmentService mengelola surat tugas: simpan, hapus, slot pejabat
// tujuan, dan penerapan perintah editor (draft) di sisi server.
type AssignmentService struct {
	AssignmentRepo repositories.AssignmentRepository
	EmployeeRepo   repositories.EmployeeRepository
	MasterCostRepo repositories.MasterCostRepository
	RequestID      string
}

func (s AssignmentService) List() ([]models.TravelAssignment, error) {
	return s.AssignmentRepo.List()
}

func (s AssignmentService) Get(id string) (models.TravelAssignment, error) {
	return s.AssignmentRepo.GetByID(id)
}

// Save validates then upserts. Last write wins; there is no version check.
func (s AssignmentService) Save(a models.TravelAssignment) error {
	if strings.TrimSpace(a.ID) == "" {
		return domain.ValidationError{Field: "id", Msg: "id surat tugas wajib diisi"}
	}
	a.Purpose = utils.NormalizeSpace(a.Purpose)
	a.Destination = utils.TrimOrEmpty(a.Destination)
	d := domain.Draft{TravelAssignment: a}
	if err := d.Validate(); err != nil {
		return err
	}
	if err := s.AssignmentRepo.Upsert(a); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "assignments", "save", fmt.Sprintf("id=%s pegawai=%d", a.ID, len(a.SelectedEmployeeIDs)))
	return nil
}

func (s AssignmentService) Delete(id string) error {
	if err := s.AssignmentRepo.Delete(id); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "assignments", "delete", "id="+id)
	return nil
}

// UpdateDestinationOfficials replaces the ordered slot list wholesale.
func (s AssignmentService) UpdateDestinationOfficials(id string, officialIDs []string) error {
	if len(officialIDs) > domain.MaxDestinationOfficials {
		return domain.ConflictError{Msg: "Maksimal 3 pejabat untuk satu SPPD (Bagian II, III, dan IV)"}
	}
	return s.AssignmentRepo.UpdateDestinationOfficials(id, officialIDs)
}

// ToggleDestinationOfficial flips one id in the stored slot list and returns
// the new selection.
func (s AssignmentService) ToggleDestinationOfficial(id, officialID string) ([]string, error) {
	a, err := s.AssignmentRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	next, err := domain.ToggleDestinationOfficial(a.DestinationOfficialIDs, officialID)
	if err != nil {
		return a.DestinationOfficialIDs, err
	}
	if err := s.AssignmentRepo.UpdateDestinationOfficials(id, next); err != nil {
		return nil, err
	}
	return next, nil
}

// DraftCommand is one editor action applied to an in-flight assignment. The
// client sends the whole draft back each time, so the server stays stateless.
type DraftCommand struct {
	Action                 string                  `json:"action"`
	Assignment             models.TravelAssignment `json:"assignment"`
	LastAppliedDestination string                  `json:"lastAppliedDestination"`

	StartDate   string            `json:"startDate,omitempty"`
	EndDate     string            `json:"endDate,omitempty"`
	Destination string            `json:"destination,omitempty"`
	TravelType  models.TravelType `json:"travelType,omitempty"`
	EmployeeID  string            `json:"employeeId,omitempty"`
	Field       string            `json:"field,omitempty"`
	Value       int64             `json:"value,omitempty"`
	Total       int64             `json:"total,omitempty"`
}

// DraftResult carries the updated draft plus the marker the client must echo
// back on the next command.
type DraftResult struct {
	Assignment             models.TravelAssignment `json:"assignment"`
	LastAppliedDestination string                  `json:"lastAppliedDestination"`
	Total                  int64                   `json:"total"`
}

// ApplyDraftCommand runs one reducer over the supplied draft. A destination
// without a rate bundle degrades to a nil master; the command never fails on
// missing reference data.
func (s AssignmentService) ApplyDraftCommand(cmd DraftCommand) (DraftResult, error) {
	d := domain.Draft{
		TravelAssignment:       cmd.Assignment,
		LastAppliedDestination: cmd.LastAppliedDestination,
	}

	employees, err := s.EmployeeRepo.List()
	if err != nil {
		return DraftResult{}, err
	}

	switch cmd.Action {
	case "set_dates":
		d.SetDates(cmd.StartDate, cmd.EndDate)
		d.ApplyDestinationRates(s.masterFor(d.Destination), employees)
	case "set_destination":
		d.SetDestination(cmd.Destination, s.masterFor(cmd.Destination), employees)
	case "set_travel_type":
		d.SetTravelType(cmd.TravelType, employees)
	case "toggle_employee":
		d.ToggleEmployee(cmd.EmployeeID, employees, s.masterFor(d.Destination))
	case "set_total_transport":
		d.SetTotalTransport(cmd.EmployeeID, cmd.Total)
	case "update_cost":
		if err := d.UpdateCost(cmd.EmployeeID, cmd.Field, cmd.Value); err != nil {
			return DraftResult{}, err
		}
	default:
		return DraftResult{}, domain.ValidationError{Field: "action", Msg: "perintah draft tidak dikenal"}
	}

	return DraftResult{
		Assignment:             d.TravelAssignment,
		LastAppliedDestination: d.LastAppliedDestination,
		Total:                  domain.TripTotal(d.TravelAssignment),
	}, nil
}

// masterFor resolves the rate bundle for a destination, nil when absent.
func (s AssignmentService) masterFor(destination string) *models.MasterCost {
	if strings.TrimSpace(destination) == "" {
		return nil
	}
	m, err := s.MasterCostRepo.GetByDestination(destination)
	if err != nil {
		return nil
	}
	return &m
}
