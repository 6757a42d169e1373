package services

import (
	"sppd-backend/internal/domain"
	"sppd-backend/internal/domain/models"
	"sppd-backend/internal/repositories"
)

type ReportsService struct {
	AssignmentRepo repositories.AssignmentRepository
	EmployeeRepo   repositories.EmployeeRepository
	SubRepo        repositories.SubActivityRepository
}

// EmployeeReport bundles the travel history and its aggregate stats for one
// employee.
type EmployeeReport struct {
	Employee models.Employee       `json:"employee"`
	History  []domain.HistoryEntry `json:"history"`
	Stats    domain.EmployeeStats  `json:"stats"`
}

// GetEmployeeReport returns the employee's trips newest-first with per-trip
// personal cost, plus the roll-up counters.
func (s ReportsService) GetEmployeeReport(employeeID string) (EmployeeReport, error) {
	emp, err := s.EmployeeRepo.GetByID(employeeID)
	if err != nil {
		return EmployeeReport{}, err
	}
	assignments, err := s.AssignmentRepo.List()
	if err != nil {
		return EmployeeReport{}, err
	}

	history := []domain.HistoryEntry{}
	for entry := range domain.EmployeeHistory(employeeID, assignments) {
		history = append(history, entry)
	}
	return EmployeeReport{
		Employee: emp,
		History:  history,
		Stats:    domain.EmployeeHistoryStats(employeeID, assignments),
	}, nil
}

// GetBudgetReport computes the realization roll-up over every budget line.
func (s ReportsService) GetBudgetReport() (domain.BudgetReport, error) {
	subs, err := s.SubRepo.List()
	if err != nil {
		return domain.BudgetReport{}, err
	}
	assignments, err := s.AssignmentRepo.List()
	if err != nil {
		return domain.BudgetReport{}, err
	}
	return domain.BudgetRealization(subs, assignments), nil
}
