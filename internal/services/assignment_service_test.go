package services

import (
	"testing"

	"sppd-backend/internal/domain"
	"sppd-backend/internal/domain/models"
	"sppd-backend/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func expectEmployeeList(mock sqlmock.Sqlmock) {
	mock.ExpectQuery("FROM employees").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "nip", "pangkat_gol", "jabatan", "representation_dalam", "representation_luar",
		}).
			AddRow("e1", "Ahmad", "1971", "III/c", "Kasubbag", 0, 250000).
			AddRow("e2", "Budi", "1980", "III/a", "Staf", 0, 0))
}

func expectMasterCost(mock sqlmock.Sqlmock, dest string) {
	mock.ExpectQuery("FROM master_costs WHERE destination").WithArgs(dest).
		WillReturnRows(sqlmock.NewRows([]string{
			"destination", "daily_allowance", "lodging", "transport_bbm", "sea_transport", "air_transport", "taxi",
		}).AddRow(dest, 170000, 400000, 150000, 0, 0, 50000))
}

func TestApplyDraftCommandSetDestinationAppliesRatesOnce(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	mock.MatchExpectationsInOrder(false)

	expectEmployeeList(mock)
	expectMasterCost(mock, "Mataram")

	svc := AssignmentService{
		AssignmentRepo: repositories.AssignmentRepository{DB: db},
		EmployeeRepo:   repositories.EmployeeRepository{DB: db},
		MasterCostRepo: repositories.MasterCostRepository{DB: db},
	}

	res, err := svc.ApplyDraftCommand(DraftCommand{
		Action: "set_destination",
		Assignment: models.TravelAssignment{
			TravelType:          models.LuarDaerah,
			StartDate:           "2024-03-04",
			EndDate:             "2024-03-06",
			DurationDays:        3,
			SelectedEmployeeIDs: []string{"e1"},
			Costs:               []models.TravelCost{{EmployeeID: "e1"}},
		},
		Destination: "Mataram",
	})
	if err != nil {
		t.Fatalf("ApplyDraftCommand error: %v", err)
	}
	if res.LastAppliedDestination != "Mataram" {
		t.Fatalf("marker not set: %q", res.LastAppliedDestination)
	}
	c := res.Assignment.Costs[0]
	if c.DailyAllowance != 170000 || c.Lodging != 400000 || c.Representation != 250000 {
		t.Fatalf("rates not applied: %+v", c)
	}
	if c.DailyDays != 3 || c.LodgingDays != 2 {
		t.Fatalf("day counts not derived: %+v", c)
	}
	if res.Total == 0 {
		t.Fatalf("total should be recomputed")
	}
}

func TestApplyDraftCommandUnknownAction(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	expectEmployeeList(mock)

	svc := AssignmentService{
		EmployeeRepo: repositories.EmployeeRepository{DB: db},
	}
	if _, err := svc.ApplyDraftCommand(DraftCommand{Action: "explode"}); !domain.IsValidation(err) {
		t.Fatalf("expected ValidationError for unknown action, got %v", err)
	}
}

func TestSaveRejectsInvalidDraft(t *testing.T) {
	svc := AssignmentService{}
	err := svc.Save(models.TravelAssignment{ID: "a1", Destination: "Mataram", DurationDays: 3})
	if !domain.IsValidation(err) {
		t.Fatalf("expected ValidationError for empty employee selection, got %v", err)
	}
}

func TestUpdateDestinationOfficialsRejectsOverCap(t *testing.T) {
	svc := AssignmentService{}
	err := svc.UpdateDestinationOfficials("a1", []string{"1", "2", "3", "4"})
	if !domain.IsConflict(err) {
		t.Fatalf("expected ConflictError over slot cap, got %v", err)
	}
}
