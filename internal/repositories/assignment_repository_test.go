package repositories

import (
	"testing"

	"sppd-backend/internal/domain"
	"sppd-backend/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func assignmentRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "assignment_number", "sub_activity_code", "purpose",
		"origin", "travel_type", "transportation", "destination",
		"start_date", "end_date", "duration_days",
		"selected_employee_ids", "costs",
		"signed_at", "sign_date", "signer_id",
		"pptk_id", "bendahara_id", "destination_official_ids",
	})
}

func TestAssignmentGetByIDDecodesJSONColumns(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	rows := assignmentRows().AddRow(
		"a1", "090/15/2024", "1.01.01", "Rapat koordinasi",
		"Selong", "LUAR_DAERAH", "Kendaraan Dinas", "Mataram",
		"2024-03-04", "2024-03-06", 3,
		`["e1","e2"]`,
		`[{"employeeId":"e1","transportBbm":150000,"seaTransport":0,"airTransport":0,"taxi":50000,"lodging":400000,"lodgingDays":2,"dailyAllowance":170000,"dailyDays":3,"representation":0,"representationDays":3}]`,
		"Selong", "2024-03-01", "o-kepala",
		"o-pptk", "o-bendahara", `["do1","do2"]`,
	)
	mock.ExpectQuery("FROM travel_assignments WHERE id = ?").WithArgs("a1").
		WillReturnRows(rows)

	repo := AssignmentRepository{DB: db}
	a, err := repo.GetByID("a1")
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if len(a.SelectedEmployeeIDs) != 2 || a.SelectedEmployeeIDs[1] != "e2" {
		t.Fatalf("selected employee ids decoded wrong: %v", a.SelectedEmployeeIDs)
	}
	if len(a.Costs) != 1 || a.Costs[0].Lodging != 400000 || a.Costs[0].DailyDays != 3 {
		t.Fatalf("costs decoded wrong: %+v", a.Costs)
	}
	if a.TravelType != models.LuarDaerah {
		t.Fatalf("travel type decoded wrong: %q", a.TravelType)
	}
	if len(a.DestinationOfficialIDs) != 2 {
		t.Fatalf("destination official ids decoded wrong: %v", a.DestinationOfficialIDs)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestAssignmentGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM travel_assignments WHERE id = ?").WithArgs("nope").
		WillReturnRows(assignmentRows())

	repo := AssignmentRepository{DB: db}
	if _, err := repo.GetByID("nope"); !domain.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestAssignmentUpsertEncodesJSONColumns(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	a := models.TravelAssignment{
		ID:                  "a1",
		AssignmentNumber:    "090/15/2024",
		SubActivityCode:     "1.01.01",
		TravelType:          models.DalamDaerah,
		Destination:         "Labuhan Haji",
		StartDate:           "2024-03-04",
		EndDate:             "2024-03-04",
		DurationDays:        1,
		SelectedEmployeeIDs: []string{"e1"},
		Costs: []models.TravelCost{
			{EmployeeID: "e1", DailyAllowance: 100000, DailyDays: 1},
		},
		DestinationOfficialIDs: []string{},
	}

	mock.ExpectExec("INSERT INTO travel_assignments").
		WithArgs(a.ID, a.AssignmentNumber, a.SubActivityCode, a.Purpose, a.Origin, "DALAM_DAERAH",
			a.Transportation, a.Destination, a.StartDate, a.EndDate, a.DurationDays,
			[]byte(`["e1"]`), sqlmock.AnyArg(), a.SignedAt, a.SignDate, a.SignerID,
			a.PPTKID, a.BendaharaID, []byte(`[]`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := AssignmentRepository{DB: db}
	if err := repo.Upsert(a); err != nil {
		t.Fatalf("Upsert error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestAssignmentUpdateDestinationOfficialsNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("UPDATE travel_assignments SET destination_official_ids").
		WithArgs([]byte(`["do1"]`), "missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := AssignmentRepository{DB: db}
	if err := repo.UpdateDestinationOfficials("missing", []string{"do1"}); !domain.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestAssignmentCountBySubActivity(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM travel_assignments").WithArgs("1.01.01").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	repo := AssignmentRepository{DB: db}
	n, err := repo.CountBySubActivity("1.01.01")
	if err != nil {
		t.Fatalf("CountBySubActivity error: %v", err)
	}
	if n != 4 {
		t.Fatalf("count wrong: got %d want 4", n)
	}
}
