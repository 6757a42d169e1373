package services

import (
	"testing"

	"sppd-backend/internal/domain"
	"sppd-backend/internal/domain/models"
	"sppd-backend/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestSubActivityDeleteGuardedWhileReferenced(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM travel_assignments").WithArgs("1.01.01").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	svc := SubActivityService{
		SubRepo:        repositories.SubActivityRepository{DB: db},
		AssignmentRepo: repositories.AssignmentRepository{DB: db},
	}
	if err := svc.Delete("1.01.01"); !domain.IsConflict(err) {
		t.Fatalf("expected ConflictError while assignments reference the code, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSubActivityDeleteWhenUnreferenced(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM travel_assignments").WithArgs("1.01.09").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec("DELETE FROM sub_activities").WithArgs("1.01.09").
		WillReturnResult(sqlmock.NewResult(0, 1))

	svc := SubActivityService{
		SubRepo:        repositories.SubActivityRepository{DB: db},
		AssignmentRepo: repositories.AssignmentRepository{DB: db},
	}
	if err := svc.Delete("1.01.09"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSubActivitySaveValidation(t *testing.T) {
	svc := SubActivityService{}
	if err := svc.Save(models.SubActivity{Name: "Tanpa kode"}); !domain.IsValidation(err) {
		t.Fatalf("expected ValidationError for missing code, got %v", err)
	}
	if err := svc.Save(models.SubActivity{Code: "1.01.01"}); !domain.IsValidation(err) {
		t.Fatalf("expected ValidationError for missing name, got %v", err)
	}
}

func TestPreviewCeiling(t *testing.T) {
	svc := SubActivityService{}
	anggaran, spd := svc.PreviewCeiling(100, 200, 300, 400, "II", "999")
	if anggaran != 1000 {
		t.Fatalf("anggaran wrong: got %d want 1000", anggaran)
	}
	if spd != "300" {
		t.Fatalf("spd wrong: got %q want 300", spd)
	}

	anggaran, spd = svc.PreviewCeiling(100, 200, 300, 400, "", "teks bebas")
	if anggaran != 1000 || spd != "teks bebas" {
		t.Fatalf("no-marker preview wrong: got %d %q", anggaran, spd)
	}
}
