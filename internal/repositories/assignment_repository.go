package repositories

import (
	"database/sql"
	"encoding/json"

	intconfig "sppd-backend/internal/config"
	"sppd-backend/internal/domain"
	"sppd-backend/internal/domain/models"
)

// AssignmentRepository persists travel assignments. The employee selection,
// the per-employee cost lines and the destination-official slots are stored
// as JSON columns so row shape never changes when a trip grows.
type AssignmentRepository struct {
	DB *sql.DB
}

func (r AssignmentRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const assignmentColumns = `
	id, COALESCE(assignment_number,''), COALESCE(sub_activity_code,''), COALESCE(purpose,''),
	COALESCE(origin,''), COALESCE(travel_type,''), COALESCE(transportation,''), COALESCE(destination,''),
	COALESCE(start_date,''), COALESCE(end_date,''), COALESCE(duration_days,0),
	COALESCE(selected_employee_ids,'[]'), COALESCE(costs,'[]'),
	COALESCE(signed_at,''), COALESCE(sign_date,''), COALESCE(signer_id,''),
	COALESCE(pptk_id,''), COALESCE(bendahara_id,''), COALESCE(destination_official_ids,'[]')`

func scanAssignment(row interface {
	Scan(dest ...any) error
}) (models.TravelAssignment, error) {
	var (
		a        models.TravelAssignment
		selected []byte
		costs    []byte
		destOffs []byte
	)
	err := row.Scan(&a.ID, &a.AssignmentNumber, &a.SubActivityCode, &a.Purpose,
		&a.Origin, &a.TravelType, &a.Transportation, &a.Destination,
		&a.StartDate, &a.EndDate, &a.DurationDays,
		&selected, &costs,
		&a.SignedAt, &a.SignDate, &a.SignerID,
		&a.PPTKID, &a.BendaharaID, &destOffs)
	if err != nil {
		return a, err
	}
	if err := json.Unmarshal(selected, &a.SelectedEmployeeIDs); err != nil {
		return a, domain.InternalError{Msg: "gagal decode kolom selected_employee_ids", Err: err}
	}
	if err := json.Unmarshal(costs, &a.Costs); err != nil {
		return a, domain.InternalError{Msg: "gagal decode kolom costs", Err: err}
	}
	if err := json.Unmarshal(destOffs, &a.DestinationOfficialIDs); err != nil {
		return a, domain.InternalError{Msg: "gagal decode kolom destination_official_ids", Err: err}
	}
	return a, nil
}

func (r AssignmentRepository) List() ([]models.TravelAssignment, error) {
	rows, err := r.db().Query(`SELECT` + assignmentColumns + `
		FROM travel_assignments
		ORDER BY start_date DESC, id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.TravelAssignment{}
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return out, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// ListBySubActivity narrows the listing for the budget report roll-up.
func (r AssignmentRepository) ListBySubActivity(code string) ([]models.TravelAssignment, error) {
	rows, err := r.db().Query(`SELECT`+assignmentColumns+`
		FROM travel_assignments
		WHERE sub_activity_code = ?
		ORDER BY start_date DESC, id DESC
	`, code)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.TravelAssignment{}
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return out, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r AssignmentRepository) GetByID(id string) (models.TravelAssignment, error) {
	row := r.db().QueryRow(`SELECT`+assignmentColumns+`
		FROM travel_assignments WHERE id = ?
	`, id)
	a, err := scanAssignment(row)
	if err == sql.ErrNoRows {
		return a, domain.NotFoundError{Resource: "surat tugas"}
	}
	return a, err
}

func (r AssignmentRepository) Upsert(a models.TravelAssignment) error {
	selected, err := json.Marshal(a.SelectedEmployeeIDs)
	if err != nil {
		return domain.InternalError{Msg: "gagal encode kolom selected_employee_ids", Err: err}
	}
	costs, err := json.Marshal(a.Costs)
	if err != nil {
		return domain.InternalError{Msg: "gagal encode kolom costs", Err: err}
	}
	destOffs, err := json.Marshal(a.DestinationOfficialIDs)
	if err != nil {
		return domain.InternalError{Msg: "gagal encode kolom destination_official_ids", Err: err}
	}

	_, err = r.db().Exec(`
		INSERT INTO travel_assignments
			(id, assignment_number, sub_activity_code, purpose, origin, travel_type,
			 transportation, destination, start_date, end_date, duration_days,
			 selected_employee_ids, costs, signed_at, sign_date, signer_id,
			 pptk_id, bendahara_id, destination_official_ids)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			assignment_number=VALUES(assignment_number), sub_activity_code=VALUES(sub_activity_code),
			purpose=VALUES(purpose), origin=VALUES(origin), travel_type=VALUES(travel_type),
			transportation=VALUES(transportation), destination=VALUES(destination),
			start_date=VALUES(start_date), end_date=VALUES(end_date), duration_days=VALUES(duration_days),
			selected_employee_ids=VALUES(selected_employee_ids), costs=VALUES(costs),
			signed_at=VALUES(signed_at), sign_date=VALUES(sign_date), signer_id=VALUES(signer_id),
			pptk_id=VALUES(pptk_id), bendahara_id=VALUES(bendahara_id),
			destination_official_ids=VALUES(destination_official_ids)
	`, a.ID, a.AssignmentNumber, a.SubActivityCode, a.Purpose, a.Origin, string(a.TravelType),
		a.Transportation, a.Destination, a.StartDate, a.EndDate, a.DurationDays,
		selected, costs, a.SignedAt, a.SignDate, a.SignerID,
		a.PPTKID, a.BendaharaID, destOffs)
	return err
}

// UpdateDestinationOfficials rewrites only the slot list of one assignment.
func (r AssignmentRepository) UpdateDestinationOfficials(id string, officialIDs []string) error {
	destOffs, err := json.Marshal(officialIDs)
	if err != nil {
		return domain.InternalError{Msg: "gagal encode kolom destination_official_ids", Err: err}
	}
	res, err := r.db().Exec(`
		UPDATE travel_assignments SET destination_official_ids = ? WHERE id = ?
	`, destOffs, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "surat tugas"}
	}
	return nil
}

func (r AssignmentRepository) Delete(id string) error {
	res, err := r.db().Exec(`DELETE FROM travel_assignments WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "surat tugas"}
	}
	return nil
}

// CountBySubActivity backs the delete guard on budget lines.
func (r AssignmentRepository) CountBySubActivity(code string) (int, error) {
	var n int
	err := r.db().QueryRow(`
		SELECT COUNT(*) FROM travel_assignments WHERE sub_activity_code = ?
	`, code).Scan(&n)
	return n, err
}
