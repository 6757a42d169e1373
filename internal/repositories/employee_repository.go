package repositories

import (
	"database/sql"

	intconfig "sppd-backend/internal/config"
	"sppd-backend/internal/domain"
	"sppd-backend/internal/domain/models"
)

type EmployeeRepository struct {
	DB *sql.DB
}

func (r EmployeeRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r EmployeeRepository) List() ([]models.Employee, error) {
	rows, err := r.db().Query(`
		SELECT id, name, nip, pangkat_gol, jabatan,
		       COALESCE(representation_dalam,0), COALESCE(representation_luar,0)
		FROM employees
		ORDER BY name ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Employee{}
	for rows.Next() {
		var e models.Employee
		if err := rows.Scan(&e.ID, &e.Name, &e.NIP, &e.PangkatGol, &e.Jabatan,
			&e.RepresentationDalam, &e.RepresentationLuar); err != nil {
			return out, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r EmployeeRepository) GetByID(id string) (models.Employee, error) {
	var e models.Employee
	err := r.db().QueryRow(`
		SELECT id, name, nip, pangkat_gol, jabatan,
		       COALESCE(representation_dalam,0), COALESCE(representation_luar,0)
		FROM employees WHERE id = ?
	`, id).Scan(&e.ID, &e.Name, &e.NIP, &e.PangkatGol, &e.Jabatan,
		&e.RepresentationDalam, &e.RepresentationLuar)
	if err == sql.ErrNoRows {
		return e, domain.NotFoundError{Resource: "pegawai"}
	}
	return e, err
}

func (r EmployeeRepository) Upsert(e models.Employee) error {
	_, err := r.db().Exec(`
		INSERT INTO employees (id, name, nip, pangkat_gol, jabatan, representation_dalam, representation_luar)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			name=VALUES(name), nip=VALUES(nip), pangkat_gol=VALUES(pangkat_gol),
			jabatan=VALUES(jabatan), representation_dalam=VALUES(representation_dalam),
			representation_luar=VALUES(representation_luar)
	`, e.ID, e.Name, e.NIP, e.PangkatGol, e.Jabatan, e.RepresentationDalam, e.RepresentationLuar)
	return err
}

func (r EmployeeRepository) Delete(id string) error {
	res, err := r.db().Exec(`DELETE FROM employees WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "pegawai"}
	}
	return nil
}
