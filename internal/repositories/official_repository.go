package repositories

import (
	"database/sql"

	intconfig "sppd-backend/internal/config"
	"sppd-backend/internal/domain"
	"sppd-backend/internal/domain/models"
)

type OfficialRepository struct {
	DB *sql.DB
}

func (r OfficialRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r OfficialRepository) List() ([]models.Official, error) {
	rows, err := r.db().Query(`
		SELECT id, name, nip, jabatan, role FROM officials ORDER BY role ASC, name ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Official{}
	for rows.Next() {
		var o models.Official
		if err := rows.Scan(&o.ID, &o.Name, &o.NIP, &o.Jabatan, &o.Role); err != nil {
			return out, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r OfficialRepository) Upsert(o models.Official) error {
	if o.Role != models.RoleKepala && o.Role != models.RolePPTK && o.Role != models.RoleBendahara {
		return domain.ValidationError{Field: "role", Msg: "role pejabat tidak dikenal"}
	}
	_, err := r.db().Exec(`
		INSERT INTO officials (id, name, nip, jabatan, role)
		VALUES (?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			name=VALUES(name), nip=VALUES(nip), jabatan=VALUES(jabatan), role=VALUES(role)
	`, o.ID, o.Name, o.NIP, o.Jabatan, o.Role)
	return err
}

func (r OfficialRepository) Delete(id string) error {
	res, err := r.db().Exec(`DELETE FROM officials WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "pejabat"}
	}
	return nil
}
