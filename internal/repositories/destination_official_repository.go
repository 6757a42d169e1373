package repositories

import (
	"database/sql"

	intconfig "sppd-backend/internal/config"
	"sppd-backend/internal/domain"
	"sppd-backend/internal/domain/models"
)

type DestinationOfficialRepository struct {
	DB *sql.DB
}

func (r DestinationOfficialRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r DestinationOfficialRepository) List() ([]models.DestinationOfficial, error) {
	rows, err := r.db().Query(`
		SELECT id, name, nip, jabatan, instansi FROM destination_officials ORDER BY name ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.DestinationOfficial{}
	for rows.Next() {
		var o models.DestinationOfficial
		if err := rows.Scan(&o.ID, &o.Name, &o.NIP, &o.Jabatan, &o.Instansi); err != nil {
			return out, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r DestinationOfficialRepository) Upsert(o models.DestinationOfficial) error {
	_, err := r.db().Exec(`
		INSERT INTO destination_officials (id, name, nip, jabatan, instansi)
		VALUES (?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			name=VALUES(name), nip=VALUES(nip), jabatan=VALUES(jabatan), instansi=VALUES(instansi)
	`, o.ID, o.Name, o.NIP, o.Jabatan, o.Instansi)
	return err
}

func (r DestinationOfficialRepository) Delete(id string) error {
	res, err := r.db().Exec(`DELETE FROM destination_officials WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "pejabat tujuan"}
	}
	return nil
}
