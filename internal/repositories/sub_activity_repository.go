package repositories

import (
	"database/sql"

	intconfig "sppd-backend/internal/config"
	"sppd-backend/internal/domain"
	"sppd-backend/internal/domain/models"
)

type SubActivityRepository struct {
	DB *sql.DB
}

func (r SubActivityRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r SubActivityRepository) List() ([]models.SubActivity, error) {
	rows, err := r.db().Query(`
		SELECT code, name, COALESCE(budget_code,''), COALESCE(anggaran,0), COALESCE(spd,'0'),
		       COALESCE(triwulan1,0), COALESCE(triwulan2,0), COALESCE(triwulan3,0), COALESCE(triwulan4,0)
		FROM sub_activities
		ORDER BY code ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.SubActivity{}
	for rows.Next() {
		var s models.SubActivity
		if err := rows.Scan(&s.Code, &s.Name, &s.BudgetCode, &s.Anggaran, &s.SPD,
			&s.Triwulan1, &s.Triwulan2, &s.Triwulan3, &s.Triwulan4); err != nil {
			return out, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r SubActivityRepository) GetByCode(code string) (models.SubActivity, error) {
	var s models.SubActivity
	err := r.db().QueryRow(`
		SELECT code, name, COALESCE(budget_code,''), COALESCE(anggaran,0), COALESCE(spd,'0'),
		       COALESCE(triwulan1,0), COALESCE(triwulan2,0), COALESCE(triwulan3,0), COALESCE(triwulan4,0)
		FROM sub_activities WHERE code = ?
	`, code).Scan(&s.Code, &s.Name, &s.BudgetCode, &s.Anggaran, &s.SPD,
		&s.Triwulan1, &s.Triwulan2, &s.Triwulan3, &s.Triwulan4)
	if err == sql.ErrNoRows {
		return s, domain.NotFoundError{Resource: "sub kegiatan"}
	}
	return s, err
}

func (r SubActivityRepository) Upsert(s models.SubActivity) error {
	_, err := r.db().Exec(`
		INSERT INTO sub_activities (code, name, budget_code, anggaran, spd, triwulan1, triwulan2, triwulan3, triwulan4)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			name=VALUES(name), budget_code=VALUES(budget_code), anggaran=VALUES(anggaran),
			spd=VALUES(spd), triwulan1=VALUES(triwulan1), triwulan2=VALUES(triwulan2),
			triwulan3=VALUES(triwulan3), triwulan4=VALUES(triwulan4)
	`, s.Code, s.Name, s.BudgetCode, s.Anggaran, s.SPD, s.Triwulan1, s.Triwulan2, s.Triwulan3, s.Triwulan4)
	return err
}

func (r SubActivityRepository) Delete(code string) error {
	res, err := r.db().Exec(`DELETE FROM sub_activities WHERE code = ?`, code)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "sub kegiatan"}
	}
	return nil
}

func (r SubActivityRepository) DeleteAll() error {
	_, err := r.db().Exec(`DELETE FROM sub_activities`)
	return err
}
