package repositories

import (
	"database/sql"

	intconfig "sppd-backend/internal/config"
	intdb "sppd-backend/internal/db"
	"sppd-backend/internal/domain/models"
)

// SKPDRepository keeps the single letterhead/signatory row. Get on an empty
// table returns the zero config instead of an error so a fresh install still
// renders forms.
type SKPDRepository struct {
	DB *sql.DB
}

func (r SKPDRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r SKPDRepository) Get() (models.SKPDConfig, error) {
	var cfg models.SKPDConfig
	err := r.db().QueryRow(`
		SELECT COALESCE(provinsi,''), COALESCE(nama_skpd,''), COALESCE(alamat,''), COALESCE(lokasi,''),
		       COALESCE(kepala_nama,''), COALESCE(kepala_nip,''), COALESCE(kepala_jabatan,''),
		       COALESCE(bendahara_nama,''), COALESCE(bendahara_nip,''),
		       COALESCE(pptk_nama,''), COALESCE(pptk_nip,''), COALESCE(logo,'')
		FROM skpd_config WHERE id = 1
	`).Scan(&cfg.Provinsi, &cfg.NamaSKPD, &cfg.Alamat, &cfg.Lokasi,
		&cfg.KepalaNama, &cfg.KepalaNIP, &cfg.KepalaJabatan,
		&cfg.BendaharaNama, &cfg.BendaharaNIP,
		&cfg.PPTKNama, &cfg.PPTKNIP, &cfg.Logo)
	if err == sql.ErrNoRows {
		return models.SKPDConfig{}, nil
	}
	return cfg, err
}

func (r SKPDRepository) Save(cfg models.SKPDConfig) error {
	_, err := r.db().Exec(`
		INSERT INTO skpd_config
			(id, provinsi, nama_skpd, alamat, lokasi, kepala_nama, kepala_nip, kepala_jabatan,
			 bendahara_nama, bendahara_nip, pptk_nama, pptk_nip, logo)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			provinsi=VALUES(provinsi), nama_skpd=VALUES(nama_skpd), alamat=VALUES(alamat),
			lokasi=VALUES(lokasi), kepala_nama=VALUES(kepala_nama), kepala_nip=VALUES(kepala_nip),
			kepala_jabatan=VALUES(kepala_jabatan), bendahara_nama=VALUES(bendahara_nama),
			bendahara_nip=VALUES(bendahara_nip), pptk_nama=VALUES(pptk_nama),
			pptk_nip=VALUES(pptk_nip), logo=VALUES(logo)
	`, cfg.Provinsi, cfg.NamaSKPD, cfg.Alamat, cfg.Lokasi,
		cfg.KepalaNama, cfg.KepalaNIP, cfg.KepalaJabatan,
		cfg.BendaharaNama, cfg.BendaharaNIP, cfg.PPTKNama, cfg.PPTKNIP, intdb.NullIfEmpty(cfg.Logo))
	return err
}
