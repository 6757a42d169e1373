package db

import (
	"database/sql"
	"fmt"
)

// EnsureSchema creates missing tables on a fresh database. Existing tables are
// left alone except for additive columns introduced after the first release.
func EnsureSchema(db *sql.DB) error {
	ddls := map[string]string{
		"users": `
CREATE TABLE IF NOT EXISTS users (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	username VARCHAR(100) NOT NULL,
	password_hash VARCHAR(255) NOT NULL,
	role VARCHAR(50) NOT NULL DEFAULT 'operator',
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
	UNIQUE KEY uniq_username (username)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,
		"employees": `
CREATE TABLE IF NOT EXISTS employees (
	id VARCHAR(64) PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	nip VARCHAR(50) NOT NULL DEFAULT '',
	pangkat_gol VARCHAR(100) NOT NULL DEFAULT '',
	jabatan VARCHAR(255) NOT NULL DEFAULT '',
	representation_dalam BIGINT NOT NULL DEFAULT 0,
	representation_luar BIGINT NOT NULL DEFAULT 0
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,
		"officials": `
CREATE TABLE IF NOT EXISTS officials (
	id VARCHAR(64) PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	nip VARCHAR(50) NOT NULL DEFAULT '',
	jabatan VARCHAR(255) NOT NULL DEFAULT '',
	role VARCHAR(50) NOT NULL
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,
		"destination_officials": `
CREATE TABLE IF NOT EXISTS destination_officials (
	id VARCHAR(64) PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	nip VARCHAR(50) NOT NULL DEFAULT '',
	jabatan VARCHAR(255) NOT NULL DEFAULT '',
	instansi VARCHAR(255) NOT NULL DEFAULT ''
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,
		"master_costs": `
CREATE TABLE IF NOT EXISTS master_costs (
	destination VARCHAR(255) PRIMARY KEY,
	daily_allowance BIGINT NOT NULL DEFAULT 0,
	lodging BIGINT NOT NULL DEFAULT 0,
	transport_bbm BIGINT NOT NULL DEFAULT 0,
	sea_transport BIGINT NOT NULL DEFAULT 0,
	air_transport BIGINT NOT NULL DEFAULT 0,
	taxi BIGINT NOT NULL DEFAULT 0
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,
		"sub_activities": `
CREATE TABLE IF NOT EXISTS sub_activities (
	code VARCHAR(64) PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	budget_code VARCHAR(64) NOT NULL DEFAULT '',
	anggaran BIGINT NOT NULL DEFAULT 0,
	spd VARCHAR(64) NOT NULL DEFAULT '0',
	triwulan1 BIGINT NOT NULL DEFAULT 0,
	triwulan2 BIGINT NOT NULL DEFAULT 0,
	triwulan3 BIGINT NOT NULL DEFAULT 0,
	triwulan4 BIGINT NOT NULL DEFAULT 0
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,
		"travel_assignments": `
CREATE TABLE IF NOT EXISTS travel_assignments (
	id VARCHAR(64) PRIMARY KEY,
	assignment_number VARCHAR(100) NOT NULL DEFAULT '',
	sub_activity_code VARCHAR(64) NOT NULL DEFAULT '',
	purpose TEXT,
	origin VARCHAR(255) NOT NULL DEFAULT '',
	travel_type VARCHAR(32) NOT NULL DEFAULT '',
	transportation VARCHAR(255) NOT NULL DEFAULT '',
	destination VARCHAR(255) NOT NULL DEFAULT '',
	start_date VARCHAR(10) NOT NULL DEFAULT '',
	end_date VARCHAR(10) NOT NULL DEFAULT '',
	duration_days INT NOT NULL DEFAULT 0,
	selected_employee_ids JSON,
	costs JSON,
	signed_at VARCHAR(255) NOT NULL DEFAULT '',
	sign_date VARCHAR(10) NOT NULL DEFAULT '',
	signer_id VARCHAR(64) NOT NULL DEFAULT '',
	pptk_id VARCHAR(64) NOT NULL DEFAULT '',
	bendahara_id VARCHAR(64) NOT NULL DEFAULT '',
	destination_official_ids JSON,
	KEY idx_sub_activity (sub_activity_code),
	KEY idx_start_date (start_date)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,
		"skpd_config": `
CREATE TABLE IF NOT EXISTS skpd_config (
	id TINYINT PRIMARY KEY,
	provinsi VARCHAR(255) NOT NULL DEFAULT '',
	nama_skpd VARCHAR(255) NOT NULL DEFAULT '',
	alamat VARCHAR(255) NOT NULL DEFAULT '',
	lokasi VARCHAR(255) NOT NULL DEFAULT '',
	kepala_nama VARCHAR(255) NOT NULL DEFAULT '',
	kepala_nip VARCHAR(50) NOT NULL DEFAULT '',
	kepala_jabatan VARCHAR(255) NOT NULL DEFAULT '',
	bendahara_nama VARCHAR(255) NOT NULL DEFAULT '',
	bendahara_nip VARCHAR(50) NOT NULL DEFAULT '',
	pptk_nama VARCHAR(255) NOT NULL DEFAULT '',
	pptk_nip VARCHAR(50) NOT NULL DEFAULT '',
	logo LONGTEXT
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,
	}

	for table, ddl := range ddls {
		if HasTable(db, table) {
			continue
		}
		if _, err := db.Exec(ddl); err != nil {
			return fmt.Errorf("gagal membuat tabel %s: %w", table, err)
		}
	}

	// budget_code came after the first schema; older installs miss the column.
	if HasTable(db, "sub_activities") && !HasColumn(db, "sub_activities", "budget_code") {
		if _, err := db.Exec(`ALTER TABLE sub_activities ADD COLUMN budget_code VARCHAR(64) NOT NULL DEFAULT '' AFTER name`); err != nil {
			return fmt.Errorf("gagal menambah kolom budget_code: %w", err)
		}
	}

	return nil
}
