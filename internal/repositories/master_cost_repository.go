package repositories

import (
	"database/sql"

	intconfig "sppd-backend/internal/config"
	"sppd-backend/internal/domain"
	"sppd-backend/internal/domain/models"
)

// MasterCostRepository keys rows by destination name: one rate bundle per
// destination, exact string match as stored.
type MasterCostRepository struct {
	DB *sql.DB
}

func (r MasterCostRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r MasterCostRepository) List() ([]models.MasterCost, error) {
	rows, err := r.db().Query(`
		SELECT destination, COALESCE(daily_allowance,0), COALESCE(lodging,0),
		       COALESCE(transport_bbm,0), COALESCE(sea_transport,0),
		       COALESCE(air_transport,0), COALESCE(taxi,0)
		FROM master_costs
		ORDER BY destination ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.MasterCost{}
	for rows.Next() {
		var m models.MasterCost
		if err := rows.Scan(&m.Destination, &m.DailyAllowance, &m.Lodging,
			&m.TransportBBM, &m.SeaTransport, &m.AirTransport, &m.Taxi); err != nil {
			return out, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// GetByDestination returns the rate bundle or a NotFoundError. Callers that
// can degrade (the draft reducers) translate the miss into a nil master.
func (r MasterCostRepository) GetByDestination(destination string) (models.MasterCost, error) {
	var m models.MasterCost
	err := r.db().QueryRow(`
		SELECT destination, COALESCE(daily_allowance,0), COALESCE(lodging,0),
		       COALESCE(transport_bbm,0), COALESCE(sea_transport,0),
		       COALESCE(air_transport,0), COALESCE(taxi,0)
		FROM master_costs WHERE destination = ?
	`, destination).Scan(&m.Destination, &m.DailyAllowance, &m.Lodging,
		&m.TransportBBM, &m.SeaTransport, &m.AirTransport, &m.Taxi)
	if err == sql.ErrNoRows {
		return m, domain.NotFoundError{Resource: "standar biaya"}
	}
	return m, err
}

func (r MasterCostRepository) Upsert(m models.MasterCost) error {
	_, err := r.db().Exec(`
		INSERT INTO master_costs (destination, daily_allowance, lodging, transport_bbm, sea_transport, air_transport, taxi)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			daily_allowance=VALUES(daily_allowance), lodging=VALUES(lodging),
			transport_bbm=VALUES(transport_bbm), sea_transport=VALUES(sea_transport),
			air_transport=VALUES(air_transport), taxi=VALUES(taxi)
	`, m.Destination, m.DailyAllowance, m.Lodging, m.TransportBBM, m.SeaTransport, m.AirTransport, m.Taxi)
	return err
}

func (r MasterCostRepository) Delete(destination string) error {
	res, err := r.db().Exec(`DELETE FROM master_costs WHERE destination = ?`, destination)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "standar biaya"}
	}
	return nil
}

func (r MasterCostRepository) DeleteAll() error {
	_, err := r.db().Exec(`DELETE FROM master_costs`)
	return err
}
